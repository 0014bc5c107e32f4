// Package dijkstra_test contains unit tests for Find: validation, the
// Erode-style scenario before and after traffic updates, unreachable
// targets, options and deterministic tie handling.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/roadtime/core"
	"github.com/katalvlaran/roadtime/dijkstra"
)

// buildScenario returns the seven-road graph
//
//	A–B(16), A–C(20), A–D(12), B–E(23), E–F(30), C–G(24), D–G(28)
//
// which has the same shape as the Erode taluk map.
func buildScenario(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	roads := []struct {
		a, b string
		w    float64
	}{
		{"A", "B", 16},
		{"A", "C", 20},
		{"A", "D", 12},
		{"B", "E", 23},
		{"E", "F", 30},
		{"C", "G", 24},
		{"D", "G", 28},
	}
	for _, r := range roads {
		require.NoError(t, g.AddEdge(r.a, r.b, r.w))
	}

	return g
}

// assertValidRoute checks that consecutive path vertices are adjacent and
// that the cheapest connecting edges add up to the reported cost.
func assertValidRoute(t *testing.T, g *core.Graph, res dijkstra.Result, start, end string) {
	t.Helper()
	require.True(t, res.Reachable())
	require.NotEmpty(t, res.Path)
	assert.Equal(t, start, res.Path[0])
	assert.Equal(t, end, res.Path[len(res.Path)-1])

	var sum float64
	for i := 1; i < len(res.Path); i++ {
		nbrs, err := g.Neighbors(res.Path[i-1])
		require.NoError(t, err)
		best := math.Inf(1)
		for _, n := range nbrs {
			if n.ID == res.Path[i] && n.Weight < best {
				best = n.Weight
			}
		}
		require.False(t, math.IsInf(best, 1), "%s and %s are not adjacent", res.Path[i-1], res.Path[i])
		sum += best
	}
	assert.InDelta(t, res.Cost, sum, 1e-9)
}

// FindSuite exercises Find on the scenario graph.
type FindSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *FindSuite) SetupTest() {
	s.g = buildScenario(s.T())
}

func (s *FindSuite) TestScenarioAtoF() {
	res, err := dijkstra.Find(s.g, "A", "F")
	s.Require().NoError(err)
	s.Equal([]string{"A", "B", "E", "F"}, res.Path)
	s.Equal(69.0, res.Cost)
	assertValidRoute(s.T(), s.g, res, "A", "F")
}

func (s *FindSuite) TestScenarioAtoFAfterDelay() {
	s.Require().NoError(s.g.UpdateWeight("A", "B", 10))

	// F hangs off E, and E off B, so A–B–E–F remains the only route.
	res, err := dijkstra.Find(s.g, "A", "F")
	s.Require().NoError(err)
	s.Equal([]string{"A", "B", "E", "F"}, res.Path)
	s.Equal(79.0, res.Cost)
	assertValidRoute(s.T(), s.g, res, "A", "F")

	back, err := dijkstra.Find(s.g, "F", "A")
	s.Require().NoError(err)
	s.Equal([]string{"F", "E", "B", "A"}, back.Path)
	s.Equal(79.0, back.Cost)
}

func (s *FindSuite) TestScenarioAtoGSwitchesRoute() {
	res, err := dijkstra.Find(s.g, "A", "G")
	s.Require().NoError(err)
	s.Equal([]string{"A", "D", "G"}, res.Path)
	s.Equal(40.0, res.Cost)

	s.Require().NoError(s.g.UpdateWeight("A", "D", 10))

	res, err = dijkstra.Find(s.g, "A", "G")
	s.Require().NoError(err)
	s.Equal([]string{"A", "C", "G"}, res.Path)
	s.Equal(44.0, res.Cost)
	assertValidRoute(s.T(), s.g, res, "A", "G")
}

func (s *FindSuite) TestDirectEdgeCostGrowsByDelta() {
	before, err := dijkstra.Find(s.g, "A", "B")
	s.Require().NoError(err)
	s.Equal(16.0, before.Cost)

	s.Require().NoError(s.g.UpdateWeight("B", "A", 5))

	after, err := dijkstra.Find(s.g, "A", "B")
	s.Require().NoError(err)
	s.Equal([]string{"A", "B"}, after.Path)
	s.Equal(before.Cost+5, after.Cost)
}

func (s *FindSuite) TestFailedUpdateKeepsRoutes() {
	before, err := dijkstra.Find(s.g, "A", "F")
	s.Require().NoError(err)

	err = s.g.UpdateWeight("A", "F", 10)
	s.Require().ErrorIs(err, core.ErrEdgeNotFound)

	after, err := dijkstra.Find(s.g, "A", "F")
	s.Require().NoError(err)
	s.Equal(before, after)
}

func (s *FindSuite) TestSymmetricCosts() {
	vs := s.g.Vertices()
	for _, a := range vs {
		for _, b := range vs {
			ab, err := dijkstra.Find(s.g, a, b)
			s.Require().NoError(err)
			ba, err := dijkstra.Find(s.g, b, a)
			s.Require().NoError(err)
			s.Equal(ab.Cost, ba.Cost, "%s↔%s", a, b)
		}
	}
}

func (s *FindSuite) TestSameStartAndEnd() {
	for _, v := range s.g.Vertices() {
		res, err := dijkstra.Find(s.g, v, v)
		s.Require().NoError(err)
		s.Equal([]string{v}, res.Path)
		s.Zero(res.Cost)
	}
}

func (s *FindSuite) TestUnknownVertices() {
	_, err := dijkstra.Find(s.g, "A", "Z")
	s.Require().ErrorIs(err, dijkstra.ErrVertexNotFound)
	s.Require().ErrorIs(err, core.ErrVertexNotFound)

	_, err = dijkstra.Find(s.g, "Z", "A")
	s.Require().ErrorIs(err, dijkstra.ErrVertexNotFound)

	// Matching is exact; normalization belongs to the caller.
	_, err = dijkstra.Find(s.g, "a", "F")
	s.Require().ErrorIs(err, dijkstra.ErrVertexNotFound)
}

func (s *FindSuite) TestFindDoesNotMutateGraph() {
	before := s.g.Clone()
	_, err := dijkstra.Find(s.g, "A", "F")
	s.Require().NoError(err)

	for _, v := range before.Vertices() {
		want, _ := before.Neighbors(v)
		got, _ := s.g.Neighbors(v)
		s.Equal(want, got)
	}
}

func TestFindSuite(t *testing.T) {
	suite.Run(t, new(FindSuite))
}

func TestFind_NilGraph(t *testing.T) {
	_, err := dijkstra.Find(nil, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestFind_Disconnected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	res, err := dijkstra.Find(g, "A", "D")
	require.NoError(t, err)
	assert.False(t, res.Reachable())
	assert.Empty(t, res.Path)
	assert.True(t, math.IsInf(res.Cost, 1))
}

func TestFind_ZeroWeightEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))
	require.NoError(t, g.AddEdge("A", "C", 1))

	res, err := dijkstra.Find(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Zero(t, res.Cost)
}

func TestFind_ParallelEdgesUseCheapest(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 9))
	require.NoError(t, g.AddEdge("A", "B", 4))

	res, err := dijkstra.Find(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Cost)

	// Uniform-pair update: both entries become 9+1.
	require.NoError(t, g.UpdateWeight("A", "B", 1))
	res, err = dijkstra.Find(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 10.0, res.Cost)
}

func TestFind_SelfLoopIgnored(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "A", 1))
	require.NoError(t, g.AddEdge("A", "B", 2))

	res, err := dijkstra.Find(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Path)
	assert.Equal(t, 2.0, res.Cost)
}

func TestFind_StaleEntriesSkipped(t *testing.T) {
	// C is first discovered at 10 via A, then improved to 3 via B.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "C", 10))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("C", "D", 8))

	// The stale C@10 entry is popped before D@11 and must not relax D again.
	res, err := dijkstra.Find(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Path)
	assert.Equal(t, 11.0, res.Cost)
}

func TestFind_TiesAreDeterministic(t *testing.T) {
	// Two equal-cost routes A–B–D and A–C–D; B is pushed first.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	for i := 0; i < 50; i++ {
		res, err := dijkstra.Find(g, "A", "D")
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B", "D"}, res.Path)
		require.Equal(t, 2.0, res.Cost)
	}
}

func TestFind_InfEdgeThresholdClosesRoads(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("A", "C", 5))

	// A large delay on B–C effectively closes it.
	require.NoError(t, g.UpdateWeight("B", "C", 1000))

	res, err := dijkstra.Find(g, "A", "C", dijkstra.WithInfEdgeThreshold(500))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, res.Path)
	assert.Equal(t, 5.0, res.Cost)

	// Closing every road into C makes it unreachable.
	res, err = dijkstra.Find(g, "A", "C", dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.False(t, res.Reachable())
}

func TestFind_MaxCost(t *testing.T) {
	g := buildScenario(t)

	res, err := dijkstra.Find(g, "A", "F", dijkstra.WithMaxCost(69))
	require.NoError(t, err)
	assert.Equal(t, 69.0, res.Cost)

	res, err = dijkstra.Find(g, "A", "F", dijkstra.WithMaxCost(68))
	require.NoError(t, err)
	assert.False(t, res.Reachable())
	assert.Empty(t, res.Path)

	res, err = dijkstra.Find(g, "A", "A", dijkstra.WithMaxCost(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Path)
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{})
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		dijkstra.WithInfEdgeThreshold(math.NaN())(&dijkstra.Options{})
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxCost.Error(), func() {
		dijkstra.WithMaxCost(-1)(&dijkstra.Options{})
	})
}

func TestDefaultOptions(t *testing.T) {
	o := dijkstra.DefaultOptions()
	assert.True(t, math.IsInf(o.InfEdgeThreshold, 1))
	assert.True(t, math.IsInf(o.MaxCost, 1))
}
