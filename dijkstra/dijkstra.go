// Package dijkstra finds the cheapest route between two vertices of a
// core.Graph.
//
// Complexity:
//
//   - Time:  O((V + E) log V) worst case; the search stops as soon as the
//     target is extracted from the frontier, so nearby targets cost less.
//   - Space: O(V + E) for the distance and predecessor maps and the heap.
//
// Notes on implementation choices:
//
//   - "Lazy" decrease-key: an improved distance pushes a new heap entry and
//     the superseded one is skipped when popped.
//   - Equal distances are popped in push order (a sequence number is the
//     secondary heap key), so results are reproducible.
//   - Weights are non-negative by construction (core rejects the rest),
//     which makes the first extraction of the target final.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/roadtime/core"
)

// Find computes the cheapest route from start to end in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must be vertices of g (ErrVertexNotFound).
//
// Returns:
//
//   - Result{Path, Cost} for a reachable end; Path[0] == start,
//     Path[len-1] == end.
//   - Result{Path: nil, Cost: +Inf} if no route exists. This is a normal
//     outcome, not an error.
//   - Find(g, s, s) returns Path [s] and Cost 0.
//
// Options customization:
//
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are skipped.
//   - WithMaxCost(c): routes costing more than c are not explored.
//
// Find does not modify g. It must not run concurrently with AddEdge or
// UpdateWeight on the same graph.
func Find(g *core.Graph, start, end string, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return Result{}, fmt.Errorf("%w: start %q", ErrVertexNotFound, start)
	}
	if !g.HasVertex(end) {
		return Result{}, fmt.Errorf("%w: end %q", ErrVertexNotFound, end)
	}

	r := newRunner(g, cfg, start, end)
	if err := r.process(); err != nil {
		return Result{}, err
	}

	return r.result(), nil
}

// runner holds the mutable state for a single Find execution.
type runner struct {
	g       *core.Graph
	options Options
	start   string
	end     string
	dist    map[string]float64 // best-known distance; +Inf until discovered
	prev    map[string]string  // predecessor on the best-known route
	pq      nodePQ
	seq     uint64 // push counter, secondary heap key
	reached bool   // end was extracted from the frontier
}

// newRunner sets dist[v] = +Inf for every vertex, dist[start] = 0 and
// seeds the frontier with (0, start). start has no predecessor entry.
func newRunner(g *core.Graph, cfg Options, start, end string) *runner {
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		start:   start,
		end:     end,
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
	}
	r.dist[start] = 0

	heap.Init(&r.pq)
	r.push(start, 0)

	return r
}

// process is the main loop. It stops when the end vertex is extracted,
// when the cheapest frontier entry exceeds MaxCost, or when the frontier
// runs dry.
func (r *runner) process() error {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)

		// Superseded by a cheaper entry pushed later.
		if item.dist > r.dist[item.id] {
			continue
		}
		if item.dist > r.options.MaxCost {
			break
		}
		if item.id == r.end {
			r.reached = true
			break
		}

		if err := r.relax(item.id, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of u through u.
func (r *runner) relax(u string, du float64) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var nb core.Neighbor
	var candidate float64
	for _, nb = range neighbors {
		if nb.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		candidate = du + nb.Weight
		if candidate > r.options.MaxCost {
			continue
		}
		// Strictly better only; equal routes keep the first predecessor found.
		if candidate >= r.dist[nb.ID] {
			continue
		}
		r.dist[nb.ID] = candidate
		r.prev[nb.ID] = u
		r.push(nb.ID, candidate)
	}

	return nil
}

// push adds (id, dist) to the frontier with the next sequence number.
func (r *runner) push(id string, dist float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
	r.seq++
}

// result rebuilds the route by walking predecessors back from end.
func (r *runner) result() Result {
	if !r.reached {
		return unreachable()
	}

	path := []string{r.end}
	cur := r.end
	for cur != r.start {
		p, ok := r.prev[cur]
		if !ok {
			// Guard against a broken chain rather than looping forever.
			return unreachable()
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{Path: path, Cost: r.dist[r.end]}
}

// nodeItem is a frontier entry: a vertex, its tentative distance and the
// order in which it was pushed.
type nodeItem struct {
	id   string
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by seq.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance; equal distances pop in push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved
// the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
