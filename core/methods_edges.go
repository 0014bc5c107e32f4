// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge, UpdateWeight, Weight, EdgeCount.
// Determinism:
//   - Adjacency lists keep insertion order; UpdateWeight never reorders them.
// Policy:
//   - Parallel edges are allowed and never deduplicated.
//   - UpdateWeight treats a pair uniformly: every parallel entry of the pair
//     receives the same new weight, in both directions.

package core

import "fmt"

// AddEdge joins a and b with an undirected edge of the given weight.
//
// Missing endpoints are created. The pair is appended to both adjacency
// lists, so calling AddEdge twice for the same pair yields two parallel
// entries. A self-loop (a == b) is stored as a single entry.
//
// Errors:
//   - ErrEmptyVertexID if a or b is "".
//   - ErrInvalidWeight if weight is negative, NaN or infinite.
//
// No state is touched when an error is returned.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, weight float64) error {
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	if !validWeight(weight) {
		return fmt.Errorf("%w: %s–%s weight=%v", ErrInvalidWeight, a, b, weight)
	}

	g.ensureVertex(a)
	g.ensureVertex(b)

	g.adj[a] = append(g.adj[a], Neighbor{ID: b, Weight: weight})
	if a != b {
		g.adj[b] = append(g.adj[b], Neighbor{ID: a, Weight: weight})
	}
	g.edges++

	return nil
}

// UpdateWeight adds delta to the weight of the edge between a and b.
//
// Steps:
//  1. Reject a negative, NaN or infinite delta (ErrInvalidWeight).
//  2. Find the first entry for b in a's adjacency list; none ⇒ ErrEdgeNotFound.
//  3. newWeight = that entry's weight + delta.
//  4. Rewrite every entry for b in a's list and every entry for a in b's
//     list to newWeight.
//
// On error the graph is left unchanged.
// Complexity: O(deg(a) + deg(b)).
func (g *Graph) UpdateWeight(a, b string, delta float64) error {
	if !validWeight(delta) {
		return fmt.Errorf("%w: %s–%s delta=%v", ErrInvalidWeight, a, b, delta)
	}

	idx := indexOf(g.adj[a], b)
	if idx < 0 {
		return fmt.Errorf("%w: %s–%s", ErrEdgeNotFound, a, b)
	}

	newWeight := g.adj[a][idx].Weight + delta
	if !validWeight(newWeight) {
		return fmt.Errorf("%w: %s–%s overflows with delta=%v", ErrInvalidWeight, a, b, delta)
	}

	rewrite(g.adj[a], b, newWeight)
	rewrite(g.adj[b], a, newWeight)

	return nil
}

// Weight returns the weight of the first edge recorded from a to b.
//
// Errors:
//   - ErrEdgeNotFound if a and b are not adjacent (including unknown vertices).
//
// Complexity: O(deg(a)).
func (g *Graph) Weight(a, b string) (float64, error) {
	idx := indexOf(g.adj[a], b)
	if idx < 0 {
		return 0, fmt.Errorf("%w: %s–%s", ErrEdgeNotFound, a, b)
	}

	return g.adj[a][idx].Weight, nil
}

// HasEdge reports whether at least one edge joins a and b.
// Complexity: O(deg(a)).
func (g *Graph) HasEdge(a, b string) bool {
	return indexOf(g.adj[a], b) >= 0
}

// EdgeCount returns the number of undirected edges, parallel edges included.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edges
}

// indexOf returns the position of the first entry for id, or -1.
func indexOf(list []Neighbor, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}

	return -1
}

// rewrite sets the weight of every entry for id in list.
func rewrite(list []Neighbor, id string, weight float64) {
	for i := range list {
		if list[i].ID == id {
			list[i].Weight = weight
		}
	}
}
