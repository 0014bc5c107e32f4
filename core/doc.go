// Package core provides the in-memory road Graph: named places joined by
// undirected, weighted edges whose weights can grow at runtime to model
// traffic delays.
//
// The Graph G = (V,E) supports:
//
//   - Undirected edges only: every AddEdge(a, b, w) is mirrored so that a
//     lists b and b lists a, both with weight w.
//   - Non-negative, finite float64 weights (travel minutes).
//   - Parallel edges: AddEdge is not idempotent; a repeated pair yields a
//     second entry in both adjacency lists.
//   - Additive weight updates: UpdateWeight(a, b, delta) looks up the first
//     a→b entry, computes w+delta and writes it to every a→b and b→a entry.
//
// Core Methods:
//
//	NewGraph() *Graph                                  // O(1)
//	AddEdge(a, b string, weight float64) error         // O(1) amortized
//	UpdateWeight(a, b string, delta float64) error     // O(deg(a)+deg(b))
//	Neighbors(id string) ([]Neighbor, error)           // O(deg(id))
//	Weight(a, b string) (float64, error)               // O(deg(a))
//	HasVertex(id string) bool                          // O(1)
//	HasEdge(a, b string) bool                          // O(deg(a))
//	Vertices() []string                                // O(V), first-seen order
//	VertexCount() int / EdgeCount() int                // O(1)
//	Clone() *Graph                                     // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID  – empty vertex ID passed to AddEdge or Neighbors.
//	ErrVertexNotFound – Neighbors on an unknown vertex.
//	ErrEdgeNotFound   – UpdateWeight / Weight on a pair with no edge.
//	ErrInvalidWeight  – negative, NaN or infinite weight or delta.
//
// Errors are returned wrapped with the offending pair; test them with
// errors.Is.
//
// Concurrency:
//
//	Graph is not safe for concurrent use. Guard a shared instance with a
//	sync.RWMutex: UpdateWeight under the write lock, searches under the
//	read lock.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("Erode", "Bhavani", 16)
//	_ = g.UpdateWeight("Erode", "Bhavani", 10) // both directions now 26
package core
