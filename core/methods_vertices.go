// File: methods_vertices.go
// Role: Vertex queries and neighborhood access.
// Determinism:
//   - Vertices() returns IDs in first-seen order (the order AddEdge met them).
//   - Neighbors() returns entries in insertion order.

package core

import "fmt"

// ensureVertex registers id with an empty adjacency list if it is new.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adj[id]; ok {
		return
	}
	g.adj[id] = nil
	g.order = append(g.order, id)
}

// HasVertex reports whether id is a vertex of g. Matching is byte-exact;
// callers are responsible for any normalization of names.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]

	return ok
}

// Vertices returns all vertex IDs in the order they were first added.
// The returned slice is a copy.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.order)
}

// Neighbors returns a copy of id's adjacency list in insertion order.
//
// Errors:
//   - ErrEmptyVertexID if id is "".
//   - ErrVertexNotFound if id was never added.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	list, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	out := make([]Neighbor, len(list))
	copy(out, list)

	return out, nil
}
