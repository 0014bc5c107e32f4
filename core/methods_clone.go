// File: methods_clone.go
// Role: Deep copies of a Graph.
// AI-HINT (file):
//   - Clone() shares nothing with the source; mutating either leaves the other intact.

package core

// Clone returns a deep copy of g: same vertices in the same order, same
// adjacency lists (parallel entries included) and the same edge count.
//
// Use it to evaluate a hypothetical delay without touching the live graph.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		order: make([]string, len(g.order)),
		adj:   make(map[string][]Neighbor, len(g.adj)),
		edges: g.edges,
	}
	copy(c.order, g.order)

	var id string
	var list []Neighbor
	for id, list = range g.adj {
		if list == nil {
			c.adj[id] = nil
			continue
		}
		cp := make([]Neighbor, len(list))
		copy(cp, list)
		c.adj[id] = cp
	}

	return c
}
