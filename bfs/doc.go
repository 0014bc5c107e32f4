// Package bfs provides breadth-first search over a core.Graph that ignores
// edge weights.
//
// What
//
//   - Explore places in non-decreasing number of roads from a start place.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: place → number of roads from start
//   - Parent: place → predecessor in the BFS tree
//   - Reachable(g, start) lists every place connected to start; callers use
//     it to explain why dijkstra.Find reported a target as unreachable.
//   - WithFilterRoad / WithMaxRoadWeight skip roads, for instance roads
//     whose traffic delay effectively closes them.
//   - Honors a MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	core.Graph.Neighbors returns adjacency entries in insertion order and
//	BFS enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "Erode", bfs.WithMaxDepth(2))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // context errors, or OnVisit errors
//	}
//	path, err := res.PathTo("Kangeyam") // fewest roads, not fewest minutes
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth).
//   - ErrNoPath               from Result.PathTo for an unreached vertex.
//   - Wrapped errors from the OnVisit hook.
package bfs
