// Package dijkstra provides a point-to-point implementation of Dijkstra's
// shortest-path algorithm over a core.Graph with non-negative weights.
//
// Overview:
//
//   - Find(g, start, end) expands vertices in increasing distance from start
//     using a min-heap frontier and stops the moment end is extracted.
//   - It returns the full route (start..end inclusive) and its total cost.
//   - An unreachable end is a normal result: empty Path and Cost = +Inf.
//     Result.Reachable() distinguishes the two cases.
//
// When to use:
//
//   - Re-planning a trip after traffic delays were applied with
//     core.Graph.UpdateWeight: each call recomputes from scratch against the
//     current weights.
//
// Key features:
//
//   - Early exit: vertices farther than end are never settled.
//   - Deterministic ties: frontier entries with equal distance are extracted
//     in push order.
//   - WithInfEdgeThreshold: roads whose weight reaches the threshold are
//     treated as closed.
//   - WithMaxCost: abandons the search beyond a cost budget.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:
//     Returned if g is nil.
//   - ErrVertexNotFound:
//     Returned if start or end is not a vertex of g. Wraps
//     core.ErrVertexNotFound. No partial result is returned.
//   - ErrBadInfThreshold, ErrBadMaxCost:
//     Raised (via panic) by the option constructors for invalid arguments.
//
// API reference:
//
//	func Find(g *core.Graph, start, end string, opts ...Option) (Result, error)
//
// Thread safety:
//
//   - Find only reads g, but core.Graph has no internal locking. Do not run
//     Find concurrently with AddEdge or UpdateWeight on the same graph; hold a
//     read lock around Find and a write lock around mutations.
//
// See also:
//
//   - core.Graph: construction and weight updates.
//   - bfs: fewest-roads routes and reachability ignoring weights.
package dijkstra
