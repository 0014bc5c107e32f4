// Package core defines the weighted, undirected road Graph used by the
// route finder, together with its sentinel errors.
//
// A Graph is built once by its owner (there is no package-level instance),
// populated with AddEdge during a setup phase and afterwards mutated only
// through UpdateWeight. The type performs no internal locking: callers that
// share one Graph between goroutines must serialize access themselves
// (one writer at a time, no readers during a write).
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - no edge joins the requested pair.
//	ErrInvalidWeight  - weight or delta is negative, NaN or infinite.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates that no edge joins the requested pair of vertices.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidWeight indicates a negative, NaN or infinite weight or delay.
	ErrInvalidWeight = errors.New("core: weight must be finite and non-negative")
)

// Neighbor is one entry of a vertex's adjacency list: the vertex on the
// other end of an edge and the edge's current weight.
type Neighbor struct {
	// ID is the adjacent vertex.
	ID string

	// Weight is the travel cost of the edge, identical in both directions.
	Weight float64
}

// Graph is an undirected, weighted graph stored as adjacency lists.
//
// Invariant: for every edge (a, b, w) there is an entry {b, w} in adj[a]
// and an entry {a, w} in adj[b]; both are rewritten together by
// UpdateWeight. Parallel edges created by repeated AddEdge calls are kept
// as separate entries.
type Graph struct {
	order []string              // vertex IDs in first-seen order
	adj   map[string][]Neighbor // vertex ID → adjacency list in insertion order
	edges int                   // number of AddEdge calls that succeeded
}

// NewGraph returns an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adj: make(map[string][]Neighbor),
	}
}

// validWeight reports whether w is usable as an edge weight or delay.
func validWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 1) && !math.IsNaN(w)
}
