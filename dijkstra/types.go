package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/roadtime/core"
)

// Sentinel errors returned by Find.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Find.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the start or end vertex is not in the graph.
	// It wraps core.ErrVertexNotFound, so errors.Is matches either sentinel.
	ErrVertexNotFound = fmt.Errorf("dijkstra: %w", core.ErrVertexNotFound)

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a
	// negative value, which would close every road.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Result is the outcome of a single Find call.
//
// For a reachable target Path lists the vertices from start to end
// inclusive and Cost is the sum of the traversed edge weights. When no
// route exists Path is empty and Cost is +Inf.
type Result struct {
	Path []string
	Cost float64
}

// Reachable reports whether the search found a route.
func (r Result) Reachable() bool {
	return !math.IsInf(r.Cost, 1)
}

// unreachable is the canonical "no route" result.
func unreachable() Result {
	return Result{Path: nil, Cost: math.Inf(1)}
}

// Options configures Find.
//
// InfEdgeThreshold – edges with weight ≥ this value are treated as closed.
//
//	Must be > 0. Default is +Inf (no closed roads).
//
// MaxCost – give up once every remaining route would cost more than this.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	InfEdgeThreshold float64
	MaxCost          float64
}

// Option represents a functional option for configuring Find.
type Option func(*Options)

// WithInfEdgeThreshold marks every edge whose weight is ≥ threshold as
// impassable, e.g. a road closed by a very large traffic delay.
// Panics with ErrBadInfThreshold if threshold ≤ 0 or NaN.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithMaxCost stops the search once the cheapest frontier entry exceeds
// limit; targets farther away are reported as unreachable.
// Panics with ErrBadMaxCost if limit < 0 or NaN.
func WithMaxCost(limit float64) Option {
	return func(o *Options) {
		if !(limit >= 0) {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = limit
	}
}

// DefaultOptions returns Options with no closed roads and no cost cap.
func DefaultOptions() Options {
	return Options{
		InfEdgeThreshold: math.Inf(1),
		MaxCost:          math.Inf(1),
	}
}
