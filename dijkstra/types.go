// Package dijkstra provides result types, tunable options, and error
// definitions for fastest-route computation over a core.Graph.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/trafficgraph/core"
)

// Sentinel errors for fastest-route computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrBadMaxTime is returned when WithMaxTime is given a value that is
	// not strictly positive.
	ErrBadMaxTime = errors.New("dijkstra: MaxTime must be positive")
)

// Route is the result of a fastest-route computation.
//
// For a reachable destination, Path holds the intersections from origin
// to destination inclusive and TotalTime the sum of the street weights
// along it. For an unreachable destination, Path is empty and TotalTime
// is +Inf. For origin == destination, Path is [origin] and TotalTime 0.
type Route struct {
	Path      []core.NodeID
	TotalTime float64
}

// Reachable reports whether the route actually reaches the destination.
func (r *Route) Reachable() bool { return !math.IsInf(r.TotalTime, 1) }

// Option configures FastestRoute behavior via functional arguments.
// An invalid Option is recorded internally and surfaced when
// FastestRoute is invoked.
type Option func(*Options)

// Options holds parameters to customize the search.
type Options struct {
	// MaxTime caps exploration: intersections whose best-known total
	// travel time exceeds it are treated as unreachable.
	// Default is +Inf (no cap).
	MaxTime float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no travel-time cap.
func DefaultOptions() Options {
	return Options{MaxTime: math.Inf(1)}
}

// WithMaxTime caps the search at the given total travel time in minutes.
// Must be strictly positive; other values cause ErrBadMaxTime.
func WithMaxTime(minutes float64) Option {
	return func(o *Options) {
		if math.IsNaN(minutes) || minutes <= 0 {
			o.err = fmt.Errorf("%w: got %v", ErrBadMaxTime, minutes)

			return
		}
		o.MaxTime = minutes
	}
}
