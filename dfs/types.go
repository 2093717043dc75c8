// Package dfs provides tunable options and error definitions for
// simple-path enumeration over a core.Graph.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/trafficgraph/core"
)

// Sentinel errors for path enumeration.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures ListPaths behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when ListPaths is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize the enumeration.
type Options struct {
	// MaxDepth, if > 0, stops extending paths beyond this many streets.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnPath is called for each emitted path. If it returns an error,
	// the enumeration aborts and propagates that error. The slice is
	// the caller's copy; the hook may retain it.
	OnPath func(path []core.NodeID) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		MaxDepth: 0,
		OnPath:   func([]core.NodeID) error { return nil },
	}
}

// WithMaxDepth bounds the enumeration at the given number of streets per
// path.
//
//	d > 0:  limit paths to d streets
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithOnPath registers a callback to run for each emitted path; returning
// an error from this callback stops the enumeration.
func WithOnPath(fn func(path []core.NodeID) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPath = fn
		}
	}
}
