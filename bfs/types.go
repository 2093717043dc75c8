// Package bfs provides tunable options and error definitions for
// breadth-first reachability over a core.Graph.
package bfs

import (
	"errors"

	"github.com/katalvlaran/trafficgraph/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("bfs: graph is nil")

// Option configures ExistsRoute behavior via functional arguments.
type Option func(*Options)

// Options holds observation hooks for the traversal. Hooks are purely
// diagnostic; they cannot alter the result.
type Options struct {
	// OnEnqueue is called when an intersection joins the frontier.
	OnEnqueue func(id core.NodeID)

	// OnDequeue is called when an intersection leaves the frontier,
	// immediately before it is compared against the destination.
	OnDequeue func(id core.NodeID)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(core.NodeID) {},
		OnDequeue: func(core.NodeID) {},
	}
}

// WithOnEnqueue registers a callback to run when an intersection is
// enqueued.
func WithOnEnqueue(fn func(id core.NodeID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when an intersection is
// dequeued.
func WithOnDequeue(fn func(id core.NodeID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
