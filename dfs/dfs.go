package dfs

import (
	"fmt"

	"github.com/katalvlaran/trafficgraph/core"
)

// pathWalker encapsulates state during enumeration.
type pathWalker struct {
	graph    *core.Graph
	opts     Options
	prefix   []core.NodeID        // current path, origin first
	onPrefix map[core.NodeID]bool // membership set over prefix
	paths    [][]core.NodeID      // result collector
}

// ListPaths enumerates every simple path starting at origin, including
// every partial prefix as its own entry (see the package documentation
// for the exact shape). Each returned path is an independent copy.
//
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for a bad
// option, core.ErrInvalidName for a blank origin, and a wrapped
// core.ErrIntersectionNotFound if origin is absent. An origin with no
// outgoing streets yields an empty (non-nil) result.
func ListPaths(g *core.Graph, origin core.NodeID, opts ...Option) ([][]core.NodeID, error) {
	// 1. Validate input graph and options.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2. Validate the origin.
	if err := origin.Validate(); err != nil {
		return nil, err
	}
	if !g.HasIntersection(origin) {
		return nil, fmt.Errorf("dfs: origin %q: %w", origin, core.ErrIntersectionNotFound)
	}

	// 3. Seed the walker with the single-intersection prefix [origin].
	//    The prefix itself is not emitted; only extensions are.
	w := &pathWalker{
		graph:    g,
		opts:     o,
		prefix:   []core.NodeID{origin},
		onPrefix: map[core.NodeID]bool{origin: true},
		paths:    make([][]core.NodeID, 0),
	}

	// 4. Recurse.
	if err := w.expand(origin, 0); err != nil {
		return nil, err
	}

	return w.paths, nil
}

// expand extends the current prefix by every unvisited neighbor of curr,
// emitting each extension before descending into it. depth counts streets
// already on the prefix.
func (w *pathWalker) expand(curr core.NodeID, depth int) error {
	if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
		return nil
	}

	nbrs, err := w.graph.Neighbors(curr)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", curr, err)
	}

	for _, nb := range nbrs {
		// An intersection anywhere on the prefix is never revisited.
		if w.onPrefix[nb.To] {
			continue
		}

		w.prefix = append(w.prefix, nb.To)
		w.onPrefix[nb.To] = true

		if err = w.emit(); err != nil {
			return err
		}
		if err = w.expand(nb.To, depth+1); err != nil {
			return err
		}

		// Backtrack.
		w.onPrefix[nb.To] = false
		w.prefix = w.prefix[:len(w.prefix)-1]
	}

	return nil
}

// emit copies the current prefix into the result and fires OnPath.
func (w *pathWalker) emit() error {
	path := make([]core.NodeID, len(w.prefix))
	copy(path, w.prefix)
	w.paths = append(w.paths, path)

	if err := w.opts.OnPath(path); err != nil {
		return fmt.Errorf("dfs: OnPath hook at %q: %w", path[len(path)-1], err)
	}

	return nil
}
