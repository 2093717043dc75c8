package bfs

import (
	"fmt"

	"github.com/katalvlaran/trafficgraph/core"
)

// walker encapsulates mutable traversal state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []core.NodeID
	visited map[core.NodeID]bool
}

// ExistsRoute reports whether any route leads from origin to destination,
// applying any number of functional Options.
//
// Returns ErrGraphNil for a nil graph, core.ErrInvalidName for blank
// names, and a wrapped core.ErrIntersectionNotFound if either endpoint is
// absent. An unreachable destination is a normal false result, not an
// error.
func ExistsRoute(g *core.Graph, origin, destination core.NodeID, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Validate both endpoints before touching the frontier.
	if err := origin.Validate(); err != nil {
		return false, err
	}
	if err := destination.Validate(); err != nil {
		return false, err
	}
	if !g.HasIntersection(origin) {
		return false, fmt.Errorf("bfs: origin %q: %w", origin, core.ErrIntersectionNotFound)
	}
	if !g.HasIntersection(destination) {
		return false, fmt.Errorf("bfs: destination %q: %w", destination, core.ErrIntersectionNotFound)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]core.NodeID, 0, g.NodeCount()),
		visited: make(map[core.NodeID]bool, g.NodeCount()),
	}

	// Seed the frontier with the origin; the first dequeue compares it
	// against the destination, which makes ExistsRoute(x, x) true.
	w.enqueue(origin)

	return w.loop(destination)
}

// enqueue marks id visited, calls OnEnqueue, and appends it to the
// frontier. Marking happens here, at enqueue time, so an intersection can
// never join the frontier twice.
func (w *walker) enqueue(id core.NodeID) {
	w.visited[id] = true
	w.opts.OnEnqueue(id)
	w.queue = append(w.queue, id)
}

// loop processes the frontier until the destination is dequeued or the
// frontier empties.
func (w *walker) loop(destination core.NodeID) (bool, error) {
	for len(w.queue) > 0 {
		curr := w.dequeue()
		if curr == destination {
			return true, nil
		}

		nbrs, err := w.graph.Neighbors(curr)
		if err != nil {
			return false, fmt.Errorf("bfs: neighbors of %q: %w", curr, err)
		}
		for _, nb := range nbrs {
			if !w.visited[nb.To] {
				w.enqueue(nb.To)
			}
		}
	}

	return false, nil
}

// dequeue pops the first frontier entry and invokes OnDequeue.
func (w *walker) dequeue() core.NodeID {
	curr := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(curr)

	return curr
}
