package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/trafficgraph/core"
)

// FastestRoute computes the minimum-travel-time route from origin to
// destination, applying any number of functional Options.
//
// Returns ErrGraphNil for a nil graph, core.ErrInvalidName for blank
// names, and a wrapped core.ErrIntersectionNotFound if either endpoint is
// absent. An unreachable destination is a normal result: an empty path
// with TotalTime == +Inf.
func FastestRoute(g *core.Graph, origin, destination core.NodeID, opts ...Option) (*Route, error) {
	// 1. Validate graph and options.
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

	// 2. Validate both endpoints.
	if err := origin.Validate(); err != nil {
		return nil, err
	}
	if err := destination.Validate(); err != nil {
		return nil, err
	}
	if !g.HasIntersection(origin) {
		return nil, fmt.Errorf("dijkstra: origin %q: %w", origin, core.ErrIntersectionNotFound)
	}
	if !g.HasIntersection(destination) {
		return nil, fmt.Errorf("dijkstra: destination %q: %w", destination, core.ErrIntersectionNotFound)
	}

	// 3. Initialize distances to +Inf, predecessors to none.
	n := g.NodeCount()
	r := &runner{
		graph:   g,
		opts:    o,
		dist:    make(map[core.NodeID]float64, n),
		prev:    make(map[core.NodeID]core.NodeID, n),
		visited: make(map[core.NodeID]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for _, id := range g.Intersections() {
		r.dist[id] = math.Inf(1)
	}
	r.dist[origin] = 0

	// 4. Run the main loop, stopping early once destination is finalized.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: origin, dist: 0})
	if err := r.process(destination); err != nil {
		return nil, err
	}

	// 5. Unreachable destination: empty path, infinite total. Not an error.
	total := r.dist[destination]
	if math.IsInf(total, 1) {
		return &Route{Path: []core.NodeID{}, TotalTime: total}, nil
	}

	// 6. Reconstruct the path by walking predecessors back to origin.
	return &Route{Path: r.walkBack(origin, destination), TotalTime: total}, nil
}

// runner holds the mutable state for a single computation.
type runner struct {
	graph   *core.Graph
	opts    Options
	dist    map[core.NodeID]float64     // best-known total from origin
	prev    map[core.NodeID]core.NodeID // predecessor on the best route
	visited map[core.NodeID]bool        // distance finalized
	pq      nodePQ
}

// process pops the cheapest unfinalized intersection, finalizes it, and
// relaxes its outgoing streets, until the destination is finalized or the
// heap empties. Only finite distances are ever pushed, so an exhausted
// heap means every remaining intersection is unreachable.
func (r *runner) process(destination core.NodeID) error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Stale entry under lazy-decrease-key: already finalized.
		if r.visited[item.id] {
			continue
		}
		// Beyond the travel-time cap nothing cheaper can follow.
		if item.dist > r.opts.MaxTime {
			break
		}

		r.visited[item.id] = true
		if item.id == destination {
			break
		}

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every neighbor of u.
// Assumes dist[u] is finalized.
func (r *runner) relax(u core.NodeID) error {
	nbrs, err := r.graph.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	for _, nb := range nbrs {
		candidate := r.dist[u] + float64(nb.Time)
		if candidate > r.opts.MaxTime {
			continue
		}
		// Strict improvement only; equal-cost alternatives keep the
		// first (deterministic) predecessor.
		if candidate >= r.dist[nb.To] {
			continue
		}

		r.dist[nb.To] = candidate
		r.prev[nb.To] = u
		heap.Push(&r.pq, &nodeItem{id: nb.To, dist: candidate})
	}

	return nil
}

// walkBack reconstructs origin→destination from the predecessor map.
func (r *runner) walkBack(origin, destination core.NodeID) []core.NodeID {
	reversed := make([]core.NodeID, 0, len(r.prev)+1)
	for curr := destination; ; curr = r.prev[curr] {
		reversed = append(reversed, curr)
		if curr == origin {
			break
		}
	}

	path := make([]core.NodeID, len(reversed))
	for i, id := range reversed {
		path[len(path)-1-i] = id
	}

	return path
}

// nodeItem pairs an intersection with its tentative total travel time.
type nodeItem struct {
	id   core.NodeID
	dist float64
}

// nodePQ is a min-heap of *nodeItem under the lazy-decrease-key pattern:
// improved distances are pushed as fresh entries and stale ones skipped
// when popped. Ties on distance break by name ascending so the pop order
// is deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
