// File: vertices.go
// Role: Intersection lifecycle and queries.
//
// Determinism:
//   - Intersections() returns names sorted lexicographically ascending.

package core

import (
	"fmt"
	"sort"
)

// AddIntersection inserts an intersection if missing (idempotent).
// Returns ErrInvalidName for a blank name; adding an existing
// intersection is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddIntersection(name NodeID) error {
	if err := name.Validate(); err != nil {
		return err
	}
	if _, exists := g.adj[name]; exists {
		return nil
	}
	g.adj[name] = make(map[NodeID]Minutes)

	return nil
}

// RemoveIntersection removes the intersection and every street touching it,
// outgoing and inbound, so no dangling street remains.
// Returns ErrInvalidName for a blank name and ErrIntersectionNotFound if
// the intersection does not exist.
// Complexity: O(V) (every remaining intersection is checked for an
// inbound street).
func (g *Graph) RemoveIntersection(name NodeID) error {
	if err := name.Validate(); err != nil {
		return err
	}
	if _, exists := g.adj[name]; !exists {
		return fmt.Errorf("core: remove intersection %q: %w", name, ErrIntersectionNotFound)
	}

	// Drop the outgoing entry, then sweep it out of every neighbor map.
	delete(g.adj, name)
	for _, out := range g.adj {
		delete(out, name)
	}

	return nil
}

// HasIntersection reports whether the intersection exists. Pure existence
// check: an invalid name is simply absent, never an error.
func (g *Graph) HasIntersection(name NodeID) bool {
	_, exists := g.adj[name]

	return exists
}

// Intersections returns all intersection names in ascending lexical order.
// The returned slice is an independent copy.
// Complexity: O(V log V).
func (g *Graph) Intersections() []NodeID {
	ids := make([]NodeID, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// NodeCount returns the number of intersections.
func (g *Graph) NodeCount() int { return len(g.adj) }
