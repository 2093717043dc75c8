// File: edges.go
// Role: Street lifecycle and queries.
//
// Determinism:
//   - Neighbors() returns destinations sorted ascending by name.
//   - Streets() carries no ordering guarantee (callers sort if they care).

package core

import (
	"fmt"
	"sort"
)

// Street is one directed adjacency entry: a weighted connection From→To.
// On an undirected graph a mutual pair appears as two Street values.
type Street struct {
	From NodeID
	To   NodeID
	Time Minutes
}

// Neighbor is one outgoing (destination, travel time) pair.
type Neighbor struct {
	To   NodeID
	Time Minutes
}

// AddStreet inserts or overwrites the street from→to with travel time t.
// Missing endpoints are auto-created as intersections. On an undirected
// graph the reverse street is set with the same weight.
// Returns ErrInvalidName or ErrInvalidWeight; validation happens before
// any mutation, so a failed call leaves the graph untouched.
// Complexity: O(1) amortized.
func (g *Graph) AddStreet(from, to NodeID, t Minutes) error {
	if err := from.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}

	if _, exists := g.adj[from]; !exists {
		g.adj[from] = make(map[NodeID]Minutes)
	}
	if _, exists := g.adj[to]; !exists {
		g.adj[to] = make(map[NodeID]Minutes)
	}

	g.adj[from][to] = t
	if !g.directed {
		g.adj[to][from] = t
	}

	return nil
}

// RemoveStreet removes the street from→to. On an undirected graph the
// reverse street is removed as well when present (asymmetric states cannot
// arise under the invariants, but removal stays defensive).
// Returns ErrInvalidName for blank names and ErrStreetNotFound if the
// street does not exist. Endpoint intersections are left in place.
// Complexity: O(1).
func (g *Graph) RemoveStreet(from, to NodeID) error {
	if err := from.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}

	out, exists := g.adj[from]
	if !exists {
		return fmt.Errorf("core: remove street %q→%q: %w", from, to, ErrStreetNotFound)
	}
	if _, exists = out[to]; !exists {
		return fmt.Errorf("core: remove street %q→%q: %w", from, to, ErrStreetNotFound)
	}

	delete(out, to)
	if !g.directed {
		if rev, ok := g.adj[to]; ok {
			delete(rev, from)
		}
	}

	return nil
}

// HasStreet reports whether the street from→to exists. Pure existence
// check: unknown names never fail, they are simply absent.
func (g *Graph) HasStreet(from, to NodeID) bool {
	out, exists := g.adj[from]
	if !exists {
		return false
	}
	_, exists = out[to]

	return exists
}

// StreetTime returns the travel time of the street from→to, or
// ErrStreetNotFound if it does not exist.
func (g *Graph) StreetTime(from, to NodeID) (Minutes, error) {
	out, exists := g.adj[from]
	if exists {
		if t, ok := out[to]; ok {
			return t, nil
		}
	}

	return 0, fmt.Errorf("core: street %q→%q: %w", from, to, ErrStreetNotFound)
}

// Streets returns every directed adjacency entry as (From, To, Time).
// Order is unspecified. The returned slice is an independent copy.
// Complexity: O(V + E).
func (g *Graph) Streets() []Street {
	result := make([]Street, 0, g.EdgeCount())
	for from, out := range g.adj {
		for to, t := range out {
			result = append(result, Street{From: from, To: to, Time: t})
		}
	}

	return result
}

// Neighbors returns the outgoing (destination, travel time) pairs of the
// intersection, ascending by destination name. An absent intersection
// yields an empty slice, not an error; only a blank name fails.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(name NodeID) ([]Neighbor, error) {
	if err := name.Validate(); err != nil {
		return nil, err
	}

	return g.sortedNeighbors(name), nil
}

// sortedNeighbors copies the outgoing entries of name in ascending
// destination order. Callers guarantee name is validated or known-present.
func (g *Graph) sortedNeighbors(name NodeID) []Neighbor {
	out, exists := g.adj[name]
	if !exists {
		return []Neighbor{}
	}

	nbrs := make([]Neighbor, 0, len(out))
	for to, t := range out {
		nbrs = append(nbrs, Neighbor{To: to, Time: t})
	}
	sort.Slice(nbrs, func(i, j int) bool { return nbrs[i].To < nbrs[j].To })

	return nbrs
}

// EdgeCount returns the total number of directed adjacency entries. On an
// undirected graph a mutual pair counts as two.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	n := 0
	for _, out := range g.adj {
		n += len(out)
	}

	return n
}
