// Package core declares the TrafficGraph type, its validated boundary
// types (NodeID, Minutes), sentinel errors, and constructors.
package core

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Sentinel errors for traffic graph operations.
var (
	// ErrInvalidName indicates an intersection name that is empty or
	// consists only of whitespace.
	ErrInvalidName = errors.New("core: intersection name must be a non-blank string")

	// ErrInvalidWeight indicates a travel time that is NaN, infinite,
	// zero, or negative.
	ErrInvalidWeight = errors.New("core: travel time must be finite and greater than zero")

	// ErrIntersectionNotFound indicates an operation referenced an
	// intersection that does not exist in the graph.
	ErrIntersectionNotFound = errors.New("core: intersection not found")

	// ErrStreetNotFound indicates an operation referenced a street that
	// does not exist in the graph.
	ErrStreetNotFound = errors.New("core: street not found")

	// ErrBadAdjacency indicates a malformed initial adjacency structure
	// (not a mapping of origin to destination→minutes mappings).
	ErrBadAdjacency = errors.New("core: adjacency must be a mapping of mappings")
)

// NodeID identifies an intersection by name. The zero value is invalid;
// a NodeID is valid iff it contains at least one non-whitespace rune.
type NodeID string

// ParseNodeID validates s and returns it as a NodeID.
// Returns ErrInvalidName for empty or whitespace-only input.
func ParseNodeID(s string) (NodeID, error) {
	id := NodeID(s)
	if err := id.Validate(); err != nil {
		return "", err
	}

	return id, nil
}

// Validate reports whether the NodeID is a usable intersection name.
func (id NodeID) Validate() error {
	if strings.TrimSpace(string(id)) == "" {
		return ErrInvalidName
	}

	return nil
}

// String returns the underlying name.
func (id NodeID) String() string { return string(id) }

// Minutes is a street's travel time. A Minutes value is valid iff it is
// finite and strictly greater than zero.
type Minutes float64

// ParseMinutes validates v and returns it as Minutes.
// Returns ErrInvalidWeight for NaN, ±Inf, zero, or negative input.
func ParseMinutes(v float64) (Minutes, error) {
	m := Minutes(v)
	if err := m.Validate(); err != nil {
		return 0, err
	}

	return m, nil
}

// Validate reports whether the Minutes value is a usable travel time.
func (m Minutes) Validate() error {
	v := float64(m)
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidWeight, v)
	}

	return nil
}

// Adjacency is the nested origin→{destination→minutes} mapping used to
// seed a graph at construction time and returned by Graph.Adjacency.
type Adjacency map[NodeID]map[NodeID]Minutes

// GraphOption configures a Graph before first use.
type GraphOption func(*Graph)

// WithDirected sets the directedness of the graph (true = one-way streets,
// false = every street is mirrored in both directions). Graphs are
// directed by default.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the in-memory traffic network: a set of intersections and the
// weighted streets between them. Directedness is fixed at construction.
//
// Graph is a single-owner structure: no internal locking, no concurrent
// mutation. See the package documentation for the full contract.
type Graph struct {
	directed bool
	adj      Adjacency
}

// NewGraph creates an empty Graph. By default the graph is directed;
// pass WithDirected(false) for a two-way street network.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed: true,
		adj:      make(Adjacency),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// FromAdjacency creates a Graph seeded from adj, validating every name and
// weight with the same rules as AddStreet and copying field-by-field (the
// input is never aliased). Every destination becomes an intersection of its
// own, even without outgoing streets; on an undirected graph each seeded
// street is mirrored. A nil adj yields an empty graph.
//
// Returns ErrInvalidName, ErrInvalidWeight, or ErrBadAdjacency on the first
// offending field; on error no graph is returned (validate-then-apply holds
// per edge, and callers must discard the partial result).
// Complexity: O(V + E) over the seed mapping.
func FromAdjacency(adj Adjacency, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)

	// Phase 1: register every origin so isolated intersections survive.
	for from := range adj {
		if err := g.AddIntersection(from); err != nil {
			return nil, fmt.Errorf("core: seed origin %q: %w", from, err)
		}
	}

	// Phase 2: validate and copy every street via AddStreet semantics.
	// Origins are walked in sorted order so the first reported error is
	// deterministic for a given seed.
	origins := make([]NodeID, 0, len(adj))
	for from := range adj {
		origins = append(origins, from)
	}
	sort.Slice(origins, func(i, j int) bool { return origins[i] < origins[j] })

	for _, from := range origins {
		for to, t := range adj[from] {
			if err := g.AddStreet(from, to, t); err != nil {
				return nil, fmt.Errorf("core: seed street %q→%q: %w", from, to, err)
			}
		}
	}

	return g, nil
}

// Directed reports whether the graph was constructed with one-way streets.
func (g *Graph) Directed() bool { return g.directed }
