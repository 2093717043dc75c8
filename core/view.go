// File: view.go
// Role: Non-mutating views of the graph (rendering, snapshots, cloning).
//
// Determinism:
//   - Render() walks intersections and neighbors in ascending order, so
//     the output is byte-for-byte reproducible for a given graph state.

package core

import (
	"fmt"
	"strings"
)

// Render produces a human-readable multi-line view of the network: one
// line per intersection in ascending order, listing its outgoing streets
// in ascending destination order with weights to two decimal places.
//
//	A -> B (3.50 min), C (10.00 min)
//	B -> C (2.00 min)
//	C ->
//
// Complexity: O(V log V + E log E).
func (g *Graph) Render() string {
	var b strings.Builder
	for i, from := range g.Intersections() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(from))
		b.WriteString(" -> ")
		for j, nb := range g.sortedNeighbors(from) {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s (%.2f min)", nb.To, float64(nb.Time))
		}
	}

	return b.String()
}

// Adjacency returns a deep copy of the adjacency mapping. Mutating the
// returned structure does not affect the graph.
// Complexity: O(V + E).
func (g *Graph) Adjacency() Adjacency {
	out := make(Adjacency, len(g.adj))
	for from, dests := range g.adj {
		inner := make(map[NodeID]Minutes, len(dests))
		for to, t := range dests {
			inner[to] = t
		}
		out[from] = inner
	}

	return out
}

// Clone returns an independent deep copy of the graph with the same
// directedness. Mutations on either graph never affect the other.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return &Graph{
		directed: g.directed,
		adj:      g.Adjacency(),
	}
}

// String implements fmt.Stringer with a compact one-line summary.
func (g *Graph) String() string {
	return fmt.Sprintf("TrafficGraph(directed=%t, intersections=%d, streets=%d)",
		g.directed, g.NodeCount(), g.EdgeCount())
}
