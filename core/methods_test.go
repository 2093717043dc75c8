// Package core_test validates mutation and inspection operations.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trafficgraph/core"
)

// buildTriangle constructs the reference directed network:
//
//	A→B (3.5), B→C (2.0), A→C (10.0)
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddStreet("A", "B", 3.5))
	require.NoError(t, g.AddStreet("B", "C", 2))
	require.NoError(t, g.AddStreet("A", "C", 10))

	return g
}

func TestAddIntersection_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddIntersection("A"))
	require.NoError(t, g.AddIntersection("A"))

	assert.Equal(t, []core.NodeID{"A"}, g.Intersections())
	assert.Equal(t, 1, g.NodeCount())
}

func TestAddIntersection_BlankName(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddIntersection("  "), core.ErrInvalidName)
	assert.Equal(t, 0, g.NodeCount())
}

func TestRemoveIntersection_NotFound(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.RemoveIntersection("ghost"), core.ErrIntersectionNotFound)
}

func TestRemoveIntersection_SweepsInboundStreets(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.RemoveIntersection("B"))

	assert.False(t, g.HasIntersection("B"))
	assert.False(t, g.HasStreet("A", "B"))
	assert.False(t, g.HasStreet("B", "C"))
	// A and C survive, still connected directly.
	assert.True(t, g.HasIntersection("A"))
	assert.True(t, g.HasIntersection("C"))
	assert.True(t, g.HasStreet("A", "C"))

	// No remaining intersection may still point at B.
	for _, m := range g.Intersections() {
		assert.False(t, g.HasStreet(m, "B"), "dangling street %s→B", m)
	}
}

func TestAddStreet_AutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddStreet("A", "B", 1.5))

	assert.True(t, g.HasIntersection("A"))
	assert.True(t, g.HasIntersection("B"))
	assert.True(t, g.HasStreet("A", "B"))
	assert.False(t, g.HasStreet("B", "A"))
}

func TestAddStreet_OverwritesWeight(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddStreet("A", "B", 1))
	require.NoError(t, g.AddStreet("A", "B", 7))

	tm, err := g.StreetTime("A", "B")
	require.NoError(t, err)
	assert.Equal(t, core.Minutes(7), tm)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddStreet_ValidateThenApply(t *testing.T) {
	g := core.NewGraph()
	// A failed validation must not auto-create either endpoint.
	assert.ErrorIs(t, g.AddStreet("A", "B", 0), core.ErrInvalidWeight)
	assert.False(t, g.HasIntersection("A"))
	assert.False(t, g.HasIntersection("B"))

	assert.ErrorIs(t, g.AddStreet("", "B", 1), core.ErrInvalidName)
	assert.False(t, g.HasIntersection("B"))
}

func TestAddStreet_SelfLoopPermitted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddStreet("A", "A", 1))
	assert.True(t, g.HasStreet("A", "A"))
}

func TestRemoveStreet_RoundTrip(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddStreet("A", "B", 2))
	require.NoError(t, g.RemoveStreet("A", "B"))

	assert.False(t, g.HasStreet("A", "B"))
	// Endpoints are left in place.
	assert.True(t, g.HasIntersection("A"))
	assert.True(t, g.HasIntersection("B"))
}

func TestRemoveStreet_NotFound(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddIntersection("A"))

	assert.ErrorIs(t, g.RemoveStreet("A", "B"), core.ErrStreetNotFound)
	assert.ErrorIs(t, g.RemoveStreet("X", "Y"), core.ErrStreetNotFound)
}

// assertSymmetric checks the undirected invariant over every pair.
func assertSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	ids := g.Intersections()
	for _, a := range ids {
		for _, b := range ids {
			assert.Equal(t, g.HasStreet(a, b), g.HasStreet(b, a), "asymmetric pair %s/%s", a, b)
			if g.HasStreet(a, b) {
				fw, err := g.StreetTime(a, b)
				require.NoError(t, err)
				bw, err := g.StreetTime(b, a)
				require.NoError(t, err)
				assert.Equal(t, fw, bw, "unequal weights %s/%s", a, b)
			}
		}
	}
}

func TestUndirected_SymmetryAfterEveryMutation(t *testing.T) {
	g := core.NewGraph(core.WithDirected(false))

	require.NoError(t, g.AddStreet("A", "B", 3))
	assertSymmetric(t, g)
	assert.Equal(t, 2, g.EdgeCount(), "a mutual pair counts as two directed entries")

	require.NoError(t, g.AddStreet("B", "C", 1))
	assertSymmetric(t, g)

	require.NoError(t, g.RemoveStreet("B", "A"))
	assert.False(t, g.HasStreet("A", "B"))
	assertSymmetric(t, g)

	require.NoError(t, g.AddStreet("A", "C", 4))
	require.NoError(t, g.RemoveIntersection("C"))
	assertSymmetric(t, g)
}

func TestNeighbors_SortedAscending(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddStreet("X", "C", 3))
	require.NoError(t, g.AddStreet("X", "A", 1))
	require.NoError(t, g.AddStreet("X", "B", 2))

	nbrs, err := g.Neighbors("X")
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{
		{To: "A", Time: 1},
		{To: "B", Time: 2},
		{To: "C", Time: 3},
	}, nbrs)
}

func TestNeighbors_AbsentIsEmptyNotError(t *testing.T) {
	g := core.NewGraph()
	nbrs, err := g.Neighbors("nowhere")
	require.NoError(t, err)
	assert.Empty(t, nbrs)

	_, err = g.Neighbors(" ")
	assert.ErrorIs(t, err, core.ErrInvalidName)
}

func TestStreets_ListsEveryDirectedEntry(t *testing.T) {
	g := buildTriangle(t)
	streets := g.Streets()
	assert.Len(t, streets, 3)
	assert.ElementsMatch(t, []core.Street{
		{From: "A", To: "B", Time: 3.5},
		{From: "B", To: "C", Time: 2},
		{From: "A", To: "C", Time: 10},
	}, streets)
}

func TestNodeCount_MatchesIntersections(t *testing.T) {
	g := buildTriangle(t)
	assert.Equal(t, len(g.Intersections()), g.NodeCount())

	require.NoError(t, g.AddIntersection("D"))
	assert.Equal(t, len(g.Intersections()), g.NodeCount())
}
