// Package core_test validates the boundary types and seeded construction.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trafficgraph/core"
)

func TestParseNodeID_Valid(t *testing.T) {
	id, err := core.ParseNodeID("Central")
	require.NoError(t, err)
	assert.Equal(t, core.NodeID("Central"), id)
	assert.Equal(t, "Central", id.String())
}

func TestParseNodeID_Invalid(t *testing.T) {
	for _, bad := range []string{"", " ", "   ", "\t", " \n "} {
		_, err := core.ParseNodeID(bad)
		assert.ErrorIs(t, err, core.ErrInvalidName, "input %q", bad)
	}
}

func TestParseMinutes_Valid(t *testing.T) {
	m, err := core.ParseMinutes(3.5)
	require.NoError(t, err)
	assert.Equal(t, core.Minutes(3.5), m)
}

func TestParseMinutes_Invalid(t *testing.T) {
	for _, bad := range []float64{0, -1, -0.001, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := core.ParseMinutes(bad)
		assert.ErrorIs(t, err, core.ErrInvalidWeight, "input %v", bad)
	}
}

func TestNewGraph_DefaultDirected(t *testing.T) {
	assert.True(t, core.NewGraph().Directed())
	assert.False(t, core.NewGraph(core.WithDirected(false)).Directed())
}

func TestFromAdjacency_SeedsDestinationOnlyNodes(t *testing.T) {
	g, err := core.FromAdjacency(core.Adjacency{
		"A": {"B": 3.5, "C": 10},
		"B": {"C": 2},
	})
	require.NoError(t, err)

	// C never appears as an origin but must exist as an intersection.
	assert.Equal(t, []core.NodeID{"A", "B", "C"}, g.Intersections())
	assert.True(t, g.HasStreet("A", "B"))
	assert.True(t, g.HasStreet("B", "C"))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestFromAdjacency_CopiesNotAliases(t *testing.T) {
	in := core.Adjacency{"A": {"B": 1}}
	g, err := core.FromAdjacency(in)
	require.NoError(t, err)

	// Mutating the input after construction must not touch the graph.
	in["A"]["B"] = 99
	in["A"]["Z"] = 5
	tm, err := g.StreetTime("A", "B")
	require.NoError(t, err)
	assert.Equal(t, core.Minutes(1), tm)
	assert.False(t, g.HasStreet("A", "Z"))
}

func TestFromAdjacency_UndirectedMirrors(t *testing.T) {
	g, err := core.FromAdjacency(core.Adjacency{
		"A": {"B": 4},
	}, core.WithDirected(false))
	require.NoError(t, err)

	assert.True(t, g.HasStreet("A", "B"))
	assert.True(t, g.HasStreet("B", "A"))
	forward, err := g.StreetTime("A", "B")
	require.NoError(t, err)
	backward, err := g.StreetTime("B", "A")
	require.NoError(t, err)
	assert.Equal(t, forward, backward)
}

func TestFromAdjacency_InvalidFields(t *testing.T) {
	_, err := core.FromAdjacency(core.Adjacency{" ": {"B": 1}})
	assert.ErrorIs(t, err, core.ErrInvalidName)

	_, err = core.FromAdjacency(core.Adjacency{"A": {"  ": 1}})
	assert.ErrorIs(t, err, core.ErrInvalidName)

	_, err = core.FromAdjacency(core.Adjacency{"A": {"B": -2}})
	assert.ErrorIs(t, err, core.ErrInvalidWeight)
}

func TestFromAdjacency_NilIsEmpty(t *testing.T) {
	g, err := core.FromAdjacency(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}
