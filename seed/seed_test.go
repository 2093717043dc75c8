// Package seed_test validates YAML adjacency loading.
package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trafficgraph/core"
	"github.com/katalvlaran/trafficgraph/seed"
)

const triangleYAML = `
A:
  B: 3.5
  C: 10
B:
  C: 2
`

func TestFromBytes_Triangle(t *testing.T) {
	g, err := seed.FromBytes([]byte(triangleYAML))
	require.NoError(t, err)

	assert.Equal(t, []core.NodeID{"A", "B", "C"}, g.Intersections())
	assert.Equal(t, 3, g.EdgeCount())

	tm, err := g.StreetTime("A", "B")
	require.NoError(t, err)
	assert.Equal(t, core.Minutes(3.5), tm)
}

func TestFromBytes_UndirectedMirrors(t *testing.T) {
	g, err := seed.FromBytes([]byte("A:\n  B: 4\n"), core.WithDirected(false))
	require.NoError(t, err)

	assert.True(t, g.HasStreet("A", "B"))
	assert.True(t, g.HasStreet("B", "A"))
}

func TestParse_BadShape(t *testing.T) {
	for name, doc := range map[string]string{
		"sequence":        "- A\n- B\n",
		"scalar":          "just a string\n",
		"scalar leaves":   "A: downtown\n",
		"non-numeric":     "A:\n  B: fast\n",
		"nested too deep": "A:\n  B:\n    C: 1\n",
	} {
		_, err := seed.Parse([]byte(doc))
		assert.ErrorIs(t, err, core.ErrBadAdjacency, "case %s", name)
	}
}

func TestFromBytes_WeightValidationApplies(t *testing.T) {
	_, err := seed.FromBytes([]byte("A:\n  B: 0\n"))
	assert.ErrorIs(t, err, core.ErrInvalidWeight)

	_, err = seed.FromBytes([]byte("A:\n  B: -2.5\n"))
	assert.ErrorIs(t, err, core.ErrInvalidWeight)
}

func TestFromBytes_EmptyDocument(t *testing.T) {
	g, err := seed.FromBytes(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "network.yaml")
	require.NoError(t, os.WriteFile(path, []byte(triangleYAML), 0o600))

	g, err := seed.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())

	_, err = seed.FromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
