package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trafficgraph/core"
)

// Parse decodes data into an adjacency mapping. A document that is not a
// mapping of origin to destination→minutes mappings fails with a wrapped
// core.ErrBadAdjacency. Parse validates shape only; name and weight
// validation happens in core.FromAdjacency.
func Parse(data []byte) (core.Adjacency, error) {
	var raw map[string]map[string]float64
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrBadAdjacency, err)
	}

	adj := make(core.Adjacency, len(raw))
	for from, outs := range raw {
		inner := make(map[core.NodeID]core.Minutes, len(outs))
		for to, t := range outs {
			inner[core.NodeID(to)] = core.Minutes(t)
		}
		adj[core.NodeID(from)] = inner
	}

	return adj, nil
}

// FromBytes decodes data and builds a validated graph from it.
func FromBytes(data []byte, opts ...core.GraphOption) (*core.Graph, error) {
	adj, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return core.FromAdjacency(adj, opts...)
}

// FromFile reads a YAML seed file and builds a validated graph from it.
func FromFile(path string, opts ...core.GraphOption) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}

	return FromBytes(data, opts...)
}
