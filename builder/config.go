// SPDX-License-Identifier: MIT
// Package: kcover/builder
//
// config.go - resolved builder configuration and its defaults.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/kcover/core"
)

// builderConfig is the resolved, immutable configuration passed to constructors.
type builderConfig struct {
	rng      *rand.Rand // nil means "no randomness"
	weightFn WeightFn   // edge weight policy
	directed bool       // emit forward arcs only
	offset   int        // ID of vertex index 0
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
		directed: false,
		offset:   0,
	}
	// Last option wins.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor-local index to a vertex ID.
func (c builderConfig) id(i int) int { return c.offset + i }

// weight draws the next edge weight.
func (c builderConfig) weight() int64 { return c.weightFn(c.rng) }

// link adds u→v, plus v→u unless the configuration is directed.
func (c builderConfig) link(g core.Graph, method string, u, v int, w int64) error {
	var err error
	if c.directed {
		err = g.AddEdge(u, v, w)
	} else {
		err = g.AddUndirectedEdge(u, v, w)
	}
	if err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// addVertices registers IDs for indices 0..n-1 in ascending order.
func (c builderConfig) addVertices(g core.Graph, n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(c.id(i))
	}
}
