// SPDX-License-Identifier: MIT
// Package: kcover/builder
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub is vertex index 0; leaves are indices 1..n-1.
//   - Spokes hub — leaf[i] in increasing i.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/kcover/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		cfg.addVertices(g, n)
		hub := cfg.id(0)
		for i := 1; i < n; i++ {
			if err := cfg.link(g, methodStar, hub, cfg.id(i), cfg.weight()); err != nil {
				return err
			}
		}

		return nil
	}
}
