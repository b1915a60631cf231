// SPDX-License-Identifier: MIT
// Package: kcover/builder
//
// impl_cycle.go - Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Path edges i-1 — i, then the closing edge n-1 — 0.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/kcover/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the cycle C_n.
func Cycle(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		cfg.addVertices(g, n)
		for i := 1; i < n; i++ {
			if err := cfg.link(g, methodCycle, cfg.id(i-1), cfg.id(i), cfg.weight()); err != nil {
				return err
			}
		}

		return cfg.link(g, methodCycle, cfg.id(n-1), cfg.id(0), cfg.weight())
	}
}
