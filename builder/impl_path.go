// SPDX-License-Identifier: MIT
// Package: kcover/builder
//
// impl_path.go - Path(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Vertices offset+0..offset+n-1, edges i-1 — i for i=1..n-1 in increasing order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/kcover/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		cfg.addVertices(g, n)
		for i := 1; i < n; i++ {
			if err := cfg.link(g, methodPath, cfg.id(i-1), cfg.id(i), cfg.weight()); err != nil {
				return err
			}
		}

		return nil
	}
}
