// SPDX-License-Identifier: MIT
// Package: kcover/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Undirected: one mirrored pair per i<j. Directed: arcs i→j for every i≠j.
//
// Complexity: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/kcover/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		cfg.addVertices(g, n)

		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j || (!cfg.directed && j < i) {
					continue
				}
				if err := cfg.link(g, methodComplete, cfg.id(i), cfg.id(j), cfg.weight()); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
