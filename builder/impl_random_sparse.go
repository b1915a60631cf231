// SPDX-License-Identifier: MIT
// Package: kcover/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor (Erdős–Rényi G(n,p)).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   - 0 < p < 1 requires an RNG (else ErrNeedRandSource); p = 0 and p = 1 are deterministic.
//   - Undirected: each unordered pair i<j is drawn once. Directed: each ordered pair i≠j.
//   - Pairs are visited in (i asc, j asc) order, so a fixed seed reproduces the graph.
//
// Complexity: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/kcover/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that includes each candidate edge with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		cfg.addVertices(g, n)

		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j || (!cfg.directed && j < i) {
					continue
				}
				if !draw(cfg, p) {
					continue
				}
				if err := cfg.link(g, methodRandomSparse, cfg.id(i), cfg.id(j), cfg.weight()); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// draw reports whether a candidate edge is kept.
func draw(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
