// SPDX-License-Identifier: MIT
// Package: kcover/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighborhood.
//   - Cell (r,c) has ID offset + r*cols + c (row-major).
//   - For each cell, emit Right then Bottom neighbor where present.
//   - Directed mode still emits both arcs so the grid stays traversable.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//
// Complexity: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/kcover/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		cfg.addVertices(g, rows*cols)

		// Grid arcs are always mirrored.
		undirected := cfg
		undirected.directed = false

		cell := func(r, c int) int { return cfg.id(r*cols + c) }
		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				if c+1 < cols {
					if err := undirected.link(g, methodGrid, cell(r, c), cell(r, c+1), cfg.weight()); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := undirected.link(g, methodGrid, cell(r, c), cell(r+1, c), cfg.weight()); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
