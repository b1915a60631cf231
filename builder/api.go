// SPDX-License-Identifier: MIT
// Package: kcover/builder
//
// api.go - public entry point tying BuilderOption and Constructor together.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kcover/core"
)

// Constructor adds a topology to g using the resolved builder configuration.
// Implementations must return errors instead of panicking.
type Constructor func(g core.Graph, cfg builderConfig) error

// BuildGraph allocates an empty graph, resolves the builder configuration and
// applies every constructor in order. Constructors compose: applying Path(3)
// and Star(4) with different WithIDOffset values yields two components.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (core.Graph, error) {
	g := core.NewGraph(0)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors on an existing graph, e.g. to add a component to a
// graph decoded from a file.
func Apply(g core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}
