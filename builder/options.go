// SPDX-License-Identifier: MIT
// Package: kcover/builder
//
// options.go - BuilderOption constructors. Invalid arguments panic.

package builder

import (
	"math/rand"
)

// BuilderOption mutates builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithRand attaches a caller-owned RNG.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a fresh RNG seeded with seed, for reproducible draws.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge-weight policy.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithDirected makes constructors emit only forward arcs (i→j) instead of
// mirrored pairs.
func WithDirected() BuilderOption {
	return func(c *builderConfig) {
		c.directed = true
	}
}

// WithIDOffset sets the ID given to vertex index 0.
func WithIDOffset(offset int) BuilderOption {
	return func(c *builderConfig) {
		c.offset = offset
	}
}
