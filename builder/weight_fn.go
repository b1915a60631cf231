// SPDX-License-Identifier: MIT
// Package: kcover/builder
//
// weight_fn.go - edge weight policies. All policies return non-negative weights.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight produced by DefaultWeightFn.
const DefaultEdgeWeight int64 = 1

// WeightFn draws one edge weight. rng may be nil; stochastic policies then
// fall back to a deterministic value.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws uniformly from [min, max]. Without an RNG it returns min.
// Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
