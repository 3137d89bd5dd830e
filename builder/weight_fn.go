// SPDX-License-Identifier: MIT
// Package: ncd/builder
//
// weight_fn.go - edge weight generators for weighted fixtures.
//
// Unweighted graphs ignore the generator entirely (see builderConfig.weight).
// Weights are never negative: community detection rejects them.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge unless WithWeightFn is set.
const DefaultEdgeWeight float64 = 1

// WeightFn draws the weight of the next edge. rng is nil for unseeded builds.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a generator that always yields w. Panics if w < 0.
func ConstantWeightFn(w float64) WeightFn {
	if !(w >= 0) {
		panic(fmt.Sprintf("builder: ConstantWeightFn(%g): weight must be >= 0", w))
	}

	return func(_ *rand.Rand) float64 { return w }
}

// UniformWeightFn returns a generator drawing from [lo, hi). Without an rng
// it yields the midpoint. Panics unless 0 <= lo <= hi.
func UniformWeightFn(lo, hi float64) WeightFn {
	if !(lo >= 0) || !(hi >= lo) {
		panic(fmt.Sprintf("builder: UniformWeightFn(%g, %g): need 0 <= lo <= hi", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || hi == lo {
			return (lo + hi) / 2
		}

		return lo + rng.Float64()*(hi-lo)
	}
}
