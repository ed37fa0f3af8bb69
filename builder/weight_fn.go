// Package builder provides edge payload generators for fixture constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/outedges/core"
)

// DefaultEdgeWeight is what UniformIntWeightFn yields without an RNG.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge payload given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn[W core.Weight] func(rng *rand.Rand) W

// ZeroWeightFn always returns the zero value of W.
func ZeroWeightFn[W core.Weight](_ *rand.Rand) W {
	var zero W
	return zero
}

// UnweightedFn is the payload generator for core.Unweighted registries.
func UnweightedFn(_ *rand.Rand) core.Unweighted {
	return core.Unweighted{}
}

// ConstantWeightFn returns a WeightFn that always yields value.
func ConstantWeightFn[W core.Weight](value W) WeightFn[W] {
	return func(_ *rand.Rand) W {
		return value
	}
}

// UniformIntWeightFn samples uniformly in [min, max] inclusive.
// With a nil rng it yields DefaultEdgeWeight. Panics if max < min.
func UniformIntWeightFn(min, max int64) WeightFn[int64] {
	if max < min {
		panic(fmt.Sprintf("UniformIntWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
