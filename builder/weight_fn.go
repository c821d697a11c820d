// SPDX-License-Identifier: MIT
//
// File: weight_fn.go
// Role: Edge weight generators. A nil rng makes stochastic generators
// fall back to DefaultEdgeWeight so deterministic builds never panic.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is used when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn draws one edge weight.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 { return DefaultEdgeWeight }

// ConstantWeightFn always returns value.
func ConstantWeightFn(value float64) WeightFn {
	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn draws from U[min,max). Panics if max < min.
func UniformWeightFn(min, max float64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntUniformWeightFn draws an integer uniformly from [min,max].
// Integer weights let the matching engine run its optimality self-check.
func IntUniformWeightFn(min, max int) WeightFn {
	if max < min {
		panic(fmt.Sprintf("IntUniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// NormalWeightFn draws round(N(mean, stddev)) clipped at 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %g", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Max(0, math.Round(rng.NormFloat64()*stddev+mean))
	}
}

// WithConstantWeight selects ConstantWeightFn(w).
func WithConstantWeight(w float64) BuilderOption { return WithWeightFn(ConstantWeightFn(w)) }

// WithUniformWeight selects UniformWeightFn(min, max).
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntWeight selects IntUniformWeightFn(min, max).
func WithIntWeight(min, max int) BuilderOption { return WithWeightFn(IntUniformWeightFn(min, max)) }

// WithNormalWeight selects NormalWeightFn(mean, stddev).
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}
