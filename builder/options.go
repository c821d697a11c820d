// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: BuilderOption constructors. Invalid arguments panic at option construction,
// so misuse is caught where the option is written rather than deep inside a build.

package builder

import "math/rand"

// BuilderOption mutates the builder configuration before any Constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index -> vertex ID function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand sets the RNG used by stochastic constructors and weight functions. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithPartitionPrefix sets the bipartite side prefixes. Empty values fall back to "L"/"R".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) { c.leftPrefix, c.rightPrefix = left, right }
}
