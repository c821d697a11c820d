// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors. Constructors wrap them as
// "<Method>: <details>: %w" so callers can branch with errors.Is.

package builder

import "errors"

var (
	// ErrTooFewVertices reports a size parameter below the topology minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability reports a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource reports a stochastic constructor run without WithRand/WithSeed.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed reports an internal construction failure (nil constructor, missing table).
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrOptionViolation reports an unknown enumerated parameter.
	ErrOptionViolation = errors.New("builder: invalid option value")
)
