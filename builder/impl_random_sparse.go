// SPDX-License-Identifier: MIT
//
// impl_random_sparse.go: RandomSparse(n, p), an Erdős–Rényi G(n,p) sample.
//
// Contract:
//   - n ≥ 1, p ∈ [0,1].
//   - 0 < p < 1 requires an RNG (WithSeed/WithRand), else ErrNeedRandSource.
//   - p == 0 and p == 1 are deterministic and need no RNG.
//   - Undirected graphs test each pair i<j once; directed graphs test every
//     ordered pair, with i == i only when loops are allowed.
//
// Determinism:
//   - Pairs are visited in index order, so a fixed seed reproduces the graph.
//
// Complexity:
//   - Time O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// Mirroring is not wanted here: each ordered pair is its own trial.
		em := newEmitter(g, cfg, methodRandomSparse)
		em.directed = false
		ids, err := em.vertices(n)
		if err != nil {
			return err
		}
		hit := func() bool {
			switch p {
			case 0:
				return false
			case 1:
				return true
			}

			return cfg.rng.Float64() < p
		}

		directed, loops := g.Directed(), g.Looped()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if hit() {
					if err = em.edge(ids[i], ids[j]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
