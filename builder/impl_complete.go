// SPDX-License-Identifier: MIT
//
// impl_complete.go: Complete(n), the complete simple graph K_n.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Pairs {i,j}, i<j, are emitted in lexicographic index order.
//
// Complexity:
//   - Time O(n²), Space O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		em := newEmitter(g, cfg, methodComplete)
		ids, err := em.vertices(n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = em.edge(ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
