// SPDX-License-Identifier: MIT
//
// impl_cycle.go: Cycle(n), the ring C_n with edges i -> (i+1) mod n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		em := newEmitter(g, cfg, methodCycle)
		ids, err := em.vertices(n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = em.edge(ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
