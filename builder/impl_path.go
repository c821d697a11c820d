// SPDX-License-Identifier: MIT
//
// impl_path.go: Path(n), the simple path P_n with edges i -> i+1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds P_n (n ≥ 2).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		em := newEmitter(g, cfg, methodPath)
		ids, err := em.vertices(n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = em.edge(ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
