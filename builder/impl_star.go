// SPDX-License-Identifier: MIT
//
// impl_star.go: Star(n), a hub "Center" joined to leaves idFn(1..n-1).
//
// Contract:
//   - n counts the hub, so Star(4) has three leaves; n ≥ 2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		em := newEmitter(g, cfg, methodStar)
		if err := em.vertex(centerVertexID); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := em.vertex(leaf); err != nil {
				return err
			}
			if err := em.edge(centerVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
