// SPDX-License-Identifier: MIT
//
// impl_wheel.go: Wheel(n), the rim C_{n-1} plus a "Center" hub joined to every rim vertex.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // rim needs ≥ 3 vertices
)

// Wheel returns a Constructor that builds W_n (n ≥ 4, hub included).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		em := newEmitter(g, cfg, methodWheel)
		if err := em.vertex(centerVertexID); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := em.edge(centerVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
