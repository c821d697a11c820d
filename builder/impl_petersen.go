// SPDX-License-Identifier: MIT
//
// impl_petersen.go: Petersen(), the 3-regular graph on 10 vertices with
// girth 5 and 120 automorphisms; the standard non-planar, symmetric fixture.

package builder

import "github.com/katalvlaran/lvmatch/core"

const methodPetersen = "Petersen"

// Petersen returns a Constructor for the Petersen graph (outer 0..4, inner 5..9).
func Petersen() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		em := newEmitter(g, cfg, methodPetersen)
		ids, err := em.vertices(10)
		if err != nil {
			return err
		}

		return em.chords(ids, petersenEdges)
	}
}
