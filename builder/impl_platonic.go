// SPDX-License-Identifier: MIT
//
// impl_platonic.go: PlatonicSolid(name, withCenter), the skeleton of a regular polyhedron,
// optionally with a "Center" hub joined to every shell vertex.
//
// Contract:
//   - Unknown names fail with ErrOptionViolation.
//   - Without the hub every solid is planar and 3-connected.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/core"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor for the named solid.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %d: %w", methodPlatonicSolid, int(name), ErrOptionViolation)
		}
		edges, ok := platonicEdgeSets[name]
		if !ok {
			return fmt.Errorf("%s: missing edge set for %s: %w", methodPlatonicSolid, name, ErrConstructFailed)
		}
		em := newEmitter(g, cfg, methodPlatonicSolid)
		ids, err := em.vertices(n)
		if err != nil {
			return err
		}
		if err = em.chords(ids, edges); err != nil {
			return err
		}
		if !withCenter {
			return nil
		}
		if err = em.vertex(centerVertexID); err != nil {
			return err
		}
		for _, id := range ids {
			if err = em.edge(centerVertexID, id); err != nil {
				return err
			}
		}

		return nil
	}
}
