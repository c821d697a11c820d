// SPDX-License-Identifier: MIT
//
// impl_grid.go: Grid(rows, cols), the 4-neighbour lattice with vertex IDs "r,c".
//
// Complexity:
//   - Time O(rows·cols).

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvmatch/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridID returns the vertex ID of cell (r, c).
func GridID(r, c int) string { return strconv.Itoa(r) + "," + strconv.Itoa(c) }

// Grid returns a Constructor that builds a rows×cols lattice. IDs ignore the idFn scheme.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		em := newEmitter(g, cfg, methodGrid)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := em.vertex(GridID(r, c)); err != nil {
					return err
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := em.edge(GridID(r, c), GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := em.edge(GridID(r, c), GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
