// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Public entry point that runs Constructors against a fresh core.Graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/core"
)

// Constructor adds a topology to g using the resolved configuration.
// Constructors are composable: BuildGraph runs them in order on one graph.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph from gopts, resolves bopts once, then applies cons in order.
//
// Implementation:
//   - Stage 1: core.NewGraph(gopts...).
//   - Stage 2: newBuilderConfig(bopts...).
//   - Stage 3: run each Constructor; the first failure aborts and is wrapped.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped with "BuildGraph: ".
//
// Complexity:
//   - Sum of the constructors' costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
