// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Resolved builder configuration and the shared vertex/edge emitter.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvmatch/core"
)

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"

	// centerVertexID names the hub of Star, Wheel and centered solids.
	centerVertexID = "Center"
)

// builderConfig is the snapshot every Constructor receives.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn

	leftPrefix  string
	rightPrefix string
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// emitter adds vertices and edges on behalf of one Constructor,
// drawing weights only when the graph observes them and mirroring
// edges on directed graphs so every topology stays symmetric.
type emitter struct {
	g        *core.Graph
	cfg      builderConfig
	method   string
	weighted bool
	directed bool
}

func newEmitter(g *core.Graph, cfg builderConfig, method string) *emitter {
	return &emitter{g: g, cfg: cfg, method: method, weighted: g.Weighted(), directed: g.Directed()}
}

// vertices adds idFn(0..n-1) and returns the IDs in index order.
func (em *emitter) vertices(n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = em.cfg.idFn(i)
		if err := em.vertex(ids[i]); err != nil {
			return nil, err
		}
	}

	return ids, nil
}

func (em *emitter) vertex(id string) error {
	if err := em.g.AddVertex(id); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", em.method, id, err)
	}

	return nil
}

// edge adds u-v (and v->u on directed graphs) with one drawn weight.
func (em *emitter) edge(u, v string) error {
	var w float64
	if em.weighted {
		w = em.cfg.weightFn(em.cfg.rng)
	}
	if _, err := em.g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", em.method, u, v, w, err)
	}
	if em.directed {
		if _, err := em.g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", em.method, v, u, w, err)
		}
	}

	return nil
}

// chords adds one edge per index pair, resolving indices through ids.
func (em *emitter) chords(ids []string, cs []chord) error {
	for _, c := range cs {
		if err := em.edge(ids[c.U], ids[c.V]); err != nil {
			return err
		}
	}

	return nil
}
