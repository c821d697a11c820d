// SPDX-License-Identifier: MIT
//
// impl_bipartite.go: CompleteBipartite(n1, n2) with sides "<left>i" and "<right>j".

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		em := newEmitter(g, cfg, methodCompleteBipartite)
		left, err := prefixed(em, cfg.leftPrefix, n1)
		if err != nil {
			return err
		}
		right, err := prefixed(em, cfg.rightPrefix, n2)
		if err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err = em.edge(u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

func prefixed(em *emitter, prefix string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%s%d", prefix, i)
		if err := em.vertex(ids[i]); err != nil {
			return nil, err
		}
	}

	return ids, nil
}
