package matching

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmatch/core"
)

// MaxWeightMatching computes a maximum-weight matching of g.
//
// Returns the matched edges as normalized, sorted Pairs (empty, never nil,
// when nothing can be matched).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must be undirected (ErrDirectedGraph).
//  3. g must not allow parallel edges (ErrMultigraph).
//  4. Every weight must be finite and numeric (ErrBadWeight).
//
// Options:
//
//   - WithMaxCardinality(): maximum weight among maximum-size matchings.
//   - WithWeightKey(key), WithDefaultWeight(w): weight source.
//   - WithVerify(false): skip the integer-weight optimality check.
//   - WithLogger(l): per-stage debug traces.
//
// Complexity: O(V³) time, O(V + E) space.
func MaxWeightMatching(g *core.Graph, opts ...Option) (Pairs, error) {
	const method = "MaxWeightMatching"
	if err := validateGraph(method, g); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	ig, err := newIndexedGraph(g, &cfg)
	if err != nil {
		return nil, wrapMethod(method, err)
	}

	return solve(ig, &cfg), nil
}

// MinWeightMatching computes a minimum-weight maximum-cardinality matching.
//
// Every weight w is replaced by (1+W)-w, W being the largest weight, and the
// maximum-weight maximum-cardinality matching of the result is returned.
// Since all matchings compared have the same size this minimizes the
// original weight. WithMaxCardinality is implied.
func MinWeightMatching(g *core.Graph, opts ...Option) (Pairs, error) {
	const method = "MinWeightMatching"
	if err := validateGraph(method, g); err != nil {
		return nil, err
	}
	cfg := newConfig(append(opts, WithMaxCardinality()))
	ig, err := newIndexedGraph(g, &cfg)
	if err != nil {
		return nil, wrapMethod(method, err)
	}
	if ig.edgeCount > 0 {
		ig.invert()
	}

	return solve(ig, &cfg), nil
}

// solve runs the blossom engine on a validated snapshot.
func solve(ig *indexedGraph, cfg *config) Pairs {
	out := Pairs{}
	if len(ig.ids) == 0 {
		return out
	}

	e := newEngine(ig, cfg)
	e.run()
	if ig.allInteger && cfg.verify {
		e.verifyOptimum()
	}

	for v, m := range e.mate {
		if m != none && v < m {
			out = append(out, Pair{U: ig.ids[v], V: ig.ids[m]})
		}
	}
	out.Sort()

	cfg.log.WithFields(logrus.Fields{
		"vertices":    len(ig.ids),
		"edges":       len(ig.edges),
		"matched":     len(out),
		"integral":    ig.allInteger,
		"cardinality": cfg.maxCardinality,
	}).Debug("matching: done")

	return out
}
