package matching

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvmatch/core"
)

// indexedGraph is the engine's read-only snapshot of the input: vertices are
// numbered in sorted ID order, adjacency is loop-free and sorted, weights are
// keyed by the unordered index pair.
type indexedGraph struct {
	ids     []string
	index   map[string]int
	adj     [][]int
	weights map[uint64]float64

	// edges lists each non-loop edge once as (lo, hi).
	edges []arc

	maxWeight  float64 // max over non-loop edges, at least 0
	maxAll     float64 // max over every edge, loops included
	edgeCount  int     // loops included
	allInteger bool
}

func pairKey(u, v int) uint64 {
	if v < u {
		u, v = v, u
	}

	return uint64(u)<<32 | uint64(v)
}

func (ig *indexedGraph) weight(u, v int) float64 { return ig.weights[pairKey(u, v)] }

// validateGraph applies the input rules shared by every engine entry point.
func validateGraph(method string, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	if g.Directed() || g.HasDirectedEdges() {
		return fmt.Errorf("%s: %w", method, ErrDirectedGraph)
	}
	if g.Multigraph() {
		return fmt.Errorf("%s: %w", method, ErrMultigraph)
	}

	return nil
}

// edgeWeight resolves the weight of e under cfg.
func edgeWeight(g *core.Graph, e *core.Edge, cfg *config) (float64, error) {
	w := cfg.defaultWeight
	if cfg.weightKey == DefaultWeightKey && g.Weighted() {
		if e.HasWeight() {
			w = e.Weight
		}
	} else if raw, ok := e.Metadata[cfg.weightKey]; ok {
		v, ok := toFloat(raw)
		if !ok {
			return 0, fmt.Errorf("edge %s-%s: attribute %q=%v: %w", e.From, e.To, cfg.weightKey, raw, ErrBadWeight)
		}
		w = v
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("edge %s-%s: weight %v: %w", e.From, e.To, w, ErrBadWeight)
	}

	return w, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}

func isIntegral(w float64) bool { return w == math.Trunc(w) }

// newIndexedGraph snapshots g. The caller has validated g.
func newIndexedGraph(g *core.Graph, cfg *config) (*indexedGraph, error) {
	ids := g.Vertices()
	ig := &indexedGraph{
		ids:        ids,
		index:      make(map[string]int, len(ids)),
		adj:        make([][]int, len(ids)),
		weights:    make(map[uint64]float64),
		allInteger: true,
	}
	for i, id := range ids {
		ig.index[id] = i
	}

	first := true
	for _, e := range g.Edges() {
		w, err := edgeWeight(g, e, cfg)
		if err != nil {
			return nil, err
		}
		ig.edgeCount++
		ig.allInteger = ig.allInteger && isIntegral(w)
		if first || w > ig.maxAll {
			ig.maxAll = w
			first = false
		}
		u, v := ig.index[e.From], ig.index[e.To]
		if u == v {
			continue
		}
		if w > ig.maxWeight {
			ig.maxWeight = w
		}
		key := pairKey(u, v)
		if _, dup := ig.weights[key]; dup {
			continue
		}
		ig.weights[key] = w
		ig.adj[u] = append(ig.adj[u], v)
		ig.adj[v] = append(ig.adj[v], u)
		if u < v {
			ig.edges = append(ig.edges, arc{from: u, to: v})
		} else {
			ig.edges = append(ig.edges, arc{from: v, to: u})
		}
	}
	for _, nbrs := range ig.adj {
		sort.Ints(nbrs)
	}

	return ig, nil
}

// invert rewrites every weight w as (1+maxAll)-w, turning a minimum-weight
// problem into a maximum-weight one.
func (ig *indexedGraph) invert() {
	top := 1 + ig.maxAll
	ig.maxWeight = 0
	ig.allInteger = isIntegral(top)
	for k, w := range ig.weights {
		nw := top - w
		ig.weights[k] = nw
		if nw > ig.maxWeight {
			ig.maxWeight = nw
		}
		ig.allInteger = ig.allInteger && isIntegral(nw)
	}
}
