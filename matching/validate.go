package matching

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/core"
)

func wrapMethod(method string, err error) error { return fmt.Errorf("%s: %w", method, err) }

// checkEdges walks m and reports whether it is a matching of g. It returns
// the covered vertices and the matched pairs for the callers that need them.
// An unknown endpoint is an error, not a false result.
func checkEdges(method string, g *core.Graph, m Matching) (bool, map[string]bool, map[Pair]bool, error) {
	if g == nil {
		return false, nil, nil, fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	if g.Directed() {
		return false, nil, nil, fmt.Errorf("%s: %w", method, ErrDirectedGraph)
	}
	pairs, err := m.Pairs()
	if err != nil {
		return false, nil, nil, wrapMethod(method, err)
	}

	covered := make(map[string]bool, 2*len(pairs))
	used := make(map[Pair]bool, len(pairs))
	for _, p := range pairs {
		if !g.HasVertex(p.U) || !g.HasVertex(p.V) {
			return false, nil, nil, fmt.Errorf("%s: edge %v: %w", method, p, ErrVertexNotInGraph)
		}
		if p.U == p.V || !g.HasEdge(p.U, p.V) || covered[p.U] || covered[p.V] {
			return false, nil, nil, nil
		}
		covered[p.U] = true
		covered[p.V] = true
		used[NewPair(p.U, p.V)] = true
	}

	return true, covered, used, nil
}

// IsMatching reports whether m is a set of pairwise disjoint, loop-free
// edges of g.
//
// Errors: ErrNilGraph, ErrDirectedGraph, ErrVertexNotInGraph when an
// endpoint is unknown, ErrSelfLoop for a Mate mapping a vertex to itself.
func IsMatching(g *core.Graph, m Matching) (bool, error) {
	ok, _, _, err := checkEdges("IsMatching", g, m)

	return ok, err
}

// IsMaximalMatching reports whether m is a matching to which no edge of g
// can be added.
func IsMaximalMatching(g *core.Graph, m Matching) (bool, error) {
	ok, covered, used, err := checkEdges("IsMaximalMatching", g, m)
	if !ok || err != nil {
		return false, err
	}
	for _, e := range g.Edges() {
		if e.From == e.To || used[NewPair(e.From, e.To)] {
			continue
		}
		if !covered[e.From] && !covered[e.To] {
			return false, nil
		}
	}

	return true, nil
}

// IsPerfectMatching reports whether m is a matching covering every vertex.
func IsPerfectMatching(g *core.Graph, m Matching) (bool, error) {
	ok, covered, _, err := checkEdges("IsPerfectMatching", g, m)
	if !ok || err != nil {
		return false, err
	}

	return len(covered) == g.VertexCount(), nil
}

// MaximalMatching greedily takes every edge of g, in creation order, whose
// endpoints are both still free. The result is maximal, not maximum.
func MaximalMatching(g *core.Graph) (Pairs, error) {
	if g == nil {
		return nil, fmt.Errorf("MaximalMatching: %w", ErrNilGraph)
	}
	if g.Directed() {
		return nil, fmt.Errorf("MaximalMatching: %w", ErrDirectedGraph)
	}

	out := Pairs{}
	taken := make(map[string]bool)
	for _, e := range g.Edges() {
		if e.From == e.To || taken[e.From] || taken[e.To] {
			continue
		}
		taken[e.From] = true
		taken[e.To] = true
		out = append(out, NewPair(e.From, e.To))
	}
	out.Sort()

	return out, nil
}

// Weight sums the weights of the edges of p in g, resolved with the same
// options as MaxWeightMatching. A pair that is not an edge of g fails with
// ErrVertexNotInGraph when an endpoint is unknown and contributes nothing
// otherwise.
func (p Pairs) Weight(g *core.Graph, opts ...Option) (float64, error) {
	if g == nil {
		return 0, fmt.Errorf("Pairs.Weight: %w", ErrNilGraph)
	}
	cfg := newConfig(opts)
	total := 0.0
	for _, pr := range p {
		if !g.HasVertex(pr.U) || !g.HasVertex(pr.V) {
			return 0, fmt.Errorf("Pairs.Weight: edge %v: %w", pr, ErrVertexNotInGraph)
		}
		es := g.EdgesBetween(pr.U, pr.V)
		if len(es) == 0 {
			continue
		}
		w, err := edgeWeight(g, es[0], &cfg)
		if err != nil {
			return 0, fmt.Errorf("Pairs.Weight: %w", err)
		}
		total += w
	}

	return total, nil
}
