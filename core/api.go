// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors and read-only configuration getters.
// Policy:
//   - No algorithms here. Flags are immutable after construction.

package core

// NewMixedGraph creates a graph that accepts per-edge WithEdgeDirected overrides.
//
// Implementation:
//   - Stage 1: Prepend WithMixedEdges() to a fresh copy of opts.
//   - Stage 2: Delegate to NewGraph.
//
// Complexity:
//   - Time O(len(opts)).
func NewMixedGraph(opts ...GraphOption) *Graph {
	mixed := make([]GraphOption, 0, len(opts)+1)
	mixed = append(mixed, WithMixedEdges())
	mixed = append(mixed, opts...)

	return NewGraph(mixed...)
}

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports the default orientation of new edges.
// It says nothing about edges already stored; see HasDirectedEdges.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether per-edge direction overrides are permitted.
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMixed
}

// Stats returns a snapshot of flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Under muVert, copy flags and |V|.
//   - Stage 2: Under muEdgeAdj, count edges by orientation.
//
// The two phases never hold both locks, so a concurrent writer may land between them.
//
// Complexity:
//   - Time O(E).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		DirectedDefault: g.directed,
		Weighted:        g.weighted,
		AllowsMulti:     g.allowMulti,
		AllowsLoops:     g.allowLoops,
		MixedMode:       g.allowMixed,
		VertexCount:     len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.Directed {
			stats.DirectedEdgeCount++
		} else {
			stats.UndirectedEdgeCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}

// HasParallelEdges reports whether any unordered vertex pair carries more than one edge.
//
// Complexity:
//   - Time O(E).
func (g *Graph) HasParallelEdges() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	type pair struct{ a, b string }
	seen := make(map[pair]struct{}, len(g.edges))
	for _, e := range g.edges {
		p := pair{e.From, e.To}
		if p.b < p.a {
			p.a, p.b = p.b, p.a
		}
		if _, dup := seen[p]; dup {
			return true
		}
		seen[p] = struct{}{}
	}

	return false
}
