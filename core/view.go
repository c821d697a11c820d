// File: view.go
// Role: Non-mutating derived graphs.
// Concurrency:
//   - Read locks on the source only; results are fresh instances.

package core

import "sync/atomic"

// UnweightedView copies g with every weight forced to zero and the weighted flag off.
// Edge IDs, directedness and metadata are preserved.
func UnweightedView(g *Graph) *Graph {
	out := derive(g, func(opts []GraphOption) []GraphOption {
		return append(opts, func(h *Graph) { h.weighted = false })
	})
	copyEdges(g, out, func(e *Edge) (*Edge, bool) {
		ne := *e
		ne.Weight = 0
		ne.Metadata = copyMeta(e.Metadata)

		return &ne, true
	})

	return out
}

// InducedSubgraph returns the subgraph on the vertices with keep[v] == true
// and every edge whose endpoints are both kept.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := derive(g, nil)
	for id := range out.vertices {
		if !keep[id] {
			delete(out.vertices, id)
			delete(out.adjacencyList, id)
		}
	}
	copyEdges(g, out, func(e *Edge) (*Edge, bool) {
		if !keep[e.From] || !keep[e.To] {
			return nil, false
		}
		ne := *e
		ne.Metadata = copyMeta(e.Metadata)

		return &ne, true
	})

	return out
}

// SimpleView returns an undirected copy of g without self-loops in which
// parallel edges (in either direction) collapse to the first created one.
// The result rejects loops and multi-edges.
//
// Complexity:
//   - Time O(V + E log E).
func SimpleView(g *Graph) *Graph {
	out := derive(g, func(opts []GraphOption) []GraphOption {
		return append(opts, func(h *Graph) {
			h.directed, h.allowLoops, h.allowMulti, h.allowMixed = false, false, false, false
		})
	})
	for _, e := range g.Edges() {
		if e.From == e.To || len(out.adjacencyList[e.From][e.To]) > 0 {
			continue
		}
		ne := &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight, Metadata: copyMeta(e.Metadata), noWeight: e.noWeight}
		out.edges[ne.ID] = ne
		linkAdjacency(out, ne)
	}

	return out
}

// derive creates an edgeless copy of g's vertices; tweak may adjust the options.
func derive(g *Graph, tweak func([]GraphOption) []GraphOption) *Graph {
	g.muVert.RLock()
	opts := g.options()
	if tweak != nil {
		opts = tweak(opts)
	}
	out := NewGraph(opts...)
	for id, v := range g.vertices {
		out.vertices[id] = &Vertex{ID: v.ID, Metadata: copyMeta(v.Metadata)}
		out.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	g.muEdgeAdj.RUnlock()

	return out
}

// copyEdges transfers the edges accepted by conv from src into dst.
func copyEdges(src, dst *Graph, conv func(*Edge) (*Edge, bool)) {
	src.muEdgeAdj.RLock()
	defer src.muEdgeAdj.RUnlock()
	for _, e := range src.edges {
		ne, ok := conv(e)
		if !ok {
			continue
		}
		dst.edges[ne.ID] = ne
		linkAdjacency(dst, ne)
	}
}
