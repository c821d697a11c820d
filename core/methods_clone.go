// File: methods_clone.go
// Role: Cloning and clearing.
// Determinism:
//   - Clones carry nextEdgeID, so new edges on a clone never reuse an ID.

package core

import "sync/atomic"

// CloneEmpty returns a graph with the same configuration and vertices but no edges.
// Vertex metadata maps are copied shallowly.
//
// Complexity:
//   - Time O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	clone := NewGraph(g.options()...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: copyMeta(v.Metadata)}
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy: configuration, vertices, edges (same IDs) and adjacency.
//
// Complexity:
//   - Time O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for eid, e := range g.edges {
		ne := *e
		ne.ID = eid
		ne.Metadata = copyMeta(e.Metadata)
		clone.edges[eid] = &ne
		linkAdjacency(clone, &ne)
	}

	return clone
}

// Clear drops all vertices and edges, keeps the configuration and restarts edge IDs at "e1".
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}
