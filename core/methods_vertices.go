// File: methods_vertices.go
// Role: Vertex lifecycle, attributes and degree queries.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - Vertex catalog under muVert; adjacency bootstrap under muEdgeAdj.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex if it is missing. Adding an existing vertex is a no-op.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether id is present. The empty ID is never present.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// GetVertex returns the live vertex record for id.
// Treat the returned pointer as read-only; mutate attributes via SetVertexAttr.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) GetVertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("GetVertex %q: %w", id, ErrVertexNotFound)
	}

	return v, nil
}

// SetVertexAttr stores one attribute on an existing vertex.
//
// Implementation:
//   - Stage 1: Validate the ID and look the vertex up under the write lock.
//   - Stage 2: Allocate Metadata lazily and assign key.
//
// Complexity:
//   - Time O(1).
func (g *Graph) SetVertexAttr(id, key string, value interface{}) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("SetVertexAttr %q: %w", id, ErrVertexNotFound)
	}
	if v.Metadata == nil {
		v.Metadata = make(map[string]interface{}, 1)
	}
	v.Metadata[key] = value

	return nil
}

// RemoveVertex deletes id together with every incident edge.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(E) for the scan of the edge catalog.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
	delete(g.vertices, id)
	delete(g.adjacencyList, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// The algorithms in this module derive their integer indexing from this order.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V| without allocating.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// VerticesMap returns a shallow copy of the catalog (ID -> *Vertex).
func (g *Graph) VerticesMap() map[string]*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make(map[string]*Vertex, len(g.vertices))
	for id, v := range g.vertices {
		out[id] = v
	}

	return out
}

// Degree returns the degree components of id.
//
// Policy:
//   - Directed edges count toward in/out; a directed loop counts once in each.
//   - Undirected edges count toward undirected; an undirected loop counts twice.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(E), since incoming directed edges have no reverse index.
func (g *Graph) Degree(id string) (in, out, undirected int, err error) {
	if id == "" {
		return 0, 0, 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, 0, ErrVertexNotFound
	}
	for _, e := range g.edges {
		isFrom, isTo := e.From == id, e.To == id
		if !isFrom && !isTo {
			continue
		}
		switch {
		case e.Directed:
			if isFrom {
				out++
			}
			if isTo {
				in++
			}
		case isFrom && isTo:
			undirected += 2
		default:
			undirected++
		}
	}

	return in, out, undirected, nil
}
