// File: methods_adjacent.go
// Role: Neighborhood queries and the adjacency index helpers.
// Determinism:
//   - Neighbors() orders edges by creation sequence.
//   - NeighborIDs() returns unique IDs sorted ascending.
// Concurrency:
//   - Queries hold muVert then muEdgeAdj read locks.
//   - Helpers run only under the muEdgeAdj write lock.

package core

import "sort"

// Neighbors returns the edges incident to id.
//
// Policy:
//   - Directed edges appear only at their tail (e.From == id).
//   - Undirected edges appear at both endpoints; a self-loop appears once.
//   - Parallel edges are repeated.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, bucket := range g.adjacencyList[id] {
		for eid := range bucket {
			e := g.edges[eid]
			if e.IsNil() || (e.Directed && e.From != id) {
				continue
			}
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the distinct vertices reachable from id over one edge,
// sorted ascending. A self-loop makes id its own neighbor.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		seen[e.Other(id)] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList returns a snapshot: vertex ID -> IDs of the edges indexed under it.
// Slices are freshly allocated and ordered by creation sequence.
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	result := make(map[string][]string, len(g.adjacencyList))
	for from, toMap := range g.adjacencyList {
		es := make([]*Edge, 0, len(toMap))
		for _, bucket := range toMap {
			for eid := range bucket {
				es = append(es, g.edges[eid])
			}
		}
		sortEdges(es)
		ids := make([]string, len(es))
		for i, e := range es {
			ids[i] = e.ID
		}
		result[from] = ids
	}

	return result
}

// linkAdjacency indexes e under [From][To], mirrored for undirected non-loops.
func linkAdjacency(g *Graph, e *Edge) {
	addBucket(g, e.From, e.To, e.ID)
	if !e.Directed && e.From != e.To {
		addBucket(g, e.To, e.From, e.ID)
	}
}

func addBucket(g *Graph, from, to, eid string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
	g.adjacencyList[from][to][eid] = struct{}{}
}

// removeAdjacency unlinks e and prunes buckets that become empty.
func removeAdjacency(g *Graph, e *Edge) {
	dropBucket(g, e.From, e.To, e.ID)
	if !e.Directed && e.From != e.To {
		dropBucket(g, e.To, e.From, e.ID)
	}
}

func dropBucket(g *Graph, from, to, eid string) {
	m := g.adjacencyList[from][to]
	if m == nil {
		return
	}
	delete(m, eid)
	if len(m) == 0 {
		delete(g.adjacencyList[from], to)
	}
}
