// File: methods_edges.go
// Role: Edge lifecycle and queries.
// Determinism:
//   - Edges() and EdgesBetween() return edges sorted by numeric edge sequence.
//   - Edge IDs are "e" + a monotonic decimal counter.
// Concurrency:
//   - Mutations under the muEdgeAdj write lock, queries under its read lock.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

const edgeIDPrefix = 'e'

// AddEdge creates an edge from -> to and returns its ID. Missing endpoints are created.
//
// Implementation:
//   - Stage 1: Validate IDs, weight policy and loop policy.
//   - Stage 2: Build the edge and apply options; reject direction overrides outside mixed mode.
//   - Stage 3: Ensure both endpoints exist.
//   - Stage 4: Under muEdgeAdj, enforce the multi-edge policy, then index the edge
//     (mirrored for undirected non-loops).
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight (non-zero on unweighted or WithoutWeight, or NaN),
//     ErrLoopNotAllowed, ErrMultiEdgeNotAllowed, ErrMixedEdgesNotAllowed.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || (!g.weighted && weight != 0) {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	e := &Edge{From: from, To: to, Weight: weight, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}
	if e.directedSet && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}
	if e.noWeight && weight != 0 {
		return "", ErrBadWeight
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if len(g.adjacencyList[from][to]) > 0 || len(g.adjacencyList[to][from]) > 0 && !e.Directed {
			return "", ErrMultiEdgeNotAllowed
		}
	}
	e.ID = nextEdgeID(g)
	g.edges[e.ID] = e
	linkAdjacency(g, e)

	return e.ID, nil
}

// RemoveEdge deletes the edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether at least one edge from -> to exists.
// Undirected edges are mirrored, so the query is symmetric for them.
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns the live edge record. Treat it as read-only.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgesBetween returns every edge indexed under from -> to, in creation order.
func (g *Graph) EdgesBetween(from, to string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	bucket := g.adjacencyList[from][to]
	out := make([]*Edge, 0, len(bucket))
	for eid := range bucket {
		out = append(out, g.edges[eid])
	}
	sortEdges(out)

	return out
}

// SetEdgeAttr stores one attribute on an existing edge.
func (g *Graph) SetEdgeAttr(edgeID, key string, value interface{}) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return fmt.Errorf("SetEdgeAttr %q: %w", edgeID, ErrEdgeNotFound)
	}
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{}, 1)
	}
	e.Metadata[key] = value

	return nil
}

// Edges returns all edges in creation order.
//
// Complexity:
//   - Time O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// HasDirectedEdges reports whether any stored edge is directed.
func (g *Graph) HasDirectedEdges() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}

// FilterEdges removes every edge for which keep returns false.
// keep must not call back into g.
func (g *Graph) FilterEdges(keep func(*Edge) bool) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	for eid, e := range g.edges {
		if !keep(e) {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
}

// nextEdgeID reserves the next textual edge ID ("e1", "e2", ...).
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq extracts the numeric part of an edge ID; foreign IDs sort last.
func edgeSeq(id string) uint64 {
	if len(id) < 2 || id[0] != edgeIDPrefix {
		return math.MaxUint64
	}
	n, err := strconv.ParseUint(id[1:], 10, 64)
	if err != nil {
		return math.MaxUint64
	}

	return n
}

// sortEdges orders edges by creation sequence, then by ID.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool {
		si, sj := edgeSeq(es[i].ID), edgeSeq(es[j].ID)
		if si != sj {
			return si < sj
		}

		return es[i].ID < es[j].ID
	})
}
