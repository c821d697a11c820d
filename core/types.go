// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge and Graph declarations, construction options and sentinel errors.
// Concurrency:
//   - muVert guards the vertex catalog and configuration flags.
//   - muEdgeAdj guards the edge catalog and the nested adjacency index.
//   - Lock order is always muVert -> muEdgeAdj.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for container operations. Callers branch with errors.Is.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates that an operation referenced a missing vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates that an operation referenced a missing edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop on a graph built without WithLoops.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge on a graph built without WithMultiEdges.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override on a graph built without WithMixedEdges.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// Vertex is a node of the graph.
//
// Metadata holds arbitrary attributes (colors, labels) that the isomorphism
// matchers and the YAML codec read. It is never nil for vertices created by
// the graph itself.
type Vertex struct {
	ID       string
	Metadata map[string]interface{}
}

// IsNil reports whether the receiver is a nil pointer.
func (v *Vertex) IsNil() bool { return v == nil }

// Edge connects From and To.
//
// Weight is zero on unweighted graphs, and on edges added WithoutWeight.
// Metadata carries named numeric or categorical attributes; matching can
// read an alternative weight from it.
type Edge struct {
	ID       string
	From     string
	To       string
	Weight   float64
	Directed bool
	Metadata map[string]interface{}

	// directedSet records an explicit WithEdgeDirected override.
	directedSet bool
	// noWeight records WithoutWeight.
	noWeight bool
}

// IsNil reports whether the receiver is a nil pointer.
func (e *Edge) IsNil() bool { return e == nil }

// HasWeight reports whether the edge carries a weight of its own. It is
// false for edges added WithoutWeight, which consumers treat as "use the
// default weight".
func (e *Edge) HasWeight() bool { return !e.noWeight }

// Other returns the endpoint of e opposite to id.
// For a self-loop both endpoints are id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected sets the default orientation of new edges.
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithWeighted permits non-zero edge weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same endpoints.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges permits per-edge direction overrides via WithEdgeDirected.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// EdgeOption configures a single edge inside AddEdge.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the default orientation for one edge (mixed graphs only).
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) {
		e.Directed = directed
		e.directedSet = true
	}
}

// WithoutWeight marks the new edge as having no weight of its own. The
// weight passed to AddEdge must then be zero.
func WithoutWeight() EdgeOption {
	return func(e *Edge) { e.noWeight = true }
}

// WithEdgeMetadata attaches one attribute to the new edge.
// It is accepted on every graph kind.
func WithEdgeMetadata(key string, value interface{}) EdgeOption {
	return func(e *Edge) {
		if e.Metadata == nil {
			e.Metadata = make(map[string]interface{}, 1)
		}
		e.Metadata[key] = value
	}
}

// Graph is a thread-safe in-memory graph keyed by string vertex IDs.
//
// adjacencyList[from][to][edgeID] indexes every edge; undirected non-loop
// edges are mirrored under [to][from].
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool
	allowMixed bool

	nextEdgeID    uint64
	vertices      map[string]*Vertex
	edges         map[string]*Edge
	adjacencyList map[string]map[string]map[string]struct{}
}

// GraphStats is a snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	DirectedDefault bool
	Weighted        bool
	AllowsMulti     bool
	AllowsLoops     bool
	MixedMode       bool

	VertexCount         int
	EdgeCount           int
	DirectedEdgeCount   int
	UndirectedEdgeCount int
}

// NewGraph returns an empty graph. Without options it is undirected,
// unweighted, and rejects loops and parallel edges.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// options reconstructs the option list that yields g's configuration.
// Caller must hold muVert (read) or own g exclusively.
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMixed {
		opts = append(opts, WithMixedEdges())
	}

	return opts
}

// copyMeta returns a shallow copy of m; nil stays nil.
func copyMeta(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
