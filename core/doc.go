// Package core provides the thread-safe in-memory Graph that every algorithm
// in lvmatch consumes.
//
// A Graph G = (V, E) is keyed by non-empty string vertex IDs. Its behavior is
// fixed at construction by GraphOption values:
//
//   - WithDirected(bool): default orientation of new edges.
//   - WithWeighted(): permit non-zero float64 weights.
//   - WithMultiEdges(): permit parallel edges.
//   - WithLoops(): permit self-loops.
//   - WithMixedEdges(): permit per-edge WithEdgeDirected overrides.
//
// Edges may carry metadata through WithEdgeMetadata, and vertices through
// SetVertexAttr. The matching engine reads alternative weights from edge
// metadata. The isomorphism matchers compare vertex and edge attributes.
//
// Storage is a nested index adjacencyList[from][to][edgeID]; undirected edges
// are mirrored so HasEdge and Neighbors are symmetric for them. Two RWMutexes
// split the vertex catalog (muVert) from the edge catalog and index
// (muEdgeAdj), always acquired in that order.
//
// Enumeration is deterministic: Vertices and NeighborIDs sort by ID, and
// Edges and Neighbors sort by creation sequence ("e1", "e2", ...).
//
// Derived graphs never mutate their source: Clone, CloneEmpty,
// UnweightedView, InducedSubgraph and SimpleView (undirected, loop-free,
// parallel edges collapsed).
//
// Errors are sentinels (ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound,
// ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed,
// ErrMixedEdgesNotAllowed) and may be wrapped; compare with errors.Is.
package core
