// Package ismags implements ISMAGS, the Index-based Subgraph Matching
// Algorithm with General Symmetries (Houbraken et al., 2014).
//
// Given a graph and a subgraph, ISMAGS enumerates the induced subgraph
// isomorphisms from the subgraph onto the graph. Before searching it can
// analyse the automorphisms of the subgraph and turn them into ordering
// constraints, so that mappings which differ only by a symmetry of the
// subgraph are reported once. The same machinery finds the largest common
// induced subgraphs of two graphs.
//
// Mappings go from graph node to subgraph node. Results are produced
// lazily as iter.Seq values; leaving the range loop ends the search.
//
// Nodes and edges can be coloured through NodeMatch and EdgeMatch
// predicates, which must be equivalence relations. Directed graphs and
// multigraphs are rejected.
package ismags
