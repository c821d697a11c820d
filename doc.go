// Package lvmatch is an in-memory toolkit for three classic structural
// problems on general graphs:
//
//   - matching/:   maximum-weight matching (Edmonds' blossom algorithm in
//     the primal-dual form), minimum-weight and maximal matchings, and
//     matching validators.
//   - planarity/:  the Left-Right planarity test, returning a combinatorial
//     embedding or a Kuratowski subgraph.
//   - ismags/:     induced subgraph isomorphism and largest common induced
//     subgraph, with symmetry pruning.
//
// Supporting packages:
//
//	core/       thread-safe Graph, Vertex and Edge types
//	builder/    deterministic fixture graphs (cycles, grids, platonic solids, G(n,p) ...)
//	graphio/    YAML graph files
//	converters/ adapters to gonum graphs
//
// The lvmatch command (cmd/lvmatch) runs every engine on YAML graph files:
//
//	lvmatch gen petersen -o p.yaml
//	lvmatch match --max-cardinality p.yaml
//	lvmatch planar --counterexample p.yaml
//	lvmatch iso p.yaml p.yaml
//
// A quick example of a square:
//
//	A───B
//	│   │
//	C───D
//
// It is planar, and its maximum matchings are {A-B, C-D} and {A-C, B-D}.
package lvmatch
