// Package planarity tests undirected graphs for planarity with the
// Left-Right algorithm (de Fraysseix–Rosenstiehl, in Brandes' formulation).
//
// A planar graph comes back with an Embedding: the clockwise order of the
// neighbours around every node, from which all faces can be walked. A
// non-planar graph can come back with a Kuratowski subgraph, a subdivision
// of K5 or K3,3 found by deleting every edge whose removal keeps the graph
// non-planar.
//
// The test itself runs in O(V+E). Its four depth-first passes (orientation,
// testing, sign resolution, embedding) keep their own stacks, so deep graphs
// do not exhaust the goroutine stack.
//
// Input rules:
//   - directed graphs are rejected with ErrDirectedGraph;
//   - self-loops are ignored and parallel edges count once;
//   - nodes are visited in sorted ID order, so results are deterministic.
//
// Example:
//
//	res, err := planarity.CheckPlanarity(g, planarity.WithCounterexample())
//	if err != nil { ... }
//	if res.Planar {
//		order, _ := res.Embedding.NeighborsCWOrder("a")
//	}
package planarity
