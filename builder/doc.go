// Package builder produces deterministic fixture graphs for the matching,
// planarity and isomorphism engines and for the `lvmatch gen` command.
//
// A Constructor adds one topology to a *core.Graph; BuildGraph creates the
// graph from core options and runs constructors in order:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithWeighted()},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithIntWeight(1, 20)},
//		builder.RandomSparse(12, 0.3),
//	)
//
// Topologies: Complete, Cycle, Path, Star, Wheel, Grid, CompleteBipartite,
// PlatonicSolid, Petersen and RandomSparse.
//
// Options choose the vertex ID scheme (DefaultIDFn, SymbolIDFn,
// ExcelColumnIDFn, PaddedIDFn, SymbolNumberIDFn) and the weight generator
// (constant, uniform, integer uniform, normal). They also set the RNG
// (WithSeed, WithRand) and the bipartite side prefixes.
//
// Weights are drawn only when the target graph is weighted. On directed
// graphs every undirected topology edge is emitted in both directions.
// Parameter errors wrap ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource or ErrOptionViolation; invalid option arguments panic
// when the option is constructed.
package builder
