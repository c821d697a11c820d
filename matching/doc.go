// Package matching computes maximum-weight matchings in general undirected
// graphs with the primal-dual blossom method of Edmonds, in the formulation of
// Galil ("Efficient Algorithms for Finding Maximum Matching in Graphs", ACM
// Computing Surveys, 1986).
//
// A matching is a set of edges no two of which share an endpoint.
// MaxWeightMatching returns one whose total weight is maximal; with
// WithMaxCardinality it returns, among the matchings of maximum size, one of
// maximal weight. MinWeightMatching returns a maximum-cardinality matching of
// minimal weight.
//
// Algorithm outline:
//
//   - Every vertex carries a dual variable u(v), every non-trivial blossom a
//     dual z(b). Both are stored doubled so that integer weights keep integer
//     arithmetic.
//   - A stage grows alternating trees from all single vertices (S labels at
//     even depth, T labels at odd depth) over zero-slack edges only.
//   - Two S-vertices in the same tree close an odd cycle which is shrunk into a
//     blossom; in different trees they close an augmenting path.
//   - When no tight edge can be scanned, the duals are moved by the smallest of
//     four deltas, which either makes a new edge tight, expands a T-blossom, or
//     proves optimality.
//   - For integer weights the final primal/dual pair is checked against the
//     complementary slackness conditions; a violation panics, since it can only
//     come from a bug in the engine.
//
// Blossoms live in an arena of integer handles: 0..n-1 are the vertices
// themselves, n..2n-1 are non-trivial blossoms recycled through a free list.
// Recursive blossom walks (augmentation, end-of-stage expansion, leaf
// enumeration) use explicit stacks.
//
// Complexity:
//
//   - Time:  O(V³)
//   - Space: O(V + E)
//
// Input rules:
//
//   - The graph must be undirected and must not allow parallel edges
//     (ErrDirectedGraph, ErrMultigraph). Self-loops are ignored.
//   - Weights come from Edge.Weight (key "weight" on weighted graphs) or from a
//     numeric Edge.Metadata attribute. Absent values, and edges added with
//     core.WithoutWeight, take the default weight.
//     NaN and ±Inf are rejected with ErrBadWeight.
//
// Helpers IsMatching, IsMaximalMatching, IsPerfectMatching and
// MaximalMatching (greedy) complete the API.
package matching
