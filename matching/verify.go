package matching

import "math"

// verifyOptimum checks complementary slackness of the final primal/dual
// pair. Exact only for integer weights, so run() calls it only then.
//
//  0. All duals are non-negative (vertex duals up to a common offset in
//     max-cardinality mode).
//  1. Every edge has non-negative reduced slack; matched edges have zero.
//  2. Single vertices have zero dual.
//  3. Blossoms with positive dual are full: odd length, every second
//     connecting edge matched.
func (e *engine) verifyOptimum() {
	f := e.f
	minDual := e.minVertexDual()
	offset := 0.0
	if e.cfg.maxCardinality {
		offset = math.Max(0, -minDual)
	}

	invariant(minDual+offset >= 0, "vertex dual %v below zero", minDual+offset)
	f.blossoms(func(b int) {
		invariant(f.dual[b] >= 0, "blossom %d has negative dual %v", b, f.dual[b])
	})

	for _, ed := range e.g.edges {
		i, j := ed.from, ed.to
		s := f.dual[i] + f.dual[j] - 2*e.g.weight(i, j)
		ib, jb := e.ancestry(i), e.ancestry(j)
		for k := 0; k < len(ib) && k < len(jb) && ib[k] == jb[k]; k++ {
			s += 2 * f.dual[ib[k]]
		}
		invariant(s >= 0, "edge (%d,%d) has negative slack %v", i, j, s)
		if e.mate[i] == j || e.mate[j] == i {
			invariant(e.mate[i] == j && e.mate[j] == i, "edge (%d,%d) matched one way", i, j)
			invariant(s == 0, "matched edge (%d,%d) has slack %v", i, j, s)
		}
	}

	for v := 0; v < f.n; v++ {
		invariant(e.mate[v] != none || f.dual[v]+offset == 0, "single vertex %d has dual %v", v, f.dual[v]+offset)
	}

	f.blossoms(func(b int) {
		if f.dual[b] <= 0 {
			return
		}
		invariant(len(f.edges[b])%2 == 1, "blossom %d with positive dual has even length", b)
		for k := 1; k < len(f.edges[b]); k += 2 {
			a := f.edges[b][k]
			invariant(e.mate[a.from] == a.to && e.mate[a.to] == a.from, "blossom %d edge %d unmatched", b, k)
		}
	})
}

// ancestry lists the blossoms containing v from the outermost down to v.
func (e *engine) ancestry(v int) []int {
	chain := []int{v}
	for p := e.f.parent[v]; p != none; p = e.f.parent[p] {
		chain = append(chain, p)
	}
	reverseInts(chain)

	return chain
}
