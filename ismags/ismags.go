package ismags

import (
	"iter"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmatch/core"
)

// ISMAGS enumerates the induced subgraph isomorphisms from a subgraph onto
// a graph, optionally skipping those that differ only by a symmetry of the
// subgraph.
//
// An ISMAGS snapshots both graphs in New; later changes to the inputs are
// not seen. Enumerations share no state and may run concurrently.
type ISMAGS struct {
	graph, sub *view
	gc, sc     coloring

	nodeCompat map[int]int
	edgeCompat map[int]int

	cache *SymmetryCache
	log   logrus.FieldLogger
}

// New prepares an ISMAGS search of subgraph inside graph.
//
// Errors: ErrNilGraph, ErrDirectedGraph, ErrMultigraph.
func New(graph, subgraph *core.Graph, opts ...Option) (*ISMAGS, error) {
	cfg := config{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	gv, err := newView("New", "graph", graph)
	if err != nil {
		return nil, err
	}
	sv, err := newView("New", "subgraph", subgraph)
	if err != nil {
		return nil, err
	}

	m := &ISMAGS{
		graph: gv,
		sub:   sv,
		gc:    colorGraph(gv, cfg.nodeMatch, cfg.edgeMatch),
		sc:    colorGraph(sv, cfg.nodeMatch, cfg.edgeMatch),
		cache: cfg.cache,
		log:   cfg.log,
	}
	if cfg.nodeMatch == nil {
		m.nodeCompat = map[int]int{0: 0}
	} else {
		m.nodeCompat = compatibility(m.sc.nodeCells, m.gc.nodeCells, func(a, b int) bool {
			return cfg.nodeMatch(sv.verts[a], gv.verts[b])
		})
	}
	if cfg.edgeMatch == nil {
		m.edgeCompat = map[int]int{0: 0}
	} else {
		m.edgeCompat = compatibility(m.sc.edgeCells, m.gc.edgeCells, func(a, b pair) bool {
			return cfg.edgeMatch(sv.edgeOf[a], gv.edgeOf[b])
		})
	}
	m.log.WithFields(logrus.Fields{
		"graph_nodes":      gv.size(),
		"subgraph_nodes":   sv.size(),
		"graph_node_cells": len(m.gc.nodeCells),
		"sub_node_cells":   len(m.sc.nodeCells),
		"graph_edge_cells": len(m.gc.edgeCells),
		"sub_edge_cells":   len(m.sc.edgeCells),
	}).Debug("ismags: colour partitions")

	return m, nil
}

// FindIsomorphisms yields every induced subgraph isomorphism as a mapping
// from graph nodes to subgraph nodes. With symmetry, only one mapping per
// class of mappings related by a subgraph automorphism is yielded.
//
// An empty subgraph yields one empty mapping. The search is lazy: breaking
// out of the range loop stops it.
func (m *ISMAGS) FindIsomorphisms(symmetry bool) iter.Seq[Mapping] {
	return func(yield func(Mapping) bool) {
		switch {
		case m.sub.size() == 0:
			yield(Mapping{})
			return
		case m.graph.size() == 0, m.graph.size() < m.sub.size():
			return
		}

		constraints := m.constraints(symmetry)
		cands := m.colorCandidates()
		for sgn, extra := range m.lookaheadCandidates() {
			if len(extra) > 0 {
				cands[sgn] = append(cands[sgn], extra)
			}
		}

		start := 0
		for sgn := range cands {
			if smallest(cands[sgn]) < smallest(cands[start]) {
				start = sgn
			}
		}
		cands[start] = [][]int{intersect(cands[start])}

		s := m.newSearch(constraints, rangeSet(0, m.sub.size()))
		s.mapNodes(start, cands, yield)
	}
}

// SubgraphIsomorphismsIter is FindIsomorphisms.
func (m *ISMAGS) SubgraphIsomorphismsIter(symmetry bool) iter.Seq[Mapping] {
	return m.FindIsomorphisms(symmetry)
}

// IsomorphismsIter yields the isomorphisms between graph and subgraph. It
// yields nothing when their node counts differ.
func (m *ISMAGS) IsomorphismsIter(symmetry bool) iter.Seq[Mapping] {
	return func(yield func(Mapping) bool) {
		if m.graph.size() != m.sub.size() {
			return
		}
		for mp := range m.FindIsomorphisms(symmetry) {
			if !yield(mp) {
				return
			}
		}
	}
}

// SubgraphIsIsomorphic reports whether some induced subgraph of graph is
// isomorphic to subgraph.
func (m *ISMAGS) SubgraphIsIsomorphic() bool {
	for range m.FindIsomorphisms(false) {
		return true
	}

	return false
}

// IsIsomorphic reports whether graph and subgraph are isomorphic.
func (m *ISMAGS) IsIsomorphic() bool {
	return m.graph.size() == m.sub.size() && m.SubgraphIsIsomorphic()
}

// LargestCommonSubgraph yields the mappings of the largest induced
// subgraphs of subgraph that also occur in graph. All yielded mappings have
// the same size.
func (m *ISMAGS) LargestCommonSubgraph(symmetry bool) iter.Seq[Mapping] {
	return func(yield func(Mapping) bool) {
		switch {
		case m.sub.size() == 0:
			yield(Mapping{})
			return
		case m.graph.size() == 0:
			return
		}

		constraints := m.constraints(symmetry)
		cands := m.colorCandidates()

		level := [][]int{rangeSet(0, m.sub.size())}
		for {
			size := len(level[0])
			found := false
			if size <= m.graph.size() {
				sort.Slice(level, func(i, j int) bool { return lessInts(level[i], level[j]) })
				for _, nodes := range level {
					start := nodes[0]
					for _, sgn := range nodes[1:] {
						if smallest(cands[sgn]) < smallest(cands[start]) {
							start = sgn
						}
					}
					local := make([][][]int, len(cands))
					copy(local, cands)
					s := m.newSearch(constraints, nodes)
					if !s.mapNodes(start, local, func(mp Mapping) bool {
						found = true
						return yield(mp)
					}) {
						return
					}
				}
			}
			if found || size == 1 {
				return
			}
			m.log.WithField("size", size-1).Debug("ismags: shrinking common subgraph")
			level = shrink(level, constraints)
		}
	}
}

// shrink returns every node set one smaller than those in level, removing
// the highest equivalent node where symmetry constraints tie nodes together.
func shrink(level [][]int, c *constraintSet) [][]int {
	seen := make(map[string]bool)
	var out [][]int
	for _, nodes := range level {
		for _, sgn := range nodes {
			smaller := removeInt(nodes, c.highestEquivalent(sgn, nodes))
			key := setKey(smaller)
			if !seen[key] {
				seen[key] = true
				out = append(out, smaller)
			}
		}
	}

	return out
}

func setKey(s []int) string {
	b := make([]byte, 0, 4*len(s))
	for _, x := range s {
		b = append(b, byte(x>>24), byte(x>>16), byte(x>>8), byte(x))
	}

	return string(b)
}

// AnalyzeSymmetry returns the automorphism generators found for the
// subgraph and its cosets: cosets[n] lists the nodes n can be exchanged
// with by an automorphism fixing every node smaller than n.
func (m *ISMAGS) AnalyzeSymmetry() ([]Permutation, map[string][]string) {
	sym := m.symmetry()
	perms := make([]Permutation, 0, len(sym.perms))
	for _, p := range sym.perms {
		perm := make(Permutation, 0, len(p))
		for _, pr := range p {
			perm = append(perm, [2]string{m.sub.ids[pr[0]], m.sub.ids[pr[1]]})
		}
		perms = append(perms, perm)
	}
	cosets := make(map[string][]string, len(sym.cosets))
	for n, orbit := range sym.cosets {
		ids := make([]string, 0, len(orbit))
		for _, x := range orbit {
			ids = append(ids, m.sub.ids[x])
		}
		cosets[m.sub.ids[n]] = ids
	}

	return perms, cosets
}

func (m *ISMAGS) symmetry() symmetry {
	var key string
	if m.cache != nil {
		key = symmetryKey(m.sub, m.sc)
		if s, ok := m.cache.get(key); ok {
			return s
		}
	}
	s := newAnalyzer(m.sub, m.sc).analyze(m.sc.nodeCells)
	if m.cache != nil {
		m.cache.put(key, s)
	}
	m.log.WithFields(logrus.Fields{
		"permutations": len(s.perms),
		"cosets":       len(s.cosets),
	}).Debug("ismags: symmetry analysed")

	return s
}

func (m *ISMAGS) constraints(symmetry bool) *constraintSet {
	c := &constraintSet{has: make(map[pair]bool)}
	if !symmetry {
		return c
	}
	sym := m.symmetry()
	keys := make([]int, 0, len(sym.cosets))
	for n := range sym.cosets {
		keys = append(keys, n)
	}
	sort.Ints(keys)
	for _, n := range keys {
		for _, t := range sym.cosets[n] {
			if t != n {
				c.list = append(c.list, pair{n, t})
				c.has[pair{n, t}] = true
			}
		}
	}
	m.log.WithField("constraints", len(c.list)).Debug("ismags: symmetry constraints")

	return c
}

// constraintSet holds ordered pairs (low, high): the graph node mapped to
// low must precede the one mapped to high.
type constraintSet struct {
	list []pair
	has  map[pair]bool
}

// highestEquivalent follows the constraints from node to the highest node
// of nodes it is tied to.
func (c *constraintSet) highestEquivalent(node int, nodes []int) int {
	for {
		moved := false
		for _, p := range c.list {
			if p[0] == node && containsInt(nodes, p[1]) {
				node = p[1]
				moved = true
				break
			}
		}
		if !moved {
			return node
		}
	}
}

// colorCandidates lists per subgraph node the graph nodes of a compatible
// colour. A node without a compatible colour gets an empty set.
func (m *ISMAGS) colorCandidates() [][][]int {
	cands := make([][][]int, m.sub.size())
	for sgn := range cands {
		gcol, ok := m.nodeCompat[m.sc.nodeColor[sgn]]
		if !ok || gcol >= len(m.gc.nodeCells) {
			cands[sgn] = [][]int{{}}
			continue
		}
		cell := append([]int(nil), m.gc.nodeCells[gcol]...)
		sort.Ints(cell)
		cands[sgn] = [][]int{cell}
	}

	return cands
}

// neighborColors counts the edges of node per (edge colour, neighbour colour).
func neighborColors(v *view, c coloring, node int) map[[2]int]int {
	counts := make(map[[2]int]int)
	for nb := range v.adj[node] {
		counts[[2]int{c.edgeColor[norm(node, nb)], c.nodeColor[nb]}]++
	}

	return counts
}

// lookaheadCandidates keeps, per subgraph node, the graph nodes having at
// least as many edges of every compatible colour combination.
func (m *ISMAGS) lookaheadCandidates() [][]int {
	gcounts := make([]map[[2]int]int, m.graph.size())
	for gn := range gcounts {
		gcounts[gn] = neighborColors(m.graph, m.gc, gn)
	}

	out := make([][]int, m.sub.size())
	for sgn := range out {
		need := make(map[[2]int]int)
		for k, cnt := range neighborColors(m.sub, m.sc, sgn) {
			ec, eok := m.edgeCompat[k[0]]
			nc, nok := m.nodeCompat[k[1]]
			if eok && nok {
				need[[2]int{ec, nc}] += cnt
			}
		}
		for gn, have := range gcounts {
			ok := true
			for k, cnt := range need {
				if have[k] < cnt {
					ok = false
					break
				}
			}
			if ok {
				out[sgn] = append(out[sgn], gn)
			}
		}
	}

	return out
}
