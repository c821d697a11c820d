package ismags

// search is the state of one depth-first mapping enumeration.
type search struct {
	m           *ISMAGS
	constraints *constraintSet

	toMap   []bool // subgraph nodes taking part in this search
	pending int    // nodes of toMap not yet mapped
	mapping []int  // subgraph node -> graph node, -1 when unmapped
	used    []bool // graph nodes already taken
}

func (m *ISMAGS) newSearch(c *constraintSet, nodes []int) *search {
	s := &search{
		m:           m,
		constraints: c,
		toMap:       make([]bool, m.sub.size()),
		pending:     len(nodes),
		mapping:     make([]int, m.sub.size()),
		used:        make([]bool, m.graph.size()),
	}
	for i := range s.mapping {
		s.mapping[i] = -1
	}
	for _, x := range nodes {
		s.toMap[x] = true
	}

	return s
}

func (s *search) result() Mapping {
	out := make(Mapping, len(s.mapping))
	for sgn, gn := range s.mapping {
		if gn >= 0 {
			out[s.m.graph.ids[gn]] = s.m.sub.ids[sgn]
		}
	}

	return out
}

// mapNodes tries every candidate for sgn and recurses into the unmapped
// node with the fewest candidates. cands[x] is a list of sets whose
// intersection bounds the images of x; cands[sgn] is overwritten with that
// intersection. It returns false once yield asks to stop.
func (s *search) mapNodes(sgn int, cands [][][]int, yield func(Mapping) bool) bool {
	options := intersect(cands[sgn])
	cands[sgn] = [][]int{options}
	sub, graph := s.m.sub, s.m.graph

	for _, gn := range options {
		if s.used[gn] || !s.toMap[sgn] {
			continue
		}
		s.mapping[sgn], s.used[gn] = gn, true
		s.pending--

		if s.pending == 0 {
			ok := yield(s.result())
			s.unmap(sgn, gn)
			if !ok {
				return false
			}
			continue
		}

		next := make([][][]int, len(cands))
		copy(next, cands)
		var notAdjacent []int
		first := -1
		for sgn2 := range s.toMap {
			if !s.toMap[sgn2] || s.mapping[sgn2] >= 0 {
				continue
			}
			var gn2 []int
			if sub.adjacent(sgn, sgn2) {
				gn2 = s.sameColorNeighbors(sgn, sgn2, gn)
			} else {
				if notAdjacent == nil {
					notAdjacent = withoutSet(graph.size(), graph.adj[gn])
				}
				gn2 = notAdjacent
			}
			next[sgn2] = append(next[sgn2][:len(next[sgn2]):len(next[sgn2])], gn2)

			switch {
			case s.constraints.has[pair{sgn, sgn2}]:
				next[sgn2] = append(next[sgn2], rangeSet(gn+1, graph.size()))
			case s.constraints.has[pair{sgn2, sgn}]:
				next[sgn2] = append(next[sgn2], rangeSet(0, gn))
			}

			if first < 0 || smallest(next[sgn2]) < smallest(next[first]) {
				first = sgn2
			}
		}

		cont := s.mapNodes(first, next, yield)
		s.unmap(sgn, gn)
		if !cont {
			return false
		}
	}

	return true
}

func (s *search) unmap(sgn, gn int) {
	s.mapping[sgn], s.used[gn] = -1, false
	s.pending++
}

// sameColorNeighbors returns gn and its neighbours over edges of the graph
// colour matching the subgraph edge sgn-sgn2.
func (s *search) sameColorNeighbors(sgn, sgn2, gn int) []int {
	ec, ok := s.m.edgeCompat[s.m.sc.edgeColor[norm(sgn, sgn2)]]
	if !ok {
		return []int{}
	}
	out := []int{}
	found := false
	for x := 0; x < s.m.graph.size(); x++ {
		c, adj := s.m.gc.edgeColor[norm(gn, x)]
		switch {
		case adj && c == ec:
			out = append(out, x)
			found = true
		case x == gn:
			out = append(out, x)
		}
	}
	if !found {
		return []int{}
	}

	return out
}
