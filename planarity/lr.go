package planarity

import "sort"

// edge is an oriented edge (u -> v) of the DFS orientation.
type edge struct {
	u, v int
}

var noEdge = edge{u: -1, v: -1}

func (e edge) ok() bool { return e.u >= 0 }

// interval is a set of return edges that must all lie on the same side.
type interval struct {
	low, high edge
}

var emptyInterval = interval{low: noEdge, high: noEdge}

func (in interval) empty() bool { return !in.low.ok() && !in.high.ok() }

// conflictPair holds two intervals whose edges must lie on opposite sides.
type conflictPair struct {
	left, right interval
}

func (p *conflictPair) swap() { p.left, p.right = p.right, p.left }

// lrState is the working state of one Left-Right planarity test.
type lrState struct {
	n   int
	adj [][]int

	roots      []int
	height     []int
	parentEdge []edge

	lowpt        map[edge]int
	lowpt2       map[edge]int
	nestingDepth map[edge]int

	// oriented records the DFS orientation; out keeps each node's
	// outgoing edges in orientation order.
	oriented map[edge]bool
	out      [][]int
	ordered  [][]int

	ref         map[edge]edge
	side        map[edge]int
	stack       []*conflictPair
	stackBottom map[edge]*conflictPair
	lowptEdge   map[edge]edge
	leftRef     []int
	rightRef    []int
}

// newLRState prepares a test over nodes 0..n-1 with the given loop-free,
// duplicate-free adjacency.
func newLRState(n int, adj [][]int) *lrState {
	s := &lrState{
		n:            n,
		adj:          adj,
		height:       make([]int, n),
		parentEdge:   make([]edge, n),
		lowpt:        make(map[edge]int),
		lowpt2:       make(map[edge]int),
		nestingDepth: make(map[edge]int),
		oriented:     make(map[edge]bool),
		out:          make([][]int, n),
		ordered:      make([][]int, n),
		ref:          make(map[edge]edge),
		side:         make(map[edge]int),
		stackBottom:  make(map[edge]*conflictPair),
		lowptEdge:    make(map[edge]edge),
		leftRef:      make([]int, n),
		rightRef:     make([]int, n),
	}
	for v := 0; v < n; v++ {
		s.height[v] = -1
		s.parentEdge[v] = noEdge
		s.leftRef[v] = -1
		s.rightRef[v] = -1
	}

	return s
}

func (s *lrState) refOf(e edge) edge {
	if r, ok := s.ref[e]; ok {
		return r
	}

	return noEdge
}

func (s *lrState) sideOf(e edge) int {
	if d, ok := s.side[e]; ok {
		return d
	}

	return 1
}

func (s *lrState) top() *conflictPair {
	if len(s.stack) == 0 {
		return nil
	}

	return s.stack[len(s.stack)-1]
}

func (s *lrState) pop() *conflictPair {
	p := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]

	return p
}

func (s *lrState) conflicting(in interval, b edge) bool {
	return !in.empty() && s.lowpt[in.high] > s.lowpt[b]
}

func (s *lrState) lowest(p *conflictPair) int {
	if p.left.empty() {
		return s.lowpt[p.right.low]
	}
	if p.right.empty() {
		return s.lowpt[p.left.low]
	}

	return min(s.lowpt[p.left.low], s.lowpt[p.right.low])
}

// run executes the test phases. It reports false for non-planar input;
// otherwise the side of every edge is resolved and ordered holds the
// final adjacency order used to build the embedding.
func (s *lrState) run() bool {
	for v := 0; v < s.n; v++ {
		if s.height[v] == -1 {
			s.height[v] = 0
			s.roots = append(s.roots, v)
			s.orient(v)
		}
	}

	s.sortByNesting()
	for _, r := range s.roots {
		if !s.test(r) {
			return false
		}
	}

	for v := 0; v < s.n; v++ {
		for _, w := range s.out[v] {
			e := edge{u: v, v: w}
			s.nestingDepth[e] = s.sign(e) * s.nestingDepth[e]
		}
	}
	s.sortByNesting()

	return true
}

func (s *lrState) sortByNesting() {
	for v := 0; v < s.n; v++ {
		ord := append([]int(nil), s.out[v]...)
		sort.SliceStable(ord, func(i, j int) bool {
			return s.nestingDepth[edge{u: v, v: ord[i]}] < s.nestingDepth[edge{u: v, v: ord[j]}]
		})
		s.ordered[v] = ord
	}
}

// orient runs the orientation DFS from root, computing lowpoints and the
// nesting depth of every edge.
func (s *lrState) orient(root int) {
	ind := make([]int, s.n)
	skipInit := make(map[edge]bool)
	stack := []int{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e := s.parentEdge[v]

		for ; ind[v] < len(s.adj[v]); ind[v]++ {
			w := s.adj[v][ind[v]]
			vw := edge{u: v, v: w}
			if !skipInit[vw] {
				if s.oriented[vw] || s.oriented[edge{u: w, v: v}] {
					continue
				}
				s.oriented[vw] = true
				s.out[v] = append(s.out[v], w)
				s.lowpt[vw] = s.height[v]
				s.lowpt2[vw] = s.height[v]
				if s.height[w] == -1 {
					// Tree edge: descend, then come back to v.
					s.parentEdge[w] = vw
					s.height[w] = s.height[v] + 1
					stack = append(stack, v, w)
					skipInit[vw] = true
					break
				}
				s.lowpt[vw] = s.height[w]
			}

			s.nestingDepth[vw] = 2 * s.lowpt[vw]
			if s.lowpt2[vw] < s.height[v] {
				s.nestingDepth[vw]++ // chordal
			}
			if e.ok() {
				switch {
				case s.lowpt[vw] < s.lowpt[e]:
					s.lowpt2[e] = min(s.lowpt[e], s.lowpt2[vw])
					s.lowpt[e] = s.lowpt[vw]
				case s.lowpt[vw] > s.lowpt[e]:
					s.lowpt2[e] = min(s.lowpt2[e], s.lowpt[vw])
				default:
					s.lowpt2[e] = min(s.lowpt2[e], s.lowpt2[vw])
				}
			}
		}
	}
}

// test runs the testing DFS from root with conflict pairs.
func (s *lrState) test(root int) bool {
	ind := make([]int, s.n)
	skipInit := make(map[edge]bool)
	stack := []int{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e := s.parentEdge[v]
		descended := false

		for ; ind[v] < len(s.ordered[v]); ind[v]++ {
			w := s.ordered[v][ind[v]]
			ei := edge{u: v, v: w}
			if !skipInit[ei] {
				s.stackBottom[ei] = s.top()
				if ei == s.parentEdge[w] {
					stack = append(stack, v, w)
					skipInit[ei] = true
					descended = true
					break
				}
				s.lowptEdge[ei] = ei
				s.stack = append(s.stack, &conflictPair{left: emptyInterval, right: interval{low: ei, high: ei}})
			}

			// Integrate the return edges of ei.
			if s.lowpt[ei] < s.height[v] {
				if w == s.ordered[v][0] {
					s.lowptEdge[e] = s.lowptEdge[ei]
				} else if !s.addConstraints(ei, e) {
					return false
				}
			}
		}

		if !descended && e.ok() {
			s.removeBackEdges(e)
		}
	}

	return true
}

func (s *lrState) addConstraints(ei, e edge) bool {
	p := &conflictPair{left: emptyInterval, right: emptyInterval}

	// Merge the return edges of ei into p.right.
	for len(s.stack) > 0 {
		q := s.pop()
		if !q.left.empty() {
			q.swap()
		}
		if !q.left.empty() {
			return false
		}
		if s.lowpt[q.right.low] > s.lowpt[e] {
			if p.right.empty() {
				p.right = q.right
			} else {
				s.ref[p.right.low] = q.right.high
			}
			p.right.low = q.right.low
		} else {
			s.ref[q.right.low] = s.lowptEdge[e]
		}
		if s.top() == s.stackBottom[ei] {
			break
		}
	}

	// Merge conflicting return edges of the earlier siblings into p.left.
	for {
		t := s.top()
		if t == nil || !(s.conflicting(t.left, ei) || s.conflicting(t.right, ei)) {
			break
		}
		q := s.pop()
		if s.conflicting(q.right, ei) {
			q.swap()
		}
		if s.conflicting(q.right, ei) {
			return false
		}
		s.ref[p.right.low] = q.right.high
		if q.right.low.ok() {
			p.right.low = q.right.low
		}
		if p.left.empty() {
			p.left = q.left
		} else {
			s.ref[p.left.low] = q.left.high
		}
		p.left.low = q.left.low
	}

	if !(p.left.empty() && p.right.empty()) {
		s.stack = append(s.stack, p)
	}

	return true
}

func (s *lrState) removeBackEdges(e edge) {
	u := e.u

	// Drop whole conflict pairs returning to u.
	for len(s.stack) > 0 && s.lowest(s.top()) == s.height[u] {
		p := s.pop()
		if p.left.low.ok() {
			s.side[p.left.low] = -1
		}
	}

	if len(s.stack) > 0 {
		p := s.pop()
		for p.left.high.ok() && p.left.high.v == u {
			p.left.high = s.refOf(p.left.high)
		}
		if !p.left.high.ok() && p.left.low.ok() {
			s.ref[p.left.low] = p.right.low
			s.side[p.left.low] = -1
			p.left.low = noEdge
		}
		for p.right.high.ok() && p.right.high.v == u {
			p.right.high = s.refOf(p.right.high)
		}
		if !p.right.high.ok() && p.right.low.ok() {
			s.ref[p.right.low] = p.left.low
			s.side[p.right.low] = -1
			p.right.low = noEdge
		}
		s.stack = append(s.stack, p)
	}

	// The side of e is the side of a highest return edge.
	if t := s.top(); t != nil && s.lowpt[e] < s.height[u] {
		hl, hr := t.left.high, t.right.high
		if hl.ok() && (!hr.ok() || s.lowpt[hl] > s.lowpt[hr]) {
			s.ref[e] = hl
		} else {
			s.ref[e] = hr
		}
	}
}

// sign resolves the relative side of e along its reference chain into an
// absolute side, compressing the chain on the way back.
func (s *lrState) sign(e edge) int {
	stack := []edge{e}
	oldRef := make(map[edge]edge)
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if r := s.refOf(x); r.ok() {
			stack = append(stack, x, r)
			oldRef[x] = r
			delete(s.ref, x)
			continue
		}
		prev, ok := oldRef[x]
		if !ok {
			prev = noEdge
		}
		s.side[x] = s.sideOf(x) * s.sideOf(prev)
	}

	return s.sideOf(e)
}

// embed fills emb with the final embedding. ids maps node indices to IDs.
func (s *lrState) embed(emb *Embedding, ids []string) error {
	for v := 0; v < s.n; v++ {
		emb.AddNode(ids[v])
	}
	for v := 0; v < s.n; v++ {
		prev := ""
		for _, w := range s.ordered[v] {
			if err := emb.AddHalfEdgeCW(ids[v], ids[w], prev); err != nil {
				return err
			}
			prev = ids[w]
		}
	}

	for _, root := range s.roots {
		if err := s.embedFrom(root, emb, ids); err != nil {
			return err
		}
	}

	return nil
}

func (s *lrState) embedFrom(root int, emb *Embedding, ids []string) error {
	ind := make([]int, s.n)
	stack := []int{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for ind[v] < len(s.ordered[v]) {
			w := s.ordered[v][ind[v]]
			ind[v]++
			ei := edge{u: v, v: w}
			if ei == s.parentEdge[w] {
				if err := emb.AddHalfEdgeFirst(ids[w], ids[v]); err != nil {
					return err
				}
				s.leftRef[v], s.rightRef[v] = w, w
				stack = append(stack, v, w)
				break
			}
			// Back edge: place v next to the reference of ancestor w.
			if s.sideOf(ei) == 1 {
				if err := emb.AddHalfEdgeCW(ids[w], ids[v], ids[s.rightRef[w]]); err != nil {
					return err
				}
			} else {
				if err := emb.AddHalfEdgeCCW(ids[w], ids[v], ids[s.leftRef[w]]); err != nil {
					return err
				}
				s.leftRef[w] = v
			}
		}
	}

	return nil
}
