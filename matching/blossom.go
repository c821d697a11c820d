package matching

// Label values. labelCrumb is OR-ed onto labelS while scanBlossom traces.
const (
	labelNone  int8 = 0
	labelS     int8 = 1
	labelT     int8 = 2
	labelCrumb int8 = 4
)

// none marks an absent vertex, blossom or mate.
const none = -1

// arc is a directed view of an edge; from == none means "no edge".
type arc struct {
	from, to int
}

var noArc = arc{from: none, to: none}

func (a arc) ok() bool { return a.from != none }

// forest is the blossom arena. Handles 0..n-1 are vertices (trivial
// blossoms); handles n..2n-1 are non-trivial blossoms.
type forest struct {
	n int

	// inBlossom[v] is the top-level blossom containing vertex v.
	inBlossom []int
	// parent[b] is the enclosing blossom of b, or none for top level.
	parent []int
	// base[b] is the base vertex of b.
	base []int
	// childs[b] lists sub-blossoms starting at the base; edges[b][i]
	// connects childs[b][i] to childs[b][i+1 mod len].
	childs [][]int
	edges  [][]arc
	// dual holds the doubled vertex duals for v < n and the blossom
	// duals z(b) for b >= n.
	dual []float64
	live []bool
	free []int
}

func newForest(n int, initialDual float64) *forest {
	f := &forest{
		n:         n,
		inBlossom: make([]int, n),
		parent:    make([]int, 2*n),
		base:      make([]int, 2*n),
		childs:    make([][]int, 2*n),
		edges:     make([][]arc, 2*n),
		dual:      make([]float64, 2*n),
		live:      make([]bool, 2*n),
		free:      make([]int, 0, n),
	}
	for v := 0; v < n; v++ {
		f.inBlossom[v] = v
		f.base[v] = v
		f.dual[v] = initialDual
	}
	for b := 0; b < 2*n; b++ {
		f.parent[b] = none
	}
	for b := 2*n - 1; b >= n; b-- {
		f.base[b] = none
		f.free = append(f.free, b)
	}

	return f
}

func (f *forest) isBlossom(b int) bool { return b >= f.n }

func (f *forest) alloc() int {
	invariant(len(f.free) > 0, "blossom arena exhausted (n=%d)", f.n)
	b := f.free[len(f.free)-1]
	f.free = f.free[:len(f.free)-1]
	f.live[b] = true

	return b
}

func (f *forest) release(b int) {
	f.live[b] = false
	f.parent[b] = none
	f.base[b] = none
	f.childs[b] = nil
	f.edges[b] = nil
	f.dual[b] = 0
	f.free = append(f.free, b)
}

// blossoms calls fn for every live non-trivial blossom in handle order.
func (f *forest) blossoms(fn func(b int)) {
	for b := f.n; b < 2*f.n; b++ {
		if f.live[b] {
			fn(b)
		}
	}
}

// appendLeaves appends the vertices of b to dst in child order.
func (f *forest) appendLeaves(dst []int, b int) []int {
	if !f.isBlossom(b) {
		return append(dst, b)
	}
	stack := []int{b}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f.isBlossom(t) {
			dst = append(dst, t)
			continue
		}
		cs := f.childs[t]
		for i := len(cs) - 1; i >= 0; i-- {
			stack = append(stack, cs[i])
		}
	}

	return dst
}

func (f *forest) childIndex(b, c int) int {
	for i, x := range f.childs[b] {
		if x == c {
			return i
		}
	}
	invariant(false, "blossom %d is not a child of %d", c, b)

	return none
}

// stageContext is the per-stage labelling state. It is rebuilt at the
// start of every stage.
type stageContext struct {
	label     []int8
	labelEdge []arc
	// bestEdge[v] for a free vertex, or bestEdge[b] for a top-level
	// S-blossom: the least-slack edge towards an S-vertex elsewhere.
	bestEdge []arc
	// bestEdges[b] caches the least-slack edges from S-blossom b to each
	// neighbouring S-blossom; hasBestEdges tells an empty list from none.
	bestEdges    [][]arc
	hasBestEdges []bool
	allowed      map[uint64]struct{}
	queue        []int
}

func newStageContext(n int) *stageContext {
	st := &stageContext{
		label:        make([]int8, 2*n),
		labelEdge:    make([]arc, 2*n),
		bestEdge:     make([]arc, 2*n),
		bestEdges:    make([][]arc, 2*n),
		hasBestEdges: make([]bool, 2*n),
		allowed:      make(map[uint64]struct{}),
	}
	st.reset()

	return st
}

func (st *stageContext) reset() {
	for i := range st.label {
		st.label[i] = labelNone
		st.labelEdge[i] = noArc
		st.bestEdge[i] = noArc
		st.bestEdges[i] = nil
		st.hasBestEdges[i] = false
	}
	clear(st.allowed)
	st.queue = st.queue[:0]
}

// forget drops every stage record of handle b.
func (st *stageContext) forget(b int) {
	st.label[b] = labelNone
	st.labelEdge[b] = noArc
	st.bestEdge[b] = noArc
	st.bestEdges[b] = nil
	st.hasBestEdges[b] = false
}

func (st *stageContext) allow(u, v int) { st.allowed[pairKey(u, v)] = struct{}{} }

func (st *stageContext) isAllowed(u, v int) bool {
	_, ok := st.allowed[pairKey(u, v)]

	return ok
}

// wrap maps a possibly negative index into [0, n).
func wrap(i, n int) int { return ((i % n) + n) % n }

// assignLabel gives label t to the top-level blossom containing w, reached
// through v (none for a root). A T label immediately passes S to the mate
// of the blossom's base.
func (e *engine) assignLabel(w int, t int8, v int) {
	st, f := e.st, e.f
	for {
		b := f.inBlossom[w]
		invariant(st.label[w] == labelNone && st.label[b] == labelNone,
			"assignLabel: vertex %d or blossom %d already labelled", w, b)
		st.label[w], st.label[b] = t, t
		le := noArc
		if v != none {
			le = arc{from: v, to: w}
		}
		st.labelEdge[w], st.labelEdge[b] = le, le
		st.bestEdge[w], st.bestEdge[b] = noArc, noArc
		if t == labelS {
			st.queue = f.appendLeaves(st.queue, b)
			return
		}
		base := f.base[b]
		invariant(e.mate[base] != none, "assignLabel: T-blossom base %d is single", base)
		w, t, v = e.mate[base], labelS, base
	}
}

// scanBlossom traces back from v and w along the alternating trees. It
// returns the base of a new blossom, or none when the trees are disjoint
// (an augmenting path).
func (e *engine) scanBlossom(v, w int) int {
	st, f := e.st, e.f
	var path []int
	base := none
	for v != none {
		b := f.inBlossom[v]
		if st.label[b]&labelCrumb != 0 {
			base = f.base[b]
			break
		}
		invariant(st.label[b] == labelS, "scanBlossom: blossom %d is not S", b)
		path = append(path, b)
		st.label[b] = labelS | labelCrumb
		if !st.labelEdge[b].ok() {
			invariant(e.mate[f.base[b]] == none, "scanBlossom: root base %d is matched", f.base[b])
			v = none
		} else {
			invariant(st.labelEdge[b].from == e.mate[f.base[b]], "scanBlossom: S label edge of %d not matched", b)
			v = st.labelEdge[b].from
			b = f.inBlossom[v]
			invariant(st.label[b] == labelT, "scanBlossom: blossom %d is not T", b)
			v = st.labelEdge[b].from
		}
		if w != none {
			v, w = w, v
		}
	}
	for _, b := range path {
		st.label[b] = labelS
	}

	return base
}

// addBlossom shrinks the odd cycle through S-vertices v and w with the
// given base into a new S-blossom with zero dual.
func (e *engine) addBlossom(base, v, w int) {
	st, f := e.st, e.f
	bb, bv, bw := f.inBlossom[base], f.inBlossom[v], f.inBlossom[w]
	b := f.alloc()
	f.base[b] = base
	f.parent[b] = none
	f.parent[bb] = b

	path := []int{}
	edgs := []arc{{from: v, to: w}}
	for bv != bb {
		f.parent[bv] = b
		path = append(path, bv)
		edgs = append(edgs, st.labelEdge[bv])
		v = st.labelEdge[bv].from
		bv = f.inBlossom[v]
	}
	path = append(path, bb)
	reverseInts(path)
	reverseArcs(edgs)
	for bw != bb {
		f.parent[bw] = b
		path = append(path, bw)
		le := st.labelEdge[bw]
		edgs = append(edgs, arc{from: le.to, to: le.from})
		w = le.from
		bw = f.inBlossom[w]
	}
	f.childs[b] = path
	f.edges[b] = edgs

	invariant(st.label[bb] == labelS, "addBlossom: base blossom %d is not S", bb)
	st.label[b] = labelS
	st.labelEdge[b] = st.labelEdge[bb]
	f.dual[b] = 0

	// T-vertices inside the new S-blossom become S and must be scanned.
	for _, leaf := range f.appendLeaves(nil, b) {
		if st.label[f.inBlossom[leaf]] == labelT {
			st.queue = append(st.queue, leaf)
		}
		f.inBlossom[leaf] = b
	}

	// One least-slack edge per neighbouring S-blossom.
	slot := make(map[int]int)
	var best []arc
	for _, c := range path {
		var nb []arc
		if f.isBlossom(c) && st.hasBestEdges[c] {
			nb = st.bestEdges[c]
			st.bestEdges[c] = nil
			st.hasBestEdges[c] = false
		} else {
			for _, leaf := range f.appendLeaves(nil, c) {
				for _, x := range e.g.adj[leaf] {
					nb = append(nb, arc{from: leaf, to: x})
				}
			}
		}
		for _, k := range nb {
			i, j := k.from, k.to
			if f.inBlossom[j] == b {
				i, j = j, i
			}
			bj := f.inBlossom[j]
			if bj == b || st.label[bj] != labelS {
				continue
			}
			if at, seen := slot[bj]; !seen {
				slot[bj] = len(best)
				best = append(best, k)
			} else if e.slack(i, j) < e.slackArc(best[at]) {
				best[at] = k
			}
		}
		st.bestEdge[c] = noArc
	}
	st.bestEdges[b] = best
	st.hasBestEdges[b] = true

	st.bestEdge[b] = noArc
	var bestSlack float64
	for _, k := range best {
		if s := e.slackArc(k); !st.bestEdge[b].ok() || s < bestSlack {
			st.bestEdge[b] = k
			bestSlack = s
		}
	}
}

// expandBlossom dissolves top-level blossom b into its children. At the end
// of a stage (endStage) zero-dual sub-blossoms are dissolved as well;
// mid-stage expansion of a T-blossom relabels the children on the path
// from the entry child to the base.
func (e *engine) expandBlossom(b int, endStage bool) {
	st, f := e.st, e.f
	work := []int{b}
	for len(work) > 0 {
		x := work[len(work)-1]
		work = work[:len(work)-1]
		for _, s := range f.childs[x] {
			f.parent[s] = none
			switch {
			case !f.isBlossom(s):
				f.inBlossom[s] = s
			case endStage && f.dual[s] == 0:
				work = append(work, s)
			default:
				for _, leaf := range f.appendLeaves(nil, s) {
					f.inBlossom[leaf] = s
				}
			}
		}
		if x == b && !endStage && st.label[b] == labelT {
			e.relabelExpandedT(b)
		}
		st.forget(x)
		f.release(x)
	}
}

// relabelExpandedT restores the alternating tree through the children of
// the expanded T-blossom b.
func (e *engine) relabelExpandedT(b int) {
	st, f := e.st, e.f
	childs, edges := f.childs[b], f.edges[b]
	size := len(childs)

	entry := f.inBlossom[st.labelEdge[b].to]
	j := f.childIndex(b, entry)
	jstep := -1
	if j&1 != 0 {
		j -= size
		jstep = 1
	}

	v, w := st.labelEdge[b].from, st.labelEdge[b].to
	for j != 0 {
		var p, q int
		if jstep == 1 {
			a := edges[wrap(j, size)]
			p, q = a.from, a.to
		} else {
			a := edges[wrap(j-1, size)]
			q, p = a.from, a.to
		}
		st.label[w] = labelNone
		st.label[q] = labelNone
		e.assignLabel(w, labelT, v)
		st.allow(p, q)
		j += jstep
		if jstep == 1 {
			a := edges[wrap(j, size)]
			v, w = a.from, a.to
		} else {
			a := edges[wrap(j-1, size)]
			w, v = a.from, a.to
		}
		st.allow(v, w)
		j += jstep
	}

	// The base child keeps T but is not stepped through to its mate.
	bw := childs[wrap(j, size)]
	st.label[w], st.label[bw] = labelT, labelT
	st.labelEdge[w] = arc{from: v, to: w}
	st.labelEdge[bw] = arc{from: v, to: w}
	st.bestEdge[bw] = noArc
	j += jstep

	for childs[wrap(j, size)] != entry {
		bv := childs[wrap(j, size)]
		if st.label[bv] == labelS {
			j += jstep
			continue
		}
		reached := none
		for _, leaf := range f.appendLeaves(nil, bv) {
			if st.label[leaf] != labelNone {
				reached = leaf
				break
			}
		}
		if reached != none {
			invariant(st.label[reached] == labelT, "expand: reached vertex %d is not T", reached)
			invariant(f.inBlossom[reached] == bv, "expand: vertex %d outside child %d", reached, bv)
			st.label[reached] = labelNone
			st.label[e.mate[f.base[bv]]] = labelNone
			e.assignLabel(reached, labelT, st.labelEdge[reached].from)
		}
		j += jstep
	}
}

// augmentFrame is one pending augmentBlossom(b, v) call.
type augmentFrame struct {
	b, v int
}

// augmentBlossom flips matched and unmatched edges on the alternating path
// inside b from vertex v to the base, then makes v the new base. Nested
// sub-blossoms are handled through a work stack; every frame touches only
// its own blossom's child list and the mates of its own connecting edges.
func (e *engine) augmentBlossom(b, v int) {
	f := e.f
	work := []augmentFrame{{b: b, v: v}}
	for len(work) > 0 {
		fr := work[len(work)-1]
		work = work[:len(work)-1]
		b, v := fr.b, fr.v

		t := v
		for f.parent[t] != b {
			t = f.parent[t]
		}
		if f.isBlossom(t) {
			work = append(work, augmentFrame{b: t, v: v})
		}

		childs, edges := f.childs[b], f.edges[b]
		size := len(childs)
		i := f.childIndex(b, t)
		j := i
		jstep := -1
		if i&1 != 0 {
			j -= size
			jstep = 1
		}
		for j != 0 {
			j += jstep
			t = childs[wrap(j, size)]
			var w, x int
			if jstep == 1 {
				a := edges[wrap(j, size)]
				w, x = a.from, a.to
			} else {
				a := edges[wrap(j-1, size)]
				x, w = a.from, a.to
			}
			if f.isBlossom(t) {
				work = append(work, augmentFrame{b: t, v: w})
			}
			j += jstep
			t = childs[wrap(j, size)]
			if f.isBlossom(t) {
				work = append(work, augmentFrame{b: t, v: x})
			}
			e.mate[w] = x
			e.mate[x] = w
		}

		f.childs[b] = rotateInts(childs, i)
		f.edges[b] = rotateArcs(edges, i)
		f.base[b] = v
	}
}

// augmentMatching flips the augmenting path that runs through the edge
// between S-vertices v and w in two different trees.
func (e *engine) augmentMatching(v, w int) {
	st, f := e.st, e.f
	for _, start := range [2]arc{{from: v, to: w}, {from: w, to: v}} {
		s, j := start.from, start.to
		for {
			bs := f.inBlossom[s]
			invariant(st.label[bs] == labelS, "augment: blossom %d is not S", bs)
			if f.isBlossom(bs) {
				e.augmentBlossom(bs, s)
			}
			e.mate[s] = j
			if !st.labelEdge[bs].ok() {
				break
			}
			t := st.labelEdge[bs].from
			bt := f.inBlossom[t]
			invariant(st.label[bt] == labelT, "augment: blossom %d is not T", bt)
			le := st.labelEdge[bt]
			s, j = le.from, le.to
			invariant(f.base[bt] == t, "augment: T-blossom %d base is not %d", bt, t)
			if f.isBlossom(bt) {
				e.augmentBlossom(bt, j)
			}
			e.mate[j] = s
		}
	}
}

func reverseInts(a []int) {
	for l, r := 0, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}
}

func reverseArcs(a []arc) {
	for l, r := 0, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}
}

func rotateInts(a []int, i int) []int {
	out := make([]int, 0, len(a))
	out = append(out, a[i:]...)

	return append(out, a[:i]...)
}

func rotateArcs(a []arc, i int) []arc {
	out := make([]arc, 0, len(a))
	out = append(out, a[i:]...)

	return append(out, a[:i]...)
}
