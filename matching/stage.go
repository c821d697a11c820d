package matching

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Delta kinds, in the order they are considered.
const (
	deltaNone         = 0
	deltaVertexDual   = 1 // δ1: min vertex dual, ends the search
	deltaFreeVertex   = 2 // δ2: S-vertex to free vertex
	deltaSBlossomPair = 3 // δ3: half slack between two S-blossoms
	deltaTBlossomDual = 4 // δ4: min z of a top-level T-blossom
	deltaKindsTracked = 5
)

// engine owns every piece of mutable state of one matching run.
type engine struct {
	g   *indexedGraph
	f   *forest
	st  *stageContext
	cfg *config
	log logrus.FieldLogger

	mate []int
}

func newEngine(ig *indexedGraph, cfg *config) *engine {
	n := len(ig.ids)
	e := &engine{
		g:    ig,
		f:    newForest(n, ig.maxWeight),
		st:   newStageContext(n),
		cfg:  cfg,
		log:  cfg.log,
		mate: make([]int, n),
	}
	for v := range e.mate {
		e.mate[v] = none
	}

	return e
}

// slack returns twice the slack of edge (v,w); meaningless inside blossoms.
func (e *engine) slack(v, w int) float64 {
	return e.f.dual[v] + e.f.dual[w] - 2*e.g.weight(v, w)
}

func (e *engine) slackArc(a arc) float64 { return e.slack(a.from, a.to) }

// run executes stages until one fails to augment.
func (e *engine) run() {
	var kinds [deltaKindsTracked]int
	for stage := 1; ; stage++ {
		out := e.runStage(&kinds)
		for v, m := range e.mate {
			invariant(m == none || e.mate[m] == v, "mate of %d is not symmetric", v)
		}
		e.log.WithFields(logrus.Fields{
			"stage":    stage,
			"outcome":  out,
			"blossoms": e.liveBlossoms(),
			"delta2":   kinds[deltaFreeVertex],
			"delta3":   kinds[deltaSBlossomPair],
			"delta4":   kinds[deltaTBlossomDual],
		}).Debug("matching: stage finished")
		if out == outcomeExhausted {
			return
		}

		// Zero-dual top-level S-blossoms do not survive the stage.
		var doomed []int
		e.f.blossoms(func(b int) { doomed = append(doomed, b) })
		for _, b := range doomed {
			if !e.f.live[b] {
				continue
			}
			if e.f.parent[b] == none && e.st.label[b] == labelS && e.f.dual[b] == 0 {
				e.expandBlossom(b, true)
			}
		}
	}
}

func (e *engine) liveBlossoms() int {
	count := 0
	e.f.blossoms(func(int) { count++ })

	return count
}

// runStage grows alternating trees from every single vertex until it
// either augments the matching or the duals prove it optimal.
func (e *engine) runStage(kinds *[deltaKindsTracked]int) stageOutcome {
	st, f := e.st, e.f
	st.reset()
	for v := 0; v < f.n; v++ {
		if e.mate[v] == none && st.label[f.inBlossom[v]] == labelNone {
			e.assignLabel(v, labelS, none)
		}
	}

	for {
		if e.scanQueue() {
			return outcomeAugmented
		}

		kind, delta, edge, blossom := e.chooseDelta()
		kinds[kind]++
		e.applyDelta(delta)

		switch kind {
		case deltaVertexDual:
			return outcomeExhausted
		case deltaFreeVertex, deltaSBlossomPair:
			invariant(st.label[f.inBlossom[edge.from]] == labelS, "delta edge tail %d is not S", edge.from)
			st.allow(edge.from, edge.to)
			st.queue = append(st.queue, edge.from)
		case deltaTBlossomDual:
			e.expandBlossom(blossom, false)
		}
	}
}

// scanQueue labels along tight edges until the queue drains. It reports
// whether an augmentation happened.
func (e *engine) scanQueue() bool {
	st, f := e.st, e.f
	for len(st.queue) > 0 {
		v := st.queue[len(st.queue)-1]
		st.queue = st.queue[:len(st.queue)-1]
		invariant(st.label[f.inBlossom[v]] == labelS, "queued vertex %d is not S", v)

		for _, w := range e.g.adj[v] {
			bv, bw := f.inBlossom[v], f.inBlossom[w]
			if bv == bw {
				continue
			}
			var kslack float64
			if !st.isAllowed(v, w) {
				kslack = e.slack(v, w)
				if kslack <= 0 {
					st.allow(v, w)
				}
			}
			switch {
			case st.isAllowed(v, w):
				switch {
				case st.label[bw] == labelNone:
					e.assignLabel(w, labelT, v)
				case st.label[bw] == labelS:
					if base := e.scanBlossom(v, w); base != none {
						e.addBlossom(base, v, w)
					} else {
						e.augmentMatching(v, w)
						return true
					}
				case st.label[w] == labelNone:
					// w sits unreached inside a T-blossom.
					invariant(st.label[bw] == labelT, "blossom %d of %d is not T", bw, w)
					st.label[w] = labelT
					st.labelEdge[w] = arc{from: v, to: w}
				}
			case st.label[bw] == labelS:
				if !st.bestEdge[bv].ok() || kslack < e.slackArc(st.bestEdge[bv]) {
					st.bestEdge[bv] = arc{from: v, to: w}
				}
			case st.label[w] == labelNone:
				if !st.bestEdge[w].ok() || kslack < e.slackArc(st.bestEdge[w]) {
					st.bestEdge[w] = arc{from: v, to: w}
				}
			}
		}
	}

	return false
}

// chooseDelta picks the smallest admissible dual change. Ties keep the
// earlier kind.
func (e *engine) chooseDelta() (kind int, delta float64, edge arc, blossom int) {
	st, f := e.st, e.f
	kind, edge, blossom = deltaNone, noArc, none

	if !e.cfg.maxCardinality {
		kind = deltaVertexDual
		delta = e.minVertexDual()
	}

	for v := 0; v < f.n; v++ {
		if st.label[f.inBlossom[v]] == labelNone && st.bestEdge[v].ok() {
			if d := e.slackArc(st.bestEdge[v]); kind == deltaNone || d < delta {
				kind, delta, edge = deltaFreeVertex, d, st.bestEdge[v]
			}
		}
	}

	consider3 := func(b int) {
		if f.parent[b] != none || st.label[b] != labelS || !st.bestEdge[b].ok() {
			return
		}
		ks := e.slackArc(st.bestEdge[b])
		if e.g.allInteger {
			invariant(math.Mod(ks, 2) == 0, "odd slack %v between S-blossoms", ks)
		}
		if d := ks / 2; kind == deltaNone || d < delta {
			kind, delta, edge = deltaSBlossomPair, d, st.bestEdge[b]
		}
	}
	for v := 0; v < f.n; v++ {
		consider3(v)
	}
	f.blossoms(consider3)

	f.blossoms(func(b int) {
		if f.parent[b] == none && st.label[b] == labelT && (kind == deltaNone || f.dual[b] < delta) {
			kind, delta, blossom = deltaTBlossomDual, f.dual[b], b
		}
	})

	if kind == deltaNone {
		// Only reachable in max-cardinality mode: no augmenting path is
		// left. A final shift keeps the duals verifiable.
		invariant(e.cfg.maxCardinality, "no delta available outside max-cardinality mode")
		kind = deltaVertexDual
		delta = math.Max(0, e.minVertexDual())
	}

	return kind, delta, edge, blossom
}

func (e *engine) minVertexDual() float64 {
	m := math.Inf(1)
	for v := 0; v < e.f.n; v++ {
		m = math.Min(m, e.f.dual[v])
	}

	return m
}

// applyDelta moves S-vertices down, T-vertices up, and top-level blossom
// duals the opposite way.
func (e *engine) applyDelta(delta float64) {
	st, f := e.st, e.f
	for v := 0; v < f.n; v++ {
		switch st.label[f.inBlossom[v]] {
		case labelS:
			f.dual[v] -= delta
		case labelT:
			f.dual[v] += delta
		}
	}
	f.blossoms(func(b int) {
		if f.parent[b] != none {
			return
		}
		switch st.label[b] {
		case labelS:
			f.dual[b] += delta
		case labelT:
			f.dual[b] -= delta
		}
	})
}
