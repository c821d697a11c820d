package planarity

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvmatch/core"
)

// simpleGraph is the loop-free, parallel-free snapshot the LR test runs on.
// Node i has ID ids[i]; ids are sorted.
type simpleGraph struct {
	ids   []string
	index map[string]int
	nbrs  []map[int]struct{}
	edges int
}

func snapshot(method string, g *core.Graph) (*simpleGraph, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	if g.Directed() || g.HasDirectedEdges() {
		return nil, fmt.Errorf("%s: %w", method, ErrDirectedGraph)
	}

	ids := g.Vertices()
	sg := &simpleGraph{
		ids:   ids,
		index: make(map[string]int, len(ids)),
		nbrs:  make([]map[int]struct{}, len(ids)),
	}
	for i, id := range ids {
		sg.index[id] = i
		sg.nbrs[i] = make(map[int]struct{})
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		sg.add(sg.index[e.From], sg.index[e.To])
	}

	return sg, nil
}

func (sg *simpleGraph) has(u, v int) bool {
	_, ok := sg.nbrs[u][v]

	return ok
}

func (sg *simpleGraph) add(u, v int) {
	if sg.has(u, v) {
		return
	}
	sg.nbrs[u][v] = struct{}{}
	sg.nbrs[v][u] = struct{}{}
	sg.edges++
}

func (sg *simpleGraph) remove(u, v int) {
	if !sg.has(u, v) {
		return
	}
	delete(sg.nbrs[u], v)
	delete(sg.nbrs[v], u)
	sg.edges--
}

// adjacency returns sorted neighbour lists.
func (sg *simpleGraph) adjacency() [][]int {
	adj := make([][]int, len(sg.ids))
	for u, set := range sg.nbrs {
		list := make([]int, 0, len(set))
		for v := range set {
			list = append(list, v)
		}
		sort.Ints(list)
		adj[u] = list
	}

	return adj
}

// test runs the LR algorithm. The returned state is nil when the graph was
// rejected by the edge count bound.
func (sg *simpleGraph) test() (*lrState, bool) {
	n := len(sg.ids)
	if n > 2 && sg.edges > 3*n-6 {
		return nil, false
	}
	s := newLRState(n, sg.adjacency())

	return s, s.run()
}

// CheckPlanarity decides whether g is planar.
//
// Self-loops are ignored and parallel edges count once. A planar result
// carries a combinatorial Embedding; a non-planar one carries a Kuratowski
// subgraph when WithCounterexample is given.
//
// Errors: ErrNilGraph, ErrDirectedGraph.
//
// Complexity: O(V+E) for the test, O(E·(V+E)) for the counterexample.
func CheckPlanarity(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	sg, err := snapshot("CheckPlanarity", g)
	if err != nil {
		return nil, err
	}
	log := cfg.log.WithField("vertices", len(sg.ids)).WithField("edges", sg.edges)

	s, planar := sg.test()
	if s == nil {
		log.Debug("planarity: rejected by edge count")
	}
	if !planar {
		res := &Result{}
		if cfg.counterexample {
			res.Counterexample = kuratowski(sg)
			log.WithField("kuratowski_edges", res.Counterexample.EdgeCount()).Debug("planarity: counterexample found")
		}
		log.Debug("planarity: not planar")

		return res, nil
	}

	emb := NewEmbedding()
	if err = s.embed(emb, sg.ids); err != nil {
		// Only reachable through a bug in the LR passes.
		panic(fmt.Sprintf("planarity: embedding construction failed: %v", err))
	}
	log.WithField("roots", len(s.roots)).Debug("planarity: planar")

	return &Result{Planar: true, Embedding: emb}, nil
}

// IsPlanar reports whether g is planar.
func IsPlanar(g *core.Graph) (bool, error) {
	sg, err := snapshot("IsPlanar", g)
	if err != nil {
		return false, err
	}
	_, planar := sg.test()

	return planar, nil
}

// Counterexample returns a Kuratowski subgraph of g: a subdivision of K5
// or K3,3 proving g non-planar. It returns ErrPlanar when g is planar.
func Counterexample(g *core.Graph) (*core.Graph, error) {
	sg, err := snapshot("Counterexample", g)
	if err != nil {
		return nil, err
	}
	if _, planar := sg.test(); planar {
		return nil, fmt.Errorf("Counterexample: %w", ErrPlanar)
	}

	return kuratowski(sg), nil
}

// kuratowski removes every edge whose removal keeps the graph non-planar.
// The edges that remain form a minimal non-planar subgraph. sg is modified.
func kuratowski(sg *simpleGraph) *core.Graph {
	kept := make(map[[2]int]bool)
	for u := range sg.ids {
		for _, v := range sg.adjacency()[u] {
			key := [2]int{min(u, v), max(u, v)}
			if kept[key] {
				continue
			}
			sg.remove(u, v)
			if _, planar := sg.test(); planar {
				sg.add(u, v)
				kept[key] = true
			}
		}
	}

	keys := make([][2]int, 0, len(kept))
	for k := range kept {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}

		return keys[i][1] < keys[j][1]
	})

	out := core.NewGraph()
	for _, k := range keys {
		_, _ = out.AddEdge(sg.ids[k[0]], sg.ids[k[1]], 0)
	}

	return out
}
