package matching_test

import (
	"fmt"
	"math"
	"math/bits"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/builder"
	"github.com/katalvlaran/lvmatch/core"
	"github.com/katalvlaran/lvmatch/matching"
)

type wedge struct {
	u, v string
	w    float64
}

func weightedGraph(t *testing.T, edges []wedge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, e := range edges {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

func pairs(ps ...string) matching.Pairs {
	out := matching.Pairs{}
	for i := 0; i+1 < len(ps); i += 2 {
		out = append(out, matching.NewPair(ps[i], ps[i+1]))
	}
	out.Sort()

	return out
}

var sampleEdges = []wedge{
	{"1", "2", 6}, {"1", "3", 2}, {"2", "3", 1}, {"2", "4", 7}, {"3", "5", 9}, {"4", "5", 3},
}

func TestMaxWeightMatching_KnownCases(t *testing.T) {
	cases := []struct {
		name    string
		edges   []wedge
		maxCard bool
		want    matching.Pairs
	}{
		{"single edge", []wedge{{"1", "2", 1}}, false, pairs("1", "2")},
		{"path prefers heavy middle", []wedge{{"1", "2", 10}, {"2", "3", 11}}, false, pairs("2", "3")},
		{"heavy middle", []wedge{{"1", "2", 5}, {"2", "3", 11}, {"3", "4", 5}}, false, pairs("2", "3")},
		{"heavy middle, max cardinality", []wedge{{"1", "2", 5}, {"2", "3", 11}, {"3", "4", 5}}, true, pairs("1", "2", "3", "4")},
		{"float weights", []wedge{{"1", "2", math.Pi}, {"2", "3", math.E}, {"1", "3", 3}, {"1", "4", math.Sqrt2}}, false, pairs("1", "4", "2", "3")},
		{"float weights, max cardinality", []wedge{{"1", "2", math.Pi}, {"2", "3", math.E}, {"1", "3", 3}, {"1", "4", math.Sqrt2}}, true, pairs("1", "4", "2", "3")},
		{"negative weights", []wedge{{"1", "2", 2}, {"1", "3", -2}, {"2", "3", 1}, {"2", "4", -1}, {"3", "4", -6}}, false, pairs("1", "2")},
		{"negative weights, max cardinality", []wedge{{"1", "2", 2}, {"1", "3", -2}, {"2", "3", 1}, {"2", "4", -1}, {"3", "4", -6}}, true, pairs("1", "3", "2", "4")},
		{"S-blossom", []wedge{{"1", "2", 8}, {"1", "3", 9}, {"2", "3", 10}, {"3", "4", 7}}, false, pairs("1", "2", "3", "4")},
		{"S-blossom grown", []wedge{{"1", "2", 8}, {"1", "3", 9}, {"2", "3", 10}, {"3", "4", 7}, {"1", "6", 5}, {"4", "5", 6}}, false, pairs("1", "6", "2", "3", "4", "5")},
		{"S-blossom relabelled T", []wedge{{"1", "2", 9}, {"1", "3", 8}, {"2", "3", 10}, {"1", "4", 5}, {"4", "5", 4}, {"1", "6", 3}}, false, pairs("1", "6", "2", "3", "4", "5")},
		{"nested S-blossom", []wedge{{"1", "2", 9}, {"1", "3", 9}, {"2", "3", 10}, {"2", "4", 8}, {"3", "5", 8}, {"4", "5", 10}, {"5", "6", 6}}, false, pairs("1", "3", "2", "4", "5", "6")},
		{"sample graph", sampleEdges, false, pairs("2", "4", "3", "5")},
		{"sample graph, max cardinality", sampleEdges, true, pairs("2", "4", "3", "5")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := weightedGraph(t, tc.edges)
			var opts []matching.Option
			if tc.maxCard {
				opts = append(opts, matching.WithMaxCardinality())
			}
			got, err := matching.MaxWeightMatching(g, opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMaxWeightMatching_Trivial(t *testing.T) {
	got, err := matching.MaxWeightMatching(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	_, err = g.AddEdge("a", "a", 100)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("b"))
	got, err = matching.MaxWeightMatching(g)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Unweighted graphs use the default weight of 1.
	u := core.NewGraph()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}} {
		_, err = u.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	got, err = matching.MaxWeightMatching(u)
	require.NoError(t, err)
	assert.Equal(t, pairs("a", "b", "c", "d"), got)
}

func TestMaxWeightMatching_Errors(t *testing.T) {
	_, err := matching.MaxWeightMatching(nil)
	assert.ErrorIs(t, err, matching.ErrNilGraph)

	_, err = matching.MaxWeightMatching(core.NewGraph(core.WithDirected(true)))
	assert.ErrorIs(t, err, matching.ErrDirectedGraph)

	_, err = matching.MinWeightMatching(core.NewGraph(core.WithMultiEdges()))
	assert.ErrorIs(t, err, matching.ErrMultigraph)

	inf := core.NewGraph(core.WithWeighted())
	_, err = inf.AddEdge("a", "b", math.Inf(1))
	require.NoError(t, err)
	_, err = matching.MaxWeightMatching(inf)
	assert.ErrorIs(t, err, matching.ErrBadWeight)

	bad := core.NewGraph()
	_, err = bad.AddEdge("a", "b", 0, core.WithEdgeMetadata("cost", "high"))
	require.NoError(t, err)
	_, err = matching.MaxWeightMatching(bad, matching.WithWeightKey("cost"))
	assert.ErrorIs(t, err, matching.ErrBadWeight)
}

func TestMaxWeightMatching_WeightKey(t *testing.T) {
	g := core.NewGraph()
	add := func(u, v string, cost interface{}) {
		var opts []core.EdgeOption
		if cost != nil {
			opts = append(opts, core.WithEdgeMetadata("cost", cost))
		}
		_, err := g.AddEdge(u, v, 0, opts...)
		require.NoError(t, err)
	}
	add("a", "b", 3)
	add("b", "c", int64(4))
	add("c", "d", float32(3))
	add("d", "a", nil)

	got, err := matching.MaxWeightMatching(g, matching.WithWeightKey("cost"))
	require.NoError(t, err)
	assert.Equal(t, pairs("a", "b", "c", "d"), got)

	got, err = matching.MaxWeightMatching(g, matching.WithWeightKey("cost"), matching.WithDefaultWeight(8))
	require.NoError(t, err)
	assert.Equal(t, pairs("a", "d", "b", "c"), got)

	w, err := got.Weight(g, matching.WithWeightKey("cost"), matching.WithDefaultWeight(8))
	require.NoError(t, err)
	assert.Equal(t, 12.0, w)
}

func TestMinWeightMatching(t *testing.T) {
	g := weightedGraph(t, sampleEdges)
	got, err := matching.MinWeightMatching(g)
	require.NoError(t, err)
	assert.Equal(t, pairs("2", "3", "4", "5"), got)

	w, err := got.Weight(g)
	require.NoError(t, err)
	assert.Equal(t, 4.0, w)

	empty := core.NewGraph()
	require.NoError(t, empty.AddVertex("x"))
	got, err = matching.MinWeightMatching(empty)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// optimum is the exhaustive answer for a small graph.
type optimum struct {
	maxWeight    float64 // best weight of any matching
	maxCard      int     // largest matching size
	maxCardBest  float64 // best weight among largest matchings
	maxCardWorst float64 // worst weight among largest matchings
}

func (o optimum) plus(w float64) optimum {
	return optimum{o.maxWeight + w, o.maxCard + 1, o.maxCardBest + w, o.maxCardWorst + w}
}

func (o optimum) merge(c optimum) optimum {
	o.maxWeight = math.Max(o.maxWeight, c.maxWeight)
	switch {
	case c.maxCard > o.maxCard:
		o.maxCard, o.maxCardBest, o.maxCardWorst = c.maxCard, c.maxCardBest, c.maxCardWorst
	case c.maxCard == o.maxCard:
		o.maxCardBest = math.Max(o.maxCardBest, c.maxCardBest)
		o.maxCardWorst = math.Min(o.maxCardWorst, c.maxCardWorst)
	}

	return o
}

// bruteForce solves every vertex subset of g: the lowest vertex of a subset
// is either left single or matched to one of its neighbours in the subset.
func bruteForce(t *testing.T, g *core.Graph) optimum {
	t.Helper()
	ids := g.Vertices()
	n := len(ids)
	require.LessOrEqual(t, n, 16)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}
	adj := make([][]float64, n)
	has := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]float64, n)
		has[i] = make([]bool, n)
	}
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		if u == v {
			continue
		}
		adj[u][v], adj[v][u] = e.Weight, e.Weight
		has[u][v], has[v][u] = true, true
	}

	memo := make([]optimum, 1<<n)
	for mask := 1; mask < 1<<n; mask++ {
		i := bits.TrailingZeros(uint(mask))
		rest := mask &^ (1 << i)
		best := memo[rest]
		for j := i + 1; j < n; j++ {
			if rest&(1<<j) != 0 && has[i][j] {
				best = best.merge(memo[rest&^(1<<j)].plus(adj[i][j]))
			}
		}
		memo[mask] = best
	}

	return memo[1<<n-1]
}

func randomGraph(t *testing.T, seed int64, n int, p float64, weights builder.BuilderOption) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(seed), weights},
		builder.RandomSparse(n, p),
	)
	require.NoError(t, err)

	return g
}

func TestBruteForce(t *testing.T) {
	opt := bruteForce(t, weightedGraph(t, sampleEdges))
	assert.Equal(t, optimum{maxWeight: 16, maxCard: 2, maxCardBest: 16, maxCardWorst: 4}, opt)

	opt = bruteForce(t, weightedGraph(t, []wedge{{"1", "2", 5}, {"2", "3", 11}, {"3", "4", 5}}))
	assert.Equal(t, optimum{maxWeight: 11, maxCard: 2, maxCardBest: 10, maxCardWorst: 10}, opt)
}

func TestMaxWeightMatching_BruteForce(t *testing.T) {
	seeds := int64(3000)
	if testing.Short() {
		seeds = 300
	}
	densities := []float64{0.3, 0.5, 0.8, 1}
	for seed := int64(1); seed <= seeds; seed++ {
		n := 2 + int(seed%11)
		p := densities[seed%int64(len(densities))]
		g := randomGraph(t, seed, n, p, builder.WithIntWeight(-5, 20))
		opt := bruteForce(t, g)

		got, err := matching.MaxWeightMatching(g)
		require.NoError(t, err)
		ok, err := matching.IsMatching(g, got)
		require.NoError(t, err)
		require.True(t, ok, "seed %d", seed)
		w, err := got.Weight(g)
		require.NoError(t, err)
		require.Equal(t, opt.maxWeight, w, "seed %d n %d p %g", seed, n, p)

		card, err := matching.MaxWeightMatching(g, matching.WithMaxCardinality())
		require.NoError(t, err)
		require.Len(t, card, opt.maxCard, "seed %d", seed)
		w, err = card.Weight(g)
		require.NoError(t, err)
		require.Equal(t, opt.maxCardBest, w, "seed %d n %d p %g", seed, n, p)

		low, err := matching.MinWeightMatching(g)
		require.NoError(t, err)
		require.Len(t, low, opt.maxCard, "seed %d", seed)
		w, err = low.Weight(g)
		require.NoError(t, err)
		require.Equal(t, opt.maxCardWorst, w, "seed %d n %d p %g", seed, n, p)
	}
}

func TestMaxWeightMatching_BruteForceFloat(t *testing.T) {
	for seed := int64(100); seed < 400; seed++ {
		n := 3 + int(seed%10)
		g := randomGraph(t, seed, n, 0.7, builder.WithUniformWeight(0.5, 10))
		opt := bruteForce(t, g)

		got, err := matching.MaxWeightMatching(g)
		require.NoError(t, err)
		w, err := got.Weight(g)
		require.NoError(t, err)
		require.InDelta(t, opt.maxWeight, w, 1e-9, "seed %d", seed)
	}
}

// Vertex IDs are zero-padded so that sorted order follows the numbering.
func padded(edges [][3]int) []wedge {
	out := make([]wedge, len(edges))
	for i, e := range edges {
		out[i] = wedge{fmt.Sprintf("%02d", e[0]), fmt.Sprintf("%02d", e[1]), float64(e[2])}
	}

	return out
}

func paddedPairs(ps ...int) matching.Pairs {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = fmt.Sprintf("%02d", p)
	}

	return pairs(ids...)
}

func TestMaxWeightMatching_BlossomExpansion(t *testing.T) {
	tnasty := func(w48, w57 int) [][3]int {
		return [][3]int{
			{1, 2, 45}, {1, 5, 45}, {2, 3, 50}, {3, 4, 45}, {4, 5, 50},
			{1, 6, 30}, {3, 9, 35}, {4, 8, w48}, {5, 7, w57}, {9, 10, 5},
		}
	}
	cases := []struct {
		name  string
		edges [][3]int
		want  matching.Pairs
	}{
		{
			"T-blossom dissolved after relabel",
			[][3]int{{1, 2, 9}, {1, 3, 8}, {2, 3, 10}, {1, 4, 5}, {4, 5, 3}, {1, 6, 4}},
			paddedPairs(1, 6, 2, 3, 4, 5),
		},
		{
			"T-blossom kept after relabel",
			[][3]int{{1, 2, 9}, {1, 3, 8}, {2, 3, 10}, {1, 4, 5}, {4, 5, 3}, {3, 6, 4}},
			paddedPairs(1, 2, 3, 6, 4, 5),
		},
		{
			"nested S-blossom relabelled",
			[][3]int{{1, 2, 10}, {1, 7, 10}, {2, 3, 12}, {3, 4, 20}, {3, 5, 20}, {4, 5, 25}, {5, 6, 10}, {6, 7, 10}, {7, 8, 8}},
			paddedPairs(1, 2, 3, 4, 5, 6, 7, 8),
		},
		{
			"nested S-blossom expanded",
			[][3]int{{1, 2, 8}, {1, 3, 8}, {2, 3, 10}, {2, 4, 12}, {3, 5, 12}, {4, 5, 14}, {4, 6, 12}, {5, 7, 12}, {6, 7, 14}, {7, 8, 12}},
			paddedPairs(1, 2, 3, 5, 4, 6, 7, 8),
		},
		{
			"S-blossom relabelled as T and expanded",
			[][3]int{{1, 2, 23}, {1, 5, 22}, {1, 6, 15}, {2, 3, 25}, {3, 4, 22}, {4, 5, 25}, {4, 8, 14}, {5, 7, 13}},
			paddedPairs(1, 6, 2, 3, 4, 8, 5, 7),
		},
		{
			"nested S-blossom relabelled as T and expanded",
			[][3]int{{1, 2, 19}, {1, 3, 20}, {1, 8, 8}, {2, 3, 25}, {2, 4, 18}, {3, 5, 18}, {4, 5, 13}, {4, 7, 7}, {5, 6, 7}},
			paddedPairs(1, 8, 2, 3, 4, 7, 5, 6),
		},
		{
			"T-blossom expanded with reached inner vertex",
			tnasty(35, 26),
			paddedPairs(1, 6, 2, 3, 4, 8, 5, 7, 9, 10),
		},
		{
			"T-blossom expanded with reached base neighbour",
			tnasty(26, 40),
			paddedPairs(1, 6, 2, 3, 4, 8, 5, 7, 9, 10),
		},
		{
			"T-blossom expanded, least slack edge stale",
			tnasty(28, 26),
			paddedPairs(1, 6, 2, 3, 4, 8, 5, 7, 9, 10),
		},
		{
			"nested T-blossom expanded",
			[][3]int{
				{1, 2, 45}, {1, 7, 45}, {2, 3, 50}, {3, 4, 45}, {4, 5, 95}, {4, 6, 94}, {5, 6, 94},
				{6, 7, 50}, {1, 8, 30}, {3, 11, 35}, {5, 9, 36}, {7, 10, 26}, {11, 12, 5},
			},
			paddedPairs(1, 8, 2, 3, 4, 6, 5, 9, 7, 10, 11, 12),
		},
		{
			"nested S-blossom relabelled and expanded",
			[][3]int{
				{1, 2, 40}, {1, 3, 40}, {2, 3, 60}, {2, 4, 55}, {3, 5, 55}, {4, 5, 50},
				{1, 8, 15}, {5, 7, 30}, {7, 6, 10}, {8, 10, 10}, {4, 9, 30},
			},
			paddedPairs(1, 2, 3, 5, 4, 9, 6, 7, 8, 10),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := weightedGraph(t, padded(tc.edges))
			got, err := matching.MaxWeightMatching(g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			opt := bruteForce(t, g)
			w, err := got.Weight(g)
			require.NoError(t, err)
			assert.Equal(t, opt.maxWeight, w)
		})
	}
}

func TestMaxWeightMatching_MissingWeight(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 0, core.WithoutWeight())
	require.NoError(t, err)

	got, err := matching.MaxWeightMatching(g, matching.WithDefaultWeight(3))
	require.NoError(t, err)
	assert.Equal(t, pairs("b", "c"), got)
	w, err := got.Weight(g, matching.WithDefaultWeight(3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)

	// A lighter default leaves the weighted edge ahead.
	got, err = matching.MaxWeightMatching(g, matching.WithDefaultWeight(0.5))
	require.NoError(t, err)
	assert.Equal(t, pairs("a", "b"), got)
}

func TestMaxWeightMatching_Dense(t *testing.T) {
	for _, tc := range []struct {
		name string
		ctor builder.Constructor
		want int
	}{
		{"K6", builder.Complete(6), 3},
		{"K7", builder.Complete(7), 3},
		{"Petersen", builder.Petersen(), 5},
		{"Dodecahedron", builder.PlatonicSolid(builder.Dodecahedron, false), 10},
		{"Grid 3x3", builder.Grid(3, 3), 4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(
				[]core.GraphOption{core.WithWeighted()},
				[]builder.BuilderOption{builder.WithSeed(5), builder.WithIntWeight(1, 50)},
				tc.ctor,
			)
			require.NoError(t, err)
			got, err := matching.MaxWeightMatching(g, matching.WithMaxCardinality())
			require.NoError(t, err)
			assert.Len(t, got, tc.want)
			if 2*tc.want == g.VertexCount() {
				ok, err := matching.IsPerfectMatching(g, got)
				require.NoError(t, err)
				assert.True(t, ok)
			}
		})
	}
}

func TestMaxWeightMatching_Idempotent(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := randomGraph(t, seed, 10, 0.5, builder.WithIntWeight(1, 30))
		m, err := matching.MaxWeightMatching(g)
		require.NoError(t, err)

		sub := core.NewGraph(core.WithWeighted())
		for _, p := range m {
			e := g.EdgesBetween(p.U, p.V)[0]
			_, err = sub.AddEdge(p.U, p.V, e.Weight)
			require.NoError(t, err)
		}
		again, err := matching.MaxWeightMatching(sub)
		require.NoError(t, err)
		assert.Equal(t, m, again, "seed %d", seed)
	}
}

func TestMaxWeightMatching_LogsStages(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := matching.MaxWeightMatching(weightedGraph(t, sampleEdges), matching.WithLogger(logger))
	require.NoError(t, err)

	var stages int
	for _, entry := range hook.AllEntries() {
		if entry.Message == "matching: stage finished" {
			stages++
		}
	}
	// Two augmentations plus the final exhausted stage.
	assert.Equal(t, 3, stages)
	assert.Equal(t, "matching: done", hook.LastEntry().Message)
}

func TestMateAndPairs(t *testing.T) {
	m := matching.Mate{"b": "a", "a": "b", "d": "c", "c": "d"}
	ps, err := m.Pairs()
	require.NoError(t, err)
	assert.Equal(t, pairs("a", "b", "c", "d"), ps)
	assert.Equal(t, m, ps.Mate())
	assert.Equal(t, "(a,b)", ps[0].String())

	_, err = matching.Mate{"a": "a"}.Pairs()
	assert.ErrorIs(t, err, matching.ErrSelfLoop)
}
