package ismags_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/builder"
	"github.com/katalvlaran/lvmatch/core"
	"github.com/katalvlaran/lvmatch/ismags"
)

func edges(t *testing.T, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}

	return g
}

// star3 is a star with center "0" and leaves "1", "2", "3".
func star3(t *testing.T) *core.Graph {
	return edges(t, [2]string{"0", "1"}, [2]string{"0", "2"}, [2]string{"0", "3"})
}

func path4(t *testing.T) *core.Graph {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)

	return g
}

func petersen(t *testing.T) *core.Graph {
	g, err := builder.BuildGraph(nil, nil, builder.Petersen())
	require.NoError(t, err)

	return g
}

func newISMAGS(t *testing.T, g, sub *core.Graph, opts ...ismags.Option) *ismags.ISMAGS {
	t.Helper()
	m, err := ismags.New(g, sub, opts...)
	require.NoError(t, err)

	return m
}

// assertInduced checks that mp is an isomorphism from sub onto the
// subgraph of g induced by mp's keys.
func assertInduced(t *testing.T, g, sub *core.Graph, mp ismags.Mapping) {
	t.Helper()
	inv := make(map[string]string, len(mp))
	for gn, sgn := range mp {
		inv[sgn] = gn
	}
	require.Len(t, inv, len(mp), "mapping %v is not injective", mp)
	for a, ga := range inv {
		for b, gb := range inv {
			if a < b {
				assert.Equal(t, sub.HasEdge(a, b), g.HasEdge(ga, gb), "pair %s-%s in %v", a, b, mp)
			}
		}
	}
}

func TestFindIsomorphisms_Petersen(t *testing.T) {
	g := petersen(t)
	m := newISMAGS(t, g, petersen(t))

	all := slices.Collect(m.FindIsomorphisms(false))
	assert.Len(t, all, 120)
	for _, mp := range all {
		assert.Len(t, mp, 10)
		assertInduced(t, g, g, mp)
	}

	sym := slices.Collect(m.FindIsomorphisms(true))
	require.Len(t, sym, 1)
	identity := ismags.Mapping{}
	for _, v := range g.Vertices() {
		identity[v] = v
	}
	assert.Equal(t, identity, sym[0])

	assert.True(t, m.IsIsomorphic())
	assert.Len(t, slices.Collect(m.IsomorphismsIter(true)), 1)
}

func TestFindIsomorphisms_Subgraph(t *testing.T) {
	g := petersen(t)
	sub, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	m := newISMAGS(t, g, sub)

	// Each of the 10 centers has 3 leaf pairs, taken in both orders.
	all := slices.Collect(m.SubgraphIsomorphismsIter(false))
	assert.Len(t, all, 60)
	for _, mp := range all {
		assertInduced(t, g, sub, mp)
	}
	assert.Len(t, slices.Collect(m.FindIsomorphisms(true)), 30)

	assert.True(t, m.SubgraphIsIsomorphic())
	assert.False(t, m.IsIsomorphic())
	assert.Empty(t, slices.Collect(m.IsomorphismsIter(false)))

	// The Petersen graph has girth 5: no triangles, no 4-cycles.
	for _, k := range []int{3, 4} {
		cycle, err := builder.BuildGraph(nil, nil, builder.Cycle(k))
		require.NoError(t, err)
		assert.False(t, newISMAGS(t, g, cycle).SubgraphIsIsomorphic(), "C%d", k)
	}
}

func TestFindIsomorphisms_Degenerate(t *testing.T) {
	empty := core.NewGraph()

	got := slices.Collect(newISMAGS(t, path4(t), empty).FindIsomorphisms(true))
	assert.Equal(t, []ismags.Mapping{{}}, got)

	assert.Empty(t, slices.Collect(newISMAGS(t, empty, path4(t)).FindIsomorphisms(true)))
	assert.Empty(t, slices.Collect(newISMAGS(t, star3(t), petersen(t)).FindIsomorphisms(false)))
	assert.False(t, newISMAGS(t, path4(t), star3(t)).SubgraphIsIsomorphic())

	got = slices.Collect(newISMAGS(t, path4(t), empty).LargestCommonSubgraph(true))
	assert.Equal(t, []ismags.Mapping{{}}, got)
	assert.Empty(t, slices.Collect(newISMAGS(t, empty, path4(t)).LargestCommonSubgraph(true)))
}

func TestFindIsomorphisms_StopsEarly(t *testing.T) {
	m := newISMAGS(t, petersen(t), petersen(t))
	n := 0
	for range m.FindIsomorphisms(false) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestLargestCommonSubgraph(t *testing.T) {
	m := newISMAGS(t, path4(t), star3(t))
	got := slices.Collect(m.LargestCommonSubgraph(true))
	want := []ismags.Mapping{
		{"1": "0", "0": "1", "2": "2"},
		{"2": "0", "1": "1", "3": "2"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("LargestCommonSubgraph mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, slices.Collect(m.LargestCommonSubgraph(false)), 12)

	rev := newISMAGS(t, star3(t), path4(t))
	got = slices.Collect(rev.LargestCommonSubgraph(true))
	assert.Len(t, got, 6)
	for _, mp := range got {
		assert.Len(t, mp, 3)
		assertInduced(t, star3(t), path4(t), mp)
	}
	assert.Len(t, slices.Collect(rev.LargestCommonSubgraph(false)), 12)

	// A full match stops the shrinking at once.
	same := newISMAGS(t, petersen(t), petersen(t))
	assert.Len(t, slices.Collect(same.LargestCommonSubgraph(true)), 1)
}

func TestAnalyzeSymmetry(t *testing.T) {
	m := newISMAGS(t, path4(t), star3(t))
	perms, cosets := m.AnalyzeSymmetry()
	assert.Equal(t, map[string][]string{
		"1": {"1", "2", "3"},
		"2": {"2", "3"},
	}, cosets)
	assert.Equal(t, []ismags.Permutation{{{"2", "3"}}, {{"1", "2"}}}, perms)

	m = newISMAGS(t, star3(t), path4(t))
	perms, cosets = m.AnalyzeSymmetry()
	assert.Equal(t, map[string][]string{"0": {"0", "3"}}, cosets)
	assert.Equal(t, []ismags.Permutation{{{"0", "3"}, {"1", "2"}}}, perms)
}

func TestCategoricalMatch(t *testing.T) {
	g := edges(t, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"})
	require.NoError(t, g.SetVertexAttr("a", "color", "red"))
	require.NoError(t, g.SetVertexAttr("b", "color", "blue"))
	require.NoError(t, g.SetVertexAttr("c", "color", "blue"))
	sub := edges(t, [2]string{"x", "y"})
	require.NoError(t, sub.SetVertexAttr("x", "color", "red"))
	require.NoError(t, sub.SetVertexAttr("y", "color", "blue"))

	m := newISMAGS(t, g, sub, ismags.WithNodeMatch(ismags.CategoricalNodeMatch("color", "")))
	want := []ismags.Mapping{{"a": "x", "b": "y"}, {"a": "x", "c": "y"}}
	assert.Equal(t, want, slices.Collect(m.FindIsomorphisms(true)))

	// Nothing red in the graph: no candidates at all.
	require.NoError(t, g.SetVertexAttr("a", "color", "green"))
	m = newISMAGS(t, g, sub, ismags.WithNodeMatch(ismags.CategoricalNodeMatch("color", "")))
	assert.Empty(t, slices.Collect(m.FindIsomorphisms(false)))
	// The blue node alone still matches.
	assert.Equal(t, []ismags.Mapping{{"b": "y"}, {"c": "y"}}, slices.Collect(m.LargestCommonSubgraph(false)))

	kinds := core.NewGraph()
	for _, e := range []struct {
		u, v string
		kind int
	}{{"a", "b", 1}, {"b", "c", 2}, {"c", "a", 2}} {
		_, err := kinds.AddEdge(e.u, e.v, 0, core.WithEdgeMetadata("kind", e.kind))
		require.NoError(t, err)
	}
	one := core.NewGraph()
	_, err := one.AddEdge("u", "v", 0, core.WithEdgeMetadata("kind", 1))
	require.NoError(t, err)

	m = newISMAGS(t, kinds, one, ismags.WithEdgeMatch(ismags.CategoricalEdgeMatch("kind", 0)))
	assert.Len(t, slices.Collect(m.FindIsomorphisms(false)), 2)
	assert.Equal(t, []ismags.Mapping{{"a": "u", "b": "v"}}, slices.Collect(m.FindIsomorphisms(true)))
}

func TestSymmetryCache(t *testing.T) {
	cache := ismags.NewSymmetryCache()
	first := newISMAGS(t, petersen(t), petersen(t), ismags.WithSymmetryCache(cache))
	assert.Len(t, slices.Collect(first.FindIsomorphisms(true)), 1)
	assert.Equal(t, 1, cache.Len())

	second := newISMAGS(t, petersen(t), petersen(t), ismags.WithSymmetryCache(cache))
	assert.Len(t, slices.Collect(second.FindIsomorphisms(true)), 1)
	assert.Equal(t, 1, cache.Len())

	third := newISMAGS(t, petersen(t), path4(t), ismags.WithSymmetryCache(cache))
	third.AnalyzeSymmetry()
	assert.Equal(t, 2, cache.Len())
}

func TestNew_Errors(t *testing.T) {
	_, err := ismags.New(nil, path4(t))
	assert.ErrorIs(t, err, ismags.ErrNilGraph)
	_, err = ismags.New(path4(t), nil)
	assert.ErrorIs(t, err, ismags.ErrNilGraph)

	_, err = ismags.New(core.NewGraph(core.WithDirected(true)), path4(t))
	assert.ErrorIs(t, err, ismags.ErrDirectedGraph)

	multi := core.NewGraph(core.WithMultiEdges())
	for i := 0; i < 2; i++ {
		_, err = multi.AddEdge("a", "b", 0)
		require.NoError(t, err)
	}
	_, err = ismags.New(path4(t), multi)
	assert.ErrorIs(t, err, ismags.ErrMultigraph)
}

func TestLogging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	m := newISMAGS(t, path4(t), star3(t), ismags.WithLogger(logger))
	slices.Collect(m.LargestCommonSubgraph(true))

	var msgs []string
	for _, e := range hook.AllEntries() {
		msgs = append(msgs, e.Message)
	}
	assert.Equal(t, []string{
		"ismags: colour partitions",
		"ismags: symmetry analysed",
		"ismags: symmetry constraints",
		"ismags: shrinking common subgraph",
	}, msgs)
	assert.Equal(t, 3, hook.LastEntry().Data["size"])
}

func TestMapping_String(t *testing.T) {
	assert.Equal(t, "{0:1 1:0 2:2}", ismags.Mapping{"1": "0", "0": "1", "2": "2"}.String())
	assert.Equal(t, "{}", ismags.Mapping{}.String())
}
