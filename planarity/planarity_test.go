package planarity_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/builder"
	"github.com/katalvlaran/lvmatch/core"
	"github.com/katalvlaran/lvmatch/planarity"
)

func build(t *testing.T, ctors ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, ctors...)
	require.NoError(t, err)

	return g
}

func TestCheckPlanarity_Planar(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
	}{
		{"K4", builder.Complete(4)},
		{"Cycle(7)", builder.Cycle(7)},
		{"Path(5)", builder.Path(5)},
		{"Star(6)", builder.Star(6)},
		{"Wheel(8)", builder.Wheel(8)},
		{"Grid(4x5)", builder.Grid(4, 5)},
		{"K(2,5)", builder.CompleteBipartite(2, 5)},
		{"Tetrahedron", builder.PlatonicSolid(builder.Tetrahedron, false)},
		{"Cube", builder.PlatonicSolid(builder.Cube, false)},
		{"Octahedron", builder.PlatonicSolid(builder.Octahedron, false)},
		{"Dodecahedron", builder.PlatonicSolid(builder.Dodecahedron, false)},
		{"Icosahedron", builder.PlatonicSolid(builder.Icosahedron, false)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.ctor)
			res, err := planarity.CheckPlanarity(g)
			require.NoError(t, err)
			require.True(t, res.Planar)
			require.NotNil(t, res.Embedding)
			assert.Nil(t, res.Counterexample)
			require.NoError(t, res.Embedding.CheckStructure())

			// Same nodes and edges as the input.
			assert.Equal(t, g.Vertices(), res.Embedding.Nodes())
			assert.Equal(t, g.EdgeCount(), res.Embedding.Graph().EdgeCount())
			for _, e := range g.Edges() {
				assert.True(t, res.Embedding.HasHalfEdge(e.From, e.To))
				assert.True(t, res.Embedding.HasHalfEdge(e.To, e.From))
			}

			// Data survives a rebuild.
			data, err := res.Embedding.Data()
			require.NoError(t, err)
			again := planarity.NewEmbedding()
			require.NoError(t, again.SetData(data))
			rebuilt, err := again.Data()
			require.NoError(t, err)
			if diff := cmp.Diff(data, rebuilt); diff != "" {
				t.Fatalf("SetData(Data()) mismatch (-want +got):\n%s", diff)
			}
			require.NoError(t, again.CheckStructure())

			ok, err := planarity.IsPlanar(g)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestCheckPlanarity_NonPlanar(t *testing.T) {
	cases := []struct {
		name  string
		ctor  builder.Constructor
		edges int // size of the Kuratowski subgraph, 0 to skip
	}{
		{"K5", builder.Complete(5), 10},
		{"K3,3", builder.CompleteBipartite(3, 3), 9},
		{"K6", builder.Complete(6), 0},
		{"K4,4", builder.CompleteBipartite(4, 4), 0},
		{"Petersen", builder.Petersen(), 0},
		{"Tetrahedron+center", builder.PlatonicSolid(builder.Tetrahedron, true), 10},
		{"Cube+center", builder.PlatonicSolid(builder.Cube, true), 0},
		{"Icosahedron+center", builder.PlatonicSolid(builder.Icosahedron, true), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.ctor)
			res, err := planarity.CheckPlanarity(g, planarity.WithCounterexample())
			require.NoError(t, err)
			require.False(t, res.Planar)
			assert.Nil(t, res.Embedding)
			require.NotNil(t, res.Counterexample)

			ce := res.Counterexample
			if tc.edges > 0 {
				assert.Equal(t, tc.edges, ce.EdgeCount())
			}
			for _, e := range ce.Edges() {
				assert.True(t, g.HasEdge(e.From, e.To), "edge %s-%s not in input", e.From, e.To)
			}

			// Minimal: non-planar, yet planar after dropping any single edge.
			ok, err := planarity.IsPlanar(ce)
			require.NoError(t, err)
			assert.False(t, ok)
			for _, e := range ce.Edges() {
				h := ce.Clone()
				require.NoError(t, h.RemoveEdge(e.ID))
				ok, err = planarity.IsPlanar(h)
				require.NoError(t, err)
				assert.True(t, ok, "still non-planar without %s-%s", e.From, e.To)
			}

			res, err = planarity.CheckPlanarity(g)
			require.NoError(t, err)
			assert.False(t, res.Planar)
			assert.Nil(t, res.Counterexample)
		})
	}
}

func TestCheckPlanarity_Disconnected(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	for _, e := range [][2]string{
		{"a", "b"}, {"b", "c"}, {"c", "a"},
		{"x", "y"}, {"y", "z"}, {"z", "x"}, {"x", "y"},
		{"a", "a"},
	} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("lonely"))

	res, err := planarity.CheckPlanarity(g)
	require.NoError(t, err)
	require.True(t, res.Planar)
	require.NoError(t, res.Embedding.CheckStructure())
	assert.Equal(t, []string{"a", "b", "c", "lonely", "x", "y", "z"}, res.Embedding.Nodes())
	assert.Equal(t, 0, res.Embedding.Degree("lonely"))
	assert.False(t, res.Embedding.HasHalfEdge("a", "a"))
	assert.Equal(t, 6, res.Embedding.Graph().EdgeCount())
}

func TestCheckPlanarity_Trivial(t *testing.T) {
	res, err := planarity.CheckPlanarity(core.NewGraph())
	require.NoError(t, err)
	assert.True(t, res.Planar)
	assert.Empty(t, res.Embedding.Nodes())

	g := core.NewGraph()
	_, err = g.AddEdge("u", "v", 0)
	require.NoError(t, err)
	res, err = planarity.CheckPlanarity(g)
	require.NoError(t, err)
	require.True(t, res.Planar)
	data, err := res.Embedding.Data()
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"u": {"v"}, "v": {"u"}}, data)
}

func TestCheckPlanarity_Errors(t *testing.T) {
	_, err := planarity.CheckPlanarity(nil)
	assert.ErrorIs(t, err, planarity.ErrNilGraph)

	_, err = planarity.IsPlanar(core.NewGraph(core.WithDirected(true)))
	assert.ErrorIs(t, err, planarity.ErrDirectedGraph)

	_, err = planarity.Counterexample(build(t, builder.Grid(3, 3)))
	assert.ErrorIs(t, err, planarity.ErrPlanar)

	_, err = planarity.Counterexample(nil)
	assert.ErrorIs(t, err, planarity.ErrNilGraph)
}

func TestCounterexample(t *testing.T) {
	ce, err := planarity.Counterexample(build(t, builder.Petersen()))
	require.NoError(t, err)

	// A subdivided K3,3: six branch vertices of degree 3, the rest of degree 2.
	branch := 0
	for _, v := range ce.Vertices() {
		_, _, d, err := ce.Degree(v)
		require.NoError(t, err)
		require.Contains(t, []int{2, 3}, d)
		if d == 3 {
			branch++
		}
	}
	assert.Equal(t, 6, branch)
}

func TestCheckPlanarity_Logs(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := planarity.CheckPlanarity(build(t, builder.Complete(5)), planarity.WithLogger(logger))
	require.NoError(t, err)
	entries := hook.AllEntries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "planarity: rejected by edge count", entries[0].Message)
	assert.Equal(t, "planarity: not planar", hook.LastEntry().Message)
	assert.Equal(t, 5, hook.LastEntry().Data["vertices"])
}
