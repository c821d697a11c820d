package planarity_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/planarity"
)

func triangle(t *testing.T) *planarity.Embedding {
	t.Helper()
	emb := planarity.NewEmbedding()
	require.NoError(t, emb.SetData(map[string][]string{
		"a": {"b", "c"},
		"b": {"c", "a"},
		"c": {"a", "b"},
	}))

	return emb
}

func TestEmbedding_AddHalfEdge(t *testing.T) {
	emb := planarity.NewEmbedding()
	require.NoError(t, emb.AddHalfEdgeCW("0", "1", ""))
	require.NoError(t, emb.AddHalfEdgeCW("0", "2", "1"))
	require.NoError(t, emb.AddHalfEdgeCW("0", "3", "2"))
	require.NoError(t, emb.AddHalfEdgeCW("0", "4", "3"))
	order, err := emb.NeighborsCWOrder("0")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, order)

	ccw := planarity.NewEmbedding()
	require.NoError(t, ccw.AddHalfEdgeCCW("0", "1", ""))
	require.NoError(t, ccw.AddHalfEdgeCCW("0", "2", "1"))
	require.NoError(t, ccw.AddHalfEdgeCCW("0", "3", "2"))
	order, err = ccw.NeighborsCWOrder("0")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "2", "1"}, order)

	require.NoError(t, ccw.AddHalfEdgeFirst("0", "9"))
	order, err = ccw.NeighborsCWOrder("0")
	require.NoError(t, err)
	assert.Equal(t, []string{"9", "3", "2", "1"}, order)
	assert.True(t, ccw.HasNode("9"))
	assert.Equal(t, 0, ccw.Degree("9"))
}

func TestEmbedding_Errors(t *testing.T) {
	emb := planarity.NewEmbedding()
	require.NoError(t, emb.AddHalfEdgeCW("0", "1", ""))

	err := emb.AddHalfEdgeCW("0", "2", "7")
	assert.ErrorIs(t, err, planarity.ErrMissingReference)
	assert.False(t, emb.HasHalfEdge("0", "2"))

	err = emb.AddHalfEdgeCCW("0", "2", "7")
	assert.ErrorIs(t, err, planarity.ErrMissingReference)

	_, err = emb.NeighborsCWOrder("zz")
	assert.ErrorIs(t, err, planarity.ErrUnknownNode)

	_, _, err = emb.NextFaceHalfEdge("0", "1")
	assert.ErrorIs(t, err, planarity.ErrBadEmbedding)

	// 0 -> 1 has no opposite.
	assert.ErrorIs(t, emb.CheckStructure(), planarity.ErrBadEmbedding)
}

func TestEmbedding_Faces(t *testing.T) {
	emb := triangle(t)
	require.NoError(t, emb.CheckStructure())

	mark := make(planarity.HalfEdgeSet)
	face, err := emb.TraverseFace("a", "b", mark)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, face)
	assert.Len(t, mark, 3)
	assert.True(t, mark.Has(planarity.HalfEdge{From: "c", To: "a"}))

	face, err = emb.TraverseFace("b", "a", mark)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, face)
	assert.Len(t, mark, 6)

	_, err = emb.TraverseFace("a", "b", mark)
	assert.ErrorIs(t, err, planarity.ErrImpossibleFace)

	v, w, err := emb.NextFaceHalfEdge("a", "b")
	require.NoError(t, err)
	assert.Equal(t, [2]string{"b", "c"}, [2]string{v, w})
}

func TestEmbedding_ConnectComponents(t *testing.T) {
	emb := triangle(t)
	require.NoError(t, emb.SetData(map[string][]string{"x": {"y"}, "y": {"x"}}))
	require.NoError(t, emb.CheckStructure())

	require.NoError(t, emb.ConnectComponents("a", "x"))
	require.NoError(t, emb.CheckStructure())
	want := map[string][]string{
		"a": {"x", "b", "c"},
		"b": {"c", "a"},
		"c": {"a", "b"},
		"x": {"a", "y"},
		"y": {"x"},
	}
	data, err := emb.Data()
	require.NoError(t, err)
	if diff := cmp.Diff(want, data); diff != "" {
		t.Fatalf("Data mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 5, emb.Graph().EdgeCount())
}

func TestEmbedding_CheckStructureEuler(t *testing.T) {
	// K4 with a non-planar rotation: every rotation is consistent, yet the
	// face count breaks Euler's formula.
	emb := planarity.NewEmbedding()
	require.NoError(t, emb.SetData(map[string][]string{
		"1": {"2", "3", "4"},
		"2": {"1", "3", "4"},
		"3": {"1", "2", "4"},
		"4": {"1", "2", "3"},
	}))
	assert.ErrorIs(t, emb.CheckStructure(), planarity.ErrBadEmbedding)
}

func TestEmbedding_BrokenRotation(t *testing.T) {
	emb := triangle(t)
	_, err := emb.Data()
	require.NoError(t, err)

	// Restarting the rotation of a drops c from its clockwise cycle.
	require.NoError(t, emb.AddHalfEdgeCW("a", "b", ""))
	assert.Equal(t, 2, emb.Degree("a"))

	_, err = emb.NeighborsCWOrder("a")
	assert.ErrorIs(t, err, planarity.ErrBadEmbedding)
	data, err := emb.Data()
	assert.ErrorIs(t, err, planarity.ErrBadEmbedding)
	assert.Nil(t, data)
	assert.ErrorIs(t, emb.CheckStructure(), planarity.ErrBadEmbedding)
}
