package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/lvmatch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge adds a star concurrently and checks every spoke landed.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	const spokes = 200

	errs := make(chan error, spokes)
	var wg sync.WaitGroup
	wg.Add(spokes)
	for i := 0; i < spokes; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := g.AddEdge("hub", fmt.Sprintf("v%03d", i), float64(i), core.WithEdgeMetadata("slot", i))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	ids, err := g.NeighborIDs("hub")
	require.NoError(t, err)
	assert.Len(t, ids, spokes)
	assert.Equal(t, spokes, g.EdgeCount())
}

// TestConcurrentReadersAndWriters interleaves attribute writes, edge removal and clones.
func TestConcurrentReadersAndWriters(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	for i := 0; i < 50; i++ {
		_, err := g.AddEdge("a", fmt.Sprintf("b%d", i), 1)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_ = g.SetVertexAttr("a", "round", i)
		}
	}()
	go func() {
		defer wg.Done()
		for _, e := range g.Edges() {
			_ = g.RemoveEdge(e.ID)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			c := g.Clone()
			_ = core.SimpleView(c)
		}
	}()
	wg.Wait()

	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 51, g.VertexCount())
}
