package ismags

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/core"
)

// pair is an undirected node pair with the smaller index first.
type pair [2]int

func norm(u, v int) pair {
	if v < u {
		u, v = v, u
	}

	return pair{u, v}
}

// view is an index-based snapshot of one input graph. Node i has ID ids[i]
// and ids are sorted, so index order is ID order.
type view struct {
	ids    []string
	index  map[string]int
	verts  []*core.Vertex
	adj    []map[int]struct{}
	edges  []pair
	edgeOf map[pair]*core.Edge
}

func newView(method, role string, g *core.Graph) (*view, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %s: %w", method, role, ErrNilGraph)
	}
	if g.Directed() || g.HasDirectedEdges() {
		return nil, fmt.Errorf("%s: %s: %w", method, role, ErrDirectedGraph)
	}
	if g.HasParallelEdges() {
		return nil, fmt.Errorf("%s: %s: %w", method, role, ErrMultigraph)
	}

	ids := g.Vertices()
	v := &view{
		ids:    ids,
		index:  make(map[string]int, len(ids)),
		verts:  make([]*core.Vertex, len(ids)),
		adj:    make([]map[int]struct{}, len(ids)),
		edgeOf: make(map[pair]*core.Edge),
	}
	for i, id := range ids {
		v.index[id] = i
		v.adj[i] = make(map[int]struct{})
		vert, err := g.GetVertex(id)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", method, role, err)
		}
		v.verts[i] = vert
	}
	for _, e := range g.Edges() {
		u, w := v.index[e.From], v.index[e.To]
		p := norm(u, w)
		v.adj[u][w] = struct{}{}
		v.adj[w][u] = struct{}{}
		v.edgeOf[p] = e
		v.edges = append(v.edges, p)
	}

	return v, nil
}

func (v *view) size() int { return len(v.ids) }

func (v *view) adjacent(u, w int) bool {
	_, ok := v.adj[u][w]

	return ok
}

// partition groups items so that same(a, b) holds inside every cell. Each
// item is compared with the first member of the existing cells.
func partition[T any](items []T, same func(a, b T) bool) [][]T {
	var cells [][]T
	for _, it := range items {
		placed := false
		for i, cell := range cells {
			if same(it, cell[0]) {
				cells[i] = append(cell, it)
				placed = true
				break
			}
		}
		if !placed {
			cells = append(cells, []T{it})
		}
	}

	return cells
}

// colorsOf numbers every node by the index of its cell.
func colorsOf(n int, cells [][]int) []int {
	colors := make([]int, n)
	for c, cell := range cells {
		for _, x := range cell {
			colors[x] = c
		}
	}

	return colors
}

// coloring holds node and edge colours of one graph.
type coloring struct {
	nodeCells [][]int
	nodeColor []int
	edgeCells [][]pair
	edgeColor map[pair]int
}

func colorGraph(v *view, nodeMatch NodeMatch, edgeMatch EdgeMatch) coloring {
	nodes := make([]int, v.size())
	for i := range nodes {
		nodes[i] = i
	}

	var c coloring
	if nodeMatch == nil {
		c.nodeCells = [][]int{nodes}
	} else {
		c.nodeCells = partition(nodes, func(a, b int) bool { return nodeMatch(v.verts[a], v.verts[b]) })
	}
	c.nodeColor = colorsOf(v.size(), c.nodeCells)

	if edgeMatch == nil {
		c.edgeCells = [][]pair{v.edges}
	} else {
		c.edgeCells = partition(v.edges, func(a, b pair) bool { return edgeMatch(v.edgeOf[a], v.edgeOf[b]) })
	}
	c.edgeColor = make(map[pair]int, len(v.edges))
	for col, cell := range c.edgeCells {
		for _, p := range cell {
			c.edgeColor[p] = col
		}
	}

	return c
}

// compatibility maps subgraph colours to graph colours by comparing one
// representative per cell. Empty cells have no representative.
func compatibility[T any](sub, full [][]T, same func(a, b T) bool) map[int]int {
	compat := make(map[int]int)
	for sc, scell := range sub {
		if len(scell) == 0 {
			continue
		}
		for gc, gcell := range full {
			if len(gcell) > 0 && same(scell[0], gcell[0]) {
				compat[sc] = gc
			}
		}
	}

	return compat
}
