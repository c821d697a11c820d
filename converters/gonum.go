// SPDX-License-Identifier: MIT
//
// File: gonum.go
// Role: core.Graph <-> gonum simple.WeightedUndirectedGraph, connected components.

package converters

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/lvmatch/core"
)

var (
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrDirectedGraph indicates a graph holding directed edges.
	ErrDirectedGraph = errors.New("converters: directed edges not supported")
)

// ToGonum returns the undirected simple view of g as a gonum graph together
// with the vertex ID of every gonum node ID.
//
// Errors: ErrNilGraph, ErrDirectedGraph.
func ToGonum(g *core.Graph) (*simple.WeightedUndirectedGraph, []string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if g.HasDirectedEdges() {
		return nil, nil, fmt.Errorf("ToGonum: %w", ErrDirectedGraph)
	}

	ids := g.Vertices()
	index := make(map[string]int64, len(ids))
	ug := simple.NewWeightedUndirectedGraph(0, 0)
	for i, id := range ids {
		index[id] = int64(i)
		ug.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		if u == v || ug.HasEdgeBetween(u, v) {
			continue
		}
		ug.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(u), T: simple.Node(v), W: e.Weight})
	}

	return ug, ids, nil
}

// FromGonum copies an undirected gonum graph into a new core.Graph. name
// maps gonum node IDs to vertex IDs; nil uses the decimal node ID. Edge
// weights are kept when the graph is weighted.
func FromGonum(ug graph.Undirected, name func(int64) string, opts ...core.GraphOption) (*core.Graph, error) {
	if ug == nil {
		return nil, ErrNilGraph
	}
	if name == nil {
		name = func(id int64) string { return fmt.Sprint(id) }
	}
	g := core.NewGraph(opts...)
	wg, weighted := ug.(graph.Weighted)
	weighted = weighted && g.Weighted()

	nodes := graph.NodesOf(ug.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	for _, n := range nodes {
		if err := g.AddVertex(name(n.ID())); err != nil {
			return nil, fmt.Errorf("FromGonum: node %d: %w", n.ID(), err)
		}
	}
	for _, n := range nodes {
		nbrs := graph.NodesOf(ug.From(n.ID()))
		sort.Slice(nbrs, func(i, j int) bool { return nbrs[i].ID() < nbrs[j].ID() })
		for _, m := range nbrs {
			if m.ID() < n.ID() {
				continue
			}
			var w float64
			if weighted {
				w, _ = wg.Weight(n.ID(), m.ID())
			}
			if _, err := g.AddEdge(name(n.ID()), name(m.ID()), w); err != nil {
				return nil, fmt.Errorf("FromGonum: edge %d-%d: %w", n.ID(), m.ID(), err)
			}
		}
	}

	return g, nil
}

// Components returns the connected components of g, each sorted by ID and
// ordered by their smallest ID.
//
// Errors: as ToGonum.
func Components(g *core.Graph) ([][]string, error) {
	ug, ids, err := ToGonum(g)
	if err != nil {
		return nil, fmt.Errorf("Components: %w", err)
	}

	var out [][]string
	for _, comp := range topo.ConnectedComponents(ug) {
		c := make([]string, 0, len(comp))
		for _, n := range comp {
			c = append(c, ids[n.ID()])
		}
		sort.Strings(c)
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out, nil
}
