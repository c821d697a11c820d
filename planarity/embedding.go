// SPDX-License-Identifier: MIT
//
// File: embedding.go
// Role: Combinatorial embedding: cyclic clockwise neighbour order per node,
// stored as doubly linked half-edges.

package planarity

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvmatch/converters"
	"github.com/katalvlaran/lvmatch/core"
)

// HalfEdge is the directed half (From -> To) of an undirected edge. The face
// to its right belongs to it.
type HalfEdge struct {
	From, To string
}

// HalfEdgeSet collects visited half-edges during face traversal.
type HalfEdgeSet map[HalfEdge]struct{}

// Has reports whether h is in s.
func (s HalfEdgeSet) Has(h HalfEdge) bool {
	_, ok := s[h]

	return ok
}

// link holds the clockwise and counter-clockwise successors of one
// half-edge around its start node.
type link struct {
	cw, ccw string
}

// Embedding is a planar graph together with the clockwise order of the
// neighbours around every node.
//
// Every edge is present as two half-edges. The order around a node is a
// cyclic list entered at its first neighbour. An Embedding under
// construction may be invalid; CheckStructure validates it.
type Embedding struct {
	out   map[string]map[string]*link
	first map[string]string
}

// NewEmbedding returns an empty embedding.
func NewEmbedding() *Embedding {
	return &Embedding{
		out:   make(map[string]map[string]*link),
		first: make(map[string]string),
	}
}

// AddNode adds an isolated node. Adding an existing node is a no-op.
func (emb *Embedding) AddNode(v string) {
	if _, ok := emb.out[v]; !ok {
		emb.out[v] = make(map[string]*link)
	}
}

// HasNode reports whether v is part of the embedding.
func (emb *Embedding) HasNode(v string) bool {
	_, ok := emb.out[v]

	return ok
}

// Nodes returns all nodes sorted by ID.
func (emb *Embedding) Nodes() []string {
	ids := make([]string, 0, len(emb.out))
	for v := range emb.out {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids
}

// HasHalfEdge reports whether the half-edge v -> w exists.
func (emb *Embedding) HasHalfEdge(v, w string) bool {
	_, ok := emb.out[v][w]

	return ok
}

// Degree returns the number of half-edges leaving v.
func (emb *Embedding) Degree(v string) int { return len(emb.out[v]) }

// addHalfEdge creates v -> w (and both nodes) if missing and returns its link.
func (emb *Embedding) addHalfEdge(v, w string) *link {
	emb.AddNode(v)
	emb.AddNode(w)
	l, ok := emb.out[v][w]
	if !ok {
		l = &link{}
		emb.out[v][w] = l
	}

	return l
}

// AddHalfEdgeCW inserts the half-edge start -> end clockwise right after
// start -> ref. An empty ref makes end the only (and first) neighbour.
func (emb *Embedding) AddHalfEdgeCW(start, end, ref string) error {
	if start == "" || end == "" {
		return fmt.Errorf("AddHalfEdgeCW: empty node ID: %w", ErrUnknownNode)
	}
	if ref == "" {
		l := emb.addHalfEdge(start, end)
		l.cw, l.ccw = end, end
		emb.first[start] = end

		return nil
	}
	refLink, ok := emb.out[start][ref]
	if !ok {
		return fmt.Errorf("AddHalfEdgeCW: %s -> %s: %w", start, ref, ErrMissingReference)
	}
	l := emb.addHalfEdge(start, end)
	cwRef := refLink.cw
	refLink.cw = end
	l.cw = cwRef
	emb.out[start][cwRef].ccw = end
	l.ccw = ref

	return nil
}

// AddHalfEdgeCCW inserts the half-edge start -> end counter-clockwise right
// before start -> ref. If ref was the first neighbour, end becomes first.
func (emb *Embedding) AddHalfEdgeCCW(start, end, ref string) error {
	if start == "" || end == "" {
		return fmt.Errorf("AddHalfEdgeCCW: empty node ID: %w", ErrUnknownNode)
	}
	if ref == "" {
		l := emb.addHalfEdge(start, end)
		l.cw, l.ccw = end, end
		emb.first[start] = end

		return nil
	}
	refLink, ok := emb.out[start][ref]
	if !ok {
		return fmt.Errorf("AddHalfEdgeCCW: %s -> %s: %w", start, ref, ErrMissingReference)
	}
	if err := emb.AddHalfEdgeCW(start, end, refLink.ccw); err != nil {
		return err
	}
	if first, ok := emb.first[start]; ok && first == ref {
		emb.first[start] = end
	}

	return nil
}

// AddHalfEdgeFirst inserts start -> end as the first neighbour of start.
func (emb *Embedding) AddHalfEdgeFirst(start, end string) error {
	return emb.AddHalfEdgeCCW(start, end, emb.first[start])
}

// ConnectComponents adds v -> w and w -> v at the first position of both
// nodes. Only valid when v and w lie in different components.
func (emb *Embedding) ConnectComponents(v, w string) error {
	if err := emb.AddHalfEdgeFirst(v, w); err != nil {
		return err
	}

	return emb.AddHalfEdgeFirst(w, v)
}

// cwOrder walks the clockwise cycle of v. A broken or short cycle is
// reported with ErrBadEmbedding together with the part walked so far.
func (emb *Embedding) cwOrder(v string) ([]string, error) {
	nbrs, ok := emb.out[v]
	if !ok {
		return nil, fmt.Errorf("%q: %w", v, ErrUnknownNode)
	}
	order := make([]string, 0, len(nbrs))
	if len(nbrs) == 0 {
		return order, nil
	}
	start, ok := emb.first[v]
	if !ok {
		return order, fmt.Errorf("%q has no first neighbour: %w", v, ErrBadEmbedding)
	}
	cur := start
	for {
		l, ok := nbrs[cur]
		if !ok {
			return order, fmt.Errorf("missing orientation for neighbour %q of %q: %w", cur, v, ErrBadEmbedding)
		}
		order = append(order, cur)
		if len(order) > len(nbrs) {
			return order, fmt.Errorf("clockwise order of %q does not cycle: %w", v, ErrBadEmbedding)
		}
		cur = l.cw
		if cur != start {
			continue
		}
		if len(order) < len(nbrs) {
			return order, fmt.Errorf("clockwise order of %q misses %d neighbours: %w",
				v, len(nbrs)-len(order), ErrBadEmbedding)
		}

		return order, nil
	}
}

// NeighborsCWOrder returns the neighbours of v in clockwise order,
// starting at the first neighbour.
func (emb *Embedding) NeighborsCWOrder(v string) ([]string, error) {
	order, err := emb.cwOrder(v)
	if err != nil {
		return nil, fmt.Errorf("NeighborsCWOrder: %w", err)
	}

	return order, nil
}

// Data returns every node mapped to its clockwise neighbour list. It fails
// with ErrBadEmbedding when some clockwise cycle is broken.
func (emb *Embedding) Data() (map[string][]string, error) {
	data := make(map[string][]string, len(emb.out))
	for _, v := range emb.Nodes() {
		order, err := emb.cwOrder(v)
		if err != nil {
			return nil, fmt.Errorf("Data: %w", err)
		}
		data[v] = order
	}

	return data, nil
}

// SetData inserts the half-edges described by data (the format of Data).
// Every key becomes a node even when its list is empty.
func (emb *Embedding) SetData(data map[string][]string) error {
	keys := make([]string, 0, len(data))
	for v := range data {
		keys = append(keys, v)
	}
	sort.Strings(keys)
	for _, v := range keys {
		emb.AddNode(v)
		nbrs := data[v]
		for i := len(nbrs) - 1; i >= 0; i-- {
			if err := emb.AddHalfEdgeFirst(v, nbrs[i]); err != nil {
				return fmt.Errorf("SetData: %w", err)
			}
		}
	}

	return nil
}

// NextFaceHalfEdge returns the half-edge following v -> w on the face to
// its right.
func (emb *Embedding) NextFaceHalfEdge(v, w string) (string, string, error) {
	l, ok := emb.out[w][v]
	if !ok {
		return "", "", fmt.Errorf("NextFaceHalfEdge: half-edge %s -> %s missing: %w", w, v, ErrBadEmbedding)
	}

	return w, l.ccw, nil
}

// TraverseFace returns the nodes of the face to the right of v -> w. Every
// half-edge met is added to mark (may be nil); mark must not already hold
// a half-edge of this face.
func (emb *Embedding) TraverseFace(v, w string, mark HalfEdgeSet) ([]string, error) {
	if mark == nil {
		mark = make(HalfEdgeSet)
	}
	l, ok := emb.out[v][w]
	if !ok {
		return nil, fmt.Errorf("TraverseFace: half-edge %s -> %s missing: %w", v, w, ErrBadEmbedding)
	}
	face := []string{v}
	mark[HalfEdge{From: v, To: w}] = struct{}{}
	prev, cur := v, w
	incoming := l.cw
	for cur != v || prev != incoming {
		face = append(face, cur)
		var err error
		prev, cur, err = emb.NextFaceHalfEdge(prev, cur)
		if err != nil {
			return nil, fmt.Errorf("TraverseFace: %w", err)
		}
		h := HalfEdge{From: prev, To: cur}
		if mark.Has(h) {
			return nil, fmt.Errorf("TraverseFace: %s -> %s: %w", prev, cur, ErrImpossibleFace)
		}
		mark[h] = struct{}{}
	}

	return face, nil
}

// CheckStructure validates the embedding:
//
//   - the clockwise cycle of every node covers exactly its neighbours;
//   - every half-edge has its opposite;
//   - every connected component with an edge satisfies V - E + F = 2.
//
// Passing proves the underlying graph planar.
func (emb *Embedding) CheckStructure() error {
	nodes := emb.Nodes()
	for _, v := range nodes {
		order, err := emb.cwOrder(v)
		if err != nil {
			return fmt.Errorf("CheckStructure: %w", err)
		}
		seen := make(map[string]bool, len(order))
		for _, w := range order {
			seen[w] = true
		}
		if len(seen) != len(emb.out[v]) {
			return fmt.Errorf("CheckStructure: edge orientations of %q not set correctly: %w", v, ErrBadEmbedding)
		}
		for w := range emb.out[v] {
			if !seen[w] {
				return fmt.Errorf("CheckStructure: edge orientations of %q not set correctly: %w", v, ErrBadEmbedding)
			}
			if !emb.HasHalfEdge(w, v) {
				return fmt.Errorf("CheckStructure: opposite of %s -> %s missing: %w", v, w, ErrBadEmbedding)
			}
		}
	}

	comps, err := converters.Components(emb.Graph())
	if err != nil {
		return fmt.Errorf("CheckStructure: %w", err)
	}
	counted := make(HalfEdgeSet)
	for _, comp := range comps {
		if len(comp) == 1 {
			continue
		}
		halfEdges, faces := 0, 0
		for _, v := range comp {
			order, err := emb.cwOrder(v)
			if err != nil {
				return fmt.Errorf("CheckStructure: %w", err)
			}
			for _, w := range order {
				halfEdges++
				if counted.Has(HalfEdge{From: v, To: w}) {
					continue
				}
				faces++
				if _, err := emb.TraverseFace(v, w, counted); err != nil {
					return fmt.Errorf("CheckStructure: %w", err)
				}
			}
		}
		if len(comp)-halfEdges/2+faces != 2 {
			return fmt.Errorf("CheckStructure: component of %d nodes does not match Euler's formula: %w",
				len(comp), ErrBadEmbedding)
		}
	}

	return nil
}

// Graph returns the underlying undirected graph.
func (emb *Embedding) Graph() *core.Graph {
	g := core.NewGraph(core.WithLoops())
	for _, v := range emb.Nodes() {
		_ = g.AddVertex(v)
	}
	for _, v := range emb.Nodes() {
		for _, w := range sortedKeys(emb.out[v]) {
			if v <= w {
				_, _ = g.AddEdge(v, w, 0)
			}
		}
	}

	return g
}

func sortedKeys(m map[string]*link) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
