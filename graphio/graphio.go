// SPDX-License-Identifier: MIT
//
// File: graphio.go
// Role: YAML document model and the Read/Write codec for core.Graph.
// Determinism:
//   - Write emits vertices sorted by ID and edges in creation order.
//   - Attribute maps are applied in sorted key order on Read.

package graphio

import (
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmatch/core"
)

var (
	// ErrEmptyDocument indicates that the input holds no YAML document.
	ErrEmptyDocument = errors.New("graphio: empty document")

	// ErrBadEdge indicates an edge entry without both endpoints.
	ErrBadEdge = errors.New("graphio: edge needs from and to")
)

type document struct {
	Directed bool        `yaml:"directed,omitempty"`
	Weighted *bool       `yaml:"weighted,omitempty"`
	Loops    bool        `yaml:"loops,omitempty"`
	Multi    bool        `yaml:"multi,omitempty"`
	Vertices []vertexDoc `yaml:"vertices,omitempty"`
	Edges    []edgeDoc   `yaml:"edges,omitempty"`
}

type vertexDoc struct {
	ID    string                 `yaml:"id"`
	Attrs map[string]interface{} `yaml:"attrs,omitempty"`
}

type edgeDoc struct {
	From   string                 `yaml:"from"`
	To     string                 `yaml:"to"`
	Weight *float64               `yaml:"weight,omitempty"`
	Attrs  map[string]interface{} `yaml:"attrs,omitempty"`
}

// MarshalYAML writes an edge on one line.
func (e edgeDoc) MarshalYAML() (interface{}, error) {
	type plain edgeDoc
	var n yaml.Node
	if err := n.Encode(plain(e)); err != nil {
		return nil, err
	}
	n.Style = yaml.FlowStyle

	return &n, nil
}

// Read decodes one graph document from r. Unknown keys are rejected.
//
// Unless the document says otherwise, the graph is weighted exactly when
// some edge carries a weight. In a weighted graph, edges without a weight
// are added with core.WithoutWeight, so consumers apply their default.
//
// Errors:
//   - ErrEmptyDocument when r holds no document.
//   - ErrBadEdge for an edge missing an endpoint.
//   - YAML syntax errors and core errors (ErrBadWeight, ErrLoopNotAllowed,
//     ErrMultiEdgeNotAllowed), wrapped with their position in the document.
func Read(r io.Reader) (*core.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.WithStack(ErrEmptyDocument)
		}
		return nil, errors.Wrap(err, "graphio: decode")
	}

	return doc.build()
}

// ReadFile reads the graph stored at path.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: open %s", path)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: read %s", path)
	}

	return g, nil
}

func (doc *document) build() (*core.Graph, error) {
	weighted := false
	if doc.Weighted != nil {
		weighted = *doc.Weighted
	} else {
		for _, e := range doc.Edges {
			if e.Weight != nil {
				weighted = true
				break
			}
		}
	}

	var opts []core.GraphOption
	if doc.Directed {
		opts = append(opts, core.WithDirected(true))
	}
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	if doc.Loops {
		opts = append(opts, core.WithLoops())
	}
	if doc.Multi {
		opts = append(opts, core.WithMultiEdges())
	}
	g := core.NewGraph(opts...)

	for i, v := range doc.Vertices {
		if err := g.AddVertex(v.ID); err != nil {
			return nil, errors.Wrapf(err, "graphio: vertex %d", i)
		}
		for _, k := range sortedKeys(v.Attrs) {
			if err := g.SetVertexAttr(v.ID, k, v.Attrs[k]); err != nil {
				return nil, errors.Wrapf(err, "graphio: vertex %q", v.ID)
			}
		}
	}

	for i, e := range doc.Edges {
		if e.From == "" || e.To == "" {
			return nil, errors.Wrapf(ErrBadEdge, "graphio: edge %d", i)
		}
		var w float64
		eopts := make([]core.EdgeOption, 0, len(e.Attrs)+1)
		switch {
		case e.Weight != nil:
			w = *e.Weight
		case weighted:
			eopts = append(eopts, core.WithoutWeight())
		}
		for _, k := range sortedKeys(e.Attrs) {
			eopts = append(eopts, core.WithEdgeMetadata(k, e.Attrs[k]))
		}
		if _, err := g.AddEdge(e.From, e.To, w, eopts...); err != nil {
			return nil, errors.Wrapf(err, "graphio: edge %d (%s-%s)", i, e.From, e.To)
		}
	}

	return g, nil
}

// Write encodes g in the format Read accepts. Weights are written only for
// weighted graphs and only on edges that have one; per-edge direction
// overrides are not representable.
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return errors.New("graphio: nil graph")
	}
	weighted := g.Weighted()
	doc := document{
		Directed: g.Directed(),
		Weighted: &weighted,
		Loops:    g.Looped(),
		Multi:    g.Multigraph(),
	}

	verts := g.VerticesMap()
	for _, id := range g.Vertices() {
		vd := vertexDoc{ID: id}
		if md := verts[id].Metadata; len(md) > 0 {
			vd.Attrs = md
		}
		doc.Vertices = append(doc.Vertices, vd)
	}
	for _, e := range g.Edges() {
		ed := edgeDoc{From: e.From, To: e.To}
		if weighted && e.HasWeight() {
			wt := e.Weight
			ed.Weight = &wt
		}
		if len(e.Metadata) > 0 {
			ed.Attrs = e.Metadata
		}
		doc.Edges = append(doc.Edges, ed)
	}

	return Encode(w, &doc)
}

// Encode writes v as a single YAML document with two-space indentation.
func Encode(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "graphio: encode")
	}

	return errors.Wrap(enc.Close(), "graphio: encode")
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
