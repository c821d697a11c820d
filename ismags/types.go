// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Public types, sentinel errors, match predicates and options.

package ismags

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmatch/core"
)

// Sentinel errors returned by New.
var (
	// ErrNilGraph indicates that the graph or the subgraph is nil.
	ErrNilGraph = errors.New("ismags: graph is nil")

	// ErrDirectedGraph indicates a directed graph or a graph holding directed edges.
	ErrDirectedGraph = errors.New("ismags: graph must be undirected")

	// ErrMultigraph indicates parallel edges between the same pair of nodes.
	ErrMultigraph = errors.New("ismags: multigraphs are not supported")
)

// Mapping maps graph nodes to subgraph nodes.
type Mapping map[string]string

// String renders the mapping with keys in ascending order.
func (m Mapping) String() string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(k)
		sb.WriteByte(':')
		sb.WriteString(m[k])
	}
	sb.WriteByte('}')

	return sb.String()
}

// Permutation is an automorphism of the subgraph, given as the unordered
// pairs of nodes it moves. Pairs are sorted.
type Permutation [][2]string

// NodeMatch reports whether two vertices are interchangeable. It must be
// an equivalence relation.
type NodeMatch func(a, b *core.Vertex) bool

// EdgeMatch reports whether two edges are interchangeable. It must be an
// equivalence relation.
type EdgeMatch func(a, b *core.Edge) bool

// CategoricalNodeMatch compares the vertex attribute key, using def when
// the attribute is absent.
func CategoricalNodeMatch(key string, def interface{}) NodeMatch {
	return func(a, b *core.Vertex) bool {
		return cmp.Equal(attr(a.Metadata, key, def), attr(b.Metadata, key, def))
	}
}

// CategoricalEdgeMatch compares the edge attribute key, using def when the
// attribute is absent.
func CategoricalEdgeMatch(key string, def interface{}) EdgeMatch {
	return func(a, b *core.Edge) bool {
		return cmp.Equal(attr(a.Metadata, key, def), attr(b.Metadata, key, def))
	}
}

func attr(meta map[string]interface{}, key string, def interface{}) interface{} {
	if v, ok := meta[key]; ok {
		return v
	}

	return def
}

// Option customizes New.
type Option func(*config)

type config struct {
	nodeMatch NodeMatch
	edgeMatch EdgeMatch
	cache     *SymmetryCache
	log       logrus.FieldLogger
}

// WithNodeMatch sets the vertex equivalence. nil treats all vertices as equal.
func WithNodeMatch(fn NodeMatch) Option {
	return func(c *config) { c.nodeMatch = fn }
}

// WithEdgeMatch sets the edge equivalence. nil treats all edges as equal.
func WithEdgeMatch(fn EdgeMatch) Option {
	return func(c *config) { c.edgeMatch = fn }
}

// WithSymmetryCache shares symmetry analyses between ISMAGS instances.
func WithSymmetryCache(c *SymmetryCache) Option {
	return func(cfg *config) { cfg.cache = c }
}

// WithLogger routes debug traces to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// symmetry is a cached analysis result in node-index form.
type symmetry struct {
	perms  [][][2]int
	cosets map[int][]int
}

// SymmetryCache memoizes subgraph symmetry analyses. Entries are keyed by
// the node IDs, the edges and their colours, and the node partition, so one
// cache can serve unrelated subgraphs. It is safe for concurrent use.
type SymmetryCache struct {
	mu      sync.Mutex
	entries map[string]symmetry
}

// NewSymmetryCache returns an empty cache.
func NewSymmetryCache() *SymmetryCache {
	return &SymmetryCache{entries: make(map[string]symmetry)}
}

// Len returns the number of cached analyses.
func (c *SymmetryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

func (c *SymmetryCache) get(key string) (symmetry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.entries[key]

	return s, ok
}

func (c *SymmetryCache) put(key string, s symmetry) {
	c.mu.Lock()
	c.entries[key] = s
	c.mu.Unlock()
}
