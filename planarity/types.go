package planarity

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmatch/core"
)

// Sentinel errors returned by the planarity package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("planarity: graph is nil")

	// ErrDirectedGraph indicates a directed graph or a graph holding directed edges.
	ErrDirectedGraph = errors.New("planarity: graph must be undirected")

	// ErrPlanar indicates a counterexample request for a planar graph.
	ErrPlanar = errors.New("planarity: graph is planar, no counterexample")

	// ErrBadEmbedding indicates an embedding that violates its structural rules.
	ErrBadEmbedding = errors.New("planarity: bad embedding")

	// ErrImpossibleFace indicates a face traversal that revisits a half-edge.
	ErrImpossibleFace = errors.New("planarity: bad planar embedding, impossible face")

	// ErrMissingReference indicates a reference neighbour that is not adjacent.
	ErrMissingReference = errors.New("planarity: reference neighbour does not exist")

	// ErrUnknownNode indicates a node that is not part of the embedding.
	ErrUnknownNode = errors.New("planarity: unknown node")
)

// Result is the outcome of CheckPlanarity.
type Result struct {
	// Planar reports whether the graph admits a plane drawing.
	Planar bool

	// Embedding is the combinatorial embedding; set only when Planar.
	Embedding *Embedding

	// Counterexample is a Kuratowski subgraph (subdivision of K5 or K3,3);
	// set only when !Planar and WithCounterexample was given.
	Counterexample *core.Graph
}

// Option customizes CheckPlanarity.
type Option func(*config)

type config struct {
	counterexample bool
	log            logrus.FieldLogger
}

func newConfig(opts []Option) config {
	cfg := config{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithCounterexample asks CheckPlanarity for a Kuratowski subgraph when the
// graph is not planar. It costs one planarity test per edge.
func WithCounterexample() Option {
	return func(c *config) { c.counterexample = true }
}

// WithLogger routes debug traces to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
