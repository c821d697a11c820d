package matching

import "github.com/sirupsen/logrus"

// DefaultWeightKey names the attribute read as the edge weight by default.
const DefaultWeightKey = "weight"

// Option customizes a matching run.
type Option func(*config)

type config struct {
	maxCardinality bool
	weightKey      string
	defaultWeight  float64
	verify         bool
	log            logrus.FieldLogger
}

func newConfig(opts []Option) config {
	cfg := config{
		weightKey:     DefaultWeightKey,
		defaultWeight: 1,
		verify:        true,
		log:           logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxCardinality restricts the search to maximum-cardinality matchings.
func WithMaxCardinality() Option {
	return func(c *config) { c.maxCardinality = true }
}

// WithWeightKey reads weights from the named attribute. "weight" maps to
// Edge.Weight on weighted graphs; any other key is looked up in Edge.Metadata.
func WithWeightKey(key string) Option {
	return func(c *config) {
		if key != "" {
			c.weightKey = key
		}
	}
}

// WithDefaultWeight sets the weight of edges that carry no weight attribute.
func WithDefaultWeight(w float64) Option {
	return func(c *config) { c.defaultWeight = w }
}

// WithVerify toggles the final optimality check. It only ever runs when all
// weights are integral.
func WithVerify(on bool) Option {
	return func(c *config) { c.verify = on }
}

// WithLogger routes debug traces to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
