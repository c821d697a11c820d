package matching

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors returned by the matching package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("matching: graph is nil")

	// ErrDirectedGraph indicates a directed graph or a graph holding directed edges.
	ErrDirectedGraph = errors.New("matching: graph must be undirected")

	// ErrMultigraph indicates a graph configured to allow parallel edges.
	ErrMultigraph = errors.New("matching: multigraphs are not supported")

	// ErrBadWeight indicates a NaN/Inf weight or a non-numeric weight attribute.
	ErrBadWeight = errors.New("matching: invalid edge weight")

	// ErrSelfLoop indicates a matching dictionary that maps a vertex to itself.
	ErrSelfLoop = errors.New("matching: vertex matched to itself")

	// ErrVertexNotInGraph indicates a matching edge whose endpoint is not in the graph.
	ErrVertexNotInGraph = errors.New("matching: vertex not in graph")
)

// Pair is one matched edge. Results always hold U < V.
type Pair struct {
	U, V string
}

// NewPair returns the normalized pair {a, b}.
func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{U: a, V: b}
}

// String renders the pair as "(U,V)".
func (p Pair) String() string { return fmt.Sprintf("(%s,%s)", p.U, p.V) }

// Pairs is the set-of-edges form of a matching.
type Pairs []Pair

// Mate is the dictionary form of a matching: m[u] == v and m[v] == u.
type Mate map[string]string

// Matching is accepted by the validators in either form.
type Matching interface {
	Pairs() (Pairs, error)
}

// Pairs returns p unchanged (as a copy) so that validators see the edges
// exactly as given, including duplicates and self-pairs.
func (p Pairs) Pairs() (Pairs, error) {
	out := make(Pairs, len(p))
	copy(out, p)

	return out, nil
}

// Mate converts p to the dictionary form.
func (p Pairs) Mate() Mate {
	m := make(Mate, 2*len(p))
	for _, e := range p {
		m[e.U] = e.V
		m[e.V] = e.U
	}

	return m
}

// Sort orders p by (U, V).
func (p Pairs) Sort() {
	sort.Slice(p, func(i, j int) bool {
		if p[i].U != p[j].U {
			return p[i].U < p[j].U
		}

		return p[i].V < p[j].V
	})
}

// Pairs converts the dictionary form to normalized, de-duplicated, sorted
// pairs. A vertex mapped to itself fails with ErrSelfLoop.
func (m Mate) Pairs() (Pairs, error) {
	seen := make(map[Pair]struct{}, len(m))
	out := make(Pairs, 0, len(m)/2)
	for u, v := range m {
		if u == v {
			return nil, fmt.Errorf("Mate.Pairs: %q: %w", u, ErrSelfLoop)
		}
		p := NewPair(u, v)
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	out.Sort()

	return out, nil
}

// stageOutcome is the tagged result of one blossom stage.
type stageOutcome uint8

const (
	// outcomeAugmented: an augmenting path was found and applied.
	outcomeAugmented stageOutcome = iota
	// outcomeExhausted: the duals proved that no augmenting path is left.
	outcomeExhausted
)

func (o stageOutcome) String() string {
	switch o {
	case outcomeAugmented:
		return "augmented"
	case outcomeExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// invariant panics when an internal consistency condition of the engine is
// broken. It never fires on valid input.
func invariant(cond bool, format string, args ...interface{}) {
	if !cond {
		panic("matching: invariant violated: " + fmt.Sprintf(format, args...))
	}
}
