package matching_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmatch/builder"
	"github.com/katalvlaran/lvmatch/core"
	"github.com/katalvlaran/lvmatch/matching"
)

func benchGraph(b *testing.B, ctor builder.Constructor) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithIntWeight(1, 1000)},
		ctor,
	)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkMaxWeightMatching runs the blossom algorithm on sparse and dense
// random graphs with integer weights.
func BenchmarkMaxWeightMatching(b *testing.B) {
	for _, n := range []int{50, 200} {
		for _, p := range []float64{0.05, 0.5} {
			g := benchGraph(b, builder.RandomSparse(n, p))
			b.Run(fmt.Sprintf("n=%d/p=%g", n, p), func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := matching.MaxWeightMatching(g); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkMaxWeightMatching_MaxCardinality(b *testing.B) {
	g := benchGraph(b, builder.Complete(60))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matching.MaxWeightMatching(g, matching.WithMaxCardinality())
	}
}

func BenchmarkMaximalMatching(b *testing.B) {
	g := benchGraph(b, builder.Grid(30, 30))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matching.MaximalMatching(g)
	}
}
