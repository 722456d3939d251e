package layout_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fronx/umapper/fuzzy"
	"github.com/fronx/umapper/layout"
)

// benchFixture builds n nodes on a ring plus the ring's edges.
func benchFixture(n int) ([]layout.Node, []fuzzy.WeightedEdge) {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%05d", i)
	}
	edges := make([]fuzzy.WeightedEdge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, fuzzy.WeightedEdge{
			Source:   ids[i],
			Target:   ids[(i+1)%n],
			Strength: 1,
		})
	}

	return layout.RandomPositions(ids, 1), edges
}

// benchmarkRun measures a full seeded layout run of e epochs on n nodes.
func benchmarkRun(b *testing.B, n, e int) {
	nodes, edges := benchFixture(n)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := layout.Run(ctx, nodes, edges, layout.WithEpochs(e), layout.WithSeed(1)); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkRun_Small benchmarks 100 nodes for 50 epochs.
func BenchmarkRun_Small(b *testing.B) { benchmarkRun(b, 100, 50) }

// BenchmarkRun_Medium benchmarks 1000 nodes for 50 epochs.
func BenchmarkRun_Medium(b *testing.B) { benchmarkRun(b, 1000, 50) }

// BenchmarkFitAB benchmarks one grid-search curve fit.
func BenchmarkFitAB(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if ab := layout.FitAB(1.0, 0.1); ab.A <= 0 {
			b.Fatal("unexpected fit")
		}
	}
}
