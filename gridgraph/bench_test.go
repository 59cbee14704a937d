package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// BenchmarkConnectedComponents measures ConnectedComponents on a seeded
// 500×500 map with 30% obstacles.
// Complexity: O(N²·4)
func BenchmarkConnectedComponents(b *testing.B) {
	g, err := gridgraph.Random(500, gridgraph.RandomOptions{Density: 0.3, Seed: 42})
	if err != nil {
		b.Fatalf("setup Random failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}

// BenchmarkMinClearance measures MinClearance corner to corner on the same map.
func BenchmarkMinClearance(b *testing.B) {
	const n = 500
	g, err := gridgraph.Random(n, gridgraph.RandomOptions{Density: 0.3, Seed: 42})
	if err != nil {
		b.Fatalf("setup Random failed: %v", err)
	}
	src := gridgraph.Cell{Row: 0, Col: 0}
	dst := gridgraph.Cell{Row: n - 1, Col: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = g.MinClearance(src, dst)
	}
}
