package bfs_test

import (
	"testing"

	"github.com/katalvlaran/gridroute/bfs"
	"github.com/katalvlaran/gridroute/gridgraph"
)

// benchGrid builds a seeded n×n map with 25% obstacles and free corners.
func benchGrid(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	g, err := gridgraph.Random(n, gridgraph.RandomOptions{
		Density:  0.25,
		Seed:     42,
		KeepFree: []gridgraph.Cell{{Row: 0, Col: 0}, {Row: n - 1, Col: n - 1}},
	})
	if err != nil {
		b.Fatalf("setup Random failed: %v", err)
	}
	return g
}

// BenchmarkSearch_200 measures corner-to-corner BFS on a 200×200 map.
func BenchmarkSearch_200(b *testing.B) {
	const n = 200
	g := benchGrid(b, n)
	start, goal := gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: n - 1, Col: n - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.Search(g, start, goal); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSearch_Open500 measures BFS on an obstacle-free 500×500 grid.
func BenchmarkSearch_Open500(b *testing.B) {
	const n = 500
	g, _ := gridgraph.New(n)
	start, goal := gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: n - 1, Col: n - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(g, start, goal)
	}
}
