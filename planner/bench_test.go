package planner_test

import (
	"testing"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/planner"
)

func benchPlan(b *testing.B, opts ...planner.Option) {
	const n = 150
	start, goal := gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: n - 1, Col: n - 1}
	g, err := gridgraph.Random(n, gridgraph.RandomOptions{Density: 0.2, Seed: 9,
		KeepFree: []gridgraph.Cell{start, goal}})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = planner.Plan(g, start, goal, append(opts, planner.WithSeed(int64(i+1)))...)
	}
}

func BenchmarkPlan_BFS(b *testing.B) { benchPlan(b) }

func BenchmarkPlan_BFSConcurrent(b *testing.B) { benchPlan(b, planner.WithConcurrentLegs()) }

func BenchmarkPlan_AStar(b *testing.B) { benchPlan(b, planner.WithSearch(astar.SearchFunc())) }
