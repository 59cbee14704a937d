// Package astar_test provides runnable examples for the astar package.
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/gridgraph"
)

// ExampleSearch finds the same 13-cell route as breadth-first search but
// closes fewer cells on the way.
func ExampleSearch() {
	g, _ := gridgraph.Parse(`
.....
.....
####.
.....
.....`)
	res, err := astar.Search(g, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 4, Col: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("found:", res.Found)
	fmt.Println("path:", res.Path)
	fmt.Println("closed:", res.Explored())

	// Output:
	// found: true
	// path: [(0,0) (1,0) (1,1) (1,2) (1,3) (1,4) (2,4) (3,4) (4,4) (4,3) (4,2) (4,1) (4,0)]
	// closed: 16
}

// ExampleWithOnExpand traces expansions on an open grid. With the h
// tie-break only cells on the final path are closed.
func ExampleWithOnExpand() {
	g, _ := gridgraph.New(3)
	trace := astar.WithOnExpand(func(c gridgraph.Cell, gScore, f int) {
		fmt.Printf("%v g=%d f=%d\n", c, gScore, f)
	})
	_, _ = astar.Search(g, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 2, Col: 2}, trace)

	// Output:
	// (0,0) g=0 f=4
	// (1,0) g=1 f=4
	// (2,0) g=2 f=4
	// (2,1) g=3 f=4
	// (2,2) g=4 f=4
}
