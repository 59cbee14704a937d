// Package bfs_test provides runnable examples for the bfs package.
package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridroute/bfs"
	"github.com/katalvlaran/gridroute/gridgraph"
)

// ExampleSearch demonstrates routing around a wall with a single gap.
//
// Grid (# = obstacle):
//
//	.....
//	.....
//	####.
//	.....
//	.....
//
// The only way from the top-left to the bottom-left corner crosses (2,4).
func ExampleSearch() {
	g, _ := gridgraph.Parse(`
.....
.....
####.
.....
.....`)
	res, err := bfs.Search(g, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 4, Col: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("found:", res.Found)
	fmt.Println("steps:", res.Path.Steps())
	fmt.Println("path:", res.Path)
	fmt.Println("explored:", res.Explored())

	// Output:
	// found: true
	// steps: 12
	// path: [(0,0) (1,0) (1,1) (1,2) (1,3) (1,4) (2,4) (3,4) (4,4) (4,3) (4,2) (4,1) (4,0)]
	// explored: 21
}

// ExampleSearch_unreachable shows the normal “no path” outcome: Found is
// false, the error is nil and Visited reports the explored region.
func ExampleSearch_unreachable() {
	g, _ := gridgraph.Parse(`
.#.
##.
...`)
	res, _ := bfs.Search(g, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 2, Col: 2})
	fmt.Println("found:", res.Found, "path len:", res.Path.Len(), "explored:", res.Explored())

	// Output:
	// found: false path len: 0 explored: 1
}
