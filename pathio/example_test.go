package pathio_test

import (
	"os"

	"github.com/katalvlaran/gridroute/pathio"
	"github.com/katalvlaran/gridroute/route"
)

// ExampleWriteWaypoints keeps only the corners of an L-shaped route.
func ExampleWriteWaypoints() {
	p := route.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}
	_ = pathio.WriteWaypoints(os.Stdout, p)

	// Output:
	// 0,0
	// 2,0
	// 2,2
}
