package gridgraph

import "fmt"

// Cell is a 0-indexed grid coordinate.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by the offset d.
func (c Cell) Add(d Offset) Cell {
	return Cell{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// Manhattan returns |Δrow| + |Δcol| between c and o.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// Adjacent reports whether c and o differ by exactly one unit in exactly
// one coordinate.
func (c Cell) Adjacent(o Cell) bool {
	return c.Manhattan(o) == 1
}

// Offset is a single axis-aligned step.
type Offset struct {
	DRow, DCol int
}

// Conn4 lists the neighbor offsets in expansion order: up, down, left, right.
// Searches depend on this order for reproducible tie-breaking.
var Conn4 = [4]Offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// GridOptions contains tunable parameters for building a Grid from values.
type GridOptions struct {
	// ObstacleThreshold is the minimum cell value considered blocked.
	ObstacleThreshold int
}

// DefaultGridOptions returns GridOptions with ObstacleThreshold=1,
// so 0 is free and any positive value is an obstacle.
func DefaultGridOptions() GridOptions {
	return GridOptions{ObstacleThreshold: 1}
}

// Grid is an N×N occupancy table. It is immutable once built.
// blocked is row-major: blocked[row*n+col].
type Grid struct {
	n       int
	blocked []bool
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
