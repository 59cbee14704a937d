package route

import "github.com/katalvlaran/gridroute/gridgraph"

// noParent marks a cell that was never reached.
const noParent = -1

// Parents is a dense parent-pointer table for one search invocation,
// indexed by the grid's row-major cell index. It is owned by a single
// search and dropped once the path is reconstructed.
type Parents struct {
	grid *gridgraph.Grid
	prev []int
}

// NewParents allocates an empty table sized for g.
// Complexity: O(N²).
func NewParents(g *gridgraph.Grid) *Parents {
	prev := make([]int, g.Size())
	for i := range prev {
		prev[i] = noParent
	}
	return &Parents{grid: g, prev: prev}
}

// Set records that child was first reached from parent.
func (p *Parents) Set(child, parent gridgraph.Cell) {
	p.prev[p.grid.Index(child)] = p.grid.Index(parent)
}

// Get returns the recorded parent of c, if any.
func (p *Parents) Get(c gridgraph.Cell) (gridgraph.Cell, bool) {
	if !p.grid.InBounds(c) {
		return gridgraph.Cell{}, false
	}
	i := p.prev[p.grid.Index(c)]
	if i == noParent {
		return gridgraph.Cell{}, false
	}
	return p.grid.CellAt(i), true
}

// Len returns the table capacity (number of grid cells).
func (p *Parents) Len() int {
	return len(p.prev)
}
