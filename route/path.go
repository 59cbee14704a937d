package route

import (
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Len returns the number of cells in p.
func (p Path) Len() int { return len(p) }

// Steps returns the number of moves, len(p)-1 (0 for an empty path).
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Start returns the first cell. It panics on an empty path.
func (p Path) Start() gridgraph.Cell { return p[0] }

// Goal returns the last cell. It panics on an empty path.
func (p Path) Goal() gridgraph.Cell { return p[len(p)-1] }

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	cp := make(Path, len(p))
	copy(cp, p)
	return cp
}

// Contains reports whether c occurs in p.
func (p Path) Contains(c gridgraph.Cell) bool {
	return p.Count(c) > 0
}

// Count returns how many times c occurs in p.
func (p Path) Count(c gridgraph.Cell) int {
	n := 0
	for _, x := range p {
		if x == c {
			n++
		}
	}
	return n
}

// Validate checks that p is non-empty, every cell is free in g and
// consecutive cells are 4-adjacent. Violations wrap ErrInvalidPath.
// Complexity: O(len(p)).
func (p Path) Validate(g *gridgraph.Grid) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	for i, c := range p {
		if !g.IsFree(c) {
			return fmt.Errorf("%w: cell %d %v is blocked or out of bounds", ErrInvalidPath, i, c)
		}
		if i > 0 && !p[i-1].Adjacent(c) {
			return fmt.Errorf("%w: %v → %v is not a single axis-aligned step", ErrInvalidPath, p[i-1], c)
		}
	}
	return nil
}

// Concat joins first and second, which must share the join cell
// (first's goal equals second's start). The shared cell appears once, so
// len(result) == len(first) + len(second) - 1.
func Concat(first, second Path) (Path, error) {
	if len(first) == 0 || len(second) == 0 {
		return nil, fmt.Errorf("%w: empty leg", ErrJoinMismatch)
	}
	if first.Goal() != second.Start() {
		return nil, fmt.Errorf("%w: %v ≠ %v", ErrJoinMismatch, first.Goal(), second.Start())
	}
	out := make(Path, 0, len(first)+len(second)-1)
	out = append(out, first...)
	out = append(out, second[1:]...)
	return out, nil
}

// TurningPoints reduces p to its start, every cell where the direction of
// travel changes, and its goal. Paths of length ≤ 2 are returned as copies.
//
// Complexity: O(len(p)).
func (p Path) TurningPoints() Path {
	if len(p) <= 2 {
		return p.Clone()
	}
	out := Path{p[0]}
	for i := 1; i < len(p)-1; i++ {
		inR, inC := p[i].Row-p[i-1].Row, p[i].Col-p[i-1].Col
		outR, outC := p[i+1].Row-p[i].Row, p[i+1].Col-p[i].Col
		if inR != outR || inC != outC {
			out = append(out, p[i])
		}
	}
	return append(out, p[len(p)-1])
}
