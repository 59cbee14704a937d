package gridgraph

import "strings"

// New returns an n×n Grid with every cell free.
// Returns ErrBadDimension if n < 1.
// Complexity: O(n²).
func New(n int) (*Grid, error) {
	if n < 1 {
		return nil, ErrBadDimension
	}
	return &Grid{n: n, blocked: make([]bool, n*n)}, nil
}

// FromBlocked builds a Grid from a square table where true marks an obstacle.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if the table has no rows or no columns,
// ErrNonSquare if any row length differs from the number of rows.
// Complexity: O(n²) time and memory.
func FromBlocked(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(rows)
	for _, row := range rows {
		if len(row) != n {
			return nil, ErrNonSquare
		}
	}
	g := &Grid{n: n, blocked: make([]bool, n*n)}
	for r := 0; r < n; r++ {
		copy(g.blocked[r*n:(r+1)*n], rows[r])
	}

	return g, nil
}

// FromValues builds a Grid from an integer occupancy table; cells with
// value ≥ opts.ObstacleThreshold are blocked.
// Same validation as FromBlocked.
// Complexity: O(n²) time and memory.
func FromValues(values [][]int, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(values)
	for _, row := range values {
		if len(row) != n {
			return nil, ErrNonSquare
		}
	}
	g := &Grid{n: n, blocked: make([]bool, n*n)}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			g.blocked[r*n+c] = values[r][c] >= opts.ObstacleThreshold
		}
	}

	return g, nil
}

// Dimension returns N, the side length of the grid.
func (g *Grid) Dimension() int {
	return g.n
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.n && c.Col >= 0 && c.Col < g.n
}

// IsFree reports whether c is in bounds and not an obstacle.
// Complexity: O(1).
func (g *Grid) IsFree(c Cell) bool {
	return g.InBounds(c) && !g.blocked[c.Row*g.n+c.Col]
}

// Blocked reports whether c is in bounds and an obstacle.
func (g *Grid) Blocked(c Cell) bool {
	return g.InBounds(c) && g.blocked[c.Row*g.n+c.Col]
}

// Index maps c to its row-major index: Row*N + Col.
// The caller must ensure c is in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.n + c.Col
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.n, Col: idx % g.n}
}

// Size returns N², the number of cells.
func (g *Grid) Size() int {
	return len(g.blocked)
}

// Neighbors returns the free neighbors of c in Conn4 order.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(Conn4))
	for _, d := range Conn4 {
		if nb := c.Add(d); g.IsFree(nb) {
			out = append(out, nb)
		}
	}
	return out
}

// FreeCells returns every free cell in row-major order.
// Complexity: O(n²).
func (g *Grid) FreeCells() []Cell {
	out := make([]Cell, 0, len(g.blocked))
	for i, b := range g.blocked {
		if !b {
			out = append(out, g.CellAt(i))
		}
	}
	return out
}

// FreeCount returns the number of free cells.
func (g *Grid) FreeCount() int {
	count := 0
	for _, b := range g.blocked {
		if !b {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of g.
// Complexity: O(n²).
func (g *Grid) Clone() *Grid {
	cp := &Grid{n: g.n, blocked: make([]bool, len(g.blocked))}
	copy(cp.blocked, g.blocked)
	return cp
}

// WithObstacle returns a copy of g with c set to blocked (or freed).
// Out-of-bounds cells are ignored and the copy equals g.
// Complexity: O(n²).
func (g *Grid) WithObstacle(c Cell, blocked bool) *Grid {
	return g.WithObstacles([]Cell{c}, blocked)
}

// WithObstacles is WithObstacle applied to every cell in cells.
func (g *Grid) WithObstacles(cells []Cell, blocked bool) *Grid {
	cp := g.Clone()
	for _, c := range cells {
		if cp.InBounds(c) {
			cp.blocked[cp.Index(c)] = blocked
		}
	}
	return cp
}

// Rows returns the occupancy as a fresh [][]bool (true = blocked).
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.n)
	for r := range rows {
		rows[r] = make([]bool, g.n)
		copy(rows[r], g.blocked[r*g.n:(r+1)*g.n])
	}
	return rows
}

// String renders the grid with '#' for obstacles and '.' for free cells,
// one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.n * (g.n + 1))
	for r := 0; r < g.n; r++ {
		for c := 0; c < g.n; c++ {
			if g.blocked[r*g.n+c] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse builds a Grid from the String format ('#' blocked, anything else
// free). Blank lines are skipped.
func Parse(s string) (*Grid, error) {
	var rows [][]bool
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]bool, len(line))
		for i := 0; i < len(line); i++ {
			row[i] = line[i] == '#'
		}
		rows = append(rows, row)
	}
	return FromBlocked(rows)
}
