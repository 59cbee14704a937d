package gridgraph

import (
	"math/rand"

	"github.com/katalvlaran/gridroute/internal/rng"
)

// RandomOptions configures random map generation.
type RandomOptions struct {
	// Density is the probability in [0,1] that a cell becomes an obstacle.
	Density float64
	// Seed drives the generator; 0 selects the package default seed.
	Seed int64
	// Rand, if non-nil, is used instead of Seed.
	Rand *rand.Rand
	// KeepFree lists cells that must stay free (typically start and goal).
	KeepFree []Cell
}

// Random generates an n×n grid where each cell is independently blocked
// with probability opts.Density. Cells listed in opts.KeepFree are always free.
// Same n and options (with the same Seed) produce the same grid.
//
// Returns ErrBadDimension if n < 1, ErrBadDensity if Density ∉ [0,1].
// Complexity: O(n²).
func Random(n int, opts RandomOptions) (*Grid, error) {
	if n < 1 {
		return nil, ErrBadDimension
	}
	if opts.Density < 0 || opts.Density > 1 {
		return nil, ErrBadDensity
	}
	r := opts.Rand
	if r == nil {
		r = rng.FromSeed(opts.Seed)
	}

	g := &Grid{n: n, blocked: make([]bool, n*n)}
	for i := range g.blocked {
		g.blocked[i] = r.Float64() < opts.Density
	}
	for _, c := range opts.KeepFree {
		if g.InBounds(c) {
			g.blocked[g.Index(c)] = false
		}
	}

	return g, nil
}
