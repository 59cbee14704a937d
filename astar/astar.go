// Package astar implements A* shortest-path search on an occupancy grid.
//
// The open set is a binary min-heap keyed by (f, h, insertion sequence):
// lowest f first, then the entry closer to the goal, then the earliest
// inserted. Improved neighbors are pushed again (“lazy re-admission”) and
// stale heap entries are skipped when popped.
package astar

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/route"
)

// unknown is the g/f value of a cell that has not been discovered.
const unknown = math.MaxInt

// Search runs A* on g from start to goal.
//
// Returns:
//
//   - Found=true with a shortest path when goal is reachable.
//   - Found=false, empty Path and a nil error when the open set empties.
//   - Visited is the closed set at termination.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGridNil).
//  2. Options must be valid (ErrOptionViolation).
//  3. start and goal must be free (gridgraph.ErrInvalidEndpoint).
//
// Complexity:
//
//   - Time:  O(N² log N)
//   - Space: O(N²)
func Search(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (route.Result, error) {
	if g == nil {
		return route.Result{}, ErrGridNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return route.Result{}, cfg.err
	}
	if !g.IsFree(start) {
		return route.Result{}, fmt.Errorf("%w: start %v", gridgraph.ErrInvalidEndpoint, start)
	}
	if !g.IsFree(goal) {
		return route.Result{}, fmt.Errorf("%w: goal %v", gridgraph.ErrInvalidEndpoint, goal)
	}

	r := newRunner(g, cfg, goal)
	r.init(start)

	return r.process(start)
}

// SearchFunc adapts Search with fixed options to route.SearchFunc.
func SearchFunc(opts ...Option) route.SearchFunc {
	return func(g *gridgraph.Grid, start, goal gridgraph.Cell) (route.Result, error) {
		return Search(g, start, goal, opts...)
	}
}

// openItem is one open-set entry. Several entries may exist for the same
// cell; only the one whose gScore matches the cost table is live.
type openItem struct {
	cell gridgraph.Cell
	g    int
	h    int
	f    int
	seq  uint64
}

// lessOpen orders the open set by f, then h, then insertion sequence.
func lessOpen(a, b openItem) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	grid    *gridgraph.Grid            // read-only input
	cfg     Options                    // heuristic and hooks
	goal    gridgraph.Cell             // target cell
	gScore  []int                      // best known cost from start, per cell index
	fScore  []int                      // gScore + heuristic, per cell index
	closed  mapset.Set[gridgraph.Cell] // finalized cells
	parents *route.Parents             // first-best predecessor per cell
	open    *heap.Heap[openItem]       // frontier
	seq     uint64                     // insertion counter for tie-breaking
}

func newRunner(g *gridgraph.Grid, cfg Options, goal gridgraph.Cell) *runner {
	n := g.Size()
	r := &runner{
		grid:    g,
		cfg:     cfg,
		goal:    goal,
		gScore:  make([]int, n),
		fScore:  make([]int, n),
		closed:  mapset.New[gridgraph.Cell](),
		parents: route.NewParents(g),
		open:    heap.New[openItem](lessOpen),
	}
	for i := range r.gScore {
		r.gScore[i] = unknown
		r.fScore[i] = unknown
	}
	return r
}

// init seeds the open set with start at g=0.
func (r *runner) init(start gridgraph.Cell) {
	r.admit(start, 0)
}

// admit records cost g for c and pushes a fresh open entry.
func (r *runner) admit(c gridgraph.Cell, g int) {
	h := r.cfg.Heuristic(c, r.goal)
	i := r.grid.Index(c)
	r.gScore[i] = g
	r.fScore[i] = g + h
	r.seq++
	r.open.Push(openItem{cell: c, g: g, h: h, f: g + h, seq: r.seq})
}

// process is the main loop: pop the best open cell, close it, stop at the
// goal, otherwise relax its neighbors.
func (r *runner) process(start gridgraph.Cell) (route.Result, error) {
	for r.open.Size() > 0 {
		cur, _ := r.open.Pop()

		// skip entries superseded by a cheaper re-admission or already closed
		if r.closed.Has(cur.cell) || cur.g > r.gScore[r.grid.Index(cur.cell)] {
			continue
		}
		r.closed.Put(cur.cell)
		r.cfg.OnExpand(cur.cell, cur.g, cur.f)

		if cur.cell == r.goal {
			path, err := route.Reconstruct(r.parents, start, r.goal)
			if err != nil {
				return route.Result{Visited: r.closed}, fmt.Errorf("astar: %w", err)
			}
			return route.Result{Found: true, Path: path, Visited: r.closed}, nil
		}
		r.relax(cur)
	}

	return route.Result{Found: false, Visited: r.closed}, nil
}

// relax tries to improve each free, unclosed neighbor of cur through cur.
func (r *runner) relax(cur openItem) {
	for _, d := range gridgraph.Conn4 {
		nb := cur.cell.Add(d)
		if !r.grid.IsFree(nb) || r.closed.Has(nb) {
			continue
		}
		candidate := cur.g + 1
		if candidate >= r.gScore[r.grid.Index(nb)] {
			continue
		}
		r.parents.Set(nb, cur.cell)
		r.admit(nb, candidate)
	}
}
