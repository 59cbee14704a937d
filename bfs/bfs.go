// Package bfs provides breadth-first shortest-path search on an occupancy
// grid, returning the first (and therefore shortest) path found together
// with the set of discovered cells.
package bfs

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/route"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  gridgraph.Cell
	depth int
}

// walker encapsulates mutable BFS state for one invocation.
type walker struct {
	grid    *gridgraph.Grid
	opts    Options
	goal    gridgraph.Cell
	queue   *queue.Queue[queueItem]
	visited mapset.Set[gridgraph.Cell]
	parents *route.Parents
}

// Search runs breadth-first search on g from start to goal.
//
// Returns:
//   - Found=true with the minimum-edge path when goal is reachable.
//   - Found=false, empty Path and a nil error when the frontier empties.
//
// Visited holds every cell marked at enqueue time.
// Errors: ErrGridNil, ErrOptionViolation, gridgraph.ErrInvalidEndpoint
// (start or goal out of bounds or blocked) and a wrapped
// route.ErrReconstructionInconsistency for internal defects.
//
// Complexity: O(N²) time and memory.
func Search(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (route.Result, error) {
	if g == nil {
		return route.Result{}, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return route.Result{}, o.err
	}
	if !g.IsFree(start) {
		return route.Result{}, fmt.Errorf("%w: start %v", gridgraph.ErrInvalidEndpoint, start)
	}
	if !g.IsFree(goal) {
		return route.Result{}, fmt.Errorf("%w: goal %v", gridgraph.ErrInvalidEndpoint, goal)
	}

	w := &walker{
		grid:    g,
		opts:    o,
		goal:    goal,
		queue:   queue.New[queueItem](),
		visited: mapset.New[gridgraph.Cell](),
		parents: route.NewParents(g),
	}
	w.enqueue(start, 0)

	return w.loop(start)
}

// SearchFunc adapts Search with fixed options to route.SearchFunc.
func SearchFunc(opts ...Option) route.SearchFunc {
	return func(g *gridgraph.Grid, start, goal gridgraph.Cell) (route.Result, error) {
		return Search(g, start, goal, opts...)
	}
}

// enqueue marks c visited and adds it to the frontier.
func (w *walker) enqueue(c gridgraph.Cell, depth int) {
	w.visited.Put(c)
	w.opts.OnEnqueue(c, depth)
	w.queue.Enqueue(queueItem{cell: c, depth: depth})
}

// loop processes the frontier until the goal is dequeued or it empties.
func (w *walker) loop(start gridgraph.Cell) (route.Result, error) {
	for !w.queue.Empty() {
		item := w.queue.Dequeue()
		w.opts.OnDequeue(item.cell, item.depth)

		if item.cell == w.goal {
			path, err := route.Reconstruct(w.parents, start, w.goal)
			if err != nil {
				return route.Result{Visited: w.visited}, fmt.Errorf("bfs: %w", err)
			}
			return route.Result{Found: true, Path: path, Visited: w.visited}, nil
		}
		w.expand(item)
	}

	return route.Result{Found: false, Visited: w.visited}, nil
}

// expand enqueues every unseen free neighbor of item in gridgraph.Conn4 order.
func (w *walker) expand(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, d := range gridgraph.Conn4 {
		nb := item.cell.Add(d)
		if !w.grid.IsFree(nb) || w.visited.Has(nb) {
			continue
		}
		w.parents.Set(nb, item.cell)
		w.enqueue(nb, next)
	}
}
