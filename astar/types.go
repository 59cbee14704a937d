// Package astar defines heuristics, configuration options and sentinel
// errors for A* search over a gridgraph.Grid.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrGridNil indicates that a nil *gridgraph.Grid was passed to Search.
	ErrGridNil = errors.New("astar: grid is nil")

	// ErrOptionViolation indicates an invalid functional option (e.g. nil heuristic).
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Heuristic estimates the remaining cost from a cell to the goal.
// It must never overestimate the true remaining steps, or optimality is lost.
type Heuristic func(from, goal gridgraph.Cell) int

// Manhattan is |Δrow| + |Δcol|: admissible and consistent for
// 4-directional unit-cost movement.
func Manhattan(from, goal gridgraph.Cell) int {
	return from.Manhattan(goal)
}

// Zero always returns 0, which reduces A* to uniform-cost search.
func Zero(_, _ gridgraph.Cell) int {
	return 0
}

// Options configures the behavior of the A* search.
//
// Heuristic – remaining-cost estimate; defaults to Manhattan.
// OnExpand  – called when a cell is moved to the closed set, with its g and f.
type Options struct {
	Heuristic Heuristic
	OnExpand  func(c gridgraph.Cell, g, f int)

	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with the Manhattan heuristic and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Heuristic: Manhattan,
		OnExpand:  func(gridgraph.Cell, int, int) {},
	}
}

// WithHeuristic replaces the heuristic. A nil heuristic is recorded as
// ErrOptionViolation and reported by Search.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithOnExpand registers a callback invoked each time a cell is closed.
func WithOnExpand(fn func(c gridgraph.Cell, g, f int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
