package route

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Sentinel errors shared by searches, planners and consumers.
var (
	// ErrNoPathFound is returned when a search exhausts its frontier without
	// reaching the goal. It is a normal, non-fatal outcome.
	ErrNoPathFound = errors.New("route: no path found")

	// ErrReconstructionInconsistency signals a broken parent chain. It means
	// the search marked the goal reached without a route back to the start.
	ErrReconstructionInconsistency = errors.New("route: parent chain does not lead back to start")

	// ErrInvalidPath is returned by Validate for paths that break adjacency,
	// leave the grid or cross obstacles.
	ErrInvalidPath = errors.New("route: invalid path")

	// ErrJoinMismatch is returned by Concat when the first leg does not end
	// where the second begins.
	ErrJoinMismatch = errors.New("route: legs do not share a join cell")
)

// Path is an ordered sequence of 4-adjacent cells from start to goal.
type Path []gridgraph.Cell

// Result is the outcome of one search.
//   - Found: whether the goal was reached.
//   - Path: start…goal inclusive; empty when !Found.
//   - Visited: diagnostic exploration footprint; contains every Path cell when Found.
type Result struct {
	Found   bool
	Path    Path
	Visited mapset.Set[gridgraph.Cell]
}

// Explored returns the size of the visited set.
func (r Result) Explored() int {
	return r.Visited.Size()
}

// SearchFunc is the contract shared by bfs.Search and astar.Search when
// they are used as pluggable strategies (e.g. by the planner).
type SearchFunc func(g *gridgraph.Grid, start, goal gridgraph.Cell) (Result, error)
