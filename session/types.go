package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/planner"
	"github.com/katalvlaran/gridroute/route"
)

// Sentinel errors for session operations.
var (
	// ErrGridNil is returned by New and Regenerate for a nil grid.
	ErrGridNil = errors.New("session: grid is nil")

	// ErrUnknownStrategy is returned for an unrecognised Strategy value or name.
	ErrUnknownStrategy = errors.New("session: unknown strategy")

	// ErrOutOfBounds is returned when an obstacle edit targets a cell
	// outside the grid.
	ErrOutOfBounds = errors.New("session: cell out of bounds")
)

// Strategy selects the search algorithm.
type Strategy int

const (
	// BreadthFirst is uninformed FIFO search.
	BreadthFirst Strategy = iota
	// AStar is heuristic search with the Manhattan heuristic.
	AStar
)

// String returns the canonical name: "bfs" or "astar".
func (s Strategy) String() string {
	switch s {
	case BreadthFirst:
		return "bfs"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy accepts "bfs", "breadth-first", "astar", "a*" and "a-star",
// case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth-first", "breadthfirst":
		return BreadthFirst, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Outcome is a successful search registered in the session.
type Outcome struct {
	Index  int // registry index of Result.Path; 0 when nothing was registered
	Result route.Result
}

// AlternateOutcome is a waypoint-constrained route and its registry index.
type AlternateOutcome struct {
	Index int // 0 when the plan failed
	Plan  planner.Result
}

// Comparison holds BFS and A* results for the same query.
type Comparison struct {
	BFS   route.Result
	AStar route.Result
}

// SameLength reports whether both strategies agree on reachability and
// path length.
func (c Comparison) SameLength() bool {
	return c.BFS.Found == c.AStar.Found && c.BFS.Path.Len() == c.AStar.Path.Len()
}

// Entry is one registered path.
type Entry struct {
	Index int
	Path  route.Path
}

// Option configures a Session.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	seed        int64
	plannerOpts []planner.Option
}

func defaultOptions() options {
	return options{
		logger: slog.Default().With(slog.String("component", "gridroute_session")),
	}
}

// WithLogger replaces the session logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSeed fixes the seed of the waypoint sampler. 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithPlannerOptions appends options passed to every planner.Plan call.
// The session supplies its own search strategy and random source, so
// planner.WithSearch, planner.WithSeed and planner.WithRand are overridden.
func WithPlannerOptions(opts ...planner.Option) Option {
	return func(o *options) { o.plannerOpts = append(o.plannerOpts, opts...) }
}

// checkEndpoint rejects a cell that is outside g or blocked; role names
// the endpoint in the error.
func checkEndpoint(g *gridgraph.Grid, role string, c gridgraph.Cell) error {
	switch {
	case !g.InBounds(c):
		return fmt.Errorf("%w: %s %v is outside the %d×%d grid", gridgraph.ErrInvalidEndpoint, role, c, g.Dimension(), g.Dimension())
	case g.Blocked(c):
		return fmt.Errorf("%w: %s %v is an obstacle", gridgraph.ErrInvalidEndpoint, role, c)
	}
	return nil
}
