// Package session owns the mutable state around the search engine: the
// current grid, the path registry and the waypoint sampler.
//
// The engine packages hold no process-wide state. A Session is the explicit
// context a caller creates per map and passes operations through. It
// validates endpoints before any search, registers successful routes and
// clears the registry whenever the grid is replaced or edited.
//
// Searches take a read lock and may run in parallel; grid edits and
// alternate planning take the write lock, so no search ever observes a
// grid change mid-flight.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/bfs"
	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/internal/rng"
	"github.com/katalvlaran/gridroute/planner"
	"github.com/katalvlaran/gridroute/registry"
	"github.com/katalvlaran/gridroute/route"
)

// Session binds one grid to its registry of computed paths.
type Session struct {
	mu          sync.RWMutex
	grid        *gridgraph.Grid
	paths       *registry.Registry
	rand        *rand.Rand // guarded by mu (write lock)
	logger      *slog.Logger
	plannerOpts []planner.Option
}

// New creates a Session over g.
func New(g *gridgraph.Grid, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Session{
		grid:        g,
		paths:       registry.New(),
		rand:        rng.FromSeed(cfg.seed),
		logger:      cfg.logger,
		plannerOpts: cfg.plannerOpts,
	}
	s.logger.Info("session created",
		slog.Int("dimension", g.Dimension()),
		slog.Int("free_cells", g.FreeCount()),
	)
	return s, nil
}

// searchFunc maps a Strategy to its engine.
func searchFunc(st Strategy) (route.SearchFunc, error) {
	switch st {
	case BreadthFirst:
		return bfs.SearchFunc(), nil
	case AStar:
		return astar.SearchFunc(), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, st)
	}
}

// Search validates start and goal, runs the chosen strategy and registers
// the path on success.
//
// Errors:
//   - ErrUnknownStrategy.
//   - gridgraph.ErrInvalidEndpoint naming the offending endpoint.
//   - route.ErrNoPathFound when the goal is unreachable. The returned
//     Outcome still carries the visited set and Index is 0.
func (s *Session) Search(st Strategy, start, goal gridgraph.Cell) (Outcome, error) {
	search, err := searchFunc(st)
	if err != nil {
		return Outcome{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err = s.validate(start, goal); err != nil {
		return Outcome{}, err
	}
	res, err := search(s.grid, start, goal)
	if err != nil {
		return Outcome{}, fmt.Errorf("session: %v search: %w", st, err)
	}
	s.logger.Debug("search finished",
		slog.String("strategy", st.String()),
		slog.String("start", start.String()),
		slog.String("goal", goal.String()),
		slog.Bool("found", res.Found),
		slog.Int("explored", res.Explored()),
	)
	if !res.Found {
		return Outcome{Result: res}, fmt.Errorf("%w: %v → %v", route.ErrNoPathFound, start, goal)
	}

	idx := s.paths.Register(res.Path)
	s.logger.Info("path registered",
		slog.Int("index", idx),
		slog.String("strategy", st.String()),
		slog.Int("length", res.Path.Len()),
	)
	return Outcome{Index: idx, Result: res}, nil
}

// Alternate plans a route from start to goal forced through a sampled
// waypoint, using st for both legs, and registers it on success. Failed
// plans register nothing.
func (s *Session) Alternate(st Strategy, start, goal gridgraph.Cell) (AlternateOutcome, error) {
	search, err := searchFunc(st)
	if err != nil {
		return AlternateOutcome{}, err
	}

	// write lock: the sampler's *rand.Rand is not goroutine-safe
	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.validate(start, goal); err != nil {
		return AlternateOutcome{}, err
	}
	opts := append(append([]planner.Option{}, s.plannerOpts...),
		planner.WithSearch(search),
		planner.WithRand(s.rand),
	)
	plan, err := planner.Plan(s.grid, start, goal, opts...)
	if err != nil {
		s.logger.Warn("alternate route failed",
			slog.String("strategy", st.String()),
			slog.String("start", start.String()),
			slog.String("goal", goal.String()),
			slog.Int("attempts", plan.Attempts),
			slog.String("error", err.Error()),
		)
		return AlternateOutcome{Plan: plan}, err
	}

	idx := s.paths.Register(plan.Path)
	s.logger.Info("alternate registered",
		slog.Int("index", idx),
		slog.String("strategy", st.String()),
		slog.String("waypoint", plan.Waypoint.String()),
		slog.Int("length", plan.Path.Len()),
		slog.Int("attempts", plan.Attempts),
	)
	return AlternateOutcome{Index: idx, Plan: plan}, nil
}

// Compare runs BFS and A* on the same query in parallel. Each search owns
// its tables; results are merged only after both complete. Nothing is
// registered, and an unreachable goal is reported through the results,
// not as an error.
func (s *Session) Compare(start, goal gridgraph.Cell) (Comparison, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.validate(start, goal); err != nil {
		return Comparison{}, err
	}

	var cmp Comparison
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		cmp.BFS, err = bfs.Search(s.grid, start, goal)
		return err
	})
	eg.Go(func() error {
		var err error
		cmp.AStar, err = astar.Search(s.grid, start, goal)
		return err
	})
	if err := eg.Wait(); err != nil {
		return Comparison{}, fmt.Errorf("session: compare: %w", err)
	}

	s.logger.Debug("comparison finished",
		slog.Int("bfs_explored", cmp.BFS.Explored()),
		slog.Int("astar_explored", cmp.AStar.Explored()),
		slog.Int("length", cmp.BFS.Path.Len()),
		slog.Bool("agree", cmp.SameLength()),
	)
	return cmp, nil
}

// Path returns a copy of the registered path at index i.
func (s *Session) Path(i int) (route.Path, bool) {
	return s.paths.Get(i)
}

// Paths lists every registered path in index order.
func (s *Session) Paths() []Entry {
	out := make([]Entry, 0, s.paths.Len())
	s.paths.Each(func(i int, p route.Path) bool {
		out = append(out, Entry{Index: i, Path: p})
		return true
	})
	return out
}

// Grid returns the current grid. Grids are immutable, so the caller may
// keep it after the session moves on.
func (s *Session) Grid() *gridgraph.Grid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid
}

// Regenerate replaces the grid wholesale and clears the registry.
func (s *Session) Regenerate(g *gridgraph.Grid) error {
	if g == nil {
		return ErrGridNil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replace(g, "regenerated")
	return nil
}

// SetObstacle blocks or frees c and clears the registry.
func (s *Session) SetObstacle(c gridgraph.Cell, blocked bool) error {
	return s.SetObstacles([]gridgraph.Cell{c}, blocked)
}

// SetObstacles blocks or frees every cell in cells and clears the
// registry. If any cell is out of bounds nothing changes.
func (s *Session) SetObstacles(cells []gridgraph.Cell, blocked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, c := range cells {
		if !s.grid.InBounds(c) {
			errs = append(errs, fmt.Errorf("%w: %v", ErrOutOfBounds, c))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	s.replace(s.grid.WithObstacles(cells, blocked), "obstacles edited")
	return nil
}

// replace swaps the grid and invalidates every registered path.
// The caller holds the write lock.
func (s *Session) replace(g *gridgraph.Grid, reason string) {
	dropped := s.paths.Len()
	s.grid = g
	s.paths.Clear()
	s.logger.Info("grid replaced",
		slog.String("reason", reason),
		slog.Int("dimension", g.Dimension()),
		slog.Int("free_cells", g.FreeCount()),
		slog.Int("paths_dropped", dropped),
	)
}

// validate checks both endpoints against the current grid.
func (s *Session) validate(start, goal gridgraph.Cell) error {
	if err := checkEndpoint(s.grid, "start", start); err != nil {
		return err
	}
	return checkEndpoint(s.grid, "goal", goal)
}
