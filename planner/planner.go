// Package planner derives alternate routes that are forced through a
// randomly sampled waypoint.
//
// A waypoint is drawn uniformly from the N×N coordinate space until one is
// free and distinct from both start and goal, up to MaxAttempts draws. The
// base search then runs start→waypoint and waypoint→goal; the two legs are
// joined with the waypoint kept once. Any failure yields Found=false and a
// sentinel error, with no partial path.
//
// Legs may run concurrently (WithConcurrentLegs). Each search owns its own
// tables and the grid is only read, so the results are merged after both
// goroutines return.
package planner

import (
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/internal/rng"
	"github.com/katalvlaran/gridroute/route"
)

// Plan samples a waypoint and composes two searches into one detour.
//
// Errors:
//   - ErrGridNil, ErrOptionViolation.
//   - gridgraph.ErrInvalidEndpoint if start or goal is not free.
//   - ErrWaypointSamplingExhausted, ErrFirstLegUnreachable,
//     ErrSecondLegUnreachable for the documented failure outcomes.
//   - any error returned by the leg search, wrapped.
//
// The returned Result carries Attempts and, when sampling succeeded, the
// Waypoint and both leg results even on failure.
func Plan(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGridNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if !g.IsFree(start) {
		return Result{}, fmt.Errorf("%w: start %v", gridgraph.ErrInvalidEndpoint, start)
	}
	if !g.IsFree(goal) {
		return Result{}, fmt.Errorf("%w: goal %v", gridgraph.ErrInvalidEndpoint, goal)
	}

	r := cfg.Rand
	if r == nil {
		r = rng.FromSeed(cfg.Seed)
	}

	wp, attempts, ok := SampleWaypoint(g, start, goal, r, cfg.MaxAttempts)
	out := Result{Attempts: attempts}
	if !ok {
		return out, fmt.Errorf("%w after %d attempts", ErrWaypointSamplingExhausted, attempts)
	}
	out.Waypoint = wp

	var err error
	if cfg.ConcurrentLegs {
		out.First, out.Second, err = legsConcurrent(cfg.Search, g, start, wp, goal)
	} else {
		out.First, out.Second, err = legsSequential(cfg.Search, g, start, wp, goal)
	}
	if err != nil {
		return out, err
	}
	if !out.First.Found {
		return out, fmt.Errorf("%w (waypoint %v)", ErrFirstLegUnreachable, wp)
	}
	if !out.Second.Found {
		return out, fmt.Errorf("%w (waypoint %v)", ErrSecondLegUnreachable, wp)
	}

	path, err := route.Concat(out.First.Path, out.Second.Path)
	if err != nil {
		return out, fmt.Errorf("planner: join at %v: %w", wp, err)
	}
	out.Found = true
	out.Path = path

	return out, nil
}

// SampleWaypoint draws up to maxAttempts cells uniformly from g's
// coordinate space and returns the first that is free and differs from
// both start and goal, with the number of draws made.
//
// Complexity: O(maxAttempts).
func SampleWaypoint(g *gridgraph.Grid, start, goal gridgraph.Cell, r *rand.Rand, maxAttempts int) (gridgraph.Cell, int, bool) {
	n := g.Dimension()
	for i := 1; i <= maxAttempts; i++ {
		c := gridgraph.Cell{Row: r.Intn(n), Col: r.Intn(n)}
		if c == start || c == goal || !g.IsFree(c) {
			continue
		}
		return c, i, true
	}
	return gridgraph.Cell{}, maxAttempts, false
}

// legsSequential runs the second leg only if the first found a path.
func legsSequential(search route.SearchFunc, g *gridgraph.Grid, start, wp, goal gridgraph.Cell) (route.Result, route.Result, error) {
	first, err := search(g, start, wp)
	if err != nil {
		return first, route.Result{}, fmt.Errorf("planner: first leg: %w", err)
	}
	if !first.Found {
		return first, route.Result{}, nil
	}
	second, err := search(g, wp, goal)
	if err != nil {
		return first, second, fmt.Errorf("planner: second leg: %w", err)
	}
	return first, second, nil
}

// legsConcurrent runs both legs in an errgroup. Each goroutine writes only
// its own result variable.
func legsConcurrent(search route.SearchFunc, g *gridgraph.Grid, start, wp, goal gridgraph.Cell) (route.Result, route.Result, error) {
	var first, second route.Result
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		if first, err = search(g, start, wp); err != nil {
			return fmt.Errorf("planner: first leg: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		if second, err = search(g, wp, goal); err != nil {
			return fmt.Errorf("planner: second leg: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return first, second, err
	}
	return first, second, nil
}
