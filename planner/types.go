package planner

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridroute/bfs"
	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/route"
)

// DefaultMaxAttempts bounds waypoint sampling when no option overrides it.
const DefaultMaxAttempts = 5000

// Sentinel errors returned by Plan.
var (
	// ErrGridNil indicates a nil *gridgraph.Grid.
	ErrGridNil = errors.New("planner: grid is nil")

	// ErrOptionViolation indicates an invalid functional option.
	ErrOptionViolation = errors.New("planner: invalid option supplied")

	// ErrWaypointSamplingExhausted means no free waypoint distinct from start
	// and goal was drawn within the attempt bound.
	ErrWaypointSamplingExhausted = errors.New("planner: could not find a free waypoint")

	// ErrFirstLegUnreachable means the waypoint cannot be reached from start.
	ErrFirstLegUnreachable = fmt.Errorf("planner: start→waypoint: %w", route.ErrNoPathFound)

	// ErrSecondLegUnreachable means the goal cannot be reached from the waypoint.
	ErrSecondLegUnreachable = fmt.Errorf("planner: waypoint→goal: %w", route.ErrNoPathFound)
)

// Result is the outcome of one alternate-route attempt.
//
//   - Found:    both legs succeeded and Path is their concatenation.
//   - Path:     start…waypoint…goal, waypoint counted once; nil when !Found.
//   - Waypoint: the accepted intermediate cell (zero Cell if sampling failed).
//   - First:    start→waypoint search result.
//   - Second:   waypoint→goal search result.
//   - Attempts: number of samples drawn, including the accepted one.
type Result struct {
	Found    bool
	Path     route.Path
	Waypoint gridgraph.Cell
	First    route.Result
	Second   route.Result
	Attempts int
}

// Option configures Plan via functional arguments.
type Option func(*Options)

// Options holds the planner's tunables.
type Options struct {
	// MaxAttempts bounds the number of waypoint samples.
	MaxAttempts int

	// Seed drives the sampling RNG when Rand is nil. 0 selects rng.DefaultSeed.
	Seed int64

	// Rand, if non-nil, is used as-is. It must not be shared across goroutines.
	Rand *rand.Rand

	// Search runs each leg. Defaults to breadth-first search.
	Search route.SearchFunc

	// ConcurrentLegs runs both legs in parallel.
	ConcurrentLegs bool

	err error
}

// DefaultOptions returns 5000 attempts, the default seed, BFS legs run
// sequentially.
func DefaultOptions() Options {
	return Options{
		MaxAttempts: DefaultMaxAttempts,
		Search:      bfs.SearchFunc(),
	}
}

// WithMaxAttempts sets the sampling bound; n must be positive.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxAttempts must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxAttempts = n
	}
}

// WithSeed fixes the sampling seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies the sampling source directly. Nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSearch replaces the per-leg search strategy.
func WithSearch(fn route.SearchFunc) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: search function is nil", ErrOptionViolation)
			return
		}
		o.Search = fn
	}
}

// WithConcurrentLegs runs start→waypoint and waypoint→goal in parallel.
func WithConcurrentLegs() Option {
	return func(o *Options) { o.ConcurrentLegs = true }
}
