package planner_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/planner"
	"github.com/katalvlaran/gridroute/route"
)

func cell(r, c int) gridgraph.Cell { return gridgraph.Cell{Row: r, Col: c} }

func mustParse(t testing.TB, s string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.Parse(s)
	require.NoError(t, err)
	return g
}

func TestPlan_Validation(t *testing.T) {
	g := mustParse(t, "...\n.#.\n...\n")

	_, err := planner.Plan(nil, cell(0, 0), cell(2, 2))
	require.ErrorIs(t, err, planner.ErrGridNil)

	cases := []struct {
		name string
		opt  planner.Option
	}{
		{"zero attempts", planner.WithMaxAttempts(0)},
		{"negative attempts", planner.WithMaxAttempts(-3)},
		{"nil search", planner.WithSearch(nil)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := planner.Plan(g, cell(0, 0), cell(2, 2), tc.opt)
			require.ErrorIs(t, err, planner.ErrOptionViolation)
		})
	}

	_, err = planner.Plan(g, cell(1, 1), cell(2, 2))
	require.ErrorIs(t, err, gridgraph.ErrInvalidEndpoint)
	_, err = planner.Plan(g, cell(0, 0), cell(3, 0))
	require.ErrorIs(t, err, gridgraph.ErrInvalidEndpoint)
}

func TestPlan_SamplingExhausted(t *testing.T) {
	// only start and goal are free
	g := mustParse(t, ".#\n#.\n")
	p, err := planner.Plan(g, cell(0, 0), cell(1, 1), planner.WithMaxAttempts(50))
	require.ErrorIs(t, err, planner.ErrWaypointSamplingExhausted)
	assert.False(t, p.Found)
	assert.Nil(t, p.Path)
	assert.Equal(t, 50, p.Attempts)

	single, _ := gridgraph.New(1)
	_, err = planner.Plan(single, cell(0, 0), cell(0, 0), planner.WithMaxAttempts(10))
	require.ErrorIs(t, err, planner.ErrWaypointSamplingExhausted)
}

func TestPlan_FirstLegUnreachable(t *testing.T) {
	// the only candidate waypoint (2,2) is walled off
	g := mustParse(t, "..#\n###\n##.\n")
	p, err := planner.Plan(g, cell(0, 0), cell(0, 1))
	require.ErrorIs(t, err, planner.ErrFirstLegUnreachable)
	require.ErrorIs(t, err, route.ErrNoPathFound)
	assert.False(t, p.Found)
	assert.Equal(t, cell(2, 2), p.Waypoint)
	assert.Nil(t, p.Path)
}

func TestPlan_SecondLegUnreachable(t *testing.T) {
	// waypoint (0,1) is next to start, the goal is isolated
	g := mustParse(t, "..#\n###\n##.\n")
	for _, concurrent := range []bool{false, true} {
		opts := []planner.Option{}
		if concurrent {
			opts = append(opts, planner.WithConcurrentLegs())
		}
		p, err := planner.Plan(g, cell(0, 0), cell(2, 2), opts...)
		require.ErrorIs(t, err, planner.ErrSecondLegUnreachable)
		require.ErrorIs(t, err, route.ErrNoPathFound)
		assert.False(t, p.Found)
		assert.True(t, p.First.Found)
		assert.Equal(t, cell(0, 1), p.Waypoint)
	}
}

// TestPlan_Concatenation checks the join invariants on many seeded maps.
func TestPlan_Concatenation(t *testing.T) {
	start, goal := cell(0, 0), cell(9, 9)
	successes := 0
	for seed := int64(1); seed <= 20; seed++ {
		g, err := gridgraph.Random(10, gridgraph.RandomOptions{Density: 0.15, Seed: seed,
			KeepFree: []gridgraph.Cell{start, goal}})
		require.NoError(t, err)

		p, err := planner.Plan(g, start, goal, planner.WithSeed(seed))
		if errors.Is(err, route.ErrNoPathFound) {
			continue
		}
		require.NoError(t, err)
		require.True(t, p.Found)
		successes++

		assert.Equal(t, p.First.Path.Len()+p.Second.Path.Len()-1, p.Path.Len())
		assert.Equal(t, 1, p.Path.Count(p.Waypoint))
		assert.NotEqual(t, start, p.Waypoint)
		assert.NotEqual(t, goal, p.Waypoint)
		assert.Equal(t, start, p.Path.Start())
		assert.Equal(t, goal, p.Path.Goal())
		require.NoError(t, p.Path.Validate(g))
		assert.GreaterOrEqual(t, p.Attempts, 1)
	}
	assert.Positive(t, successes)
}

func TestPlan_Deterministic(t *testing.T) {
	g, err := gridgraph.New(12)
	require.NoError(t, err)

	a, err := planner.Plan(g, cell(0, 0), cell(11, 11), planner.WithSeed(7))
	require.NoError(t, err)
	b, err := planner.Plan(g, cell(0, 0), cell(11, 11), planner.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a.Waypoint, b.Waypoint)
	assert.Equal(t, a.Path, b.Path)

	c, err := planner.Plan(g, cell(0, 0), cell(11, 11), planner.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	assert.Equal(t, a.Waypoint, c.Waypoint)
}

func TestPlan_ConcurrentMatchesSequential(t *testing.T) {
	g, err := gridgraph.Random(16, gridgraph.RandomOptions{Density: 0.1, Seed: 5,
		KeepFree: []gridgraph.Cell{cell(0, 0), cell(15, 15)}})
	require.NoError(t, err)

	for seed := int64(1); seed <= 5; seed++ {
		seq, errSeq := planner.Plan(g, cell(0, 0), cell(15, 15), planner.WithSeed(seed))
		par, errPar := planner.Plan(g, cell(0, 0), cell(15, 15), planner.WithSeed(seed), planner.WithConcurrentLegs())
		assert.Equal(t, errSeq == nil, errPar == nil)
		assert.Equal(t, seq.Waypoint, par.Waypoint)
		assert.Equal(t, seq.Path, par.Path)
	}
}

func TestPlan_WithAStarLegs(t *testing.T) {
	g, err := gridgraph.New(8)
	require.NoError(t, err)
	p, err := planner.Plan(g, cell(0, 0), cell(7, 7), planner.WithSearch(astar.SearchFunc()), planner.WithSeed(3))
	require.NoError(t, err)
	// on an open grid each leg is a Manhattan-shortest path
	want := cell(0, 0).Manhattan(p.Waypoint) + p.Waypoint.Manhattan(cell(7, 7)) + 1
	assert.Equal(t, want, p.Path.Len())
}

func TestPlan_SearchErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	failing := func(*gridgraph.Grid, gridgraph.Cell, gridgraph.Cell) (route.Result, error) {
		return route.Result{}, boom
	}
	g, _ := gridgraph.New(4)
	for _, concurrent := range []bool{false, true} {
		opts := []planner.Option{planner.WithSearch(failing)}
		if concurrent {
			opts = append(opts, planner.WithConcurrentLegs())
		}
		p, err := planner.Plan(g, cell(0, 0), cell(3, 3), opts...)
		require.ErrorIs(t, err, boom)
		assert.False(t, p.Found)
	}
}

func TestSampleWaypoint(t *testing.T) {
	g := mustParse(t, "..\n.#\n")
	wp, n, ok := planner.SampleWaypoint(g, cell(0, 0), cell(0, 1), rand.New(rand.NewSource(1)), 1000)
	require.True(t, ok)
	assert.Equal(t, cell(1, 0), wp)
	assert.GreaterOrEqual(t, n, 1)
}
