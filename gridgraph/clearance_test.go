package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// TestMinClearance_Wall crosses a full-height wall: exactly one obstacle
// must be cleared and the cheapest route goes straight through it.
func TestMinClearance_Wall(t *testing.T) {
	g, err := gridgraph.Parse(".#.\n.#.\n.#.\n")
	require.NoError(t, err)

	path, cost, err := g.MinClearance(gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 0, Col: 2})
	require.NoError(t, err)
	require.Equal(t, 1, cost)
	require.Equal(t, []gridgraph.Cell{{0, 0}, {0, 1}, {0, 2}}, path)
}

// TestMinClearance_AlreadyConnected returns cost 0 when a free route exists.
func TestMinClearance_AlreadyConnected(t *testing.T) {
	g, err := gridgraph.Parse("...\n.#.\n...\n")
	require.NoError(t, err)

	path, cost, err := g.MinClearance(gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 2, Col: 2})
	require.NoError(t, err)
	require.Zero(t, cost)
	require.Equal(t, gridgraph.Cell{Row: 0, Col: 0}, path[0])
	require.Equal(t, gridgraph.Cell{Row: 2, Col: 2}, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		require.True(t, path[i-1].Adjacent(path[i]), "step %d", i)
		require.True(t, g.IsFree(path[i]), "cell %v must be free", path[i])
	}
}

// TestMinClearance_InvalidEndpoint rejects out-of-bounds cells.
func TestMinClearance_InvalidEndpoint(t *testing.T) {
	g, err := gridgraph.New(2)
	require.NoError(t, err)

	_, _, err = g.MinClearance(gridgraph.Cell{Row: -1, Col: 0}, gridgraph.Cell{Row: 1, Col: 1})
	require.ErrorIs(t, err, gridgraph.ErrInvalidEndpoint)
}
