package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects degenerate sizes and stray obstacles.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		opts []grid.Option
		err  error
	}{
		{"ZeroWidth", 0, 5, nil, grid.ErrBadDimensions},
		{"ZeroHeight", 5, 0, nil, grid.ErrBadDimensions},
		{"Negative", -3, 2, nil, grid.ErrBadDimensions},
		{"ObstacleOutside", 3, 3, []grid.Option{grid.WithObstacles(grid.Cell{X: 4, Y: 1})}, grid.ErrOutOfBounds},
		{"ObstacleAtZero", 3, 3, []grid.Option{grid.WithObstacles(grid.Cell{X: 0, Y: 1})}, grid.ErrOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.w, tc.h, tc.opts...)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestInBounds checks the one-based bounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)

	for _, c := range []grid.Cell{{1, 1}, {3, 2}, {2, 1}} {
		assert.True(t, g.InBounds(c), "InBounds%v", c)
	}
	for _, c := range []grid.Cell{{0, 1}, {1, 0}, {4, 1}, {1, 3}, {-1, -1}} {
		assert.False(t, g.InBounds(c), "InBounds%v", c)
	}
}

// TestObstacles_CopiedAndSorted ensures the obstacle set is deduplicated,
// sorted, and isolated from the caller's slice.
func TestObstacles_CopiedAndSorted(t *testing.T) {
	cells := []grid.Cell{{2, 2}, {1, 3}, {2, 1}, {2, 2}}
	g, err := grid.New(3, 3, grid.WithObstacles(cells...))
	require.NoError(t, err)

	cells[0] = grid.Cell{X: 3, Y: 3}

	assert.Equal(t, []grid.Cell{{1, 3}, {2, 1}, {2, 2}}, g.Obstacles())
	assert.True(t, g.Blocked(grid.Cell{X: 2, Y: 2}))
	assert.False(t, g.Blocked(grid.Cell{X: 3, Y: 3}))
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestAccessors reports the connectivity and diagonal cost fixed at construction.
func TestAccessors(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)
	assert.Equal(t, grid.Conn4, g.Conn())
	assert.Equal(t, grid.ReferenceDiagonalCost, g.DiagonalCost())

	g, err = grid.New(4, 4, grid.WithConnectivity(grid.Conn8), grid.WithDiagonalCost(2.5))
	require.NoError(t, err)
	assert.Equal(t, grid.Conn8, g.Conn())
	assert.Equal(t, 2.5, g.DiagonalCost())

	n := g.Neighbors(grid.Cell{X: 1, Y: 1})
	assert.Equal(t, 2.5, n[len(n)-1].Cost)
}

// TestNeighbors_Conn4Order verifies order and costs for an interior cell.
func TestNeighbors_Conn4Order(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)

	got := g.Neighbors(grid.Cell{X: 3, Y: 3})
	want := []grid.Neighbor{
		{Cell: grid.Cell{X: 3, Y: 4}, Cost: 1},
		{Cell: grid.Cell{X: 4, Y: 3}, Cost: 1},
		{Cell: grid.Cell{X: 3, Y: 2}, Cost: 1},
		{Cell: grid.Cell{X: 2, Y: 3}, Cost: 1},
	}
	assert.Equal(t, want, got)
}

// TestNeighbors_Conn8Order verifies that diagonals follow the orthogonal moves
// and carry the reference cost 1.4 by default.
func TestNeighbors_Conn8Order(t *testing.T) {
	g, err := grid.New(5, 5, grid.WithConnectivity(grid.Conn8))
	require.NoError(t, err)

	got := g.Neighbors(grid.Cell{X: 3, Y: 3})
	require.Len(t, got, 8)
	wantCells := []grid.Cell{{3, 4}, {4, 3}, {3, 2}, {2, 3}, {4, 4}, {4, 2}, {2, 4}, {2, 2}}
	for i, n := range got {
		assert.Equal(t, wantCells[i], n.Cell, "neighbor %d", i)
		if i < 4 {
			assert.Equal(t, grid.OrthogonalCost, n.Cost)
		} else {
			assert.Equal(t, 1.4, n.Cost)
		}
	}
}

// TestNeighbors_CornerAndObstacles checks bound clipping and obstacle exclusion.
func TestNeighbors_CornerAndObstacles(t *testing.T) {
	g, err := grid.New(3, 3,
		grid.WithConnectivity(grid.Conn8),
		grid.WithObstacles(grid.Cell{X: 2, Y: 2}),
	)
	require.NoError(t, err)

	got := g.Neighbors(grid.Cell{X: 1, Y: 1})
	want := []grid.Neighbor{
		{Cell: grid.Cell{X: 1, Y: 2}, Cost: 1},
		{Cell: grid.Cell{X: 2, Y: 1}, Cost: 1},
	}
	assert.Equal(t, want, got)
}

// TestNeighbors_EuclideanDiagonal checks the optional true diagonal length.
func TestNeighbors_EuclideanDiagonal(t *testing.T) {
	g, err := grid.New(2, 2, grid.WithConnectivity(grid.Conn8), grid.WithEuclideanDiagonal())
	require.NoError(t, err)

	cost, ok := g.StepCost(grid.Cell{X: 1, Y: 1}, grid.Cell{X: 2, Y: 2})
	require.True(t, ok)
	assert.InDelta(t, 1.41421356, cost, 1e-8)
}

// TestStepCost covers legal and illegal single moves.
func TestStepCost(t *testing.T) {
	g4, err := grid.New(4, 4, grid.WithObstacles(grid.Cell{X: 3, Y: 3}))
	require.NoError(t, err)

	cost, ok := g4.StepCost(grid.Cell{X: 1, Y: 1}, grid.Cell{X: 1, Y: 2})
	assert.True(t, ok)
	assert.Equal(t, 1.0, cost)

	_, ok = g4.StepCost(grid.Cell{X: 1, Y: 1}, grid.Cell{X: 2, Y: 2})
	assert.False(t, ok, "diagonal under Conn4")
	_, ok = g4.StepCost(grid.Cell{X: 1, Y: 1}, grid.Cell{X: 1, Y: 3})
	assert.False(t, ok, "two-cell jump")
	_, ok = g4.StepCost(grid.Cell{X: 3, Y: 2}, grid.Cell{X: 3, Y: 3})
	assert.False(t, ok, "into obstacle")
	_, ok = g4.StepCost(grid.Cell{X: 4, Y: 4}, grid.Cell{X: 5, Y: 4})
	assert.False(t, ok, "out of bounds")
}

// TestOptionPanics ensures meaningless option values fail fast.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { grid.WithDiagonalCost(0) })
	assert.Panics(t, func() { grid.WithDiagonalCost(-1.4) })
	assert.Panics(t, func() { grid.WithConnectivity(grid.Connectivity(7)) })
}

//----------------------------------------------------------------------------//
// ValidateEndpoints Tests
//----------------------------------------------------------------------------//

func TestValidateEndpoints(t *testing.T) {
	g, err := grid.New(10, 10, grid.WithObstacles(grid.Cell{X: 5, Y: 5}))
	require.NoError(t, err)

	cases := []struct {
		name        string
		start, goal grid.Cell
		endpoint    grid.Endpoint
		err         error
	}{
		{"StartXZero", grid.Cell{X: 0, Y: 1}, grid.Cell{X: 2, Y: 2}, grid.EndpointStart, grid.ErrOutOfBounds},
		{"GoalXPastWidth", grid.Cell{X: 1, Y: 1}, grid.Cell{X: 11, Y: 2}, grid.EndpointGoal, grid.ErrOutOfBounds},
		{"StartBlocked", grid.Cell{X: 5, Y: 5}, grid.Cell{X: 1, Y: 1}, grid.EndpointStart, grid.ErrBlockedEndpoint},
		{"GoalBlocked", grid.Cell{X: 1, Y: 1}, grid.Cell{X: 5, Y: 5}, grid.EndpointGoal, grid.ErrBlockedEndpoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := g.ValidateEndpoints(tc.start, tc.goal)
			require.ErrorIs(t, err, tc.err)

			var epErr *grid.EndpointError
			require.True(t, errors.As(err, &epErr))
			assert.Equal(t, tc.endpoint, epErr.Endpoint)
		})
	}

	assert.NoError(t, g.ValidateEndpoints(grid.Cell{X: 1, Y: 1}, grid.Cell{X: 10, Y: 10}))
	assert.NoError(t, g.ValidateEndpoints(grid.Cell{X: 3, Y: 3}, grid.Cell{X: 3, Y: 3}), "start == goal is valid")
}
