package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

func TestReconstruct_Chain(t *testing.T) {
	idx := dijkstra.NewVisitedIndex(0)
	idx.RegisterStart(cell(1, 1))
	idx.Register(cell(1, 2), 1, cell(1, 1))
	idx.Register(cell(2, 3), 2.4, cell(1, 2))
	idx.Register(cell(9, 9), 7, cell(1, 1)) // unrelated branch

	path, err := dijkstra.Reconstruct(cell(2, 3), idx)
	require.NoError(t, err)
	assert.Equal(t, []grid.Cell{cell(1, 1), cell(1, 2), cell(2, 3)}, path)
}

func TestReconstruct_StartOnly(t *testing.T) {
	idx := dijkstra.NewVisitedIndex(0)
	idx.RegisterStart(cell(4, 4))

	path, err := dijkstra.Reconstruct(cell(4, 4), idx)
	require.NoError(t, err)
	assert.Equal(t, []grid.Cell{cell(4, 4)}, path)
}

func TestReconstruct_PreconditionViolations(t *testing.T) {
	t.Run("NilIndex", func(t *testing.T) {
		_, err := dijkstra.Reconstruct(cell(1, 1), nil)
		assert.ErrorIs(t, err, dijkstra.ErrPreconditionViolation)
	})
	t.Run("GoalNotVisited", func(t *testing.T) {
		idx := dijkstra.NewVisitedIndex(0)
		idx.RegisterStart(cell(1, 1))
		_, err := dijkstra.Reconstruct(cell(2, 2), idx)
		assert.ErrorIs(t, err, dijkstra.ErrPreconditionViolation)
	})
	t.Run("DanglingParent", func(t *testing.T) {
		idx := dijkstra.NewVisitedIndex(0)
		idx.Register(cell(2, 2), 1, cell(1, 1))
		_, err := dijkstra.Reconstruct(cell(2, 2), idx)
		assert.ErrorIs(t, err, dijkstra.ErrPreconditionViolation)
	})
	t.Run("Cycle", func(t *testing.T) {
		idx := dijkstra.NewVisitedIndex(0)
		idx.Register(cell(1, 1), 1, cell(2, 2))
		idx.Register(cell(2, 2), 1, cell(1, 1))
		_, err := dijkstra.Reconstruct(cell(1, 1), idx)
		assert.ErrorIs(t, err, dijkstra.ErrPreconditionViolation)
	})
}
