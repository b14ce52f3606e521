package obstacle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/obstacle"
)

func TestCircle_Contains(t *testing.T) {
	c := obstacle.Circle{Center: grid.Cell{X: 5, Y: 3}, Radius: 2}

	inside := []grid.Cell{{X: 5, Y: 3}, {X: 5, Y: 1}, {X: 5, Y: 5}, {X: 3, Y: 3}, {X: 7, Y: 3}, {X: 4, Y: 2}, {X: 6, Y: 4}}
	for _, p := range inside {
		assert.True(t, c.Contains(p), "%v", p)
	}
	outside := []grid.Cell{{X: 4, Y: 1}, {X: 6, Y: 1}, {X: 3, Y: 2}, {X: 7, Y: 5}, {X: 8, Y: 3}}
	for _, p := range outside {
		assert.False(t, c.Contains(p), "%v", p)
	}
}

func TestRect_NormalizesCorners(t *testing.T) {
	r := obstacle.Rect{Min: grid.Cell{X: 3, Y: 10}, Max: grid.Cell{X: 2, Y: 3}}
	assert.True(t, r.Contains(grid.Cell{X: 2, Y: 3}))
	assert.True(t, r.Contains(grid.Cell{X: 3, Y: 10}))
	assert.False(t, r.Contains(grid.Cell{X: 4, Y: 5}))
	assert.False(t, r.Contains(grid.Cell{X: 2, Y: 2}))
}

func TestWalls(t *testing.T) {
	h := obstacle.HWall(7, 7, 15)
	assert.True(t, h.Contains(grid.Cell{X: 7, Y: 7}))
	assert.True(t, h.Contains(grid.Cell{X: 15, Y: 7}))
	assert.False(t, h.Contains(grid.Cell{X: 10, Y: 6}))

	v := obstacle.VWall(2, 5, 7)
	assert.True(t, v.Contains(grid.Cell{X: 2, Y: 6}))
	assert.False(t, v.Contains(grid.Cell{X: 3, Y: 6}))
}

func TestRasterize_OrderAndDedup(t *testing.T) {
	cells, err := obstacle.Rasterize(4, 3,
		obstacle.VWall(2, 1, 3),
		obstacle.HWall(2, 1, 3), // overlaps (2,2)
	)
	require.NoError(t, err)
	want := []grid.Cell{{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 2}}
	assert.Equal(t, want, cells)
}

func TestRasterize_ClipsToBounds(t *testing.T) {
	cells, err := obstacle.Rasterize(3, 3, obstacle.Circle{Center: grid.Cell{X: 1, Y: 1}, Radius: 1})
	require.NoError(t, err)
	assert.Equal(t, []grid.Cell{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 1}}, cells)
}

func TestRasterize_Func(t *testing.T) {
	diag := obstacle.Func(func(c grid.Cell) bool { return c.X == c.Y })
	cells, err := obstacle.Rasterize(3, 3, diag)
	require.NoError(t, err)
	assert.Equal(t, []grid.Cell{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}, cells)
}

func TestRasterize_Errors(t *testing.T) {
	_, err := obstacle.Rasterize(0, 3)
	assert.ErrorIs(t, err, obstacle.ErrBadDimensions)

	_, err = obstacle.Rasterize(3, 3, obstacle.HWall(1, 1, 2), nil)
	assert.ErrorIs(t, err, obstacle.ErrNilShape)

	var missing obstacle.Func
	require.NotPanics(t, func() {
		_, err = obstacle.Rasterize(3, 3, obstacle.HWall(1, 1, 2), missing)
	})
	assert.ErrorIs(t, err, obstacle.ErrNilShape)

	cells, err := obstacle.Rasterize(3, 3)
	require.NoError(t, err)
	assert.Empty(t, cells)
}
