// SPDX-License-Identifier: MIT
// Package: gridpath/obstacle
//
// shape.go: shape primitives and rasterization.
//
// Contract:
//   • Shapes are pure predicates over grid cells; no allocation, no state.
//   • Rect bounds are inclusive and normalized, so Min/Max order does not matter.
//   • Circle uses exact integer arithmetic (no float rounding at the rim).

package obstacle

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Shape reports whether a cell is covered.
type Shape interface {
	Contains(c grid.Cell) bool
}

// Func adapts a plain predicate to Shape.
type Func func(c grid.Cell) bool

// Contains calls f(c).
func (f Func) Contains(c grid.Cell) bool { return f(c) }

// Circle covers every cell within Radius of Center (boundary included).
type Circle struct {
	Center grid.Cell
	Radius int
}

// Contains reports (x-cx)²+(y-cy)² ≤ r².
func (s Circle) Contains(c grid.Cell) bool {
	dx, dy := c.X-s.Center.X, c.Y-s.Center.Y
	return dx*dx+dy*dy <= s.Radius*s.Radius
}

// Rect covers the inclusive block spanned by Min and Max.
type Rect struct {
	Min, Max grid.Cell
}

// Contains reports whether c lies inside the block.
func (s Rect) Contains(c grid.Cell) bool {
	x0, x1 := order(s.Min.X, s.Max.X)
	y0, y1 := order(s.Min.Y, s.Max.Y)
	return c.X >= x0 && c.X <= x1 && c.Y >= y0 && c.Y <= y1
}

// HWall is a one-cell-thick horizontal wall on row y from x0 to x1 inclusive.
func HWall(y, x0, x1 int) Rect {
	return Rect{Min: grid.Cell{X: x0, Y: y}, Max: grid.Cell{X: x1, Y: y}}
}

// VWall is a one-cell-thick vertical wall on column x from y0 to y1 inclusive.
func VWall(x, y0, y1 int) Rect {
	return Rect{Min: grid.Cell{X: x, Y: y0}, Max: grid.Cell{X: x, Y: y1}}
}

// Rasterize returns every cell of [1,width]×[1,height] covered by at least
// one shape, in column-major order, without duplicates.
// Returns ErrBadDimensions for an empty area and ErrNilShape for a nil entry.
func Rasterize(width, height int, shapes ...Shape) ([]grid.Cell, error) {
	// 1) Validate parameters early (fail fast; no partial work).
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("Rasterize: %d×%d: %w", width, height, ErrBadDimensions)
	}
	for i, s := range shapes {
		if isNil(s) {
			return nil, fmt.Errorf("Rasterize: shape %d: %w", i, ErrNilShape)
		}
	}

	// 2) Sample each cell once; the first covering shape wins.
	var out []grid.Cell
	for x := 1; x <= width; x++ {
		for y := 1; y <= height; y++ {
			c := grid.Cell{X: x, Y: y}
			for _, s := range shapes {
				if s.Contains(c) {
					out = append(out, c)
					break
				}
			}
		}
	}
	return out, nil
}

// isNil reports an untyped nil Shape or a nil Func.
func isNil(s Shape) bool {
	if s == nil {
		return true
	}
	f, ok := s.(Func)
	return ok && f == nil
}

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
