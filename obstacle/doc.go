// SPDX-License-Identifier: MIT
// Package: gridpath/obstacle
//
// Package obstacle turns simple geometric shapes into obstacle cell sets for
// grid.New.
//
// Shapes:
//   - Circle{Center, Radius}: cells with (x-cx)²+(y-cy)² ≤ r² (integer arithmetic).
//   - Rect{Min, Max}: inclusive axis-aligned block.
//   - HWall / VWall: one-cell-thick horizontal / vertical walls (Rect helpers).
//   - Func: adapter for arbitrary predicates.
//
// Rasterize samples every cell of a W×H map against a list of shapes and
// returns the blocked cells once each, in column-major order (x asc, then y asc).
//
// Determinism:
//   - Same shapes and bounds ⇒ identical output slice.
//
// Complexity:
//   - Rasterize: O(W·H·S) time for S shapes, O(blocked) space.
package obstacle
