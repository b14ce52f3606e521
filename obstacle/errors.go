// SPDX-License-Identifier: MIT
// Package: gridpath/obstacle
//
// errors.go: sentinel errors for the obstacle package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Context is attached with %w at the call site.

package obstacle

import "errors"

// ErrBadDimensions indicates a raster area with width or height below 1.
var ErrBadDimensions = errors.New("obstacle: width and height must be at least 1")

// ErrNilShape indicates a nil Shape (or nil Func) passed to Rasterize.
var ErrNilShape = errors.New("obstacle: nil shape")
