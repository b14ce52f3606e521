// Package grid defines core types, options, and sentinel errors
// for the grid package of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a grid with width or height below 1.
	ErrBadDimensions = errors.New("grid: width and height must be at least 1")
	// ErrOutOfBounds indicates a cell outside [1,W]×[1,H].
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrBlockedEndpoint indicates a start or goal cell inside the obstacle set.
	ErrBlockedEndpoint = errors.New("grid: endpoint is blocked")
)

// Edge costs.
const (
	// OrthogonalCost is the cost of an up/right/down/left move.
	OrthogonalCost = 1.0
	// ReferenceDiagonalCost is the default diagonal move cost.
	ReferenceDiagonalCost = 1.4
	// EuclideanDiagonalCost is the true length of a unit diagonal.
	EuclideanDiagonalCost = math.Sqrt2
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, right, down, left.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals: up-right, down-right, up-left, down-left.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// Cell is a grid coordinate. Cells are comparable values and serve as
// search states and map keys.
type Cell struct {
	X, Y int
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Neighbor is a cell reachable in one move together with the move cost.
type Neighbor struct {
	Cell Cell
	Cost float64
}

// Options contains tunable parameters for a Grid.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// DiagonalCost is the cost of a diagonal move under Conn8.
	DiagonalCost float64
	// Obstacles lists blocked cells; duplicates are allowed.
	Obstacles []Cell
}

// Option represents a functional option for configuring a Grid.
type Option func(*Options)

// DefaultOptions returns Conn4, ReferenceDiagonalCost and no obstacles.
func DefaultOptions() Options {
	return Options{
		Conn:         Conn4,
		DiagonalCost: ReferenceDiagonalCost,
	}
}

// WithConnectivity sets the movement model.
// Panics on values other than Conn4 and Conn8.
func WithConnectivity(conn Connectivity) Option {
	if conn != Conn4 && conn != Conn8 {
		panic(fmt.Sprintf("grid: WithConnectivity(%d): unknown connectivity", int(conn)))
	}
	return func(o *Options) {
		o.Conn = conn
	}
}

// WithDiagonalCost sets the diagonal move cost. Panics if cost <= 0 or is not finite.
func WithDiagonalCost(cost float64) Option {
	if !(cost > 0) || math.IsInf(cost, 1) {
		panic(fmt.Sprintf("grid: WithDiagonalCost(%v): cost must be positive and finite", cost))
	}
	return func(o *Options) {
		o.DiagonalCost = cost
	}
}

// WithEuclideanDiagonal uses math.Sqrt2 for diagonal moves.
func WithEuclideanDiagonal() Option {
	return WithDiagonalCost(EuclideanDiagonalCost)
}

// WithObstacles appends blocked cells. Repeated calls accumulate.
func WithObstacles(cells ...Cell) Option {
	return func(o *Options) {
		o.Obstacles = append(o.Obstacles, cells...)
	}
}

// move is a precomputed neighbor offset with its edge cost.
type move struct {
	dx, dy int
	cost   float64
}

// Grid is a bounded lattice with a fixed obstacle set. It is immutable once built.
// Width and Height define the bounds and must be treated as read-only;
// connectivity and diagonal cost are fixed by Options and exposed through
// Conn and DiagonalCost.
type Grid struct {
	Width, Height int
	conn          Connectivity
	diagonalCost  float64
	obstacles     map[Cell]struct{}
	moves         []move
}

// Conn returns the grid's movement connectivity.
func (g *Grid) Conn() Connectivity { return g.conn }

// DiagonalCost returns the cost of one diagonal move under Conn8.
func (g *Grid) DiagonalCost() float64 { return g.diagonalCost }
