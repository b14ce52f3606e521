// Package grid provides the search domain for gridpath: bounds, obstacle
// membership and move generation over a 2D integer lattice.
package grid

import (
	"fmt"
	"sort"
)

// New constructs a Grid of the given width and height.
// The obstacle set is copied, so later changes to the caller's slice have no effect.
// Returns ErrBadDimensions if width or height < 1 and ErrOutOfBounds (wrapped)
// if an obstacle lies outside the grid.
// Algorithmic complexity: O(len(obstacles)) time and memory.
func New(width, height int, opts ...Option) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, width, height)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Grid{
		Width:        width,
		Height:       height,
		conn:         cfg.Conn,
		diagonalCost: cfg.DiagonalCost,
		obstacles:    make(map[Cell]struct{}, len(cfg.Obstacles)),
	}
	for _, c := range cfg.Obstacles {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("grid: obstacle %s: %w", c, ErrOutOfBounds)
		}
		g.obstacles[c] = struct{}{}
	}

	// Precompute moves in expansion order: orthogonal first, then diagonals.
	g.moves = []move{
		{0, 1, OrthogonalCost},  // up
		{1, 0, OrthogonalCost},  // right
		{0, -1, OrthogonalCost}, // down
		{-1, 0, OrthogonalCost}, // left
	}
	if cfg.Conn == Conn8 {
		g.moves = append(g.moves,
			move{1, 1, cfg.DiagonalCost},   // up-right
			move{1, -1, cfg.DiagonalCost},  // down-right
			move{-1, 1, cfg.DiagonalCost},  // up-left
			move{-1, -1, cfg.DiagonalCost}, // down-left
		)
	}

	return g, nil
}

// InBounds reports whether c lies within [1,Width]×[1,Height].
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 1 && c.X <= g.Width && c.Y >= 1 && c.Y <= g.Height
}

// Blocked reports whether c is in the obstacle set.
// Complexity: O(1).
func (g *Grid) Blocked(c Cell) bool {
	_, ok := g.obstacles[c]
	return ok
}

// Passable reports whether c is in bounds and not blocked.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && !g.Blocked(c)
}

// Obstacles returns the blocked cells sorted by X, then Y.
func (g *Grid) Obstacles() []Cell {
	out := make([]Cell, 0, len(g.obstacles))
	for c := range g.obstacles {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

// Neighbors returns the passable cells one move away from c with their edge costs,
// in the fixed order up, right, down, left, then (Conn8) up-right, down-right,
// up-left, down-left.
// Complexity: O(d), d = 4 or 8.
func (g *Grid) Neighbors(c Cell) []Neighbor {
	return g.AppendNeighbors(make([]Neighbor, 0, len(g.moves)), c)
}

// AppendNeighbors appends the neighbors of c to dst and returns the extended slice.
// Search loops use it to reuse one buffer across expansions.
func (g *Grid) AppendNeighbors(dst []Neighbor, c Cell) []Neighbor {
	for _, m := range g.moves {
		n := Cell{X: c.X + m.dx, Y: c.Y + m.dy}
		if !g.Passable(n) {
			continue
		}
		dst = append(dst, Neighbor{Cell: n, Cost: m.cost})
	}
	return dst
}

// StepCost returns the cost of moving from a to b in one step.
// ok is false when b is not a legal neighbor of a (out of bounds, blocked,
// not adjacent, or diagonal under Conn4).
func (g *Grid) StepCost(a, b Cell) (cost float64, ok bool) {
	if !g.Passable(a) || !g.Passable(b) {
		return 0, false
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	for _, m := range g.moves {
		if m.dx == dx && m.dy == dy {
			return m.cost, true
		}
	}
	return 0, false
}

// ValidateEndpoints checks a start/goal pair before any search state is built.
// Checks run in order: start in bounds, goal in bounds, start free, goal free.
// The returned error is an *EndpointError wrapping ErrOutOfBounds or ErrBlockedEndpoint.
// start == goal is valid.
func (g *Grid) ValidateEndpoints(start, goal Cell) error {
	if !g.InBounds(start) {
		return &EndpointError{Endpoint: EndpointStart, Cell: start, Err: ErrOutOfBounds}
	}
	if !g.InBounds(goal) {
		return &EndpointError{Endpoint: EndpointGoal, Cell: goal, Err: ErrOutOfBounds}
	}
	if g.Blocked(start) {
		return &EndpointError{Endpoint: EndpointStart, Cell: start, Err: ErrBlockedEndpoint}
	}
	if g.Blocked(goal) {
		return &EndpointError{Endpoint: EndpointGoal, Cell: goal, Err: ErrBlockedEndpoint}
	}
	return nil
}
