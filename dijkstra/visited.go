package dijkstra

import "github.com/katalvlaran/gridpath/grid"

// Entry is the best known way to reach Cell.
// HasParent is false only for the start entry.
type Entry struct {
	Cell      grid.Cell
	Parent    grid.Cell
	HasParent bool
	Cost      float64
}

// VisitedIndex maps each discovered cell to its Entry. Entries are created
// once, may be improved by Relax, and are never removed. An entry's cost
// never increases.
type VisitedIndex struct {
	entries map[grid.Cell]Entry
}

// NewVisitedIndex returns an empty index sized for capacity cells.
func NewVisitedIndex(capacity int) *VisitedIndex {
	if capacity < 0 {
		capacity = 0
	}
	return &VisitedIndex{entries: make(map[grid.Cell]Entry, capacity)}
}

// Contains reports whether c has been discovered.
func (v *VisitedIndex) Contains(c grid.Cell) bool {
	_, ok := v.entries[c]
	return ok
}

// BestCost returns the current best cost-to-come of c.
func (v *VisitedIndex) BestCost(c grid.Cell) (float64, bool) {
	e, ok := v.entries[c]
	return e.Cost, ok
}

// Entry returns the full entry for c.
func (v *VisitedIndex) Entry(c grid.Cell) (Entry, bool) {
	e, ok := v.entries[c]
	return e, ok
}

// Len returns the number of discovered cells.
func (v *VisitedIndex) Len() int { return len(v.entries) }

// RegisterStart records c as the parentless root with cost 0.
// It returns false, leaving the index unchanged, if c is already present.
func (v *VisitedIndex) RegisterStart(c grid.Cell) bool {
	if v.Contains(c) {
		return false
	}
	v.entries[c] = Entry{Cell: c}
	return true
}

// Register records the first discovery of c via parent at the given cost.
// It returns false, leaving the index unchanged, if c is already present;
// use Relax to improve an existing entry.
func (v *VisitedIndex) Register(c grid.Cell, cost float64, parent grid.Cell) bool {
	if v.Contains(c) {
		return false
	}
	v.entries[c] = Entry{Cell: c, Parent: parent, HasParent: true, Cost: cost}
	return true
}

// Relax replaces the cost and parent of an existing entry iff candidate is
// strictly cheaper than the recorded cost. It reports whether an update happened.
// Unknown cells and the start entry's parent link are never touched by a
// non-improving candidate.
func (v *VisitedIndex) Relax(c grid.Cell, candidate float64, parent grid.Cell) bool {
	e, ok := v.entries[c]
	if !ok || !(candidate < e.Cost) {
		return false
	}
	e.Cost = candidate
	e.Parent = parent
	e.HasParent = true
	v.entries[c] = e
	return true
}
