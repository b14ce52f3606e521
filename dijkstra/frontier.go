package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// Frontier is the ordered set of discovered but unexpanded cells.
// Pop returns the cheapest entry; among equal costs the earliest pushed wins.
// The same cell may be pushed several times with different costs; the
// consumer decides which pops are stale.
type Frontier struct {
	items frontierHeap
	seq   uint64 // insertion counter for FIFO tie-breaking
}

// NewFrontier returns an empty Frontier with room for capacity entries.
func NewFrontier(capacity int) *Frontier {
	if capacity < 0 {
		capacity = 0
	}
	return &Frontier{items: make(frontierHeap, 0, capacity)}
}

// Push inserts c with the given cost-to-come.
// Complexity: O(log n).
func (f *Frontier) Push(c grid.Cell, cost float64) {
	heap.Push(&f.items, frontierItem{cell: c, cost: cost, seq: f.seq})
	f.seq++
}

// Pop removes and returns the cheapest entry. ok is false when the frontier is empty.
// Complexity: O(log n).
func (f *Frontier) Pop() (c grid.Cell, cost float64, ok bool) {
	if len(f.items) == 0 {
		return grid.Cell{}, 0, false
	}
	it := heap.Pop(&f.items).(frontierItem)
	return it.cell, it.cost, true
}

// Len returns the number of pending entries, stale ones included.
func (f *Frontier) Len() int { return len(f.items) }

// frontierItem is one pending (cell, cost) pair.
type frontierItem struct {
	cell grid.Cell
	cost float64
	seq  uint64
}

// frontierHeap is a min-heap of frontierItem ordered by (cost, seq).
type frontierHeap []frontierItem

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	return h[i].seq < h[j].seq
}

func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap) Push(x interface{}) { *h = append(*h, x.(frontierItem)) }

func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
