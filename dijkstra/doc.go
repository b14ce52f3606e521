// Package dijkstra provides uniform-cost (Dijkstra) search between two cells
// of a grid.Grid with strictly positive move costs and no heuristic.
//
// Overview:
//
//   - Search computes a minimum-cost path from a start cell to a goal cell.
//   - The Frontier is a binary min-heap ordered by cost-to-come with FIFO
//     tie-breaking, so equal-cost cells are expanded in discovery order and
//     every run over the same input expands cells in the same order.
//   - The VisitedIndex is the single source of truth for best costs and
//     parent links. Parents are cell keys into the index, never copies.
//   - Reconstruct walks parent links from the goal back to the start.
//
// Algorithm:
//
//  1. Register the start (cost 0, no parent) and push it.
//  2. Pop the cheapest frontier entry. Empty frontier ⇒ NotFound.
//  3. Skip it if its cost is above the index's best cost for that cell
//     (stale entry left behind by a later relaxation; counted in Stats.Stale).
//  4. Goal popped ⇒ Found.
//  5. Otherwise, for every neighbor: relax a known cell (strict improvement
//     only) or register a new one; push on improvement or discovery.
//
// The loop checks the context once per iteration and reports StatusCancelled
// when it is done.
//
// Key features:
//
//   - Lazy decrease-key: improved cells are pushed again, stale copies are skipped.
//   - WithProgress: a bounded, drop-oldest event stream for renderers and
//     tracers. The engine never blocks on a slow consumer.
//   - WithLogger: structured debug logging via charmbracelet/log.
//   - Stats on every Outcome: expansions, stale pops, pushes, relaxations,
//     frontier peak.
//
// Performance and complexity (N = passable cells, d = 4 or 8):
//
//   - Time:  O(N·d·log(N·d))
//   - Space: O(N·d) worst case for the heap under lazy decrease-key, O(N) for the index.
//
// Outcomes and errors:
//
//   - StatusFound, StatusNotFound and StatusCancelled are ordinary results.
//   - Validation errors (grid.ErrOutOfBounds, grid.ErrBlockedEndpoint) are
//     returned before any search state is built.
//   - ErrNilGrid and ErrPreconditionViolation signal caller bugs.
//
// Thread safety:
//
//   - Each Search call owns its Frontier and VisitedIndex; no locking is needed.
//   - The grid.Grid is read-only and may be shared by concurrent searches.
//
// Example usage:
//
//	g, _ := grid.New(10, 10)
//	out, err := dijkstra.Search(ctx, g, grid.Cell{X: 1, Y: 1}, grid.Cell{X: 10, Y: 6})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if out.Status == dijkstra.StatusFound {
//	    fmt.Println(out.TotalCost, out.Path)
//	}
package dijkstra
