// Implementation notes:
//
//   - Endpoints are validated before any search state is allocated.
//   - Lazy decrease-key: improved cells are pushed again and stale heap
//     entries are detected at pop time against the index.
//   - One neighbor buffer is reused across expansions.
//   - Progress events are emitted on every pop, stale pops included.

package dijkstra

import (
	"context"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// Search finds a minimum-cost path from start to goal on g.
//
// Returns:
//
//   - Outcome with StatusFound, the path from start to goal and its cost;
//   - Outcome with StatusNotFound when every reachable cell was expanded;
//   - Outcome with StatusCancelled when ctx was done first;
//   - an error only for invalid input (nil grid, endpoint out of bounds or
//     blocked, wrapped in *grid.EndpointError) or a broken internal invariant.
//
// start == goal yields StatusFound with an empty path and cost 0.
//
// Preconditions and validation (in order):
//  1. a Progress option must not have served another search (ErrProgressClosed).
//  2. g must be non-nil (ErrNilGrid).
//  3. start and goal must be in bounds (grid.ErrOutOfBounds).
//  4. start and goal must not be blocked (grid.ErrBlockedEndpoint).
//
// Complexity:
//
//   - Time:  O(N·d·log(N·d)), N = passable cells, d = 4 or 8.
//   - Space: O(N·d) for the cells actually reached; the grid area only
//     bounds it.
func Search(ctx context.Context, g *grid.Grid, start, goal grid.Cell, opts ...Option) (Outcome, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Progress != nil {
		if !cfg.Progress.claim() {
			return Outcome{}, ErrProgressClosed
		}
		defer cfg.Progress.close()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// 2) Validate grid and endpoints before allocating search state
	if g == nil {
		return Outcome{}, ErrNilGrid
	}
	if err := g.ValidateEndpoints(start, goal); err != nil {
		return Outcome{}, err
	}

	// 3) Trivial request: nothing to search
	if start == goal {
		return Outcome{Status: StatusFound, Path: []grid.Cell{}}, nil
	}

	// 4) Run the engine
	capacity := capacityHint(g.Width, g.Height)
	r := &runner{
		g:        g,
		goal:     goal,
		options:  cfg,
		frontier: NewFrontier(capacity),
		visited:  NewVisitedIndex(capacity),
	}
	began := time.Now()
	cfg.Logger.Debug("search started",
		"start", start, "goal", goal, "conn", g.Conn(), "size", [2]int{g.Width, g.Height})

	r.init(start)
	r.process(ctx)

	out := Outcome{Stats: r.stats}
	switch r.phase {
	case phaseFound:
		path, err := Reconstruct(goal, r.visited)
		if err != nil {
			return Outcome{}, err
		}
		out.Status = StatusFound
		out.Path = path
		out.TotalCost = r.goalCost
	case phaseCancelled:
		out.Status = StatusCancelled
	default:
		out.Status = StatusNotFound
	}

	cfg.Logger.Debug("search finished",
		"status", out.Status,
		"cost", out.TotalCost,
		"expanded", r.stats.Expanded,
		"stale", r.stats.Stale,
		"pushed", r.stats.Pushed,
		"relaxed", r.stats.Relaxed,
		"frontier_peak", r.stats.FrontierPeak,
		"elapsed", time.Since(began))

	return out, nil
}

// maxCapacityHint bounds the initial frontier and index allocation; both
// grow on demand past it.
const maxCapacityHint = 1 << 12

// capacityHint returns min(width*height, maxCapacityHint) without overflowing.
func capacityHint(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	if width > maxCapacityHint/height {
		return maxCapacityHint
	}
	return min(width*height, maxCapacityHint)
}

// phase is the engine state. Every phase except phaseRunning is terminal.
type phase int

const (
	phaseRunning phase = iota
	phaseFound
	phaseExhausted
	phaseCancelled
)

// runner holds the mutable state for a single search.
type runner struct {
	g        *grid.Grid      // read-only domain
	goal     grid.Cell       // target cell
	options  Options         // logger, progress stream
	frontier *Frontier       // pending (cell, cost) entries
	visited  *VisitedIndex   // best cost + parent per discovered cell
	nbuf     []grid.Neighbor // neighbor buffer reused across expansions
	phase    phase
	goalCost float64
	stats    Stats
}

// init registers the start cell at cost 0 and pushes it.
func (r *runner) init(start grid.Cell) {
	r.visited.RegisterStart(start)
	r.stats.Discovered++
	r.push(start, 0)
	r.nbuf = make([]grid.Neighbor, 0, 8)
	r.phase = phaseRunning
}

// process is the core loop. It runs until the goal is extracted, the frontier
// is empty, or ctx is done.
func (r *runner) process(ctx context.Context) {
	for r.phase == phaseRunning {
		// 1) Cancellation is checked once per iteration.
		if ctx.Err() != nil {
			r.phase = phaseCancelled
			return
		}

		// 2) Pop the cheapest entry; empty frontier means no path.
		u, d, ok := r.frontier.Pop()
		if !ok {
			r.phase = phaseExhausted
			return
		}

		// 3) Skip entries superseded by a later relaxation.
		best, _ := r.visited.BestCost(u)
		stale := d > best
		r.emit(u, d, stale)
		if stale {
			r.stats.Stale++
			continue
		}
		r.stats.Expanded++

		// 4) Goal extracted: its cost is final.
		if u == r.goal {
			r.goalCost = d
			r.phase = phaseFound
			return
		}

		// 5) Expand.
		r.expand(u, d)
	}
}

// expand relaxes or registers every neighbor of u, whose final cost is d.
func (r *runner) expand(u grid.Cell, d float64) {
	r.nbuf = r.g.AppendNeighbors(r.nbuf[:0], u)
	for _, n := range r.nbuf {
		candidate := d + n.Cost
		if r.visited.Contains(n.Cell) {
			if r.visited.Relax(n.Cell, candidate, u) {
				r.stats.Relaxed++
				r.push(n.Cell, candidate)
			}
			continue
		}
		r.visited.Register(n.Cell, candidate, u)
		r.stats.Discovered++
		r.push(n.Cell, candidate)
	}
}

func (r *runner) push(c grid.Cell, cost float64) {
	r.frontier.Push(c, cost)
	r.stats.Pushed++
	if n := r.frontier.Len(); n > r.stats.FrontierPeak {
		r.stats.FrontierPeak = n
	}
}

func (r *runner) emit(c grid.Cell, cost float64, stale bool) {
	if r.options.Progress == nil {
		return
	}
	r.options.Progress.emit(Event{
		Step:         r.stats.Expanded + r.stats.Stale + 1,
		Cell:         c,
		Cost:         cost,
		FrontierSize: r.frontier.Len(),
		Stale:        stale,
	})
}
