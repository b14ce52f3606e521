package dijkstra

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/gridpath/grid"
)

// Event describes one frontier extraction.
type Event struct {
	Step         int       // 1-based extraction counter
	Cell         grid.Cell // extracted cell
	Cost         float64   // cost carried by the extracted entry
	FrontierSize int       // entries left in the frontier after the pop
	Stale        bool      // entry was skipped without expansion
}

// Progress is a bounded event stream from a running search to an observer.
// When the buffer is full the oldest pending event is dropped, so the
// engine never waits for the consumer. The channel returned by Events is
// closed when the search returns. A Progress serves exactly one Search;
// passing it to another yields ErrProgressClosed.
type Progress struct {
	ch        chan Event
	dropped   atomic.Uint64
	claimed   atomic.Bool
	closeOnce sync.Once
}

// NewProgress returns a stream buffering up to size events. Panics if size < 1.
func NewProgress(size int) *Progress {
	if size < 1 {
		panic(fmt.Sprintf("dijkstra: NewProgress(%d): size must be at least 1", size))
	}
	return &Progress{ch: make(chan Event, size)}
}

// Events returns the receive side of the stream.
func (p *Progress) Events() <-chan Event { return p.ch }

// Dropped returns how many events were discarded because the buffer was full.
func (p *Progress) Dropped() uint64 { return p.dropped.Load() }

// emit delivers e without blocking. The engine is the only sender, so after
// evicting one event there is room for e; the loop runs at most twice.
func (p *Progress) emit(e Event) {
	for {
		select {
		case p.ch <- e:
			return
		default:
		}
		select {
		case <-p.ch:
			p.dropped.Add(1)
		default:
		}
	}
}

// claim marks p as owned by one search. It reports false if p was claimed before.
func (p *Progress) claim() bool {
	return p.claimed.CompareAndSwap(false, true)
}

func (p *Progress) close() {
	p.closeOnce.Do(func() { close(p.ch) })
}
