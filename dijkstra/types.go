// Package dijkstra defines core types and configuration options
// for uniform-cost grid search.
package dijkstra

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the search implementation.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrPreconditionViolation indicates that path reconstruction was invoked
	// for a goal without a complete parent chain in the VisitedIndex.
	// It always signals a caller bug, never a property of the input grid.
	ErrPreconditionViolation = errors.New("dijkstra: precondition violation")

	// ErrProgressClosed indicates that the Progress passed via WithProgress
	// already served another search. A stream is closed when its search
	// returns, so each Search needs its own.
	ErrProgressClosed = errors.New("dijkstra: progress stream already used")
)

// Status is the tagged result of a search.
type Status int

const (
	// StatusNotFound means the frontier was exhausted without reaching the goal.
	StatusNotFound Status = iota
	// StatusFound means the goal was reached; Path and TotalCost are set.
	StatusFound
	// StatusCancelled means the context was done before the search terminated.
	StatusCancelled
)

// String returns a lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusNotFound:
		return "not_found"
	case StatusFound:
		return "found"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Stats counts engine events over one search.
type Stats struct {
	Expanded     int // cells popped and expanded (including the goal pop)
	Stale        int // frontier pops skipped because a cheaper cost was recorded later
	Pushed       int // frontier insertions, including the start
	Discovered   int // VisitedIndex entries created, including the start
	Relaxed      int // successful relaxations of already-discovered cells
	FrontierPeak int // largest frontier size observed
}

// Outcome is the result of Search.
//
// Path runs from start to goal inclusive when Status == StatusFound and
// start != goal. For start == goal, Path is empty and TotalCost is 0.
type Outcome struct {
	Status    Status
	Path      []grid.Cell
	TotalCost float64
	Stats     Stats
}

// Found reports whether the outcome carries a path.
func (o Outcome) Found() bool { return o.Status == StatusFound }

// Options configures the behavior of Search.
//
// Logger   – receives debug lines at search start and termination.
// Progress – optional event stream; nil disables emission.
type Options struct {
	Logger   *log.Logger
	Progress *Progress
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithLogger routes engine debug logging to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("dijkstra: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithProgress attaches a progress stream. The engine closes it when the
// search returns, so a Progress serves exactly one Search call. Panics on nil.
func WithProgress(p *Progress) Option {
	if p == nil {
		panic("dijkstra: WithProgress(nil)")
	}
	return func(o *Options) {
		o.Progress = p
	}
}

// DefaultOptions returns options with a discarding logger and no progress stream.
func DefaultOptions() Options {
	return Options{
		Logger: log.New(io.Discard),
	}
}
