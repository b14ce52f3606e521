// Package scenario provides a registry of named search setups: map bounds,
// obstacle shapes, connectivity and default endpoints.
// The built-in presets register themselves in init().
package scenario

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/obstacle"
)

// ErrUnknownScenario is returned by Lookup for an unregistered name.
var ErrUnknownScenario = errors.New("scenario: unknown scenario")

// Scenario describes one map and its default search request.
type Scenario struct {
	Name   string
	Title  string
	Width  int
	Height int
	Conn   grid.Connectivity
	Start  grid.Cell
	Goal   grid.Cell
	Shapes []obstacle.Shape
}

// Obstacles rasterizes the scenario's shapes over its bounds.
func (s Scenario) Obstacles() ([]grid.Cell, error) {
	cells, err := obstacle.Rasterize(s.Width, s.Height, s.Shapes...)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return cells, nil
}

// Build constructs the scenario's grid. opts are applied after the
// scenario's own connectivity and obstacles, so callers can override
// connectivity or the diagonal cost.
func (s Scenario) Build(opts ...grid.Option) (*grid.Grid, error) {
	cells, err := s.Obstacles()
	if err != nil {
		return nil, err
	}
	base := []grid.Option{grid.WithConnectivity(s.Conn), grid.WithObstacles(cells...)}
	g, err := grid.New(s.Width, s.Height, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return g, nil
}

var (
	registry = make(map[string]Scenario)
	mu       sync.RWMutex
)

// Register adds s to the registry.
// Panics if the name is empty or already registered.
func Register(s Scenario) {
	mu.Lock()
	defer mu.Unlock()

	if s.Name == "" {
		panic("scenario: Register with empty name")
	}
	if _, exists := registry[s.Name]; exists {
		panic(fmt.Sprintf("scenario: %q already registered", s.Name))
	}
	registry[s.Name] = s
}

// Lookup returns the scenario registered under name.
func Lookup(name string) (Scenario, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := registry[name]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}
	return s, nil
}

// List returns all registered scenarios sorted by name.
func List() []Scenario {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Scenario, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
