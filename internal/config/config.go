// Package config provides YAML-based configuration loading for the gridpath
// command.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Accepted values for SearchConfig.Diagonal.
const (
	DiagonalReference = "reference" // 1.4 per diagonal step
	DiagonalEuclidean = "euclidean" // √2 per diagonal step
)

// Config is the top-level configuration document.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Search SearchConfig `yaml:"search"`
}

// LogConfig controls the command's logger.
type LogConfig struct {
	Level     string `yaml:"level"` // debug, info, warn, error
	Timestamp bool   `yaml:"timestamp"`
}

// SearchConfig holds the defaults applied to every run.
type SearchConfig struct {
	Connectivity   int           `yaml:"connectivity"`    // 0 = scenario default, 4 or 8
	Diagonal       string        `yaml:"diagonal"`        // reference or euclidean
	ProgressBuffer int           `yaml:"progress_buffer"` // events buffered for --trace
	Timeout        time.Duration `yaml:"timeout"`         // 0 = no limit
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Search.Connectivity {
	case 0, 4, 8:
	default:
		return fmt.Errorf("%w: search.connectivity %d (want 4 or 8)", ErrInvalid, c.Search.Connectivity)
	}
	switch c.Search.Diagonal {
	case "", DiagonalReference, DiagonalEuclidean:
	default:
		return fmt.Errorf("%w: search.diagonal %q (want %s or %s)",
			ErrInvalid, c.Search.Diagonal, DiagonalReference, DiagonalEuclidean)
	}
	if c.Search.ProgressBuffer < 0 {
		return fmt.Errorf("%w: search.progress_buffer %d", ErrInvalid, c.Search.ProgressBuffer)
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("%w: search.timeout %s", ErrInvalid, c.Search.Timeout)
	}
	return nil
}

// LogLevel parses Log.Level. An empty level means info.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(c.Log.Level)
}

// GridOptions converts the search section into grid options. Connectivity 0
// contributes nothing, leaving the scenario's own choice in place.
func (s SearchConfig) GridOptions() []grid.Option {
	var opts []grid.Option
	switch s.Connectivity {
	case 4:
		opts = append(opts, grid.WithConnectivity(grid.Conn4))
	case 8:
		opts = append(opts, grid.WithConnectivity(grid.Conn8))
	}
	if s.Diagonal == DiagonalEuclidean {
		opts = append(opts, grid.WithEuclideanDiagonal())
	}
	return opts
}
