package config

import (
	_ "embed"
)

//go:embed defaults/gridpath.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:     "info",
			Timestamp: true,
		},
		Search: SearchConfig{
			Connectivity:   0,
			Diagonal:       DiagonalReference,
			ProgressBuffer: 64,
			Timeout:        0,
		},
	}
}
