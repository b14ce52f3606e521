// gridpath runs uniform-cost searches over the built-in grid scenarios.
//
// Usage:
//
//	gridpath list              - List available scenarios
//	gridpath run <scenario>    - Search a scenario and print the path
//
// Global flags:
//
//	--config <path>     - Config YAML (default: ~/.gridpath/configs/gridpath.yaml)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridpath",
	Short: "gridpath - shortest paths on obstacle grids",
	Long: `gridpath runs Dijkstra's uniform-cost search on small 2D grid maps
and prints the cheapest path between the scenario's start and goal.

Available commands:
  list  - Show all built-in scenarios
  run   - Search a scenario

Examples:
  gridpath list
  gridpath run maze
  gridpath run walls --conn 4 --log-level debug
  gridpath run circles --diagonal euclidean --trace`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
}

// loadConfig resolves the configuration and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger builds the command logger from cfg.
func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: cfg.Log.Timestamp,
		Prefix:          "gridpath",
	})
	if lvl, err := cfg.LogLevel(); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}
