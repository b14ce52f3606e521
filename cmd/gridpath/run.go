package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/scenario"
)

var (
	flagConn     int
	flagDiagonal string
	flagTrace    bool
	flagTimeout  time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Search a scenario",
	Long: `Build the named scenario's grid and search it from its start to its goal.

Flags override the config file:
  --conn 4|8                     - force 4- or 8-directional moves
  --diagonal reference|euclidean - diagonal step cost 1.4 or sqrt(2)
  --trace                        - log every frontier extraction at debug level
  --timeout                      - cancel the search after this long

Examples:
  gridpath run empty
  gridpath run maze --diagonal euclidean
  gridpath run walls --conn 4 --trace --log-level debug`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagConn, "conn", 0, "Connectivity: 4 or 8 (default: scenario's own)")
	runCmd.Flags().StringVar(&flagDiagonal, "diagonal", "", "Diagonal cost: reference or euclidean")
	runCmd.Flags().BoolVar(&flagTrace, "trace", false, "Log progress events")
	runCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Search time limit (0 = none)")
}

func runRun(cmd *cobra.Command, args []string) {
	name := args[0]

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
	if cmd.Flags().Changed("conn") {
		cfg.Search.Connectivity = flagConn
	}
	if flagDiagonal != "" {
		cfg.Search.Diagonal = flagDiagonal
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Search.Timeout = flagTimeout
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
	logger := newLogger(cfg)

	s, err := scenario.Lookup(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'gridpath list' to see available scenarios.")
		os.Exit(exitError)
	}

	g, err := s.Build(cfg.Search.GridOptions()...)
	if err != nil {
		logger.Error("build scenario", "scenario", s.Name, "error", err)
		os.Exit(exitError)
	}
	logger.Info("grid ready",
		"scenario", s.Name, "size", fmt.Sprintf("%dx%d", g.Width, g.Height),
		"conn", g.Conn(), "diagonal", g.DiagonalCost(), "obstacles", len(g.Obstacles()))

	if code := searchScenario(logger, cfg, s, g); code != exitOK {
		os.Exit(code)
	}
}

// Process exit codes for run.
const (
	exitOK        = 0
	exitError     = 1
	exitCancelled = 2
	exitNotFound  = 3
)

// searchScenario runs the search and returns the process exit code.
// It returns instead of exiting so deferred cleanup runs.
func searchScenario(logger *log.Logger, cfg config.Config, s scenario.Scenario, g *grid.Grid) int {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if cfg.Search.Timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), cfg.Search.Timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	defer cancel()

	opts := []dijkstra.Option{dijkstra.WithLogger(logger)}
	var wg sync.WaitGroup
	if flagTrace && cfg.Search.ProgressBuffer > 0 {
		progress := dijkstra.NewProgress(cfg.Search.ProgressBuffer)
		opts = append(opts, dijkstra.WithProgress(progress))
		wg.Add(1)
		go func() {
			defer wg.Done()
			trace(logger, progress)
		}()
	}

	began := time.Now()
	out, err := dijkstra.Search(ctx, g, s.Start, s.Goal, opts...)
	elapsed := time.Since(began)
	wg.Wait()
	if err != nil {
		logger.Error("search failed", "scenario", s.Name, "error", err)
		return exitError
	}

	logger.Info("search finished",
		"scenario", s.Name,
		"status", out.Status,
		"cost", out.TotalCost,
		"steps", max(len(out.Path)-1, 0),
		"expanded", out.Stats.Expanded,
		"elapsed", elapsed)

	switch out.Status {
	case dijkstra.StatusFound:
		fmt.Printf("cost %.4g: %s\n", out.TotalCost, formatPath(out.Path))
	case dijkstra.StatusCancelled:
		logger.Warn("search cancelled before completion", "timeout", cfg.Search.Timeout)
	default:
		fmt.Printf("no path from %s to %s\n", s.Start, s.Goal)
	}
	return exitCode(out.Status)
}

// exitCode maps a search status to the process exit code.
func exitCode(st dijkstra.Status) int {
	switch st {
	case dijkstra.StatusFound:
		return exitOK
	case dijkstra.StatusCancelled:
		return exitCancelled
	default:
		return exitNotFound
	}
}

// trace drains progress until the search closes it.
func trace(logger *log.Logger, progress *dijkstra.Progress) {
	for ev := range progress.Events() {
		logger.Debug("pop",
			"step", ev.Step, "cell", ev.Cell, "cost", ev.Cost,
			"frontier", ev.FrontierSize, "stale", ev.Stale)
	}
	if n := progress.Dropped(); n > 0 {
		logger.Debug("progress events dropped", "count", n)
	}
}

func formatPath(path []grid.Cell) string {
	if len(path) == 0 {
		return "(already at goal)"
	}
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}
