package astar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pdrpinto/maze-astar/internal"
)

var (
	// ErrNotFound is returned when the goal cannot be reached from the start.
	ErrNotFound = errors.New("no path found")
	// ErrInvalidEndpoint is returned when start or goal is out of bounds or
	// blocked. It wraps ErrNotFound: an invalid endpoint is also unreachable.
	ErrInvalidEndpoint = fmt.Errorf("%w: invalid endpoint", ErrNotFound)
)

// Result contains the outcome of a search
type Result struct {
	Path []Cell
	// Length is the number of steps on Path, len(Path)-1.
	Length   int
	Expanded int
	Pushed   int
	Stale    int
	Found    bool
}

// Options defines parameters for the search.
type Options struct {
	Heuristic HeuristicMode
	Logger    *slog.Logger
	Metrics   *Metrics
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic selects the distance estimator. Default: Manhattan.
func WithHeuristic(mode HeuristicMode) Option {
	return func(options *Options) { options.Heuristic = mode }
}

// WithLogger sets the logger used for debug records about each search.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithMetrics records search outcomes into m.
func WithMetrics(m *Metrics) Option {
	return func(options *Options) { options.Metrics = m }
}

func buildOptions(options []Option) (Options, error) {
	searchOptions := Options{Heuristic: Manhattan}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.New(slog.DiscardHandler)
	}
	if _, ok := heuristicNames[searchOptions.Heuristic]; !ok {
		return searchOptions, fmt.Errorf("%w: %v", ErrUnknownHeuristic, searchOptions.Heuristic)
	}
	return searchOptions, nil
}

// Search runs A* from start to goal over grid with unit step cost and
// returns the shortest path. It returns ErrInvalidEndpoint without searching
// when either endpoint is blocked or out of bounds, and ErrNotFound when the
// goal is unreachable. The context is checked once per expansion.
func Search(
	contextObject context.Context,
	grid *Grid,
	start Cell,
	goal Cell,
	options ...Option,
) (Result, error) {
	searchOptions, err := buildOptions(options)
	if err != nil {
		return Result{}, err
	}
	logger := searchOptions.Logger
	began := time.Now()

	if err := checkEndpoints(grid, start, goal); err != nil {
		searchOptions.Metrics.observe(searchOptions.Heuristic, resultInvalidEndpoint, 0, time.Since(began))
		logger.Debug("search rejected", slog.String("reason", err.Error()))
		return Result{}, err
	}

	logger.Debug("search started",
		slog.String("start", start.String()),
		slog.String("goal", goal.String()),
		slog.String("heuristic", searchOptions.Heuristic.String()),
		slog.Uint64("grid", grid.Fingerprint()),
	)

	state := newSearchState(grid, start, goal, searchOptions.Heuristic.Func())
	finish := func(label string, length int) {
		duration := time.Since(began)
		searchOptions.Metrics.observe(searchOptions.Heuristic, label, state.expanded, duration)
		logger.Debug("search finished",
			slog.String("result", label),
			slog.Int("expanded", state.expanded),
			slog.Int("length", length),
			slog.Duration("duration", duration),
		)
	}

	for {
		if err := contextObject.Err(); err != nil {
			finish(resultCancelled, 0)
			return Result{Expanded: state.expanded, Pushed: state.pushed, Stale: state.stale}, fmt.Errorf("search cancelled: %w", err)
		}

		current, outcome := state.iterate()
		switch outcome {
		case outcomeGoal:
			path := internal.ReconstructPath(state.cameFrom, current)
			result := Result{
				Path:     path,
				Length:   len(path) - 1,
				Expanded: state.expanded,
				Pushed:   state.pushed,
				Stale:    state.stale,
				Found:    true,
			}
			finish(resultFound, result.Length)
			return result, nil
		case outcomeExhausted:
			finish(resultNotFound, 0)
			return Result{Expanded: state.expanded, Pushed: state.pushed, Stale: state.stale}, ErrNotFound
		}
	}
}

// ReconstructPath walks cameFrom backward from current to the cell with no
// recorded predecessor and returns the cells in forward order.
func ReconstructPath(cameFrom map[Cell]Cell, current Cell) []Cell {
	return internal.ReconstructPath(cameFrom, current)
}
