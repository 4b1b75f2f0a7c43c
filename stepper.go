package astar

import (
	"iter"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/pdrpinto/maze-astar/internal"
)

// Snapshot exposes the per-iteration state of the search. Every snapshot
// owns its slices and maps; changing them does not affect the Stepper.
type Snapshot struct {
	// Index is 0 for the initial state and counts loop iterations after that.
	Index int
	// Current is the cell popped during this iteration. Unset when Index is 0.
	Current  Cell
	Open     []Cell
	Closed   map[Cell]bool
	CameFrom map[Cell]Cell
	Done     bool
	Found    bool
}

// PathTo rebuilds the path ending at c from the snapshot's predecessor map.
func (snap Snapshot) PathTo(c Cell) []Cell {
	return internal.ReconstructPath(snap.CameFrom, c)
}

func (snap Snapshot) clone() Snapshot {
	c := snap
	c.Open = slices.Clone(snap.Open)
	c.Closed = maps.Clone(snap.Closed)
	c.CameFrom = maps.Clone(snap.CameFrom)
	return c
}

// Stepper runs the same search as Search but stops after every loop
// iteration and hands back a Snapshot. It holds no goroutines, so a
// partially consumed Stepper can simply be dropped.
//
// A Stepper is not safe for concurrent use.
type Stepper struct {
	options Options
	state   *searchState
	err     error
	began   time.Time

	stepCount int
	started   bool
	done      bool
	terminal  Snapshot
}

// NewStepper creates a stepper over grid from start to goal. It fails only
// on invalid options; unusable endpoints produce a single terminal snapshot
// and Err reports ErrInvalidEndpoint.
func NewStepper(
	grid *Grid,
	startNode Cell,
	goalNode Cell,
	options ...Option,
) (*Stepper, error) {
	opts, err := buildOptions(options)
	if err != nil {
		return nil, err
	}
	s := &Stepper{options: opts, began: time.Now()}
	if err := checkEndpoints(grid, startNode, goalNode); err != nil {
		s.err = err
		return s, nil
	}
	s.state = newSearchState(grid, startNode, goalNode, opts.Heuristic.Func())
	opts.Logger.Debug("stepper started",
		slog.String("start", startNode.String()),
		slog.String("goal", goalNode.String()),
		slog.String("heuristic", opts.Heuristic.String()),
		slog.Uint64("grid", grid.Fingerprint()),
	)
	return s, nil
}

// SteppedSearch is shorthand for NewStepper followed by Steps.
func SteppedSearch(grid *Grid, start, goal Cell, options ...Option) (iter.Seq[Snapshot], error) {
	s, err := NewStepper(grid, start, goal, options...)
	if err != nil {
		return nil, err
	}
	return s.Steps(), nil
}

// Step advances the search by one loop iteration and returns a snapshot.
// The first call returns the initial state without popping anything. Once
// the search is done every call returns a copy of the terminal snapshot.
func (s *Stepper) Step() Snapshot {
	if s.done {
		return s.terminal.clone()
	}
	if s.state == nil {
		return s.finish(Snapshot{Open: []Cell{}, Closed: map[Cell]bool{}, CameFrom: map[Cell]Cell{}}, resultInvalidEndpoint)
	}
	if !s.started {
		s.started = true
		return s.snapshot(Cell{})
	}

	current, outcome := s.state.iterate()
	s.stepCount++
	switch outcome {
	case outcomeGoal:
		snap := s.snapshot(current)
		snap.Open = []Cell{}
		snap.Found = true
		return s.finish(snap, resultFound)
	case outcomeExhausted:
		s.err = ErrNotFound
		return s.finish(s.snapshot(current), resultNotFound)
	}

	snap := s.snapshot(current)
	if s.state.openSet.Len() == 0 {
		s.err = ErrNotFound
		return s.finish(snap, resultNotFound)
	}
	return snap
}

// Steps returns a single-pass sequence over the remaining snapshots,
// ending with the terminal one.
func (s *Stepper) Steps() iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for !s.done {
			if !yield(s.Step()) {
				return
			}
		}
	}
}

// Done reports whether the terminal snapshot has been produced.
func (s *Stepper) Done() bool { return s.done }

// Found reports whether the search reached the goal.
func (s *Stepper) Found() bool { return s.done && s.terminal.Found }

// Err returns ErrInvalidEndpoint or ErrNotFound once the search has failed,
// and nil otherwise.
func (s *Stepper) Err() error {
	if !s.done {
		return nil
	}
	return s.err
}

func (s *Stepper) snapshot(current Cell) Snapshot {
	closed := make(map[Cell]bool, len(s.state.closedSet))
	for c := range s.state.closedSet {
		closed[c] = true
	}
	return Snapshot{
		Index:    s.stepCount,
		Current:  current,
		Open:     s.state.openSet.Cells(),
		Closed:   closed,
		CameFrom: maps.Clone(s.state.cameFrom),
	}
}

func (s *Stepper) finish(snap Snapshot, label string) Snapshot {
	snap.Done = true
	s.done = true
	s.terminal = snap.clone()

	expanded := 0
	if s.state != nil {
		expanded = s.state.expanded
	}
	duration := time.Since(s.began)
	s.options.Metrics.observe(s.options.Heuristic, label, expanded, duration)
	s.options.Logger.Debug("stepper finished",
		slog.String("result", label),
		slog.Int("steps", s.stepCount),
		slog.Int("expanded", expanded),
	)
	return snap
}
