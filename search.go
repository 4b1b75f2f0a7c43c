package astar

import (
	"container/heap"
	"fmt"
	"slices"
)

type iterationOutcome int

const (
	outcomeExpanded iterationOutcome = iota
	outcomeStale
	outcomeGoal
	outcomeExhausted
)

// searchState is the mutable bookkeeping of one A* run. Search and Stepper
// both drive it one loop iteration at a time.
type searchState struct {
	grid      *Grid
	goal      Cell
	heuristic Heuristic

	openSet   PriorityQueue
	gScore    map[Cell]float64
	cameFrom  map[Cell]Cell
	closedSet map[Cell]struct{}

	expanded int
	pushed   int
	stale    int
}

func newSearchState(grid *Grid, start, goal Cell, heuristic Heuristic) *searchState {
	s := &searchState{
		grid:      grid,
		goal:      goal,
		heuristic: heuristic,
		openSet:   make(PriorityQueue, 0, 16),
		gScore:    map[Cell]float64{start: 0},
		cameFrom:  make(map[Cell]Cell),
		closedSet: make(map[Cell]struct{}),
	}
	heap.Init(&s.openSet)
	s.push(start, 0)
	return s
}

func (s *searchState) push(c Cell, g float64) {
	heap.Push(&s.openSet, PriorityQueueItem{Cell: c, GScore: g, FCost: g + s.heuristic(c, s.goal)})
	s.pushed++
}

// iterate runs one pass of the main loop and returns the popped cell.
func (s *searchState) iterate() (Cell, iterationOutcome) {
	if s.openSet.Len() == 0 {
		return Cell{}, outcomeExhausted
	}
	current := heap.Pop(&s.openSet).(PriorityQueueItem).Cell

	if _, closed := s.closedSet[current]; closed {
		s.stale++
		return current, outcomeStale
	}
	if current == s.goal {
		return current, outcomeGoal
	}
	s.closedSet[current] = struct{}{}
	s.expanded++

	tentativeG := s.gScore[current] + 1
	for _, nb := range s.grid.Neighbors(current) {
		if known, ok := s.gScore[nb]; ok && known <= tentativeG {
			continue
		}
		s.cameFrom[nb] = current
		s.gScore[nb] = tentativeG
		s.push(nb, tentativeG)
	}
	return current, outcomeExpanded
}

// checkEndpoints rejects searches whose start or goal cannot be on a path.
func checkEndpoints(grid *Grid, start, goal Cell) error {
	if grid == nil {
		return ErrEmptyGrid
	}
	for _, endpoint := range []struct {
		name string
		cell Cell
	}{{"start", start}, {"goal", goal}} {
		if !grid.InBounds(endpoint.cell) {
			return fmt.Errorf("%w: %s %v outside %dx%d grid", ErrInvalidEndpoint, endpoint.name, endpoint.cell, grid.Rows(), grid.Cols())
		}
		if !grid.IsFree(endpoint.cell) {
			return fmt.Errorf("%w: %s %v is blocked", ErrInvalidEndpoint, endpoint.name, endpoint.cell)
		}
	}
	return nil
}

func sortCells(cells []Cell) {
	slices.SortFunc(cells, func(a, b Cell) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
}
