package astar

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownHeuristic is returned by ParseHeuristicMode for names it does not recognise.
var ErrUnknownHeuristic = errors.New("unknown heuristic")

// HeuristicMode selects the distance estimator. The zero value is Manhattan.
type HeuristicMode uint8

const (
	Manhattan HeuristicMode = iota
	Euclidean
)

var heuristicNames = map[HeuristicMode]string{
	Manhattan: "manhattan",
	Euclidean: "euclidean",
}

func (m HeuristicMode) String() string {
	if name, ok := heuristicNames[m]; ok {
		return name
	}
	return fmt.Sprintf("HeuristicMode(%d)", uint8(m))
}

// ParseHeuristicMode resolves a heuristic by name (case-insensitive) or by
// its menu number ("1" manhattan, "2" euclidean). An empty string selects
// Manhattan.
func ParseHeuristicMode(name string) (HeuristicMode, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "", "1", "manhattan":
		return Manhattan, nil
	case "2", "euclidean":
		return Euclidean, nil
	}
	if hint := closestHeuristicName(key); hint != "" {
		return Manhattan, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownHeuristic, name, hint)
	}
	return Manhattan, fmt.Errorf("%w %q", ErrUnknownHeuristic, name)
}

// closestHeuristicName returns the known name within edit distance 3 of key.
func closestHeuristicName(key string) string {
	best, bestDist := "", 4
	for _, mode := range []HeuristicMode{Manhattan, Euclidean} {
		name := heuristicNames[mode]
		if d := levenshtein.ComputeDistance(key, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// Heuristic returns the estimated cost from one cell to another.
type Heuristic func(from, to Cell) float64

// Func returns the estimator for m. Unknown modes fall back to Manhattan.
func (m HeuristicMode) Func() Heuristic {
	if m == Euclidean {
		return euclidean
	}
	return manhattan
}

// Estimate returns the distance between a and b under mode.
func Estimate(a, b Cell, mode HeuristicMode) float64 {
	return mode.Func()(a, b)
}

func manhattan(a, b Cell) float64 {
	return float64(absInt(a.Row-b.Row) + absInt(a.Col-b.Col))
}

func euclidean(a, b Cell) float64 {
	return math.Hypot(float64(a.Row-b.Row), float64(a.Col-b.Col))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
