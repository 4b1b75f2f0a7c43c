package astar

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/zeebo/xxh3"
)

var (
	// ErrMalformedGrid is returned when grid rows have unequal length.
	ErrMalformedGrid = errors.New("malformed grid")
	// ErrEmptyGrid is returned for a grid with no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must be at least 1x1", ErrMalformedGrid)
)

// CellState is the occupancy of a single grid position.
type CellState uint8

const (
	Free CellState = iota
	Blocked
)

func (s CellState) String() string {
	switch s {
	case Free:
		return "free"
	case Blocked:
		return "blocked"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Cell is a 0-indexed (row, column) position.
type Cell struct {
	Row int
	Col int
}

// Less orders cells by row, then column.
func (c Cell) Less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// up, down, left, right
var cardinalOffsets = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an immutable rectangular matrix of cell states.
// A *Grid may be shared by concurrent searches.
type Grid struct {
	rows  int
	cols  int
	cells []CellState
}

// NewGrid copies rows into a new Grid. Every row must have the same
// non-zero length.
func NewGrid(rows [][]CellState) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(rows[0])
	g := &Grid{rows: len(rows), cols: cols, cells: make([]CellState, 0, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, i, len(row), cols)
		}
		for j, s := range row {
			if s != Free && s != Blocked {
				return nil, fmt.Errorf("%w: invalid state %d at (%d,%d)", ErrMalformedGrid, s, i, j)
			}
		}
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// GridFromInts builds a Grid from a 0/1 matrix where 0 is free and 1 is blocked.
func GridFromInts(rows [][]int) (*Grid, error) {
	states := make([][]CellState, len(rows))
	for i, row := range rows {
		states[i] = make([]CellState, len(row))
		for j, v := range row {
			switch v {
			case 0:
				states[i][j] = Free
			case 1:
				states[i][j] = Blocked
			default:
				return nil, fmt.Errorf("%w: value %d at (%d,%d), want 0 or 1", ErrMalformedGrid, v, i, j)
			}
		}
	}
	return NewGrid(states)
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// State returns the state of c. Out of bounds cells report Blocked.
func (g *Grid) State(c Cell) CellState {
	if !g.InBounds(c) {
		return Blocked
	}
	return g.cells[c.Row*g.cols+c.Col]
}

// IsFree reports whether c is inside the grid and passable.
func (g *Grid) IsFree(c Cell) bool { return g.State(c) == Free }

// Neighbors returns the passable cardinal neighbors of c in the order
// up, down, left, right.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(cardinalOffsets))
	for _, d := range cardinalOffsets {
		nb := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if g.IsFree(nb) {
			out = append(out, nb)
		}
	}
	return out
}

// Fingerprint hashes the grid dimensions and contents. Equal grids have
// equal fingerprints; it is used to correlate log records and snapshots.
func (g *Grid) Fingerprint() uint64 {
	buf := make([]byte, 16, 16+len(g.cells))
	binary.LittleEndian.PutUint64(buf[0:8], uint64(g.rows))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(g.cols))
	for _, s := range g.cells {
		buf = append(buf, byte(s))
	}
	return xxh3.Hash(buf)
}
