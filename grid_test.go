package astar_test

import (
	"errors"
	"reflect"
	"testing"

	astar "github.com/pdrpinto/maze-astar"
)

func TestNewGridRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want error
	}{
		{"no rows", nil, astar.ErrEmptyGrid},
		{"empty row", [][]int{{}}, astar.ErrEmptyGrid},
		{"ragged", [][]int{{0, 0}, {0}}, astar.ErrMalformedGrid},
		{"bad value", [][]int{{0, 2}}, astar.ErrMalformedGrid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := astar.GridFromInts(tt.rows)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if !errors.Is(astar.ErrEmptyGrid, astar.ErrMalformedGrid) {
		t.Errorf("ErrEmptyGrid should wrap ErrMalformedGrid")
	}
}

func TestGridCopiesInput(t *testing.T) {
	rows := [][]astar.CellState{{astar.Free, astar.Free}}
	g, err := astar.NewGrid(rows)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	rows[0][1] = astar.Blocked
	if !g.IsFree(astar.Cell{Row: 0, Col: 1}) {
		t.Fatalf("grid changed after caller mutated its input")
	}
}

func TestGridStateAndBounds(t *testing.T) {
	g, err := astar.GridFromInts([][]int{
		{0, 1, 0},
		{0, 0, 0},
	})
	if err != nil {
		t.Fatalf("GridFromInts: %v", err)
	}
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("size = %dx%d, want 2x3", g.Rows(), g.Cols())
	}
	tests := []struct {
		cell     astar.Cell
		inBounds bool
		state    astar.CellState
	}{
		{astar.Cell{Row: 0, Col: 0}, true, astar.Free},
		{astar.Cell{Row: 0, Col: 1}, true, astar.Blocked},
		{astar.Cell{Row: 1, Col: 2}, true, astar.Free},
		{astar.Cell{Row: -1, Col: 0}, false, astar.Blocked},
		{astar.Cell{Row: 2, Col: 0}, false, astar.Blocked},
		{astar.Cell{Row: 0, Col: 3}, false, astar.Blocked},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.cell); got != tt.inBounds {
			t.Errorf("InBounds(%v) = %v, want %v", tt.cell, got, tt.inBounds)
		}
		if got := g.State(tt.cell); got != tt.state {
			t.Errorf("State(%v) = %v, want %v", tt.cell, got, tt.state)
		}
	}
}

func TestNeighborsOrderAndFiltering(t *testing.T) {
	g := parseMap(t, `
...
.#.
...`)
	tests := []struct {
		name string
		cell astar.Cell
		want []astar.Cell
	}{
		{"corner", astar.Cell{Row: 0, Col: 0}, []astar.Cell{{Row: 1, Col: 0}, {Row: 0, Col: 1}}},
		{"edge next to wall", astar.Cell{Row: 0, Col: 1}, []astar.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 2}}},
		{"all four order", astar.Cell{Row: 1, Col: 1}, []astar.Cell{{Row: 0, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}}},
		{"bottom right", astar.Cell{Row: 2, Col: 2}, []astar.Cell{{Row: 1, Col: 2}, {Row: 2, Col: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Neighbors(tt.cell)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Neighbors(%v) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestNeighborsIsolatedCell(t *testing.T) {
	g := parseMap(t, `
#.#
#.#
###`)
	if got := g.Neighbors(astar.Cell{Row: 1, Col: 1}); len(got) != 1 {
		t.Fatalf("Neighbors = %v, want only (0,1)", got)
	}
	single := parseMap(t, ".")
	if got := single.Neighbors(astar.Cell{}); len(got) != 0 {
		t.Fatalf("1x1 grid neighbors = %v, want none", got)
	}
}

func TestCellLess(t *testing.T) {
	a := astar.Cell{Row: 0, Col: 5}
	b := astar.Cell{Row: 1, Col: 0}
	c := astar.Cell{Row: 1, Col: 2}
	if !a.Less(b) || !b.Less(c) || c.Less(a) || a.Less(a) {
		t.Fatalf("Cell.Less is not row-major")
	}
}

func TestFingerprint(t *testing.T) {
	a := parseMap(t, "..#\n...")
	b := parseMap(t, "..#\n...")
	c := parseMap(t, "...\n..#")
	d := parseMap(t, "..#...")
	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("equal grids hash differently")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Errorf("different contents share a fingerprint")
	}
	if a.Fingerprint() == d.Fingerprint() {
		t.Errorf("different shapes share a fingerprint")
	}
}
