// Package render draws grids, paths and search snapshots as text, PNG
// images and animated terminal frames. Nothing here affects search results.
package render

import (
	"bufio"
	"fmt"
	"io"

	astar "github.com/pdrpinto/maze-astar"
)

const (
	glyphFree    = '.'
	glyphBlocked = '#'
	glyphPath    = 'o'
)

// WriteText prints the grid with path cells (other than start and goal)
// marked, then a summary: the start and goal, and the path length in steps
// or an unreachable notice when path is empty.
func WriteText(w io.Writer, g *astar.Grid, path []astar.Cell, start, goal astar.Cell) error {
	onPath := make(map[astar.Cell]bool, len(path))
	for _, c := range path {
		if c != start && c != goal {
			onPath[c] = true
		}
	}

	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := astar.Cell{Row: r, Col: c}
			switch {
			case onPath[cell]:
				bw.WriteByte(glyphPath)
			case g.IsFree(cell):
				bw.WriteByte(glyphFree)
			default:
				bw.WriteByte(glyphBlocked)
			}
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "Start: (%d, %d), Goal: (%d, %d)\n", start.Row, start.Col, goal.Row, goal.Col)
	if len(path) > 0 {
		fmt.Fprintf(bw, "Path length: %d\n", len(path)-1)
	} else {
		fmt.Fprintln(bw, "No path found (unreachable).")
	}
	return bw.Flush()
}
