package astar_test

import (
	"strings"
	"testing"

	astar "github.com/pdrpinto/maze-astar"
)

// parseMap builds a grid from an ASCII map: '#' is blocked, anything else free.
func parseMap(t *testing.T, ascii string) *astar.Grid {
	t.Helper()
	var rows [][]astar.CellState
	for _, line := range strings.Split(strings.TrimSpace(ascii), "\n") {
		line = strings.TrimSpace(line)
		row := make([]astar.CellState, 0, len(line))
		for _, ch := range line {
			if ch == '#' {
				row = append(row, astar.Blocked)
			} else {
				row = append(row, astar.Free)
			}
		}
		rows = append(rows, row)
	}
	g, err := astar.NewGrid(rows)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

// bfsDistance is the shortest path edge count by breadth-first search, or -1.
func bfsDistance(g *astar.Grid, start, goal astar.Cell) int {
	if !g.IsFree(start) || !g.IsFree(goal) {
		return -1
	}
	dist := map[astar.Cell]int{start: 0}
	queue := []astar.Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return dist[cur]
		}
		for _, nb := range g.Neighbors(cur) {
			if _, seen := dist[nb]; !seen {
				dist[nb] = dist[cur] + 1
				queue = append(queue, nb)
			}
		}
	}
	return -1
}

// checkPath fails the test unless path is a valid walk from start to goal.
func checkPath(t *testing.T, g *astar.Grid, path []astar.Cell, start, goal astar.Cell) {
	t.Helper()
	if len(path) == 0 {
		t.Fatalf("empty path")
	}
	if path[0] != start {
		t.Errorf("path starts at %v, want %v", path[0], start)
	}
	if path[len(path)-1] != goal {
		t.Errorf("path ends at %v, want %v", path[len(path)-1], goal)
	}
	seen := make(map[astar.Cell]bool, len(path))
	for i, c := range path {
		if !g.IsFree(c) {
			t.Errorf("path[%d] = %v is not free", i, c)
		}
		if seen[c] {
			t.Errorf("path[%d] = %v repeats", i, c)
		}
		seen[c] = true
		if i == 0 {
			continue
		}
		prev := path[i-1]
		dr, dc := c.Row-prev.Row, c.Col-prev.Col
		if dr*dr+dc*dc != 1 {
			t.Errorf("path[%d] %v not adjacent to %v", i, c, prev)
		}
	}
}

// demoMaze is the 7x7 sample maze, start (0,0) and goal (6,6).
const demoMaze = `
.......
.##.##.
.#...#.
.#.#.#.
...#...
.#...#.
...#...`
