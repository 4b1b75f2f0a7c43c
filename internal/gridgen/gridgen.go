// Package gridgen builds random grids with clustered walls.
package gridgen

import (
	"fmt"
	"math/rand"

	astar "github.com/pdrpinto/maze-astar"
)

// Config controls wall generation. Walls are laid by Clusters random walks
// of Steps moves each; every visited cell becomes a wall with probability
// Density.
type Config struct {
	Rows     int
	Cols     int
	Clusters int
	Steps    int
	Density  float64
	Seed     int64
}

// DefaultConfig matches the web visualizer's defaults.
func DefaultConfig() Config {
	return Config{Rows: 24, Cols: 40, Clusters: 8, Steps: 200, Density: 0.25, Seed: 1}
}

func (c Config) validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("gridgen: size %dx%d must be at least 1x1", c.Rows, c.Cols)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("gridgen: density %v outside [0,1]", c.Density)
	}
	if c.Clusters < 0 || c.Steps < 0 {
		return fmt.Errorf("gridgen: clusters and steps must be non-negative")
	}
	return nil
}

var walkDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Generate returns a grid with clustered random walls. Cells listed in
// keepFree are never blocked. The same Config always yields the same grid.
func Generate(cfg Config, keepFree ...astar.Cell) (*astar.Grid, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	r := rand.New(rand.NewSource(cfg.Seed))
	rows := make([][]astar.CellState, cfg.Rows)
	for i := range rows {
		rows[i] = make([]astar.CellState, cfg.Cols)
	}

	for c := 0; c < cfg.Clusters; c++ {
		row, col := r.Intn(cfg.Rows), r.Intn(cfg.Cols)
		for s := 0; s < cfg.Steps; s++ {
			if r.Float64() < cfg.Density {
				rows[row][col] = astar.Blocked
			}
			d := walkDirs[r.Intn(len(walkDirs))]
			nr, nc := row+d[0], col+d[1]
			if nr >= 0 && nr < cfg.Rows && nc >= 0 && nc < cfg.Cols {
				row, col = nr, nc
			}
		}
	}
	for _, keep := range keepFree {
		if keep.Row >= 0 && keep.Row < cfg.Rows && keep.Col >= 0 && keep.Col < cfg.Cols {
			rows[keep.Row][keep.Col] = astar.Free
		}
	}
	return astar.NewGrid(rows)
}

// Endpoints picks a distinct start and goal from the seeded source when the
// grid has more than one cell.
func Endpoints(cfg Config) (start, goal astar.Cell) {
	r := rand.New(rand.NewSource(cfg.Seed ^ 0x5eed))
	start = astar.Cell{Row: r.Intn(cfg.Rows), Col: r.Intn(cfg.Cols)}
	goal = start
	for tries := 0; goal == start && cfg.Rows*cfg.Cols > 1 && tries < 64; tries++ {
		goal = astar.Cell{Row: r.Intn(cfg.Rows), Col: r.Intn(cfg.Cols)}
	}
	return start, goal
}
