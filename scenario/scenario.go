// Package scenario loads search problems (grid, endpoints, heuristic and
// output settings) from YAML files.
package scenario

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode"

	"gopkg.in/yaml.v3"

	astar "github.com/pdrpinto/maze-astar"
)

// ErrInvalidScenario wraps every validation failure.
var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is one search problem.
type Scenario struct {
	Name string `yaml:"name"`
	// Grid rows use '0' or '.' for free cells and '1' or '#' for walls.
	// Whitespace inside a row is ignored.
	Grid      []string      `yaml:"grid"`
	Start     [2]int        `yaml:"start"`
	Goal      [2]int        `yaml:"goal"`
	Heuristic string        `yaml:"heuristic"`
	Render    RenderConfig  `yaml:"render"`
	Logging   LoggingConfig `yaml:"logging"`
}

// RenderConfig contains output settings
type RenderConfig struct {
	PNG     string        `yaml:"png"`
	Scale   int           `yaml:"scale"`
	Animate bool          `yaml:"animate"`
	Delay   time.Duration `yaml:"delay"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads and validates a scenario from a YAML file.
func Load(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML scenario. Missing render fields get
// defaults.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	sc.applyDefaults()
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *Scenario) applyDefaults() {
	if s.Render.Scale <= 0 {
		s.Render.Scale = 32
	}
	if s.Render.Delay <= 0 {
		s.Render.Delay = 60 * time.Millisecond
	}
}

// Validate checks the grid shape, heuristic name and log level. Blocked or
// out-of-bounds endpoints are left for the search to report.
func (s *Scenario) Validate() error {
	if _, err := s.BuildGrid(); err != nil {
		return err
	}
	if _, err := s.HeuristicMode(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if _, err := s.Logging.SlogLevel(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	return nil
}

// BuildGrid converts the textual rows into a Grid.
func (s *Scenario) BuildGrid() (*astar.Grid, error) {
	rows := make([][]astar.CellState, 0, len(s.Grid))
	for i, line := range s.Grid {
		row := make([]astar.CellState, 0, len(line))
		for _, ch := range line {
			switch {
			case unicode.IsSpace(ch):
			case ch == '0' || ch == '.':
				row = append(row, astar.Free)
			case ch == '1' || ch == '#':
				row = append(row, astar.Blocked)
			default:
				return nil, fmt.Errorf("%w: row %d: unexpected %q", ErrInvalidScenario, i, ch)
			}
		}
		rows = append(rows, row)
	}
	g, err := astar.NewGrid(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	return g, nil
}

// Endpoints returns the start and goal cells.
func (s *Scenario) Endpoints() (start, goal astar.Cell) {
	return astar.Cell{Row: s.Start[0], Col: s.Start[1]}, astar.Cell{Row: s.Goal[0], Col: s.Goal[1]}
}

// HeuristicMode resolves the configured heuristic name.
func (s *Scenario) HeuristicMode() (astar.HeuristicMode, error) {
	return astar.ParseHeuristicMode(s.Heuristic)
}

// SlogLevel parses Level; empty means info.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(l.Level) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging level: %w", err)
	}
	return level, nil
}

// Demo returns the built-in 7x7 maze with start (0,0) and goal (6,6).
func Demo() *Scenario {
	sc := &Scenario{
		Name: "demo",
		Grid: []string{
			"0000000",
			"0110110",
			"0100010",
			"0101010",
			"0001000",
			"0100010",
			"0001000",
		},
		Start:     [2]int{0, 0},
		Goal:      [2]int{6, 6},
		Heuristic: "manhattan",
	}
	sc.applyDefaults()
	return sc
}
