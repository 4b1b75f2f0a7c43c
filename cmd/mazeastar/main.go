// Command mazeastar solves a grid maze with A* and prints the path.
//
// Without -scenario it solves the built-in 7x7 demo maze.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	astar "github.com/pdrpinto/maze-astar"
	"github.com/pdrpinto/maze-astar/internal/gridgen"
	"github.com/pdrpinto/maze-astar/render"
	"github.com/pdrpinto/maze-astar/scenario"
)

func main() {
	scenarioPath := flag.String("scenario", "", "path to a YAML scenario file (default: built-in demo maze)")
	heuristicName := flag.String("heuristic", "", "heuristic: manhattan (1) or euclidean (2); overrides the scenario")
	pngPath := flag.String("png", "", "write a PNG rendering of the result to this file")
	animate := flag.Bool("animate", false, "animate the search in the terminal")
	delay := flag.Duration("delay", 0, "pause between animation frames")
	randomSize := flag.String("random", "", "solve a random ROWSxCOLS grid instead of a scenario")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for -random")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, options{
		scenarioPath: *scenarioPath,
		heuristic:    *heuristicName,
		pngPath:      *pngPath,
		animate:      *animate,
		delay:        *delay,
		randomSize:   *randomSize,
		seed:         *seed,
		verbose:      *verbose,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	scenarioPath string
	heuristic    string
	pngPath      string
	animate      bool
	delay        time.Duration
	randomSize   string
	seed         int64
	verbose      bool
}

func run(ctx context.Context, opts options) error {
	sc, err := loadScenario(opts)
	if err != nil {
		return err
	}
	if opts.heuristic != "" {
		sc.Heuristic = opts.heuristic
	}
	if opts.pngPath != "" {
		sc.Render.PNG = opts.pngPath
	}
	if opts.animate {
		sc.Render.Animate = true
	}
	if opts.delay > 0 {
		sc.Render.Delay = opts.delay
	}
	if err := sc.Validate(); err != nil {
		return err
	}

	level, _ := sc.Logging.SlogLevel()
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	grid, err := sc.BuildGrid()
	if err != nil {
		return err
	}
	mode, _ := sc.HeuristicMode()
	start, goal := sc.Endpoints()
	logger.Info("solving", slog.String("scenario", sc.Name), slog.String("heuristic", mode.String()),
		slog.Int("rows", grid.Rows()), slog.Int("cols", grid.Cols()))

	if sc.Render.Animate {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			logger.Warn("stdout is not a terminal, skipping animation")
		} else if err := animateSearch(ctx, grid, start, goal, mode, sc.Render.Delay, logger); err != nil {
			return err
		}
	}

	result, err := astar.Search(ctx, grid, start, goal, astar.WithHeuristic(mode), astar.WithLogger(logger))
	if err != nil && !errors.Is(err, astar.ErrNotFound) {
		return err
	}
	if errors.Is(err, astar.ErrInvalidEndpoint) {
		logger.Warn("invalid endpoint", slog.String("error", err.Error()))
	}

	if err := render.WriteText(os.Stdout, grid, result.Path, start, goal); err != nil {
		return err
	}
	fmt.Printf("Expanded %s cells, %s queue pushes (%s stale)\n",
		humanize.Comma(int64(result.Expanded)), humanize.Comma(int64(result.Pushed)), humanize.Comma(int64(result.Stale)))

	if sc.Render.PNG != "" {
		if err := render.WritePNG(sc.Render.PNG, grid, result.Path, start, goal, sc.Render.Scale); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
		logger.Info("wrote image", slog.String("file", sc.Render.PNG))
	}
	return nil
}

func loadScenario(opts options) (*scenario.Scenario, error) {
	switch {
	case opts.randomSize != "":
		return randomScenario(opts.randomSize, opts.seed)
	case opts.scenarioPath != "":
		return scenario.Load(opts.scenarioPath)
	default:
		return scenario.Demo(), nil
	}
}

// randomScenario parses "ROWSxCOLS" and builds a clustered random grid.
func randomScenario(size string, seed int64) (*scenario.Scenario, error) {
	rowsText, colsText, ok := strings.Cut(strings.ToLower(size), "x")
	if !ok {
		return nil, fmt.Errorf("random size %q: want ROWSxCOLS", size)
	}
	rows, err := strconv.Atoi(rowsText)
	if err != nil {
		return nil, fmt.Errorf("random size %q: %w", size, err)
	}
	cols, err := strconv.Atoi(colsText)
	if err != nil {
		return nil, fmt.Errorf("random size %q: %w", size, err)
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("random size %q: must be at least 1x1", size)
	}

	cfg := gridgen.DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Seed = rows, cols, seed
	cfg.Steps = rows * cols / 4
	start, goal := gridgen.Endpoints(cfg)
	grid, err := gridgen.Generate(cfg, start, goal)
	if err != nil {
		return nil, err
	}

	sc := scenario.Demo()
	sc.Name = fmt.Sprintf("random-%d", seed)
	sc.Grid = make([]string, grid.Rows())
	for r := range sc.Grid {
		var b strings.Builder
		for c := 0; c < grid.Cols(); c++ {
			if grid.IsFree(astar.Cell{Row: r, Col: c}) {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		sc.Grid[r] = b.String()
	}
	sc.Start = [2]int{start.Row, start.Col}
	sc.Goal = [2]int{goal.Row, goal.Col}
	return sc, nil
}

func animateSearch(ctx context.Context, grid *astar.Grid, start, goal astar.Cell, mode astar.HeuristicMode, delay time.Duration, logger *slog.Logger) error {
	steps, err := astar.SteppedSearch(grid, start, goal, astar.WithHeuristic(mode), astar.WithLogger(logger))
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	last, err := render.NewAnimator(screen, grid, start, goal, delay).Run(ctx, steps)
	if err != nil {
		logger.Info("animation stopped", slog.Int("step", last.Index))
		return nil
	}
	// hold the final frame briefly
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
	}
	return nil
}
