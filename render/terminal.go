package render

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	astar "github.com/pdrpinto/maze-astar"
)

// Terminal glyphs for snapshot frames.
const (
	GlyphOpen    = '+'
	GlyphClosed  = '-'
	GlyphCurrent = '@'
	GlyphStart   = 'S'
	GlyphGoal    = 'G'
)

var (
	styleBase    = tcell.StyleDefault
	styleBlocked = styleBase.Foreground(tcell.ColorGray)
	styleOpen    = styleBase.Foreground(tcell.ColorYellow)
	styleClosed  = styleBase.Foreground(tcell.ColorTeal)
	stylePath    = styleBase.Foreground(tcell.ColorHotPink).Bold(true)
	styleMarker  = styleBase.Foreground(tcell.ColorGreen).Bold(true)
)

// Animator draws Stepper snapshots onto a tcell screen, one cell per
// character, with a status line underneath the grid.
type Animator struct {
	screen tcell.Screen
	grid   *astar.Grid
	start  astar.Cell
	goal   astar.Cell
	delay  time.Duration
}

// NewAnimator returns an animator that pauses delay between frames.
func NewAnimator(screen tcell.Screen, g *astar.Grid, start, goal astar.Cell, delay time.Duration) *Animator {
	return &Animator{screen: screen, grid: g, start: start, goal: goal, delay: delay}
}

// Draw renders one snapshot. When the snapshot is terminal and found, the
// path rebuilt from its predecessor map is highlighted.
func (a *Animator) Draw(snap astar.Snapshot) {
	a.screen.Clear()
	open := make(map[astar.Cell]bool, len(snap.Open))
	for _, c := range snap.Open {
		open[c] = true
	}
	onPath := map[astar.Cell]bool{}
	if snap.Done && snap.Found {
		for _, c := range snap.PathTo(a.goal) {
			onPath[c] = true
		}
	}

	for r := 0; r < a.grid.Rows(); r++ {
		for c := 0; c < a.grid.Cols(); c++ {
			cell := astar.Cell{Row: r, Col: c}
			ch, style := rune(glyphFree), styleBase
			switch {
			case cell == a.start:
				ch, style = GlyphStart, styleMarker
			case cell == a.goal:
				ch, style = GlyphGoal, styleMarker
			case !a.grid.IsFree(cell):
				ch, style = glyphBlocked, styleBlocked
			case onPath[cell]:
				ch, style = glyphPath, stylePath
			case snap.Index > 0 && !snap.Done && cell == snap.Current:
				ch, style = GlyphCurrent, stylePath
			case open[cell]:
				ch, style = GlyphOpen, styleOpen
			case snap.Closed[cell]:
				ch, style = GlyphClosed, styleClosed
			}
			a.screen.SetContent(c, r, ch, nil, style)
		}
	}
	a.drawStatus(a.grid.Rows()+1, statusLine(snap))
	a.screen.Show()
}

func statusLine(snap astar.Snapshot) string {
	line := fmt.Sprintf("step %s  open %s  closed %s",
		humanize.Comma(int64(snap.Index)),
		humanize.Comma(int64(len(snap.Open))),
		humanize.Comma(int64(len(snap.Closed))))
	switch {
	case snap.Done && snap.Found:
		line += "  goal reached"
	case snap.Done:
		line += "  unreachable"
	}
	return line
}

func (a *Animator) drawStatus(row int, text string) {
	for i, ch := range []rune(text) {
		a.screen.SetContent(i, row, ch, nil, styleBase)
	}
}

// Run draws every snapshot from steps, waiting the animator's delay
// between frames. It stops early when ctx is cancelled or the user presses
// Esc, q or Ctrl-C, and returns the last snapshot drawn.
func (a *Animator) Run(ctx context.Context, steps iter.Seq[astar.Snapshot]) (astar.Snapshot, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.watchKeys(ctx, cancel)

	var last astar.Snapshot
	for snap := range steps {
		last = snap
		a.Draw(snap)
		if snap.Done {
			break
		}
		timer := time.NewTimer(a.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return last, ctx.Err()
		case <-timer.C:
		}
	}
	return last, nil
}

func (a *Animator) watchKeys(ctx context.Context, cancel context.CancelFunc) {
	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if key, isKey := ev.(*tcell.EventKey); isKey {
				if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC || key.Rune() == 'q' {
					cancel()
					return
				}
			}
		}
	}
}
