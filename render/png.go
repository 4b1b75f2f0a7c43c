package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	astar "github.com/pdrpinto/maze-astar"
)

var (
	colorFree    = color.White
	colorBlocked = color.RGBA{204, 204, 204, 255}
	colorPath    = color.RGBA{31, 119, 180, 255}
	colorStart   = color.RGBA{0, 160, 0, 255}
	colorGoal    = color.RGBA{220, 0, 0, 255}
)

// Image draws the grid with scale pixels per cell, the path as a line
// through cell centres, and square markers on start and goal.
func Image(g *astar.Grid, path []astar.Cell, start, goal astar.Cell, scale int) (image.Image, error) {
	if scale < 1 {
		return nil, fmt.Errorf("render: scale %d must be positive", scale)
	}
	dc := gg.NewContext(g.Cols()*scale, g.Rows()*scale)
	dc.SetColor(colorFree)
	dc.Clear()

	s := float64(scale)
	dc.SetColor(colorBlocked)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if !g.IsFree(astar.Cell{Row: r, Col: c}) {
				dc.DrawRectangle(float64(c)*s, float64(r)*s, s, s)
			}
		}
	}
	dc.Fill()

	centre := func(c astar.Cell) (float64, float64) {
		return float64(c.Col)*s + s/2, float64(c.Row)*s + s/2
	}
	if len(path) > 1 {
		dc.SetColor(colorPath)
		dc.SetLineWidth(s / 4)
		dc.MoveTo(centre(path[0]))
		for _, c := range path[1:] {
			dc.LineTo(centre(c))
		}
		dc.Stroke()
	}
	for _, marker := range []struct {
		cell astar.Cell
		col  color.Color
	}{{start, colorStart}, {goal, colorGoal}} {
		x, y := centre(marker.cell)
		dc.SetColor(marker.col)
		dc.DrawRectangle(x-s/3, y-s/3, 2*s/3, 2*s/3)
		dc.Fill()
	}
	return dc.Image(), nil
}

// WritePNG renders like Image and saves the result to filename.
func WritePNG(filename string, g *astar.Grid, path []astar.Cell, start, goal astar.Cell, scale int) error {
	img, err := Image(g, path, start, goal, scale)
	if err != nil {
		return err
	}
	return gg.SavePNG(filename, img)
}
