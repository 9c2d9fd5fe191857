package tui

import (
	"fmt"

	"github.com/1broseidon/winplace/internal/geometry"
	"github.com/1broseidon/winplace/internal/platform"
)

// RenderPlacement draws the display arrangement and, when window is non-nil,
// the window rectangle on a width×height character canvas.
func RenderPlacement(displays []platform.Display, window *geometry.Rect, width, height int) []string {
	if width < 5 || height < 3 {
		return emptyCanvas(max(width, 0), max(height, 0))
	}
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	if len(displays) > 0 {
		desk := desktopBounds(displays)
		for i, d := range displays {
			label := fmt.Sprintf("%d", i)
			if d.Primary {
				label += "*"
			}
			drawBox(canvas, project(d.Bounds, desk, width, height), label, '─', '│')
		}
		if window != nil {
			drawBox(canvas, project(*window, desk, width, height), "W", '━', '┃')
		}
	}

	lines := make([]string, height)
	for i, row := range canvas {
		lines[i] = string(row)
	}
	return lines
}

// desktopBounds returns the bounding box of all displays.
func desktopBounds(displays []platform.Display) geometry.Rect {
	x1, y1 := displays[0].Bounds.X, displays[0].Bounds.Y
	x2, y2 := x1+displays[0].Bounds.Width, y1+displays[0].Bounds.Height
	for _, d := range displays[1:] {
		x1 = min(x1, d.Bounds.X)
		y1 = min(y1, d.Bounds.Y)
		x2 = max(x2, d.Bounds.X+d.Bounds.Width)
		y2 = max(y2, d.Bounds.Y+d.Bounds.Height)
	}
	return geometry.Rect{X: x1, Y: y1, Width: max(x2-x1, 1), Height: max(y2-y1, 1)}
}

// project maps r from desktop coordinates to canvas cells.
func project(r, desk geometry.Rect, canvasW, canvasH int) geometry.Rect {
	x1 := (r.X - desk.X) * (canvasW - 1) / desk.Width
	y1 := (r.Y - desk.Y) * (canvasH - 1) / desk.Height
	x2 := (r.X + r.Width - desk.X) * (canvasW - 1) / desk.Width
	y2 := (r.Y + r.Height - desk.Y) * (canvasH - 1) / desk.Height
	return geometry.Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

func drawBox(canvas [][]rune, r geometry.Rect, label string, horiz, vert rune) {
	canvasH := len(canvas)
	canvasW := len(canvas[0])
	x1 := max(r.X, 0)
	y1 := max(r.Y, 0)
	x2 := min(r.X+r.Width, canvasW-1)
	y2 := min(r.Y+r.Height, canvasH-1)

	// Need at least 2x2 for a box
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x <= x2; x++ {
		canvas[y1][x] = horiz
		canvas[y2][x] = horiz
	}
	for y := y1; y <= y2; y++ {
		canvas[y][x1] = vert
		canvas[y][x2] = vert
	}

	if horiz == '─' {
		canvas[y1][x1], canvas[y1][x2] = '┌', '┐'
		canvas[y2][x1], canvas[y2][x2] = '└', '┘'
	} else {
		canvas[y1][x1], canvas[y1][x2] = '┏', '┓'
		canvas[y2][x1], canvas[y2][x2] = '┗', '┛'
	}

	centerY := (y1 + y2) / 2
	startX := (x1+x2)/2 - len(label)/2
	if centerY > y1 && centerY < y2 {
		for i, r := range label {
			if startX+i > x1 && startX+i < x2 {
				canvas[centerY][startX+i] = r
			}
		}
	}
}

func emptyCanvas(width, height int) []string {
	lines := make([]string, height)
	for i := range lines {
		row := make([]rune, width)
		for j := range row {
			row[j] = ' '
		}
		lines[i] = string(row)
	}
	return lines
}
