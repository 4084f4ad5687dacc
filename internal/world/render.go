package world

import (
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/element"
)

// Screen layout: one HUD row and a separator above the grid. Every grid
// cell is two characters wide so the board looks square in a terminal.
const (
	hudHeight = 2
	cellWidth = 2
)

// MinScreen returns the smallest screen that fits a grid of the given size.
func MinScreen(gridSize int) (w, h int) {
	return gridSize * cellWidth, gridSize + hudHeight
}

// Render draws the snapshot onto dst with hud as the status line. Cell
// colors are fills; text sits on the background color and the front-end
// picks a readable foreground.
func (s Snapshot) Render(dst *core.Screen, hud string) {
	dst.Clear()
	dst.DrawText(0, 0, hud, core.Background)
	for x := range dst.Width() {
		dst.Set(x, 1, '─', core.Background)
	}

	minW, minH := MinScreen(s.GridSize)
	if dst.Width() < minW || dst.Height() < minH {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	offX := (dst.Width() - minW) / 2
	offY := hudHeight
	cell := func(p core.Point, r rune, c core.Color) {
		if !p.InBounds(s.GridSize) {
			return
		}
		x := offX + p.X*cellWidth
		dst.Set(x, offY+p.Y, r, c)
		dst.Set(x+1, offY+p.Y, ' ', c)
	}

	for y := 0; y < s.GridSize; y++ {
		for x := 0; x < s.GridSize; x++ {
			cell(core.Point{X: x, Y: y}, ' ', core.Background)
		}
	}

	for _, o := range s.Objects {
		glyph := o.Kind.Glyph()
		if o.Armed {
			glyph = 'X'
		}
		cell(o.Cell, glyph, o.Color)
	}
	if s.Food.Visibility != element.Hidden {
		cell(s.Food.Cell, s.Food.Kind.Glyph(), s.Food.Color)
	}

	for _, seg := range s.Snake.Body {
		cell(seg, 'o', s.Snake.BodyColor)
	}
	cell(s.Snake.Head, 'O', s.Snake.HeadColor)

	switch {
	case !s.Snake.Alive:
		renderOverlay(dst, "Game Over", "Press R to restart")
	case s.Paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+', core.Background)
			case isTopOrBottom:
				dst.Set(x, y, '-', core.Background)
			case isLeftOrRight:
				dst.Set(x, y, '|', core.Background)
			default:
				dst.Set(x, y, ' ', core.Background)
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1, core.Background)
	dst.DrawTextCentered(boxY+3, line2, core.Background)
}
