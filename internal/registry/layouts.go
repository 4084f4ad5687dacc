package registry

import "github.com/vovakirdan/gridsnake/internal/core"

func init() {
	Register("perimeter", "walls along every edge with a gap in the middle of each side", Perimeter)
	Register("box", "closed walls along every edge; the snake cannot wrap", Box)
	Register("open", "no walls; the board wraps on every edge", Open)
}

// Perimeter lines all four edges, leaving a centered gap of roughly 40% of
// the side so the snake can pass through and wrap around.
func Perimeter(size int) []core.Point {
	last := size - 1
	mid := last / 2
	halfGap := last / 5

	inGap := func(v int) bool {
		return v >= mid-halfGap && v <= mid+halfGap
	}

	var cells []core.Point
	for x := 0; x <= last; x++ {
		if inGap(x) {
			continue
		}
		cells = append(cells, core.Point{X: x, Y: 0}, core.Point{X: x, Y: last})
	}
	for y := 0; y <= last; y++ {
		if inGap(y) {
			continue
		}
		cells = append(cells, core.Point{X: 0, Y: y}, core.Point{X: last, Y: y})
	}
	return cells
}

// Box lines all four edges with no gaps.
func Box(size int) []core.Point {
	last := size - 1
	var cells []core.Point
	for i := 0; i <= last; i++ {
		cells = append(cells,
			core.Point{X: i, Y: 0}, core.Point{X: i, Y: last},
			core.Point{X: 0, Y: i}, core.Point{X: last, Y: i})
	}
	return cells
}

// Open has no walls.
func Open(int) []core.Point {
	return nil
}
