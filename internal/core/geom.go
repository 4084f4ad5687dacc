// Package core provides fundamental types and utilities for the snake simulation.
// It contains no external dependencies to keep game logic pure and testable.
package core

import "math"

// Point is an integer grid cell.
type Point struct {
	X, Y int
}

// OffGrid is the sentinel location of hidden objects and failed placements.
var OffGrid = Point{X: -1, Y: -1}

// IsOffGrid reports whether p is the off-grid sentinel.
func (p Point) IsOffGrid() bool {
	return p == OffGrid
}

// InBounds reports whether p lies inside a square grid of the given size.
func (p Point) InBounds(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// CellOf returns the grid cell containing the floating-point position (x, y).
func CellOf(x, y float64) Point {
	return Point{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}

// Direction is an axis-aligned heading.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit step for the heading. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Wrap maps v into [0, size) treating the axis as a ring.
func Wrap(v float64, size int) float64 {
	n := float64(size)
	w := math.Mod(v, n)
	if w < 0 {
		w += n
	}
	// math.Mod of a tiny negative value plus n can round up to n.
	if w >= n {
		w = 0
	}
	return w
}

// WrapInt maps v into [0, size) treating the axis as a ring.
func WrapInt(v, size int) int {
	w := v % size
	if w < 0 {
		w += size
	}
	return w
}

// Step returns the cell one step from p in direction d on a toroidal grid.
func (p Point) Step(d Direction, size int) Point {
	dx, dy := d.Delta()
	return Point{X: WrapInt(p.X+dx, size), Y: WrapInt(p.Y+dy, size)}
}

// RingDistance returns the shortest distance between a and b on a ring of the given size.
func RingDistance(a, b, size int) int {
	d := Abs(a - b)
	return Min(d, size-d)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
