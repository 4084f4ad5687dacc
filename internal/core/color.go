package core

import "fmt"

// Color is an RGBA value handed to the renderer for a single grid cell.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// Background is the color of an empty cell.
var Background = RGB(0x1E, 0x1E, 0x1E)

// Nudge moves each of the red, green and blue channels one unit toward
// target. Channels already equal to the target are left alone, so repeated
// nudging converges in max(|dR|, |dG|, |dB|) steps. Alpha is not touched.
func (c Color) Nudge(target Color) Color {
	c.R = nudgeChannel(c.R, target.R)
	c.G = nudgeChannel(c.G, target.G)
	c.B = nudgeChannel(c.B, target.B)
	return c
}

func nudgeChannel(cur, target uint8) uint8 {
	switch {
	case cur < target:
		return cur + 1
	case cur > target:
		return cur - 1
	default:
		return cur
	}
}

// Add shifts each color channel by the given deltas, saturating at 0 and 255.
func (c Color) Add(dr, dg, db int) Color {
	c.R = uint8(Clamp(int(c.R)+dr, 0, 255))
	c.G = uint8(Clamp(int(c.G)+dg, 0, 255))
	c.B = uint8(Clamp(int(c.B)+db, 0, 255))
	return c
}

// Distance returns the largest per-channel difference between two colors,
// ignoring alpha. It is the number of Nudge steps needed to converge.
func (c Color) Distance(other Color) int {
	return Max(Abs(int(c.R)-int(other.R)),
		Max(Abs(int(c.G)-int(other.G)), Abs(int(c.B)-int(other.B))))
}

// String returns the color in #rrggbb form.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
