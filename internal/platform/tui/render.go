package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Text colors laid over cell fills.
var (
	lightText = lipgloss.Color("#E6E6E6")
	darkText  = lipgloss.Color("#141414")
)

// Fills brighter than this Lab lightness get dark text.
const lightFill = 0.6

var (
	stylesMu sync.Mutex
	styles   = make(map[core.Color]lipgloss.Style)
)

// styleFor returns the style for a cell fill, building it on first use.
func styleFor(c core.Color) lipgloss.Style {
	stylesMu.Lock()
	defer stylesMu.Unlock()

	if s, ok := styles[c]; ok {
		return s
	}
	fill := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	s := lipgloss.NewStyle().
		Background(lipgloss.Color(fill.Hex())).
		Foreground(textOn(fill))
	styles[c] = s
	return s
}

// textOn picks a readable text color for a fill.
func textOn(fill colorful.Color) lipgloss.Color {
	if l, _, _ := fill.Lab(); l > lightFill {
		return darkText
	}
	return lightText
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
