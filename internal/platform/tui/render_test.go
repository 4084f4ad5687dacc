package tui

import (
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func TestTextOn(t *testing.T) {
	if got := textOn(colorful.Color{R: 1, G: 1, B: 1}); got != darkText {
		t.Errorf("white fill: text %v, want dark", got)
	}
	bg := core.Background
	fill := colorful.Color{R: float64(bg.R) / 255, G: float64(bg.G) / 255, B: float64(bg.B) / 255}
	if got := textOn(fill); got != lightText {
		t.Errorf("background fill: text %v, want light", got)
	}
}

func TestStyleForIsCached(t *testing.T) {
	c := core.RGB(0x12, 0x34, 0x56)
	styleFor(c)
	stylesMu.Lock()
	_, ok := styles[c]
	stylesMu.Unlock()
	if !ok {
		t.Error("style was not cached")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawText(0, 0, "Score: 7", core.Background)
	s.Set(4, 1, 'O', core.RGB(0x00, 0x4B, 0x19))

	out := RenderScreen(s)
	if !strings.Contains(out, "Score: 7") {
		t.Errorf("output lost the HUD text:\n%s", out)
	}
	if !strings.Contains(out, "O") {
		t.Errorf("output lost the head glyph:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("output has %d line breaks, want 2", got)
	}
}
