package engine

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/world"
)

// LogRenderer is a headless Renderer that logs a frame summary every
// Every frames and the telemetry line once per second.
type LogRenderer struct {
	Every int

	logger *log.Logger
	frames int
	last   world.Snapshot
}

// NewLogRenderer creates a LogRenderer. A nil logger discards output.
func NewLogRenderer(logger *log.Logger, every int) *LogRenderer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &LogRenderer{Every: every, logger: logger}
}

// Render records the frame and logs it when due.
func (r *LogRenderer) Render(s world.Snapshot) error {
	r.frames++
	r.last = s
	if r.Every <= 0 || r.frames%r.Every != 0 {
		return nil
	}
	r.logger.Debug("frame",
		"tick", s.Tick,
		"score", s.Score,
		"multiplier", s.Multiplier,
		"head_x", s.Snake.Head.X,
		"head_y", s.Snake.Head.Y,
		"size", s.Snake.Size,
		"alive", s.Snake.Alive,
		"objects", len(s.Objects),
	)
	return nil
}

// UpdateTitle logs the telemetry line.
func (r *LogRenderer) UpdateTitle(t world.Telemetry) {
	r.logger.Info(t.String())
}

// Frames returns how many frames were rendered.
func (r *LogRenderer) Frames() int { return r.frames }

// Last returns the most recent frame.
func (r *LogRenderer) Last() world.Snapshot { return r.last }

// Dump draws the most recent frame as plain text.
func (r *LogRenderer) Dump(hud string) string {
	w, h := world.MinScreen(r.last.GridSize)
	scr := core.NewScreen(w, h)
	r.last.Render(scr, hud)
	return scr.String()
}
