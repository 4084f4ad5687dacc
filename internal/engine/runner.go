// Package engine drives a world at a fixed cadence without a terminal:
// input, update and render run in a loop that sleeps off the rest of each
// frame budget.
package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/world"
)

// Simulation is the part of the world the runner drives.
type Simulation interface {
	HandleInput(frame core.InputFrame)
	Update() world.StepResult
	Snapshot() world.Snapshot
	Telemetry(fps int) world.Telemetry
}

// InputSource produces the input for the next frame.
type InputSource interface {
	Poll(s world.Snapshot) core.InputFrame
}

// Renderer consumes frames and the once-per-second telemetry.
type Renderer interface {
	Render(s world.Snapshot) error
	UpdateTitle(t world.Telemetry)
}

// Options configures a Runner.
type Options struct {
	TickRate  int  // Frames per second
	MaxFrames int  // Stop after this many frames; 0 runs until quit or cancel
	Realtime  bool // Sleep off the frame budget; false runs flat out
}

// Stats summarizes a finished run.
type Stats struct {
	Frames   int
	Ticks    uint64
	Score    int
	Alive    bool
	Deaths   int
	Events   map[world.EventKind]int
	Duration time.Duration
}

// Runner is the fixed-cadence input -> update -> render loop.
type Runner struct {
	sim    Simulation
	input  InputSource
	out    Renderer
	opts   Options
	logger *log.Logger
	now    func() time.Time
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(sim Simulation, input InputSource, out Renderer, opts Options, logger *log.Logger) *Runner {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		sim:    sim,
		input:  input,
		out:    out,
		opts:   opts,
		logger: logger,
		now:    time.Now,
	}
}

// Run loops until the input asks to quit, the frame limit is reached or
// ctx is cancelled. Cancellation is a normal stop, not an error.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	stats := Stats{Events: make(map[world.EventKind]int)}
	begin := r.now()
	err := r.loop(ctx, &stats)
	stats.Duration = r.now().Sub(begin)
	return stats, err
}

func (r *Runner) loop(ctx context.Context, stats *Stats) error {
	budget := time.Second / time.Duration(r.opts.TickRate)
	timer := time.NewTimer(budget)
	defer timer.Stop()

	titleStamp := r.now()
	frameCount := 0

	for r.opts.MaxFrames == 0 || stats.Frames < r.opts.MaxFrames {
		if ctx.Err() != nil {
			return nil
		}
		frameStart := r.now()

		frame := r.input.Poll(r.sim.Snapshot())
		if frame.Has(core.ActionQuit) {
			r.logger.Info("quit requested", "frame", stats.Frames)
			return nil
		}
		r.sim.HandleInput(frame)

		result := r.sim.Update()
		r.record(stats, result)

		if err := r.out.Render(r.sim.Snapshot()); err != nil {
			return fmt.Errorf("engine: render frame %d: %w", stats.Frames, err)
		}
		stats.Frames++
		frameCount++

		frameEnd := r.now()
		if frameEnd.Sub(titleStamp) >= time.Second {
			r.out.UpdateTitle(r.sim.Telemetry(frameCount))
			frameCount = 0
			titleStamp = frameEnd
		}

		if !r.opts.Realtime {
			continue
		}
		if rest := budget - frameEnd.Sub(frameStart); rest > 0 {
			timer.Reset(rest)
			select {
			case <-ctx.Done():
				return nil
			case <-timer.C:
			}
		}
	}
	return nil
}

func (r *Runner) record(stats *Stats, result world.StepResult) {
	stats.Ticks = result.Tick
	stats.Score = result.Score
	stats.Alive = result.Alive
	for _, e := range result.Events {
		stats.Events[e.Kind]++
		if e.Kind == world.EventDied {
			stats.Deaths++
			r.logger.Info("snake died", "tick", result.Tick, "score", result.Score)
		}
	}
}
