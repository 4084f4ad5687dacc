package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/world"
)

type fakeSim struct {
	inputs  []core.InputFrame
	updates int
	dieAt   int
	fps     []int
}

func (f *fakeSim) HandleInput(frame core.InputFrame) { f.inputs = append(f.inputs, frame) }

func (f *fakeSim) Update() world.StepResult {
	f.updates++
	r := world.StepResult{Tick: uint64(f.updates), Alive: true, Score: f.updates}
	if f.updates == f.dieAt {
		r.Alive = false
		r.Events = []world.Event{{Kind: world.EventDied}}
	}
	return r
}

func (f *fakeSim) Snapshot() world.Snapshot { return world.Snapshot{GridSize: 8} }

func (f *fakeSim) Telemetry(fps int) world.Telemetry {
	f.fps = append(f.fps, fps)
	return world.Telemetry{FPS: fps}
}

// scripted replays frames in order, then sends nothing.
type scripted struct {
	frames []core.InputFrame
	polls  int
}

func (s *scripted) Poll(world.Snapshot) core.InputFrame {
	s.polls++
	if len(s.frames) == 0 {
		return core.NewInputFrame()
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f
}

type fakeRenderer struct {
	frames int
	titles []world.Telemetry
	failAt int
}

var errDisplayGone = errors.New("display gone")

func (r *fakeRenderer) Render(world.Snapshot) error {
	r.frames++
	if r.frames == r.failAt {
		return errDisplayGone
	}
	return nil
}

func (r *fakeRenderer) UpdateTitle(t world.Telemetry) { r.titles = append(r.titles, t) }

func frameOf(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// fakeClock advances by step on every reading.
func fakeClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestRunnerStopsAtMaxFrames(t *testing.T) {
	sim := &fakeSim{}
	out := &fakeRenderer{}
	r := NewRunner(sim, &scripted{}, out, Options{MaxFrames: 10}, nil)

	stats, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if stats.Frames != 10 || sim.updates != 10 || out.frames != 10 {
		t.Errorf("frames=%d updates=%d rendered=%d, want 10 each", stats.Frames, sim.updates, out.frames)
	}
	if stats.Ticks != 10 || stats.Score != 10 {
		t.Errorf("ticks=%d score=%d, want 10/10", stats.Ticks, stats.Score)
	}
}

func TestRunnerQuit(t *testing.T) {
	sim := &fakeSim{}
	in := &scripted{frames: []core.InputFrame{
		frameOf(core.ActionLeft),
		frameOf(),
		frameOf(core.ActionUp),
		frameOf(core.ActionQuit),
	}}
	r := NewRunner(sim, in, &fakeRenderer{}, Options{MaxFrames: 100}, nil)

	stats, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if stats.Frames != 3 {
		t.Errorf("Frames = %d, want 3", stats.Frames)
	}
	if len(sim.inputs) != 3 {
		t.Fatalf("HandleInput called %d times, want 3", len(sim.inputs))
	}
	if !sim.inputs[0].Has(core.ActionLeft) || !sim.inputs[2].Has(core.ActionUp) {
		t.Errorf("inputs were not forwarded in order: %+v", sim.inputs)
	}
}

func TestRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := &fakeSim{}
	stats, err := NewRunner(sim, &scripted{}, &fakeRenderer{}, Options{}, nil).Run(ctx)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if stats.Frames != 0 || sim.updates != 0 {
		t.Errorf("cancelled run still stepped: frames=%d updates=%d", stats.Frames, sim.updates)
	}
}

func TestRunnerRealtimeCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	stats, err := NewRunner(&fakeSim{}, &scripted{}, &fakeRenderer{},
		Options{TickRate: 100, Realtime: true}, nil).Run(ctx)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if stats.Frames == 0 {
		t.Error("realtime run produced no frames")
	}
	if stats.Frames > 20 {
		t.Errorf("realtime run did not pace itself: %d frames in 50ms at 100 fps", stats.Frames)
	}
}

func TestRunnerRenderError(t *testing.T) {
	out := &fakeRenderer{failAt: 5}
	stats, err := NewRunner(&fakeSim{}, &scripted{}, out, Options{MaxFrames: 10}, nil).Run(context.Background())
	if !errors.Is(err, errDisplayGone) {
		t.Fatalf("Run() error = %v, want %v", err, errDisplayGone)
	}
	if !strings.Contains(err.Error(), "frame 4") {
		t.Errorf("error %q does not name the frame", err)
	}
	if stats.Frames != 4 {
		t.Errorf("Frames = %d, want 4", stats.Frames)
	}
}

func TestRunnerCountsDeaths(t *testing.T) {
	stats, err := NewRunner(&fakeSim{dieAt: 3}, &scripted{}, &fakeRenderer{}, Options{MaxFrames: 5}, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if stats.Deaths != 1 || stats.Events[world.EventDied] != 1 {
		t.Errorf("deaths=%d events=%v, want one death", stats.Deaths, stats.Events)
	}
}

func TestRunnerTitleOncePerSecond(t *testing.T) {
	sim := &fakeSim{}
	out := &fakeRenderer{}
	r := NewRunner(sim, &scripted{}, out, Options{MaxFrames: 10}, nil)
	// Two clock readings per frame: each frame spans half a second.
	r.now = fakeClock(250 * time.Millisecond)

	stats, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(out.titles) != 5 {
		t.Fatalf("titles = %d, want 5", len(out.titles))
	}
	for i, fps := range sim.fps {
		if fps != 2 {
			t.Errorf("title %d: fps = %d, want 2", i, fps)
		}
	}
	if stats.Duration <= 0 {
		t.Errorf("Duration = %v, want positive", stats.Duration)
	}
}

func TestRunnerPlaysWorld(t *testing.T) {
	w, err := world.New(config.Default(), 7, nil)
	if err != nil {
		t.Fatalf("world.New() error: %v", err)
	}
	out := NewLogRenderer(nil, 100)
	stats, err := NewRunner(w, NewAutopilot(), out, Options{MaxFrames: 2000}, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if stats.Frames != 2000 || out.Frames() != 2000 {
		t.Errorf("frames=%d rendered=%d, want 2000", stats.Frames, out.Frames())
	}
	if stats.Ticks == 0 {
		t.Error("world never advanced")
	}

	lines := strings.Split(out.Dump("hud"), "\n")
	_, h := world.MinScreen(w.GridSize())
	if len(lines) < h {
		t.Errorf("dump has %d lines, want at least %d", len(lines), h)
	}
	if !strings.HasPrefix(lines[0], "hud") {
		t.Errorf("dump starts with %q, want the HUD line", lines[0])
	}
}
