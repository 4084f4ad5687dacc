package world

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/element"
)

// ObjectView is a read-only copy of one object.
type ObjectView struct {
	ID         element.ID
	Kind       element.Kind
	Cell       core.Point
	Color      core.Color
	Visibility element.Visibility
	Solid      bool
	Armed      bool
}

// SnakeView is a read-only copy of the snake.
type SnakeView struct {
	Head       core.Point
	X, Y       float64
	Heading    core.Direction
	Speed      float64
	Body       []core.Point // Oldest first
	HeadColor  core.Color
	BodyColor  core.Color
	Alive      bool
	Invincible bool
	Size       int
}

// Snapshot is a deep copy of everything a renderer needs for one frame.
type Snapshot struct {
	Tick            uint64
	GridSize        int
	Score           int
	Multiplier      int
	MultiplierTimer int
	Paused          bool
	Snake           SnakeView
	Food            ObjectView
	Objects         []ObjectView // Non-hidden objects, in creation order
	Inventory       map[element.Kind]int
}

// Snapshot copies the current state under the world lock.
func (w *World) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	x, y := w.snake.Position()
	s := Snapshot{
		Tick:            w.tick,
		GridSize:        w.size,
		Score:           w.score,
		Multiplier:      w.multiplier,
		MultiplierTimer: w.multTimer,
		Paused:          w.paused,
		Snake: SnakeView{
			Head:       w.snake.Head(),
			X:          x,
			Y:          y,
			Heading:    w.snake.Heading(),
			Speed:      w.snake.Speed(),
			Body:       w.snake.Body(),
			HeadColor:  w.snake.HeadColor(),
			BodyColor:  w.snake.BodyColor(),
			Alive:      w.snake.Alive(),
			Invincible: w.snake.Invincible(),
			Size:       w.snake.Size(),
		},
		Food:      viewOf(w.food),
		Inventory: make(map[element.Kind]int, len(element.ConsumableKinds)),
	}

	for _, id := range w.order {
		o := w.objects[id]
		if o.Hidden() {
			continue
		}
		s.Objects = append(s.Objects, viewOf(o))
	}
	for _, k := range element.ConsumableKinds {
		s.Inventory[k] = w.snake.ItemCount(k)
	}
	return s
}

func viewOf(o *element.Object) ObjectView {
	return ObjectView{
		ID:         o.ID(),
		Kind:       o.Kind(),
		Cell:       o.Location(),
		Color:      o.Color(),
		Visibility: o.Visibility(),
		Solid:      o.Solid(),
		Armed:      o.Armed(),
	}
}

// Telemetry is the summary shown in the title line.
type Telemetry struct {
	Score             int
	Multiplier        int
	MultiplierSeconds int
	FPS               int
	Size              int
	Potions           int
	Bombs             int
	ShrinkPills       int
	SlowPills         int
}

// Telemetry summarizes the world for display. fps is measured by the caller.
func (w *World) Telemetry(fps int) Telemetry {
	w.mu.Lock()
	defer w.mu.Unlock()

	rate := w.cfg.Runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return Telemetry{
		Score:             w.score,
		Multiplier:        w.multiplier,
		MultiplierSeconds: core.Max(w.multTimer, 0) / rate,
		FPS:               fps,
		Size:              w.snake.Size(),
		Potions:           w.snake.ItemCount(element.Potion),
		Bombs:             w.snake.ItemCount(element.Bomb),
		ShrinkPills:       w.snake.ItemCount(element.ShrinkPill),
		SlowPills:         w.snake.ItemCount(element.SlowPill),
	}
}

// String formats the telemetry as the title line.
func (t Telemetry) String() string {
	return fmt.Sprintf("Score: %d  x%d (%ds)  Size: %d  Potions: %d  Bombs: %d  Shrink: %d  Slow: %d  FPS: %d",
		t.Score, t.Multiplier, t.MultiplierSeconds, t.Size,
		t.Potions, t.Bombs, t.ShrinkPills, t.SlowPills, t.FPS)
}
