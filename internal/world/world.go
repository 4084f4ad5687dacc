// Package world implements the snake simulation: the occupancy-tracked grid,
// the arena of interactive objects, placement, collision resolution, bomb
// blasts and score keeping.
//
// All exported World methods are safe for concurrent use. A single mutex
// guards the whole simulation, so a renderer reading Snapshot on another
// goroutine always observes whole ticks.
package world

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/element"
	"github.com/vovakirdan/gridsnake/internal/registry"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

// ErrPlacementExhausted is returned when no free cell was found within the
// retry budget. Callers defer the placement.
var ErrPlacementExhausted = errors.New("world: no unoccupied cell found")

// World is the simulation state.
type World struct {
	mu sync.Mutex

	cfg    config.Config
	size   int
	layout []core.Point
	logger *log.Logger
	rng    *rand.Rand

	occ     *Occupancy
	snake   *snake.Snake
	food    *element.Object
	objects map[element.ID]*element.Object
	order   []element.ID // Creation order; collision and reuse scans follow it
	walls   []element.ID
	nextID  element.ID

	score      int
	multiplier int
	multTimer  int
	tick       uint64
	paused     bool
	fuseAccum  time.Duration

	events []Event
}

// New creates a world from a validated configuration. A nil logger discards
// output.
func New(cfg config.Config, seed int64, logger *log.Logger) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	layout, err := registry.Build(cfg.Grid.Layout, cfg.Grid.Size)
	if err != nil {
		return nil, fmt.Errorf("world: build layout: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := &World{
		cfg:    cfg,
		size:   cfg.Grid.Size,
		layout: layout,
		logger: logger,
		rng:    rand.New(rand.NewSource(seed)),
		occ:    NewOccupancy(cfg.Grid.Size),
		snake: snake.New(snake.Config{
			GridSize:        cfg.Grid.Size,
			InitialSpeed:    cfg.Snake.InitialSpeed,
			MinSpeed:        cfg.Snake.MinSpeed,
			InvincibleTicks: cfg.Snake.InvincibleTicks,
		}),
	}
	w.reset()
	return w, nil
}

// Reset starts a new game on the same world.
func (w *World) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reset()
}

// reset rebuilds the hidden walls, clears the board and places the first food.
// Object ids keep counting across games.
func (w *World) reset() {
	w.occ.Reset()
	w.snake.Reset()
	w.objects = make(map[element.ID]*element.Object)
	w.order = w.order[:0]
	w.walls = w.walls[:0]

	w.score = 0
	w.multiplier = 1
	w.multTimer = w.cfg.Scoring.MultiplierTicks
	w.tick = 0
	w.paused = false
	w.fuseAccum = 0

	for _, home := range w.layout {
		wall := element.NewWall(w.allocID(), home, w.timings())
		w.add(wall)
		w.walls = append(w.walls, wall.ID())
	}

	w.food = element.New(w.allocID(), element.Food, w.timings())
	w.placeFood()

	w.logger.Info("world reset", "grid", w.size, "layout", w.cfg.Grid.Layout, "walls", len(w.walls))
}

func (w *World) allocID() element.ID {
	id := w.nextID
	w.nextID++
	return id
}

func (w *World) timings() element.Timings {
	return element.Timings{
		AppearanceTicks: w.cfg.Elements.AppearanceTicks,
		FuseSteps:       w.cfg.Bomb.FuseSteps,
	}
}

func (w *World) add(o *element.Object) {
	w.objects[o.ID()] = o
	w.order = append(w.order, o.ID())
}

// newElement constructs a consumable. Bombs are wired to the blast handler.
func (w *World) newElement(kind element.Kind) *element.Object {
	o := element.New(w.allocID(), kind, w.timings())
	if kind == element.Bomb {
		o.OnUse(w.explodeBomb)
	}
	w.add(o)
	return o
}

// Update advances the simulation by one tick. Nothing moves while the snake
// is dead or the game is paused.
func (w *World) Update() StepResult {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.snake.Alive() && !w.paused {
		w.step()
	}

	result := StepResult{
		Tick:   w.tick,
		Events: w.events,
		Alive:  w.snake.Alive(),
		Score:  w.score,
	}
	w.events = nil
	return result
}

func (w *World) step() {
	w.tick++

	w.snake.Update()
	if !w.snake.Alive() {
		w.emit(EventDied, nil, w.snake.Head())
		return
	}

	w.advanceObjects()

	expired := w.multTimer <= 0
	w.multTimer--
	if expired {
		w.resetMultiplier()
	}

	head := w.snake.Head()
	if !w.occ.Has(head) {
		return
	}
	w.collide(head)
	if !w.snake.Alive() {
		return
	}
	if !w.food.Hidden() && w.food.Location() == head {
		w.eat(head)
	}
}

// advanceObjects runs the appearing animation of every object and burns
// the fuses of armed bombs by the number of whole fuse steps that fit in
// this tick.
func (w *World) advanceObjects() {
	w.fuseAccum += w.cfg.TickDuration()
	steps := int(w.fuseAccum / w.cfg.Bomb.FuseStep)
	w.fuseAccum -= time.Duration(steps) * w.cfg.Bomb.FuseStep

	for _, id := range w.order {
		o := w.objects[id]
		at := o.Location()
		if o.Advance(steps) {
			w.emit(EventDetonated, o, at)
		}
	}
	w.food.AdvanceVisual()
}

func (w *World) resetMultiplier() {
	w.multTimer = w.cfg.Scoring.MultiplierTicks
	w.multiplier = 1
}

// eat consumes the food under the head and builds the combo.
func (w *World) eat(head core.Point) {
	w.score += w.multiplier
	w.occ.Clear(head)
	w.food.Hide()
	w.emit(EventAte, w.food, head)

	w.placeNextWall()
	w.placeNextElement()
	w.placeFood()

	w.snake.Grow()
	w.snake.AdjustSpeed(w.cfg.Snake.SpeedIncrement)

	w.multTimer = w.cfg.Scoring.MultiplierTicks
	w.multiplier++
}

// Alive reports whether the snake is alive.
func (w *World) Alive() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snake.Alive()
}

// Score returns the running score.
func (w *World) Score() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.score
}

// Paused reports whether the simulation is paused.
func (w *World) Paused() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.paused
}

// GridSize returns the side of the grid.
func (w *World) GridSize() int { return w.size }

// Config returns the configuration the world was built with.
func (w *World) Config() config.Config { return w.cfg }
