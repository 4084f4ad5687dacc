package world

import (
	"errors"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/element"
)

// UnoccupiedLocation samples a random free cell inside the placement
// margin. It returns core.OffGrid and ErrPlacementExhausted when the retry
// budget runs out.
func (w *World) UnoccupiedLocation() (core.Point, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.unoccupiedLocation()
}

func (w *World) unoccupiedLocation() (core.Point, error) {
	lo := w.cfg.Grid.PlacementMargin
	span := w.size - 2*lo

	for i := 0; i < w.cfg.Grid.PlacementRetries; i++ {
		p := core.Point{X: lo + w.rng.Intn(span), Y: lo + w.rng.Intn(span)}
		if w.free(p) {
			return p, nil
		}
	}
	return core.OffGrid, ErrPlacementExhausted
}

// free reports whether p holds neither an object nor a piece of the snake.
func (w *World) free(p core.Point) bool {
	return !w.occ.Has(p) && !w.snake.Occupies(p)
}

// PlaceFood moves the food to a new free cell.
func (w *World) PlaceFood() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.placeFood()
}

// placeFood retries until it succeeds; the game cannot score without food.
func (w *World) placeFood() {
	for {
		p, err := w.unoccupiedLocation()
		if errors.Is(err, ErrPlacementExhausted) {
			continue
		}
		w.food.Place(p)
		w.occ.Set(p)
		w.emit(EventPlaced, w.food, p)
		return
	}
}

// PlaceNextWall brings back one hidden wall whose home cell is free.
func (w *World) PlaceNextWall() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.placeNextWall()
}

// placeNextWall scans the walls from a random start, wrapping around, so a
// destroyed wall does not always come back first.
func (w *World) placeNextWall() {
	n := len(w.walls)
	if n == 0 {
		return
	}

	start := w.rng.Intn(n)
	for i := 0; i < n; i++ {
		wall := w.objects[w.walls[(start+i)%n]]
		if !wall.Hidden() {
			continue
		}
		home := wall.Home()
		if !w.free(home) {
			continue
		}
		wall.Place(home)
		w.occ.Set(home)
		w.emit(EventPlaced, wall, home)
		return
	}
}

// PlaceNextElement may spawn one consumable.
func (w *World) PlaceNextElement() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.placeNextElement()
}

// placeNextElement skips the round with probability 1-SpawnChance, then
// picks a kind uniformly. A hidden, available object of that kind is reused
// before a new one is built. When no free cell is found the object stays
// hidden until a later round.
func (w *World) placeNextElement() {
	if w.rng.Float64() >= w.cfg.Elements.SpawnChance {
		return
	}
	kind := element.SpawnableKinds[w.rng.Intn(len(element.SpawnableKinds))]

	o := w.reusable(kind)
	if o == nil {
		o = w.newElement(kind)
	}

	p, err := w.unoccupiedLocation()
	if err != nil {
		w.emit(EventDeferred, o, core.OffGrid)
		return
	}
	o.Place(p)
	w.occ.Set(p)
	w.emit(EventPlaced, o, p)
}

func (w *World) reusable(kind element.Kind) *element.Object {
	for _, id := range w.order {
		o := w.objects[id]
		if o.Kind() == kind && o.Hidden() && o.Available() {
			return o
		}
	}
	return nil
}
