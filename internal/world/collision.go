package world

import (
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/element"
)

// collide resolves the object under the head. Hidden objects and armed
// bombs are skipped; the first match wins. Any match interrupts the combo
// unless it kills the snake.
func (w *World) collide(head core.Point) {
	for _, id := range w.order {
		o := w.objects[id]
		if o.Hidden() || o.Armed() || o.Location() != head {
			continue
		}

		if o.Kind() == element.Wall {
			if w.hitWall(o, head) {
				return
			}
		} else {
			w.pickUp(o, head)
		}
		w.resetMultiplier()
		return
	}
}

// hitWall kills the snake on a solid wall unless it is invincible. An
// invincible snake, or a wall that has not finished appearing, smashes the
// wall instead. It returns true if the hit was lethal.
func (w *World) hitWall(o *element.Object, head core.Point) bool {
	if o.Visibility() == element.Visible && o.Solid() && !w.snake.Invincible() {
		w.snake.Kill()
		w.emit(EventDied, o, head)
		w.logger.Info("snake hit a wall", "x", head.X, "y", head.Y, "score", w.score)
		return true
	}

	w.occ.Clear(head)
	o.SetColor(core.Background)
	o.Hide()
	o.SetAvailable(true)
	w.emit(EventWallSmashed, o, head)
	return false
}

// pickUp moves a consumable into the inventory and wires its effect.
func (w *World) pickUp(o *element.Object, head core.Point) {
	w.occ.Clear(head)
	o.Hide()
	o.SetAvailable(false)
	o.OnUse(w.effect(o.Kind()))
	w.snake.AddItem(o.Kind(), o.ID())
	w.emit(EventPickup, o, head)
}

// effect returns the callback applied when a held item of kind is used.
func (w *World) effect(kind element.Kind) element.UseFunc {
	switch kind {
	case element.Potion:
		return func(core.Point) { w.snake.MakeInvincible() }
	case element.ShrinkPill:
		return func(core.Point) { w.snake.Shrink() }
	case element.SlowPill:
		return func(core.Point) { w.snake.Slow() }
	case element.Bomb:
		return w.explodeBomb
	default:
		return nil
	}
}
