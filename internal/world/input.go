package world

import (
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/element"
)

// slotKinds maps the use-item actions to inventory kinds.
var slotKinds = map[core.Action]element.Kind{
	core.ActionUsePotion: element.Potion,
	core.ActionUseBomb:   element.Bomb,
	core.ActionUseShrink: element.ShrinkPill,
	core.ActionUseSlow:   element.SlowPill,
}

// HandleInput applies one frame of input in the order the actions arrived.
// While the snake is dead or the game is paused only pause, restart and
// debug dump have an effect. Quit is left to the caller.
func (w *World) HandleInput(frame core.InputFrame) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, a := range frame.Order {
		switch a {
		case core.ActionPause:
			if w.snake.Alive() {
				w.paused = !w.paused
				w.logger.Info("pause toggled", "paused", w.paused)
			}
			continue
		case core.ActionRestart:
			w.reset()
			w.emit(EventRestarted, nil, w.snake.Head())
			continue
		case core.ActionDebugDump:
			w.debugDump()
			continue
		}

		if !w.snake.Alive() || w.paused {
			continue
		}

		if dir, ok := a.Heading(); ok {
			w.snake.Turn(dir)
			continue
		}
		if kind, ok := slotKinds[a]; ok {
			w.useItem(kind)
			continue
		}
		switch a {
		case core.ActionSpeedUp:
			w.snake.AdjustSpeed(w.cfg.Snake.SpeedStep)
		case core.ActionSpeedDown:
			w.snake.AdjustSpeed(-w.cfg.Snake.SpeedStep)
		}
	}
}

// UseItem uses the oldest held item of kind, if the snake may.
func (w *World) UseItem(kind element.Kind) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.useItem(kind)
}

// useItem pops an item and fires it. Bombs are planted at the head and
// claim that cell until they detonate.
func (w *World) useItem(kind element.Kind) bool {
	id, ok := w.snake.TakeItem(kind)
	if !ok {
		return false
	}
	o, ok := w.objects[id]
	if !ok {
		return false
	}

	head := w.snake.Head()
	o.Use(head)
	if kind == element.Bomb {
		w.occ.Set(head)
	}
	w.emit(EventUsed, o, head)
	return true
}

// debugDump logs the full simulation state.
func (w *World) debugDump() {
	head := w.snake.Head()
	w.logger.Info("debug dump",
		"tick", w.tick,
		"score", w.score,
		"multiplier", w.multiplier,
		"multiplier_timer", w.multTimer,
		"head_x", head.X,
		"head_y", head.Y,
		"size", w.snake.Size(),
		"speed", w.snake.Speed(),
		"invincible", w.snake.Invincible(),
		"occupied", w.occ.Count(),
		"objects", len(w.order),
	)
	for _, id := range w.order {
		o := w.objects[id]
		if o.Hidden() {
			continue
		}
		w.logger.Info("object",
			"id", o.ID(),
			"kind", o.Kind(),
			"x", o.Location().X,
			"y", o.Location().Y,
			"state", o.Visibility(),
			"color", o.Color(),
			"fuse", o.FuseRemaining(),
		)
	}
}
