package engine

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/element"
	"github.com/vovakirdan/gridsnake/internal/world"
)

// Autopilot is an InputSource that plays the game: it heads for the food
// along the shortest toroidal route, steers around solid walls and its own
// body, and reaches for items when it gets into trouble.
type Autopilot struct {
	// AutoRestart requests a new game after each death.
	AutoRestart bool

	lastCell core.Point
	decided  bool
}

// NewAutopilot creates an autopilot that restarts after each death.
func NewAutopilot() *Autopilot {
	return &Autopilot{AutoRestart: true}
}

// Poll decides the input for the next frame. It acts once per cell the head
// enters, so a turn is not repeated while the head crosses a cell.
func (a *Autopilot) Poll(s world.Snapshot) core.InputFrame {
	frame := core.NewInputFrame()

	if !s.Snake.Alive {
		a.decided = false
		if a.AutoRestart {
			frame.Set(core.ActionRestart)
		}
		return frame
	}
	if s.Paused {
		return frame
	}
	if a.decided && s.Snake.Head == a.lastCell {
		return frame
	}
	a.lastCell = s.Snake.Head
	a.decided = true

	blocked := blockedCells(s)
	dir, ok := a.choose(s, blocked)
	if !ok {
		// Boxed in: a potion lets the snake smash through walls.
		if s.Inventory[element.Potion] > 0 && !s.Snake.Invincible {
			frame.Set(core.ActionUsePotion)
		}
		return frame
	}
	if dir != s.Snake.Heading {
		if action, found := turnActions[dir]; found {
			frame.Set(action)
		}
	}

	if s.Inventory[element.Bomb] > 0 && wallsNear(s) {
		frame.Set(core.ActionUseBomb)
	}
	if s.Inventory[element.SlowPill] > 0 && s.Snake.Speed > 0.3 {
		frame.Set(core.ActionUseSlow)
	}
	if s.Inventory[element.ShrinkPill] > 0 && s.Snake.Size > s.GridSize {
		frame.Set(core.ActionUseShrink)
	}
	return frame
}

var turnActions = map[core.Direction]core.Action{
	core.DirUp:    core.ActionUp,
	core.DirDown:  core.ActionDown,
	core.DirLeft:  core.ActionLeft,
	core.DirRight: core.ActionRight,
}

// choose picks the open heading that brings the head closest to the food,
// preferring to keep going straight on ties.
func (a *Autopilot) choose(s world.Snapshot, blocked mapset.Set[core.Point]) (core.Direction, bool) {
	candidates := []core.Direction{s.Snake.Heading}
	for _, d := range []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight} {
		if d == s.Snake.Heading {
			continue
		}
		if d == s.Snake.Heading.Opposite() && s.Snake.Size != 1 {
			continue
		}
		candidates = append(candidates, d)
	}

	best, bestDist, found := s.Snake.Heading, 0, false
	for _, d := range candidates {
		next := s.Snake.Head.Step(d, s.GridSize)
		if blocked.Has(next) {
			continue
		}
		dist := distance(next, s.Food.Cell, s.GridSize)
		if !found || dist < bestDist {
			best, bestDist, found = d, dist, true
		}
	}
	return best, found
}

// blockedCells collects the cells that would kill the snake.
func blockedCells(s world.Snapshot) mapset.Set[core.Point] {
	blocked := mapset.New[core.Point]()
	for _, seg := range s.Snake.Body {
		blocked.Put(seg)
	}
	if s.Snake.Invincible {
		return blocked
	}
	for _, o := range s.Objects {
		if lethal(o) {
			blocked.Put(o.Cell)
		}
	}
	return blocked
}

// wallsNear reports whether a solid wall is inside the blast around the head.
func wallsNear(s world.Snapshot) bool {
	for _, o := range s.Objects {
		if !lethal(o) {
			continue
		}
		if core.Abs(o.Cell.X-s.Snake.Head.X) <= 1 && core.Abs(o.Cell.Y-s.Snake.Head.Y) <= 1 {
			return true
		}
	}
	return false
}

// lethal reports whether running into o kills a snake without a potion.
func lethal(o world.ObjectView) bool {
	return o.Kind == element.Wall && o.Solid && o.Visibility == element.Visible
}

// distance is the Manhattan distance on the torus.
func distance(a, b core.Point, size int) int {
	return core.RingDistance(a.X, b.X, size) + core.RingDistance(a.Y, b.Y, size)
}
