// Package snake implements the player actor: continuous movement on a
// toroidal grid, the trailing body, status effects and the item inventory.
package snake

import (
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/element"
)

// Snake colors.
var (
	LiveHeadColor       = core.RGB(0x00, 0x4B, 0x19)
	LiveBodyColor       = core.RGB(0x00, 0xE1, 0x19)
	DeadHeadColor       = core.RGB(0x80, 0x00, 0x00)
	DeadBodyColor       = core.RGB(0x4B, 0x00, 0x00)
	InvincibleHeadColor = core.RGB(0x00, 0x4B, 0x60)
	InvincibleBodyColor = core.RGB(0xC8, 0xE1, 0x19)
)

// Config holds the tunables of a snake.
type Config struct {
	GridSize        int
	InitialSpeed    float64 // Cells per tick; also the speed Slow resets to
	MinSpeed        float64
	InvincibleTicks int
}

// Snake is the player actor. It is not safe for concurrent use.
type Snake struct {
	cfg Config

	x, y    float64
	heading core.Direction
	speed   float64
	alive   bool

	body []core.Point // Oldest segment first
	size int

	growing   bool
	shrinking bool

	invincible     bool
	invincibleLeft int
	abilityActive  bool

	headColor core.Color
	bodyColor core.Color

	inventory map[element.Kind][]element.ID
}

// New creates a live snake at the center of the grid heading up.
func New(cfg Config) *Snake {
	s := &Snake{cfg: cfg}
	s.Reset()
	return s
}

// Reset restores the initial state and empties the inventory.
func (s *Snake) Reset() {
	s.x = float64(s.cfg.GridSize / 2)
	s.y = float64(s.cfg.GridSize / 2)
	s.heading = core.DirUp
	s.speed = s.cfg.InitialSpeed
	s.alive = true
	s.body = nil
	s.size = 1
	s.growing = false
	s.shrinking = false
	s.invincible = false
	s.invincibleLeft = s.cfg.InvincibleTicks
	s.abilityActive = false
	s.headColor = LiveHeadColor
	s.bodyColor = LiveBodyColor
	s.inventory = make(map[element.Kind][]element.ID, len(element.ConsumableKinds))
}

// Head returns the grid cell under the head.
func (s *Snake) Head() core.Point {
	return core.CellOf(s.x, s.y)
}

// Position returns the exact head position.
func (s *Snake) Position() (x, y float64) { return s.x, s.y }

// SetPosition moves the head, wrapping it onto the grid.
func (s *Snake) SetPosition(x, y float64) {
	s.x = core.Wrap(x, s.cfg.GridSize)
	s.y = core.Wrap(y, s.cfg.GridSize)
}

// Heading returns the current direction of travel.
func (s *Snake) Heading() core.Direction { return s.heading }

// Speed returns the speed in cells per tick.
func (s *Snake) Speed() float64 { return s.speed }

// Alive reports whether the snake is alive.
func (s *Snake) Alive() bool { return s.alive }

// Invincible reports whether a potion is in effect.
func (s *Snake) Invincible() bool { return s.invincible }

// AbilityActive reports whether a potion, shrink or slow effect holds the
// ability lock.
func (s *Snake) AbilityActive() bool { return s.abilityActive }

// HeadColor returns the current head color.
func (s *Snake) HeadColor() core.Color { return s.headColor }

// BodyColor returns the current body color.
func (s *Snake) BodyColor() core.Color { return s.bodyColor }

// Size is the body length plus the head.
func (s *Snake) Size() int { return s.size }

// Body returns a copy of the body segments, oldest first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// Occupies reports whether p is the head cell or a body segment.
func (s *Snake) Occupies(p core.Point) bool {
	if p == s.Head() {
		return true
	}
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Turn changes the heading. Reversing into the body is refused unless the
// snake is just a head.
func (s *Snake) Turn(d core.Direction) bool {
	if d == s.heading.Opposite() && s.size != 1 {
		return false
	}
	s.heading = d
	return true
}

// Update advances the snake by one tick.
func (s *Snake) Update() {
	if !s.alive {
		return
	}

	prev := s.Head()
	s.move()
	if cur := s.Head(); cur != prev {
		s.updateBody(cur, prev)
	}
	s.updateInvincibility()
}

func (s *Snake) move() {
	dx, dy := s.heading.Delta()
	s.SetPosition(s.x+float64(dx)*s.speed, s.y+float64(dy)*s.speed)
}

// updateBody pushes the vacated cell, resolves a pending grow or shrink,
// then checks for self-collision.
func (s *Snake) updateBody(cur, prev core.Point) {
	s.body = append(s.body, prev)

	switch {
	case s.growing:
		s.growing = false
		s.size++
	case s.shrinking:
		s.shrinking = false
		s.abilityActive = false
		// Drop the oldest half less one, but never fewer than a plain move.
		drop := core.Max(len(s.body)/2-1, 1)
		s.body = s.body[drop:]
		s.size = len(s.body) + 1
	default:
		s.body = s.body[1:]
	}

	for _, seg := range s.body {
		if seg == cur {
			s.Kill()
			return
		}
	}
}

// updateInvincibility counts the effect down. In the second half of the
// effect the colors flicker, and on expiry everything is restored.
func (s *Snake) updateInvincibility() {
	if !s.invincible {
		return
	}
	if s.invincibleLeft > 0 {
		s.invincibleLeft--
		half := s.cfg.InvincibleTicks / 2
		flicker := s.cfg.InvincibleTicks / 16
		if s.invincibleLeft < half && flicker > 0 && s.invincibleLeft%flicker == 0 {
			s.toggleColors()
		}
		return
	}
	s.invincible = false
	s.invincibleLeft = s.cfg.InvincibleTicks
	s.abilityActive = false
	s.headColor = LiveHeadColor
	s.bodyColor = LiveBodyColor
}

func (s *Snake) toggleColors() {
	if s.headColor == LiveHeadColor {
		s.headColor = InvincibleHeadColor
		s.bodyColor = InvincibleBodyColor
		return
	}
	s.headColor = LiveHeadColor
	s.bodyColor = LiveBodyColor
}

// Grow adds one segment on the next body update.
func (s *Snake) Grow() { s.growing = true }

// Shrink drops the oldest half of the body, less one segment, on the next
// body update.
func (s *Snake) Shrink() { s.shrinking = true }

// MakeInvincible starts the invincibility effect.
func (s *Snake) MakeInvincible() {
	s.invincible = true
	s.invincibleLeft = s.cfg.InvincibleTicks
	s.headColor = InvincibleHeadColor
	s.bodyColor = InvincibleBodyColor
}

// Slow resets the speed to the initial speed and releases the ability lock.
func (s *Snake) Slow() {
	s.speed = s.cfg.InitialSpeed
	s.abilityActive = false
}

// Kill ends the game for this snake.
func (s *Snake) Kill() {
	s.alive = false
	s.headColor = DeadHeadColor
	s.bodyColor = DeadBodyColor
}

// AdjustSpeed changes the speed by delta, never dropping below MinSpeed.
func (s *Snake) AdjustSpeed(delta float64) {
	s.speed += delta
	if s.speed < s.cfg.MinSpeed {
		s.speed = s.cfg.MinSpeed
	}
}

// InvincibleTicksLeft returns the remaining invincibility ticks, or zero
// when the effect is not active.
func (s *Snake) InvincibleTicksLeft() int {
	if !s.invincible {
		return 0
	}
	return s.invincibleLeft
}
