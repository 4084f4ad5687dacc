package element

import "github.com/vovakirdan/gridsnake/internal/core"

// Kind identifies the variant of an interactive object.
type Kind int

const (
	Potion Kind = iota
	Bomb
	ShrinkPill
	SlowPill
	Wall
	Food
)

// ConsumableKinds lists the kinds the snake can pick up and carry, in
// use-slot order (slot 1 is Potion).
var ConsumableKinds = []Kind{Potion, Bomb, ShrinkPill, SlowPill}

// SpawnableKinds lists the kinds created by food consumption, excluding walls.
var SpawnableKinds = ConsumableKinds

// Consumable reports whether the kind can be carried in the inventory.
func (k Kind) Consumable() bool {
	return k >= Potion && k <= SlowPill
}

// Ability reports whether using the kind applies a status effect to the snake.
// Only one ability may be active at a time.
func (k Kind) Ability() bool {
	return k == Potion || k == ShrinkPill || k == SlowPill
}

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Potion:
		return "Potion"
	case Bomb:
		return "Bomb"
	case ShrinkPill:
		return "ShrinkPill"
	case SlowPill:
		return "SlowPill"
	case Wall:
		return "Wall"
	case Food:
		return "Food"
	default:
		return "Unknown"
	}
}

// Glyph returns the display character for a kind.
func (k Kind) Glyph() rune {
	switch k {
	case Potion:
		return '!'
	case Bomb:
		return '*'
	case ShrinkPill:
		return '-'
	case SlowPill:
		return '~'
	case Wall:
		return '#'
	case Food:
		return '@'
	default:
		return '?'
	}
}

// Element colors.
var (
	FoodColor       = core.RGB(0xFF, 0x00, 0x00)
	WallColor       = core.RGB(0x73, 0x73, 0x73)
	PotionColor     = core.RGB(0x80, 0x00, 0x80)
	BombColor       = core.RGB(0x00, 0x00, 0x00)
	ShrinkPillColor = core.RGB(0xFF, 0xFF, 0x00)
	SlowPillColor   = core.RGB(0x00, 0xFF, 0xFF)
)

// HeatColors is the escalating palette a lit bomb steps through.
var HeatColors = [8]core.Color{
	core.RGB(0x5F, 0x00, 0x00),
	core.RGB(0x99, 0x2B, 0x38),
	core.RGB(0xBF, 0x66, 0x00),
	core.RGB(0xFF, 0x66, 0x00),
	core.RGB(0xFF, 0xC6, 0x00),
	core.RGB(0xFF, 0xFF, 0x00),
	core.RGB(0xFF, 0xFF, 0x55),
	core.RGB(0xFF, 0xFF, 0xB9),
}

// Color returns the resting color of a kind.
func (k Kind) Color() core.Color {
	switch k {
	case Potion:
		return PotionColor
	case Bomb:
		return BombColor
	case ShrinkPill:
		return ShrinkPillColor
	case SlowPill:
		return SlowPillColor
	case Wall:
		return WallColor
	case Food:
		return FoodColor
	default:
		return core.Background
	}
}
