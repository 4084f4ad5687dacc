package engine

import (
	"testing"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/element"
	"github.com/vovakirdan/gridsnake/internal/world"
)

// headingUp is a live snake of size 3 at (10,10) moving up, with the food
// straight ahead.
func headingUp() world.Snapshot {
	return world.Snapshot{
		GridSize: 32,
		Snake: world.SnakeView{
			Head:    core.Point{X: 10, Y: 10},
			Heading: core.DirUp,
			Speed:   0.2,
			Body:    []core.Point{{X: 10, Y: 12}, {X: 10, Y: 11}},
			Alive:   true,
			Size:    3,
		},
		Food:      world.ObjectView{Kind: element.Food, Cell: core.Point{X: 10, Y: 2}, Visibility: element.Visible},
		Inventory: map[element.Kind]int{},
	}
}

func wallAt(x, y int, vis element.Visibility) world.ObjectView {
	return world.ObjectView{Kind: element.Wall, Cell: core.Point{X: x, Y: y}, Visibility: vis, Solid: true}
}

func TestAutopilotRestartsWhenDead(t *testing.T) {
	s := headingUp()
	s.Snake.Alive = false

	if f := NewAutopilot().Poll(s); !f.Has(core.ActionRestart) {
		t.Errorf("dead snake: frame %v, want Restart", f.Order)
	}

	a := &Autopilot{}
	if f := a.Poll(s); !f.Empty() {
		t.Errorf("AutoRestart off: frame %v, want empty", f.Order)
	}
}

func TestAutopilotKeepsStraightTowardFood(t *testing.T) {
	if f := NewAutopilot().Poll(headingUp()); !f.Empty() {
		t.Errorf("frame %v, want no turn", f.Order)
	}
}

func TestAutopilotTurnsTowardFood(t *testing.T) {
	s := headingUp()
	s.Food.Cell = core.Point{X: 20, Y: 10}

	if f := NewAutopilot().Poll(s); !f.Has(core.ActionRight) {
		t.Errorf("frame %v, want Right", f.Order)
	}
}

func TestAutopilotAvoidsWall(t *testing.T) {
	s := headingUp()
	s.Objects = []world.ObjectView{wallAt(10, 9, element.Visible)}

	f := NewAutopilot().Poll(s)
	if f.Empty() {
		t.Fatal("autopilot drove into a wall")
	}
	if f.Has(core.ActionUp) || f.Has(core.ActionDown) {
		t.Errorf("frame %v, want a sideways turn", f.Order)
	}
}

func TestAutopilotIgnoresAppearingWall(t *testing.T) {
	s := headingUp()
	s.Objects = []world.ObjectView{wallAt(10, 9, element.Appearing)}

	if f := NewAutopilot().Poll(s); !f.Empty() {
		t.Errorf("frame %v, want no turn past an appearing wall", f.Order)
	}
}

func TestAutopilotAvoidsBody(t *testing.T) {
	s := headingUp()
	s.Food.Cell = core.Point{X: 20, Y: 10}
	s.Snake.Body = append(s.Snake.Body, core.Point{X: 11, Y: 10})
	s.Snake.Size = 4

	f := NewAutopilot().Poll(s)
	if f.Has(core.ActionRight) {
		t.Errorf("frame %v turns into the body", f.Order)
	}
}

func TestAutopilotDecidesOncePerCell(t *testing.T) {
	a := NewAutopilot()
	s := headingUp()
	a.Poll(s)

	s.Food.Cell = core.Point{X: 20, Y: 10}
	if f := a.Poll(s); !f.Empty() {
		t.Errorf("second poll in the same cell: frame %v, want empty", f.Order)
	}

	s.Snake.Head = core.Point{X: 10, Y: 9}
	if f := a.Poll(s); !f.Has(core.ActionRight) {
		t.Errorf("poll in a new cell: frame %v, want Right", f.Order)
	}
}

func TestAutopilotUsesPotionWhenBoxedIn(t *testing.T) {
	s := headingUp()
	s.Objects = []world.ObjectView{
		wallAt(10, 9, element.Visible),
		wallAt(9, 10, element.Visible),
		wallAt(11, 10, element.Visible),
	}

	if f := NewAutopilot().Poll(s); !f.Empty() {
		t.Errorf("boxed in without items: frame %v, want empty", f.Order)
	}

	s.Inventory[element.Potion] = 1
	if f := NewAutopilot().Poll(s); !f.Has(core.ActionUsePotion) {
		t.Errorf("boxed in with a potion: frame %v, want UsePotion", f.Order)
	}
}

func TestAutopilotInvincibleIgnoresWalls(t *testing.T) {
	s := headingUp()
	s.Snake.Invincible = true
	s.Objects = []world.ObjectView{wallAt(10, 9, element.Visible)}

	if f := NewAutopilot().Poll(s); !f.Empty() {
		t.Errorf("invincible snake: frame %v, want straight through", f.Order)
	}
}

func TestAutopilotItems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*world.Snapshot)
		want   core.Action
	}{
		{"bomb near wall", func(s *world.Snapshot) {
			s.Inventory[element.Bomb] = 1
			s.Objects = []world.ObjectView{wallAt(11, 11, element.Visible)}
		}, core.ActionUseBomb},
		{"slow when fast", func(s *world.Snapshot) {
			s.Inventory[element.SlowPill] = 1
			s.Snake.Speed = 0.5
		}, core.ActionUseSlow},
		{"shrink when long", func(s *world.Snapshot) {
			s.Inventory[element.ShrinkPill] = 1
			s.Snake.Size = 40
		}, core.ActionUseShrink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := headingUp()
			tt.mutate(&s)
			if f := NewAutopilot().Poll(s); !f.Has(tt.want) {
				t.Errorf("frame %v, want %v", f.Order, tt.want)
			}
		})
	}

	s := headingUp()
	s.Inventory[element.Bomb] = 1
	s.Inventory[element.SlowPill] = 1
	if f := NewAutopilot().Poll(s); !f.Empty() {
		t.Errorf("nothing to react to: frame %v, want empty", f.Order)
	}
}
