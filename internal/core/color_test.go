package core

import "testing"

func TestColorNudgeConverges(t *testing.T) {
	tests := []struct {
		name   string
		from   Color
		target Color
	}{
		{"background to wall", Background, RGB(0x73, 0x73, 0x73)},
		{"background to food", Background, RGB(0xFF, 0x00, 0x00)},
		{"black to white", RGB(0, 0, 0), RGB(0xFF, 0xFF, 0xFF)},
		{"already equal", RGB(10, 20, 30), RGB(10, 20, 30)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			steps := tc.from.Distance(tc.target)
			c := tc.from
			for i := 0; i < steps; i++ {
				next := c.Nudge(tc.target)
				if next.Distance(tc.target) > c.Distance(tc.target) {
					t.Fatalf("Nudge moved away from target at step %d", i)
				}
				c = next
			}
			if c != tc.target {
				t.Errorf("after %d nudges got %v, expected %v", steps, c, tc.target)
			}
		})
	}
}

func TestColorNudgeChannelIndependent(t *testing.T) {
	c := RGB(10, 200, 50).Nudge(RGB(20, 100, 50))
	if c.R != 11 || c.G != 199 || c.B != 50 {
		t.Errorf("Nudge = %v, expected channels 11, 199, 50", c)
	}
	if c.A != 0xFF {
		t.Errorf("Nudge should not touch alpha, got %d", c.A)
	}
}

func TestColorAddSaturates(t *testing.T) {
	c := RGB(250, 5, 128).Add(10, -10, 0)
	if c.R != 255 || c.G != 0 || c.B != 128 {
		t.Errorf("Add = %v, expected 255, 0, 128", c)
	}
}

func TestColorString(t *testing.T) {
	if s := Background.String(); s != "#1e1e1e" {
		t.Errorf("Background.String() = %q, expected #1e1e1e", s)
	}
}
