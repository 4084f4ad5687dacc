package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with background spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.Color != Background {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)
	red := RGB(0xFF, 0, 0)

	s.Set(5, 5, 'X', red)
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}
	if s.GetCell(5, 5).Color != red {
		t.Errorf("GetCell(5, 5).Color = %v, expected %v", s.GetCell(5, 5).Color, red)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', red)
	s.Set(100, 0, 'A', red)
	s.Set(0, -1, 'A', red)
	s.Set(0, 100, 'A', red)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			s.Set(x, y, 'X', RGB(1, 2, 3))
		}
	}

	s.Clear()

	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("After Clear, expected blank screen, got %q", s.String())
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", Background)

	if !strings.HasPrefix(s.Row(1)[2:], "Hello") {
		t.Errorf("Row(1) = %q, expected Hello at column 2", s.Row(1))
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", Background)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "éé", Background)

	if s.Get(4, 0) != 'é' || s.Get(5, 0) != 'é' {
		t.Errorf("Row(0) = %q, expected centered runes", s.Row(0))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", Background)
	s.DrawText(0, 1, "BBBBB", Background)
	s.DrawText(0, 2, "CCCCC", Background)

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if len(s.Row(3)) != 8 {
		t.Errorf("Row length should be 8, got %d", len(s.Row(3)))
	}
	if s.Row(-1) != "        " {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}
