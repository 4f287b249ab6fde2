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

	// Check that it's initialized with blank default cells
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.FG.IsSet() || c.BG.IsSet() {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorCyan)
	if s.GetCell(5, 5).Rune != 'X' {
		t.Errorf("GetCell(5, 5) = %q, expected 'X'", s.GetCell(5, 5).Rune)
	}
	if s.GetCell(5, 5).FG != ColorCyan {
		t.Error("Set should store the foreground color")
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorWhite)
	s.Set(100, 0, 'A', ColorWhite)
	s.Set(0, -1, 'A', ColorWhite)
	s.Set(0, 100, 'A', ColorWhite)

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return a blank")
	}
	if s.GetCell(100, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return a blank")
	}
}

func TestScreenSetKeepsBackground(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetBG(2, 2, ColorDarkBG)
	s.Set(2, 2, '●', ColorWhite)

	c := s.GetCell(2, 2)
	if c.BG != ColorDarkBG {
		t.Errorf("Set should keep background, got %+v", c.BG)
	}
	if c.Rune != '●' || c.FG != ColorWhite {
		t.Errorf("Set should replace rune and foreground, got %+v", c)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(0, 0, 10, 10, 'X', ColorWhite, ColorGray)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y) != blank {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorWhite)

	expected := "Hello"
	for i, ch := range expected {
		if s.GetCell(2+i, 1).Rune != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.GetCell(2+i, 1).Rune)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorWhite) // Only "He" should fit
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "●●x", ColorWhite)

	// Each rune occupies exactly one cell
	if s.GetCell(0, 0).Rune != '●' || s.GetCell(1, 0).Rune != '●' || s.GetCell(2, 0).Rune != 'x' {
		t.Errorf("multibyte text misplaced: %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorWhite)

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	x := (20 - 2) / 2
	if s.GetCell(x, 2).Rune != 'H' || s.GetCell(x+1, 2).Rune != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(2, 2, 3, 3, '#', ColorWhite, ColorGray)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			c := s.GetCell(x, y)
			if c.Rune != '#' || c.BG != ColorGray {
				t.Errorf("FillRect: expected '#' on gray at (%d, %d), got %+v", x, y, c)
			}
		}
	}

	if s.GetCell(1, 1).Rune != ' ' || s.GetCell(5, 5).Rune != ' ' {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4, BoxLight, ColorCyan)

	if s.GetCell(1, 1).Rune != '┌' {
		t.Errorf("Top-left corner should be '┌', got %q", s.GetCell(1, 1).Rune)
	}
	if s.GetCell(5, 1).Rune != '┐' {
		t.Errorf("Top-right corner should be '┐', got %q", s.GetCell(5, 1).Rune)
	}
	if s.GetCell(1, 4).Rune != '└' {
		t.Errorf("Bottom-left corner should be '└', got %q", s.GetCell(1, 4).Rune)
	}
	if s.GetCell(5, 4).Rune != '┘' {
		t.Errorf("Bottom-right corner should be '┘', got %q", s.GetCell(5, 4).Rune)
	}

	for x := 2; x < 5; x++ {
		if s.GetCell(x, 1).Rune != '─' || s.GetCell(x, 4).Rune != '─' {
			t.Errorf("Horizontal edges should be '─' at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.GetCell(1, y).Rune != '│' || s.GetCell(5, y).Rune != '│' {
			t.Errorf("Vertical edges should be '│' at y=%d", y)
		}
	}

	s.Clear()
	s.DrawBox(0, 0, 3, 3, BoxASCII, ColorCyan)
	if s.GetCell(0, 0).Rune != '+' || s.GetCell(1, 0).Rune != '-' || s.GetCell(0, 1).Rune != '|' {
		t.Errorf("ASCII box drawn incorrectly:\n%s", s.String())
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawHLine(2, 2, 5, '-', ColorGray)

	for x := 2; x < 7; x++ {
		if s.GetCell(x, 2).Rune != '-' {
			t.Errorf("DrawHLine: expected '-' at (%d, 2), got %q", x, s.GetCell(x, 2).Rune)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorWhite)
	s.DrawText(0, 1, "BBBBB", ColorWhite)
	s.DrawText(0, 2, "CCCCC", ColorWhite)

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorWhite)
	s.DrawText(0, 5, "World", ColorWhite)

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if len(s.Row(0)) != 15 {
		t.Errorf("Row length should be 15, got %d", len(s.Row(0)))
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)
	if s.Row(-1) != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}
