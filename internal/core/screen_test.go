package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 50)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 50 {
		t.Errorf("Height() = %d, expected 50", s.Height())
	}

	// Check that it's initialized with blank cells
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetCellGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, ColorYellow, ColorBlack, 'X')
	want := Cell{Rune: 'X', Fg: ColorYellow, Bg: ColorBlack}
	if got := s.GetCell(5, 5); got != want {
		t.Errorf("GetCell(5, 5) = %+v, expected %+v", got, want)
	}
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, ColorRed, ColorBlack, 'A')
	s.SetCell(100, 0, ColorRed, ColorBlack, 'A')
	s.SetCell(0, -1, ColorRed, ColorBlack, 'A')
	s.SetCell(0, 100, ColorRed, ColorBlack, 'A')

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, ColorRed, ColorNavy, 'X')
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenClearBg(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(2, 2, ColorYellow, ColorBlack, '#')
	s.ClearBg(ColorNavy)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.Bg != ColorNavy {
				t.Errorf("After ClearBg, expected navy space at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.ClearBg(ColorNavy)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, c.Rune)
		}
		if c.Bg != ColorDefault {
			t.Errorf("DrawText: expected default background at (%d, 1), got %v", 2+i, c.Bg)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "█a")

	if s.Get(0, 0) != '█' || s.Get(1, 0) != 'a' {
		t.Errorf("Multibyte text should occupy one cell per rune, got row %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	text := "Hi"
	s.DrawTextCentered(2, text)

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	// Out of bounds row
	outOfBounds := s.Row(-1)
	if outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}
