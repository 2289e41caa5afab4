package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 12x4", s.Width(), s.Height())
	}
	want := strings.Repeat(strings.Repeat(" ", 12)+"\n", 3) + strings.Repeat(" ", 12)
	if s.String() != want {
		t.Errorf("new screen is not blank: %q", s.String())
	}
}

func TestScreenClipping(t *testing.T) {
	s := NewScreen(4, 3)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		s.Set(p[0], p[1], 'X')
		if s.Get(p[0], p[1]) != ' ' {
			t.Errorf("Get(%d, %d) outside the screen should be a space", p[0], p[1])
		}
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out-of-range Set wrote into the screen")
	}

	s.DrawText(2, 1, "abcdef")
	if got := s.Row(1); got != "  ab" {
		t.Errorf("clipped text row = %q, want %q", got, "  ab")
	}

	s.DrawRect(NewRect(-2, -2, 4, 4), '#')
	if got := s.Row(0); got != "##  " {
		t.Errorf("clipped rect row 0 = %q, want %q", got, "##  ")
	}
}

func TestScreenCells(t *testing.T) {
	s := NewScreen(6, 3)

	s.SetColored(1, 1, '*', ColorRed)
	if cell := s.GetCell(1, 1); cell != (Cell{Rune: '*', Color: ColorRed}) {
		t.Errorf("GetCell(1, 1) = %+v, want red *", cell)
	}
	if s.IsBlank(1, 1) || !s.IsBlank(0, 0) {
		t.Error("IsBlank should track drawn cells")
	}

	s.DrawRectColored(NewRect(0, 0, 2, 2), '#', ColorBlue)
	if s.GetCell(1, 1).Color != ColorBlue {
		t.Error("DrawRectColored should overwrite earlier cells")
	}

	s.DrawTextColored(2, 2, "ok", ColorGreen)
	if s.GetCell(3, 2) != (Cell{Rune: 'k', Color: ColorGreen}) {
		t.Errorf("DrawTextColored wrote %+v", s.GetCell(3, 2))
	}

	// A space drawn in colour is not blank.
	s.SetColored(5, 0, ' ', ColorGray)
	if s.IsBlank(5, 0) {
		t.Error("a coloured space should not count as blank")
	}

	s.Clear()
	for _, p := range [][2]int{{1, 1}, {3, 2}, {5, 0}} {
		if !s.IsBlank(p[0], p[1]) {
			t.Errorf("(%d, %d) not blank after Clear", p[0], p[1])
		}
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"ab", "   ab   "},
		{"abc", "  abc   "},
		{"⏎:20", "  ⏎:20  "}, // centred by runes, not bytes
	}

	for _, tt := range tests {
		s := NewScreen(8, 1)
		s.DrawTextCentered(0, tt.text)
		if got := s.Row(0); got != tt.want {
			t.Errorf("DrawTextCentered(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4))

	want := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("row %d = %q, want %q", y, got, row)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(10, 10)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Error("resizing to the same size should keep the content")
	}

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 8x4", s.Width(), s.Height())
	}
	if s.Row(0) != "        " {
		t.Errorf("resize should clear, row 0 = %q", s.Row(0))
	}

	s.Resize(-3, 2)
	if s.Width() != 0 || s.String() != "\n" {
		t.Errorf("negative width should clamp to 0, got %d and %q", s.Width(), s.String())
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 2)
	if got := s.Row(-1); got != "   " {
		t.Errorf("Row(-1) = %q, want spaces", got)
	}
	if got := s.Row(2); got != "   " {
		t.Errorf("Row(2) = %q, want spaces", got)
	}
}
