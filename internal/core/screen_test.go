package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	for y := range 3 {
		for x := range 6 {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Fatalf("cell (%d,%d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	// None of these may panic or touch the buffer
	s.Set(-1, 0, 'x')
	s.SetFg(4, 0, 'x', ColorText)
	s.SetBg(0, 2, ColorSkyDay)
	s.SetCell(9, 9, Cell{Rune: 'x'})

	if strings.ContainsRune(s.String(), 'x') {
		t.Error("out-of-bounds writes should be ignored")
	}
	if s.Get(-1, -1) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
	if c := s.GetCell(5, 0); c.Rune != ' ' {
		t.Errorf("out-of-bounds GetCell = %q, expected space", c.Rune)
	}
	if got := s.Row(7); got != "    " {
		t.Errorf("out-of-bounds Row = %q, expected blanks", got)
	}
}

func TestScreenColorLayers(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want Cell
	}{
		{
			name: "fill sets background",
			draw: func(s *Screen) { s.Fill(ColorSkyNight) },
			want: Cell{Rune: ' ', Bg: ColorSkyNight},
		},
		{
			name: "fg keeps background",
			draw: func(s *Screen) {
				s.Fill(ColorSkyDay)
				s.SetFg(1, 1, 'o', ColorTintPink)
			},
			want: Cell{Rune: 'o', Fg: ColorTintPink, Bg: ColorSkyDay},
		},
		{
			name: "bg keeps rune and foreground",
			draw: func(s *Screen) {
				s.SetFg(1, 1, '°', ColorRing)
				s.SetBg(1, 1, ColorCloud)
			},
			want: Cell{Rune: '°', Fg: ColorRing, Bg: ColorCloud},
		},
		{
			name: "set keeps colours",
			draw: func(s *Screen) {
				s.SetCell(1, 1, Cell{Rune: 'a', Fg: ColorText, Bg: ColorLock})
				s.Set(1, 1, 'b')
			},
			want: Cell{Rune: 'b', Fg: ColorText, Bg: ColorLock},
		},
		{
			name: "clear resets everything",
			draw: func(s *Screen) {
				s.Fill(ColorSkyEvening)
				s.SetFg(1, 1, 'z', ColorBadge)
				s.Clear()
			},
			want: Cell{Rune: ' '},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(3, 3)
			tt.draw(s)
			if got := s.GetCell(1, 1); got != tt.want {
				t.Errorf("cell = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(9, 2)
	s.DrawText(6, 0, "Yay!", ColorBadge)
	s.DrawTextCentered(1, "pop", ColorText)

	if got := s.Row(0); got != "      Yay" {
		t.Errorf("row 0 = %q, text should clip at the edge", got)
	}
	if got := s.Row(1); got != "   pop   " {
		t.Errorf("row 1 = %q, expected centred text", got)
	}
	if c := s.GetCell(3, 1); c.Fg != ColorText {
		t.Errorf("fg = %v, expected ColorText", c.Fg)
	}
}

func TestScreenShapes(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(1, 1, 2, 2), '#', ColorCloud, ColorCloudFaint)

	want := []string{
		"      ",
		" ##   ",
		" ##   ",
		"      ",
	}
	if got := s.String(); got != strings.Join(want, "\n") {
		t.Errorf("rect:\n%s\nexpected:\n%s", got, strings.Join(want, "\n"))
	}
	if c := s.GetCell(2, 2); c.Bg != ColorCloudFaint {
		t.Errorf("rect bg = %v, expected ColorCloudFaint", c.Bg)
	}

	s.Clear()
	s.DrawBox(NewRect(0, 0, 6, 4), ColorLock)
	want = []string{
		"╭────╮",
		"│    │",
		"│    │",
		"╰────╯",
	}
	if got := s.String(); got != strings.Join(want, "\n") {
		t.Errorf("box:\n%s\nexpected:\n%s", got, strings.Join(want, "\n"))
	}
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd", ColorText)
	s.DrawText(0, 1, "efgh", ColorText)

	s.Resize(2, 3)
	if got := s.String(); got != "ab\nef\n  " {
		t.Errorf("after shrink = %q", got)
	}

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Error("same-size resize should be a no-op")
	}
}
