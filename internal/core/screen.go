package core

import (
	"strings"
)

// Screen is a 2D cell buffer for rendering scenes.
// It decouples scene rendering from the terminal, allowing scenes to draw
// using simple rune operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with default-coloured spaces.
func (s *Screen) Clear() {
	s.Fill(ColorDefault)
}

// Fill paints every cell with a space on the given background.
func (s *Screen) Fill(bg Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', Fg: ColorDefault, Bg: bg}
		}
	}
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places a rune at the given position, keeping the cell colours.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if !s.inside(x, y) {
		return
	}
	s.cells[y][x].Rune = r
}

// SetFg places a rune with a foreground colour, keeping the background.
func (s *Screen) SetFg(x, y int, r rune, fg Color) {
	if !s.inside(x, y) {
		return
	}
	s.cells[y][x].Rune = r
	s.cells[y][x].Fg = fg
}

// SetBg changes only the background of a cell.
func (s *Screen) SetBg(x, y int, bg Color) {
	if !s.inside(x, y) {
		return
	}
	s.cells[y][x].Bg = bg
}

// SetCell replaces a whole cell.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.inside(x, y) {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if !s.inside(x, y) {
		return ' '
	}
	return s.cells[y][x].Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	i := 0
	for _, r := range text {
		s.SetFg(x+i, y, r, fg)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, fg Color) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text, fg)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune, fg, bg Color) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetCell(x, y, Cell{Rune: fill, Fg: fg, Bg: bg})
		}
	}
}

// DrawBox draws a rounded box outline.
func (s *Screen) DrawBox(r Rect, fg Color) {
	s.SetFg(r.X, r.Y, '╭', fg)
	s.SetFg(r.Right()-1, r.Y, '╮', fg)
	s.SetFg(r.X, r.Bottom()-1, '╰', fg)
	s.SetFg(r.Right()-1, r.Bottom()-1, '╯', fg)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetFg(x, r.Y, '─', fg)
		s.SetFg(x, r.Bottom()-1, '─', fg)
	}

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetFg(r.X, y, '│', fg)
		s.SetFg(r.Right()-1, y, '│', fg)
	}
}

// String converts the screen buffer to plain text, one row per line.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
