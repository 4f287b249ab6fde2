package core

import (
	"strings"
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// blank is the cleared cell value.
var blank = Cell{Rune: ' '}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing the game to draw
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

// Clear fills the entire screen with blank default-colored cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// in reports whether (x, y) lies on the screen.
func (s *Screen) in(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places a rune with a foreground color at the given position, keeping the background.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, fg Color) {
	if !s.in(x, y) {
		return
	}
	s.cells[y][x].Rune = r
	s.cells[y][x].FG = fg
}

// SetCell replaces the whole cell at the given position.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.in(x, y) {
		return
	}
	s.cells[y][x] = c
}

// SetBG changes only the background color of a cell.
func (s *Screen) SetBG(x, y int, bg Color) {
	if !s.in(x, y) {
		return
	}
	s.cells[y][x].BG = bg
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.in(x, y) {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r, fg)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, fg Color) {
	s.DrawTextCenteredAt(s.width/2, y, text, fg)
}

// DrawTextCenteredAt draws text centered on column cx.
func (s *Screen) DrawTextCenteredAt(cx, y int, text string, fg Color) {
	n := len([]rune(text))
	s.DrawText(cx-n/2, y, text, fg)
}

// FillRect fills a rectangular area with the given rune and colors.
func (s *Screen) FillRect(x, y, w, h int, r rune, fg, bg Color) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetCell(col, row, Cell{Rune: r, FG: fg, BG: bg})
		}
	}
}

// BoxStyle is the set of runes used to outline a box.
type BoxStyle struct {
	TL, TR, BL, BR rune
	H, V           rune
}

// Box outline styles.
var (
	BoxLight = BoxStyle{TL: '┌', TR: '┐', BL: '└', BR: '┘', H: '─', V: '│'}
	BoxHeavy = BoxStyle{TL: '┏', TR: '┓', BL: '┗', BR: '┛', H: '━', V: '┃'}
	BoxASCII = BoxStyle{TL: '+', TR: '+', BL: '+', BR: '+', H: '-', V: '|'}
)

// DrawBox draws a box outline, keeping the existing backgrounds.
func (s *Screen) DrawBox(x, y, w, h int, style BoxStyle, fg Color) {
	if w <= 0 || h <= 0 {
		return
	}
	right, bottom := x+w-1, y+h-1

	s.Set(x, y, style.TL, fg)
	s.Set(right, y, style.TR, fg)
	s.Set(x, bottom, style.BL, fg)
	s.Set(right, bottom, style.BR, fg)

	for col := x + 1; col < right; col++ {
		s.Set(col, y, style.H, fg)
		s.Set(col, bottom, style.H, fg)
	}
	for row := y + 1; row < bottom; row++ {
		s.Set(x, row, style.V, fg)
		s.Set(right, row, style.V, fg)
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune, fg Color) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, r, fg)
	}
}

// String converts the screen buffer to plain text, dropping colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as plain text.
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
