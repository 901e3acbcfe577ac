package core

import "math"

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing the game to draw
// shapes and text while the platform handles actual display.
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

// Resize changes the screen dimensions and clears it.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// SetCell places a colored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, r, c)
		i++
	}
}

// FillRect fills the cells covered by the rectangle [x, x+w) x [y, y+h).
func (s *Screen) FillRect(x, y, w, h int, r rune, c Color) {
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			s.SetCell(cx, cy, r, c)
		}
	}
}

// FillEllipse fills every cell whose center lies inside the ellipse centered
// at (cx, cy) with radii rx, ry, all in cell units. The cell containing the
// center is always filled so tiny shapes stay visible.
func (s *Screen) FillEllipse(cx, cy, rx, ry float64, r rune, c Color) {
	s.SetCell(int(math.Floor(cx)), int(math.Floor(cy)), r, c)
	if rx <= 0 || ry <= 0 {
		return
	}

	minX := int(math.Floor(cx - rx))
	maxX := int(math.Ceil(cx + rx))
	minY := int(math.Floor(cy - ry))
	maxY := int(math.Ceil(cy + ry))
	for y := minY; y <= maxY; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		for x := minX; x <= maxX; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				s.SetCell(x, y, r, c)
			}
		}
	}
}
