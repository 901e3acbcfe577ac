package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal color.
type Color uint8

// Palette used by the game.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorOrange
	ColorBlue
	ColorRed
	ColorYellow
	ColorDim
)
