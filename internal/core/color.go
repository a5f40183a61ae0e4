package core

// Color represents a foreground color for a screen cell.
// Uses ANSI color codes for terminal compatibility.
type Color uint8

// Pong draws everything in one flat foreground colour.
const (
	ColorDefault Color = iota
	ColorBrightWhite
)
