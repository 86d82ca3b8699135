package core

// Color is a foreground color for a screen cell, mapped by the platform to
// ANSI colors at render time.
type Color uint8

// Colors used by the game's drawable elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)
