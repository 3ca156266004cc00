package core

// Color is a cell's foreground colour. The platform renderer decides how
// each one looks on the terminal.
type Color uint8

// Base terminal colours.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
)

// Bright variants, used for the hero, alerts and the HUD.
const (
	ColorBrightRed Color = iota + ColorWhite + 1
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
)

// Extended 256-colour shades.
const (
	ColorDarkGreen Color = iota + ColorBrightWhite + 1 // Floor tiles
	ColorOrange
	ColorGray
)
