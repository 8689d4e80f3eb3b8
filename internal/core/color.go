package core

// Color represents a foreground color for a screen cell.
// Values map onto ANSI 256-color codes in the platform renderer.
type Color uint8

// Palette used by the board.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// String returns the color name, mostly for test failure output.
func (c Color) String() string {
	names := [...]string{
		"default", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
		"bright-red", "bright-green", "bright-yellow", "bright-white", "orange", "gray",
	}
	if int(c) < len(names) {
		return names[c]
	}
	return "unknown"
}
