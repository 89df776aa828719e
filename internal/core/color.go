package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// tilePalette is the rotation used for letter tiles.
var tilePalette = []Color{
	ColorBrightYellow,
	ColorBrightCyan,
	ColorBrightMagenta,
	ColorOrange,
	ColorBrightBlue,
	ColorYellow,
	ColorCyan,
	ColorMagenta,
}

// TileColor picks a tile color from a random draw. Presentation only.
func TileColor(n int) Color {
	if n < 0 {
		n = -n
	}
	return tilePalette[n%len(tilePalette)]
}
