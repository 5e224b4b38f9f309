package core

// Color is the foreground color of a screen cell. The terminal layer maps
// each value to a concrete ANSI 256-color style.
type Color uint8

// Palette used by the platformer renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorMagenta
	ColorOrange
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite

	// NumColors is the size of the palette.
	NumColors = int(ColorBrightWhite) + 1
)

var colorNames = [NumColors]string{
	"default", "red", "magenta", "orange", "gray",
	"bright-red", "bright-green", "bright-yellow", "bright-white",
}

func (c Color) String() string {
	if int(c) < NumColors {
		return colorNames[c]
	}
	return "unknown"
}
