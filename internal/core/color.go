package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these onto ANSI 256-color codes.
type Color uint8

// Colors available to renderers.
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
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// BallPalette is the rotation of colors handed out to falling balls.
var BallPalette = []Color{
	ColorRed,
	ColorYellow,
	ColorCyan,
	ColorMagenta,
	ColorGreen,
	ColorOrange,
	ColorBrightRed,
	ColorBrightCyan,
}

// ansiCodes holds the 256-color code of every Color except ColorDefault.
var ansiCodes = [...]string{
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorBlue:         "4",
	ColorMagenta:      "5",
	ColorCyan:         "6",
	ColorWhite:        "7",
	ColorBrightRed:    "9",
	ColorBrightYellow: "11",
	ColorBrightCyan:   "14",
	ColorOrange:       "208",
	ColorGray:         "245",
}

// ANSI returns the 256-color code for c, or "" for the terminal default.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}

// Bright reports whether c is drawn bold.
func (c Color) Bright() bool {
	return c == ColorBrightRed || c == ColorBrightYellow
}
