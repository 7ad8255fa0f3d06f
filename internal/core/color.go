package core

// Color is the foreground colour of a screen cell. Only the colours the
// games draw with are defined.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed           // red ghost
	ColorGreen         // upper pipe
	ColorBlue          // maze walls
	ColorWhite         // food
	ColorBrightRed     // cherry
	ColorBrightGreen   // lower pipe, doodler
	ColorBrightYellow  // player, bird
	ColorBrightMagenta // pink ghost
	ColorBrightCyan    // blue ghost
	ColorBrightWhite   // HUD text
	ColorOrange        // orange ghost, platforms
	colorCount
)

// ansi256 holds the 256-colour palette index of each Color.
var ansi256 = [colorCount]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorBlue:          "4",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
}

// ANSI returns the 256-colour palette index for c, or "" for the
// terminal default and unknown values.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansi256[c]
}
