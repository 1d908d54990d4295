package core

// Color is the foreground color of a screen cell.
// The platform maps each value to an ANSI color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightBlue
	ColorGray
)

// Colors of the arkanoid entities, matching the classic palette.
const (
	ColorBall   = ColorGreen
	ColorPaddle = ColorRed
	ColorBrick  = ColorBlue
)
