package core

// Color is a semantic foreground colour for a screen cell.
// The platform layer decides the actual terminal colour for each value.
type Color uint8

const (
	ColorDefault Color = iota
	ColorPlayer
	ColorBrick
	ColorSpike
	ColorSpring
	ColorGoal
	ColorHUD
	ColorTitle
	ColorDim
	ColorWarn
)
