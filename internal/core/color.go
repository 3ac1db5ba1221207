package core

// Color represents a semantic colour for a screen cell.
// The platform maps these to terminal colours through the active theme.
type Color uint8

// Predefined colours for scene elements.
const (
	ColorDefault Color = iota
	ColorSkyNight
	ColorSkyMorning
	ColorSkyDay
	ColorSkyEvening
	ColorCloud
	ColorCloudFaint
	ColorTintBlue
	ColorTintPink
	ColorTintPeach
	ColorTintMint
	ColorTintLilac
	ColorRing
	ColorSticker
	ColorBadge
	ColorLock
	ColorText
	colorCount
)

// ColorCount is the number of defined colours.
const ColorCount = int(colorCount)

// Cell is one character of the screen buffer.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}
