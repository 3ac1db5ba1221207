package config

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-playroom/internal/core"
)

// Colour modes selectable in the parental area.
const (
	ModeDefault      = "default"
	ModeNight        = "night"
	ModeHighContrast = "high-contrast"
)

// ColorModes lists the modes in the order the parental area cycles them.
var ColorModes = []string{ModeDefault, ModeNight, ModeHighContrast}

// Theme maps semantic scene colours to terminal colours.
type Theme struct {
	Name   string
	Colors [core.ColorCount]lipgloss.Color
}

// Color returns the terminal colour for c. The empty colour means
// "terminal default".
func (t Theme) Color(c core.Color) lipgloss.Color {
	if int(c) >= len(t.Colors) {
		return ""
	}
	return t.Colors[c]
}

var defaultTheme = Theme{
	Name: ModeDefault,
	Colors: [core.ColorCount]lipgloss.Color{
		core.ColorSkyNight:   "#172b44",
		core.ColorSkyMorning: "#cfe9ff",
		core.ColorSkyDay:     "#bfe4ff",
		core.ColorSkyEvening: "#ffd8b0",
		core.ColorCloud:      "#ffffff",
		core.ColorCloudFaint: "#e8f2fb",
		core.ColorTintBlue:   "#4aa8e8",
		core.ColorTintPink:   "#e87cc4",
		core.ColorTintPeach:  "#e8a640",
		core.ColorTintMint:   "#3fbf6a",
		core.ColorTintLilac:  "#9a7ee8",
		core.ColorRing:       "#ffffff",
		core.ColorSticker:    "#5a3a1a",
		core.ColorBadge:      "#ff5fa2",
		core.ColorLock:       "#445566",
		core.ColorText:       "#334455",
	},
}

var nightTheme = Theme{
	Name: ModeNight,
	Colors: [core.ColorCount]lipgloss.Color{
		core.ColorSkyNight:   "#0d1a2b",
		core.ColorSkyMorning: "#172b44",
		core.ColorSkyDay:     "#172b44",
		core.ColorSkyEvening: "#172b44",
		core.ColorCloud:      "#6b7f99",
		core.ColorCloudFaint: "#3b4d66",
		core.ColorTintBlue:   "#9bd7ff",
		core.ColorTintPink:   "#ffd7f2",
		core.ColorTintPeach:  "#ffe1a6",
		core.ColorTintMint:   "#c9ffd2",
		core.ColorTintLilac:  "#e6ddff",
		core.ColorRing:       "#c0d0e0",
		core.ColorSticker:    "#ffe1a6",
		core.ColorBadge:      "#ffd7f2",
		core.ColorLock:       "#8899aa",
		core.ColorText:       "#c0d0e0",
	},
}

var highContrastTheme = Theme{
	Name: ModeHighContrast,
	Colors: [core.ColorCount]lipgloss.Color{
		core.ColorSkyNight:   "0",
		core.ColorSkyMorning: "0",
		core.ColorSkyDay:     "0",
		core.ColorSkyEvening: "0",
		core.ColorCloud:      "8",
		core.ColorCloudFaint: "8",
		core.ColorTintBlue:   "14",
		core.ColorTintPink:   "13",
		core.ColorTintPeach:  "11",
		core.ColorTintMint:   "10",
		core.ColorTintLilac:  "12",
		core.ColorRing:       "15",
		core.ColorSticker:    "15",
		core.ColorBadge:      "11",
		core.ColorLock:       "15",
		core.ColorText:       "15",
	},
}

// ThemeFor returns the theme of a colour mode; unknown modes get the default.
func ThemeFor(mode string) Theme {
	switch mode {
	case ModeNight:
		return nightTheme
	case ModeHighContrast:
		return highContrastTheme
	default:
		return defaultTheme
	}
}

// NextColorMode returns the mode after mode in ColorModes, wrapping around.
func NextColorMode(mode string) string {
	for i, m := range ColorModes {
		if m == mode {
			return ColorModes[(i+1)%len(ColorModes)]
		}
	}
	return ModeDefault
}
