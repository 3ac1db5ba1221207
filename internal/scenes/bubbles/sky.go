package bubbles

import "github.com/vovakirdan/tui-playroom/internal/core"

// SkyFor returns the sky colour for an hour of the day.
func SkyFor(hour int) core.Color {
	switch {
	case hour >= 20 || hour < 6:
		return core.ColorSkyNight
	case hour < 10:
		return core.ColorSkyMorning
	case hour < 17:
		return core.ColorSkyDay
	default:
		return core.ColorSkyEvening
	}
}

// IsNight reports whether the hour falls in the night band.
func IsNight(hour int) bool {
	return SkyFor(hour) == core.ColorSkyNight
}
