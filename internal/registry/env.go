package registry

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-playroom/internal/device"
)

// Sound plays short effects. Calls never block and never fail visibly.
type Sound interface {
	PlayPop()
	PlayGiggle()
}

// Music toggles the background playlist.
type Music interface {
	SetEnabled(on bool)
}

// Tilt reports a two-axis device tilt, roughly in [-1, 1].
type Tilt interface {
	Read() (x, y float64)
}

// Haptics gives a short tactile tick.
type Haptics interface {
	Tap()
}

// Settings is the read-only view of persisted preferences a scene consumes.
type Settings interface {
	MusicOn() bool
	ColorMode() string
}

// Silent is a Sound and Music that does nothing.
// It stands in when no audio device is available and for SSH sessions.
type Silent struct{}

// PlayPop does nothing.
func (Silent) PlayPop() {}

// PlayGiggle does nothing.
func (Silent) PlayGiggle() {}

// SetEnabled does nothing.
func (Silent) SetEnabled(bool) {}

// StaticSettings is a fixed Settings value.
type StaticSettings struct {
	Music bool
	Mode  string
}

// MusicOn reports whether background music is enabled.
func (s StaticSettings) MusicOn() bool { return s.Music }

// ColorMode returns the colour mode name.
func (s StaticSettings) ColorMode() string {
	if s.Mode == "" {
		return "default"
	}
	return s.Mode
}

// Env bundles the collaborators a scene talks to.
// Any nil field is replaced by a no-op in WithDefaults.
type Env struct {
	Sound    Sound
	Music    Music
	Tilt     Tilt
	Haptics  Haptics
	Settings Settings

	// Clock supplies wall time for time-of-day visuals.
	Clock func() time.Time

	Logger *log.Logger
}

// WithDefaults returns a copy of e with every missing collaborator
// replaced by its silent fallback.
func (e Env) WithDefaults() Env {
	if e.Sound == nil {
		e.Sound = Silent{}
	}
	if e.Music == nil {
		e.Music = Silent{}
	}
	if e.Tilt == nil {
		e.Tilt = device.NoTilt{}
	}
	if e.Haptics == nil {
		e.Haptics = device.NopHaptics{}
	}
	if e.Settings == nil {
		e.Settings = StaticSettings{Music: true, Mode: "default"}
	}
	if e.Clock == nil {
		e.Clock = time.Now
	}
	if e.Logger == nil {
		e.Logger = log.New(io.Discard)
	}
	return e
}
