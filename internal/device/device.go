// Package device provides optional hardware-like capabilities for scenes.
// Each capability has a no-op fallback, and Probe resolves the set once
// at startup so scenes never check for availability per call.
package device

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// NoTilt reports a level device.
type NoTilt struct{}

// Read returns zero tilt.
func (NoTilt) Read() (x, y float64) { return 0, 0 }

// NopHaptics ignores taps.
type NopHaptics struct{}

// Tap does nothing.
func (NopHaptics) Tap() {}

// KeyTilt is a tilt sensor driven from the keyboard. Each nudge moves the
// reading toward the pressed direction and Decay eases it back to level.
type KeyTilt struct {
	mu   sync.Mutex
	x, y float64

	// Step is how far one nudge moves each axis.
	Step float64
	// HalfLife is the time a reading takes to fall to half.
	HalfLife time.Duration
}

// NewKeyTilt returns a keyboard tilt with sensible defaults.
func NewKeyTilt() *KeyTilt {
	return &KeyTilt{Step: 0.25, HalfLife: 400 * time.Millisecond}
}

// Nudge moves the reading by (dx, dy) steps, clamped to [-1, 1].
func (k *KeyTilt) Nudge(dx, dy float64) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.x = clampUnit(k.x + dx*k.Step)
	k.y = clampUnit(k.y + dy*k.Step)
}

// Decay eases the reading toward zero over dt.
func (k *KeyTilt) Decay(dt time.Duration) {
	if k.HalfLife <= 0 || dt <= 0 {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	f := halfLifeFactor(dt, k.HalfLife)
	k.x *= f
	k.y *= f
}

// Read returns the current reading.
func (k *KeyTilt) Read() (x, y float64) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.x, k.y
}

func halfLifeFactor(dt, halfLife time.Duration) float64 {
	return math.Pow(0.5, float64(dt)/float64(halfLife))
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// Bell rings the terminal bell as a haptic stand-in, at most once per Gap.
type Bell struct {
	mu   sync.Mutex
	w    io.Writer
	last time.Time
	now  func() time.Time

	Gap time.Duration
}

// NewBell writes bells to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w, now: time.Now, Gap: 150 * time.Millisecond}
}

// Tap rings the bell unless one rang within Gap.
func (b *Bell) Tap() {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := b.now()
	if !b.last.IsZero() && t.Sub(b.last) < b.Gap {
		return
	}
	b.last = t
	_, _ = b.w.Write([]byte{'\a'})
}

// ProbeOptions describes what the host environment offers.
type ProbeOptions struct {
	// KeyboardTilt enables arrow-key tilt.
	KeyboardTilt bool
	// BellWriter, if set, receives terminal bells for haptic taps.
	BellWriter io.Writer
}

// Capabilities is the resolved set of optional devices.
type Capabilities struct {
	Tilt    interface{ Read() (x, y float64) }
	Haptics interface{ Tap() }

	// Keys is the keyboard tilt, nil when disabled.
	Keys *KeyTilt
}

// Probe resolves capabilities once. Missing capabilities become no-ops.
func Probe(opts ProbeOptions, logger *log.Logger) Capabilities {
	caps := Capabilities{Tilt: NoTilt{}, Haptics: NopHaptics{}}
	if opts.KeyboardTilt {
		caps.Keys = NewKeyTilt()
		caps.Tilt = caps.Keys
	}
	if opts.BellWriter != nil {
		caps.Haptics = NewBell(opts.BellWriter)
	}
	if logger != nil {
		logger.Debug("device probe", "keyboard_tilt", opts.KeyboardTilt, "bell", opts.BellWriter != nil)
	}
	return caps
}
