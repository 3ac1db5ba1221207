package bubbles

import (
	"time"

	"github.com/vovakirdan/tui-playroom/internal/core"
)

// State is where a bubble is in its lifecycle.
type State int

const (
	StateLeg        State = iota // steering toward a waypoint
	StateExpiring                // pop animation running
	StateRespawning              // pop finished, waiting to be redrawn and placed
)

func (s State) String() string {
	switch s {
	case StateLeg:
		return "leg"
	case StateExpiring:
		return "expiring"
	case StateRespawning:
		return "respawning"
	default:
		return "unknown"
	}
}

// Visual holds the animatable look of a bubble or shot. Steering never reads it.
type Visual struct {
	Scale       float64
	Opacity     float64
	RingScale   float64
	RingOpacity float64
}

func restingVisual() Visual {
	return Visual{Scale: 1, Opacity: 1, RingScale: 0.8, RingOpacity: 0}
}

// Tints is the bubble palette.
var Tints = []core.Color{
	core.ColorTintBlue,
	core.ColorTintPink,
	core.ColorTintPeach,
	core.ColorTintMint,
	core.ColorTintLilac,
}

// Bubble is one drifting entity. Its ID is stable across respawns.
type Bubble struct {
	ID    string
	Class int // index into the configured size classes

	Size    float64
	Pos     core.Point // top-left, inside [0, W-size] x [0, H-size]
	Heading float64

	Speed    float64 // px/sec
	MaxTurn  float64
	LegMin   float64
	LegMax   float64
	BiasGain float64
	Parallax float64
	TouchPad float64

	Tint    core.Color
	Sticker string
	Visual  Visual

	Stopped bool
	State   State

	// TTL is the lifetime drawn at the last placement; the bubble expires
	// at Born+TTL unless it is popped first.
	TTL  time.Duration
	Born time.Duration

	ttl core.TimerID
	leg Leg
	pop *Anim
}

// Center returns the middle of the bubble in simulation pixels.
func (b *Bubble) Center() core.Point {
	return core.Point{X: b.Pos.X + b.Size/2, Y: b.Pos.Y + b.Size/2}
}

func (b *Bubble) neighbor() Neighbor {
	return Neighbor{ID: b.ID, Pos: b.Pos, Size: b.Size}
}
