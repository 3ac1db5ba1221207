package bubbles

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-playroom/internal/config"
	"github.com/vovakirdan/tui-playroom/internal/core"
)

type shotPhase int

const (
	shotFlying shotPhase = iota
	shotFading
	shotDone
)

// Shot is one bubble-gun projectile. It flies once, fades once, and is gone.
type Shot struct {
	ID      string
	Size    float64
	Pos     core.Point // top-left
	Tint    core.Color
	Sticker string
	Visual  Visual
	Bonus   bool

	phase  shotPhase
	flight *Anim
	fade   *Anim
}

// EmitterParams is the bubble gun tuning in simulation units.
type EmitterParams struct {
	W, H        float64
	Interval    time.Duration
	MaxShots    int
	SizeMin     float64
	SizeMax     float64
	Spread      float64 // radians either side of Up
	DistanceMin float64
	DistanceMax float64
	DurationMin int // ms
	DurationMax int // ms
	GrowMs      int
	BonusSpeed  float64 // px/ms
	Jitter      float64
	StickerProb float64
	Stickers    []string
}

func emitterParams(t tuning, w, h float64) EmitterParams {
	e := t.cfg.Emitter
	return EmitterParams{
		W:           w,
		H:           h,
		Interval:    config.Ms(e.IntervalMs),
		MaxShots:    e.MaxShots,
		SizeMin:     e.SizeMin,
		SizeMax:     e.SizeMax,
		Spread:      t.shotSpread,
		DistanceMin: e.DistanceMin,
		DistanceMax: e.DistanceMax,
		DurationMin: e.DurationMinMs,
		DurationMax: e.DurationMaxMs,
		GrowMs:      e.GrowMs,
		BonusSpeed:  e.BonusSpeed,
		Jitter:      e.Jitter,
		StickerProb: e.StickerProb,
		Stickers:    t.cfg.Decor.Stickers,
	}
}

// Emitter is the bubble gun. It reads only the pointer and its own
// capacity. Insertions and removals are queued and applied by Flush at
// the start of the next tick.
type Emitter struct {
	p   EmitterParams
	rng core.Rand

	active   bool
	force    bool
	pointer  core.Point
	speed    float64 // px/ms
	lastMove time.Duration
	moved    bool
	lastEmit time.Duration

	shots         []*Shot
	pendingAdd    []*Shot
	pendingRemove map[string]bool
	nextID        int

	// OnLand is called once per shot when it reaches its target.
	OnLand func(now time.Duration)

	Emitted int
	Bonus   int
	Dropped int
}

// NewEmitter creates an idle emitter.
func NewEmitter(p EmitterParams, rng core.Rand) *Emitter {
	return &Emitter{p: p, rng: rng, pendingRemove: make(map[string]bool), lastEmit: never}
}

// Start activates the gun at pos and forces an emission on the next update.
func (e *Emitter) Start(pos core.Point) {
	e.active = true
	e.pointer = pos
	e.lastEmit = never
	e.force = true
}

// Press anchors speed tracking at pos. A finger landing is not motion.
func (e *Emitter) Press(pos core.Point, now time.Duration) {
	e.pointer = pos
	e.lastMove = now
	e.moved = true
	e.speed = 0
}

// Move tracks the pointer and its speed, whether or not the gun is active.
// The first sample has no earlier position and measures zero speed.
func (e *Emitter) Move(pos core.Point, now time.Duration) {
	e.speed = 0
	if e.moved {
		dtMs := math.Max(1, float64(now-e.lastMove)/float64(time.Millisecond))
		e.speed = pos.Dist(e.pointer) / dtMs
	}
	e.pointer = pos
	e.lastMove = now
	e.moved = true
}

// Stop deactivates the gun. Shots in flight finish on their own.
func (e *Emitter) Stop() {
	e.active = false
	e.force = false
	e.speed = 0
}

// Active reports whether the gun is firing.
func (e *Emitter) Active() bool {
	return e.active
}

// Speed returns the last measured pointer speed in px/ms.
func (e *Emitter) Speed() float64 {
	return e.speed
}

// Shots returns the live shots, oldest first.
func (e *Emitter) Shots() []*Shot {
	return e.shots
}

// Pending returns the number of queued insertions and removals.
func (e *Emitter) Pending() (adds, removes int) {
	return len(e.pendingAdd), len(e.pendingRemove)
}

// Flush applies queued removals and insertions, then drops the oldest
// shots beyond capacity.
func (e *Emitter) Flush() {
	if len(e.pendingRemove) > 0 {
		kept := e.shots[:0]
		for _, s := range e.shots {
			if !e.pendingRemove[s.ID] {
				kept = append(kept, s)
			}
		}
		clear(e.shots[len(kept):])
		e.shots = kept
		clear(e.pendingRemove)
	}
	if len(e.pendingAdd) > 0 {
		e.shots = append(e.shots, e.pendingAdd...)
		clear(e.pendingAdd)
		e.pendingAdd = e.pendingAdd[:0]
	}
	if over := len(e.shots) - e.p.MaxShots; e.p.MaxShots > 0 && over > 0 {
		e.Dropped += over
		e.shots = append(e.shots[:0:0], e.shots[over:]...)
	}
}

// Update advances live shots and fires on cadence while active.
func (e *Emitter) Update(now time.Duration) {
	for _, s := range e.shots {
		e.advanceShot(s, now)
	}

	if !e.active {
		return
	}
	if e.force || now-e.lastEmit >= e.p.Interval {
		e.lastEmit = now
		e.force = false

		x, y := e.pointer.X, e.pointer.Y
		e.spawn(x, y, now, false)

		if e.speed > e.p.BonusSpeed {
			e.spawn(
				core.ClampF(x+core.Uniform(e.rng, -e.p.Jitter, e.p.Jitter), 0, e.p.W),
				core.ClampF(y+core.Uniform(e.rng, -e.p.Jitter, e.p.Jitter), 0, e.p.H),
				now, true,
			)
		}
	}
}

func (e *Emitter) advanceShot(s *Shot, now time.Duration) {
	switch s.phase {
	case shotFlying:
		if !s.flight.Advance(now) {
			return
		}
		s.phase = shotFading
		v := &s.Visual
		s.fade = animate(now,
			seq(to(&v.RingOpacity, 0.45, 80), to(&v.RingScale, 1.5, 220), to(&v.RingOpacity, 0, 110)),
			seq(to(&v.Opacity, 0, 160)),
		)
		if e.OnLand != nil {
			e.OnLand(now)
		}
	case shotFading:
		if s.fade.Advance(now) {
			s.phase = shotDone
			e.pendingRemove[s.ID] = true
		}
	}
}

// spawn queues one shot centred on (x, y).
func (e *Emitter) spawn(x, y float64, now time.Duration, bonus bool) {
	p := e.p
	size := core.Uniform(e.rng, p.SizeMin, p.SizeMax)

	e.nextID++
	s := &Shot{
		ID:     fmt.Sprintf("shot-%d", e.nextID),
		Size:   size,
		Pos:    core.Point{X: x - size/2, Y: y - size/2},
		Tint:   Tints[core.UniformInt(e.rng, 0, len(Tints)-1)],
		Visual: Visual{Scale: 0.85, Opacity: 0.95, RingScale: 0.8, RingOpacity: 0},
		Bonus:  bonus,
	}
	if len(p.Stickers) > 0 && core.Chance(e.rng, p.StickerProb) {
		s.Sticker = p.Stickers[core.UniformInt(e.rng, 0, len(p.Stickers)-1)]
	}

	heading := Up + core.Uniform(e.rng, -p.Spread, p.Spread)
	dist := core.Uniform(e.rng, p.DistanceMin, p.DistanceMax)
	nx := core.ClampF(x+math.Cos(heading)*dist-size/2, 0, math.Max(0, p.W-size))
	ny := core.ClampF(y+math.Sin(heading)*dist-size/2, 0, math.Max(0, p.H-size))
	dur := core.UniformInt(e.rng, p.DurationMin, p.DurationMax)

	s.flight = animate(now,
		seq(to(&s.Pos.X, nx, dur).eased(core.EaseOutQuad)),
		seq(to(&s.Pos.Y, ny, dur).eased(core.EaseOutQuad)),
		seq(to(&s.Visual.Scale, 1, p.GrowMs).eased(core.EaseOutQuad)),
	)

	e.pendingAdd = append(e.pendingAdd, s)
	e.Emitted++
	if bonus {
		e.Bonus++
	}
}

// Clear drops every shot, live and queued.
func (e *Emitter) Clear() {
	e.shots = nil
	e.pendingAdd = nil
	clear(e.pendingRemove)
}
