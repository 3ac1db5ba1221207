package bubbles

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-playroom/internal/config"
	"github.com/vovakirdan/tui-playroom/internal/core"
)

// spawnCrowd creates the initial bubbles. Every bubble is placed before
// any of them plans a leg, so the first separation pass sees the whole crowd.
func (s *Scene) spawnCrowd() {
	n := BubbleCount(s.w, s.h, s.t.cfg.Population)
	s.bubbles = make(map[string]*Bubble, n)
	s.order = make([]string, 0, n)
	s.snapshot = make([]Neighbor, 0, n)
	s.nextID = 0

	for i := 0; i < n; i++ {
		s.nextID++
		b := &Bubble{ID: fmt.Sprintf("bubble-%d", s.nextID)}
		s.dress(b, s.pickClass())
		b.Pos = Place(s.rng, b.ID, b.Size, s.snapshot, s.placement()).Pos
		s.bubbles[b.ID] = b
		s.order = append(s.order, b.ID)
		s.snapshot = append(s.snapshot, b.neighbor())
	}

	now := s.timers.Now()
	for _, id := range s.order {
		b := s.bubbles[id]
		s.scheduleTTL(b)
		b.leg = PlanLeg(s.rng, b, s.snapshot, s.steering(), s.boost, now)
	}
}

// pickClass draws a size class by weight.
func (s *Scene) pickClass() int {
	sizes := s.t.cfg.Sizes
	total := 0.0
	for _, c := range sizes {
		total += c.Weight
	}
	r := s.rng.Float64() * total
	for i, c := range sizes {
		if r < c.Weight {
			return i
		}
		r -= c.Weight
	}
	return len(sizes) - 1
}

// dress draws every size-derived parameter and the look of b.
// Smaller bubbles are faster, turn harder and take longer legs.
func (s *Scene) dress(b *Bubble, class int) {
	c := s.t.cfg.Sizes[class]
	m := s.t.cfg.Motion
	d := s.t.cfg.Decor

	b.Class = class
	b.Size = core.Uniform(s.rng, c.MinSize, c.MaxSize)
	ratio := (c.MaxSize - b.Size) / (c.MaxSize - c.MinSize + 0.0001)

	b.Speed = core.Uniform(s.rng, m.SpeedMin, m.SpeedMax) * (0.85 + ratio*0.45)
	b.MaxTurn = s.t.maxTurn * (0.9 + 0.9*ratio)
	legFactor := 1.1 - 0.4*ratio
	b.LegMin = m.LegMin * legFactor
	b.LegMax = m.LegMax * legFactor
	b.BiasGain = m.BiasGainMin + (1-ratio)*m.BiasGainSizeBoost
	b.Heading = Up + core.Uniform(s.rng, -s.t.initialSpread, s.t.initialSpread)

	b.Tint = Tints[core.UniformInt(s.rng, 0, len(Tints)-1)]
	b.Sticker = ""
	if len(d.Stickers) > 0 && core.Chance(s.rng, d.StickerProb) {
		b.Sticker = d.Stickers[core.UniformInt(s.rng, 0, len(d.Stickers)-1)]
	}
	b.TouchPad = c.TouchPad

	span := s.t.sizeMax - s.t.sizeMin
	if span <= 0 {
		span = 1
	}
	b.Parallax = 0.35 + (b.Size-s.t.sizeMin)/span*0.85

	b.Visual = restingVisual()
	b.Stopped = false
	b.State = StateLeg
	b.pop = nil
}

// scheduleTTL replaces any pending expiry with a fresh one.
func (s *Scene) scheduleTTL(b *Bubble) {
	if b.ttl != 0 {
		s.timers.Cancel(b.ttl)
	}
	c := s.t.cfg.Sizes[b.Class]
	b.TTL = config.Ms(core.UniformInt(s.rng, c.TTLMinMs, c.TTLMaxMs))
	b.Born = s.timers.Now()
	id := b.ID
	b.ttl = s.timers.After(b.TTL, func() { s.autoPop(id) })
}

// updateBubble advances one bubble through its state machine.
func (s *Scene) updateBubble(b *Bubble, now time.Duration) {
	switch b.State {
	case StateLeg:
		if b.Stopped {
			return
		}
		if now >= b.leg.End() {
			b.Pos = b.leg.To
			b.leg = PlanLeg(s.rng, b, s.snapshot, s.steering(), s.boost, b.leg.End())
		}
		b.Pos = b.leg.At(now)
	case StateExpiring:
		if b.pop.Advance(now) {
			b.State = StateRespawning
		}
	case StateRespawning:
		s.respawn(b, now)
	}
}

// respawn redraws b in its own size class and puts it back into play.
func (s *Scene) respawn(b *Bubble, now time.Duration) {
	s.dress(b, b.Class)
	b.Pos = Place(s.rng, b.ID, b.Size, s.snapshot, s.placement()).Pos
	for i := range s.snapshot {
		if s.snapshot[i].ID == b.ID {
			s.snapshot[i] = b.neighbor()
			break
		}
	}
	s.scheduleTTL(b)
	b.leg = PlanLeg(s.rng, b, s.snapshot, s.steering(), s.boost, now)
}

// stopBubble freezes b where it is and cancels its expiry.
func (s *Scene) stopBubble(b *Bubble) {
	b.Stopped = true
	if b.ttl != 0 {
		s.timers.Cancel(b.ttl)
		b.ttl = 0
	}
	b.State = StateExpiring
}

// autoPop runs when a bubble's lifetime ends. A stopped or vanished
// bubble is ignored.
func (s *Scene) autoPop(id string) {
	b, ok := s.bubbles[id]
	if !ok || b.Stopped {
		return
	}
	b.ttl = 0
	s.stopBubble(b)
	now := s.timers.Now()
	s.sfx.autoPop(now)

	v := &b.Visual
	b.pop = animate(now,
		seq(to(&v.Scale, 1.08, 100), to(&v.Opacity, 0, 120)),
		seq(to(&v.RingOpacity, 0.45, 80), to(&v.RingScale, 1.5, 220), to(&v.RingOpacity, 0, 110)),
	)
	s.counters.AutoPops++
}

// manualPop pops a bubble the child tapped.
func (s *Scene) manualPop(id string) {
	b, ok := s.bubbles[id]
	if !ok || b.Stopped {
		return
	}
	s.stopBubble(b)
	now := s.timers.Now()
	s.sfx.manualPop(now)
	s.env.Haptics.Tap()
	if s.combo.Register(now) {
		s.triggerBoost()
	}

	v := &b.Visual
	b.pop = animate(now,
		seq(to(&v.Scale, 1.15, 110), to(&v.Opacity, 0, 140)),
		seq(to(&v.RingOpacity, 0.6, 80), to(&v.RingScale, 1.6, 260), to(&v.RingOpacity, 0, 140)),
	)
	s.counters.ManualPops++
}

// triggerBoost speeds up new legs for a while and shows the badge.
func (s *Scene) triggerBoost() {
	c := s.t.cfg.Combo
	now := s.timers.Now()

	s.boost = c.Boost
	s.counters.Combos++
	s.badge = Visual{Scale: 0.6, Opacity: 0}
	s.badgeAnim = animate(now,
		seq(to(&s.badge.Opacity, 1, c.BadgeInMs)),
		seq(to(&s.badge.Scale, 1, c.BadgeInMs).eased(core.EaseOutCubic)),
	)
	s.env.Sound.PlayGiggle()

	if s.boostTimer != 0 {
		s.timers.Cancel(s.boostTimer)
	}
	s.boostTimer = s.timers.After(config.Ms(c.BoostMs), func() {
		s.boost = 1
		s.boostTimer = 0
		s.badgeAnim = animate(s.timers.Now(), seq(to(&s.badge.Opacity, 0, c.BadgeOutMs)))
	})
	s.env.Logger.Debug("combo boost", "streak", s.combo.Count(), "boost", s.boost)
}

// Boost returns the current leg speed multiplier.
func (s *Scene) Boost() float64 {
	return s.boost
}

// Badge returns the combo badge look.
func (s *Scene) Badge() Visual {
	return s.badge
}

// visualCenter is where b is drawn once tilt parallax is applied.
func (s *Scene) visualCenter(b *Bubble) core.Point {
	c := b.Center()
	return core.Point{
		X: c.X + s.tilt.X*b.Parallax,
		Y: c.Y + s.tilt.Y*b.Parallax*0.8,
	}
}

// hitRadius is the touch radius of b, padded for small fingers.
func hitRadius(b *Bubble) float64 {
	return b.Size*math.Max(b.Visual.Scale, 0)/2 + b.TouchPad
}
