package bubbles

import (
	"time"

	"github.com/vovakirdan/tui-playroom/internal/config"
	"github.com/vovakirdan/tui-playroom/internal/core"
	"github.com/vovakirdan/tui-playroom/internal/registry"
)

// never is a timestamp far enough in the past that every gap has elapsed.
const never = -time.Hour

// sfx rate-limits pop sounds so a burst of pops stays pleasant.
type sfx struct {
	sound registry.Sound
	rng   core.Rand

	manualGap time.Duration
	autoProb  float64
	autoGap   time.Duration
	shotProb  float64
	shotGap   time.Duration

	lastManual time.Duration
	lastAuto   time.Duration
	lastShot   time.Duration
}

func newSFX(sound registry.Sound, rng core.Rand, cfg config.BubbleSFX) *sfx {
	return &sfx{
		sound:      sound,
		rng:        rng,
		manualGap:  config.Ms(cfg.ManualGapMs),
		autoProb:   cfg.AutoProb,
		autoGap:    config.Ms(cfg.AutoGapMs),
		shotProb:   cfg.ShotProb,
		shotGap:    config.Ms(cfg.ShotGapMs),
		lastManual: never,
		lastAuto:   never,
		lastShot:   never,
	}
}

// manualPop plays unless another manual pop sounded within the gap.
func (s *sfx) manualPop(now time.Duration) bool {
	if now-s.lastManual <= s.manualGap {
		return false
	}
	s.lastManual = now
	s.sound.PlayPop()
	return true
}

// autoPop plays with a fixed chance, at most once per gap.
func (s *sfx) autoPop(now time.Duration) bool {
	if now-s.lastAuto < s.autoGap {
		return false
	}
	if !core.Chance(s.rng, s.autoProb) {
		return false
	}
	s.lastAuto = now
	s.sound.PlayPop()
	return true
}

// shotLanded plays for a landing shot with a fixed chance, at most once per gap.
func (s *sfx) shotLanded(now time.Duration) bool {
	if !core.Chance(s.rng, s.shotProb) || now-s.lastShot <= s.shotGap {
		return false
	}
	s.lastShot = now
	s.sound.PlayPop()
	return true
}
