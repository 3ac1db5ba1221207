package bubbles

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-playroom/internal/config"
)

// Up is the heading bubbles drift toward (screen y grows downward).
const Up = -math.Pi / 2

// tuning is BubblesConfig converted to the units the simulation uses:
// radians and durations.
type tuning struct {
	cfg config.BubblesConfig

	maxTurn       float64
	initialSpread float64
	wallNudgeX    float64
	wallNudgeY    float64
	sepMaxDelta   float64
	shotSpread    float64

	legDurMin time.Duration
	legDurMax time.Duration

	sizeMin float64 // smallest size over all classes
	sizeMax float64 // largest size over all classes
}

func deg(d float64) float64 { return d * math.Pi / 180 }

func newTuning(cfg config.BubblesConfig) tuning {
	t := tuning{
		cfg:           cfg,
		maxTurn:       deg(cfg.Motion.MaxTurnDeg),
		initialSpread: deg(cfg.Motion.InitialSpreadDeg),
		wallNudgeX:    deg(cfg.Motion.WallNudgeXDeg),
		wallNudgeY:    deg(cfg.Motion.WallNudgeYDeg),
		sepMaxDelta:   deg(cfg.Separation.MaxDeltaDeg),
		shotSpread:    deg(cfg.Emitter.SpreadDeg),
		legDurMin:     config.Ms(cfg.Motion.LegDurationMinMs),
		legDurMax:     config.Ms(cfg.Motion.LegDurationMaxMs),
		sizeMin:       math.Inf(1),
		sizeMax:       math.Inf(-1),
	}
	for _, c := range cfg.Sizes {
		t.sizeMin = math.Min(t.sizeMin, c.MinSize)
		t.sizeMax = math.Max(t.sizeMax, c.MaxSize)
	}
	if len(cfg.Sizes) == 0 {
		t.sizeMin, t.sizeMax = 0, 1
	}
	return t
}

// separation returns the shared separation rule parameters.
func (t tuning) separation() SeparationParams {
	return SeparationParams{
		Factor:   t.cfg.Separation.Factor,
		MaxDelta: t.sepMaxDelta,
		Gain:     t.cfg.Separation.Gain,
	}
}
