package bubbles

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-playroom/internal/core"
)

// Leg is one straight, linearly timed segment of a bubble's path.
type Leg struct {
	From  core.Point
	To    core.Point
	Start time.Duration
	Dur   time.Duration
}

// End returns the time the leg completes.
func (l Leg) End() time.Duration {
	return l.Start + l.Dur
}

// At returns the interpolated position at now.
func (l Leg) At(now time.Duration) core.Point {
	if l.Dur <= 0 || now >= l.End() {
		return l.To
	}
	if now <= l.Start {
		return l.From
	}
	t := float64(now-l.Start) / float64(l.Dur)
	return core.Point{
		X: core.Lerp(l.From.X, l.To.X, t),
		Y: core.Lerp(l.From.Y, l.To.Y, t),
	}
}

// SteeringParams is the viewport and the fixed steering constants.
type SteeringParams struct {
	W, H       float64
	SoftWall   float64
	NudgeX     float64
	NudgeY     float64
	DurMin     time.Duration
	DurMax     time.Duration
	Separation SeparationParams
}

// WallSteer nudges the heading away from any edge closer than SoftWall.
// The axes are independent.
func WallSteer(pos core.Point, p SteeringParams) float64 {
	steer := 0.0
	if pos.X < p.SoftWall {
		steer += p.NudgeX
	} else if pos.X > p.W-p.SoftWall {
		steer -= p.NudgeX
	}
	if pos.Y < p.SoftWall {
		steer += p.NudgeY
	} else if pos.Y > p.H-p.SoftWall {
		steer -= p.NudgeY
	}
	return steer
}

// LegDuration converts a leg length to a clamped travel time.
func LegDuration(length, speed, boost float64, p SteeringParams) time.Duration {
	v := speed * boost
	var d time.Duration
	if v <= 0 {
		d = p.DurMax
	} else {
		d = time.Duration(length / v * float64(time.Second))
	}
	if d < p.DurMin {
		d = p.DurMin
	}
	if d > p.DurMax {
		d = p.DurMax
	}
	return d
}

// PlanLeg turns b and returns its next leg starting at now.
// It combines a random turn, the upward bias, wall avoidance and separation.
func PlanLeg(rng core.Rand, b *Bubble, neighbors []Neighbor, p SteeringParams, boost float64, now time.Duration) Leg {
	turn := core.Uniform(rng, -b.MaxTurn, b.MaxTurn)
	bias := core.WrapAngle(Up-b.Heading) * b.BiasGain
	wall := WallSteer(b.Pos, p)
	sep := SeparationDelta(b.neighbor(), b.Heading, neighbors, p.Separation)
	b.Heading = core.WrapAngle(b.Heading + turn + bias + wall + sep)

	length := core.Uniform(rng, b.LegMin, b.LegMax)
	target := core.Point{
		X: core.ClampF(b.Pos.X+math.Cos(b.Heading)*length, 0, math.Max(0, p.W-b.Size)),
		Y: core.ClampF(b.Pos.Y+math.Sin(b.Heading)*length, 0, math.Max(0, p.H-b.Size)),
	}
	return Leg{
		From:  b.Pos,
		To:    target,
		Start: now,
		Dur:   LegDuration(length, b.Speed, boost, p),
	}
}
