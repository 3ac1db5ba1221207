package bubbles

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-playroom/internal/core"
)

// Neighbor is a read-only view of an entity for crowd queries.
type Neighbor struct {
	ID   string
	Pos  core.Point
	Size float64
}

// SeparationParams shapes the repulsion rule.
type SeparationParams struct {
	Factor   float64 // threshold = 0.5*(sizeA+sizeB)*Factor
	MaxDelta float64 // clamp, radians
	Gain     float64
}

// Threshold is the distance under which two entities repel.
// Placement uses the same rule to decide overlap.
func (p SeparationParams) Threshold(sizeA, sizeB float64) float64 {
	return 0.5 * (sizeA + sizeB) * p.Factor
}

// SeparationDelta returns the heading adjustment pushing self away from
// crowded neighbours. The result is bounded by MaxDelta*Gain and is zero
// when nobody is in range.
func SeparationDelta(self Neighbor, heading float64, all []Neighbor, p SeparationParams) float64 {
	me := r2.Vec{X: self.Pos.X, Y: self.Pos.Y}
	var sum r2.Vec
	for _, n := range all {
		if n.ID == self.ID {
			continue
		}
		d := r2.Sub(me, r2.Vec{X: n.Pos.X, Y: n.Pos.Y})
		dist := r2.Norm(d)
		if dist <= 0 {
			continue
		}
		thresh := p.Threshold(self.Size, n.Size)
		if dist < thresh {
			w := (thresh - dist) / thresh
			sum = r2.Add(sum, r2.Scale(w/(dist*dist), d))
		}
	}
	if r2.Norm(sum) < 1e-6 {
		return 0
	}
	away := math.Atan2(sum.Y, sum.X)
	delta := core.WrapAngle(away - heading)
	return core.ClampF(delta, -p.MaxDelta, p.MaxDelta) * p.Gain
}
