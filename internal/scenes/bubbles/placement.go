package bubbles

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-playroom/internal/core"
)

// Placement is the outcome of a spawn search.
type Placement struct {
	Pos      core.Point
	Attempts int
	Clean    bool // false when the budget ran out and the last candidate was taken
}

// PlacementParams bounds the spawn search.
type PlacementParams struct {
	W, H       float64
	Margin     float64
	Attempts   int
	Separation SeparationParams
}

// randomOnscreen draws a top-left position keeping a size-wide entity inside the viewport.
func randomOnscreen(rng core.Rand, w, h, size, margin float64) core.Point {
	maxX := math.Max(0, w-size)
	maxY := math.Max(0, h-size)
	return core.Point{
		X: core.ClampF(core.Uniform(rng, margin, w-size-margin), 0, maxX),
		Y: core.ClampF(core.Uniform(rng, margin, h-size-margin), 0, maxY),
	}
}

// Place looks for a position no placed entity is closer to than the
// separation threshold. It never draws more than p.Attempts candidates; when
// none is clean the last one is returned.
func Place(rng core.Rand, id string, size float64, placed []Neighbor, p PlacementParams) Placement {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	var res Placement
	for res.Attempts < attempts {
		res.Pos = randomOnscreen(rng, p.W, p.H, size, p.Margin)
		res.Attempts++
		if isClear(res.Pos, id, size, placed, p.Separation) {
			res.Clean = true
			return res
		}
	}
	return res
}

func isClear(pos core.Point, id string, size float64, placed []Neighbor, sp SeparationParams) bool {
	v := r2.Vec{X: pos.X, Y: pos.Y}
	for _, n := range placed {
		if n.ID == id {
			continue
		}
		if r2.Norm(r2.Sub(v, r2.Vec{X: n.Pos.X, Y: n.Pos.Y})) < sp.Threshold(size, n.Size) {
			return false
		}
	}
	return true
}
