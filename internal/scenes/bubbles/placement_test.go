package bubbles

import (
	"fmt"
	"testing"

	"github.com/vovakirdan/tui-playroom/internal/config"
	"github.com/vovakirdan/tui-playroom/internal/core"
)

func testPlacement(w, h float64) PlacementParams {
	t := newTuning(config.DefaultBubblesConfig())
	return PlacementParams{
		W:          w,
		H:          h,
		Margin:     t.cfg.Placement.Margin,
		Attempts:   t.cfg.Placement.Attempts,
		Separation: t.separation(),
	}
}

func TestPlaceEmptyFirstTry(t *testing.T) {
	p := testPlacement(400, 800)
	got := Place(core.NewRand(1), "a", 80, nil, p)
	if got.Attempts != 1 || !got.Clean {
		t.Errorf("empty viewport: got %+v, want one clean attempt", got)
	}
	if got.Pos.X < 0 || got.Pos.X > 320 || got.Pos.Y < 0 || got.Pos.Y > 720 {
		t.Errorf("position %v outside viewport", got.Pos)
	}
}

func TestPlaceSaturatedGivesUp(t *testing.T) {
	p := testPlacement(100, 100)
	blocker := []Neighbor{{ID: "big", Pos: core.Point{X: 20, Y: 20}, Size: 200}}

	got := Place(core.NewRand(5), "a", 50, blocker, p)
	if got.Clean {
		t.Errorf("saturated viewport reported a clean placement")
	}
	if got.Attempts != p.Attempts {
		t.Errorf("attempts = %d, want %d", got.Attempts, p.Attempts)
	}
}

func TestPlaceIgnoresSelf(t *testing.T) {
	p := testPlacement(100, 100)
	self := []Neighbor{{ID: "a", Pos: core.Point{X: 20, Y: 20}, Size: 200}}

	got := Place(core.NewRand(5), "a", 50, self, p)
	if !got.Clean || got.Attempts != 1 {
		t.Errorf("own entry should not block: got %+v", got)
	}
}

func TestPlaceCrowdMostlySeparated(t *testing.T) {
	const (
		n    = 30
		size = 84.0 // threshold 0.5*(84+84)*0.6 = 50.4
	)
	p := testPlacement(400, 800)

	for seed := int64(1); seed <= 5; seed++ {
		rng := core.NewRand(seed)
		var placed []Neighbor
		for i := 0; i < n; i++ {
			id := fmt.Sprintf("b%d", i)
			res := Place(rng, id, size, placed, p)
			placed = append(placed, Neighbor{ID: id, Pos: res.Pos, Size: size})
		}

		close, pairs := 0, 0
		for i := range placed {
			for j := i + 1; j < len(placed); j++ {
				pairs++
				if placed[i].Pos.Dist(placed[j].Pos) < p.Separation.Threshold(size, size) {
					close++
				}
			}
		}
		if frac := float64(close) / float64(pairs); frac > 0.05 {
			t.Errorf("seed %d: %d of %d pairs overlap (%.3f)", seed, close, pairs, frac)
		}
	}
}
