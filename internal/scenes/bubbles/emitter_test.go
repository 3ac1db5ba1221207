package bubbles

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-playroom/internal/config"
	"github.com/vovakirdan/tui-playroom/internal/core"
)

func testEmitter(seed int64) *Emitter {
	p := emitterParams(newTuning(config.DefaultBubblesConfig()), 400, 800)
	return NewEmitter(p, core.NewRand(seed))
}

func TestEmitterHoldCadence(t *testing.T) {
	e := testEmitter(1)
	dt := core.TickDuration(60)
	e.Start(core.Point{X: 200, Y: 600})

	for now := time.Duration(0); now < time.Second; now += dt {
		e.Flush()
		e.Update(now)
	}

	if e.Emitted < 11 || e.Emitted > 13 {
		t.Errorf("emitted %d shots in 1s, want 12 +/- 1", e.Emitted)
	}
	if e.Bonus != 0 {
		t.Errorf("bonus shots = %d, want 0 with a still pointer", e.Bonus)
	}
}

func TestEmitterIdleDoesNotFire(t *testing.T) {
	e := testEmitter(1)
	e.Move(core.Point{X: 100, Y: 100}, 0)
	for i := 0; i < 60; i++ {
		e.Flush()
		e.Update(time.Duration(i) * 16 * time.Millisecond)
	}
	if e.Emitted != 0 {
		t.Errorf("idle emitter fired %d shots", e.Emitted)
	}
}

func TestEmitterSpeedTracking(t *testing.T) {
	e := testEmitter(3)

	e.Move(core.Point{X: 200, Y: 400}, 0)
	if e.Speed() != 0 {
		t.Errorf("first move speed = %v, want 0", e.Speed())
	}

	e.Move(core.Point{X: 300, Y: 400}, 10*time.Millisecond)
	if e.Speed() <= 1.2 {
		t.Fatalf("speed = %v, want above the bonus threshold", e.Speed())
	}

	e.Press(core.Point{X: 20, Y: 20}, 12*time.Millisecond)
	if e.Speed() != 0 {
		t.Errorf("speed after press = %v, want 0", e.Speed())
	}
	e.Move(core.Point{X: 20, Y: 20}, 30*time.Millisecond)
	if e.Speed() != 0 {
		t.Errorf("still pointer speed = %v, want 0", e.Speed())
	}
}

func TestEmitterFastPointerBonus(t *testing.T) {
	e := testEmitter(2)
	e.Start(core.Point{X: 100, Y: 400})
	e.Move(core.Point{X: 100, Y: 400}, 0)
	e.Move(core.Point{X: 200, Y: 400}, 10*time.Millisecond)

	if e.Speed() <= 1.2 {
		t.Fatalf("speed = %v, want above the bonus threshold", e.Speed())
	}
	e.Update(10 * time.Millisecond)
	if e.Emitted != 2 || e.Bonus != 1 {
		t.Errorf("emitted %d (bonus %d), want 2 (bonus 1)", e.Emitted, e.Bonus)
	}
}

func TestEmitterDefersInsertion(t *testing.T) {
	e := testEmitter(3)
	e.Start(core.Point{X: 200, Y: 600})
	e.Update(0)

	if len(e.Shots()) != 0 {
		t.Errorf("shot visible in the tick it was fired")
	}
	if adds, _ := e.Pending(); adds != 1 {
		t.Errorf("pending adds = %d, want 1", adds)
	}
	e.Flush()
	if len(e.Shots()) != 1 {
		t.Errorf("live shots after flush = %d, want 1", len(e.Shots()))
	}
}

func TestEmitterCapDropsOldest(t *testing.T) {
	e := testEmitter(4)
	e.p.Interval = 0
	e.Start(core.Point{X: 200, Y: 600})

	for i := 0; i < 40; i++ {
		e.Flush()
		e.Update(time.Duration(i) * time.Millisecond)
	}
	e.Flush()

	shots := e.Shots()
	if len(shots) != e.p.MaxShots {
		t.Fatalf("live shots = %d, want %d", len(shots), e.p.MaxShots)
	}
	if e.Dropped != 40-e.p.MaxShots {
		t.Errorf("dropped = %d, want %d", e.Dropped, 40-e.p.MaxShots)
	}
	if shots[0].ID != "shot-13" {
		t.Errorf("oldest live shot = %s, want shot-13", shots[0].ID)
	}
}

func TestEmitterDefersRemoval(t *testing.T) {
	e := testEmitter(5)
	landed := 0
	e.OnLand = func(time.Duration) { landed++ }

	e.Start(core.Point{X: 200, Y: 600})
	e.Update(0)
	e.Stop()
	e.Flush()

	e.Update(2 * time.Second) // flight over, fade begins
	if landed != 1 {
		t.Errorf("OnLand called %d times, want 1", landed)
	}
	e.Update(3 * time.Second) // fade over
	if len(e.Shots()) != 1 {
		t.Errorf("shot removed in the tick it finished")
	}
	if _, removes := e.Pending(); removes != 1 {
		t.Errorf("pending removes = %d, want 1", removes)
	}
	e.Flush()
	if len(e.Shots()) != 0 {
		t.Errorf("live shots after flush = %d, want 0", len(e.Shots()))
	}
	if landed != 1 {
		t.Errorf("OnLand called %d times, want 1", landed)
	}
}

func TestEmitterShotsStayInViewport(t *testing.T) {
	e := testEmitter(6)
	e.p.Interval = 0
	e.Start(core.Point{X: 2, Y: 2})
	for i := 0; i < 20; i++ {
		e.Update(time.Duration(i) * time.Millisecond)
		e.Flush()
	}
	e.Stop()
	for _, s := range e.Shots() {
		e.advanceShot(s, 5*time.Second)
		if s.Pos.X < 0 || s.Pos.X > e.p.W-s.Size || s.Pos.Y < 0 || s.Pos.Y > e.p.H-s.Size {
			t.Errorf("shot %s landed at %v outside viewport", s.ID, s.Pos)
		}
	}
}
