package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLockTap)
	f.Push(PointerDown, Point{X: 10, Y: 20})

	if !f.Has(ActionLockTap) {
		t.Error("Has(LockTap) should be true after Set")
	}
	if f.Has(ActionQuit) {
		t.Error("Has(Quit) should be false")
	}

	f.Clear()
	if f.Has(ActionLockTap) || len(f.Pointers) != 0 {
		t.Error("Clear should drop actions and pointers")
	}

	var zero InputFrame
	if zero.Has(ActionBack) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionBack)
	if !zero.Has(ActionBack) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestTickDuration(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
	}
	for _, tt := range tests {
		if got := TickDuration(tt.rate); got != tt.want {
			t.Errorf("TickDuration(%d) = %v, expected %v", tt.rate, got, tt.want)
		}
	}
}

func TestRuntimeConfigCells(t *testing.T) {
	cfg := DefaultConfig()
	w, h := cfg.Viewport()
	if w != 800 || h != 480 {
		t.Errorf("Viewport() = %vx%v, expected 800x480", w, h)
	}

	p := cfg.ToPixel(3, 2)
	if p.X != 35 || p.Y != 50 {
		t.Errorf("ToPixel(3, 2) = %+v, expected (35, 50)", p)
	}
	if x, y := cfg.ToCell(p); x != 3 || y != 2 {
		t.Errorf("ToCell(ToPixel(3, 2)) = (%d, %d)", x, y)
	}
}
