package bubbles

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-playroom/internal/config"
	"github.com/vovakirdan/tui-playroom/internal/core"
)

func TestCloudCountAndRows(t *testing.T) {
	c := config.DefaultBubblesConfig().Clouds
	tests := []struct {
		w, h      float64
		count     int
		rows      int
	}{
		{800, 480, 5, 3},
		{400, 800, 5, 5},
		{2000, 2000, 10, 5},
		{100, 50, 5, 1},
	}
	for _, tt := range tests {
		if got := CloudCount(tt.w, tt.h, c); got != tt.count {
			t.Errorf("CloudCount(%v, %v) = %d, want %d", tt.w, tt.h, got, tt.count)
		}
		if got := CloudRows(tt.h, c); got != tt.rows {
			t.Errorf("CloudRows(%v) = %d, want %d", tt.h, got, tt.rows)
		}
	}
}

func TestCloudsStartOffscreen(t *testing.T) {
	c := config.DefaultBubblesConfig().Clouds
	clouds := buildClouds(core.NewRand(1), 800, 480, false, c)
	for i, cl := range clouds {
		if cl.Running() {
			t.Errorf("cloud %d running before begin", i)
		}
		if cl.Dir == 1 && cl.X+cl.W > 0 {
			t.Errorf("cloud %d moving right starts visible at %v", i, cl.X)
		}
		if cl.Dir == -1 && cl.X < 800 {
			t.Errorf("cloud %d moving left starts visible at %v", i, cl.X)
		}
	}
}

func TestCloudsNightDim(t *testing.T) {
	c := config.DefaultBubblesConfig().Clouds
	day := buildClouds(core.NewRand(9), 800, 480, false, c)
	night := buildClouds(core.NewRand(9), 800, 480, true, c)
	for i := range day {
		want := day[i].Opacity * c.NightDim
		if diff := night[i].Opacity - want; diff > 1e-12 || diff < -1e-12 {
			t.Errorf("cloud %d opacity %v, want %v", i, night[i].Opacity, want)
		}
	}
}

func TestCloudWrapsAround(t *testing.T) {
	cl := &Cloud{W: 100, Speed: 10, StartX: -100, EndX: 900, X: -100, minDur: 6 * time.Second}
	cl.begin(0)

	if cl.dur != 100*time.Second {
		t.Fatalf("duration = %v, want 100s", cl.dur)
	}
	cl.update(50 * time.Second)
	if cl.X != 400 {
		t.Errorf("halfway X = %v, want 400", cl.X)
	}
	cl.update(110 * time.Second)
	if cl.X != -100+100 {
		t.Errorf("after wrap X = %v, want 0", cl.X)
	}
}
