package bubbles

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-playroom/internal/config"
	"github.com/vovakirdan/tui-playroom/internal/core"
)

// Cloud is one background shape drifting across its band. Purely cosmetic.
type Cloud struct {
	W, H     float64
	X, Y     float64
	Dir      int
	Speed    float64 // px/sec
	Opacity  float64
	StartX   float64
	EndX     float64
	Parallax float64
	Band     int

	running bool
	from    float64
	start   time.Duration
	dur     time.Duration
	minDur  time.Duration
}

// CloudCount returns how many clouds a viewport gets.
func CloudCount(w, h float64, c config.BubbleClouds) int {
	return core.Clamp(int(math.Round(w*h/c.AreaPerCloud)), c.Min, c.Max)
}

// CloudRows returns the number of vertical bands.
func CloudRows(h float64, c config.BubbleClouds) int {
	return core.Clamp(int(math.Round(h/c.RowHeight)), 1, c.MaxRows)
}

// buildClouds lays out the cloud field. Clouds start off-screen and idle.
func buildClouds(rng core.Rand, w, h float64, night bool, c config.BubbleClouds) []*Cloud {
	count := CloudCount(w, h, c)
	rows := CloudRows(h, c)
	bandH := h / float64(rows)
	parallaxDiv := float64(rows - 1)
	if parallaxDiv == 0 {
		parallaxDiv = 1
	}

	clouds := make([]*Cloud, 0, count)
	for i := 0; i < count; i++ {
		cw := core.Uniform(rng, c.WidthMin, c.WidthMax)
		ch := cw * 0.6
		band := i % rows
		cl := &Cloud{
			W:        cw,
			H:        ch,
			Y:        core.Uniform(rng, float64(band)*bandH+8, float64(band+1)*bandH-ch-8),
			Dir:      1,
			Speed:    core.Uniform(rng, c.SpeedMin, c.SpeedMax) * (0.8 + float64(band)/float64(rows)*0.4),
			Opacity:  core.Uniform(rng, c.OpacityMin, c.OpacityMax),
			Parallax: 0.6 + float64(band)/parallaxDiv,
			Band:     band,
			minDur:   config.Ms(c.MinDurationMs),
		}
		if core.Chance(rng, 0.5) {
			cl.Dir = -1
		}
		if night {
			cl.Opacity *= c.NightDim
		}
		if cl.Dir == 1 {
			cl.StartX = -cw - core.Uniform(rng, 0, w*0.6)
			cl.EndX = w + cw
		} else {
			cl.StartX = w + core.Uniform(rng, 0, w*0.6)
			cl.EndX = -cw
		}
		cl.X = cl.StartX
		clouds = append(clouds, cl)
	}
	return clouds
}

// begin starts a drift from the current X to EndX.
func (c *Cloud) begin(now time.Duration) {
	c.running = true
	c.from = c.X
	c.start = now
	dist := math.Abs(c.EndX - c.X)
	c.dur = c.minDur
	if c.Speed > 0 {
		if d := time.Duration(dist / c.Speed * float64(time.Second)); d > c.dur {
			c.dur = d
		}
	}
}

// update moves the cloud; on arrival it jumps back to StartX and drifts again.
func (c *Cloud) update(now time.Duration) {
	if !c.running {
		return
	}
	end := c.start + c.dur
	if now >= end {
		c.X = c.StartX
		c.begin(end)
	}
	if c.dur <= 0 {
		return
	}
	t := float64(now-c.start) / float64(c.dur)
	c.X = core.Lerp(c.from, c.EndX, core.ClampF(t, 0, 1))
}

// Running reports whether the cloud has started drifting.
func (c *Cloud) Running() bool {
	return c.running
}
