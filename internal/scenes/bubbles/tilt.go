package bubbles

import (
	"time"

	"github.com/vovakirdan/tui-playroom/internal/config"
	"github.com/vovakirdan/tui-playroom/internal/core"
)

// tilt smooths sensor readings into a scene offset in pixels.
type tilt struct {
	X, Y   float64
	tx, ty float64
	anim   *Anim
}

// retarget starts easing toward the offset for a raw reading.
func (t *tilt) retarget(rx, ry float64, c config.BubbleTilt, now time.Duration) {
	tx := core.ClampF(-rx*c.AmplitudeX, -c.AmplitudeX, c.AmplitudeX)
	ty := core.ClampF(ry*c.AmplitudeY, -c.AmplitudeY, c.AmplitudeY)
	if tx == t.tx && ty == t.ty && t.anim != nil {
		return
	}
	t.tx, t.ty = tx, ty
	t.anim = animate(now,
		seq(to(&t.X, tx, c.SmoothMs).eased(core.EaseOutCubic)),
		seq(to(&t.Y, ty, c.SmoothMs).eased(core.EaseOutCubic)),
	)
}

func (t *tilt) update(now time.Duration) {
	t.anim.Advance(now)
}
