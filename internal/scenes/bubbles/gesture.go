package bubbles

import (
	"time"

	"github.com/vovakirdan/tui-playroom/internal/config"
	"github.com/vovakirdan/tui-playroom/internal/core"
)

// gesture tells a tap from a long press. A press held past the
// long-press threshold starts the bubble gun instead of popping.
type gesture struct {
	down  bool
	long  bool
	pos   core.Point
	timer core.TimerID
}

func (s *Scene) handlePointer(ev core.PointerEvent, now time.Duration) {
	g := &s.gesture
	switch ev.Kind {
	case core.PointerDown:
		s.cancelPress()
		s.emitter.Stop()
		g.down = true
		g.long = false
		g.pos = ev.Pos
		s.emitter.Press(ev.Pos, now)
		g.timer = s.timers.After(config.Ms(s.t.cfg.Emitter.LongPressMs), func() {
			g.timer = 0
			g.long = true
			s.emitter.Start(g.pos)
		})
	case core.PointerMove:
		g.pos = ev.Pos
		s.emitter.Move(ev.Pos, now)
	case core.PointerUp:
		if !g.down {
			return
		}
		long := g.long
		s.cancelPress()
		s.emitter.Stop()
		if !long {
			s.tap(ev.Pos)
		}
	case core.PointerCancel:
		s.cancelPress()
		s.emitter.Stop()
	}
}

func (s *Scene) cancelPress() {
	g := &s.gesture
	if g.timer != 0 {
		s.timers.Cancel(g.timer)
	}
	*g = gesture{pos: g.pos}
}

// tap routes a short press: the parental lock first, then the topmost
// bubble under the pointer.
func (s *Scene) tap(pos core.Point) {
	cx, cy := s.rt.ToCell(pos)
	if s.lockRect().Contains(cx, cy) {
		s.tapLock()
		return
	}
	if id := s.hit(pos); id != "" {
		s.manualPop(id)
	}
}

// hit returns the topmost live bubble under pos, or "".
func (s *Scene) hit(pos core.Point) string {
	for i := len(s.order) - 1; i >= 0; i-- {
		b, ok := s.bubbles[s.order[i]]
		if !ok || b.Stopped {
			continue
		}
		if pos.Dist(s.visualCenter(b)) <= hitRadius(b) {
			return b.ID
		}
	}
	return ""
}

func (s *Scene) tapLock() {
	if s.lock.Tap() {
		s.unlock = true
		s.env.Logger.Info("parental area unlocked")
	}
}

// lockRect is the parental label box in the bottom-right corner, in cells.
func (s *Scene) lockRect() core.Rect {
	w := len([]rune(s.t.cfg.Parental.Label)) + 2
	return core.NewRect(s.rt.ScreenW-w-1, s.rt.ScreenH-3, w, 3)
}

// LockTaps returns the taps counted toward opening the parental area.
func (s *Scene) LockTaps() int {
	return s.lock.Count()
}
