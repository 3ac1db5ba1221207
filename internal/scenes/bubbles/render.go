package bubbles

import (
	"math"

	"github.com/vovakirdan/tui-playroom/internal/core"
)

const (
	badgeText      = "* Yay! *"
	minOpacity     = 0.15
	minRingOpacity = 0.05
)

// Render draws the scene back to front: sky, clouds, shots, bubbles,
// then the badge and the parental label.
func (s *Scene) Render(dst *core.Screen) {
	if !s.mounted {
		dst.Clear()
		return
	}
	dst.Fill(s.sky)

	for _, cl := range s.clouds {
		s.drawCloud(dst, cl)
	}
	for _, sh := range s.emitter.Shots() {
		s.drawShot(dst, sh)
	}
	for _, id := range s.order {
		if b, ok := s.bubbles[id]; ok {
			s.drawBubble(dst, b)
		}
	}

	if s.badge.Opacity > minOpacity {
		s.drawBadge(dst)
	}
	s.drawLock(dst)
}

// cellSize returns the simulation pixels covered by one cell.
func (s *Scene) cellSize() (float64, float64) {
	c := s.rt.ToPixel(1, 1)
	o := s.rt.ToPixel(0, 0)
	return c.X - o.X, c.Y - o.Y
}

// eachCell calls fn for every cell whose centre lies within the
// bounding box of a circle (or ellipse) around c.
func (s *Scene) eachCell(dst *core.Screen, c core.Point, rx, ry float64, fn func(x, y int, p core.Point)) {
	x0, y0 := s.rt.ToCell(core.Point{X: math.Max(0, c.X-rx), Y: math.Max(0, c.Y-ry)})
	x1, y1 := s.rt.ToCell(core.Point{X: math.Max(0, c.X+rx), Y: math.Max(0, c.Y+ry)})
	x1 = core.Min(x1, dst.Width()-1)
	y1 = core.Min(y1, dst.Height()-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			fn(x, y, s.rt.ToPixel(x, y))
		}
	}
}

func inEllipse(p, c core.Point, rx, ry float64) bool {
	if rx <= 0 || ry <= 0 {
		return false
	}
	dx := (p.X - c.X) / rx
	dy := (p.Y - c.Y) / ry
	return dx*dx+dy*dy <= 1
}

func (s *Scene) drawCloud(dst *core.Screen, cl *Cloud) {
	c := core.Point{
		X: cl.X + cl.W/2 + s.tilt.X*cl.Parallax,
		Y: cl.Y + cl.H/2 + s.tilt.Y*0.6*cl.Parallax,
	}
	bg := core.ColorCloudFaint
	if cl.Opacity >= 0.25 {
		bg = core.ColorCloud
	}
	rx, ry := cl.W/2, cl.H/2
	s.eachCell(dst, c, rx, ry, func(x, y int, p core.Point) {
		if inEllipse(p, c, rx, ry) {
			dst.SetBg(x, y, bg)
		}
	})
}

func (s *Scene) drawShot(dst *core.Screen, sh *Shot) {
	if sh.Visual.Opacity < minOpacity {
		return
	}
	c := core.Point{X: sh.Pos.X + sh.Size/2, Y: sh.Pos.Y + sh.Size/2}
	r := sh.Size * sh.Visual.Scale / 2
	cw, ch := s.cellSize()
	if r*2 < cw*3 || r*2 < ch*2 {
		x, y := s.rt.ToCell(c)
		dst.SetFg(x, y, 'o', sh.Tint)
	} else {
		s.drawOutline(dst, c, r, sh.Tint)
	}
	s.drawRing(dst, c, sh.Size/2, sh.Visual)
}

func (s *Scene) drawBubble(dst *core.Screen, b *Bubble) {
	c := s.visualCenter(b)
	if b.Visual.Opacity >= minOpacity {
		r := b.Size * b.Visual.Scale / 2
		s.drawOutline(dst, c, r, b.Tint)

		// Highlight in the upper-left of the bubble.
		hx, hy := s.rt.ToCell(core.Point{X: c.X - r*0.45, Y: c.Y - r*0.45})
		if dst.Get(hx, hy) == ' ' {
			dst.SetFg(hx, hy, '°', core.ColorText)
		}

		if b.Sticker != "" {
			s.drawSticker(dst, c, r, b.Sticker)
		}
	}
	s.drawRing(dst, c, b.Size/2, b.Visual)
}

// drawOutline draws the border cells of a circle with rounded glyphs.
func (s *Scene) drawOutline(dst *core.Screen, c core.Point, r float64, fg core.Color) {
	cw, ch := s.cellSize()
	s.eachCell(dst, c, r, r, func(x, y int, p core.Point) {
		if !inEllipse(p, c, r, r) {
			return
		}
		edge := !inEllipse(core.Point{X: p.X - cw, Y: p.Y}, c, r, r) ||
			!inEllipse(core.Point{X: p.X + cw, Y: p.Y}, c, r, r) ||
			!inEllipse(core.Point{X: p.X, Y: p.Y - ch}, c, r, r) ||
			!inEllipse(core.Point{X: p.X, Y: p.Y + ch}, c, r, r)
		if edge {
			dst.SetFg(x, y, outlineGlyph(math.Atan2(p.Y-c.Y, p.X-c.X)), fg)
		}
	})
}

// outlineGlyph picks a box-drawing rune for a point on a circle at angle a.
func outlineGlyph(a float64) rune {
	const eighth = math.Pi / 8
	switch {
	case a > -eighth && a <= eighth, a > 7*eighth || a <= -7*eighth:
		return '│'
	case a > 3*eighth && a <= 5*eighth, a > -5*eighth && a <= -3*eighth:
		return '─'
	case a > eighth && a <= 3*eighth:
		return '╯'
	case a > 5*eighth && a <= 7*eighth:
		return '╰'
	case a > -3*eighth && a <= -eighth:
		return '╮'
	default:
		return '╭'
	}
}

// drawRing draws the pop ring as dots on a circle of base*RingScale.
func (s *Scene) drawRing(dst *core.Screen, c core.Point, base float64, v Visual) {
	if v.RingOpacity <= minRingOpacity {
		return
	}
	r := base * v.RingScale
	cw, ch := s.cellSize()
	band := math.Max(cw, ch) / 2
	s.eachCell(dst, c, r+band, r+band, func(x, y int, p core.Point) {
		if math.Abs(p.Dist(c)-r) <= band && dst.Get(x, y) == ' ' {
			dst.SetFg(x, y, '·', core.ColorRing)
		}
	})
}

// drawSticker writes the sticker name across the middle, clipped to the bubble.
func (s *Scene) drawSticker(dst *core.Screen, c core.Point, r float64, name string) {
	cw, _ := s.cellSize()
	room := int(2*r/cw) - 2
	if room <= 0 {
		return
	}
	word := []rune(name)
	if len(word) > room {
		word = word[:room]
	}
	x, y := s.rt.ToCell(c)
	dst.DrawText(x-len(word)/2, y, string(word), core.ColorSticker)
}

func (s *Scene) drawBadge(dst *core.Screen) {
	w := len(badgeText) + 4
	if s.badge.Scale < 0.8 {
		w -= 2
	}
	box := core.NewRect((dst.Width()-w)/2, dst.Height()/2-1, w, 3)
	dst.DrawRect(box, ' ', core.ColorBadge, core.ColorDefault)
	dst.DrawBox(box, core.ColorBadge)
	dst.DrawTextCentered(box.Y+1, badgeText, core.ColorBadge)
}

func (s *Scene) drawLock(dst *core.Screen) {
	box := s.lockRect()
	dst.DrawBox(box, core.ColorLock)
	dst.DrawText(box.X+1, box.Y+1, s.t.cfg.Parental.Label, core.ColorLock)
}
