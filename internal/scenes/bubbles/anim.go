package bubbles

import "time"

// Ease maps linear progress in [0, 1] to eased progress.
type Ease func(float64) float64

func linear(t float64) float64 { return t }

// step moves one value to a target over a duration.
type step struct {
	value *float64
	to    float64
	dur   time.Duration
	ease  Ease
}

func to(value *float64, target float64, ms int) step {
	return step{value: value, to: target, dur: time.Duration(ms) * time.Millisecond, ease: linear}
}

func (s step) eased(e Ease) step {
	s.ease = e
	return s
}

// track runs steps one after another.
type track struct {
	steps []step
	i     int
	start time.Duration
	from  float64
	begun bool
}

func (tr *track) advance(now time.Duration) bool {
	for tr.i < len(tr.steps) {
		st := tr.steps[tr.i]
		if !tr.begun {
			tr.from = *st.value
			tr.begun = true
		}
		elapsed := now - tr.start
		if elapsed >= st.dur {
			*st.value = st.to
			tr.start += st.dur
			tr.i++
			tr.begun = false
			continue
		}
		p := float64(elapsed) / float64(st.dur)
		*st.value = tr.from + (st.to-tr.from)*st.ease(p)
		return false
	}
	return true
}

// Anim runs several tracks in parallel and finishes when all of them have.
type Anim struct {
	tracks []*track
	done   bool
}

// animate starts tracks at time start. Each argument is one sequential track.
func animate(start time.Duration, seqs ...[]step) *Anim {
	a := &Anim{tracks: make([]*track, 0, len(seqs))}
	for _, s := range seqs {
		a.tracks = append(a.tracks, &track{steps: s, start: start})
	}
	return a
}

func seq(steps ...step) []step { return steps }

// Advance moves every track to now and reports whether the animation is finished.
func (a *Anim) Advance(now time.Duration) bool {
	if a == nil || a.done {
		return true
	}
	done := true
	for _, tr := range a.tracks {
		if !tr.advance(now) {
			done = false
		}
	}
	a.done = done
	return done
}

// Done reports whether the animation has finished.
func (a *Anim) Done() bool {
	return a == nil || a.done
}
