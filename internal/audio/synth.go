package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(44100)

// tone is a sine oscillator whose frequency glides linearly from f0 to f1.
type tone struct {
	f0, f1   float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

func newTone(f0, f1 float64, d time.Duration, rate beep.SampleRate) *tone {
	return &tone{f0: f0, f1: f1, total: rate.N(d), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}
		p := float64(t.position) / float64(t.total)
		freq := t.f0 + (t.f1-t.f0)*p
		val := math.Sin(2 * math.Pi * t.phase)

		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; left < e.release && e.release > 0 {
			vol = math.Max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales a stream by a linear gain. A gain of zero is silent.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// popSound is a short downward blip.
func popSound(gain float64) beep.Streamer {
	d := 90 * time.Millisecond
	body := newEnvelope(newTone(900, 260, d, sampleRate), d, 4*time.Millisecond, 60*time.Millisecond, sampleRate)
	return withVolume(body, gain)
}

// giggleSound is a quick rising arpeggio.
func giggleSound(gain float64) beep.Streamer {
	notes := []int{72, 76, 79, 84, 79, 84}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		d := 70 * time.Millisecond
		f := NoteFreq(n)
		parts = append(parts, newEnvelope(newTone(f, f*1.03, d, sampleRate), d, 5*time.Millisecond, 30*time.Millisecond, sampleRate))
	}
	return withVolume(beep.Seq(parts...), gain)
}

// NoteFreq returns the frequency in Hz of a MIDI note number.
func NoteFreq(midi int) float64 {
	if midi < 0 || midi > 127 {
		return 0
	}
	return 440 * math.Pow(2, float64(midi-69)/12)
}
