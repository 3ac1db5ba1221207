package audio

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to exhaustion and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return total, peak
}

func TestPopSoundIsShort(t *testing.T) {
	n, peak := drain(t, popSound(1), sampleRate.N(time.Second))
	if want := sampleRate.N(90 * time.Millisecond); n != want {
		t.Errorf("pop length = %d samples, expected %d", n, want)
	}
	if peak == 0 || peak > 1 {
		t.Errorf("pop peak = %v, expected (0, 1]", peak)
	}
}

func TestGiggleSoundEnds(t *testing.T) {
	n, _ := drain(t, giggleSound(0.5), sampleRate.N(2*time.Second))
	if want := 6 * sampleRate.N(70*time.Millisecond); n != want {
		t.Errorf("giggle length = %d samples, expected %d", n, want)
	}
}

func TestSilentVolume(t *testing.T) {
	_, peak := drain(t, popSound(0), sampleRate.N(time.Second))
	if peak != 0 {
		t.Errorf("zero gain should be silent, peak = %v", peak)
	}
}

func TestNoteFreq(t *testing.T) {
	tests := []struct {
		midi int
		want float64
	}{
		{69, 440},
		{81, 880},
		{57, 220},
		{-1, 0},
		{128, 0},
	}
	for _, tt := range tests {
		if got := NoteFreq(tt.midi); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NoteFreq(%d) = %v, expected %v", tt.midi, got, tt.want)
		}
	}
}

func TestPlaylistAdvancesOnFinish(t *testing.T) {
	tracks := []Track{
		{Name: "a", BPM: 600, Notes: []Note{{69, 1}}},
		{Name: "b", BPM: 600, Notes: []Note{{0, 1}}},
	}
	p := NewPlaylist(tracks, 1, 1)
	if p.Current() != "b" {
		t.Fatalf("Current() = %q, expected b", p.Current())
	}

	buf := make([][2]float64, 512)
	for i := 0; i < 20; i++ {
		n, ok := p.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("playlist should always fill the buffer, got n=%d ok=%v", n, ok)
		}
	}
	// 20*512 samples covers two 100ms tracks at 44.1kHz.
	if p.Played() < 2 {
		t.Errorf("Played() = %d, expected at least 2", p.Played())
	}
}

func TestPlaylistFirstWraps(t *testing.T) {
	p := NewPlaylist(Lullabies, -1, 1)
	if p.Current() != Lullabies[len(Lullabies)-1].Name {
		t.Errorf("first=-1 should wrap to the last track, got %q", p.Current())
	}
	if NewPlaylist(nil, 0, 1).Current() != "" {
		t.Error("empty playlist should have no current track")
	}
}

func TestMusicResumeRestartsOnRandomTrack(t *testing.T) {
	m := newMusicControl(Lullabies, 1, rand.New(rand.NewSource(5)))
	if !m.ctrl.Paused {
		t.Fatal("music should start paused")
	}

	seen := make(map[string]bool)
	for i := 0; i < 40; i++ {
		seen[m.set(true)] = true
		if m.ctrl.Paused {
			t.Fatal("set(true) left music paused")
		}
		m.set(false)
	}
	if len(seen) < 2 {
		t.Errorf("resumes always started on %v, expected a random first track", seen)
	}
}

func TestMusicStayingOnKeepsTrack(t *testing.T) {
	tracks := []Track{
		{Name: "a", BPM: 600, Notes: []Note{{69, 1}}},
		{Name: "b", BPM: 600, Notes: []Note{{69, 1}}},
		{Name: "c", BPM: 600, Notes: []Note{{69, 1}}},
	}
	m := newMusicControl(tracks, 1, rand.New(rand.NewSource(1)))
	first := m.set(true)

	// Enabling again while already playing is not a resume.
	for i := 0; i < 10; i++ {
		if got := m.set(true); got != first {
			t.Fatalf("track changed to %q while playing %q", got, first)
		}
	}
	if got := m.set(false); got != first || !m.ctrl.Paused {
		t.Errorf("pause = (%q, paused=%v), expected (%q, true)", got, m.ctrl.Paused, first)
	}
}

func TestEngineDegradesWithoutDevice(t *testing.T) {
	// Speaker initialisation fails on machines without audio hardware.
	e, err := NewEngine(DefaultOptions(), nil)
	if err != nil {
		t.Logf("speaker unavailable (expected in CI): %v", err)
		return
	}
	e.PlayPop()
	e.SetEnabled(true)
	e.SetEnabled(false)
	e.Close()
	e.PlayGiggle()
}
