package audio

import (
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Note is one melody step. A MIDI value of 0 is a rest.
type Note struct {
	MIDI  int
	Beats float64
}

// Track is a named lullaby melody.
type Track struct {
	Name  string
	BPM   int
	Notes []Note
}

// Lullabies is the built-in background playlist.
var Lullabies = []Track{
	{
		Name: "twinkle",
		BPM:  84,
		Notes: []Note{
			{60, 1}, {60, 1}, {67, 1}, {67, 1}, {69, 1}, {69, 1}, {67, 2},
			{65, 1}, {65, 1}, {64, 1}, {64, 1}, {62, 1}, {62, 1}, {60, 2},
			{0, 2},
		},
	},
	{
		Name: "brahms",
		BPM:  72,
		Notes: []Note{
			{64, 0.5}, {64, 0.5}, {67, 2}, {64, 0.5}, {64, 0.5}, {67, 2},
			{64, 0.5}, {67, 0.5}, {72, 1}, {71, 1.5}, {69, 0.5}, {69, 1}, {67, 1},
			{0, 2},
		},
	},
	{
		Name: "hush",
		BPM:  76,
		Notes: []Note{
			{67, 1}, {64, 1}, {64, 1}, {65, 1}, {62, 1}, {62, 1},
			{60, 1}, {62, 1}, {64, 1}, {65, 1}, {67, 1}, {67, 1}, {67, 2},
			{0, 2},
		},
	},
}

// render turns a track into a finite streamer.
func (t Track) render(gain float64) beep.Streamer {
	bpm := t.BPM
	if bpm <= 0 {
		bpm = 80
	}
	beat := time.Minute / time.Duration(bpm)
	parts := make([]beep.Streamer, 0, len(t.Notes))
	for _, n := range t.Notes {
		d := time.Duration(n.Beats * float64(beat))
		if n.MIDI == 0 {
			parts = append(parts, beep.Silence(sampleRate.N(d)))
			continue
		}
		f := NoteFreq(n.MIDI)
		parts = append(parts, newEnvelope(newTone(f, f, d, sampleRate), d, 30*time.Millisecond, d/2, sampleRate))
	}
	return withVolume(beep.Seq(parts...), gain)
}

// Playlist streams tracks back to back forever, moving to the next track
// whenever the current one finishes.
type Playlist struct {
	tracks  []Track
	gain    float64
	index   int
	current beep.Streamer
	played  int
}

// NewPlaylist starts at track first (wrapped into range).
func NewPlaylist(tracks []Track, first int, gain float64) *Playlist {
	p := &Playlist{tracks: tracks, gain: gain}
	p.Restart(first)
	return p
}

// Restart begins again from the top of track first (wrapped into range).
func (p *Playlist) Restart(first int) {
	if len(p.tracks) == 0 {
		return
	}
	p.index = ((first % len(p.tracks)) + len(p.tracks)) % len(p.tracks)
	p.current = p.tracks[p.index].render(p.gain)
}

// Current returns the name of the playing track.
func (p *Playlist) Current() string {
	if len(p.tracks) == 0 {
		return ""
	}
	return p.tracks[p.index].Name
}

// Played returns how many tracks have finished.
func (p *Playlist) Played() int {
	return p.played
}

func (p *Playlist) advance() {
	p.played++
	p.index = (p.index + 1) % len(p.tracks)
	p.current = p.tracks[p.index].render(p.gain)
}

// Stream implements beep.Streamer.
func (p *Playlist) Stream(samples [][2]float64) (n int, ok bool) {
	if p.current == nil {
		return 0, false
	}
	for n < len(samples) {
		m, more := p.current.Stream(samples[n:])
		n += m
		if !more || m == 0 {
			p.advance()
		}
	}
	return n, true
}

// Err implements beep.Streamer.
func (p *Playlist) Err() error { return nil }

// musicControl pauses the playlist and restarts it on a random track each
// time it resumes. Callers on a live speaker hold speaker.Lock.
type musicControl struct {
	ctrl     *beep.Ctrl
	playlist *Playlist
	rng      *rand.Rand
}

func newMusicControl(tracks []Track, gain float64, rng *rand.Rand) *musicControl {
	m := &musicControl{playlist: NewPlaylist(tracks, 0, gain), rng: rng}
	m.ctrl = &beep.Ctrl{Streamer: m.playlist, Paused: true}
	return m
}

// set pauses or resumes and returns the track now queued.
func (m *musicControl) set(on bool) string {
	if on && m.ctrl.Paused && len(m.playlist.tracks) > 0 {
		m.playlist.Restart(m.rng.Intn(len(m.playlist.tracks)))
	}
	m.ctrl.Paused = !on
	return m.playlist.Current()
}
