// Package audio provides the playroom's beep-backed synth engine for
// effects and lullabies.
package audio

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Options tunes the engine mix.
type Options struct {
	EffectsGain float64
	MusicGain   float64
	Seed        int64
}

// DefaultOptions returns a quiet mix suited to a toy.
func DefaultOptions() Options {
	return Options{EffectsGain: 0.5, MusicGain: 0.18}
}

// Engine plays effects and the lullaby playlist through the system speaker.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *musicControl
	opts        Options
	logger      *log.Logger
	initialized bool
}

var speakerOnce struct {
	sync.Once
	err error
}

// NewEngine initialises the speaker and starts an idle mixer.
// The speaker can only be opened once per process.
func NewEngine(opts Options, logger *log.Logger) (*Engine, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	speakerOnce.Do(func() {
		speakerOnce.err = speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	})
	if speakerOnce.err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", speakerOnce.err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e := &Engine{
		mixer:  &beep.Mixer{},
		music:  newMusicControl(Lullabies, opts.MusicGain, rand.New(rand.NewSource(seed))),
		opts:   opts,
		logger: logger,
	}
	e.mixer.Add(e.music.ctrl)

	speaker.Play(e.mixer)
	e.initialized = true
	logger.Debug("audio ready", "sample_rate", int(sampleRate))
	return e, nil
}

func (e *Engine) add(s beep.Streamer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// PlayPop plays the pop blip.
func (e *Engine) PlayPop() {
	e.add(popSound(e.opts.EffectsGain))
}

// PlayGiggle plays the reward arpeggio.
func (e *Engine) PlayGiggle() {
	e.add(giggleSound(e.opts.EffectsGain))
}

// SetEnabled pauses or resumes the lullaby playlist. Resuming starts
// over on a random lullaby.
func (e *Engine) SetEnabled(on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return
	}
	speaker.Lock()
	track := e.music.set(on)
	speaker.Unlock()
	e.logger.Debug("music", "enabled", on, "track", track)
}

// Close silences everything. The speaker itself stays open.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return
	}
	speaker.Lock()
	e.music.ctrl.Paused = true
	e.mixer.Clear()
	speaker.Unlock()
	e.initialized = false
}
