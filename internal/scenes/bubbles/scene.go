// Package bubbles implements the bubble playroom scene: a crowd of
// drifting bubbles that wander upward, avoid each other and the edges,
// expire and respawn, pop on tap, and a bubble gun on long press.
package bubbles

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-playroom/internal/config"
	"github.com/vovakirdan/tui-playroom/internal/core"
	"github.com/vovakirdan/tui-playroom/internal/parental"
	"github.com/vovakirdan/tui-playroom/internal/registry"
)

// ID is the registry name of the bubble scene.
const ID = "bubbles"

func init() {
	registry.Register(ID, func() registry.Scene { return New() })
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

const (
	skyRefresh = time.Minute
	tiltSample = 100 * time.Millisecond
)

// Scene implements registry.Scene for the bubble playroom.
type Scene struct {
	fixedCfg *config.BubblesConfig
	fixedRng core.Rand

	t      tuning
	rt     core.RuntimeConfig
	env    registry.Env
	rng    core.Rand
	timers *core.Timers
	dt     time.Duration
	w, h   float64

	bubbles  map[string]*Bubble
	order    []string
	nextID   int
	snapshot []Neighbor

	emitter *Emitter
	clouds  []*Cloud
	tilt    tilt
	sky     core.Color
	night   bool

	combo      Combo
	boost      float64
	boostTimer core.TimerID
	badge      Visual
	badgeAnim  *Anim

	lock    *parental.Lock
	gesture gesture
	sfx     *sfx

	counters core.SceneState
	mounted  bool
	unlock   bool
}

// Option customises a Scene.
type Option func(*Scene)

// WithConfig uses cfg instead of loading from disk at mount.
func WithConfig(cfg config.BubblesConfig) Option {
	return func(s *Scene) { s.fixedCfg = &cfg }
}

// WithRand injects the random source used for every draw.
func WithRand(r core.Rand) Option {
	return func(s *Scene) { s.fixedRng = r }
}

// New creates an unmounted bubble scene.
func New(opts ...Option) *Scene {
	s := &Scene{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the unique identifier for this scene.
func (s *Scene) ID() string {
	return ID
}

// Title returns the display name for this scene.
func (s *Scene) Title() string {
	return "Bubble Pop"
}

// Mount builds the scene for a viewport. A mounted scene is torn down first.
func (s *Scene) Mount(rt core.RuntimeConfig, env registry.Env) {
	if s.mounted {
		s.Unmount()
	}
	s.env = env.WithDefaults()
	s.rt = rt

	cfg := config.DefaultBubblesConfig()
	if s.fixedCfg != nil {
		cfg = *s.fixedCfg
	} else if loaded, err := config.LoadBubbles(configPath); err != nil {
		s.env.Logger.Warn("bubbles config rejected, using defaults", "path", configPath, "error", err)
	} else {
		cfg = loaded
	}
	s.t = newTuning(cfg)

	s.rng = s.fixedRng
	if s.rng == nil {
		seed := rt.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = core.NewRand(seed)
	}

	s.w, s.h = rt.Viewport()
	s.timers = core.NewTimers()
	s.dt = core.TickDuration(rt.TickRate)
	s.counters = core.SceneState{}
	s.unlock = false

	s.sfx = newSFX(s.env.Sound, s.rng, cfg.SFX)
	s.combo = Combo{Window: config.Ms(cfg.Combo.WindowMs), Threshold: cfg.Combo.Threshold}
	s.boost = 1
	s.boostTimer = 0
	s.badge = Visual{Scale: 0.6}
	s.badgeAnim = nil
	s.lock = parental.New(s.timers, cfg.Parental.Taps, config.Ms(cfg.Parental.ResetMs))
	s.gesture = gesture{}

	s.emitter = NewEmitter(emitterParams(s.t, s.w, s.h), s.rng)
	s.emitter.OnLand = func(now time.Duration) {
		if s.sfx.shotLanded(now) {
			s.env.Logger.Debug("shot sfx", "at", now)
		}
	}

	s.refreshSky()
	s.startClouds()
	s.tilt = tilt{}
	s.sampleTilt()

	s.spawnCrowd()

	s.env.Music.SetEnabled(s.env.Settings.MusicOn())
	s.mounted = true
	s.counters.Mounted = true
	s.env.Logger.Debug("bubbles mounted",
		"viewport", fmt.Sprintf("%.0fx%.0f", s.w, s.h),
		"bubbles", len(s.order),
		"clouds", len(s.clouds))
}

// BubbleCount returns the crowd size for a viewport.
func BubbleCount(w, h float64, p config.BubblePopulation) int {
	return core.Clamp(int(math.Round(w*h/p.AreaPerBubble)), p.Min, p.Max)
}

// steering returns the steering parameters for the current viewport.
func (s *Scene) steering() SteeringParams {
	m := s.t.cfg.Motion
	return SteeringParams{
		W:          s.w,
		H:          s.h,
		SoftWall:   m.SoftWall,
		NudgeX:     s.t.wallNudgeX,
		NudgeY:     s.t.wallNudgeY,
		DurMin:     s.t.legDurMin,
		DurMax:     s.t.legDurMax,
		Separation: s.t.separation(),
	}
}

func (s *Scene) placement() PlacementParams {
	return PlacementParams{
		W:          s.w,
		H:          s.h,
		Margin:     s.t.cfg.Placement.Margin,
		Attempts:   s.t.cfg.Placement.Attempts,
		Separation: s.t.separation(),
	}
}

// refreshSky picks the sky from the wall clock and re-arms itself.
func (s *Scene) refreshSky() {
	hour := s.env.Clock().Hour()
	s.sky = SkyFor(hour)
	s.night = IsNight(hour)
	if s.env.Settings.ColorMode() == config.ModeNight {
		s.sky = core.ColorSkyNight
		s.night = true
	}
	s.timers.After(skyRefresh, s.refreshSky)
}

func (s *Scene) startClouds() {
	c := s.t.cfg.Clouds
	s.clouds = buildClouds(s.rng, s.w, s.h, s.night, c)
	for _, cl := range s.clouds {
		delay := config.Ms(core.UniformInt(s.rng, 0, c.MaxStartDelayMs))
		s.timers.After(delay, func() { cl.begin(s.timers.Now()) })
	}
}

// sampleTilt reads the sensor and re-arms itself.
func (s *Scene) sampleTilt() {
	x, y := s.env.Tilt.Read()
	s.tilt.retarget(x, y, s.t.cfg.Tilt, s.timers.Now())
	s.timers.After(tiltSample, s.sampleTilt)
}

// Step advances the simulation by one tick.
func (s *Scene) Step(in core.InputFrame) core.StepResult {
	if !s.mounted {
		return core.StepResult{State: s.State()}
	}
	s.unlock = false

	// Shot insertions and removals queued last tick land now.
	s.emitter.Flush()

	now := s.timers.Now()
	if in.Has(core.ActionLockTap) {
		s.tapLock()
	}
	for _, ev := range in.Pointers {
		s.handlePointer(ev, now)
	}

	s.timers.Advance(s.dt)
	now = s.timers.Now()

	s.snapshot = s.neighbors(s.snapshot[:0])
	for _, id := range s.order {
		if b, ok := s.bubbles[id]; ok {
			s.updateBubble(b, now)
		}
	}

	s.emitter.Update(now)
	for _, cl := range s.clouds {
		cl.update(now)
	}
	s.tilt.update(now)
	s.badgeAnim.Advance(now)

	s.counters.Shots = s.emitter.Emitted
	return core.StepResult{State: s.State(), UnlockRequested: s.unlock}
}

// neighbors fills dst with a stable view of every bubble for this pass.
func (s *Scene) neighbors(dst []Neighbor) []Neighbor {
	for _, id := range s.order {
		if b, ok := s.bubbles[id]; ok {
			dst = append(dst, b.neighbor())
		}
	}
	return dst
}

// Unmount cancels every timer and drops all bubbles, shots and clouds.
func (s *Scene) Unmount() {
	if !s.mounted {
		return
	}
	s.timers.Stop()
	for _, b := range s.bubbles {
		b.Stopped = true
		b.pop = nil
		b.ttl = 0
	}
	s.emitter.Stop()
	s.emitter.Clear()
	s.lock.Stop()
	s.bubbles = nil
	s.order = nil
	s.snapshot = nil
	s.clouds = nil
	s.badgeAnim = nil
	s.env.Music.SetEnabled(false)

	s.mounted = false
	s.counters.Mounted = false
	s.counters.Boosted = false
	s.env.Logger.Debug("bubbles unmounted",
		"manual_pops", s.counters.ManualPops,
		"auto_pops", s.counters.AutoPops,
		"combos", s.counters.Combos)
}

// State returns the current scene counters.
func (s *Scene) State() core.SceneState {
	st := s.counters
	st.Boosted = s.mounted && s.boost > 1
	st.Mounted = s.mounted
	return st
}

// Bubbles returns the live bubbles in creation order.
func (s *Scene) Bubbles() []*Bubble {
	out := make([]*Bubble, 0, len(s.order))
	for _, id := range s.order {
		if b, ok := s.bubbles[id]; ok {
			out = append(out, b)
		}
	}
	return out
}

// Bubble returns a bubble by ID, or nil.
func (s *Scene) Bubble(id string) *Bubble {
	return s.bubbles[id]
}

// Emitter returns the bubble gun.
func (s *Scene) Emitter() *Emitter {
	return s.emitter
}

// Clouds returns the background clouds.
func (s *Scene) Clouds() []*Cloud {
	return s.clouds
}

// PendingTimers returns how many scheduled callbacks are outstanding.
func (s *Scene) PendingTimers() int {
	if s.timers == nil {
		return 0
	}
	return s.timers.Pending()
}

// Now returns the scene's simulated time.
func (s *Scene) Now() time.Duration {
	if s.timers == nil {
		return 0
	}
	return s.timers.Now()
}
