package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-playroom/internal/config"
	"github.com/vovakirdan/tui-playroom/internal/core"
	"github.com/vovakirdan/tui-playroom/internal/device"
	"github.com/vovakirdan/tui-playroom/internal/registry"
	"github.com/vovakirdan/tui-playroom/internal/storage"
)

// Deps are the collaborators a scene runner is wired with.
type Deps struct {
	// Store persists settings and sessions. May be nil.
	Store *storage.Store

	// Env is handed to the scene at mount. Missing fields fall back to no-ops.
	Env registry.Env

	// Keys is the arrow-key tilt. Nil disables it.
	Keys *device.KeyTilt

	Logger *log.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	if d.Env.Logger == nil {
		d.Env.Logger = d.Logger
	}
	if d.Env.Settings == nil && d.Store != nil {
		d.Env.Settings = d.Store
	}
	if d.Env.Tilt == nil && d.Keys != nil {
		d.Env.Tilt = d.Keys
	}
	return d
}

// Model is the Bubble Tea model that runs one scene.
type Model struct {
	scene      registry.Scene
	screen     *core.Screen
	deps       Deps
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	renderer   *Renderer
	inputFrame core.InputFrame
	state      core.SceneState
	started    time.Time
	parental   *ParentalModel
	embedded   bool
	quitting   bool
	backToMenu bool
	saved      bool
}

// NewModel creates a new runner for the given scene.
func NewModel(scene registry.Scene, cfg core.RuntimeConfig, deps Deps) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	deps = deps.withDefaults()

	mode := config.ModeDefault
	if deps.Env.Settings != nil {
		mode = deps.Env.Settings.ColorMode()
	}

	return Model{
		scene:      scene,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		deps:       deps,
		config:     cfg,
		keyMapper:  NewKeyMapper(cfg),
		renderer:   NewRenderer(config.ThemeFor(mode)),
		inputFrame: core.NewInputFrame(),
	}
}

// Init mounts the scene and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.scene.Mount(m.config, m.deps.Env)
	m.deps.Logger.Info("scene started", "scene", m.scene.ID(), "size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))
	return tea.Batch(tickCmd(m.config.TickRate), startClock)
}

// sceneStartMsg stamps the session start from inside the event loop.
type sceneStartMsg time.Time

func startClock() tea.Msg {
	return sceneStartMsg(time.Now())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.parental != nil {
		return m.updateParental(msg)
	}

	switch msg := msg.(type) {
	case sceneStartMsg:
		m.started = time.Time(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := m.keyMapper.MapMouse(msg); ok {
			m.inputFrame.Pointers = append(m.inputFrame.Pointers, ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.finish()
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		m.finish()
		if !m.embedded {
			return m, tea.Quit
		}
		return m, nil
	}

	if k := m.deps.Keys; k != nil {
		switch {
		case m.inputFrame.Has(core.ActionTiltLeft):
			k.Nudge(-1, 0)
		case m.inputFrame.Has(core.ActionTiltRight):
			k.Nudge(1, 0)
		case m.inputFrame.Has(core.ActionTiltUp):
			k.Nudge(0, -1)
		case m.inputFrame.Has(core.ActionTiltDown):
			k.Nudge(0, 1)
		}
	}

	return m, nil
}

// handleResize remounts the scene for the new viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.keyMapper.SetConfig(m.config)

	m.scene.Mount(m.config, m.deps.Env)
	m.deps.Logger.Debug("scene remounted", "size", fmt.Sprintf("%dx%d", msg.Width, msg.Height))
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.scene.Step(m.inputFrame)
	m.state = result.State
	m.inputFrame.Clear()

	if m.deps.Keys != nil {
		m.deps.Keys.Decay(core.TickDuration(m.config.TickRate))
	}

	if result.UnlockRequested {
		p := NewParentalModel(m.deps.Store, m.config.ScreenW, m.config.ScreenH)
		m.parental = &p
		m.deps.Logger.Info("parental area opened")
		return m, m.parental.Init()
	}

	return m, tickCmd(m.config.TickRate)
}

// updateParental routes messages to the parental area while it is open.
// The scene is frozen; on close it is remounted so new settings apply.
func (m Model) updateParental(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		m.screen.Resize(wsm.Width, wsm.Height)
		m.keyMapper.SetConfig(m.config)
	}
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	next, cmd := m.parental.Update(msg)
	if p, ok := next.(ParentalModel); ok {
		m.parental = &p
	}

	if m.parental.IsQuitting() {
		m.quitting = true
		m.finish()
		return m, tea.Quit
	}
	if m.parental.IsGoingBack() {
		if m.deps.Store == nil {
			s := m.parental.Settings()
			m.deps.Env.Settings = registry.StaticSettings{Music: s.MusicOn, Mode: s.ColorMode}
		}
		m.parental = nil
		if st := m.deps.Env.Settings; st != nil {
			m.renderer.SetTheme(config.ThemeFor(st.ColorMode()))
		}
		m.scene.Mount(m.config, m.deps.Env)
		m.deps.Logger.Info("parental area closed")
		return m, tickCmd(m.config.TickRate)
	}
	return m, cmd
}

// finish unmounts the scene and records the session once.
func (m *Model) finish() {
	if m.saved {
		return
	}
	m.saved = true
	st := m.scene.State()
	m.scene.Unmount()

	var dur time.Duration
	if !m.started.IsZero() {
		dur = time.Since(m.started)
	}
	m.deps.Logger.Info("scene finished",
		"scene", m.scene.ID(),
		"manual_pops", st.ManualPops,
		"auto_pops", st.AutoPops,
		"combos", st.Combos,
		"duration", dur.Round(time.Second))

	if m.deps.Store == nil {
		return
	}
	_, err := m.deps.Store.SaveSession(storage.Session{
		SceneID:    m.scene.ID(),
		ManualPops: st.ManualPops,
		AutoPops:   st.AutoPops,
		Combos:     st.Combos,
		Shots:      st.Shots,
		DurationMs: dur.Milliseconds(),
	})
	if err != nil {
		m.deps.Logger.Warn("could not save session", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.scene.Render(m.screen)

	dir := config.UserPath("screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.deps.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := fmt.Sprintf("%s/%s_%s.txt", dir, m.scene.ID(), timestamp)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.deps.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.deps.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.parental != nil {
		return m.parental.View()
	}

	m.scene.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// State returns the scene counters seen on the last tick.
func (m Model) State() core.SceneState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given scene.
func Run(scene registry.Scene, cfg core.RuntimeConfig, deps Deps) error {
	model := NewModel(scene, cfg, deps)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, drag and release are the child's finger
	)

	_, err := p.Run()
	return err
}
