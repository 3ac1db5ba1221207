package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-playroom/internal/core"
	"github.com/vovakirdan/tui-playroom/internal/registry"
)

// SessionModel manages the full playroom flow: menu -> scene -> menu.
// This is the top-level model used for SSH sessions and the local menu.
type SessionModel struct {
	config   core.RuntimeConfig
	deps     Deps
	menu     MenuModel
	runner   *Model
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg core.RuntimeConfig, deps Deps) SessionModel {
	return SessionModel{
		config: cfg,
		deps:   deps.withDefaults(),
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.runner != nil {
		return m.updateScene(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		scene, err := registry.Create(selected.SceneID)
		if err != nil {
			m.deps.Logger.Error("could not create scene", "scene", selected.SceneID, "error", err)
			m.menu = NewMenuModel(m.config)
			return m, nil
		}

		runner := NewModel(scene, m.config, m.deps)
		runner.embedded = true
		m.runner = &runner
		return m, m.runner.Init()
	}

	return m, cmd
}

// updateScene handles updates while a scene runs.
func (m SessionModel) updateScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.runner.Update(msg)
	if runner, ok := next.(Model); ok {
		m.runner = &runner
	}

	if m.runner.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.runner.BackToMenu() {
		m.runner = nil
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.runner != nil {
		return m.runner.View()
	}

	return m.menu.View()
}

// RunSession runs the menu and scenes in a single local program.
func RunSession(cfg core.RuntimeConfig, deps Deps) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, deps),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
