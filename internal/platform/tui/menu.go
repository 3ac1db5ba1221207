package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-playroom/internal/core"
	"github.com/vovakirdan/tui-playroom/internal/registry"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("213"))
	menuItemStyle = lipgloss.NewStyle().
			Padding(0, 2)
	menuSelectedStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
	menuBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
	menuHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// MenuItem is one scene on the picker.
type MenuItem struct {
	SceneID string
	Title   string
}

// MenuModel is the scene picker shown before a scene starts.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel lists every registered scene.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	scenes := registry.List()
	items := make([]MenuItem, 0, len(scenes))
	for _, s := range scenes {
		items = append(items, MenuItem{SceneID: s.ID, Title: s.Title})
	}

	return MenuModel{
		items:     items,
		config:    cfg,
		keyMapper: NewKeyMapper(cfg),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.keyMapper.SetConfig(m.config)
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// 1-9 jump straight to a scene
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		if i := int(s[0] - '1'); i < len(m.items) {
			m.cursor = i
			return m.choose()
		}
		return m, nil
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = (m.cursor - 1 + len(m.items)) % max(1, len(m.items))
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % max(1, len(m.items))
	case MenuActionSelect:
		return m.choose()
	}
	return m, nil
}

// handleMouse lets a click on an item start it.
func (m MenuModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if i, ok := m.itemAt(msg.Y); ok {
		m.cursor = i
		return m.choose()
	}
	return m, nil
}

func (m MenuModel) choose() (tea.Model, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	selected := m.items[m.cursor]
	m.selected = &selected
	return m, tea.Quit
}

// listTop is the screen row of the first item: title, blank line, then
// the box border and its padding.
func (m MenuModel) listTop() int {
	gap := m.config.ScreenH - (lipgloss.Height(m.box()) + 3)
	return max(0, (gap+1)/2) + 4
}

func (m MenuModel) itemAt(row int) (int, bool) {
	i := row - m.listTop()
	return i, i >= 0 && i < len(m.items)
}

func (m MenuModel) box() string {
	lines := make([]string, len(m.items))
	for i, item := range m.items {
		label := fmt.Sprintf("%d  %s", i+1, item.Title)
		if i == m.cursor {
			lines[i] = menuSelectedStyle.Render(label)
		} else {
			lines[i] = menuItemStyle.Render(label)
		}
	}
	if len(lines) == 0 {
		lines = []string{menuHintStyle.Render("No scenes installed")}
	}
	return menuBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// View renders the menu centred on the screen.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		menuTitleStyle.Render("P L A Y R O O M"),
		"",
		m.box(),
		menuHintStyle.Render("click or press a number  ·  q quits"),
	)
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	SceneID string
	Config  core.RuntimeConfig
	Quit    bool
}

// RunMenu runs the picker on its own and reports the choice.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	finalModel, err := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return MenuResult{SceneID: m.Selected().SceneID, Config: m.Config()}, nil
}
