package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-playroom/internal/config"
	"github.com/vovakirdan/tui-playroom/internal/registry"
	"github.com/vovakirdan/tui-playroom/internal/storage"
)

// Parental area layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the settings sidebar
	sidebarWidth       = 26 // Width of settings sidebar
	maxSessions        = 50 // Max sessions to load
)

// ParentalKeyMap defines the key bindings for the parental area.
type ParentalKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Music     key.Binding
	ColorMode key.Binding
	Clear     key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ParentalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Music, k.ColorMode, k.Clear, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ParentalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Music, k.ColorMode, k.Clear},
		{k.Back, k.Quit},
	}
}

// DefaultParentalKeyMap returns default key bindings.
func DefaultParentalKeyMap() ParentalKeyMap {
	return ParentalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Music: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "music"),
		),
		ColorMode: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "colours"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear history"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back to play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ParentalModel is the settings and play history screen behind the lock.
type ParentalModel struct {
	store       *storage.Store
	settings    storage.Settings
	sessions    []storage.Session
	titles      map[string]string
	table       table.Model
	wide        bool
	help        help.Model
	keys        ParentalKeyMap
	status      string
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewParentalModel creates a new parental area model. A nil store shows
// defaults and disables editing.
func NewParentalModel(store *storage.Store, width, height int) ParentalModel {
	titles := make(map[string]string)
	for _, s := range registry.List() {
		titles[s.ID] = s.Title
	}

	h := help.New()
	h.ShowAll = false

	m := ParentalModel{
		store:       store,
		settings:    storage.DefaultSettings(),
		titles:      titles,
		keys:        DefaultParentalKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	if store != nil {
		m.settings = store.Settings()
	}

	m.table = m.createTable()
	m.loadSessions()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ParentalModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 12},
		{Title: "Scene", Width: 12},
		{Title: "Pops", Width: 6},
		{Title: "Auto", Width: 6},
		{Title: "Yay", Width: 4},
		{Title: "Time", Width: 8},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	m.wide = tableWidth >= 58
	if !m.wide {
		// Drop the auto-pop column on narrow terminals
		columns = append(columns[:3], columns[4:]...)
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *ParentalModel) loadSessions() {
	m.sessions = nil
	if m.store != nil {
		sessions, err := m.store.RecentSessions("", maxSessions)
		if err != nil {
			m.status = "could not load history"
		} else {
			m.sessions = sessions
		}
	}
	m.updateTableRows()
}

func (m *ParentalModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		title := m.titles[s.SceneID]
		if title == "" {
			title = s.SceneID
		}
		row := table.Row{
			s.CreatedAt.Format("Jan 02 15:04"),
			title,
			fmt.Sprintf("%d", s.ManualPops),
		}
		if m.wide {
			row = append(row, fmt.Sprintf("%d", s.AutoPops))
		}
		row = append(row, fmt.Sprintf("%d", s.Combos), formatDuration(s))
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func formatDuration(s storage.Session) string {
	d := s.Duration()
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// Init initializes the parental model.
func (m ParentalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the parental area.
func (m ParentalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Music):
			m.toggleMusic()
			return m, nil

		case key.Matches(msg, m.keys.ColorMode):
			m.cycleColorMode()
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			m.clearHistory()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ParentalModel) toggleMusic() {
	on := !m.settings.MusicOn
	if m.store != nil {
		if err := m.store.SetMusicOn(on); err != nil {
			m.status = "could not save music setting"
			return
		}
	}
	m.settings.MusicOn = on
	m.status = "music " + onOff(on)
}

func (m *ParentalModel) cycleColorMode() {
	mode := config.NextColorMode(m.settings.ColorMode)
	if m.store != nil {
		if err := m.store.SetColorMode(mode); err != nil {
			m.status = "could not save colour mode"
			return
		}
	}
	m.settings.ColorMode = mode
	m.status = "colours: " + mode
}

func (m *ParentalModel) clearHistory() {
	if m.store == nil {
		return
	}
	if err := m.store.ClearSessions(); err != nil {
		m.status = "could not clear history"
		return
	}
	m.status = "history cleared"
	m.loadSessions()
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// View renders the parental area.
func (m ParentalModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("GROWN-UPS", m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	if m.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ParentalModel) settingsLines() []string {
	return []string{
		"Music:   " + onOff(m.settings.MusicOn),
		"Colours: " + m.settings.ColorMode,
		fmt.Sprintf("Plays:   %d", len(m.sessions)),
	}
}

func (m ParentalModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Settings\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")
	for _, line := range m.settingsLines() {
		sidebar.WriteString(line)
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ",
		tableStyle.Render(m.renderTableContent()))
}

func (m ParentalModel) renderNarrowLayout() string {
	var b strings.Builder

	b.WriteString(centerText(strings.Join(m.settingsLines(), "  |  "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	return b.String()
}

func (m ParentalModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No play sessions recorded yet.")
	}
	return m.table.View()
}

// Settings returns the settings as last saved from this screen.
func (m ParentalModel) Settings() storage.Settings {
	return m.settings
}

// IsGoingBack returns true if user wants to return to the scene.
func (m ParentalModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ParentalModel) IsQuitting() bool {
	return m.quitting
}
