// Package tui provides the Bubble Tea integration for the playroom.
// It handles the terminal UI loop, input mapping, and scene orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-playroom/internal/core"
)

// TickMsg is sent to trigger a scene simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(core.TickDuration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
