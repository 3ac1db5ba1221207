package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-playroom/internal/config"
	"github.com/vovakirdan/tui-playroom/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// Renderer converts Screen buffers to styled strings through a theme.
// Styles are built once per colour pair.
type Renderer struct {
	theme  config.Theme
	styles map[colorPair]lipgloss.Style
}

// NewRenderer creates a renderer for the given theme.
func NewRenderer(theme config.Theme) *Renderer {
	return &Renderer{theme: theme, styles: make(map[colorPair]lipgloss.Style)}
}

// Theme returns the active theme.
func (r *Renderer) Theme() config.Theme {
	return r.theme
}

// SetTheme switches palettes.
func (r *Renderer) SetTheme(theme config.Theme) {
	r.theme = theme
	clear(r.styles)
}

func (r *Renderer) style(p colorPair) lipgloss.Style {
	if st, ok := r.styles[p]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if p.fg != core.ColorDefault {
		st = st.Foreground(r.theme.Color(p.fg))
	}
	if p.bg != core.ColorDefault {
		st = st.Background(r.theme.Color(p.bg))
	}
	r.styles[p] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colorPair{cell.Fg, cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.Fg, cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
