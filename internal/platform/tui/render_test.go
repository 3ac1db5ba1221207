package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-playroom/internal/config"
	"github.com/vovakirdan/tui-playroom/internal/core"
)

func TestRendererKeepsLayout(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.Fill(core.ColorSkyDay)
	s.DrawText(2, 1, "pop", core.ColorText)

	r := NewRenderer(config.ThemeFor(config.ModeDefault))
	out := r.Render(s)

	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("newlines = %d, expected 2", got)
	}
	if !strings.Contains(out, "pop") {
		t.Error("rendered output should contain the text")
	}
}

func TestRendererSetTheme(t *testing.T) {
	r := NewRenderer(config.ThemeFor(config.ModeDefault))
	r.Render(core.NewScreen(4, 1))

	r.SetTheme(config.ThemeFor(config.ModeNight))
	if r.Theme().Name != config.ModeNight {
		t.Errorf("Theme().Name = %q, expected %q", r.Theme().Name, config.ModeNight)
	}
	if len(r.styles) != 0 {
		t.Error("SetTheme should drop cached styles")
	}
}
