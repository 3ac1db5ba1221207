package registry

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-playroom/internal/core"
)

type stubScene struct{ mounted bool }

func (s *stubScene) ID() string { return "stub" }
func (s *stubScene) Title() string { return "Stub Scene" }
func (s *stubScene) Mount(core.RuntimeConfig, Env) { s.mounted = true }
func (s *stubScene) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubScene) Render(*core.Screen) {}
func (s *stubScene) Unmount() { s.mounted = false }
func (s *stubScene) State() core.SceneState { return core.SceneState{Mounted: s.mounted} }

func TestRegisterCreate(t *testing.T) {
	Register("stub", func() Scene { return &stubScene{} })

	if !Exists("stub") {
		t.Fatal("stub should exist after Register")
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub" {
			found = true
			if info.Title != "Stub Scene" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub Scene")
			}
		}
	}
	if !found {
		t.Error("List() should include stub")
	}

	s, err := Create("stub")
	if err != nil {
		t.Fatalf("Create(stub) error: %v", err)
	}
	if s.ID() != "stub" {
		t.Errorf("ID() = %q", s.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup", func() Scene { return &stubScene{} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup", func() Scene { return &stubScene{} })
}

func TestEnvWithDefaults(t *testing.T) {
	env := Env{}.WithDefaults()

	if env.Sound == nil || env.Music == nil || env.Tilt == nil || env.Haptics == nil {
		t.Fatal("WithDefaults left a nil collaborator")
	}
	if x, y := env.Tilt.Read(); x != 0 || y != 0 {
		t.Errorf("fallback tilt = (%v, %v), expected zero", x, y)
	}
	if !env.Settings.MusicOn() || env.Settings.ColorMode() != "default" {
		t.Error("fallback settings should be music on, default mode")
	}
	if env.Clock == nil || env.Logger == nil {
		t.Error("WithDefaults should set Clock and Logger")
	}

	// Calls must not panic.
	env.Sound.PlayPop()
	env.Sound.PlayGiggle()
	env.Music.SetEnabled(true)
	env.Haptics.Tap()
}

func TestEnvSilentFallback(t *testing.T) {
	env := Env{}.WithDefaults()
	if _, ok := env.Sound.(Silent); !ok {
		t.Errorf("fallback sound = %T, expected Silent", env.Sound)
	}
	if _, ok := env.Music.(Silent); !ok {
		t.Errorf("fallback music = %T, expected Silent", env.Music)
	}
}

// Scenes import this package, so it must not pull in the cgo audio backend.
func TestRegistryImportsNoAudioBackend(t *testing.T) {
	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}
	fset := token.NewFileSet()
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		for _, imp := range f.Imports {
			path, _ := strconv.Unquote(imp.Path.Value)
			if strings.HasSuffix(path, "/internal/audio") || strings.HasPrefix(path, "github.com/gopxl/") {
				t.Errorf("%s imports %s", name, path)
			}
		}
	}
}
