package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-playroom/internal/audio"
	"github.com/vovakirdan/tui-playroom/internal/config"
	"github.com/vovakirdan/tui-playroom/internal/core"
	"github.com/vovakirdan/tui-playroom/internal/device"
	"github.com/vovakirdan/tui-playroom/internal/platform/tui"
	"github.com/vovakirdan/tui-playroom/internal/registry"
	"github.com/vovakirdan/tui-playroom/internal/storage"
)

// localRuntime owns everything a local session opens.
type localRuntime struct {
	cfg     core.RuntimeConfig
	deps    tui.Deps
	logFile *os.File
	engine  *audio.Engine
}

// openLogger writes to the log file, since stdout belongs to the UI.
func openLogger() (*log.Logger, *os.File) {
	path := flagLogPath
	if path == "" {
		path = config.UserPath("playroom.log")
	}

	var w io.Writer = io.Discard
	var f *os.File
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err == nil {
				w = f
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "playroom",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f
}

// terminalConfig builds a runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openLocal wires storage, audio and devices for a local session.
// Every missing piece degrades to a silent fallback.
func openLocal() *localRuntime {
	logger, logFile := openLogger()
	rt := &localRuntime{cfg: terminalConfig(), logFile: logFile}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open playroom database: %v\n", err)
		logger.Warn("could not open playroom database", "error", err)
		store = nil
	}

	env := registry.Env{Logger: logger}
	if store != nil {
		env.Settings = store
	}

	if !flagNoAudio {
		opts := audio.DefaultOptions()
		opts.Seed = flagSeed
		engine, audioErr := audio.NewEngine(opts, logger)
		if audioErr != nil {
			logger.Warn("audio unavailable, continuing silently", "error", audioErr)
		} else {
			rt.engine = engine
			env.Sound = engine
			env.Music = engine
		}
	}

	caps := device.Probe(device.ProbeOptions{
		KeyboardTilt: true,
		BellWriter:   os.Stdout,
	}, logger)
	env.Tilt = caps.Tilt
	env.Haptics = caps.Haptics

	rt.deps = tui.Deps{
		Store:  store,
		Env:    env,
		Keys:   caps.Keys,
		Logger: logger,
	}
	return rt
}

// Close releases everything openLocal opened.
func (rt *localRuntime) Close() {
	if rt.engine != nil {
		rt.engine.Close()
	}
	if rt.deps.Store != nil {
		rt.deps.Store.Close()
	}
	if rt.logFile != nil {
		rt.logFile.Close()
	}
}
