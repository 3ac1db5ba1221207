package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-playroom/internal/config"
	"github.com/vovakirdan/tui-playroom/internal/core"
	"github.com/vovakirdan/tui-playroom/internal/device"
	"github.com/vovakirdan/tui-playroom/internal/registry"
	"github.com/vovakirdan/tui-playroom/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.playroom/host_key.
	HostKeyPath string

	// DBPath is the path to the settings and sessions database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate for every session.
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.playroom/playroom.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer serves one playroom session per SSH connection. All
// connections share the store, so settings and history are per server.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int64
}

// NewSSHServer creates a new SSH server with the given configuration.
// A nil logger logs to stderr.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "playroom-ssh",
		})
	}

	hostKeyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{config: cfg, logger: logger}

	// A missing database only costs history and saved settings
	if store, openErr := storage.Open(cfg.DBPath); openErr != nil {
		logger.Warn("could not open playroom database", "path", cfg.DBPath, "error", openErr)
	} else {
		srv.store = store
	}

	// Middleware runs last to first: sessions are counted, then
	// non-PTY connections are refused before a program starts.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.trackSessions,
		),
	)
	if err != nil {
		if srv.store != nil {
			srv.store.Close()
		}
		return nil, fmt.Errorf("tui: create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKey returns the host key location, creating its directory.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		path = config.UserPath("host_key")
	}
	if path == "" {
		path = "playroom_host_key"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler wires a fresh scene environment for each connection.
// Sessions are silent; haptic taps ring the client's bell.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()

	cfg := core.DefaultConfig()
	cfg.ScreenW = pty.Window.Width
	cfg.ScreenH = pty.Window.Height
	cfg.TickRate = s.config.TickRate
	cfg.Seed = time.Now().UnixNano()

	logger := s.logger.With("user", sess.User())
	caps := device.Probe(device.ProbeOptions{KeyboardTilt: true, BellWriter: sess}, logger)

	deps := Deps{
		Store: s.store,
		Env: registry.Env{
			Sound:   registry.Silent{},
			Music:   registry.Silent{},
			Tilt:    caps.Tilt,
			Haptics: caps.Haptics,
		},
		Keys:   caps.Keys,
		Logger: logger,
	}

	return NewSessionModel(cfg, deps), []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// trackSessions logs connects and disconnects with the live session count.
func (s *SSHServer) trackSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"active", s.active.Add(1),
		)
		defer func() {
			s.logger.Info("session ended",
				"user", sess.User(),
				"duration", time.Since(start).Round(time.Second),
				"active", s.active.Add(-1),
			)
		}()
		next(sess)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			s.closeStore()
			return fmt.Errorf("tui: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...", "active", s.active.Load())
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// ActiveSessions returns the number of connected sessions.
func (s *SSHServer) ActiveSessions() int64 {
	return s.active.Load()
}
