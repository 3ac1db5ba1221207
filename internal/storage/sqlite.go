// Package storage provides SQLite-based persistence for settings and play sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-playroom/internal/config"
)

const (
	keyMusicOn   = "music_on"
	keyColorMode = "color_mode"
)

// Store manages the SQLite database connection.
// It also serves as the scene's read-only settings view, cached in memory.
type Store struct {
	db *sql.DB

	mu       sync.RWMutex
	settings Settings
}

// Settings are the preferences the parental area edits.
type Settings struct {
	MusicOn   bool
	ColorMode string
}

// DefaultSettings returns the settings of a fresh install.
func DefaultSettings() Settings {
	return Settings{MusicOn: true, ColorMode: config.ModeDefault}
}

// Session is one completed visit to a scene.
type Session struct {
	ID         int64     `csv:"id"`
	SceneID    string    `csv:"scene"`
	ManualPops int       `csv:"manual_pops"`
	AutoPops   int       `csv:"auto_pops"`
	Combos     int       `csv:"combos"`
	Shots      int       `csv:"shots"`
	DurationMs int64     `csv:"duration_ms"`
	CreatedAt  time.Time `csv:"created_at"`
}

// Duration returns how long the session lasted.
func (s Session) Duration() time.Duration {
	return time.Duration(s.DurationMs) * time.Millisecond
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, settings: DefaultSettings()}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	if err := store.loadSettings(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene_id TEXT NOT NULL,
			manual_pops INTEGER NOT NULL DEFAULT 0,
			auto_pops INTEGER NOT NULL DEFAULT 0,
			combos INTEGER NOT NULL DEFAULT 0,
			shots INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_scene_id ON sessions(scene_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) loadSettings() error {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return fmt.Errorf("storage: cannot query settings: %w", err)
	}
	defer rows.Close()

	st := DefaultSettings()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return fmt.Errorf("storage: cannot scan setting: %w", err)
		}
		switch key {
		case keyMusicOn:
			if on, err := strconv.ParseBool(value); err == nil {
				st.MusicOn = on
			}
		case keyColorMode:
			st.ColorMode = value
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("storage: row iteration error: %w", err)
	}

	s.mu.Lock()
	s.settings = st
	s.mu.Unlock()
	return nil
}

func (s *Store) putSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save setting %s: %w", key, err)
	}
	return nil
}

// Settings returns the cached settings.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// MusicOn reports whether background music is enabled.
func (s *Store) MusicOn() bool {
	return s.Settings().MusicOn
}

// ColorMode returns the selected colour mode.
func (s *Store) ColorMode() string {
	return s.Settings().ColorMode
}

// SetMusicOn persists the music switch.
func (s *Store) SetMusicOn(on bool) error {
	if err := s.putSetting(keyMusicOn, strconv.FormatBool(on)); err != nil {
		return err
	}
	s.mu.Lock()
	s.settings.MusicOn = on
	s.mu.Unlock()
	return nil
}

// SetColorMode persists the colour mode. Unknown modes are rejected.
func (s *Store) SetColorMode(mode string) error {
	known := false
	for _, m := range config.ColorModes {
		if m == mode {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("storage: unknown color mode %q", mode)
	}
	if err := s.putSetting(keyColorMode, mode); err != nil {
		return err
	}
	s.mu.Lock()
	s.settings.ColorMode = mode
	s.mu.Unlock()
	return nil
}

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (scene_id, manual_pops, auto_pops, combos, shots, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sess.SceneID, sess.ManualPops, sess.AutoPops, sess.Combos, sess.Shots, sess.DurationMs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
// An empty sceneID matches every scene.
func (s *Store) RecentSessions(sceneID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.querySessions(
		`SELECT id, scene_id, manual_pops, auto_pops, combos, shots, duration_ms, created_at
		 FROM sessions
		 WHERE ? = '' OR scene_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		sceneID, sceneID, limit,
	)
}

// AllSessions retrieves every session, oldest first.
func (s *Store) AllSessions() ([]Session, error) {
	return s.querySessions(
		`SELECT id, scene_id, manual_pops, auto_pops, combos, shots, duration_ms, created_at
		 FROM sessions
		 ORDER BY id ASC`,
	)
}

func (s *Store) querySessions(query string, args ...any) ([]Session, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var createdAt any
		if err := rows.Scan(
			&sess.ID,
			&sess.SceneID,
			&sess.ManualPops,
			&sess.AutoPops,
			&sess.Combos,
			&sess.Shots,
			&sess.DurationMs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// ClearSessions deletes every recorded session.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
