package storage

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-playroom/internal/config"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestStoreOpenClose(t *testing.T) {
	_, dbPath := openTemp(t)

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "play.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Dir(dbPath)); err != nil {
		t.Errorf("parent directory missing: %v", err)
	}
}

func TestSettingsDefaults(t *testing.T) {
	store, _ := openTemp(t)

	if got := store.Settings(); got != DefaultSettings() {
		t.Errorf("fresh settings = %+v, want %+v", got, DefaultSettings())
	}
	if !store.MusicOn() {
		t.Error("music should default on")
	}
	if store.ColorMode() != config.ModeDefault {
		t.Errorf("color mode = %q, want %q", store.ColorMode(), config.ModeDefault)
	}
}

func TestSettingsPersist(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetMusicOn(false); err != nil {
		t.Fatalf("SetMusicOn() failed: %v", err)
	}
	if err := store.SetColorMode(config.ModeNight); err != nil {
		t.Fatalf("SetColorMode() failed: %v", err)
	}
	// Overwrite to exercise the upsert.
	if err := store.SetColorMode(config.ModeHighContrast); err != nil {
		t.Fatalf("SetColorMode() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	want := Settings{MusicOn: false, ColorMode: config.ModeHighContrast}
	if got := reopened.Settings(); got != want {
		t.Errorf("reopened settings = %+v, want %+v", got, want)
	}
}

func TestSetColorModeRejectsUnknown(t *testing.T) {
	store, _ := openTemp(t)

	if err := store.SetColorMode("sepia"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if store.ColorMode() != config.ModeDefault {
		t.Errorf("mode changed to %q after rejected update", store.ColorMode())
	}
}

func TestSessionsRoundTrip(t *testing.T) {
	store, _ := openTemp(t)

	in := []Session{
		{SceneID: "bubbles", ManualPops: 10, AutoPops: 4, Combos: 1, Shots: 30, DurationMs: 60000},
		{SceneID: "bubbles", ManualPops: 2, AutoPops: 8, DurationMs: 30000},
		{SceneID: "other", ManualPops: 1, DurationMs: 1000},
	}
	for _, s := range in {
		if _, err := store.SaveSession(s); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	recent, err := store.RecentSessions("bubbles", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 bubbles sessions, got %d", len(recent))
	}
	// Newest first
	if recent[0].ManualPops != 2 || recent[1].ManualPops != 10 {
		t.Errorf("unexpected order: %+v", recent)
	}
	if recent[1].Shots != 30 || recent[1].Duration() != time.Minute {
		t.Errorf("fields not round-tripped: %+v", recent[1])
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	all, err := store.AllSessions()
	if err != nil {
		t.Fatalf("AllSessions() failed: %v", err)
	}
	if len(all) != 3 || all[0].SceneID != "bubbles" || all[2].SceneID != "other" {
		t.Errorf("AllSessions() = %+v", all)
	}

	limited, err := store.RecentSessions("", 1)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(limited) != 1 || limited[0].SceneID != "other" {
		t.Errorf("limit 1 returned %+v", limited)
	}

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	all, _ = store.AllSessions()
	if len(all) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(all))
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sessions := []Session{
		{SceneID: "bubbles", ManualPops: 6, AutoPops: 4, Combos: 1, Shots: 5, DurationMs: 60000, CreatedAt: now},
		{SceneID: "bubbles", ManualPops: 20, AutoPops: 10, Combos: 2, DurationMs: 60000, CreatedAt: now.Add(time.Hour)},
		{SceneID: "alpha", AutoPops: 3, DurationMs: 0},
	}

	got := Summarize(sessions)
	if len(got) != 2 {
		t.Fatalf("Expected 2 scenes, got %d", len(got))
	}
	if got[0].SceneID != "alpha" || got[1].SceneID != "bubbles" {
		t.Errorf("not sorted by scene: %s, %s", got[0].SceneID, got[1].SceneID)
	}

	b := got[1]
	if b.Sessions != 2 || b.TotalPops != 40 || b.Combos != 3 || b.Shots != 5 {
		t.Errorf("bubbles totals = %+v", b)
	}
	if b.MeanPops != 20 {
		t.Errorf("MeanPops = %v, want 20", b.MeanPops)
	}
	if math.Abs(b.StdDevPops-math.Sqrt(200)) > 1e-9 {
		t.Errorf("StdDevPops = %v, want %v", b.StdDevPops, math.Sqrt(200))
	}
	if b.MeanDuration != time.Minute || b.PopsPerMinute != 20 {
		t.Errorf("duration %v rate %v", b.MeanDuration, b.PopsPerMinute)
	}
	if !b.LastPlayed.Equal(now.Add(time.Hour)) {
		t.Errorf("LastPlayed = %v", b.LastPlayed)
	}

	a := got[0]
	if a.StdDevPops != 0 || a.PopsPerMinute != 0 {
		t.Errorf("single zero-length session: %+v", a)
	}
}

func TestWriteCSV(t *testing.T) {
	sessions := []Session{
		{ID: 1, SceneID: "bubbles", ManualPops: 3, DurationMs: 1500},
	}
	var buf bytes.Buffer
	if err := WriteSessionsCSV(&buf, sessions); err != nil {
		t.Fatalf("WriteSessionsCSV() failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header and one row, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "id,scene,manual_pops,auto_pops,combos,shots,duration_ms") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,bubbles,3,0,0,0,1500") {
		t.Errorf("row = %q", lines[1])
	}

	buf.Reset()
	if err := WriteStatsCSV(&buf, Summarize(sessions)); err != nil {
		t.Fatalf("WriteStatsCSV() failed: %v", err)
	}
	if strings.Contains(buf.String(), "MeanDuration") {
		t.Error("ignored field exported")
	}
	if !strings.HasPrefix(buf.String(), "scene,sessions,total_pops") {
		t.Errorf("stats header = %q", strings.SplitN(buf.String(), "\n", 2)[0])
	}
}
