package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directories are created on demand
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Mode: "asteroids", Score: 100, Wave: 2},
		{Mode: "asteroids", Score: 50, Wave: 1, Player: "alice"},
		{Mode: "asteroids", Score: 200, Wave: 3},
		{Mode: "asteroids_classic", Score: 500, Won: true},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	scores, err := store.TopScores("asteroids", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Wave != 3 {
		t.Errorf("Expected wave 3 for best run, got %d", scores[0].Wave)
	}
	if scores[0].Player != "local" {
		t.Errorf("Expected default player local, got %q", scores[0].Player)
	}
	if scores[2].Player != "alice" {
		t.Errorf("Expected player alice, got %q", scores[2].Player)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be parsed")
	}

	classic, err := store.TopScores("asteroids_classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classic) != 1 || !classic[0].Won {
		t.Errorf("Expected one won classic run, got %+v", classic)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveRun(Run{Mode: "asteroids", Score: i * 10}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	scores, err := store.TopScores("asteroids", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Expected highest score 190, got %d", scores[0].Score)
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores("asteroids", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected 10 scores, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("asteroids")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty mode, got %d", high)
	}

	for _, s := range []int{100, 500, 200} {
		store.SaveRun(Run{Mode: "asteroids", Score: s})
	}

	high, err = store.HighScore("asteroids")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 500 {
		t.Errorf("Expected high score 500, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Mode: "asteroids", Score: 100})
	store.SaveRun(Run{Mode: "asteroids_classic", Score: 300})

	if err := store.ClearScores("asteroids"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("asteroids", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	classic, _ := store.TopScores("asteroids_classic", 10)
	if len(classic) != 1 {
		t.Errorf("Expected other mode untouched, got %d", len(classic))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("asteroids")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(Run{Mode: "asteroids", Score: 100, Wave: 2})
	store.SaveRun(Run{Mode: "asteroids", Score: 300, Wave: 4, Won: true})

	stats, err := store.Stats("asteroids")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.Wins != 1 || stats.HighScore != 300 || stats.BestWave != 4 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %v", stats.AvgScore)
	}
}

func TestParseTime(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	if got := parseTime(ts); !got.Equal(ts) {
		t.Errorf("parseTime(time) = %v", got)
	}
	if got := parseTime("2024-05-01 12:30:00"); !got.Equal(ts) {
		t.Errorf("parseTime(string) = %v", got)
	}
	if got := parseTime(nil); !got.IsZero() {
		t.Errorf("parseTime(nil) = %v", got)
	}
}
