package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "wordsnake", Score: 100, Words: 10, BestStreak: 4, Level: 3},
		{GameID: "wordsnake", Score: 50, Words: 4, BestStreak: 2, Level: 1},
		{GameID: "wordsnake", Score: 200, Words: 21, BestStreak: 9, Level: 5},
		{GameID: "wordsnake_missions", Score: 500, Words: 30, BestStreak: 12, Level: 7},
	}
	runIDs := make(map[string]bool)
	for _, r := range runs {
		_, runID, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if runID == "" || runIDs[runID] {
			t.Fatalf("expected fresh run ID, got %q", runID)
		}
		runIDs[runID] = true
	}

	scores, err := store.TopScores("wordsnake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	top := scores[0]
	if top.Words != 21 || top.BestStreak != 9 || top.Level != 5 || !runIDs[top.RunID] {
		t.Errorf("run details not stored: %+v", top)
	}

	missions, err := store.TopScores("wordsnake_missions", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(missions) != 1 {
		t.Errorf("Expected 1 missions score, got %d", len(missions))
	}
}

func TestStoreExplicitRunID(t *testing.T) {
	store := openTestStore(t)

	_, id, err := store.SaveRun(Run{RunID: "fixed", GameID: "wordsnake", Score: 1})
	if err != nil || id != "fixed" {
		t.Fatalf("SaveRun() = %q, %v", id, err)
	}
	if _, _, err := store.SaveRun(Run{RunID: "fixed", GameID: "wordsnake", Score: 2}); err == nil {
		t.Error("duplicate run ID should be rejected")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{GameID: "test", Score: (i + 1) * 100})
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("wordsnake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(Run{GameID: "wordsnake", Score: 100})
	store.SaveRun(Run{GameID: "wordsnake", Score: 300})
	store.SaveRun(Run{GameID: "wordsnake", Score: 200})

	high, err = store.HighScore("wordsnake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "wordsnake", Score: 100})
	store.SaveRun(Run{GameID: "wordsnake", Score: 200})
	store.SaveRun(Run{GameID: "wordsnake_missions", Score: 300})

	if err := store.ClearScores("wordsnake"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("wordsnake", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classic))
	}

	missions, _ := store.TopScores("wordsnake_missions", 10)
	if len(missions) != 1 {
		t.Errorf("Missions scores should not be affected by clearing classic")
	}
}

func TestStoreBestKey(t *testing.T) {
	store := openTestStore(t)

	v, err := store.Best("snake_high_score")
	if err != nil || v != 0 {
		t.Fatalf("unset key: got %d, %v", v, err)
	}

	if err := store.SetBest("snake_high_score", 42); err != nil {
		t.Fatalf("SetBest() failed: %v", err)
	}
	if err := store.SetBest("snake_high_score", 57); err != nil {
		t.Fatalf("SetBest() overwrite failed: %v", err)
	}

	v, err = store.Best("snake_high_score")
	if err != nil || v != 57 {
		t.Errorf("Best() = %d, %v; want 57", v, err)
	}
}

func TestStoreBestPersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetBest("snake_high_score", 99); err != nil {
		t.Fatalf("SetBest() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if v, _ := store.Best("snake_high_score"); v != 99 {
		t.Errorf("Best() after reopen = %d, want 99", v)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("wordsnake")
	if err != nil {
		t.Fatalf("GetGameStats() on empty table failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty game: %+v", empty)
	}

	store.SaveRun(Run{GameID: "wordsnake", Score: 10, Words: 2, BestStreak: 2, Level: 1})
	store.SaveRun(Run{GameID: "wordsnake", Score: 30, Words: 6, BestStreak: 5, Level: 2})

	stats, err := store.GetGameStats("wordsnake")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.TotalWords != 8 || stats.BestStreak != 5 || stats.MaxLevel != 2 {
		t.Errorf("unexpected word stats: %+v", stats)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestMemoryBest(t *testing.T) {
	m := NewMemoryBest()
	if v, _ := m.Best("k"); v != 0 {
		t.Errorf("unset key = %d", v)
	}
	m.SetBest("k", 7)
	if v, _ := m.Best("k"); v != 7 {
		t.Errorf("Best(k) = %d, want 7", v)
	}
}
