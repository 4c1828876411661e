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

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.RecordCompletion(Completion{Pack: "core", LevelID: "level1", Turns: 12}); err != nil {
		t.Fatalf("RecordCompletion() failed: %v", err)
	}
	store.Close()

	// Migrations must be idempotent on an existing database.
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	done, err := store.IsCompleted("core", "level1")
	if err != nil {
		t.Fatalf("IsCompleted() failed: %v", err)
	}
	if !done {
		t.Error("completion lost after reopening")
	}
}

func TestStoreCompletions(t *testing.T) {
	store := openTestStore(t)

	records := []Completion{
		{Pack: "core", LevelID: "level1", Name: "Level 1", Author: "alex", Turns: 30},
		{Pack: "core", LevelID: "level1", Name: "Level 1", Author: "alex", Turns: 18},
		{Pack: "core", LevelID: "level2", Name: "Level 2", Author: "alex", Turns: 40},
		{Pack: "dir:mine", LevelID: "custom", Name: "Custom", Turns: 5},
	}
	for _, c := range records {
		if _, err := store.RecordCompletion(c); err != nil {
			t.Fatalf("RecordCompletion() failed: %v", err)
		}
	}

	core, err := store.Completions("core", 10)
	if err != nil {
		t.Fatalf("Completions() failed: %v", err)
	}
	if len(core) != 3 {
		t.Fatalf("Expected 3 core completions, got %d", len(core))
	}
	// Newest first
	if core[0].LevelID != "level2" {
		t.Errorf("Expected newest completion first, got %s", core[0].LevelID)
	}
	if core[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}

	all, err := store.Completions("", 10)
	if err != nil {
		t.Fatalf("Completions() failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Expected 4 completions across packs, got %d", len(all))
	}

	limited, _ := store.Completions("core", 2)
	if len(limited) != 2 {
		t.Errorf("Expected 2 completions with limit, got %d", len(limited))
	}
}

func TestStoreCompletedSet(t *testing.T) {
	store := openTestStore(t)

	store.RecordCompletion(Completion{Pack: "core", LevelID: "level1"})
	store.RecordCompletion(Completion{Pack: "core", LevelID: "level1"})
	store.RecordCompletion(Completion{Pack: "core", LevelID: "level3"})
	store.RecordCompletion(Completion{Pack: "other", LevelID: "level2"})

	set, err := store.CompletedSet("core")
	if err != nil {
		t.Fatalf("CompletedSet() failed: %v", err)
	}
	if len(set) != 2 || !set["level1"] || !set["level3"] {
		t.Errorf("CompletedSet = %v", set)
	}

	done, _ := store.IsCompleted("core", "level2")
	if done {
		t.Error("level2 of core was never completed")
	}
}

func TestStoreBestTurns(t *testing.T) {
	store := openTestStore(t)

	// Never won
	best, err := store.BestTurns("core", "level1")
	if err != nil {
		t.Fatalf("BestTurns() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for an unplayed level, got %d", best)
	}

	store.RecordCompletion(Completion{Pack: "core", LevelID: "level1", Turns: 30})
	store.RecordCompletion(Completion{Pack: "core", LevelID: "level1", Turns: 12})
	store.RecordCompletion(Completion{Pack: "core", LevelID: "level1", Turns: 25})

	best, err = store.BestTurns("core", "level1")
	if err != nil {
		t.Fatalf("BestTurns() failed: %v", err)
	}
	if best != 12 {
		t.Errorf("Expected best of 12 turns, got %d", best)
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetLevelStats("core", "level1")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if empty.Attempts != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.RecordAttempt("core", "level1", OutcomeLostDeath, 4)
	store.RecordAttempt("core", "level1", OutcomeWon, 20)
	store.RecordAttempt("core", "level1", OutcomeQuit, 2)
	store.RecordAttempt("core", "level1", OutcomeWon, 15)
	store.RecordAttempt("core", "level2", OutcomeWon, 1)

	stats, err := store.GetLevelStats("core", "level1")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.Attempts != 4 || stats.Wins != 2 || stats.BestTurns != 15 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not parsed")
	}
}

func TestStoreClearProgress(t *testing.T) {
	store := openTestStore(t)

	store.RecordCompletion(Completion{Pack: "core", LevelID: "level1"})
	store.RecordAttempt("core", "level1", OutcomeWon, 3)
	store.RecordCompletion(Completion{Pack: "other", LevelID: "x"})

	if err := store.ClearProgress("core"); err != nil {
		t.Fatalf("ClearProgress() failed: %v", err)
	}

	core, _ := store.Completions("core", 10)
	if len(core) != 0 {
		t.Errorf("Expected 0 core completions after clear, got %d", len(core))
	}
	stats, _ := store.GetLevelStats("core", "level1")
	if stats.Attempts != 0 {
		t.Errorf("Expected attempts to be cleared, got %d", stats.Attempts)
	}

	// Other packs should still have progress
	other, _ := store.Completions("other", 10)
	if len(other) != 1 {
		t.Errorf("Other packs should not be affected by clearing core")
	}
}

func TestStoreNestedPath(t *testing.T) {
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
