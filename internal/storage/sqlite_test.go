package storage

import (
	"os"
	"path/filepath"
	"slices"
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

func save(t *testing.T, store *Store, gameID string, words ...string) {
	t.Helper()
	_, err := store.SaveResult(Result{GameID: gameID, Score: len(words), Words: words, Board: "A B/C D"})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
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

	save(t, store, "boggle", "CAT", "TEA")
	save(t, store, "boggle", "DOG")
	save(t, store, "boggle", "ONE", "TWO", "TEN")
	save(t, store, "bigboggle", "STONE")

	results, err := store.TopResults("boggle", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Should be sorted descending
	if results[0].Score != 3 || results[1].Score != 2 || results[2].Score != 1 {
		t.Errorf("Results not in expected order: %+v", results)
	}
	if !slices.Equal(results[0].Words, []string{"ONE", "TWO", "TEN"}) {
		t.Errorf("Words not preserved in order: %v", results[0].Words)
	}
	if results[0].Board != "A B/C D" {
		t.Errorf("Board = %q", results[0].Board)
	}
	if results[0].GameID != "boggle" || results[0].ID == 0 {
		t.Errorf("Unexpected result row: %+v", results[0])
	}

	big, err := store.TopResults("bigboggle", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(big) != 1 {
		t.Errorf("Expected 1 bigboggle result, got %d", len(big))
	}
}

func TestStoreSaveRequiresGameID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(Result{Score: 1}); err == nil {
		t.Error("SaveResult() without game id should fail")
	}
}

func TestStoreEmptyWords(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "boggle")

	results, err := store.TopResults("boggle", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 1 || len(results[0].Words) != 0 {
		t.Errorf("Expected one result with no words, got %+v", results)
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	words := []string{"A", "B", "C", "D", "E"}
	for i := range words {
		save(t, store, "test", words[:i+1]...)
	}

	// Request only top 3
	results, err := store.TopResults("test", 3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(results))
	}

	if results[0].Score != 5 || results[1].Score != 4 || results[2].Score != 3 {
		t.Errorf("Results not in expected order: %+v", results)
	}

	// Non-positive limit falls back to 10
	results, err = store.TopResults("test", 0)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 5 {
		t.Errorf("Expected 5 results with default limit, got %d", len(results))
	}
}

func TestStoreTiesKeepOrder(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "boggle", "FIRST")
	save(t, store, "boggle", "SECOND")

	results, err := store.TopResults("boggle", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if results[0].Words[0] != "FIRST" {
		t.Errorf("Expected older result first on ties, got %v", results[0].Words)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No results yet
	high, err := store.HighScore("boggle")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "boggle", "CAT")
	save(t, store, "boggle", "CAT", "TEA", "EAT")
	save(t, store, "boggle", "CAT", "TEA")

	high, err = store.HighScore("boggle")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 3 {
		t.Errorf("Expected high score of 3, got %d", high)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "boggle", "CAT")
	save(t, store, "boggle", "TEA")
	save(t, store, "bigboggle", "STONE")

	// Clear only classic results
	if err := store.ClearResults("boggle"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	classic, _ := store.TopResults("boggle", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 boggle results after clear, got %d", len(classic))
	}

	big, _ := store.TopResults("bigboggle", 10)
	if len(big) != 1 {
		t.Errorf("bigboggle results should not be affected by clearing boggle")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("boggle")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	save(t, store, "boggle", "CAT")
	save(t, store, "boggle", "CAT", "TEA", "EAT")

	stats, err = store.GetGameStats("boggle")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 3 || stats.TotalWords != 4 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 2 {
		t.Errorf("Expected average 2, got %v", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
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
