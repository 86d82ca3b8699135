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

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("wingshot", score); err != nil {
			t.Fatalf("SaveScore(%d) failed: %v", score, err)
		}
	}

	scores, err := store.TopScores("wingshot", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("scores not sorted descending: %v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveScore("wingshot", (i+1)*100); err != nil {
			t.Fatal(err)
		}
	}

	scores, err := store.TopScores("wingshot", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[2].Score != 300 {
		t.Errorf("unexpected top scores: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No prior history reads as zero, not an error
	hs, err := store.HighScore("wingshot")
	if err != nil {
		t.Fatalf("HighScore() on empty store failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("empty store HighScore = %d, expected 0", hs)
	}

	store.SaveScore("wingshot", 7)
	store.SaveScore("wingshot", 42)
	store.SaveScore("wingshot", 13)

	hs, err = store.HighScore("wingshot")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 42 {
		t.Errorf("HighScore = %d, expected 42", hs)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.GameStats("wingshot")
	if err != nil {
		t.Fatalf("GameStats() on empty store failed: %v", err)
	}
	if st.GamesCount != 0 || st.HighScore != 0 {
		t.Errorf("empty stats = %+v", st)
	}

	store.SaveScore("wingshot", 10)
	store.SaveScore("wingshot", 30)

	st, err = store.GameStats("wingshot")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if st.GamesCount != 2 || st.HighScore != 30 || st.AvgScore != 20 {
		t.Errorf("stats = %+v, expected 2 games, high 30, avg 20", st)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set after recording scores")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("wingshot", 99)
	if err := store.ClearScores("wingshot"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores("wingshot", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 0 {
		t.Errorf("expected no scores after clear, got %d", len(scores))
	}
}
