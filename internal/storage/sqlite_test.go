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

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRound(RoundRecord{Difficulty: "easy", Score: score, Lives: 1, Processed: 10, Total: 10, Cleared: true}); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}
	if _, err := store.SaveRound(RoundRecord{Difficulty: "hard", Score: 500}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	scores, err := store.TopScores("easy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(scores))
	}

	// Should be sorted descending
	for i, want := range []int{200, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, want)
		}
	}
	if !scores[0].Cleared || scores[0].Total != 10 || scores[0].Difficulty != "easy" {
		t.Errorf("round fields not stored: %+v", scores[0])
	}
	if scores[0].ID == "" {
		t.Error("round ID not assigned")
	}

	hard, err := store.TopScores("hard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(hard) != 1 || hard[0].Cleared {
		t.Errorf("hard rounds = %+v", hard)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRound(RoundRecord{Difficulty: "easy", Score: (i + 1) * 10})
	}

	scores, err := store.TopScores("easy", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 rounds with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreRoundWithMistakes(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRound(RoundRecord{
		ID:         "round-1",
		Difficulty: "medium",
		Score:      30,
		Processed:  7,
		Total:      13,
		Mistakes: []MistakeRecord{
			{Label: "cup", Reason: "plastic", Count: 2},
			{Label: "fork", Count: 1},
		},
	})
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if id != "round-1" {
		t.Errorf("SaveRound() id = %q, want round-1", id)
	}

	r, err := store.RoundByID(id)
	if err != nil {
		t.Fatalf("RoundByID() failed: %v", err)
	}
	if r == nil {
		t.Fatal("round not found")
	}
	if r.Processed != 7 || r.Total != 13 || r.Lives != 0 {
		t.Errorf("round = %+v", r)
	}
	if len(r.Mistakes) != 2 || r.Mistakes[0] != (MistakeRecord{Label: "cup", Reason: "plastic", Count: 2}) {
		t.Errorf("mistakes = %+v", r.Mistakes)
	}

	missing, err := store.RoundByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RoundByID(nope) = %v, %v", missing, err)
	}
}

func TestStoreDuplicateIDRollsBack(t *testing.T) {
	store := openTestStore(t)

	rec := RoundRecord{ID: "same", Difficulty: "easy", Mistakes: []MistakeRecord{{Label: "cup", Count: 1}}}
	if _, err := store.SaveRound(rec); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if _, err := store.SaveRound(rec); err == nil {
		t.Fatal("SaveRound() accepted a duplicate ID")
	}

	totals, err := store.MistakeTotals(10)
	if err != nil {
		t.Fatalf("MistakeTotals() failed: %v", err)
	}
	if len(totals) != 1 || totals[0].Count != 1 {
		t.Errorf("failed save leaked mistakes: %+v", totals)
	}
}

func TestStoreMistakeTotals(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(RoundRecord{Difficulty: "easy", Mistakes: []MistakeRecord{
		{Label: "cup", Reason: "plastic", Count: 1},
		{Label: "battery", Reason: "e-waste", Count: 2},
	}})
	store.SaveRound(RoundRecord{Difficulty: "hard", Mistakes: []MistakeRecord{
		{Label: "cup", Reason: "plastic", Count: 3},
	}})

	totals, err := store.MistakeTotals(10)
	if err != nil {
		t.Fatalf("MistakeTotals() failed: %v", err)
	}

	want := []MistakeTotal{
		{Label: "cup", Reason: "plastic", Count: 4, Rounds: 2},
		{Label: "battery", Reason: "e-waste", Count: 2, Rounds: 1},
	}
	if len(totals) != len(want) {
		t.Fatalf("got %d totals, want %d", len(totals), len(want))
	}
	for i := range want {
		if totals[i] != want[i] {
			t.Errorf("totals[%d] = %+v, want %+v", i, totals[i], want[i])
		}
	}

	if top, _ := store.MistakeTotals(1); len(top) != 1 {
		t.Errorf("MistakeTotals(1) returned %d rows", len(top))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty difficulty, got %d", high)
	}

	store.SaveRound(RoundRecord{Difficulty: "easy", Score: 40})
	store.SaveRound(RoundRecord{Difficulty: "easy", Score: 90})
	store.SaveRound(RoundRecord{Difficulty: "easy", Score: 60})

	high, err = store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 90 {
		t.Errorf("Expected high score 90, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(RoundRecord{Difficulty: "easy", Score: 10, Mistakes: []MistakeRecord{{Label: "cup", Count: 1}}})
	store.SaveRound(RoundRecord{Difficulty: "hard", Score: 20, Mistakes: []MistakeRecord{{Label: "fork", Count: 1}}})

	if err := store.ClearScores("easy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	easy, _ := store.TopScores("easy", 10)
	if len(easy) != 0 {
		t.Errorf("Expected 0 easy rounds after clear, got %d", len(easy))
	}
	hard, _ := store.TopScores("hard", 10)
	if len(hard) != 1 {
		t.Errorf("Expected hard rounds untouched, got %d", len(hard))
	}

	totals, _ := store.MistakeTotals(10)
	if len(totals) != 1 || totals[0].Label != "fork" {
		t.Errorf("mistakes after clear = %+v", totals)
	}
}

func TestStoreRecentRounds(t *testing.T) {
	store := openTestStore(t)

	for _, d := range []string{"easy", "medium", "hard"} {
		store.SaveRound(RoundRecord{Difficulty: d})
	}

	recent, err := store.RecentRounds(2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Difficulty != "hard" || recent[1].Difficulty != "medium" {
		t.Errorf("recent = %+v", recent)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(RoundRecord{Difficulty: "easy", Score: 40, Cleared: true})
	store.SaveRound(RoundRecord{Difficulty: "easy", Score: 20})
	store.SaveRound(RoundRecord{Difficulty: "hard", Score: 70, Cleared: true})

	stats, err := store.GetStats("easy")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.RoundsCount != 2 || stats.Cleared != 1 || stats.HighScore != 40 || stats.AvgScore != 30 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	empty, err := store.GetStats("medium")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if empty.RoundsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.GetAllStats()
	if err != nil {
		t.Fatalf("GetAllStats() failed: %v", err)
	}
	if len(all) != 2 || all["hard"].HighScore != 70 {
		t.Errorf("all stats = %+v", all)
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
