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

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("classic", 1200, 128); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 1200 {
		t.Errorf("HighScore() after reopen = %d, want 1200", high)
	}
}

func TestStoreScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("classic", score, 64); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("level-1", 500, 128); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	for i, want := range []int{200, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, want)
		}
	}
	if scores[0].MaxTile != 64 || scores[0].Board != "classic" {
		t.Errorf("scores[0] = %+v, want board classic with max tile 64", scores[0])
	}

	limited, err := store.TopScores("classic", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("TopScores(limit 2) returned %d rows", len(limited))
	}

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() after clear = %d, want 0", high)
	}

	other, err := store.HighScore("level-1")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if other != 500 {
		t.Errorf("HighScore(level-1) = %d, want 500", other)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	run := Run{
		Strategy:      "expectimax",
		Level:         "hard",
		Seed:          42,
		Target:        2048,
		Score:         20312,
		MaxTile:       2048,
		Moves:         1034,
		Won:           true,
		FallbackMoves: 3,
		LevelChanges:  1,
		Duration:      1500 * time.Millisecond,
	}

	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveRun() should assign an ID")
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}

	run.ID = id
	run.CreatedAt = got.CreatedAt
	if *got != run {
		t.Errorf("RunByID() = %+v, want %+v", *got, run)
	}

	missing, err := store.RunByID("no-such-run")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("RunByID(missing) = %+v, want nil", missing)
	}
}

func TestStoreTopRunsAndStats(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Strategy: "expectimax", Level: "hard", Score: 3000, MaxTile: 256, Moves: 300, Won: true},
		{Strategy: "expectimax", Level: "hard", Score: 1000, MaxTile: 128, Moves: 100},
		{Strategy: "expectimax", Level: "easy", Score: 500, MaxTile: 64, Moves: 80},
		{Strategy: "random", Level: "medium", Score: 800, MaxTile: 64, Moves: 120},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	all, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 4 || all[0].Score != 3000 || all[1].Score != 1000 {
		t.Errorf("TopRuns(all) = %+v, want 4 runs ordered by score", all)
	}

	random, err := store.TopRuns("random", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(random) != 1 || random[0].Strategy != "random" {
		t.Errorf("TopRuns(random) = %+v, want the single random run", random)
	}

	best, err := store.BestRunScore("expectimax")
	if err != nil {
		t.Fatalf("BestRunScore() failed: %v", err)
	}
	if best != 3000 {
		t.Errorf("BestRunScore(expectimax) = %d, want 3000", best)
	}
	none, err := store.BestRunScore("greedy")
	if err != nil {
		t.Fatalf("BestRunScore() failed: %v", err)
	}
	if none != 0 {
		t.Errorf("BestRunScore(greedy) = %d, want 0", none)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("Stats() returned %d groups, want 3", len(stats))
	}

	// Ordered by strategy, then level: expectimax/easy, expectimax/hard, random/medium.
	hard := stats[1]
	if hard.Strategy != "expectimax" || hard.Level != "hard" {
		t.Fatalf("stats[1] = %s/%s, want expectimax/hard", hard.Strategy, hard.Level)
	}
	if hard.Games != 2 || hard.Wins != 1 || hard.BestScore != 3000 || hard.BestTile != 256 {
		t.Errorf("expectimax/hard stats = %+v", hard)
	}
	if hard.AvgScore != 2000 || hard.AvgMoves != 200 {
		t.Errorf("expectimax/hard averages = %v score, %v moves, want 2000 and 200", hard.AvgScore, hard.AvgMoves)
	}
	if hard.WinRate() != 0.5 {
		t.Errorf("WinRate() = %v, want 0.5", hard.WinRate())
	}
}
