package storage

import (
	"testing"

	"github.com/google/uuid"
)

func TestStoreSaveRunAndLookup(t *testing.T) {
	store := openTestStore(t)
	runID := uuid.NewString()

	want := RunRecord{
		RunID:       runID,
		GameID:      "monsters",
		Outcome:     "won",
		Score:       15,
		Contacts:    3,
		ElapsedSecs: 95,
		Length:      20,
		Seed:        42,
	}
	if _, err := store.SaveRun(want); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.RunByID(runID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if got.Outcome != "won" || got.Score != 15 || got.Contacts != 3 || got.ElapsedSecs != 95 || got.Length != 20 || got.Seed != 42 {
		t.Errorf("RunByID() = %+v, expected fields of %+v", *got, want)
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil {
		t.Fatalf("RunByID() for unknown run failed: %v", err)
	}
	if missing != nil {
		t.Errorf("RunByID() for unknown run = %+v, expected nil", *missing)
	}
}

func TestStoreSaveRunDuplicateID(t *testing.T) {
	store := openTestStore(t)
	r := RunRecord{RunID: uuid.NewString(), GameID: "monsters", Outcome: "lost"}

	if _, err := store.SaveRun(r); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(r); err == nil {
		t.Error("Expected error saving the same run ID twice")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{RunID: uuid.NewString(), GameID: "monsters", Outcome: "lost", Score: i})
	}
	store.SaveRun(RunRecord{RunID: uuid.NewString(), GameID: "other", Outcome: "won"})

	runs, err := store.RecentRuns("monsters", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	// Same-second inserts fall back to insertion order, newest first.
	if runs[0].Score != 4 || runs[1].Score != 3 || runs[2].Score != 2 {
		t.Errorf("Runs not newest first: %v", runs)
	}
}

func TestStoreRunStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.RunStats("monsters")
	if err != nil {
		t.Fatalf("RunStats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("RunStats() on empty history = %+v", *empty)
	}

	store.SaveRun(RunRecord{RunID: uuid.NewString(), GameID: "monsters", Outcome: "won", Score: 15, Contacts: 2, ElapsedSecs: 100})
	store.SaveRun(RunRecord{RunID: uuid.NewString(), GameID: "monsters", Outcome: "lost", Score: 6, Contacts: 5, ElapsedSecs: 40})
	store.SaveRun(RunRecord{RunID: uuid.NewString(), GameID: "monsters", Outcome: "abandoned", Score: 1, ElapsedSecs: 10})

	stats, err := store.RunStats("monsters")
	if err != nil {
		t.Fatalf("RunStats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Wins != 1 || stats.Losses != 1 {
		t.Errorf("Runs/Wins/Losses = %d/%d/%d, expected 3/1/1", stats.Runs, stats.Wins, stats.Losses)
	}
	if stats.BestScore != 15 {
		t.Errorf("BestScore = %d, expected 15", stats.BestScore)
	}
	if stats.TotalContacts != 7 {
		t.Errorf("TotalContacts = %d, expected 7", stats.TotalContacts)
	}
	if stats.AvgElapsed != 50 {
		t.Errorf("AvgElapsed = %v, expected 50", stats.AvgElapsed)
	}
}
