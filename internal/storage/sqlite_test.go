package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestSaveRunAssignsID(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	id, err := store.SaveRun(RunRecord{Sim: "sand", Mode: "sequential", Seed: 7, Width: 4, Height: 4, Ticks: 10})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Fatalf("expected a UUID, got %q", id)
	}

	if _, err := store.SaveRun(RunRecord{ID: id, Sim: "sand", Mode: "sequential"}); err == nil {
		t.Fatal("expected duplicate id to be rejected")
	}
}

func TestRecentRunsNewestFirst(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for seed := int64(1); seed <= 3; seed++ {
		rec := RunRecord{
			Sim:      "sand",
			Scene:    "hourglass",
			Mode:     "synchronous",
			Seed:     seed,
			Width:    40,
			Height:   30,
			Ticks:    100,
			Sand:     12,
			Water:    3,
			Air:      1185,
			Duration: 1500 * time.Millisecond,
		}
		if _, err := store.SaveRun(rec); err != nil {
			t.Fatalf("SaveRun(%d) failed: %v", seed, err)
		}
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Seed != 3 || runs[1].Seed != 2 {
		t.Fatalf("expected seeds 3,2 got %d,%d", runs[0].Seed, runs[1].Seed)
	}
	got := runs[0]
	if got.Scene != "hourglass" || got.Mode != "synchronous" || got.Sand != 12 || got.Water != 3 || got.Air != 1185 {
		t.Fatalf("unexpected record %+v", got)
	}
	if got.Duration != 1500*time.Millisecond {
		t.Fatalf("expected duration 1.5s, got %v", got.Duration)
	}
}
