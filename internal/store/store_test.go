package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/mvolden/perk/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "perk.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return st
}

func insertRunAt(t *testing.T, st *Store, label string, endedAt time.Time, earned float64) {
	t.Helper()
	_, err := st.InsertRun(context.Background(), model.RunStats{
		Label:         label,
		StartedAt:     endedAt.Add(-time.Minute),
		EndedAt:       endedAt,
		DurationMs:    60000,
		Taps:          10,
		Ticks:         60,
		Purchases:     1,
		Earned:        earned,
		Spent:         20,
		EndCurrency:   earned - 20,
		EndPerTap:     2,
		EndPerSecond:  0.5,
		EndMultiplier: 1,
	})
	if err != nil {
		t.Fatalf("failed to insert run: %v", err)
	}
}

func TestInsertAndListRuns(t *testing.T) {
	st := openTestStore(t)
	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	insertRunAt(t, st, "first", base, 100)
	insertRunAt(t, st, "second", base.Add(time.Hour), 250)

	runs, err := st.ListRuns(context.Background(), model.StatsConfig{})
	if err != nil {
		t.Fatalf("failed to list runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Label != "first" || runs[1].Label != "second" {
		t.Fatalf("expected oldest-first order, got %v then %v", runs[0].Label, runs[1].Label)
	}
	if runs[1].Earned != 250 || runs[1].Taps != 10 || runs[1].Purchases != 1 {
		t.Fatalf("unexpected aggregate: %+v", runs[1])
	}
}

func TestListRunsSinceFilter(t *testing.T) {
	st := openTestStore(t)
	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	insertRunAt(t, st, "old", base, 100)
	insertRunAt(t, st, "new", base.Add(48*time.Hour), 200)

	since := base.Add(24 * time.Hour)
	runs, err := st.ListRuns(context.Background(), model.StatsConfig{Since: &since})
	if err != nil {
		t.Fatalf("failed to list runs: %v", err)
	}
	if len(runs) != 1 || runs[0].Label != "new" {
		t.Fatalf("expected only the new run, got %+v", runs)
	}
}

func TestListRunsLastLimit(t *testing.T) {
	st := openTestStore(t)
	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		insertRunAt(t, st, "run", base.Add(time.Duration(i)*time.Hour), float64(100*(i+1)))
	}
	runs, err := st.ListRuns(context.Background(), model.StatsConfig{Last: 2})
	if err != nil {
		t.Fatalf("failed to list runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[1].Earned != 500 {
		t.Fatalf("expected most recent run last, got %+v", runs[1])
	}
}
