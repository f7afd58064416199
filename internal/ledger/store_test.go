package ledger_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"boxdstats/internal/ledger"
)

func openStore(t *testing.T) *ledger.Store {
	t.Helper()
	store, err := ledger.Open(filepath.Join(t.TempDir(), "state", "ledger.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRunLifecycle(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	run, err := store.BeginRun(ctx, "run-1", 3)
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	if run.Status != ledger.RunRunning {
		t.Fatalf("unexpected status %q", run.Status)
	}

	lookups := []ledger.Lookup{
		{RunID: "run-1", Position: 0, Title: "Heat", Year: 1995, Status: "resolved", TMDBID: 949},
		{RunID: "run-1", Position: 1, Title: "Film X", Year: 2020, Status: "not_found", ErrorMessage: "no search results"},
		{RunID: "run-1", Position: 2, Title: "Lost", Status: "detail_failed", TMDBID: 404, ErrorMessage: "404"},
	}
	for _, l := range lookups {
		if err := store.RecordLookup(ctx, l); err != nil {
			t.Fatalf("RecordLookup: %v", err)
		}
	}
	if err := store.FinishRun(ctx, "run-1", 1, nil); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}

	got, err := store.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.Status != ledger.RunCompleted || got.ResolvedCount != 1 || got.Dropped() != 2 {
		t.Fatalf("unexpected run: %#v", got)
	}
	if got.FinishedAt.IsZero() || got.StartedAt.IsZero() {
		t.Fatalf("expected timestamps, got %#v", got)
	}

	all, err := store.Lookups(ctx, "run-1", false)
	if err != nil {
		t.Fatalf("Lookups: %v", err)
	}
	if len(all) != 3 || all[0].Title != "Heat" || !all[0].Resolved() || all[1].TMDBID != 0 {
		t.Fatalf("unexpected lookups: %#v", all)
	}

	dropped, err := store.Lookups(ctx, "run-1", true)
	if err != nil {
		t.Fatalf("Lookups dropped: %v", err)
	}
	if len(dropped) != 2 || dropped[0].Title != "Film X" || dropped[1].ErrorMessage != "404" {
		t.Fatalf("unexpected dropped lookups: %#v", dropped)
	}
}

func TestFinishRunRecordsFailure(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	if _, err := store.BeginRun(ctx, "abc", 5); err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	if err := store.FinishRun(ctx, "abc", 2, context.Canceled); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}
	run, err := store.GetRun(ctx, "abc")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if run.Status != ledger.RunFailed || run.ErrorMessage != context.Canceled.Error() {
		t.Fatalf("unexpected run: %#v", run)
	}
	if err := store.FinishRun(ctx, "missing", 0, nil); !errors.Is(err, ledger.ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound, got %v", err)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	for _, id := range []string{"first", "second", "third"} {
		if _, err := store.BeginRun(ctx, id, 1); err != nil {
			t.Fatalf("BeginRun %s: %v", id, err)
		}
	}
	runs, err := store.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "third" || runs[1].ID != "second" {
		t.Fatalf("unexpected runs: %#v", runs)
	}
	all, err := store.ListRuns(ctx, 0)
	if err != nil || len(all) != 3 {
		t.Fatalf("expected 3 runs, got %d err=%v", len(all), err)
	}
}

func TestGetRunByPrefix(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	for _, id := range []string{"aa11", "aa22", "bb33"} {
		if _, err := store.BeginRun(ctx, id, 0); err != nil {
			t.Fatalf("BeginRun: %v", err)
		}
	}
	run, err := store.GetRun(ctx, "bb")
	if err != nil || run.ID != "bb33" {
		t.Fatalf("expected prefix match, got %v err=%v", run, err)
	}
	if _, err := store.GetRun(ctx, "aa"); err == nil {
		t.Fatal("expected ambiguous prefix error")
	}
	if _, err := store.GetRun(ctx, "zz"); !errors.Is(err, ledger.ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound, got %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.db")
	store, err := ledger.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := store.BeginRun(ctx, "persisted", 1); err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	_ = store.Close()

	reopened, err := ledger.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if _, err := reopened.GetRun(ctx, "persisted"); err != nil {
		t.Fatalf("GetRun after reopen: %v", err)
	}
}

func TestOpenRejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	store, err := ledger.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.SetSchemaVersionForTest(context.Background(), 99); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	_ = store.Close()

	if _, err := ledger.Open(path); !errors.Is(err, ledger.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}
