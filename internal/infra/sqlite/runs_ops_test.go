package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dvloznov/retail-etl/internal/infra/sqlite"
	"github.com/dvloznov/retail-etl/internal/pipeline"
)

func TestRunLifecycleSucceeded(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	runID, err := store.StartRun(ctx)
	if err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if runID == "" {
		t.Fatal("StartRun returned empty id")
	}

	rec, err := store.GetRun(ctx, runID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if rec.Status != sqlite.RunStatusRunning {
		t.Errorf("status = %q, want %q", rec.Status, sqlite.RunStatusRunning)
	}
	if rec.FinishedAt.Valid {
		t.Error("finished_at should be NULL while running")
	}

	loaded := pipeline.Counts{Customers: 65, Transactions: 98}
	if err := store.MarkRunSucceeded(ctx, runID, loaded); err != nil {
		t.Fatalf("MarkRunSucceeded: %v", err)
	}

	rec, err = store.GetRun(ctx, runID)
	if err != nil {
		t.Fatalf("GetRun after success: %v", err)
	}
	if rec.Status != sqlite.RunStatusSuccess {
		t.Errorf("status = %q, want %q", rec.Status, sqlite.RunStatusSuccess)
	}
	if !rec.FinishedAt.Valid {
		t.Error("finished_at should be set after success")
	}
	if rec.CustomersLoaded.Int64 != 65 || rec.TransactionsLoaded.Int64 != 98 {
		t.Errorf("loaded counts = %v/%v, want 65/98", rec.CustomersLoaded.Int64, rec.TransactionsLoaded.Int64)
	}
}

func TestRunLifecycleFailed(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	runID, err := store.StartRun(ctx)
	if err != nil {
		t.Fatalf("StartRun: %v", err)
	}

	store.MarkRunFailed(ctx, runID, errors.New("input file missing"))

	rec, err := store.GetRun(ctx, runID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if rec.Status != sqlite.RunStatusFailed {
		t.Errorf("status = %q, want %q", rec.Status, sqlite.RunStatusFailed)
	}
	if rec.ErrorMessage.String != "input file missing" {
		t.Errorf("error_message = %q, want the failure reason", rec.ErrorMessage.String)
	}
}

func TestRunsAreDistinct(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first, err := store.StartRun(ctx)
	if err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	second, err := store.StartRun(ctx)
	if err != nil {
		t.Fatalf("second StartRun: %v", err)
	}
	if first == second {
		t.Error("expected distinct run ids")
	}
}
