package pipeline_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dvloznov/retail-etl/internal/infra/sqlite"
	"github.com/dvloznov/retail-etl/internal/pipeline"
)

// TestPipelineEndToEnd runs the full pipeline against a real SQLite database
// and then refreshes the revenue aggregation, covering the hand-off between
// the etl and revenue stages.
func TestPipelineEndToEnd(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := sqlite.Open(filepath.Join(dir, "retail.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	customersPath := writeFixture(t, dir, "customers.csv", customersCSV)
	transactionsPath := writeFixture(t, dir, "transactions.csv", transactionsCSV)

	report, err := pipeline.Run(ctx, store, store, customersPath, transactionsPath)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !report.Verification.OK() {
		t.Fatalf("verification = %s, want PASS", report.Verification.Status())
	}

	// Re-running the loader on the same input must not duplicate rows.
	report2, err := pipeline.Run(ctx, store, store, customersPath, transactionsPath)
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	if !report2.Verification.OK() {
		t.Fatalf("second verification = %s, want PASS", report2.Verification.Status())
	}
	counts, err := store.TableCounts(ctx)
	if err != nil {
		t.Fatalf("TableCounts failed: %v", err)
	}
	if counts.Customers != 2 || counts.Transactions != 2 {
		t.Errorf("counts after re-run = %+v, want 2 customers and 2 transactions", counts)
	}

	// Aggregate: c1 has 10.00 + 5.00, c2 has no transactions.
	rows, err := store.RefreshCustomerRevenue(ctx)
	if err != nil {
		t.Fatalf("RefreshCustomerRevenue failed: %v", err)
	}
	if rows != 2 {
		t.Errorf("refreshed %d revenue rows, want 2", rows)
	}

	revenue, err := store.ListCustomerRevenue(ctx)
	if err != nil {
		t.Fatalf("ListCustomerRevenue failed: %v", err)
	}
	if len(revenue) != 2 {
		t.Fatalf("got %d revenue rows, want 2", len(revenue))
	}
	if revenue[0].CustomerID != "c1" || revenue[0].Total != 15.0 {
		t.Errorf("top revenue row = %+v, want c1 with 15.0", revenue[0])
	}
	if revenue[1].CustomerID != "c2" || revenue[1].Total != 0.0 {
		t.Errorf("second revenue row = %+v, want c2 with 0.0", revenue[1])
	}

	// The run record is closed out with the loaded counts.
	rec, err := store.GetRun(ctx, report2.RunID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if rec.Status != sqlite.RunStatusSuccess {
		t.Errorf("run status = %q, want %q", rec.Status, sqlite.RunStatusSuccess)
	}
	if !rec.CustomersLoaded.Valid || rec.CustomersLoaded.Int64 != 2 {
		t.Errorf("customers_loaded = %+v, want 2", rec.CustomersLoaded)
	}
}
