// Package pipeline implements the batch ETL run: extract raw records from
// the delimited input files, transform them into the clean set, load the
// clean set into the relational store with replace semantics, and verify the
// loaded row counts.
package pipeline

import (
	"context"
	"fmt"

	"github.com/dvloznov/retail-etl/internal/extract"
	"github.com/dvloznov/retail-etl/internal/logger"
)

// Report aggregates the quality counters and verification outcome of one run.
type Report struct {
	RunID string

	// Malformed input lines skipped during extraction.
	CustomersSkipped    int
	TransactionsSkipped int

	Customers    CustomerReport
	Transactions TransactionReport
	Verification Verification
}

// Run executes one full extract → transform → load → verify pass against the
// given store. Row-level defects are counted in the report and never abort
// the run; any stage-level error marks the run failed and aborts.
//
// A verification mismatch is not a stage error: the report carries the FAIL
// and the run record is marked failed, but Run returns the report so the
// caller can inspect the checks.
func Run(ctx context.Context, store Store, runs RunRecorder, customersPath, transactionsPath string) (*Report, error) {
	log := logger.FromContext(ctx)

	runID, err := runs.StartRun(ctx)
	if err != nil {
		return nil, fmt.Errorf("pipeline: start run: %w", err)
	}
	report := &Report{RunID: runID}

	// 1. Extract raw records, tolerating malformed lines.
	rawCustomers, skipped, err := extract.CustomersFile(customersPath)
	if err != nil {
		runs.MarkRunFailed(ctx, runID, err)
		return nil, fmt.Errorf("pipeline: extract customers: %w", err)
	}
	report.CustomersSkipped = skipped

	rawTransactions, skipped, err := extract.TransactionsFile(transactionsPath)
	if err != nil {
		runs.MarkRunFailed(ctx, runID, err)
		return nil, fmt.Errorf("pipeline: extract transactions: %w", err)
	}
	report.TransactionsSkipped = skipped

	log.Info().
		Int("customers", len(rawCustomers)).
		Int("transactions", len(rawTransactions)).
		Int("skipped_lines", report.CustomersSkipped+report.TransactionsSkipped).
		Msg("extracted raw records")

	// 2. Transform into the clean set.
	customers, customerReport := TransformCustomers(rawCustomers)
	report.Customers = customerReport

	categories := NewCategoryValidator(DefaultCategories)
	transactions, transactionReport := TransformTransactions(rawTransactions, categories, customers)
	report.Transactions = transactionReport

	log.Info().
		Int("customers", customerReport.Clean).
		Int("customers_rejected", customerReport.Rejected()).
		Int("transactions", transactionReport.Clean).
		Int("transactions_rejected", transactionReport.Rejected()).
		Msg("transformed clean set")

	// 3. Load with replace semantics. Customers first; transactions
	// reference them.
	if err := store.ReplaceCustomers(ctx, customers); err != nil {
		runs.MarkRunFailed(ctx, runID, err)
		return nil, fmt.Errorf("pipeline: load customers: %w", err)
	}
	if err := store.ReplaceTransactions(ctx, transactions); err != nil {
		runs.MarkRunFailed(ctx, runID, err)
		return nil, fmt.Errorf("pipeline: load transactions: %w", err)
	}

	// 4. Verify loaded counts against the clean set.
	loaded, err := store.TableCounts(ctx)
	if err != nil {
		runs.MarkRunFailed(ctx, runID, err)
		return nil, fmt.Errorf("pipeline: count loaded rows: %w", err)
	}
	transformed := Counts{Customers: len(customers), Transactions: len(transactions)}
	report.Verification = VerifyCounts(transformed, loaded)

	for _, check := range report.Verification.Checks() {
		log.Info().
			Str("dataset", check.Dataset).
			Int("transformed", check.Transformed).
			Int("loaded", check.Loaded).
			Str("status", check.Status()).
			Msg("verification check")
	}

	if !report.Verification.OK() {
		runs.MarkRunFailed(ctx, runID, fmt.Errorf("row count verification failed"))
		return report, nil
	}

	if err := runs.MarkRunSucceeded(ctx, runID, loaded); err != nil {
		return nil, fmt.Errorf("pipeline: finish run: %w", err)
	}
	return report, nil
}
