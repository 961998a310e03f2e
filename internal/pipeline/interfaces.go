package pipeline

import (
	"context"
)

// Store is the relational store the pipeline loads into. The interface
// enables mocking the SQLite repository in tests.
type Store interface {
	// ReplaceCustomers atomically replaces the customers table contents.
	ReplaceCustomers(ctx context.Context, customers []Customer) error
	// ReplaceTransactions atomically replaces the transactions table contents.
	ReplaceTransactions(ctx context.Context, transactions []Transaction) error
	// TableCounts returns the loaded row counts used by verification.
	TableCounts(ctx context.Context) (Counts, error)
}

// RunRecorder keeps an audit record per pipeline run. MarkRunFailed is best
// effort: the stage error that aborted the run is the one worth surfacing,
// so recording failures never returns one of its own.
type RunRecorder interface {
	StartRun(ctx context.Context) (string, error)
	MarkRunSucceeded(ctx context.Context, runID string, loaded Counts) error
	MarkRunFailed(ctx context.Context, runID string, runErr error)
}
