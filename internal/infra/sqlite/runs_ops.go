package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dvloznov/retail-etl/internal/pipeline"
	"github.com/google/uuid"
)

// Run lifecycle statuses.
const (
	RunStatusRunning = "RUNNING"
	RunStatusSuccess = "SUCCESS"
	RunStatusFailed  = "FAILED"
)

// RunRecord mirrors one etl_runs row.
type RunRecord struct {
	RunID              string
	StartedAt          time.Time
	FinishedAt         sql.NullTime
	Status             string
	CustomersLoaded    sql.NullInt64
	TransactionsLoaded sql.NullInt64
	ErrorMessage       sql.NullString
}

// StartRun records a new pipeline run in RUNNING state and returns its id.
func (s *Store) StartRun(ctx context.Context) (string, error) {
	runID := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO etl_runs (run_id, started_at, status)
		VALUES (?, ?, ?)`,
		runID, time.Now().UTC(), RunStatusRunning)
	if err != nil {
		return "", fmt.Errorf("sqlite: start run: %w", err)
	}
	return runID, nil
}

// MarkRunSucceeded closes a run with the loaded row counts.
func (s *Store) MarkRunSucceeded(ctx context.Context, runID string, loaded pipeline.Counts) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE etl_runs
		SET finished_at = ?, status = ?, customers_loaded = ?, transactions_loaded = ?
		WHERE run_id = ?`,
		time.Now().UTC(), RunStatusSuccess, loaded.Customers, loaded.Transactions, runID)
	if err != nil {
		return fmt.Errorf("sqlite: mark run succeeded: %w", err)
	}
	return nil
}

// MarkRunFailed closes a run with the error that aborted it. Best effort:
// the stage error is the one worth surfacing, so a bookkeeping failure here
// is swallowed.
func (s *Store) MarkRunFailed(ctx context.Context, runID string, runErr error) {
	msg := ""
	if runErr != nil {
		msg = runErr.Error()
	}
	_, _ = s.db.ExecContext(ctx, `
		UPDATE etl_runs
		SET finished_at = ?, status = ?, error_message = ?
		WHERE run_id = ?`,
		time.Now().UTC(), RunStatusFailed, msg, runID)
}

// GetRun fetches one run record by id.
func (s *Store) GetRun(ctx context.Context, runID string) (*RunRecord, error) {
	var r RunRecord
	err := s.db.QueryRowContext(ctx, `
		SELECT run_id, started_at, finished_at, status,
		       customers_loaded, transactions_loaded, error_message
		FROM etl_runs
		WHERE run_id = ?`, runID).
		Scan(&r.RunID, &r.StartedAt, &r.FinishedAt, &r.Status,
			&r.CustomersLoaded, &r.TransactionsLoaded, &r.ErrorMessage)
	if err != nil {
		return nil, fmt.Errorf("sqlite: get run %s: %w", runID, err)
	}
	return &r, nil
}
