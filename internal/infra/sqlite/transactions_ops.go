package sqlite

import (
	"context"
	"fmt"

	"github.com/dvloznov/retail-etl/internal/pipeline"
)

// ReplaceTransactions replaces the transactions table contents inside one
// transaction. Every transaction must reference a loaded customer; the
// foreign key makes a stray orphan a stage-level error rather than silent
// bad data.
func (s *Store) ReplaceTransactions(ctx context.Context, transactions []pipeline.Transaction) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin replace transactions: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("sqlite: clear transactions: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (transaction_id, customer_id, amount, category, transaction_date)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("sqlite: prepare transaction insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range transactions {
		_, err := stmt.ExecContext(ctx,
			t.TransactionID, t.CustomerID, t.Amount, t.Category, t.Date.Format(dateFormat))
		if err != nil {
			return fmt.Errorf("sqlite: insert transaction %s: %w", t.TransactionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit transactions: %w", err)
	}
	return nil
}

// CountTransactions returns the number of loaded transaction rows.
func (s *Store) CountTransactions(ctx context.Context) (int, error) {
	return s.countTable(ctx, "transactions")
}
