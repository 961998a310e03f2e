package sqlite

import (
	"context"
	"fmt"

	"github.com/dvloznov/retail-etl/internal/pipeline"
)

// ReplaceCustomers replaces the customers table contents inside one
// transaction. The foreign-key cascade clears dependent transaction and
// revenue rows, so a re-run starts from a consistent state instead of mixing
// old and new data.
func (s *Store) ReplaceCustomers(ctx context.Context, customers []pipeline.Customer) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin replace customers: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM customers`); err != nil {
		return fmt.Errorf("sqlite: clear customers: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO customers (customer_id, name, email)
		VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("sqlite: prepare customer insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range customers {
		if _, err := stmt.ExecContext(ctx, c.CustomerID, c.Name, c.Email); err != nil {
			return fmt.Errorf("sqlite: insert customer %s: %w", c.CustomerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit customers: %w", err)
	}
	return nil
}

// CountCustomers returns the number of loaded customer rows.
func (s *Store) CountCustomers(ctx context.Context) (int, error) {
	return s.countTable(ctx, "customers")
}
