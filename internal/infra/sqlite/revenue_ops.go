package sqlite

import (
	"context"
	"fmt"
)

// RevenueRow is one row of the derived customer_revenue table.
type RevenueRow struct {
	CustomerID string
	Name       string
	Email      string
	Total      float64
}

// refreshRevenueSQL materializes per-customer revenue. Customers with no
// transactions get 0.0 via the left join; the ordering is presentation only.
const refreshRevenueSQL = `
	INSERT INTO customer_revenue (customer_id, customer_name, customer_email, total_transaction_amount)
	SELECT
		c.customer_id,
		c.name AS customer_name,
		c.email AS customer_email,
		COALESCE(SUM(t.amount), 0.0) AS total_transaction_amount
	FROM customers c
	LEFT JOIN transactions t ON c.customer_id = t.customer_id
	GROUP BY c.customer_id, c.name, c.email
	ORDER BY total_transaction_amount DESC`

// RefreshCustomerRevenue recomputes the customer_revenue table from the
// customers and transactions tables with replace semantics: prior contents
// are discarded in the same transaction, so re-runs are idempotent. Returns
// the number of rows materialized.
func (s *Store) RefreshCustomerRevenue(ctx context.Context) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("sqlite: begin revenue refresh: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM customer_revenue`); err != nil {
		return 0, fmt.Errorf("sqlite: clear customer_revenue: %w", err)
	}

	res, err := tx.ExecContext(ctx, refreshRevenueSQL)
	if err != nil {
		return 0, fmt.Errorf("sqlite: refresh customer_revenue: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("sqlite: commit revenue refresh: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sqlite: revenue rows affected: %w", err)
	}
	return int(n), nil
}

// ListCustomerRevenue returns the revenue table ordered by total amount
// descending, customer id breaking ties.
func (s *Store) ListCustomerRevenue(ctx context.Context) ([]RevenueRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT customer_id, customer_name, customer_email, total_transaction_amount
		FROM customer_revenue
		ORDER BY total_transaction_amount DESC, customer_id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list customer_revenue: %w", err)
	}
	defer rows.Close()

	var result []RevenueRow
	for rows.Next() {
		var r RevenueRow
		if err := rows.Scan(&r.CustomerID, &r.Name, &r.Email, &r.Total); err != nil {
			return nil, fmt.Errorf("sqlite: scan customer_revenue row: %w", err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate customer_revenue: %w", err)
	}
	return result, nil
}
