// Package sqlite is the SQLite-backed repository shared by every pipeline
// stage. The database file is the hand-off medium between stages.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dvloznov/retail-etl/internal/pipeline"
	_ "modernc.org/sqlite"
)

// dateFormat is how transaction dates are serialized into the DATE column.
const dateFormat = "2006-01-02"

// Store provides access to the retail database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and ensures
// the schema exists.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: database path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", cleanPath, err)
	}

	// The pipeline is strictly sequential with a single writer.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping %s: %w", cleanPath, err)
	}

	store := &Store{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ensure schema: %w", err)
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec schema statement: %w", err)
		}
	}
	return nil
}

// TableCounts returns the loaded row counts used by pipeline verification.
func (s *Store) TableCounts(ctx context.Context) (pipeline.Counts, error) {
	customers, err := s.CountCustomers(ctx)
	if err != nil {
		return pipeline.Counts{}, err
	}
	transactions, err := s.CountTransactions(ctx)
	if err != nil {
		return pipeline.Counts{}, err
	}
	return pipeline.Counts{Customers: customers, Transactions: transactions}, nil
}

func (s *Store) countTable(ctx context.Context, table string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("sqlite: count %s: %w", table, err)
	}
	return n, nil
}
