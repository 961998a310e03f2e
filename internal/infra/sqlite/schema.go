package sqlite

// schemaStatements is the retail database schema, applied in order at Open.
// Every statement is idempotent. Cascading foreign keys keep per-table
// replace loads consistent: replacing customers clears dependent transaction
// and revenue rows before the new set is inserted.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS transactions (
		transaction_id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		amount REAL NOT NULL,
		category TEXT NOT NULL,
		transaction_date DATE NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (customer_id) REFERENCES customers (customer_id) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS customer_revenue (
		customer_id TEXT PRIMARY KEY,
		customer_name TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		total_transaction_amount REAL NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (customer_id) REFERENCES customers (customer_id) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS etl_runs (
		run_id TEXT PRIMARY KEY,
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP,
		status TEXT NOT NULL,
		customers_loaded INTEGER,
		transactions_loaded INTEGER,
		error_message TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_transactions_customer_id
		ON transactions (customer_id)`,
}
