package pipeline

import (
	"time"
)

// Customer is one row of the clean set, ready to load. Customers are
// immutable once loaded; a re-run replaces the table wholesale.
type Customer struct {
	CustomerID string
	Name       string
	Email      string
}

// Transaction is one normalized transaction. This is a domain struct, not a
// database row; the store maps it into the transactions table schema and
// serializes Date as YYYY-MM-DD.
type Transaction struct {
	TransactionID string
	CustomerID    string
	Amount        float64
	Category      string // canonical taxonomy name
	Date          time.Time
}
