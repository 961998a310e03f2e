// Package extract reads the delimited input files into raw, string-typed
// records. Field validation happens later in the pipeline; extraction only
// guards against structurally broken lines.
package extract

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/jszwec/csvutil"
)

// RawCustomer is one customer line exactly as it appears in the file.
type RawCustomer struct {
	CustomerID string `csv:"customer_id"`
	Name       string `csv:"name"`
	Email      string `csv:"email"`
}

// RawTransaction is one transaction line exactly as it appears in the file.
// Amount and Date stay strings until the transform stage parses them.
type RawTransaction struct {
	TransactionID string `csv:"transaction_id"`
	CustomerID    string `csv:"customer_id"`
	Amount        string `csv:"amount"`
	Category      string `csv:"category"`
	Date          string `csv:"transaction_date"`
}

// Customers reads customer records from r. Malformed lines (wrong column
// count, bad quoting) are skipped and counted, never fatal; the returned int
// is the number of skipped lines. An unreadable header is fatal.
func Customers(r io.Reader) ([]RawCustomer, int, error) {
	return decodeAll[RawCustomer](r)
}

// Transactions reads transaction records from r with the same skip-and-count
// contract as Customers.
func Transactions(r io.Reader) ([]RawTransaction, int, error) {
	return decodeAll[RawTransaction](r)
}

// CustomersFile reads customer records from the file at path.
func CustomersFile(path string) ([]RawCustomer, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("extract: open %s: %w", path, err)
	}
	defer f.Close()
	return Customers(f)
}

// TransactionsFile reads transaction records from the file at path.
func TransactionsFile(path string) ([]RawTransaction, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("extract: open %s: %w", path, err)
	}
	defer f.Close()
	return Transactions(f)
}

func decodeAll[T any](r io.Reader) ([]T, int, error) {
	cr := csv.NewReader(r)
	// Lock the column count to the header so short and long rows surface as
	// per-record errors instead of silently shifting fields.
	cr.FieldsPerRecord = 0

	dec, err := csvutil.NewDecoder(cr)
	if err != nil {
		return nil, 0, fmt.Errorf("extract: read header: %w", err)
	}

	var (
		records []T
		skipped int
	)
	for {
		var rec T
		err := dec.Decode(&rec)
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped, nil
}
