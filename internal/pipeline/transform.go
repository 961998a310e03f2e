package pipeline

import (
	"strconv"
	"strings"

	"github.com/dvloznov/retail-etl/internal/extract"
)

// Amounts outside this range are treated as data defects, matching the
// bounds the upstream generator works within.
const maxAmount = 10000.0

// CustomerReport counts what happened to raw customer rows during transform.
// Every rejected row increments exactly one counter.
type CustomerReport struct {
	Raw            int
	Clean          int
	MissingEmail   int
	InvalidEmail   int
	DuplicateEmail int
	DuplicateID    int
}

// Rejected returns the total number of dropped customer rows.
func (r CustomerReport) Rejected() int {
	return r.MissingEmail + r.InvalidEmail + r.DuplicateEmail + r.DuplicateID
}

// TransactionReport counts what happened to raw transaction rows.
type TransactionReport struct {
	Raw             int
	Clean           int
	InvalidDate     int
	InvalidAmount   int
	UnknownCategory int
	DuplicateID     int
	Orphaned        int
}

// Rejected returns the total number of dropped transaction rows.
func (r TransactionReport) Rejected() int {
	return r.InvalidDate + r.InvalidAmount + r.UnknownCategory + r.DuplicateID + r.Orphaned
}

// TransformCustomers validates and de-duplicates raw customer records into
// the clean set. Duplicate emails and customer ids keep the FIRST occurrence.
// A single bad row is never fatal; it is counted and dropped.
func TransformCustomers(raw []extract.RawCustomer) ([]Customer, CustomerReport) {
	report := CustomerReport{Raw: len(raw)}

	seenEmail := make(map[string]bool, len(raw))
	seenID := make(map[string]bool, len(raw))

	clean := make([]Customer, 0, len(raw))
	for _, r := range raw {
		email := strings.TrimSpace(r.Email)
		if email == "" {
			report.MissingEmail++
			continue
		}
		if !validEmail(email) {
			report.InvalidEmail++
			continue
		}
		if seenEmail[email] {
			report.DuplicateEmail++
			continue
		}
		id := strings.TrimSpace(r.CustomerID)
		if seenID[id] {
			report.DuplicateID++
			continue
		}
		seenEmail[email] = true
		seenID[id] = true

		name := strings.TrimSpace(r.Name)
		if name == "" {
			name = "Unknown"
		}
		clean = append(clean, Customer{CustomerID: id, Name: name, Email: email})
	}

	report.Clean = len(clean)
	return clean, report
}

// TransformTransactions validates, normalizes and de-duplicates raw
// transaction records, then drops orphans referencing customers absent from
// the clean customer set. Duplicate transaction ids keep the FIRST
// occurrence.
func TransformTransactions(raw []extract.RawTransaction, categories *CategoryValidator, customers []Customer) ([]Transaction, TransactionReport) {
	report := TransactionReport{Raw: len(raw)}

	known := make(map[string]bool, len(customers))
	for _, c := range customers {
		known[c.CustomerID] = true
	}

	seenID := make(map[string]bool, len(raw))
	clean := make([]Transaction, 0, len(raw))
	for _, r := range raw {
		date, err := parseTransactionDate(r.Date)
		if err != nil {
			report.InvalidDate++
			continue
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(r.Amount), 64)
		if err != nil || amount <= 0 || amount > maxAmount {
			report.InvalidAmount++
			continue
		}
		category, err := categories.Canonicalize(r.Category)
		if err != nil {
			report.UnknownCategory++
			continue
		}
		id := strings.TrimSpace(r.TransactionID)
		if seenID[id] {
			report.DuplicateID++
			continue
		}
		seenID[id] = true

		customerID := strings.TrimSpace(r.CustomerID)
		if !known[customerID] {
			report.Orphaned++
			continue
		}

		clean = append(clean, Transaction{
			TransactionID: id,
			CustomerID:    customerID,
			Amount:        amount,
			Category:      category,
			Date:          date,
		})
	}

	report.Clean = len(clean)
	return clean, report
}
