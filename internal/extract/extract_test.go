package extract

import (
	"strings"
	"testing"
)

func TestCustomersSkipsMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		"customer_id,name,email",
		"c1,Alice,alice@example.com",
		"c2,Bob", // too few columns
		"c3,Carol,carol@example.com",
		"c4,Dave,dave@example.com,extra", // too many columns
		"c5,Eve,eve@example.com",
	}, "\n") + "\n"

	records, skipped, err := Customers(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Customers failed: %v", err)
	}
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].CustomerID != "c1" || records[0].Email != "alice@example.com" {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].CustomerID != "c3" {
		t.Errorf("expected c3 after skipping bad line, got %+v", records[1])
	}
}

func TestTransactionsKeepsRawFields(t *testing.T) {
	input := strings.Join([]string{
		"transaction_id,customer_id,amount,category,transaction_date",
		"t1,c1,49.99,Electronics,2024-01-15",
		"t2,c2,not_a_number,books,2024-13-45", // bad values survive extraction
	}, "\n") + "\n"

	records, skipped, err := Transactions(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Transactions failed: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[1].Amount != "not_a_number" || records[1].Date != "2024-13-45" {
		t.Errorf("extraction should not validate fields, got %+v", records[1])
	}
}

func TestCustomersEmptyInput(t *testing.T) {
	if _, _, err := Customers(strings.NewReader("")); err == nil {
		t.Error("expected error for input without a header")
	}
}

func TestCustomersFileMissing(t *testing.T) {
	if _, _, err := CustomersFile("does-not-exist.csv"); err == nil {
		t.Error("expected error for missing file")
	}
}
