package pipeline

// Counts holds row counts per dataset, either clean in-memory or loaded.
type Counts struct {
	Customers    int
	Transactions int
}

// Check compares the clean in-memory count of one dataset against the count
// actually loaded into its table. This is a coarse integrity check, not a
// content diff.
type Check struct {
	Dataset     string
	Transformed int
	Loaded      int
}

// OK reports whether the counts match exactly.
func (c Check) OK() bool {
	return c.Transformed == c.Loaded
}

// Status renders the check outcome as PASS or FAIL.
func (c Check) Status() string {
	if c.OK() {
		return "PASS"
	}
	return "FAIL"
}

// Verification is the row-count integrity check across all datasets.
type Verification struct {
	Customers    Check
	Transactions Check
}

// OK reports whether every dataset passed.
func (v Verification) OK() bool {
	return v.Customers.OK() && v.Transactions.OK()
}

// Status renders the overall outcome as PASS or FAIL.
func (v Verification) Status() string {
	if v.OK() {
		return "PASS"
	}
	return "FAIL"
}

// Checks returns the per-dataset checks in load order.
func (v Verification) Checks() []Check {
	return []Check{v.Customers, v.Transactions}
}

// VerifyCounts compares transformed counts with loaded counts per dataset.
func VerifyCounts(transformed, loaded Counts) Verification {
	return Verification{
		Customers: Check{
			Dataset:     "customers",
			Transformed: transformed.Customers,
			Loaded:      loaded.Customers,
		},
		Transactions: Check{
			Dataset:     "transactions",
			Transformed: transformed.Transactions,
			Loaded:      loaded.Transactions,
		},
	}
}
