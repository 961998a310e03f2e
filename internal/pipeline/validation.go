package pipeline

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// emailPattern is the address shape the upstream data is expected to carry.
// Anything without a user part, an "@", or a multi-letter TLD is rejected.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// validEmail combines the pattern with structural checks the pattern alone
// misses: consecutive dots anywhere, and domain labels that are empty or
// begin/end with a hyphen ("user@example..com", "user@-example.com").
func validEmail(s string) bool {
	if !emailPattern.MatchString(s) {
		return false
	}
	if strings.Contains(s, "..") {
		return false
	}
	domain := s[strings.LastIndex(s, "@")+1:]
	for _, label := range strings.Split(domain, ".") {
		if label == "" || strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}
	return true
}

// DefaultCategories is the fixed taxonomy transaction categories are
// canonicalized against.
var DefaultCategories = []string{"Electronics", "Books", "Home"}

// CategoryValidator canonicalizes raw category names against a fixed
// taxonomy, comparing case- and whitespace-insensitively.
type CategoryValidator struct {
	canonical map[string]string // normalized name -> canonical display name
}

// NewCategoryValidator creates a validator from a list of canonical names.
func NewCategoryValidator(names []string) *CategoryValidator {
	v := &CategoryValidator{canonical: make(map[string]string, len(names))}
	for _, name := range names {
		v.canonical[normalizeCategory(name)] = strings.TrimSpace(name)
	}
	return v
}

// Canonicalize maps a raw category name to its canonical form. Unknown
// categories are an error; the caller counts them as rejects.
func (v *CategoryValidator) Canonicalize(raw string) (string, error) {
	norm := normalizeCategory(raw)
	canon, ok := v.canonical[norm]
	if !ok {
		return "", fmt.Errorf("unknown category: %q (normalized: %q)", raw, norm)
	}
	return canon, nil
}

// normalizeCategory normalizes a category name for comparison.
// Converts to uppercase and trims whitespace for case-insensitive comparison.
func normalizeCategory(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// dateLayout accepts ISO dates with or without zero-padding ("2024-01-15",
// "2024-1-5"). Other separators and orderings are rejected.
const dateLayout = "2006-1-2"

// Dates outside this window are treated as data defects.
const (
	minDateYear = 1900
	maxDateYear = 2100
)

// parseTransactionDate parses a transaction date string, rejecting empty
// values, unparseable dates, and years outside the supported range.
func parseTransactionDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	if t.Year() < minDateYear || t.Year() > maxDateYear {
		return time.Time{}, fmt.Errorf("date %q outside supported range %d-%d", s, minDateYear, maxDateYear)
	}
	return t, nil
}
