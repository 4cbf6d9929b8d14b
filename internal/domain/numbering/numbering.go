// Package numbering derives billing-period keys and formats quote numbers.
package numbering

import (
	"fmt"
	"regexp"
	"time"
)

// QuoteNumberPattern is the fixed quote number format, e.g. "Q1-2025-00007".
var QuoteNumberPattern = regexp.MustCompile(`^Q[1-4]-\d{4}-\d{5}$`)

// Quarter returns the calendar quarter (1-4) of t.
func Quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// PeriodKey identifies the sequence counter record for t's billing period,
// e.g. "quote-2025-Q4".
func PeriodKey(t time.Time) string {
	return fmt.Sprintf("quote-%04d-Q%d", t.Year(), Quarter(t))
}

// Format renders a quote number from its period and sequence value.
func Format(quarter, year int, seq int64) string {
	return fmt.Sprintf("Q%d-%04d-%05d", quarter, year, seq)
}
