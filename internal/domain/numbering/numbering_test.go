package numbering

import (
	"testing"
	"time"
)

func TestQuarter(t *testing.T) {
	cases := []struct {
		month time.Month
		want  int
	}{
		{time.January, 1},
		{time.March, 1},
		{time.April, 2},
		{time.June, 2},
		{time.July, 3},
		{time.September, 3},
		{time.October, 4},
		{time.December, 4},
	}
	for _, c := range cases {
		got := Quarter(time.Date(2025, c.month, 15, 0, 0, 0, 0, time.UTC))
		if got != c.want {
			t.Errorf("Quarter(%s) = %d, want %d", c.month, got, c.want)
		}
	}
}

func TestPeriodKey(t *testing.T) {
	got := PeriodKey(time.Date(2025, time.November, 3, 10, 0, 0, 0, time.UTC))
	if got != "quote-2025-Q4" {
		t.Fatalf("PeriodKey = %q, want quote-2025-Q4", got)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		quarter int
		year    int
		seq     int64
		want    string
	}{
		{1, 2025, 7, "Q1-2025-00007"},
		{4, 2025, 12345, "Q4-2025-12345"},
		{2, 2026, 100000, "Q2-2026-100000"},
	}
	for _, c := range cases {
		if got := Format(c.quarter, c.year, c.seq); got != c.want {
			t.Errorf("Format(%d, %d, %d) = %q, want %q", c.quarter, c.year, c.seq, got, c.want)
		}
	}
}

func TestQuoteNumberPattern(t *testing.T) {
	for _, n := range []string{"Q1-2025-00007", "Q4-2025-99999"} {
		if !QuoteNumberPattern.MatchString(n) {
			t.Errorf("expected %q to match", n)
		}
	}
	for _, n := range []string{"", "Q5-2025-00007", "Q1-25-00007", "Q1-2025-007", "q1-2025-00007", "Q1-2025-000070"} {
		if QuoteNumberPattern.MatchString(n) {
			t.Errorf("expected %q not to match", n)
		}
	}
}
