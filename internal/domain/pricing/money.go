package pricing

import "math"

// Monetary amounts are summed and compared as integer cents so that a
// breakdown subtotal is exactly the sum of its rounded lines, with no
// float accumulation drift.

// Cents converts a currency amount to integer cents, rounding half-up.
func Cents(v float64) int64 {
	return int64(math.Floor(v*100 + 0.5))
}

// FromCents converts integer cents back to a 2-decimal currency amount.
func FromCents(c int64) float64 {
	return float64(c) / 100
}

// RoundHalfUp rounds a currency amount to 2 decimal places, half-up.
func RoundHalfUp(v float64) float64 {
	return FromCents(Cents(v))
}

// RateCents applies a fractional rate to an amount held in cents and
// rounds the result half-up to whole cents. Used for VAT.
func RateCents(c int64, rate float64) int64 {
	return int64(math.Floor(float64(c)*rate + 0.5))
}
