package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gardenroom-billing/internal/domain/numbering"
	"gardenroom-billing/internal/usecase/interfaces"
)

// ErrAllocationConflict signals that the store's atomic counter primitive
// itself failed. The caller may retry with backoff; a duplicate number is
// never produced silently.
var ErrAllocationConflict = errors.New("quote number allocation conflict")

// QuoteNumberAllocator issues unique, human-readable quote numbers, one
// monotonically increasing sequence per billing quarter.
//
// All synchronization lives in the store's single-round-trip increment:
// the allocator holds no in-process state between calls, so concurrent
// allocations in the same period can never observe the same sequence
// value.
type QuoteNumberAllocator struct {
	seq interfaces.ISequenceRepository
	now func() time.Time
}

func NewQuoteNumberAllocator(seq interfaces.ISequenceRepository) *QuoteNumberAllocator {
	return &QuoteNumberAllocator{seq: seq, now: time.Now}
}

// Allocate returns the next quote number for the current billing period,
// e.g. "Q1-2025-00007".
func (a *QuoteNumberAllocator) Allocate(ctx context.Context) (string, error) {
	t := a.now().UTC()
	n, err := a.seq.Next(ctx, numbering.PeriodKey(t))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAllocationConflict, err)
	}
	return numbering.Format(numbering.Quarter(t), t.Year(), n), nil
}
