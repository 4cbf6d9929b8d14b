package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gardenroom-billing/internal/domain/entities"
	"gardenroom-billing/internal/domain/pricing"
	"gardenroom-billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentType   = errors.New("invalid payment type")
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
)

// IPaymentLedgerUseCase encapsulates the append-only payment ledger.
//
// Every append recomputes the quote's total paid from the full entry set.
// The summary is never maintained as a running `total += amount`: that
// caches drift when a recompute is missed or an entry is backfilled by
// hand, while a full recompute is idempotent and safe to retry after a
// crash between the insert and the summary write.

type IPaymentLedgerUseCase interface {
	AppendPayment(ctx context.Context, quoteID string, cmd AppendPaymentCommand) (entities.PaymentHistoryItem, error)
	GetHistory(ctx context.Context, quoteID string) ([]entities.PaymentHistoryItem, error)
	RecomputeTotal(ctx context.Context, quoteID string) (float64, error)
}

// AppendPaymentCommand is the input of AppendPayment.
type AppendPaymentCommand struct {
	Type              entities.PaymentType
	Amount            float64
	InstallmentNumber *int
	Note              string
	RecordedBy        string
}

type PaymentLedgerUseCase struct {
	ledgerRepo interfaces.IPaymentHistoryRepository
	quoteRepo  interfaces.IQuoteRepository
	now        func() time.Time
}

var _ IPaymentLedgerUseCase = (*PaymentLedgerUseCase)(nil)

func NewPaymentLedgerUseCase(ledgerRepo interfaces.IPaymentHistoryRepository, quoteRepo interfaces.IQuoteRepository) *PaymentLedgerUseCase {
	return &PaymentLedgerUseCase{ledgerRepo: ledgerRepo, quoteRepo: quoteRepo, now: time.Now}
}

func (u *PaymentLedgerUseCase) AppendPayment(ctx context.Context, quoteID string, cmd AppendPaymentCommand) (entities.PaymentHistoryItem, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.PaymentHistoryItem{}, ErrInvalidQuoteID
	}
	if !entities.KnownPaymentType(cmd.Type) {
		return entities.PaymentHistoryItem{}, ErrInvalidPaymentType
	}

	amount := pricing.RoundHalfUp(cmd.Amount)
	if amount == 0 {
		return entities.PaymentHistoryItem{}, ErrInvalidPaymentAmount
	}
	// Only refunds and adjustments may carry a negative amount.
	if amount < 0 && cmd.Type != entities.PaymentTypeRefund && cmd.Type != entities.PaymentTypeAdjustment {
		return entities.PaymentHistoryItem{}, ErrInvalidPaymentAmount
	}

	quote, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.PaymentHistoryItem{}, err
	}
	if quote.ID == "" {
		return entities.PaymentHistoryItem{}, ErrQuoteNotFound
	}

	item := entities.PaymentHistoryItem{
		ID:                uuid.NewString(),
		QuoteID:           quoteID,
		PaymentType:       cmd.Type,
		Amount:            amount,
		InstallmentNumber: cmd.InstallmentNumber,
		Note:              strings.TrimSpace(cmd.Note),
		RecordedBy:        strings.TrimSpace(cmd.RecordedBy),
		RecordedAt:        u.now().UTC(),
	}

	created, err := u.ledgerRepo.Create(ctx, item)
	if err != nil {
		return entities.PaymentHistoryItem{}, fmt.Errorf("append payment: %w", err)
	}
	log.Printf("[ledger][usecase] appended quote_id=%s type=%s amount=%.2f", quoteID, created.PaymentType, created.Amount)

	if _, err := u.recompute(ctx, quote, created.RecordedAt); err != nil {
		// The entry is persisted; a retried recompute re-derives the same
		// total from the full entry set.
		return entities.PaymentHistoryItem{}, err
	}
	return created, nil
}

func (u *PaymentLedgerUseCase) GetHistory(ctx context.Context, quoteID string) ([]entities.PaymentHistoryItem, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	return u.ledgerRepo.ListByQuoteID(ctx, quoteID)
}

func (u *PaymentLedgerUseCase) RecomputeTotal(ctx context.Context, quoteID string) (float64, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return 0, ErrInvalidQuoteID
	}

	quote, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return 0, err
	}
	if quote.ID == "" {
		return 0, ErrQuoteNotFound
	}
	return u.recompute(ctx, quote, time.Time{})
}

// recompute re-derives the quote's total paid as the literal cent sum of
// every ledger entry and writes the summary back onto the quote.
func (u *PaymentLedgerUseCase) recompute(ctx context.Context, quote entities.Quote, lastPaymentAt time.Time) (float64, error) {
	entries, err := u.ledgerRepo.ListByQuoteID(ctx, quote.ID)
	if err != nil {
		return 0, fmt.Errorf("recompute total: %w", err)
	}

	var totalCents int64
	for _, e := range entries {
		totalCents += pricing.Cents(e.Amount)
	}
	total := pricing.FromCents(totalCents)

	if lastPaymentAt.IsZero() && len(entries) > 0 {
		// Entries come back newest first.
		lastPaymentAt = entries[0].RecordedAt
	}

	status := deriveStatus(quote, entries, totalCents)
	if _, err := u.quoteRepo.UpdatePaymentSummary(ctx, quote.ID, interfaces.PaymentSummary{
		TotalPaid:     total,
		LastPaymentAt: lastPaymentAt,
		Status:        status,
	}); err != nil {
		return 0, fmt.Errorf("update payment summary: %w", err)
	}
	log.Printf("[ledger][usecase] recomputed quote_id=%s entries=%d total_paid=%.2f status=%s",
		quote.ID, len(entries), total, status)
	return total, nil
}

// deriveStatus maps the ledger state onto the quote's payment status.
func deriveStatus(quote entities.Quote, entries []entities.PaymentHistoryItem, totalCents int64) entities.PaymentStatus {
	if len(entries) == 0 {
		return quote.PaymentStatus
	}

	var hasRefund, hasInstallment bool
	for _, e := range entries {
		switch e.PaymentType {
		case entities.PaymentTypeRefund:
			hasRefund = true
		case entities.PaymentTypeInstallment:
			hasInstallment = true
		}
	}

	quoteTotalCents := pricing.Cents(quote.Breakdown.Total)
	switch {
	case totalCents <= 0 && hasRefund:
		return entities.PaymentStatusRefunded
	case quoteTotalCents > 0 && totalCents >= quoteTotalCents:
		return entities.PaymentStatusPaid
	case hasInstallment:
		return entities.PaymentStatusInstallments
	case totalCents > 0:
		return entities.PaymentStatusDepositPaid
	default:
		return quote.PaymentStatus
	}
}
