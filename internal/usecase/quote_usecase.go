package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gardenroom-billing/internal/domain/entities"
	"gardenroom-billing/internal/domain/numbering"
	"gardenroom-billing/internal/domain/pricing"
	"gardenroom-billing/internal/domain/validation"
	"gardenroom-billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound           = errors.New("quote not found")
	ErrInvalidQuoteID          = errors.New("invalid quote id")
	ErrInvalidQuoteNumber      = errors.New("invalid quote number")
	ErrInvalidCustomer         = errors.New("invalid customer contact")
	ErrUnknownPaymentStatus    = errors.New("unknown payment status")
	ErrInvalidStatusTransition = errors.New("invalid payment status transition")
)

const defaultRetentionDays = 90

// ValidationError carries every range violation found in a configuration
// so callers can render all problems at once.
type ValidationError struct {
	Result validation.Result
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("configuration invalid: %d violation(s)", len(e.Result.Errors))
}

// IQuoteUseCase exposes quote operations.
//
//   - PriceConfiguration backs the configurator wizard: validate + price,
//     nothing persisted.
//   - CreateQuote is the submission path: validate, price with VAT,
//     allocate a quote number and persist, all at creation time.

type IQuoteUseCase interface {
	PriceConfiguration(ctx context.Context, cfg entities.BuildingConfiguration, includeVAT bool) (entities.PriceBreakdown, error)
	CreateQuote(ctx context.Context, cmd CreateQuoteCommand) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByQuoteNumber(ctx context.Context, number string) (entities.Quote, error)
	List(ctx context.Context, filter interfaces.QuoteFilter) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Quote, error)
}

// CreateQuoteCommand is the input of CreateQuote.
type CreateQuoteCommand struct {
	Customer             entities.CustomerContact
	Configuration        entities.BuildingConfiguration
	ExpectedInstallments *int
}

type QuoteUseCase struct {
	repo      interfaces.IQuoteRepository
	estimator *pricing.Estimator
	allocator *QuoteNumberAllocator
	retention time.Duration
	now       func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, estimator *pricing.Estimator, allocator *QuoteNumberAllocator) *QuoteUseCase {
	return &QuoteUseCase{
		repo:      repo,
		estimator: estimator,
		allocator: allocator,
		retention: retentionFromEnv(),
		now:       time.Now,
	}
}

func (u *QuoteUseCase) PriceConfiguration(ctx context.Context, cfg entities.BuildingConfiguration, includeVAT bool) (entities.PriceBreakdown, error) {
	if res := validation.Validate(cfg); !res.Valid() {
		return entities.PriceBreakdown{}, &ValidationError{Result: res}
	}
	return u.estimator.Estimate(cfg, includeVAT), nil
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, cmd CreateQuoteCommand) (entities.Quote, error) {
	customer := trimCustomer(cmd.Customer)
	if customer.Name == "" || customer.Email == "" {
		return entities.Quote{}, ErrInvalidCustomer
	}
	if res := validation.Validate(cmd.Configuration); !res.Valid() {
		return entities.Quote{}, &ValidationError{Result: res}
	}

	breakdown := u.estimator.Estimate(cmd.Configuration, true)

	number, err := u.allocator.Allocate(ctx)
	if err != nil {
		return entities.Quote{}, err
	}

	now := u.now().UTC()
	q := entities.Quote{
		ID:                   uuid.NewString(),
		QuoteNumber:          number,
		Customer:             customer,
		Configuration:        cmd.Configuration,
		Breakdown:            breakdown,
		PaymentStatus:        entities.PaymentStatusQuoted,
		TotalPaid:            0,
		ExpectedInstallments: cmd.ExpectedInstallments,
		ExpiresAt:            now.Add(u.retention),
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		// The allocated number is not returned to the pool; its period
		// sequence just keeps a gap.
		log.Printf("[quote][usecase] create failed after allocating %s err=%v", number, err)
		return entities.Quote{}, fmt.Errorf("create quote: %w", err)
	}
	log.Printf("[quote][usecase] created quote id=%s number=%s total=%.2f %s",
		created.ID, created.QuoteNumber, created.Breakdown.Total, created.Breakdown.Currency)
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) GetByQuoteNumber(ctx context.Context, number string) (entities.Quote, error) {
	number = strings.TrimSpace(number)
	if !numbering.QuoteNumberPattern.MatchString(number) {
		return entities.Quote{}, ErrInvalidQuoteNumber
	}

	q, err := u.repo.GetByQuoteNumber(ctx, number)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context, filter interfaces.QuoteFilter) ([]entities.Quote, error) {
	if filter.Status != "" && !knownPaymentStatus(filter.Status) {
		return nil, ErrUnknownPaymentStatus
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}
	return u.repo.List(ctx, filter)
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if !knownPaymentStatus(status) {
		return entities.Quote{}, ErrUnknownPaymentStatus
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if current.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if !transitionAllowed(current.PaymentStatus, status) {
		return entities.Quote{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current.PaymentStatus, status)
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

// statusTransitions lists the legal back-office transitions. Ledger-driven
// transitions (deposit-paid, installments, paid, refunded after appends)
// bypass this table since they are derived from the entries themselves.
var statusTransitions = map[entities.PaymentStatus][]entities.PaymentStatus{
	entities.PaymentStatusPreQuote:     {entities.PaymentStatusQuoted},
	entities.PaymentStatusQuoted:       {entities.PaymentStatusDepositPaid, entities.PaymentStatusOverdue},
	entities.PaymentStatusDepositPaid:  {entities.PaymentStatusInstallments, entities.PaymentStatusPaid, entities.PaymentStatusOverdue, entities.PaymentStatusRefunded},
	entities.PaymentStatusInstallments: {entities.PaymentStatusPaid, entities.PaymentStatusOverdue, entities.PaymentStatusRefunded},
	entities.PaymentStatusOverdue:      {entities.PaymentStatusDepositPaid, entities.PaymentStatusInstallments, entities.PaymentStatusPaid, entities.PaymentStatusRefunded},
	entities.PaymentStatusPaid:         {entities.PaymentStatusRefunded},
}

func transitionAllowed(from, to entities.PaymentStatus) bool {
	if from == to {
		return true
	}
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func knownPaymentStatus(s entities.PaymentStatus) bool {
	switch s {
	case entities.PaymentStatusPreQuote, entities.PaymentStatusQuoted,
		entities.PaymentStatusDepositPaid, entities.PaymentStatusInstallments,
		entities.PaymentStatusPaid, entities.PaymentStatusOverdue,
		entities.PaymentStatusRefunded:
		return true
	}
	return false
}

func trimCustomer(c entities.CustomerContact) entities.CustomerContact {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	return c
}

func retentionFromEnv() time.Duration {
	days := defaultRetentionDays
	if v := strings.TrimSpace(os.Getenv("QUOTE_RETENTION_DAYS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}
	return time.Duration(days) * 24 * time.Hour
}
