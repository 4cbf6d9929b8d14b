package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gardenroom-billing/internal/domain/entities"
	"gardenroom-billing/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// QuoteMySQLRepository persists Quote entities in MySQL via GORM. It is
// interchangeable with the DynamoDB implementation behind
// interfaces.IQuoteRepository.

type QuoteMySQLRepository struct {
	db *gorm.DB
}

var _ interfaces.IQuoteRepository = (*QuoteMySQLRepository)(nil)

func NewQuoteMySQLRepository(db *gorm.DB) *QuoteMySQLRepository {
	return &QuoteMySQLRepository{db: db}
}

func (r *QuoteMySQLRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	row, err := toQuoteRow(q)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Quote{}, fmt.Errorf("mysql insert quote: %w", err)
	}
	return q, nil
}

func (r *QuoteMySQLRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	var row quoteRow
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, fmt.Errorf("mysql get quote: %w", err)
	}
	return fromQuoteRow(row)
}

func (r *QuoteMySQLRepository) GetByQuoteNumber(ctx context.Context, number string) (entities.Quote, error) {
	var row quoteRow
	err := r.db.WithContext(ctx).First(&row, "quote_number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, fmt.Errorf("mysql get quote by number: %w", err)
	}
	return fromQuoteRow(row)
}

func (r *QuoteMySQLRepository) List(ctx context.Context, filter interfaces.QuoteFilter) ([]entities.Quote, error) {
	tx := r.db.WithContext(ctx).Model(&quoteRow{}).Order("created_at DESC")
	if filter.Status != "" {
		tx = tx.Where("payment_status = ?", string(filter.Status))
	}
	tx = tx.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)

	var rows []quoteRow
	if err := tx.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("mysql list quotes: %w", err)
	}

	quotes := make([]entities.Quote, 0, len(rows))
	for _, row := range rows {
		q, err := fromQuoteRow(row)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

func (r *QuoteMySQLRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Quote, error) {
	return r.update(ctx, id, map[string]any{
		"payment_status": string(status),
		"updated_at":     time.Now().UTC(),
	})
}

func (r *QuoteMySQLRepository) UpdatePaymentSummary(ctx context.Context, id string, summary interfaces.PaymentSummary) (entities.Quote, error) {
	patch := map[string]any{
		"total_paid":     summary.TotalPaid,
		"payment_status": string(summary.Status),
		"updated_at":     time.Now().UTC(),
	}
	if !summary.LastPaymentAt.IsZero() {
		patch["last_payment_at"] = summary.LastPaymentAt.UTC()
	}
	return r.update(ctx, id, patch)
}

func (r *QuoteMySQLRepository) update(ctx context.Context, id string, patch map[string]any) (entities.Quote, error) {
	res := r.db.WithContext(ctx).Model(&quoteRow{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return entities.Quote{}, fmt.Errorf("mysql update quote: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Quote{}, nil
	}
	return r.GetByID(ctx, id)
}

func toQuoteRow(q entities.Quote) (quoteRow, error) {
	cfg, err := json.Marshal(q.Configuration)
	if err != nil {
		return quoteRow{}, err
	}
	bd, err := json.Marshal(q.Breakdown)
	if err != nil {
		return quoteRow{}, err
	}

	return quoteRow{
		ID:                   q.ID,
		QuoteNumber:          q.QuoteNumber,
		CustomerName:         q.Customer.Name,
		CustomerEmail:        q.Customer.Email,
		CustomerPhone:        q.Customer.Phone,
		CustomerAddress:      q.Customer.Address,
		Configuration:        string(cfg),
		Breakdown:            string(bd),
		PaymentStatus:        string(q.PaymentStatus),
		TotalPaid:            q.TotalPaid,
		ExpectedInstallments: q.ExpectedInstallments,
		LastPaymentAt:        q.LastPaymentAt,
		ExpiresAt:            q.ExpiresAt,
		CreatedAt:            q.CreatedAt,
		UpdatedAt:            q.UpdatedAt,
	}, nil
}

func fromQuoteRow(row quoteRow) (entities.Quote, error) {
	var cfg entities.BuildingConfiguration
	if err := json.Unmarshal([]byte(row.Configuration), &cfg); err != nil {
		return entities.Quote{}, fmt.Errorf("unmarshal quote configuration: %w", err)
	}
	var bd entities.PriceBreakdown
	if err := json.Unmarshal([]byte(row.Breakdown), &bd); err != nil {
		return entities.Quote{}, fmt.Errorf("unmarshal quote breakdown: %w", err)
	}

	return entities.Quote{
		ID:          row.ID,
		QuoteNumber: row.QuoteNumber,
		Customer: entities.CustomerContact{
			Name:    row.CustomerName,
			Email:   row.CustomerEmail,
			Phone:   row.CustomerPhone,
			Address: row.CustomerAddress,
		},
		Configuration:        cfg,
		Breakdown:            bd,
		PaymentStatus:        entities.PaymentStatus(row.PaymentStatus),
		TotalPaid:            row.TotalPaid,
		ExpectedInstallments: row.ExpectedInstallments,
		LastPaymentAt:        row.LastPaymentAt,
		ExpiresAt:            row.ExpiresAt,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}, nil
}
