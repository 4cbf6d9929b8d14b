package repository

import (
	"context"
	"fmt"

	"gardenroom-billing/internal/domain/entities"
	"gardenroom-billing/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// PaymentHistoryMySQLRepository persists ledger entries in MySQL via GORM.
// Insert-only; there is no update or delete path.

type PaymentHistoryMySQLRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentHistoryRepository = (*PaymentHistoryMySQLRepository)(nil)

func NewPaymentHistoryMySQLRepository(db *gorm.DB) *PaymentHistoryMySQLRepository {
	return &PaymentHistoryMySQLRepository{db: db}
}

func (r *PaymentHistoryMySQLRepository) Create(ctx context.Context, p entities.PaymentHistoryItem) (entities.PaymentHistoryItem, error) {
	row := paymentHistoryRow{
		ID:                p.ID,
		QuoteID:           p.QuoteID,
		PaymentType:       string(p.PaymentType),
		Amount:            p.Amount,
		InstallmentNumber: p.InstallmentNumber,
		Note:              p.Note,
		RecordedBy:        p.RecordedBy,
		RecordedAt:        p.RecordedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.PaymentHistoryItem{}, fmt.Errorf("mysql insert payment: %w", err)
	}
	return p, nil
}

func (r *PaymentHistoryMySQLRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.PaymentHistoryItem, error) {
	var rows []paymentHistoryRow
	err := r.db.WithContext(ctx).
		Where("quote_id = ?", quoteID).
		Order("recorded_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("mysql list payments: %w", err)
	}

	items := make([]entities.PaymentHistoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.PaymentHistoryItem{
			ID:                row.ID,
			QuoteID:           row.QuoteID,
			PaymentType:       entities.PaymentType(row.PaymentType),
			Amount:            row.Amount,
			InstallmentNumber: row.InstallmentNumber,
			Note:              row.Note,
			RecordedBy:        row.RecordedBy,
			RecordedAt:        row.RecordedAt,
		})
	}
	return items, nil
}
