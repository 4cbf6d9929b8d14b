package repository

import (
	"context"
	"fmt"

	"gardenroom-billing/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// SequenceMySQLRepository backs the quote number allocator with a MySQL
// counter row per billing period.
//
// The increment is a single INSERT ... ON DUPLICATE KEY UPDATE statement,
// so two concurrent callers can never observe the same value. The follow-up
// SELECT runs inside the same transaction while the row lock from the
// upsert is still held.

type SequenceMySQLRepository struct {
	db *gorm.DB
}

var _ interfaces.ISequenceRepository = (*SequenceMySQLRepository)(nil)

func NewSequenceMySQLRepository(db *gorm.DB) *SequenceMySQLRepository {
	return &SequenceMySQLRepository{db: db}
}

func (r *SequenceMySQLRepository) Next(ctx context.Context, key string) (int64, error) {
	var seq int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"INSERT INTO sequence_counters (counter_key, seq) VALUES (?, 1) "+
				"ON DUPLICATE KEY UPDATE seq = seq + 1", key,
		).Error; err != nil {
			return err
		}
		return tx.Raw(
			"SELECT seq FROM sequence_counters WHERE counter_key = ?", key,
		).Scan(&seq).Error
	})
	if err != nil {
		return 0, fmt.Errorf("mysql increment %s: %w", key, err)
	}
	return seq, nil
}
