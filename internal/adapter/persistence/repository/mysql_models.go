package repository

import (
	"time"

	"gorm.io/gorm"
)

// Relational rows for the MySQL backend. Configuration and breakdown are
// JSON snapshot columns, mirroring the document backend, so both backends
// stay interchangeable behind the repository interfaces.

type quoteRow struct {
	ID              string `gorm:"primaryKey;size:36"`
	QuoteNumber     string `gorm:"uniqueIndex;size:16"`
	CustomerName    string `gorm:"size:120"`
	CustomerEmail   string `gorm:"size:120"`
	CustomerPhone   string `gorm:"size:40"`
	CustomerAddress string `gorm:"size:255"`

	Configuration string `gorm:"type:json"`
	Breakdown     string `gorm:"type:json"`

	PaymentStatus        string  `gorm:"size:20;index"`
	TotalPaid            float64 `gorm:"type:decimal(12,2)"`
	ExpectedInstallments *int
	LastPaymentAt        *time.Time

	ExpiresAt time.Time
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (quoteRow) TableName() string { return "quotes" }

type paymentHistoryRow struct {
	ID                string  `gorm:"primaryKey;size:36"`
	QuoteID           string  `gorm:"index;size:36"`
	PaymentType       string  `gorm:"size:12"`
	Amount            float64 `gorm:"type:decimal(12,2)"`
	InstallmentNumber *int
	Note              string    `gorm:"size:255"`
	RecordedBy        string    `gorm:"size:120"`
	RecordedAt        time.Time `gorm:"index"`
}

func (paymentHistoryRow) TableName() string { return "payment_history" }

type sequenceCounterRow struct {
	CounterKey string `gorm:"primaryKey;size:32;column:counter_key"`
	Seq        int64
}

func (sequenceCounterRow) TableName() string { return "sequence_counters" }

// AutoMigrateMySQL syncs the relational schema. Called once at startup
// when the MySQL backend is selected.
func AutoMigrateMySQL(db *gorm.DB) error {
	return db.AutoMigrate(&quoteRow{}, &paymentHistoryRow{}, &sequenceCounterRow{})
}
