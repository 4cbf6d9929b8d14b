package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gardenroom-billing/internal/domain/entities"
	"gardenroom-billing/internal/usecase/interfaces"
	mock_interfaces "gardenroom-billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func quotedQuote(total float64) entities.Quote {
	return entities.Quote{
		ID:            "q-1",
		QuoteNumber:   "Q4-2025-00007",
		PaymentStatus: entities.PaymentStatusQuoted,
		Breakdown:     entities.PriceBreakdown{Total: total, Currency: "EUR"},
	}
}

func newTestLedgerUseCase(ledgerRepo interfaces.IPaymentHistoryRepository, quoteRepo interfaces.IQuoteRepository) *PaymentLedgerUseCase {
	uc := NewPaymentLedgerUseCase(ledgerRepo, quoteRepo)
	uc.now = func() time.Time { return time.Date(2025, time.November, 3, 10, 0, 0, 0, time.UTC) }
	return uc
}

func TestPaymentLedgerUseCase_AppendPayment_Validations(t *testing.T) {
	t.Run("blank quote id", func(t *testing.T) {
		uc := newTestLedgerUseCase(nil, nil)
		_, err := uc.AppendPayment(context.Background(), "  ", AppendPaymentCommand{Type: entities.PaymentTypeDeposit, Amount: 100})
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("unknown payment type", func(t *testing.T) {
		uc := newTestLedgerUseCase(nil, nil)
		_, err := uc.AppendPayment(context.Background(), "q-1", AppendPaymentCommand{Type: "CASHBACK", Amount: 100})
		if !errors.Is(err, ErrInvalidPaymentType) {
			t.Fatalf("expected ErrInvalidPaymentType, got %v", err)
		}
	})

	t.Run("zero amount", func(t *testing.T) {
		uc := newTestLedgerUseCase(nil, nil)
		_, err := uc.AppendPayment(context.Background(), "q-1", AppendPaymentCommand{Type: entities.PaymentTypeDeposit, Amount: 0})
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("amount rounding to zero", func(t *testing.T) {
		uc := newTestLedgerUseCase(nil, nil)
		_, err := uc.AppendPayment(context.Background(), "q-1", AppendPaymentCommand{Type: entities.PaymentTypeDeposit, Amount: 0.004})
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("negative deposit", func(t *testing.T) {
		uc := newTestLedgerUseCase(nil, nil)
		_, err := uc.AppendPayment(context.Background(), "q-1", AppendPaymentCommand{Type: entities.PaymentTypeDeposit, Amount: -50})
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestLedgerUseCase(nil, quoteRepo)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-missing").Return(entities.Quote{}, nil)

		_, err := uc.AppendPayment(context.Background(), "q-missing", AppendPaymentCommand{Type: entities.PaymentTypeDeposit, Amount: 100})
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestPaymentLedgerUseCase_AppendPayment_Recompute(t *testing.T) {
	t.Run("deposit then refund sums the full ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockIPaymentHistoryRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestLedgerUseCase(ledgerRepo, quoteRepo)

		recordedAt := uc.now().UTC()
		deposit := entities.PaymentHistoryItem{ID: "p-1", QuoteID: "q-1", PaymentType: entities.PaymentTypeDeposit, Amount: 1000, RecordedAt: recordedAt.Add(-time.Hour)}
		refund := entities.PaymentHistoryItem{ID: "p-2", QuoteID: "q-1", PaymentType: entities.PaymentTypeRefund, Amount: -200, RecordedAt: recordedAt}

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quotedQuote(21405.44), nil)
		ledgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PaymentHistoryItem) (entities.PaymentHistoryItem, error) {
				if p.PaymentType != entities.PaymentTypeRefund || p.Amount != -200 {
					t.Fatalf("unexpected entry %+v", p)
				}
				return refund, nil
			})
		ledgerRepo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.PaymentHistoryItem{refund, deposit}, nil)
		quoteRepo.EXPECT().UpdatePaymentSummary(gomock.Any(), "q-1", interfaces.PaymentSummary{
			TotalPaid:     800,
			LastPaymentAt: recordedAt,
			Status:        entities.PaymentStatusDepositPaid,
		}).Return(quotedQuote(21405.44), nil)

		created, err := uc.AppendPayment(context.Background(), "q-1", AppendPaymentCommand{Type: entities.PaymentTypeRefund, Amount: -200})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "p-2" {
			t.Fatalf("unexpected entry %+v", created)
		}
	})

	t.Run("fully refunded ledger derives refunded status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockIPaymentHistoryRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestLedgerUseCase(ledgerRepo, quoteRepo)

		recordedAt := uc.now().UTC()
		deposit := entities.PaymentHistoryItem{ID: "p-1", QuoteID: "q-1", PaymentType: entities.PaymentTypeDeposit, Amount: 500, RecordedAt: recordedAt.Add(-time.Hour)}
		refund := entities.PaymentHistoryItem{ID: "p-2", QuoteID: "q-1", PaymentType: entities.PaymentTypeRefund, Amount: -500, RecordedAt: recordedAt}

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quotedQuote(21405.44), nil)
		ledgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(refund, nil)
		ledgerRepo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.PaymentHistoryItem{refund, deposit}, nil)
		quoteRepo.EXPECT().UpdatePaymentSummary(gomock.Any(), "q-1", interfaces.PaymentSummary{
			TotalPaid:     0,
			LastPaymentAt: recordedAt,
			Status:        entities.PaymentStatusRefunded,
		}).Return(quotedQuote(21405.44), nil)

		if _, err := uc.AppendPayment(context.Background(), "q-1", AppendPaymentCommand{Type: entities.PaymentTypeRefund, Amount: -500}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("installment entry derives installments status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockIPaymentHistoryRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestLedgerUseCase(ledgerRepo, quoteRepo)

		recordedAt := uc.now().UTC()
		n := 1
		installment := entities.PaymentHistoryItem{ID: "p-1", QuoteID: "q-1", PaymentType: entities.PaymentTypeInstallment, Amount: 300, InstallmentNumber: &n, RecordedAt: recordedAt}

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quotedQuote(21405.44), nil)
		ledgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(installment, nil)
		ledgerRepo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.PaymentHistoryItem{installment}, nil)
		quoteRepo.EXPECT().UpdatePaymentSummary(gomock.Any(), "q-1", interfaces.PaymentSummary{
			TotalPaid:     300,
			LastPaymentAt: recordedAt,
			Status:        entities.PaymentStatusInstallments,
		}).Return(quotedQuote(21405.44), nil)

		if _, err := uc.AppendPayment(context.Background(), "q-1", AppendPaymentCommand{Type: entities.PaymentTypeInstallment, Amount: 300, InstallmentNumber: &n}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("final payment covering the total derives paid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockIPaymentHistoryRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestLedgerUseCase(ledgerRepo, quoteRepo)

		recordedAt := uc.now().UTC()
		deposit := entities.PaymentHistoryItem{ID: "p-1", QuoteID: "q-1", PaymentType: entities.PaymentTypeDeposit, Amount: 400, RecordedAt: recordedAt.Add(-time.Hour)}
		final := entities.PaymentHistoryItem{ID: "p-2", QuoteID: "q-1", PaymentType: entities.PaymentTypeFinal, Amount: 600, RecordedAt: recordedAt}

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quotedQuote(1000), nil)
		ledgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(final, nil)
		ledgerRepo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.PaymentHistoryItem{final, deposit}, nil)
		quoteRepo.EXPECT().UpdatePaymentSummary(gomock.Any(), "q-1", interfaces.PaymentSummary{
			TotalPaid:     1000,
			LastPaymentAt: recordedAt,
			Status:        entities.PaymentStatusPaid,
		}).Return(quotedQuote(1000), nil)

		if _, err := uc.AppendPayment(context.Background(), "q-1", AppendPaymentCommand{Type: entities.PaymentTypeFinal, Amount: 600}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("summary write failure is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockIPaymentHistoryRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestLedgerUseCase(ledgerRepo, quoteRepo)

		recordedAt := uc.now().UTC()
		deposit := entities.PaymentHistoryItem{ID: "p-1", QuoteID: "q-1", PaymentType: entities.PaymentTypeDeposit, Amount: 100, RecordedAt: recordedAt}

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quotedQuote(1000), nil)
		ledgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(deposit, nil)
		ledgerRepo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.PaymentHistoryItem{deposit}, nil)
		quoteRepo.EXPECT().UpdatePaymentSummary(gomock.Any(), "q-1", gomock.Any()).Return(entities.Quote{}, errors.New("db down"))

		if _, err := uc.AppendPayment(context.Background(), "q-1", AppendPaymentCommand{Type: entities.PaymentTypeDeposit, Amount: 100}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestPaymentLedgerUseCase_GetHistory(t *testing.T) {
	t.Run("blank quote id", func(t *testing.T) {
		uc := newTestLedgerUseCase(nil, nil)
		_, err := uc.GetHistory(context.Background(), " ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("passes through the ledger entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockIPaymentHistoryRepository(ctrl)
		uc := newTestLedgerUseCase(ledgerRepo, nil)

		want := []entities.PaymentHistoryItem{{ID: "p-2"}, {ID: "p-1"}}
		ledgerRepo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(want, nil)

		got, err := uc.GetHistory(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "p-2" {
			t.Fatalf("unexpected history %+v", got)
		}
	})
}

func TestPaymentLedgerUseCase_RecomputeTotal(t *testing.T) {
	t.Run("empty ledger keeps current status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockIPaymentHistoryRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestLedgerUseCase(ledgerRepo, quoteRepo)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quotedQuote(1000), nil)
		ledgerRepo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(nil, nil)
		quoteRepo.EXPECT().UpdatePaymentSummary(gomock.Any(), "q-1", interfaces.PaymentSummary{
			TotalPaid:     0,
			LastPaymentAt: time.Time{},
			Status:        entities.PaymentStatusQuoted,
		}).Return(quotedQuote(1000), nil)

		total, err := uc.RecomputeTotal(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 0 {
			t.Fatalf("expected zero total, got %.2f", total)
		}
	})

	t.Run("sums cents without float drift", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockIPaymentHistoryRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestLedgerUseCase(ledgerRepo, quoteRepo)

		recordedAt := uc.now().UTC()
		entries := []entities.PaymentHistoryItem{
			{ID: "p-3", PaymentType: entities.PaymentTypeInstallment, Amount: 0.1, RecordedAt: recordedAt},
			{ID: "p-2", PaymentType: entities.PaymentTypeInstallment, Amount: 0.2, RecordedAt: recordedAt.Add(-time.Hour)},
			{ID: "p-1", PaymentType: entities.PaymentTypeDeposit, Amount: 0.3, RecordedAt: recordedAt.Add(-2 * time.Hour)},
		}

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quotedQuote(1000), nil)
		ledgerRepo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(entries, nil)
		quoteRepo.EXPECT().UpdatePaymentSummary(gomock.Any(), "q-1", interfaces.PaymentSummary{
			TotalPaid:     0.6,
			LastPaymentAt: recordedAt,
			Status:        entities.PaymentStatusInstallments,
		}).Return(quotedQuote(1000), nil)

		total, err := uc.RecomputeTotal(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 0.6 {
			t.Fatalf("expected 0.60, got %v", total)
		}
	})
}
