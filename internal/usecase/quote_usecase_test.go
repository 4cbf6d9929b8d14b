package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gardenroom-billing/internal/domain/entities"
	"gardenroom-billing/internal/domain/pricing"
	"gardenroom-billing/internal/usecase/interfaces"
	mock_interfaces "gardenroom-billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validConfiguration() entities.BuildingConfiguration {
	return entities.BuildingConfiguration{
		WidthM:        4,
		DepthM:        3,
		HalfBathrooms: 1,
		WallFinish:    entities.WallFinishNone,
		FloorType:     entities.FloorTypeWooden,
		FloorAreaSqm:  12,
	}
}

func newTestQuoteUseCase(repo interfaces.IQuoteRepository, seq interfaces.ISequenceRepository) *QuoteUseCase {
	uc := NewQuoteUseCase(repo, pricing.NewEstimator(pricing.DefaultPriceList()), NewQuoteNumberAllocator(seq))
	uc.now = func() time.Time { return time.Date(2025, time.November, 3, 10, 0, 0, 0, time.UTC) }
	if uc.allocator != nil {
		uc.allocator.now = uc.now
	}
	return uc
}

func TestQuoteUseCase_PriceConfiguration(t *testing.T) {
	t.Run("invalid configuration returns every violation", func(t *testing.T) {
		uc := newTestQuoteUseCase(nil, nil)
		cfg := validConfiguration()
		cfg.WidthM = 0.5
		cfg.Switches = -1
		cfg.FloorType = "carpet"

		_, err := uc.PriceConfiguration(context.Background(), cfg, true)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if got := len(vErr.Result.Errors); got != 3 {
			t.Fatalf("expected 3 violations, got %d: %+v", got, vErr.Result.Errors)
		}
	})

	t.Run("without VAT", func(t *testing.T) {
		uc := newTestQuoteUseCase(nil, nil)
		bd, err := uc.PriceConfiguration(context.Background(), validConfiguration(), false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bd.VATAmount != 0 {
			t.Fatalf("expected zero VAT, got %.2f", bd.VATAmount)
		}
		if bd.Total != bd.Subtotal {
			t.Fatalf("expected total == subtotal, got %.2f vs %.2f", bd.Total, bd.Subtotal)
		}
	})

	t.Run("with VAT", func(t *testing.T) {
		uc := newTestQuoteUseCase(nil, nil)
		bd, err := uc.PriceConfiguration(context.Background(), validConfiguration(), true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bd.VATAmount <= 0 {
			t.Fatalf("expected positive VAT, got %.2f", bd.VATAmount)
		}
	})
}

func TestQuoteUseCase_CreateQuote(t *testing.T) {
	t.Run("missing customer name", func(t *testing.T) {
		uc := newTestQuoteUseCase(nil, nil)
		_, err := uc.CreateQuote(context.Background(), CreateQuoteCommand{
			Customer:      entities.CustomerContact{Name: "   ", Email: "a@b.ie"},
			Configuration: validConfiguration(),
		})
		if !errors.Is(err, ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
	})

	t.Run("invalid configuration", func(t *testing.T) {
		uc := newTestQuoteUseCase(nil, nil)
		cfg := validConfiguration()
		cfg.DeliveryDistanceKm = -5
		_, err := uc.CreateQuote(context.Background(), CreateQuoteCommand{
			Customer:      entities.CustomerContact{Name: "Aoife Byrne", Email: "aoife@example.ie"},
			Configuration: cfg,
		})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("allocation failure wraps conflict sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := newTestQuoteUseCase(nil, seq)

		seq.EXPECT().Next(gomock.Any(), "quote-2025-Q4").Return(int64(0), errors.New("throttled"))

		_, err := uc.CreateQuote(context.Background(), CreateQuoteCommand{
			Customer:      entities.CustomerContact{Name: "Aoife Byrne", Email: "aoife@example.ie"},
			Configuration: validConfiguration(),
		})
		if !errors.Is(err, ErrAllocationConflict) {
			t.Fatalf("expected ErrAllocationConflict, got %v", err)
		}
	})

	t.Run("repo failure keeps the sequence gap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := newTestQuoteUseCase(repo, seq)

		seq.EXPECT().Next(gomock.Any(), "quote-2025-Q4").Return(int64(8), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("db down"))

		_, err := uc.CreateQuote(context.Background(), CreateQuoteCommand{
			Customer:      entities.CustomerContact{Name: "Aoife Byrne", Email: "aoife@example.ie"},
			Configuration: validConfiguration(),
		})
		if err == nil || !strings.Contains(err.Error(), "create quote") {
			t.Fatalf("expected wrapped create error, got %v", err)
		}
	})

	t.Run("success snapshots breakdown and allocates number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := newTestQuoteUseCase(repo, seq)

		seq.EXPECT().Next(gomock.Any(), "quote-2025-Q4").Return(int64(7), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.QuoteNumber != "Q4-2025-00007" {
					t.Fatalf("unexpected quote number %q", q.QuoteNumber)
				}
				if q.ID == "" {
					t.Fatal("expected generated id")
				}
				if q.PaymentStatus != entities.PaymentStatusQuoted {
					t.Fatalf("expected status quoted, got %s", q.PaymentStatus)
				}
				if q.TotalPaid != 0 {
					t.Fatalf("expected zero total paid, got %.2f", q.TotalPaid)
				}
				if q.Breakdown.VATAmount <= 0 {
					t.Fatal("expected VAT-inclusive breakdown snapshot")
				}
				if !q.ExpiresAt.After(q.CreatedAt) {
					t.Fatal("expected expiry after creation time")
				}
				if q.Customer.Name != "Aoife Byrne" {
					t.Fatalf("expected trimmed customer name, got %q", q.Customer.Name)
				}
				return q, nil
			})

		created, err := uc.CreateQuote(context.Background(), CreateQuoteCommand{
			Customer:      entities.CustomerContact{Name: "  Aoife Byrne ", Email: " aoife@example.ie "},
			Configuration: validConfiguration(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.QuoteNumber != "Q4-2025-00007" {
			t.Fatalf("unexpected quote number %q", created.QuoteNumber)
		}
	})
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := newTestQuoteUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.GetByID(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)

		q, err := uc.GetByID(context.Background(), " q-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID != "q-1" {
			t.Fatalf("unexpected quote %+v", q)
		}
	})
}

func TestQuoteUseCase_GetByQuoteNumber(t *testing.T) {
	t.Run("malformed number", func(t *testing.T) {
		uc := newTestQuoteUseCase(nil, nil)
		for _, n := range []string{"", "Q5-2025-00001", "Q1-25-00001", "Q1-2025-001", "q1-2025-00001"} {
			if _, err := uc.GetByQuoteNumber(context.Background(), n); !errors.Is(err, ErrInvalidQuoteNumber) {
				t.Fatalf("number %q: expected ErrInvalidQuoteNumber, got %v", n, err)
			}
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo, nil)

		repo.EXPECT().GetByQuoteNumber(gomock.Any(), "Q4-2025-00007").Return(entities.Quote{}, nil)

		_, err := uc.GetByQuoteNumber(context.Background(), "Q4-2025-00007")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_List(t *testing.T) {
	t.Run("unknown status filter", func(t *testing.T) {
		uc := newTestQuoteUseCase(nil, nil)
		_, err := uc.List(context.Background(), interfaces.QuoteFilter{Status: "bogus"})
		if !errors.Is(err, ErrUnknownPaymentStatus) {
			t.Fatalf("expected ErrUnknownPaymentStatus, got %v", err)
		}
	})

	t.Run("defaults and caps paging", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any(), interfaces.QuoteFilter{Page: 1, PageSize: 20}).Return(nil, nil)
		repo.EXPECT().List(gomock.Any(), interfaces.QuoteFilter{Page: 3, PageSize: 100}).Return(nil, nil)

		if _, err := uc.List(context.Background(), interfaces.QuoteFilter{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.List(context.Background(), interfaces.QuoteFilter{Page: 3, PageSize: 500}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_UpdateStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := newTestQuoteUseCase(nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "q-1", "bogus")
		if !errors.Is(err, ErrUnknownPaymentStatus) {
			t.Fatalf("expected ErrUnknownPaymentStatus, got %v", err)
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", PaymentStatus: entities.PaymentStatusQuoted}, nil)

		_, err := uc.UpdateStatus(context.Background(), "q-1", entities.PaymentStatusPaid)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("legal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", PaymentStatus: entities.PaymentStatusQuoted}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.PaymentStatusOverdue).
			Return(entities.Quote{ID: "q-1", PaymentStatus: entities.PaymentStatusOverdue}, nil)

		q, err := uc.UpdateStatus(context.Background(), "q-1", entities.PaymentStatusOverdue)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.PaymentStatus != entities.PaymentStatusOverdue {
			t.Fatalf("unexpected status %s", q.PaymentStatus)
		}
	})

	t.Run("same status is a no-op transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newTestQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", PaymentStatus: entities.PaymentStatusQuoted}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.PaymentStatusQuoted).
			Return(entities.Quote{ID: "q-1", PaymentStatus: entities.PaymentStatusQuoted}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "q-1", entities.PaymentStatusQuoted); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
