package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gardenroom-billing/internal/adapter/http/handlers/mocks"
	"gardenroom-billing/internal/domain/entities"
	"gardenroom-billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_AppendPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentLedgerUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/payments", h.AppendPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payment type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentLedgerUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/payments", h.AppendPayment)

		uc.EXPECT().AppendPayment(gomock.Any(), "q-1", gomock.Any()).Return(entities.PaymentHistoryItem{}, usecase.ErrInvalidPaymentType)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/payments", bytes.NewBufferString(`{"payment_type":"CASHBACK","amount":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentLedgerUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/payments", h.AppendPayment)

		uc.EXPECT().AppendPayment(gomock.Any(), "q-missing", gomock.Any()).Return(entities.PaymentHistoryItem{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-missing/payments", bytes.NewBufferString(`{"payment_type":"DEPOSIT","amount":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentLedgerUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/payments", h.AppendPayment)

		recordedAt := time.Date(2025, time.November, 3, 10, 0, 0, 0, time.UTC)
		uc.EXPECT().AppendPayment(gomock.Any(), "q-1", usecase.AppendPaymentCommand{
			Type:   entities.PaymentTypeDeposit,
			Amount: 1000,
			Note:   "bank transfer",
		}).Return(entities.PaymentHistoryItem{
			ID:          "p-1",
			QuoteID:     "q-1",
			PaymentType: entities.PaymentTypeDeposit,
			Amount:      1000,
			Note:        "bank transfer",
			RecordedAt:  recordedAt,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/payments", bytes.NewBufferString(`{"payment_type":"DEPOSIT","amount":1000,"note":"bank transfer"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			ID          string  `json:"id"`
			QuoteID     string  `json:"quote_id"`
			PaymentType string  `json:"payment_type"`
			Amount      float64 `json:"amount"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.ID != "p-1" || body.QuoteID != "q-1" || body.PaymentType != "DEPOSIT" || body.Amount != 1000 {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestPaymentHandler_GetHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns entries newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentLedgerUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id/payments", h.GetHistory)

		now := time.Date(2025, time.November, 3, 10, 0, 0, 0, time.UTC)
		uc.EXPECT().GetHistory(gomock.Any(), "q-1").Return([]entities.PaymentHistoryItem{
			{ID: "p-2", QuoteID: "q-1", PaymentType: entities.PaymentTypeRefund, Amount: -200, RecordedAt: now},
			{ID: "p-1", QuoteID: "q-1", PaymentType: entities.PaymentTypeDeposit, Amount: 1000, RecordedAt: now.Add(-time.Hour)},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []struct {
			ID     string  `json:"id"`
			Amount float64 `json:"amount"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 2 || body[0].ID != "p-2" || body[1].ID != "p-1" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("empty history is an empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentLedgerUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id/payments", h.GetHistory)

		uc.EXPECT().GetHistory(gomock.Any(), "q-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Body.String(); got != "[]" {
			t.Fatalf("expected empty array, got %q", got)
		}
	})
}
