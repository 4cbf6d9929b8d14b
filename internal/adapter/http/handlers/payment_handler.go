package handlers

import (
	"errors"
	"log"
	"net/http"

	request "gardenroom-billing/internal/adapter/http/dto/request"
	response "gardenroom-billing/internal/adapter/http/dto/response"
	"gardenroom-billing/internal/usecase"
	"gardenroom-billing/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for a quote's payment ledger.

type PaymentHandler struct {
	usecase usecase.IPaymentLedgerUseCase
}

func NewPaymentHandler(uc usecase.IPaymentLedgerUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// AppendPayment records one ledger entry and refreshes the quote's
// payment summary.
//
// @Summary  Record a payment against a quote
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    id      path string true "quote id"
// @Param    payload body request.AppendPaymentRequest true "ledger entry"
// @Success  201 {object} response.PaymentHistoryItemResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id}/payments [post]
func (h *PaymentHandler) AppendPayment(c *gin.Context) {
	quoteID := c.Param("id")

	var payload request.AppendPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.AppendPayment(c.Request.Context(), quoteID, payload.ToCommand())
	if err != nil {
		log.Printf("[ledger][handler] append failed quote_id=%s err=%v", quoteID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPaymentHistoryItem(created))
}

// GetHistory returns the quote's ledger entries, newest first.
//
// @Summary  List a quote's payment history
// @Tags     payments
// @Produce  json
// @Param    id path string true "quote id"
// @Success  200 {array} response.PaymentHistoryItemResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /quotes/{id}/payments [get]
func (h *PaymentHandler) GetHistory(c *gin.Context) {
	items, err := h.usecase.GetHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentHistory(items))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidPaymentType),
		errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
