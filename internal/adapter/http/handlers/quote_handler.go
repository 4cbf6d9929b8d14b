package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "gardenroom-billing/internal/adapter/http/dto/request"
	response "gardenroom-billing/internal/adapter/http/dto/response"
	"gardenroom-billing/internal/domain/entities"
	"gardenroom-billing/internal/usecase"
	"gardenroom-billing/internal/usecase/interfaces"
	"gardenroom-billing/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for quotes: wizard estimates, quote
// submission and back-office lookups.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// EstimateQuote prices a configuration without persisting anything.
//
// @Summary  Price a building configuration
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    payload body request.EstimateRequest true "configuration to price"
// @Success  200 {object} response.BreakdownResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Router   /quotes/estimate [post]
func (h *QuoteHandler) EstimateQuote(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	breakdown, err := h.usecase.PriceConfiguration(c.Request.Context(), payload.Configuration.ToEntity(), payload.ResolveIncludeVAT())
	if err != nil {
		writeQuoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromBreakdown(breakdown))
}

// CreateQuote submits a configuration as a persisted quote: the estimate
// is computed and the quote number allocated at creation time.
//
// @Summary  Create a quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateQuoteRequest true "quote submission"
// @Success  201 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Router   /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), usecase.CreateQuoteCommand{
		Customer:             payload.Customer.ToEntity(),
		Configuration:        payload.Configuration.ToEntity(),
		ExpectedInstallments: payload.ExpectedInstallments,
	})
	if err != nil {
		writeQuoteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// GetQuote returns one quote by id.
//
// @Summary  Get a quote
// @Tags     quotes
// @Produce  json
// @Param    id path string true "quote id"
// @Success  200 {object} response.QuoteResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// GetQuoteByNumber returns one quote by its human-readable number.
//
// @Summary  Get a quote by quote number
// @Tags     quotes
// @Produce  json
// @Param    number path string true "quote number, e.g. Q1-2025-00007"
// @Success  200 {object} response.QuoteResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/number/{number} [get]
func (h *QuoteHandler) GetQuoteByNumber(c *gin.Context) {
	quote, err := h.usecase.GetByQuoteNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ListQuotes returns quotes newest first, optionally filtered by payment
// status.
//
// @Summary  List quotes
// @Tags     quotes
// @Produce  json
// @Param    status    query string false "payment status filter"
// @Param    page      query int    false "page (1-based)"
// @Param    page_size query int    false "page size (max 100)"
// @Success  200 {array} response.QuoteResponse
// @Router   /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))

	quotes, err := h.usecase.List(c.Request.Context(), interfaces.QuoteFilter{
		Status:   entities.PaymentStatus(c.Query("status")),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// UpdateQuoteStatus applies a back-office payment status transition.
//
// @Summary  Update a quote's payment status
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id      path string true "quote id"
// @Param    payload body request.UpdateQuoteStatusRequest true "new status"
// @Success  200 {object} response.QuoteResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes/{id}/status [patch]
func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	var payload request.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.PaymentStatus(payload.Status))
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func writeQuoteError(c *gin.Context, err error) {
	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		appErr := pkg.NewDomainErrorSimple("CONFIGURATION_INVALID", "Configuration failed validation", http.StatusUnprocessableEntity)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails(vErr.Result.Errors))
		return
	}
	appErr := mapQuoteError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidQuoteNumber),
		errors.Is(err, usecase.ErrInvalidCustomer),
		errors.Is(err, usecase.ErrUnknownPaymentStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Payment status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrAllocationConflict):
		return pkg.NewDomainError("ALLOCATION_CONFLICT", "Quote number allocation failed, retry", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
