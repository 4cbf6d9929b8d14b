package routes

import (
	"gardenroom-billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, paymentHandler *handlers.PaymentHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/estimate", quoteHandler.EstimateQuote)
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/number/:number", quoteHandler.GetQuoteByNumber)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id/status", quoteHandler.UpdateQuoteStatus)

		quotes.POST("/:id/payments", paymentHandler.AppendPayment)
		quotes.GET("/:id/payments", paymentHandler.GetHistory)
	}
}
