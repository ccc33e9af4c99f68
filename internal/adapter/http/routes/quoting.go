package routes

import (
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog  = "/catalog"
	PathQuotes   = "/quotes"
	PathInvoices = "/invoices"
)

func addQuotingRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, quoteHandler *handlers.QuoteHandler, invoiceHandler *handlers.InvoiceHandler) {
	rg.GET(PathCatalog, catalogHandler.GetCatalog)

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/price", quoteHandler.PriceQuote)
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.PUT("/:quote_id", quoteHandler.UpdateQuote)
		quotes.POST("/:quote_id/duplicate", quoteHandler.DuplicateQuote)
	}

	invoices := rg.Group(PathInvoices)
	{
		// Settings routes are registered before the :invoice_id routes so
		// "settings" is never captured as an id.
		invoices.GET("/settings/numbering", invoiceHandler.GetNumbering)
		invoices.PUT("/settings/numbering", invoiceHandler.UpdateNumbering)

		invoices.POST("/from-quote/:quote_id", invoiceHandler.CreateFromQuote)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:invoice_id", invoiceHandler.GetInvoice)
		invoices.POST("/:invoice_id/payments", invoiceHandler.AddPayment)
		invoices.PATCH("/:invoice_id/status", invoiceHandler.UpdateStatus)
	}
}
