package response

import (
	"time"

	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"
)

type PaymentResponse struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Reference string    `json:"reference,omitempty"`
	Date      time.Time `json:"date"`
}

type StatusEntryResponse struct {
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	Timestamp time.Time `json:"timestamp"`
}

type InvoiceLineResponse struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Minutes     float64 `json:"minutes"`
}

type InvoiceResponse struct {
	ID             string                `json:"id"`
	InvoiceNumber  string                `json:"invoice_number"`
	QuoteID        string                `json:"quote_id"`
	ClientName     string                `json:"client_name"`
	ClientLocation string                `json:"client_location"`
	Lines          []InvoiceLineResponse `json:"lines"`
	Subtotal       float64               `json:"subtotal"`
	GST            float64               `json:"gst"`
	Total          float64               `json:"total"`
	AmountPaid     float64               `json:"amount_paid"`
	Balance        float64               `json:"balance"`
	Overpaid       bool                  `json:"overpaid"`
	Status         string                `json:"status"`
	Payments       []PaymentResponse     `json:"payments"`
	StatusHistory  []StatusEntryResponse `json:"status_history"`
	InvoiceDate    time.Time             `json:"invoice_date"`
	DueDate        time.Time             `json:"due_date"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	lines := make([]InvoiceLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, InvoiceLineResponse{
			ID:          l.ID,
			Kind:        l.Kind,
			Description: l.Description,
			Amount:      l.Amount,
			Minutes:     l.Minutes,
		})
	}

	payments := make([]PaymentResponse, 0, len(inv.Payments))
	for _, p := range inv.Payments {
		payments = append(payments, PaymentResponse{
			ID:        p.ID,
			Amount:    p.Amount,
			Method:    p.Method,
			Reference: p.Reference,
			Date:      p.Date,
		})
	}

	history := make([]StatusEntryResponse, 0, len(inv.StatusHistory))
	for _, h := range inv.StatusHistory {
		history = append(history, StatusEntryResponse{
			Status:    string(h.Status),
			Note:      h.Note,
			Timestamp: h.Timestamp,
		})
	}

	return InvoiceResponse{
		ID:             inv.ID,
		InvoiceNumber:  inv.InvoiceNumber,
		QuoteID:        inv.QuoteID,
		ClientName:     inv.ClientName,
		ClientLocation: inv.ClientLocation,
		Lines:          lines,
		Subtotal:       inv.Subtotal,
		GST:            inv.GST,
		Total:          inv.Total,
		AmountPaid:     inv.AmountPaid,
		Balance:        inv.Balance,
		Overpaid:       inv.Overpaid(),
		Status:         string(inv.Status),
		Payments:       payments,
		StatusHistory:  history,
		InvoiceDate:    inv.InvoiceDate,
		DueDate:        inv.DueDate,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}

type NumberingResponse struct {
	InvoicePrefix     string `json:"invoice_prefix"`
	NextInvoiceNumber int64  `json:"next_invoice_number"`
	PaymentTermsDays  int    `json:"payment_terms_days"`
}

func FromNumbering(s entities.NumberingSettings) NumberingResponse {
	return NumberingResponse{
		InvoicePrefix:     s.InvoicePrefix,
		NextInvoiceNumber: s.NextInvoiceNumber,
		PaymentTermsDays:  s.PaymentTermsDays,
	}
}
