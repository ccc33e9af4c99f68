package request

import "strings"

// PaymentRequest records a payment against an invoice.
type PaymentRequest struct {
	Amount    float64 `json:"amount" binding:"required"`
	Method    string  `json:"method"`
	Reference string  `json:"reference"`
}

func (r PaymentRequest) ResolveMethod() string {
	return strings.ToLower(strings.TrimSpace(r.Method))
}

// StatusRequest is the manual status override payload.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

func (r StatusRequest) ResolveStatus() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}

// NumberingRequest updates invoice numbering settings.
type NumberingRequest struct {
	InvoicePrefix     string `json:"invoice_prefix"`
	NextInvoiceNumber int64  `json:"next_invoice_number" binding:"required"`
	PaymentTermsDays  int    `json:"payment_terms_days"`
}
