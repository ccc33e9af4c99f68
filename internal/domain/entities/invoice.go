package entities

import "time"

// InvoiceStatus represents the payment-driven lifecycle of an invoice.
//
// Transitions: draft -> partial -> paid; draft/partial -> cancelled.
// paid and cancelled are terminal: no engine operation may move an invoice
// out of them.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusPartial   InvoiceStatus = "partial"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// Valid reports whether s is a known invoice status.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusPartial, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

// Closed reports whether s is terminal.
func (s InvoiceStatus) Closed() bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusCancelled
}

// Payment is one recorded payment against an invoice. Once appended it is
// immutable.
type Payment struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Reference string    `json:"reference"`
	Date      time.Time `json:"date"`
}

// StatusEntry is one entry in the invoice's status audit log.
type StatusEntry struct {
	Status    InvoiceStatus `json:"status"`
	Note      string        `json:"note"`
	Timestamp time.Time     `json:"timestamp"`
}

// InvoiceLine is a frozen line summary copied from the source quote at
// creation time. Later edits to the quote never touch it.
type InvoiceLine struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"` // "window" or "pressure"
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Minutes     float64 `json:"minutes"`
}

// Invoice is the aggregate root for billing. It is seeded once from a priced
// quote and then evolves independently via payments.
type Invoice struct {
	ID             string        `json:"id"`
	InvoiceNumber  string        `json:"invoice_number"`
	QuoteID        string        `json:"quote_id"`
	ClientName     string        `json:"client_name"`
	ClientLocation string        `json:"client_location"`
	Lines          []InvoiceLine `json:"lines"`
	Subtotal       float64       `json:"subtotal"`
	GST            float64       `json:"gst"`
	Total          float64       `json:"total"`
	AmountPaid     float64       `json:"amount_paid"`
	Balance        float64       `json:"balance"`
	Status         InvoiceStatus `json:"status"`
	Payments       []Payment     `json:"payments"`
	StatusHistory  []StatusEntry `json:"status_history"`
	InvoiceDate    time.Time     `json:"invoice_date"`
	DueDate        time.Time     `json:"due_date"`
}

// Overpaid reports whether recorded payments exceed the invoice total by more
// than a cent. Representable but flagged; status semantics clamp at paid.
func (i Invoice) Overpaid() bool {
	return i.AmountPaid-i.Total > 0.01
}

// NumberingSettings is the persisted invoice-numbering counter plus payment
// terms. NextInvoiceNumber is monotonic-only: no settings update may set it
// below its current value.
type NumberingSettings struct {
	InvoicePrefix     string `json:"invoice_prefix"`
	NextInvoiceNumber int64  `json:"next_invoice_number"`
	PaymentTermsDays  int    `json:"payment_terms_days"`
}

// DefaultNumberingSettings matches a fresh install.
func DefaultNumberingSettings() NumberingSettings {
	return NumberingSettings{
		InvoicePrefix:     "INV-",
		NextInvoiceNumber: 1001,
		PaymentTermsDays:  7,
	}
}
