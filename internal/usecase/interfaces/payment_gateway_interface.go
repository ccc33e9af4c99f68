package interfaces

import (
	"context"
	"encoding/json"
)

// ChargeRequest is the provider-agnostic input for one card charge. It is
// assembled server-side from invoice data; clients never submit raw provider
// payloads.
type ChargeRequest struct {
	Amount      float64
	Description string
	Reference   string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Card payments are charged through it before being recorded on the invoice;
// the provider response payload is kept for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, charge ChargeRequest) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
