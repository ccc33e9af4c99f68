package response

import (
	"testing"

	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"
)

func TestFromInvoice(t *testing.T) {
	inv := entities.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "INV-1001",
		QuoteID:       "q-1",
		Lines: []entities.InvoiceLine{
			{ID: "wl-1", Kind: "window", Description: "Standard 1x2 - 4 panes, inside only", Amount: 12, Minutes: 14},
		},
		Subtotal:   500,
		GST:        50,
		Total:      550,
		AmountPaid: 300,
		Balance:    250,
		Status:     entities.InvoiceStatusPartial,
		Payments: []entities.Payment{
			{ID: "p-1", Amount: 300, Method: "cash"},
		},
		StatusHistory: []entities.StatusEntry{
			{Status: entities.InvoiceStatusDraft, Note: "Invoice created"},
		},
	}

	resp := FromInvoice(inv)

	if resp.InvoiceNumber != "INV-1001" || resp.Status != "partial" {
		t.Fatalf("unexpected mapping: %+v", resp)
	}
	if len(resp.Lines) != 1 || resp.Lines[0].Kind != "window" {
		t.Fatalf("lines not mapped: %+v", resp.Lines)
	}
	if len(resp.Payments) != 1 || resp.Payments[0].Amount != 300 {
		t.Fatalf("payments not mapped: %+v", resp.Payments)
	}
	if resp.Overpaid {
		t.Fatal("invoice is not overpaid")
	}

	inv.AmountPaid = 551
	if resp := FromInvoice(inv); !resp.Overpaid {
		t.Fatal("expected overpaid flag")
	}
}
