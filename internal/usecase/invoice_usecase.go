package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/catalog"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/pricing"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	ErrInvalidStatus        = errors.New("invalid invoice status")
	ErrInvoiceClosed        = errors.New("invoice is paid or cancelled")
	ErrCounterDecrease      = errors.New("invoice counter cannot decrease")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrGatewayDeclined      = errors.New("payment gateway declined the payment")
)

// PaymentInput is the caller-supplied part of a payment.
type PaymentInput struct {
	Amount    float64
	Method    string
	Reference string
}

// IInvoiceUseCase is the invoice lifecycle manager.
//
// Invoices are seeded once from a priced quote and then evolve independently
// via payments. paid and cancelled are terminal: operations on a closed
// invoice are refused rather than silently applied.
type IInvoiceUseCase interface {
	CreateFromQuote(ctx context.Context, quoteID string) (entities.Invoice, error)
	AddPayment(ctx context.Context, invoiceID string, in PaymentInput) (entities.Invoice, error)
	UpdateStatus(ctx context.Context, invoiceID string, status entities.InvoiceStatus, note string) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	GetNumbering(ctx context.Context) (entities.NumberingSettings, error)
	UpdateNumbering(ctx context.Context, s entities.NumberingSettings) (entities.NumberingSettings, error)
}

type InvoiceUseCase struct {
	repo      interfaces.IInvoiceRepository
	quoteRepo interfaces.IQuoteRepository
	numbering interfaces.INumberingRepository
	gateway   interfaces.IPaymentGateway
	calc      *pricing.Calculator
	cat       *catalog.Catalog
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	repo interfaces.IInvoiceRepository,
	quoteRepo interfaces.IQuoteRepository,
	numbering interfaces.INumberingRepository,
	gateway interfaces.IPaymentGateway,
	calc *pricing.Calculator,
	cat *catalog.Catalog,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		repo:      repo,
		quoteRepo: quoteRepo,
		numbering: numbering,
		gateway:   gateway,
		calc:      calc,
		cat:       cat,
	}
}

// CreateFromQuote snapshots the quote's current pricing into a frozen,
// numbered invoice. Later edits to the source quote do not touch it.
// Creation is refused when the quote has no line items.
func (u *InvoiceUseCase) CreateFromQuote(ctx context.Context, quoteID string) (entities.Invoice, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Invoice{}, ErrInvalidQuoteID
	}

	quote, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if quote.ID == "" {
		return entities.Invoice{}, ErrQuoteNotFound
	}
	if quote.LineCount() == 0 {
		log.Printf("[invoice][usecase] refusing invoice for empty quote quote_id=%s", quoteID)
		return entities.Invoice{}, ErrQuoteHasNoLines
	}

	settings, err := u.numbering.Next(ctx)
	if err != nil {
		return entities.Invoice{}, err
	}
	number := fmt.Sprintf("%s%d", settings.InvoicePrefix, settings.NextInvoiceNumber)

	breakdown := u.calc.Aggregate(quote.WindowLines, quote.PressureLines, quote.Pricing)
	cfg := pricing.NormalizeConfig(quote.Pricing)

	lines := make([]entities.InvoiceLine, 0, quote.LineCount())
	for _, l := range quote.WindowLines {
		lines = append(lines, entities.InvoiceLine{
			ID:          l.ID,
			Kind:        "window",
			Description: u.describeWindowLine(l),
			Amount:      u.calc.WindowLineCost(l, cfg),
			Minutes:     u.calc.WindowLineTime(l, cfg.InsideMultiplier, cfg.OutsideMultiplier),
		})
	}
	for _, l := range quote.PressureLines {
		lines = append(lines, entities.InvoiceLine{
			ID:          l.ID,
			Kind:        "pressure",
			Description: u.describePressureLine(l),
			Amount:      u.calc.PressureLineCost(l, cfg),
			Minutes:     u.calc.PressureLineTime(l),
		})
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:             uuid.NewString(),
		InvoiceNumber:  number,
		QuoteID:        quote.ID,
		ClientName:     quote.Client.Name,
		ClientLocation: quote.Client.Location,
		Lines:          lines,
		Subtotal:       breakdown.Money.Total,
		GST:            breakdown.Money.GST,
		Total:          breakdown.Money.TotalIncGST,
		AmountPaid:     0,
		Balance:        breakdown.Money.TotalIncGST,
		Status:         entities.InvoiceStatusDraft,
		Payments:       []entities.Payment{},
		StatusHistory: []entities.StatusEntry{
			{Status: entities.InvoiceStatusDraft, Note: "Invoice created", Timestamp: now},
		},
		InvoiceDate: now,
		DueDate:     now.AddDate(0, 0, settings.PaymentTermsDays),
	}

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	log.Printf("[invoice][usecase] invoice created number=%s quote_id=%s total=%.2f", created.InvoiceNumber, quoteID, created.Total)
	return created, nil
}

// AddPayment records a payment and derives the new status. Non-positive
// amounts are rejected; payments against paid or cancelled invoices are
// refused. Card payments are charged through the gateway first; the provider
// payment id becomes the reference when none is supplied.
func (u *InvoiceUseCase) AddPayment(ctx context.Context, invoiceID string, in PaymentInput) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.Status.Closed() {
		log.Printf("[invoice][usecase] payment refused on closed invoice number=%s status=%s", inv.InvoiceNumber, inv.Status)
		return entities.Invoice{}, ErrInvoiceClosed
	}

	amount := pricing.RoundMoney(in.Amount)
	if !(amount > 0) {
		return entities.Invoice{}, ErrInvalidPaymentAmount
	}

	method := strings.TrimSpace(in.Method)
	if method == "" {
		method = "cash"
	}
	reference := strings.TrimSpace(in.Reference)

	if method == "card" {
		providerID, err := u.chargeCard(ctx, inv, amount)
		if err != nil {
			return entities.Invoice{}, err
		}
		if reference == "" {
			reference = providerID
		}
	}

	now := time.Now().UTC()
	payment := entities.Payment{
		ID:        uuid.NewString(),
		Amount:    amount,
		Method:    method,
		Reference: reference,
		Date:      now,
	}
	inv.Payments = append(inv.Payments, payment)

	var paid float64
	for _, p := range inv.Payments {
		paid += p.Amount
	}
	inv.AmountPaid = pricing.RoundMoney(paid)
	inv.Balance = pricing.RoundMoney(inv.Total - inv.AmountPaid)

	note := fmt.Sprintf("Payment of $%.2f received (%s)", amount, method)
	if inv.Balance <= 0.01 {
		inv.Status = entities.InvoiceStatusPaid
		note += " - fully paid"
	} else {
		inv.Status = entities.InvoiceStatusPartial
	}
	inv.StatusHistory = append(inv.StatusHistory, entities.StatusEntry{
		Status:    inv.Status,
		Note:      note,
		Timestamp: now,
	})

	updated, err := u.repo.Update(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	log.Printf("[invoice][usecase] payment recorded number=%s amount=%.2f balance=%.2f status=%s", updated.InvoiceNumber, amount, updated.Balance, updated.Status)
	return updated, nil
}

// UpdateStatus is the manual override path (cancellation and the like).
// Closed invoices stay closed.
func (u *InvoiceUseCase) UpdateStatus(ctx context.Context, invoiceID string, status entities.InvoiceStatus, note string) (entities.Invoice, error) {
	if !status.Valid() {
		return entities.Invoice{}, ErrInvalidStatus
	}

	inv, err := u.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.Status.Closed() {
		return entities.Invoice{}, ErrInvoiceClosed
	}

	if strings.TrimSpace(note) == "" {
		note = fmt.Sprintf("Status changed to %s", status)
	}
	inv.Status = status
	inv.StatusHistory = append(inv.StatusHistory, entities.StatusEntry{
		Status:    status,
		Note:      note,
		Timestamp: time.Now().UTC(),
	})

	updated, err := u.repo.Update(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return updated, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) List(ctx context.Context) ([]entities.Invoice, error) {
	return u.repo.List(ctx)
}

func (u *InvoiceUseCase) GetNumbering(ctx context.Context) (entities.NumberingSettings, error) {
	return u.numbering.Get(ctx)
}

// UpdateNumbering changes the prefix, payment terms and the next invoice
// number. The counter is monotonic-only; attempts to lower it are refused.
func (u *InvoiceUseCase) UpdateNumbering(ctx context.Context, s entities.NumberingSettings) (entities.NumberingSettings, error) {
	current, err := u.numbering.Get(ctx)
	if err != nil {
		return entities.NumberingSettings{}, err
	}
	if s.NextInvoiceNumber < current.NextInvoiceNumber {
		return entities.NumberingSettings{}, ErrCounterDecrease
	}
	if s.PaymentTermsDays < 0 {
		s.PaymentTermsDays = 0
	}
	if strings.TrimSpace(s.InvoicePrefix) == "" {
		s.InvoicePrefix = current.InvoicePrefix
	}
	return u.numbering.Update(ctx, s)
}

func (u *InvoiceUseCase) chargeCard(ctx context.Context, inv entities.Invoice, amount float64) (string, error) {
	if u.gateway == nil {
		return "", ErrGatewayNotConfigured
	}

	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, interfaces.ChargeRequest{
		Amount:      amount,
		Description: fmt.Sprintf("Invoice %s", inv.InvoiceNumber),
		Reference:   inv.ID,
	})
	if err != nil {
		log.Printf("[invoice][usecase] gateway charge failed number=%s err=%v", inv.InvoiceNumber, err)
		return "", err
	}
	if providerStatus != "approved" {
		log.Printf("[invoice][usecase] gateway declined number=%s provider_status=%s", inv.InvoiceNumber, providerStatus)
		return "", ErrGatewayDeclined
	}
	return providerID, nil
}

func (u *InvoiceUseCase) describeWindowLine(l entities.WindowLine) string {
	label := l.WindowTypeID
	if t, ok := u.cat.WindowType(l.WindowTypeID); ok {
		label = t.Label
	}

	var sides string
	switch {
	case l.Inside && l.Outside:
		sides = "inside & outside"
	case l.Inside:
		sides = "inside only"
	case l.Outside:
		sides = "outside only"
	default:
		sides = "no sides selected"
	}

	desc := fmt.Sprintf("%s - %d panes, %s", label, l.Panes, sides)
	if l.HighReach {
		desc += ", high reach"
	}
	return desc
}

func (u *InvoiceUseCase) describePressureLine(l entities.PressureLine) string {
	label := l.SurfaceID
	if s, ok := u.cat.PressureSurface(l.SurfaceID); ok {
		label = s.Label
	}
	return fmt.Sprintf("%s - %.1f sqm", label, l.AreaSqm)
}
