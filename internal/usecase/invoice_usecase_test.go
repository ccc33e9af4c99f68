package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/catalog"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/pricing"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/usecase/interfaces"
	mock_interfaces "github.com/925PRESSUREGLASS/webapp-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newInvoiceUseCaseForTest(
	t *testing.T,
	ctrl *gomock.Controller,
) (*InvoiceUseCase, *mock_interfaces.MockIInvoiceRepository, *mock_interfaces.MockIQuoteRepository, *mock_interfaces.MockINumberingRepository, *mock_interfaces.MockIPaymentGateway) {
	t.Helper()
	repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	numbering := mock_interfaces.NewMockINumberingRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	cat := catalog.New()
	uc := NewInvoiceUseCase(repo, quoteRepo, numbering, gateway, pricing.NewCalculator(cat), cat)
	return uc, repo, quoteRepo, numbering, gateway
}

func testQuote() entities.Quote {
	return entities.Quote{
		ID:      "q-1",
		Title:   "Smith residence",
		Client:  entities.ClientDetails{Name: "Jo Smith", Location: "12 High St"},
		Pricing: entities.DefaultPricingConfig(),
		WindowLines: []entities.WindowLine{
			{ID: "wl-1", WindowTypeID: "std2", Panes: 10, Inside: true, Outside: true},
		},
		PressureLines: []entities.PressureLine{
			{ID: "pl-1", SurfaceID: "driveway", AreaSqm: 30},
		},
	}
}

func TestInvoiceUseCase_CreateFromQuote(t *testing.T) {
	t.Run("empty quote id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _ := newInvoiceUseCaseForTest(t, ctrl)

		_, err := uc.CreateFromQuote(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, quoteRepo, _, _ := newInvoiceUseCaseForTest(t, ctrl)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-404").Return(entities.Quote{}, nil)

		_, err := uc.CreateFromQuote(context.Background(), "q-404")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("quote without lines is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, quoteRepo, _, _ := newInvoiceUseCaseForTest(t, ctrl)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)

		_, err := uc.CreateFromQuote(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteHasNoLines) {
			t.Fatalf("expected ErrQuoteHasNoLines, got %v", err)
		}
	})

	t.Run("freezes lines and allocates a number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, quoteRepo, numbering, _ := newInvoiceUseCaseForTest(t, ctrl)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(testQuote(), nil)
		numbering.EXPECT().Next(gomock.Any()).Return(entities.NumberingSettings{
			InvoicePrefix: "INV-", NextInvoiceNumber: 1001, PaymentTermsDays: 7,
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				return inv, nil
			})

		inv, err := uc.CreateFromQuote(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if inv.InvoiceNumber != "INV-1001" {
			t.Fatalf("invoice number = %q, want INV-1001", inv.InvoiceNumber)
		}
		if inv.Status != entities.InvoiceStatusDraft {
			t.Fatalf("status = %q, want draft", inv.Status)
		}
		if len(inv.Lines) != 2 {
			t.Fatalf("expected 2 frozen lines, got %d", len(inv.Lines))
		}
		if inv.Lines[0].Kind != "window" || inv.Lines[1].Kind != "pressure" {
			t.Fatalf("unexpected line kinds: %+v", inv.Lines)
		}
		if inv.Lines[0].Description == "" || inv.Lines[0].Amount <= 0 {
			t.Fatalf("window line not described/priced: %+v", inv.Lines[0])
		}
		if inv.ClientName != "Jo Smith" || inv.QuoteID != "q-1" {
			t.Fatalf("client/quote fields wrong: %+v", inv)
		}
		if inv.Total <= inv.Subtotal || inv.Balance != inv.Total {
			t.Fatalf("totals wrong: subtotal=%v gst=%v total=%v balance=%v", inv.Subtotal, inv.GST, inv.Total, inv.Balance)
		}
		if got := inv.DueDate.Sub(inv.InvoiceDate); got != 7*24*time.Hour {
			t.Fatalf("due date offset = %v, want 7 days", got)
		}
		if len(inv.StatusHistory) != 1 || inv.StatusHistory[0].Note != "Invoice created" {
			t.Fatalf("unexpected status history: %+v", inv.StatusHistory)
		}
	})

	t.Run("numbers increase across invoices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, quoteRepo, numbering, _ := newInvoiceUseCaseForTest(t, ctrl)

		counter := int64(1001)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(testQuote(), nil).Times(3)
		numbering.EXPECT().Next(gomock.Any()).DoAndReturn(
			func(context.Context) (entities.NumberingSettings, error) {
				s := entities.NumberingSettings{InvoicePrefix: "INV-", NextInvoiceNumber: counter, PaymentTermsDays: 7}
				counter++
				return s, nil
			}).Times(3)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				return inv, nil
			}).Times(3)

		for i := 0; i < 3; i++ {
			inv, err := uc.CreateFromQuote(context.Background(), "q-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want := fmt.Sprintf("INV-%d", 1001+i); inv.InvoiceNumber != want {
				t.Fatalf("invoice number = %q, want %q", inv.InvoiceNumber, want)
			}
		}
		if counter != 1004 {
			t.Fatalf("counter = %d, want 1004", counter)
		}
	})
}

func TestInvoiceUseCase_AddPayment(t *testing.T) {
	baseInvoice := func() entities.Invoice {
		return entities.Invoice{
			ID:            "inv-1",
			InvoiceNumber: "INV-1001",
			Total:         550.00,
			Balance:       550.00,
			Status:        entities.InvoiceStatusDraft,
			Payments:      []entities.Payment{},
		}
	}

	t.Run("partial then paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newInvoiceUseCaseForTest(t, ctrl)

		stored := baseInvoice()
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").DoAndReturn(
			func(context.Context, string) (entities.Invoice, error) { return stored, nil }).Times(2)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				stored = inv
				return inv, nil
			}).Times(2)

		inv, err := uc.AddPayment(context.Background(), "inv-1", PaymentInput{Amount: 300, Method: "bank transfer"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Status != entities.InvoiceStatusPartial {
			t.Fatalf("status = %q, want partial", inv.Status)
		}
		if inv.AmountPaid != 300.00 || inv.Balance != 250.00 {
			t.Fatalf("paid=%v balance=%v, want 300/250", inv.AmountPaid, inv.Balance)
		}

		inv, err = uc.AddPayment(context.Background(), "inv-1", PaymentInput{Amount: 250, Method: "cash"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Status != entities.InvoiceStatusPaid {
			t.Fatalf("status = %q, want paid", inv.Status)
		}
		if inv.Balance != 0.00 {
			t.Fatalf("balance = %v, want 0", inv.Balance)
		}
		if len(inv.Payments) != 2 {
			t.Fatalf("payments = %d, want 2", len(inv.Payments))
		}
		if len(inv.StatusHistory) != 2 {
			t.Fatalf("status history entries = %d, want 2", len(inv.StatusHistory))
		}
	})

	t.Run("near-zero balance counts as paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newInvoiceUseCaseForTest(t, ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(baseInvoice(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				return inv, nil
			})

		inv, err := uc.AddPayment(context.Background(), "inv-1", PaymentInput{Amount: 549.99, Method: "cash"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Status != entities.InvoiceStatusPaid {
			t.Fatalf("status = %q, want paid for a 0.01 balance", inv.Status)
		}
	})

	t.Run("non-positive amounts rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newInvoiceUseCaseForTest(t, ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(baseInvoice(), nil).Times(2)

		for _, amount := range []float64{0, -50} {
			_, err := uc.AddPayment(context.Background(), "inv-1", PaymentInput{Amount: amount})
			if !errors.Is(err, ErrInvalidPaymentAmount) {
				t.Fatalf("amount %v: expected ErrInvalidPaymentAmount, got %v", amount, err)
			}
		}
	})

	t.Run("closed invoices refuse payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newInvoiceUseCaseForTest(t, ctrl)

		for _, status := range []entities.InvoiceStatus{entities.InvoiceStatusPaid, entities.InvoiceStatusCancelled} {
			inv := baseInvoice()
			inv.Status = status
			repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(inv, nil)

			_, err := uc.AddPayment(context.Background(), "inv-1", PaymentInput{Amount: 10, Method: "cash"})
			if !errors.Is(err, ErrInvoiceClosed) {
				t.Fatalf("status %s: expected ErrInvoiceClosed, got %v", status, err)
			}
		}
	})

	t.Run("card payments go through the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, gateway := newInvoiceUseCaseForTest(t, ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(baseInvoice(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), interfaces.ChargeRequest{
			Amount:      100,
			Description: "Invoice INV-1001",
			Reference:   "inv-1",
		}).Return("mp-123", "approved", nil, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				return inv, nil
			})

		inv, err := uc.AddPayment(context.Background(), "inv-1", PaymentInput{Amount: 100, Method: "card"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Payments[0].Reference != "mp-123" {
			t.Fatalf("reference = %q, want the provider payment id", inv.Payments[0].Reference)
		}
	})

	t.Run("declined card payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, gateway := newInvoiceUseCaseForTest(t, ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(baseInvoice(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-124", "rejected", nil, nil)

		_, err := uc.AddPayment(context.Background(), "inv-1", PaymentInput{Amount: 100, Method: "card"})
		if !errors.Is(err, ErrGatewayDeclined) {
			t.Fatalf("expected ErrGatewayDeclined, got %v", err)
		}
	})

	t.Run("invoice deleted between read and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newInvoiceUseCaseForTest(t, ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(baseInvoice(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, nil)

		_, err := uc.AddPayment(context.Background(), "inv-1", PaymentInput{Amount: 10, Method: "cash"})
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

func TestInvoiceUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _ := newInvoiceUseCaseForTest(t, ctrl)

		_, err := uc.UpdateStatus(context.Background(), "inv-1", "archived", "")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("cancel appends history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newInvoiceUseCaseForTest(t, ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{
			ID: "inv-1", Status: entities.InvoiceStatusDraft,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				return inv, nil
			})

		inv, err := uc.UpdateStatus(context.Background(), "inv-1", entities.InvoiceStatusCancelled, "client cancelled")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Status != entities.InvoiceStatusCancelled {
			t.Fatalf("status = %q, want cancelled", inv.Status)
		}
		last := inv.StatusHistory[len(inv.StatusHistory)-1]
		if last.Note != "client cancelled" {
			t.Fatalf("note = %q", last.Note)
		}
	})

	t.Run("terminal states stay terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newInvoiceUseCaseForTest(t, ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{
			ID: "inv-1", Status: entities.InvoiceStatusPaid,
		}, nil)

		_, err := uc.UpdateStatus(context.Background(), "inv-1", entities.InvoiceStatusDraft, "")
		if !errors.Is(err, ErrInvoiceClosed) {
			t.Fatalf("expected ErrInvoiceClosed, got %v", err)
		}
	})

	t.Run("invoice deleted between read and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newInvoiceUseCaseForTest(t, ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{
			ID: "inv-1", Status: entities.InvoiceStatusDraft,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "inv-1", entities.InvoiceStatusCancelled, "")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

func TestInvoiceUseCase_UpdateNumbering(t *testing.T) {
	t.Run("counter cannot decrease", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, numbering, _ := newInvoiceUseCaseForTest(t, ctrl)

		numbering.EXPECT().Get(gomock.Any()).Return(entities.NumberingSettings{
			InvoicePrefix: "INV-", NextInvoiceNumber: 1050, PaymentTermsDays: 7,
		}, nil)

		_, err := uc.UpdateNumbering(context.Background(), entities.NumberingSettings{
			InvoicePrefix: "INV-", NextInvoiceNumber: 1001, PaymentTermsDays: 7,
		})
		if !errors.Is(err, ErrCounterDecrease) {
			t.Fatalf("expected ErrCounterDecrease, got %v", err)
		}
	})

	t.Run("valid update passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, numbering, _ := newInvoiceUseCaseForTest(t, ctrl)

		numbering.EXPECT().Get(gomock.Any()).Return(entities.DefaultNumberingSettings(), nil)
		numbering.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.NumberingSettings) (entities.NumberingSettings, error) {
				return s, nil
			})

		s, err := uc.UpdateNumbering(context.Background(), entities.NumberingSettings{
			InvoicePrefix: "JOB-", NextInvoiceNumber: 2000, PaymentTermsDays: 14,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.InvoicePrefix != "JOB-" || s.NextInvoiceNumber != 2000 || s.PaymentTermsDays != 14 {
			t.Fatalf("unexpected settings: %+v", s)
		}
	})
}
