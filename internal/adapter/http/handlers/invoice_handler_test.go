package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/925PRESSUREGLASS/webapp-sub000/internal/adapter/http/handlers/mocks"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInvoiceHandler_CreateFromQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/from-quote/:quote_id", h.CreateFromQuote)

		uc.EXPECT().CreateFromQuote(gomock.Any(), "q-1").Return(entities.Invoice{
			ID: "inv-1", InvoiceNumber: "INV-1001", Status: entities.InvoiceStatusDraft,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/from-quote/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			InvoiceNumber string `json:"invoice_number"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.InvoiceNumber != "INV-1001" {
			t.Fatalf("invoice_number = %q", resp.InvoiceNumber)
		}
	})

	t.Run("empty quote maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/from-quote/:quote_id", h.CreateFromQuote)

		uc.EXPECT().CreateFromQuote(gomock.Any(), "q-1").Return(entities.Invoice{}, usecase.ErrQuoteHasNoLines)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/from-quote/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("missing quote maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/from-quote/:quote_id", h.CreateFromQuote)

		uc.EXPECT().CreateFromQuote(gomock.Any(), "q-404").Return(entities.Invoice{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/from-quote/q-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_AddPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/payments", h.AddPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/payments", h.AddPayment)

		uc.EXPECT().AddPayment(gomock.Any(), "inv-1", usecase.PaymentInput{
			Amount: 300, Method: "bank transfer",
		}).Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPartial, Balance: 250}, nil)

		body := `{"amount":300,"method":"Bank Transfer"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("closed invoice maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/payments", h.AddPayment)

		uc.EXPECT().AddPayment(gomock.Any(), "inv-1", gomock.Any()).Return(entities.Invoice{}, usecase.ErrInvoiceClosed)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payments", bytes.NewBufferString(`{"amount":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(uc)

	r := gin.New()
	r.PATCH("/v1/invoices/:invoice_id/status", h.UpdateStatus)

	uc.EXPECT().UpdateStatus(gomock.Any(), "inv-1", entities.InvoiceStatusCancelled, "job fell through").
		Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusCancelled}, nil)

	body := `{"status":"cancelled","note":"job fell through"}`
	req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/status", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestInvoiceHandler_Numbering(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/settings/numbering", h.GetNumbering)

		uc.EXPECT().GetNumbering(gomock.Any()).Return(entities.DefaultNumberingSettings(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/settings/numbering", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			InvoicePrefix     string `json:"invoice_prefix"`
			NextInvoiceNumber int64  `json:"next_invoice_number"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.InvoicePrefix != "INV-" || resp.NextInvoiceNumber != 1001 {
			t.Fatalf("unexpected settings: %+v", resp)
		}
	})

	t.Run("counter decrease maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.PUT("/v1/invoices/settings/numbering", h.UpdateNumbering)

		uc.EXPECT().UpdateNumbering(gomock.Any(), gomock.Any()).Return(entities.NumberingSettings{}, usecase.ErrCounterDecrease)

		body := `{"invoice_prefix":"INV-","next_invoice_number":1001,"payment_terms_days":7}`
		req := httptest.NewRequest(http.MethodPut, "/v1/invoices/settings/numbering", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
