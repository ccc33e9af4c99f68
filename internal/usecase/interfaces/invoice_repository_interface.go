package interfaces

import (
	"context"

	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"
)

// IInvoiceRepository abstracts persistence for invoices.
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
}
