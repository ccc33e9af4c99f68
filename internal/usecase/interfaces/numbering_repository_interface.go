package interfaces

import (
	"context"

	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"
)

// INumberingRepository abstracts the persisted invoice-numbering counter.
//
// Next must allocate atomically with respect to concurrent invoice creation:
// read-then-increment is a serialized critical section in the store, so
// numbers are unique and strictly increasing in creation order.
// Update must refuse to move NextInvoiceNumber below its current value.
type INumberingRepository interface {
	// Next returns the settings snapshot whose NextInvoiceNumber is the value
	// allocated to the caller, with the persisted counter already advanced.
	Next(ctx context.Context) (entities.NumberingSettings, error)
	Get(ctx context.Context) (entities.NumberingSettings, error)
	Update(ctx context.Context, s entities.NumberingSettings) (entities.NumberingSettings, error)
}
