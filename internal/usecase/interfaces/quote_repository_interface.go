package interfaces

import (
	"context"

	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for saved quotes.
//
// The engine is storage-agnostic: it is handed records and returns records.
// A missing quote is reported as a zero-value entity, not an error.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
}
