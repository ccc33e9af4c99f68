package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/pricing"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound   = errors.New("quote not found")
	ErrInvalidQuoteID  = errors.New("invalid quote id")
	ErrQuoteHasNoLines = errors.New("quote has no line items")
)

// IQuoteUseCase exposes quote operations: pure pricing previews plus the
// saved-quote lifecycle (save, fetch, list, duplicate).
type IQuoteUseCase interface {
	Price(windowLines []entities.WindowLine, pressureLines []entities.PressureLine, cfg entities.PricingConfig) pricing.Breakdown
	Save(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	Duplicate(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
	calc *pricing.Calculator
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, calc *pricing.Calculator) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, calc: calc}
}

// Price computes the full breakdown without touching storage.
func (u *QuoteUseCase) Price(windowLines []entities.WindowLine, pressureLines []entities.PressureLine, cfg entities.PricingConfig) pricing.Breakdown {
	return u.calc.Aggregate(windowLines, pressureLines, cfg)
}

// Save persists a quote. A quote without an id is created (assigned a stable
// id); one with an id is updated in place. Saving is independent of
// invoicing.
func (u *QuoteUseCase) Save(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	now := time.Now().UTC()
	q.UpdatedAt = now

	ensureLineIDs(&q)

	if strings.TrimSpace(q.ID) == "" {
		q.ID = uuid.NewString()
		q.CreatedAt = now
		return u.repo.Create(ctx, q)
	}

	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

// Duplicate copies an existing quote into a fresh one with a new id. Line ids
// are regenerated; pricing config and lines are copied by value.
func (u *QuoteUseCase) Duplicate(ctx context.Context, id string) (entities.Quote, error) {
	src, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	dup := src
	dup.ID = uuid.NewString()
	dup.Title = src.Title + " (copy)"
	dup.CreatedAt = now
	dup.UpdatedAt = now
	dup.WindowLines = make([]entities.WindowLine, len(src.WindowLines))
	for i, l := range src.WindowLines {
		dup.WindowLines[i] = l
		dup.WindowLines[i].ID = uuid.NewString()
		dup.WindowLines[i].Addons = append([]entities.WindowAddon(nil), l.Addons...)
	}
	dup.PressureLines = make([]entities.PressureLine, len(src.PressureLines))
	for i, l := range src.PressureLines {
		dup.PressureLines[i] = l
		dup.PressureLines[i].ID = uuid.NewString()
		dup.PressureLines[i].Addons = append([]entities.PressureAddon(nil), l.Addons...)
	}

	return u.repo.Create(ctx, dup)
}

func ensureLineIDs(q *entities.Quote) {
	for i := range q.WindowLines {
		if strings.TrimSpace(q.WindowLines[i].ID) == "" {
			q.WindowLines[i].ID = uuid.NewString()
		}
	}
	for i := range q.PressureLines {
		if strings.TrimSpace(q.PressureLines[i].ID) == "" {
			q.PressureLines[i].ID = uuid.NewString()
		}
	}
}
