package ports

import (
	"context"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
)

type LotRepo interface {
	Insert(ctx context.Context, eventID string, lots []domain.Lot) error
	ListByEvent(ctx context.Context, eventID string) ([]domain.Lot, error)
	DeleteByEvent(ctx context.Context, eventID string) error
}
