package ports

import (
	"context"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
)

type EventRepo interface {
	Insert(ctx context.Context, e *domain.Event) error
	Update(ctx context.Context, e *domain.Event) error
	GetByIDAndOwner(ctx context.Context, id, userID string) (*domain.Event, error)
	ListByOwner(ctx context.Context, userID string) ([]*domain.Event, error)
}
