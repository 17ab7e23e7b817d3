package ports

import (
	"context"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
)

type DocumentRepo interface {
	Insert(ctx context.Context, eventID string, docs []domain.Document) error
	ListByEvent(ctx context.Context, eventID string) ([]domain.Document, error)
	DeleteByEvent(ctx context.Context, eventID string) error
}
