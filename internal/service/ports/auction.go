package ports

import (
	"context"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
)

type AuctionRepo interface {
	Insert(ctx context.Context, eventID string, s *domain.AuctionSettings) error
	GetByEvent(ctx context.Context, eventID string) (*domain.AuctionSettings, error)
	DeleteByEvent(ctx context.Context, eventID string) error
}
