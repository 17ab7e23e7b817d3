package service

import (
	"context"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
	"github.com/epgroup-anab/auction-hero-forge/internal/service/ports"
)

type EventService struct {
	repo ports.EventRepo
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) ListByOwner(ctx context.Context, userID string) ([]*domain.Event, error) {
	return s.repo.ListByOwner(ctx, userID)
}

func (s *EventService) GetByIDAndOwner(ctx context.Context, id, userID string) (*domain.Event, error) {
	return s.repo.GetByIDAndOwner(ctx, id, userID)
}
