package ports

import (
	"context"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
)

type QuestionnaireRepo interface {
	Insert(ctx context.Context, eventID string, qs []domain.Questionnaire) error
	ListByEvent(ctx context.Context, eventID string) ([]domain.Questionnaire, error)
	DeleteByEvent(ctx context.Context, eventID string) error
}
