package ports

import (
	"context"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
)

type ParticipantRepo interface {
	Insert(ctx context.Context, p *domain.Participant) error
	GetByEmail(ctx context.Context, email string) (*domain.Participant, error)
	ListByEmails(ctx context.Context, emails []string) ([]*domain.Participant, error)
	ListByIDs(ctx context.Context, ids []string) ([]*domain.Participant, error)
}

type EventParticipantRepo interface {
	Insert(ctx context.Context, eventID string, rows []domain.EventParticipant) error
	ListByEvent(ctx context.Context, eventID string) ([]domain.EventParticipant, error)
	ListByParticipant(ctx context.Context, participantID string) ([]domain.EventParticipant, error)
	UpdateStatus(ctx context.Context, eventID, participantID string, status domain.InvitationStatus) error
	DeleteByEvent(ctx context.Context, eventID string) error
}
