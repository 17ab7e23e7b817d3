package ports

import (
	"context"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
)

type EventNotifier interface {
	NotifyParticipantInvited(ctx context.Context, p *domain.Participant, eventName string)
	NotifyEventPublished(ctx context.Context, eventName string, invited int)
}
