package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
	"github.com/epgroup-anab/auction-hero-forge/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// InvitationService is the supplier-portal side of event participation:
// a participant sees the invitations addressed to their email and accepts
// or declines them.
type InvitationService struct {
	participants      ports.ParticipantRepo
	eventParticipants ports.EventParticipantRepo
	logger            logger.Logger
}

func NewInvitationService(
	participants ports.ParticipantRepo,
	eventParticipants ports.EventParticipantRepo,
	logger logger.Logger,
) *InvitationService {
	return &InvitationService{
		participants:      participants,
		eventParticipants: eventParticipants,
		logger:            logger,
	}
}

// ListForEmail returns the invitations for a supplier email. An email that
// was never invited anywhere yields an empty list, not an error.
func (s *InvitationService) ListForEmail(ctx context.Context, email string) ([]domain.EventParticipant, error) {
	p, err := s.participants.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrParticipantNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get participant: %w", err)
	}

	invitations, err := s.eventParticipants.ListByParticipant(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	for i := range invitations {
		invitations[i].Participant = *p
	}

	return invitations, nil
}

func (s *InvitationService) Accept(ctx context.Context, email, eventID string) error {
	return s.respond(ctx, email, eventID, domain.InvitationStatusAccepted)
}

func (s *InvitationService) Decline(ctx context.Context, email, eventID string) error {
	return s.respond(ctx, email, eventID, domain.InvitationStatusDeclined)
}

func (s *InvitationService) respond(ctx context.Context, email, eventID string, status domain.InvitationStatus) error {
	p, err := s.participants.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrParticipantNotFound) {
			return domain.ErrInvitationNotFound
		}
		return fmt.Errorf("get participant: %w", err)
	}

	if err = s.eventParticipants.UpdateStatus(ctx, eventID, p.ID, status); err != nil {
		return err
	}

	s.logger.Info("invitation answered",
		logger.String("event_id", eventID),
		logger.String("participant_id", p.ID),
		logger.String("status", string(status)),
	)

	return nil
}
