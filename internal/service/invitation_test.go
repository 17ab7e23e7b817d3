package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
	"github.com/epgroup-anab/auction-hero-forge/internal/service/ports/mocks"
)

func TestInvitationService_ListForEmail(t *testing.T) {
	participants := mocks.NewMockParticipantRepo(t)
	eventParticipants := mocks.NewMockEventParticipantRepo(t)
	svc := NewInvitationService(participants, eventParticipants, newTestLogger(t))

	p := &domain.Participant{ID: "p1", Email: "supplier@corp.com", Company: "Corp"}
	participants.EXPECT().GetByEmail(mock.Anything, "supplier@corp.com").Return(p, nil)
	eventParticipants.EXPECT().ListByParticipant(mock.Anything, "p1").
		Return([]domain.EventParticipant{
			{EventID: "e1", ParticipantID: "p1", Status: domain.InvitationStatusInvited},
		}, nil)

	invitations, err := svc.ListForEmail(context.Background(), "supplier@corp.com")

	require.NoError(t, err)
	require.Len(t, invitations, 1)
	assert.Equal(t, "Corp", invitations[0].Participant.Company)
}

func TestInvitationService_ListForEmail_UnknownEmail(t *testing.T) {
	participants := mocks.NewMockParticipantRepo(t)
	eventParticipants := mocks.NewMockEventParticipantRepo(t)
	svc := NewInvitationService(participants, eventParticipants, newTestLogger(t))

	participants.EXPECT().GetByEmail(mock.Anything, "nobody@corp.com").
		Return(nil, domain.ErrParticipantNotFound)

	invitations, err := svc.ListForEmail(context.Background(), "nobody@corp.com")

	require.NoError(t, err)
	assert.Empty(t, invitations)
}

func TestInvitationService_Accept(t *testing.T) {
	participants := mocks.NewMockParticipantRepo(t)
	eventParticipants := mocks.NewMockEventParticipantRepo(t)
	svc := NewInvitationService(participants, eventParticipants, newTestLogger(t))

	participants.EXPECT().GetByEmail(mock.Anything, "supplier@corp.com").
		Return(&domain.Participant{ID: "p1", Email: "supplier@corp.com"}, nil)
	eventParticipants.EXPECT().UpdateStatus(mock.Anything, "e1", "p1", domain.InvitationStatusAccepted).
		Return(nil)

	err := svc.Accept(context.Background(), "supplier@corp.com", "e1")

	require.NoError(t, err)
}

func TestInvitationService_Decline(t *testing.T) {
	participants := mocks.NewMockParticipantRepo(t)
	eventParticipants := mocks.NewMockEventParticipantRepo(t)
	svc := NewInvitationService(participants, eventParticipants, newTestLogger(t))

	participants.EXPECT().GetByEmail(mock.Anything, "supplier@corp.com").
		Return(&domain.Participant{ID: "p1", Email: "supplier@corp.com"}, nil)
	eventParticipants.EXPECT().UpdateStatus(mock.Anything, "e1", "p1", domain.InvitationStatusDeclined).
		Return(nil)

	err := svc.Decline(context.Background(), "supplier@corp.com", "e1")

	require.NoError(t, err)
}

func TestInvitationService_Respond_UnknownEmail(t *testing.T) {
	participants := mocks.NewMockParticipantRepo(t)
	eventParticipants := mocks.NewMockEventParticipantRepo(t)
	svc := NewInvitationService(participants, eventParticipants, newTestLogger(t))

	participants.EXPECT().GetByEmail(mock.Anything, "nobody@corp.com").
		Return(nil, domain.ErrParticipantNotFound)

	err := svc.Accept(context.Background(), "nobody@corp.com", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvitationNotFound)
}

func TestInvitationService_Respond_NotInvited(t *testing.T) {
	participants := mocks.NewMockParticipantRepo(t)
	eventParticipants := mocks.NewMockEventParticipantRepo(t)
	svc := NewInvitationService(participants, eventParticipants, newTestLogger(t))

	participants.EXPECT().GetByEmail(mock.Anything, "supplier@corp.com").
		Return(&domain.Participant{ID: "p1", Email: "supplier@corp.com"}, nil)
	eventParticipants.EXPECT().UpdateStatus(mock.Anything, "e9", "p1", domain.InvitationStatusDeclined).
		Return(domain.ErrInvitationNotFound)

	err := svc.Decline(context.Background(), "supplier@corp.com", "e9")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvitationNotFound)
}
