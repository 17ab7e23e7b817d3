package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
	"github.com/epgroup-anab/auction-hero-forge/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type draftMocks struct {
	events            *mocks.MockEventRepo
	auctions          *mocks.MockAuctionRepo
	questionnaires    *mocks.MockQuestionnaireRepo
	documents         *mocks.MockDocumentRepo
	lots              *mocks.MockLotRepo
	participants      *mocks.MockParticipantRepo
	eventParticipants *mocks.MockEventParticipantRepo
	notifier          *mocks.MockEventNotifier
}

func newDraftService(t *testing.T) (*DraftService, *draftMocks) {
	t.Helper()
	m := &draftMocks{
		events:            mocks.NewMockEventRepo(t),
		auctions:          mocks.NewMockAuctionRepo(t),
		questionnaires:    mocks.NewMockQuestionnaireRepo(t),
		documents:         mocks.NewMockDocumentRepo(t),
		lots:              mocks.NewMockLotRepo(t),
		participants:      mocks.NewMockParticipantRepo(t),
		eventParticipants: mocks.NewMockEventParticipantRepo(t),
		notifier:          mocks.NewMockEventNotifier(t),
	}
	svc := NewDraftService(
		m.events, m.auctions, m.questionnaires, m.documents, m.lots,
		m.participants, m.eventParticipants, m.notifier, newTestLogger(t),
	)
	return svc, m
}

func fullDraft() *domain.Draft {
	d := domain.NewDraft()
	d.Basics.Name = "Copper Tubing RFQ"
	d.Basics.Category = "Raw Materials"
	d.Basics.IncludeAuction = true
	d.Basics.IncludeQuestionnaire = true
	d.Basics.IncludeRFQ = true
	d.Questionnaires = []domain.Questionnaire{{Name: "Compliance", OrderIndex: 1}}
	d.Documents = []domain.Document{{Name: "terms.pdf", Version: "1.0", SharedWithAll: true}}
	d.Lots = []domain.Lot{{Name: "Tubing", Quantity: 20, CurrentPrice: 100, CurrentValue: 2000}}
	return d
}

func TestDraftService_Save_InsertBranch(t *testing.T) {
	svc, m := newDraftService(t)

	draft := fullDraft()

	m.events.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	m.auctions.EXPECT().Insert(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.questionnaires.EXPECT().Insert(mock.Anything, mock.Anything, draft.Questionnaires).Return(nil)
	m.documents.EXPECT().Insert(mock.Anything, mock.Anything, draft.Documents).Return(nil)
	m.lots.EXPECT().Insert(mock.Anything, mock.Anything, draft.Lots).Return(nil)
	m.eventParticipants.EXPECT().DeleteByEvent(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Save(context.Background(), "u1", draft, domain.EventStatusDraft)

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, draft.EventID, event.ID)
	assert.Equal(t, "u1", event.UserID)
	assert.Equal(t, domain.EventStatusDraft, event.Status)
}

func TestDraftService_Save_UpdateBranch_ClearsDisabledCollections(t *testing.T) {
	svc, m := newDraftService(t)

	// Saved once with everything enabled, then all flags toggled off.
	draft := domain.NewDraft()
	draft.EventID = "e1"
	draft.Basics.Name = "Scaled Back"

	m.events.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	m.auctions.EXPECT().DeleteByEvent(mock.Anything, "e1").Return(nil)
	m.questionnaires.EXPECT().DeleteByEvent(mock.Anything, "e1").Return(nil)
	m.documents.EXPECT().DeleteByEvent(mock.Anything, "e1").Return(nil)
	m.lots.EXPECT().DeleteByEvent(mock.Anything, "e1").Return(nil)
	m.eventParticipants.EXPECT().DeleteByEvent(mock.Anything, "e1").Return(nil)

	event, err := svc.Save(context.Background(), "u1", draft, domain.EventStatusDraft)

	require.NoError(t, err)
	assert.Equal(t, "e1", event.ID)
}

func TestDraftService_Save_LaunchRequiresName(t *testing.T) {
	svc, _ := newDraftService(t)

	draft := domain.NewDraft()
	draft.Basics.Name = "   "

	_, err := svc.Save(context.Background(), "u1", draft, domain.EventStatusPublished)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDraftService_Save_DraftMayBeNameless(t *testing.T) {
	svc, m := newDraftService(t)

	draft := domain.NewDraft()

	m.events.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	m.eventParticipants.EXPECT().DeleteByEvent(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Save(context.Background(), "u1", draft, domain.EventStatusDraft)

	require.NoError(t, err)
}

func TestDraftService_Save_AbortsOnChildError(t *testing.T) {
	svc, m := newDraftService(t)

	draft := domain.NewDraft()
	draft.Basics.Name = "Broken"
	draft.Basics.IncludeAuction = true

	m.events.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	m.auctions.EXPECT().Insert(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("db error"))

	_, err := svc.Save(context.Background(), "u1", draft, domain.EventStatusDraft)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "replace auction settings")
}

func TestDraftService_Save_UpsertsNewParticipant(t *testing.T) {
	svc, m := newDraftService(t)

	draft := domain.NewDraft()
	draft.Basics.Name = "Invites"
	draft.AutoAccept = true
	draft.Participants = []domain.EventParticipant{{
		Participant: domain.Participant{Email: "sandpit1@marketdojo.com"},
		Status:      domain.InvitationStatusInvited,
		Approved:    true,
	}}

	m.events.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	m.participants.EXPECT().GetByEmail(mock.Anything, "sandpit1@marketdojo.com").
		Return(nil, domain.ErrParticipantNotFound)
	m.participants.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	m.eventParticipants.EXPECT().DeleteByEvent(mock.Anything, mock.Anything).Return(nil)
	m.participants.EXPECT().ListByEmails(mock.Anything, []string{"sandpit1@marketdojo.com"}).
		Return([]*domain.Participant{{ID: "p1", Email: "sandpit1@marketdojo.com"}}, nil)

	var inserted []domain.EventParticipant
	m.eventParticipants.EXPECT().Insert(mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, eventID string, rows []domain.EventParticipant) {
			inserted = rows
		}).
		Return(nil)

	_, err := svc.Save(context.Background(), "u1", draft, domain.EventStatusDraft)

	require.NoError(t, err)
	require.Len(t, inserted, 1)
	assert.Equal(t, "p1", inserted[0].ParticipantID)
	assert.True(t, inserted[0].AutoAccept)
	assert.True(t, inserted[0].Approved)
}

func TestDraftService_Save_ExistingParticipantNotReinserted(t *testing.T) {
	svc, m := newDraftService(t)

	draft := domain.NewDraft()
	draft.Basics.Name = "Invites"
	draft.Participants = []domain.EventParticipant{{
		Participant: domain.Participant{Email: "known@corp.com"},
		Status:      domain.InvitationStatusInvited,
	}}

	m.events.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	m.participants.EXPECT().GetByEmail(mock.Anything, "known@corp.com").
		Return(&domain.Participant{ID: "p9", Email: "known@corp.com"}, nil)
	m.eventParticipants.EXPECT().DeleteByEvent(mock.Anything, mock.Anything).Return(nil)
	m.participants.EXPECT().ListByEmails(mock.Anything, []string{"known@corp.com"}).
		Return([]*domain.Participant{{ID: "p9", Email: "known@corp.com"}}, nil)
	m.eventParticipants.EXPECT().Insert(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Save(context.Background(), "u1", draft, domain.EventStatusDraft)

	require.NoError(t, err)
	m.participants.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestDraftService_Save_ToleratesEmailRace(t *testing.T) {
	svc, m := newDraftService(t)

	draft := domain.NewDraft()
	draft.Basics.Name = "Race"
	draft.Participants = []domain.EventParticipant{{
		Participant: domain.Participant{Email: "raced@corp.com"},
		Status:      domain.InvitationStatusInvited,
	}}

	m.events.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	m.participants.EXPECT().GetByEmail(mock.Anything, "raced@corp.com").
		Return(nil, domain.ErrParticipantNotFound)
	m.participants.EXPECT().Insert(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)
	m.eventParticipants.EXPECT().DeleteByEvent(mock.Anything, mock.Anything).Return(nil)
	m.participants.EXPECT().ListByEmails(mock.Anything, []string{"raced@corp.com"}).
		Return([]*domain.Participant{{ID: "p2", Email: "raced@corp.com"}}, nil)
	m.eventParticipants.EXPECT().Insert(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Save(context.Background(), "u1", draft, domain.EventStatusDraft)

	require.NoError(t, err)
}

func TestDraftService_Save_PublishNotifies(t *testing.T) {
	svc, m := newDraftService(t)

	draft := domain.NewDraft()
	draft.Basics.Name = "Launch Day"
	draft.Participants = []domain.EventParticipant{{
		Participant: domain.Participant{Email: "supplier@corp.com"},
		Status:      domain.InvitationStatusInvited,
	}}

	m.events.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	m.participants.EXPECT().GetByEmail(mock.Anything, "supplier@corp.com").
		Return(&domain.Participant{ID: "p1", Email: "supplier@corp.com"}, nil)
	m.eventParticipants.EXPECT().DeleteByEvent(mock.Anything, mock.Anything).Return(nil)
	m.participants.EXPECT().ListByEmails(mock.Anything, mock.Anything).
		Return([]*domain.Participant{{ID: "p1", Email: "supplier@corp.com"}}, nil)
	m.eventParticipants.EXPECT().Insert(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyParticipantInvited(mock.Anything, mock.Anything, "Launch Day").Return()
	m.notifier.EXPECT().NotifyEventPublished(mock.Anything, "Launch Day", 1).Return()

	event, err := svc.Save(context.Background(), "u1", draft, domain.EventStatusPublished)

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusPublished, event.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestDraftService_Load_FullDraft(t *testing.T) {
	svc, m := newDraftService(t)

	deadline := time.Now().Add(72 * time.Hour).UTC()
	event := &domain.Event{
		ID:                   "e1",
		UserID:               "u1",
		Name:                 "Copper Tubing RFQ",
		IncludeAuction:       true,
		IncludeQuestionnaire: true,
		IncludeRFQ:           true,
		SealResults:          true,
		Status:               domain.EventStatusDraft,
	}

	m.events.EXPECT().GetByIDAndOwner(mock.Anything, "e1", "u1").Return(event, nil)
	m.auctions.EXPECT().GetByEvent(mock.Anything, "e1").
		Return(&domain.AuctionSettings{EventID: "e1", StartTime: "09:30", BidDirection: domain.BidDirectionReverse}, nil)
	m.questionnaires.EXPECT().ListByEvent(mock.Anything, "e1").
		Return([]domain.Questionnaire{{ID: "q1", Name: "Compliance", Deadline: &deadline, OrderIndex: 1}}, nil)
	m.documents.EXPECT().ListByEvent(mock.Anything, "e1").
		Return([]domain.Document{{ID: "d1", Name: "terms.pdf"}}, nil)
	m.lots.EXPECT().ListByEvent(mock.Anything, "e1").
		Return([]domain.Lot{{ID: "l1", Name: "Tubing", Quantity: 20, CurrentValue: 2000}}, nil)
	m.eventParticipants.EXPECT().ListByEvent(mock.Anything, "e1").
		Return([]domain.EventParticipant{
			{EventID: "e1", ParticipantID: "p1", Status: domain.InvitationStatusInvited, AutoAccept: true},
			{EventID: "e1", ParticipantID: "p2", Status: domain.InvitationStatusAccepted, AutoAccept: true},
		}, nil)
	m.participants.EXPECT().ListByIDs(mock.Anything, []string{"p1", "p2"}).
		Return([]*domain.Participant{
			{ID: "p1", Email: "a@corp.com"},
			{ID: "p2", Email: "b@corp.com"},
		}, nil)

	draft, err := svc.Load(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, "e1", draft.EventID)
	assert.Equal(t, "Copper Tubing RFQ", draft.Basics.Name)
	assert.Equal(t, "09:30", draft.Auction.StartTime)
	require.Len(t, draft.Questionnaires, 1)
	require.Len(t, draft.Documents, 1)
	require.Len(t, draft.Lots, 1)
	require.Len(t, draft.Participants, 2)
	assert.True(t, draft.AutoAccept)
	assert.Equal(t, "a@corp.com", draft.Participants[0].Participant.Email)
	assert.Equal(t, "b@corp.com", draft.Participants[1].Participant.Email)
}

func TestDraftService_Load_AuctionFlagOnButNothingSaved(t *testing.T) {
	svc, m := newDraftService(t)

	event := &domain.Event{ID: "e1", UserID: "u1", Name: "X", IncludeAuction: true}

	m.events.EXPECT().GetByIDAndOwner(mock.Anything, "e1", "u1").Return(event, nil)
	m.auctions.EXPECT().GetByEvent(mock.Anything, "e1").Return(nil, domain.ErrAuctionNotFound)
	m.documents.EXPECT().ListByEvent(mock.Anything, "e1").Return(nil, nil)
	m.eventParticipants.EXPECT().ListByEvent(mock.Anything, "e1").Return(nil, nil)

	draft, err := svc.Load(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAuctionSettings(), draft.Auction)
	assert.False(t, draft.AutoAccept)
	assert.Empty(t, draft.Participants)
}

func TestDraftService_Load_NotOwner(t *testing.T) {
	svc, m := newDraftService(t)

	m.events.EXPECT().GetByIDAndOwner(mock.Anything, "e1", "intruder").
		Return(nil, domain.ErrEventNotFound)

	_, err := svc.Load(context.Background(), "e1", "intruder")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestDraftService_SaveLoad_FlagOffSkipsChildLoad(t *testing.T) {
	svc, m := newDraftService(t)

	event := &domain.Event{ID: "e1", UserID: "u1", Name: "No extras"}

	m.events.EXPECT().GetByIDAndOwner(mock.Anything, "e1", "u1").Return(event, nil)
	m.documents.EXPECT().ListByEvent(mock.Anything, "e1").Return(nil, nil)
	m.eventParticipants.EXPECT().ListByEvent(mock.Anything, "e1").Return(nil, nil)

	draft, err := svc.Load(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Empty(t, draft.Questionnaires)
	assert.Empty(t, draft.Lots)
	m.auctions.AssertNotCalled(t, "GetByEvent", mock.Anything, mock.Anything)
	m.questionnaires.AssertNotCalled(t, "ListByEvent", mock.Anything, mock.Anything)
	m.lots.AssertNotCalled(t, "ListByEvent", mock.Anything, mock.Anything)
}
