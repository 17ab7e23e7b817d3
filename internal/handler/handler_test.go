package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
	"github.com/epgroup-anab/auction-hero-forge/internal/handler/dto"
	hmocks "github.com/epgroup-anab/auction-hero-forge/internal/handler/mocks"
	"github.com/epgroup-anab/auction-hero-forge/internal/middleware"
	"github.com/epgroup-anab/auction-hero-forge/internal/router"
	"github.com/epgroup-anab/auction-hero-forge/internal/wizard"
)

type testEnv struct {
	draftSvc      *hmocks.MockDraftSvc
	eventSvc      *hmocks.MockEventSvc
	invitationSvc *hmocks.MockInvitationSvc
	sessions      *wizard.Store
	router        http.Handler
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		draftSvc:      hmocks.NewMockDraftSvc(t),
		eventSvc:      hmocks.NewMockEventSvc(t),
		invitationSvc: hmocks.NewMockInvitationSvc(t),
		sessions:      wizard.NewStore(),
	}

	h := NewHandler(env.draftSvc, env.eventSvc, env.invitationSvc, env.sessions)
	env.router = router.InitRouter("test", h, middleware.Auth())

	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "u1")
	req.Header.Set("X-User-Email", "supplier@corp.com")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeWizard(t *testing.T, w *httptest.ResponseRecorder) dto.WizardResponse {
	t.Helper()
	var resp dto.WizardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- Sessions ---

func TestHandler_StartWizard(t *testing.T) {
	env := setup(t)

	w := env.do(t, http.MethodPost, "/api/wizard", nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeWizard(t, w)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "Basic Setup", resp.View.Step.Name)
	assert.Equal(t, "USD", resp.Draft.Basics.DefaultCurrency)
	assert.Equal(t, 1, env.sessions.Len())
}

func TestHandler_Unauthenticated(t *testing.T) {
	env := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/api/wizard", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_StartEditWizard(t *testing.T) {
	env := setup(t)

	eventID := uuid.New().String()
	draft := domain.NewDraft()
	draft.EventID = eventID
	draft.Basics.Name = "Loaded Event"

	env.draftSvc.EXPECT().Load(mock.Anything, eventID, "u1").Return(draft, nil)

	w := env.do(t, http.MethodPost, "/api/events/"+eventID+"/wizard", nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeWizard(t, w)
	assert.Equal(t, "Loaded Event", resp.Draft.Basics.Name)
	assert.Equal(t, eventID, resp.Draft.EventID)
}

func TestHandler_StartEditWizard_NotFound(t *testing.T) {
	env := setup(t)

	eventID := uuid.New().String()
	env.draftSvc.EXPECT().Load(mock.Anything, eventID, "u1").Return(nil, domain.ErrEventNotFound)

	w := env.do(t, http.MethodPost, "/api/events/"+eventID+"/wizard", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetWizard_WrongOwner(t *testing.T) {
	env := setup(t)

	session := env.sessions.StartCreate("someone-else")

	w := env.do(t, http.MethodGet, "/api/wizard/"+session.ID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetWizard_InvalidID(t *testing.T) {
	env := setup(t)

	w := env.do(t, http.MethodGet, "/api/wizard/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Navigation(t *testing.T) {
	env := setup(t)
	session := env.sessions.StartCreate("u1")

	w := env.do(t, http.MethodPost, "/api/wizard/"+session.ID+"/next", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decodeWizard(t, w).View.Index)

	w = env.do(t, http.MethodPost, "/api/wizard/"+session.ID+"/previous", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decodeWizard(t, w).View.Index)
}

// --- Step forms ---

func TestHandler_UpdateBasics(t *testing.T) {
	env := setup(t)
	session := env.sessions.StartCreate("u1")

	body := dto.BasicsRequest{
		Name:            "Copper Tubing RFQ",
		Category:        "Raw Materials",
		DefaultCurrency: "EUR",
		IncludeAuction:  true,
		SealResults:     true,
	}

	w := env.do(t, http.MethodPut, "/api/wizard/"+session.ID+"/basics", body)

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeWizard(t, w)
	assert.Equal(t, "Copper Tubing RFQ", resp.Draft.Basics.Name)
	assert.Equal(t, "EUR", resp.Draft.Basics.DefaultCurrency)
	assert.True(t, resp.Draft.Basics.IncludeAuction)
}

func TestHandler_UpdateAuction_InvalidDate(t *testing.T) {
	env := setup(t)
	session := env.sessions.StartCreate("u1")

	body := dto.AuctionRequest{
		StartDate:       "tomorrow",
		StartTime:       "12:00",
		BidDirection:    "reverse",
		EventType:       "ranked",
		MinimumDuration: 10,
	}

	w := env.do(t, http.MethodPut, "/api/wizard/"+session.ID+"/auction", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AddLot_DerivesValues(t *testing.T) {
	env := setup(t)
	session := env.sessions.StartCreate("u1")

	body := dto.LotRequest{
		Name:               "Copper Tubing",
		Quantity:           20,
		UnitOfMeasure:      "meters",
		CurrentPrice:       100.00,
		QualificationPrice: 90.00,
	}

	w := env.do(t, http.MethodPost, "/api/wizard/"+session.ID+"/lots", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeWizard(t, w)
	require.Len(t, resp.Draft.Lots, 1)
	assert.Equal(t, 2000.00, resp.Draft.Lots[0].CurrentValue)
	assert.Equal(t, 1800.00, resp.Draft.Lots[0].QualificationValue)
}

func TestHandler_RemoveLot_OutOfRange(t *testing.T) {
	env := setup(t)
	session := env.sessions.StartCreate("u1")

	w := env.do(t, http.MethodDelete, "/api/wizard/"+session.ID+"/lots/0", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AddParticipant_InvalidEmail(t *testing.T) {
	env := setup(t)
	session := env.sessions.StartCreate("u1")

	body := dto.ParticipantRequest{Email: "not-an-email"}

	w := env.do(t, http.MethodPost, "/api/wizard/"+session.ID+"/participants", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ParticipantApprovalFlow(t *testing.T) {
	env := setup(t)
	session := env.sessions.StartCreate("u1")

	autoAccept := true
	w := env.do(t, http.MethodPut, "/api/wizard/"+session.ID+"/auto-accept", dto.AutoAcceptRequest{AutoAccept: &autoAccept})
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/wizard/"+session.ID+"/participants", dto.ParticipantRequest{
		Email: "sandpit1@marketdojo.com",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeWizard(t, w)
	require.Len(t, resp.Draft.Participants, 1)
	assert.True(t, resp.Draft.Participants[0].Approved)

	w = env.do(t, http.MethodPost, "/api/wizard/"+session.ID+"/participants/0/approval", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decodeWizard(t, w).Draft.Participants[0].Approved)
}

// --- Persistence ---

func TestHandler_SaveDraft(t *testing.T) {
	env := setup(t)
	session := env.sessions.StartCreate("u1")

	event := &domain.Event{ID: uuid.New().String(), UserID: "u1", Status: domain.EventStatusDraft}
	env.draftSvc.EXPECT().Save(mock.Anything, "u1", mock.Anything, domain.EventStatusDraft).
		Return(event, nil)

	w := env.do(t, http.MethodPost, "/api/wizard/"+session.ID+"/save", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.EventStatusDraft), resp.Status)

	// the session survives a draft save
	_, err := env.sessions.Get(session.ID, "u1")
	assert.NoError(t, err)
}

func TestHandler_LaunchEvent_RetiresSession(t *testing.T) {
	env := setup(t)
	session := env.sessions.StartCreate("u1")

	event := &domain.Event{ID: uuid.New().String(), UserID: "u1", Name: "Live", Status: domain.EventStatusPublished}
	env.draftSvc.EXPECT().Save(mock.Anything, "u1", mock.Anything, domain.EventStatusPublished).
		Return(event, nil)

	w := env.do(t, http.MethodPost, "/api/wizard/"+session.ID+"/launch", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	_, err := env.sessions.Get(session.ID, "u1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestHandler_LaunchEvent_NamelessRejected(t *testing.T) {
	env := setup(t)
	session := env.sessions.StartCreate("u1")

	env.draftSvc.EXPECT().Save(mock.Anything, "u1", mock.Anything, domain.EventStatusPublished).
		Return(nil, domain.ErrValidation)

	w := env.do(t, http.MethodPost, "/api/wizard/"+session.ID+"/launch", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// failed launch keeps the session alive
	_, err := env.sessions.Get(session.ID, "u1")
	assert.NoError(t, err)
}

// --- Events ---

func TestHandler_ListEvents(t *testing.T) {
	env := setup(t)

	events := []*domain.Event{
		{ID: uuid.New().String(), UserID: "u1", Name: "Steel RFQ", Status: domain.EventStatusPublished},
	}
	env.eventSvc.EXPECT().ListByOwner(mock.Anything, "u1").Return(events, nil)

	w := env.do(t, http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Steel RFQ", resp[0].Name)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	env := setup(t)

	eventID := uuid.New().String()
	env.eventSvc.EXPECT().GetByIDAndOwner(mock.Anything, eventID, "u1").
		Return(nil, domain.ErrEventNotFound)

	w := env.do(t, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Invitations ---

func TestHandler_ListInvitations(t *testing.T) {
	env := setup(t)

	env.invitationSvc.EXPECT().ListForEmail(mock.Anything, "supplier@corp.com").
		Return([]domain.EventParticipant{
			{EventID: "e1", ParticipantID: "p1", Status: domain.InvitationStatusInvited},
		}, nil)

	w := env.do(t, http.MethodGet, "/api/invitations", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.InvitationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, string(domain.InvitationStatusInvited), resp[0].Status)
}

func TestHandler_AcceptInvitation(t *testing.T) {
	env := setup(t)

	eventID := uuid.New().String()
	env.invitationSvc.EXPECT().Accept(mock.Anything, "supplier@corp.com", eventID).Return(nil)

	w := env.do(t, http.MethodPost, "/api/invitations/"+eventID+"/accept", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeclineInvitation_NotFound(t *testing.T) {
	env := setup(t)

	eventID := uuid.New().String()
	env.invitationSvc.EXPECT().Decline(mock.Anything, "supplier@corp.com", eventID).
		Return(domain.ErrInvitationNotFound)

	w := env.do(t, http.MethodPost, "/api/invitations/"+eventID+"/decline", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
