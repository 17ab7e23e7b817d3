package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
	"github.com/epgroup-anab/auction-hero-forge/internal/handler/dto"
	"github.com/epgroup-anab/auction-hero-forge/internal/middleware"
	"github.com/epgroup-anab/auction-hero-forge/internal/wizard"
)

type DraftSvc interface {
	Save(ctx context.Context, userID string, draft *domain.Draft, status domain.EventStatus) (*domain.Event, error)
	Load(ctx context.Context, eventID, userID string) (*domain.Draft, error)
}

type EventSvc interface {
	ListByOwner(ctx context.Context, userID string) ([]*domain.Event, error)
	GetByIDAndOwner(ctx context.Context, id, userID string) (*domain.Event, error)
}

type InvitationSvc interface {
	ListForEmail(ctx context.Context, email string) ([]domain.EventParticipant, error)
	Accept(ctx context.Context, email, eventID string) error
	Decline(ctx context.Context, email, eventID string) error
}

type Handler struct {
	draftService      DraftSvc
	eventService      EventSvc
	invitationService InvitationSvc
	sessions          *wizard.Store
}

func NewHandler(draftService DraftSvc, eventService EventSvc, invitationService InvitationSvc, sessions *wizard.Store) *Handler {
	return &Handler{
		draftService:      draftService,
		eventService:      eventService,
		invitationService: invitationService,
		sessions:          sessions,
	}
}

// Wizard lifecycle

func (h *Handler) StartWizard(c *ginext.Context) {
	sess, ok := h.principal(c)
	if !ok {
		return
	}

	w := h.sessions.StartCreate(sess.UserID)
	c.JSON(http.StatusCreated, dto.ToWizardResponse(w))
}

// StartEditWizard loads a persisted event back into a fresh session. Only
// the owner can open it.
func (h *Handler) StartEditWizard(c *ginext.Context) {
	sess, ok := h.principal(c)
	if !ok {
		return
	}

	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	draft, err := h.draftService.Load(c.Request.Context(), eventID, sess.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	w := h.sessions.StartEdit(sess.UserID, draft)
	c.JSON(http.StatusCreated, dto.ToWizardResponse(w))
}

func (h *Handler) GetWizard(c *ginext.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToWizardResponse(w))
}

func (h *Handler) NextStep(c *ginext.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}
	w.Next()
	c.JSON(http.StatusOK, dto.ToWizardResponse(w))
}

func (h *Handler) PreviousStep(c *ginext.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}
	w.Previous()
	c.JSON(http.StatusOK, dto.ToWizardResponse(w))
}

// Step forms

func (h *Handler) UpdateBasics(c *ginext.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}

	var req dto.BasicsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	w.SetBasics(domain.EventBasics{
		Name:                 req.Name,
		Category:             req.Category,
		DefaultCurrency:      req.DefaultCurrency,
		MultiCurrency:        req.MultiCurrency,
		BriefText:            req.BriefText,
		IncludeAuction:       req.IncludeAuction,
		IncludeQuestionnaire: req.IncludeQuestionnaire,
		IncludeRFQ:           req.IncludeRFQ,
		SealResults:          req.SealResults,
	})

	c.JSON(http.StatusOK, dto.ToWizardResponse(w))
}

func (h *Handler) UpdateAuction(c *ginext.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}

	var req dto.AuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_date format, expected RFC3339",
		})
		return
	}

	w.SetAuction(domain.AuctionSettings{
		StartDate:          startDate,
		StartTime:          req.StartTime,
		BidDirection:       domain.BidDirection(req.BidDirection),
		EventType:          req.EventType,
		MinimumDuration:    req.MinimumDuration,
		DynamicClosePeriod: req.DynamicClosePeriod,
		MinimumBidChange:   req.MinimumBidChange,
		MaximumBidChange:   req.MaximumBidChange,
		TiedBidOption:      req.TiedBidOption,
	})

	c.JSON(http.StatusOK, dto.ToWizardResponse(w))
}

func (h *Handler) UpdateQuestionnaires(c *ginext.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}

	var req dto.QuestionnairesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	qs := make([]domain.Questionnaire, 0, len(req.Questionnaires))
	for _, q := range req.Questionnaires {
		converted, err := toQuestionnaire(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid deadline format, expected RFC3339",
			})
			return
		}
		qs = append(qs, converted)
	}

	w.SetQuestionnaires(qs)
	c.JSON(http.StatusOK, dto.ToWizardResponse(w))
}

func (h *Handler) AddQuestionnaire(c *ginext.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}
	w.AddQuestionnaire()
	c.JSON(http.StatusCreated, dto.ToWizardResponse(w))
}

func (h *Handler) UpdateQuestionnaire(c *ginext.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}

	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid questionnaire index"})
		return
	}

	var req dto.QuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	q, err := toQuestionnaire(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid deadline format, expected RFC3339",
		})
		return
	}

	if err := w.UpdateQuestionnaireAt(i, q); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWizardResponse(w))
}

func (h *Handler) UpdateDocuments(c *ginext.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}

	var req dto.DocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	docs := make([]domain.Document, 0, len(req.Documents))
	for _, d := range req.Documents {
		docs = append(docs, toDocument(d))
	}

	w.SetDocuments(docs)
	c.JSON(http.StatusOK, dto.ToWizardResponse(w))
}

func (h *Handler) AddDocuments(c *ginext.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}

	var req dto.DocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	docs := make([]domain.Document, 0, len(req.Documents))
	for _, d := range req.Documents {
		docs = append(docs, toDocument(d))
	}

	w.AddDocuments(docs...)
	c.JSON(http.StatusCreated, dto.ToWizardResponse(w))
}

func (h *Handler) UpdateLots(c *ginext.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}

	var req dto.LotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	lots := make([]domain.Lot, 0, len(req.Lots))
	for _, l := range req.Lots {
		lots = append(lots, toLotInput(l).Lot())
	}

	w.SetLots(lots)
	c.JSON(http.StatusOK, dto.ToWizardResponse(w))
}

func (h *Handler) AddLot(c *ginext.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}

	var req dto.LotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	w.AddLot(toLotInput(req))
	c.JSON(http.StatusCreated, dto.ToWizardResponse(w))
}

func (h *Handler) RemoveLot(c *ginext.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}

	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid lot index"})
		return
	}

	if err := w.RemoveLotAt(i); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWizardResponse(w))
}

func (h *Handler) AddParticipant(c *ginext.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}

	var req dto.ParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	w.AddParticipant(domain.Participant{
		Email:   req.Email,
		Name:    req.Name,
		Company: req.Company,
	})

	c.JSON(http.StatusCreated, dto.ToWizardResponse(w))
}

func (h *Handler) RemoveParticipant(c *ginext.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}

	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid participant index"})
		return
	}

	if err := w.RemoveParticipantAt(i); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWizardResponse(w))
}

func (h *Handler) ToggleApproval(c *ginext.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}

	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid participant index"})
		return
	}

	if err := w.ToggleApprovalAt(i); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWizardResponse(w))
}

func (h *Handler) SetAutoAccept(c *ginext.Context) {
	w, ok := h.wizard(c)
	if !ok {
		return
	}

	var req dto.AutoAcceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	w.SetAutoAccept(*req.AutoAccept)
	c.JSON(http.StatusOK, dto.ToWizardResponse(w))
}

// Persistence

func (h *Handler) SaveDraft(c *ginext.Context) {
	sess, ok := h.principal(c)
	if !ok {
		return
	}
	w, ok := h.wizard(c)
	if !ok {
		return
	}

	event, err := h.draftService.Save(c.Request.Context(), sess.UserID, w.Draft(), domain.EventStatusDraft)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// LaunchEvent publishes the draft and retires the session; editing continues
// through a new edit-mode wizard.
func (h *Handler) LaunchEvent(c *ginext.Context) {
	sess, ok := h.principal(c)
	if !ok {
		return
	}
	w, ok := h.wizard(c)
	if !ok {
		return
	}

	event, err := h.draftService.Save(c.Request.Context(), sess.UserID, w.Draft(), domain.EventStatusPublished)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.sessions.Delete(w.ID)
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	sess, ok := h.principal(c)
	if !ok {
		return
	}

	events, err := h.eventService.ListByOwner(c.Request.Context(), sess.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	sess, ok := h.principal(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.GetByIDAndOwner(c.Request.Context(), id, sess.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// Supplier invitations

func (h *Handler) ListInvitations(c *ginext.Context) {
	sess, ok := h.supplier(c)
	if !ok {
		return
	}

	invitations, err := h.invitationService.ListForEmail(c.Request.Context(), sess.Email)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.InvitationResponse, 0, len(invitations))
	for i := range invitations {
		resp = append(resp, dto.ToInvitationResponse(&invitations[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AcceptInvitation(c *ginext.Context) {
	h.respondInvitation(c, h.invitationService.Accept)
}

func (h *Handler) DeclineInvitation(c *ginext.Context) {
	h.respondInvitation(c, h.invitationService.Decline)
}

func (h *Handler) respondInvitation(c *ginext.Context, respond func(ctx context.Context, email, eventID string) error) {
	sess, ok := h.supplier(c)
	if !ok {
		return
	}

	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := respond(c.Request.Context(), sess.Email, eventID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

// Helpers

func (h *Handler) principal(c *ginext.Context) (middleware.Session, bool) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
	}
	return sess, ok
}

func (h *Handler) supplier(c *ginext.Context) (middleware.Session, bool) {
	sess, ok := h.principal(c)
	if !ok {
		return sess, false
	}
	if sess.Email == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "supplier email is required"})
		return sess, false
	}
	return sess, true
}

func (h *Handler) wizard(c *ginext.Context) (*wizard.Wizard, bool) {
	sess, ok := h.principal(c)
	if !ok {
		return nil, false
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return nil, false
	}

	w, err := h.sessions.Get(id, sess.UserID)
	if err != nil {
		h.handleError(c, err)
		return nil, false
	}
	return w, true
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toQuestionnaire(req dto.QuestionnaireRequest) (domain.Questionnaire, error) {
	deadline, err := parseDate(req.Deadline)
	if err != nil {
		return domain.Questionnaire{}, err
	}
	return domain.Questionnaire{
		Name:             req.Name,
		Deadline:         deadline,
		PreQualification: req.PreQualification,
		Scoring:          req.Scoring,
		Weighting:        req.Weighting,
		OrderIndex:       req.OrderIndex,
	}, nil
}

func toDocument(req dto.DocumentRequest) domain.Document {
	return domain.Document{
		Name:          req.Name,
		FilePath:      req.FilePath,
		FileSize:      req.FileSize,
		MimeType:      req.MimeType,
		Version:       req.Version,
		SharedWithAll: req.SharedWithAll,
	}
}

func toLotInput(req dto.LotRequest) wizard.LotInput {
	return wizard.LotInput{
		Name:               req.Name,
		Quantity:           req.Quantity,
		UnitOfMeasure:      req.UnitOfMeasure,
		CurrentPrice:       req.CurrentPrice,
		QualificationPrice: req.QualificationPrice,
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrParticipantNotFound),
		errors.Is(err, domain.ErrInvitationNotFound),
		errors.Is(err, domain.ErrAuctionNotFound),
		errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
