package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
	"github.com/epgroup-anab/auction-hero-forge/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// DraftService persists wizard drafts and reconstitutes them for editing.
// Saves follow full-replace semantics: child collections are deleted and
// reinserted as a whole, never diffed. There is no compensation — a failing
// step aborts the sequence and may leave earlier steps committed.
type DraftService struct {
	events            ports.EventRepo
	auctions          ports.AuctionRepo
	questionnaires    ports.QuestionnaireRepo
	documents         ports.DocumentRepo
	lots              ports.LotRepo
	participants      ports.ParticipantRepo
	eventParticipants ports.EventParticipantRepo
	notifier          ports.EventNotifier
	logger            logger.Logger
}

func NewDraftService(
	events ports.EventRepo,
	auctions ports.AuctionRepo,
	questionnaires ports.QuestionnaireRepo,
	documents ports.DocumentRepo,
	lots ports.LotRepo,
	participants ports.ParticipantRepo,
	eventParticipants ports.EventParticipantRepo,
	notifier ports.EventNotifier,
	logger logger.Logger,
) *DraftService {
	return &DraftService{
		events:            events,
		auctions:          auctions,
		questionnaires:    questionnaires,
		documents:         documents,
		lots:              lots,
		participants:      participants,
		eventParticipants: eventParticipants,
		notifier:          notifier,
		logger:            logger,
	}
}

// Save writes the draft so that stored state matches it exactly. A draft
// without an event id takes the insert branch; otherwise the event row is
// updated by id and owner. Drafts may be saved nameless, launching may not.
func (s *DraftService) Save(ctx context.Context, userID string, draft *domain.Draft, status domain.EventStatus) (*domain.Event, error) {
	if status == domain.EventStatusPublished && strings.TrimSpace(draft.Basics.Name) == "" {
		return nil, fmt.Errorf("%w: event name is required to launch", domain.ErrValidation)
	}

	b := draft.Basics
	event := &domain.Event{
		ID:                   draft.EventID,
		UserID:               userID,
		Name:                 b.Name,
		Category:             b.Category,
		DefaultCurrency:      b.DefaultCurrency,
		MultiCurrency:        b.MultiCurrency,
		BriefText:            b.BriefText,
		IncludeAuction:       b.IncludeAuction,
		IncludeQuestionnaire: b.IncludeQuestionnaire,
		IncludeRFQ:           b.IncludeRFQ,
		SealResults:          b.SealResults,
		Status:               status,
	}

	update := !draft.IsNew()
	if update {
		if err := s.events.Update(ctx, event); err != nil {
			return nil, fmt.Errorf("save event: %w", err)
		}
	} else {
		event.ID = uuid.New().String()
		if err := s.events.Insert(ctx, event); err != nil {
			return nil, fmt.Errorf("save event: %w", err)
		}
		draft.EventID = event.ID
	}

	// Stale rows are cleared even when a flag was toggled off between
	// sessions, so disabled collections never survive a save.
	if update {
		if err := s.auctions.DeleteByEvent(ctx, event.ID); err != nil {
			return nil, fmt.Errorf("replace auction settings: %w", err)
		}
	}
	if b.IncludeAuction {
		auction := draft.Auction
		if err := s.auctions.Insert(ctx, event.ID, &auction); err != nil {
			return nil, fmt.Errorf("replace auction settings: %w", err)
		}
	}

	if update {
		if err := s.questionnaires.DeleteByEvent(ctx, event.ID); err != nil {
			return nil, fmt.Errorf("replace questionnaires: %w", err)
		}
	}
	if b.IncludeQuestionnaire && len(draft.Questionnaires) > 0 {
		if err := s.questionnaires.Insert(ctx, event.ID, draft.Questionnaires); err != nil {
			return nil, fmt.Errorf("replace questionnaires: %w", err)
		}
	}

	// Documents are independent of the feature flags.
	if update {
		if err := s.documents.DeleteByEvent(ctx, event.ID); err != nil {
			return nil, fmt.Errorf("replace documents: %w", err)
		}
	}
	if len(draft.Documents) > 0 {
		if err := s.documents.Insert(ctx, event.ID, draft.Documents); err != nil {
			return nil, fmt.Errorf("replace documents: %w", err)
		}
	}

	if update {
		if err := s.lots.DeleteByEvent(ctx, event.ID); err != nil {
			return nil, fmt.Errorf("replace lots: %w", err)
		}
	}
	if b.IncludeRFQ && len(draft.Lots) > 0 {
		if err := s.lots.Insert(ctx, event.ID, draft.Lots); err != nil {
			return nil, fmt.Errorf("replace lots: %w", err)
		}
	}

	if err := s.saveParticipants(ctx, event.ID, draft); err != nil {
		return nil, err
	}

	s.logger.Info("event saved",
		logger.String("event_id", event.ID),
		logger.String("user_id", userID),
		logger.String("status", string(status)),
	)

	if status == domain.EventStatusPublished {
		go s.notifyPublished(context.WithoutCancel(ctx), event, draft)
	}

	return event, nil
}

// saveParticipants upserts the global supplier identities by email, resolves
// their ids, then fully replaces the event's join rows. The insert is guarded
// by an existence check rather than relying on conflict semantics alone.
func (s *DraftService) saveParticipants(ctx context.Context, eventID string, draft *domain.Draft) error {
	emails := make([]string, 0, len(draft.Participants))
	for i := range draft.Participants {
		p := draft.Participants[i].Participant

		_, err := s.participants.GetByEmail(ctx, p.Email)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrParticipantNotFound):
			p.ID = uuid.New().String()
			if err = s.participants.Insert(ctx, &p); err != nil && !errors.Is(err, domain.ErrEmailTaken) {
				return fmt.Errorf("upsert participant: %w", err)
			}
		default:
			return fmt.Errorf("check participant: %w", err)
		}

		emails = append(emails, p.Email)
	}

	if err := s.eventParticipants.DeleteByEvent(ctx, eventID); err != nil {
		return fmt.Errorf("replace event participants: %w", err)
	}
	if len(draft.Participants) == 0 {
		return nil
	}

	persisted, err := s.participants.ListByEmails(ctx, emails)
	if err != nil {
		return fmt.Errorf("resolve participant ids: %w", err)
	}
	idByEmail := make(map[string]string, len(persisted))
	for _, p := range persisted {
		idByEmail[p.Email] = p.ID
	}

	rows := make([]domain.EventParticipant, 0, len(draft.Participants))
	for _, ep := range draft.Participants {
		id, ok := idByEmail[ep.Participant.Email]
		if !ok {
			return fmt.Errorf("resolve participant ids: %w: %s", domain.ErrParticipantNotFound, ep.Participant.Email)
		}
		ep.ParticipantID = id
		ep.AutoAccept = draft.AutoAccept
		rows = append(rows, ep)
	}

	if err = s.eventParticipants.Insert(ctx, eventID, rows); err != nil {
		return fmt.Errorf("replace event participants: %w", err)
	}

	return nil
}

// Load reconstitutes the draft an edit-mode wizard starts from. The event is
// fetched by id and owner together; anything else is not found.
func (s *DraftService) Load(ctx context.Context, eventID, userID string) (*domain.Draft, error) {
	event, err := s.events.GetByIDAndOwner(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	draft := domain.NewDraft()
	draft.EventID = event.ID
	draft.Basics = domain.EventBasics{
		Name:                 event.Name,
		Category:             event.Category,
		DefaultCurrency:      event.DefaultCurrency,
		MultiCurrency:        event.MultiCurrency,
		BriefText:            event.BriefText,
		IncludeAuction:       event.IncludeAuction,
		IncludeQuestionnaire: event.IncludeQuestionnaire,
		IncludeRFQ:           event.IncludeRFQ,
		SealResults:          event.SealResults,
	}

	if event.IncludeAuction {
		auction, err := s.auctions.GetByEvent(ctx, event.ID)
		switch {
		case err == nil:
			draft.Auction = *auction
		case errors.Is(err, domain.ErrAuctionNotFound):
			// flag on but nothing saved yet; the step starts from defaults
		default:
			return nil, fmt.Errorf("load auction settings: %w", err)
		}
	}

	if event.IncludeQuestionnaire {
		if draft.Questionnaires, err = s.questionnaires.ListByEvent(ctx, event.ID); err != nil {
			return nil, fmt.Errorf("load questionnaires: %w", err)
		}
	}

	if draft.Documents, err = s.documents.ListByEvent(ctx, event.ID); err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}

	if event.IncludeRFQ {
		if draft.Lots, err = s.lots.ListByEvent(ctx, event.ID); err != nil {
			return nil, fmt.Errorf("load lots: %w", err)
		}
	}

	eps, err := s.eventParticipants.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("load event participants: %w", err)
	}
	if len(eps) > 0 {
		// the event-level flag is denormalized onto every row; the first
		// row stands in for all of them
		draft.AutoAccept = eps[0].AutoAccept

		ids := make([]string, 0, len(eps))
		for _, ep := range eps {
			ids = append(ids, ep.ParticipantID)
		}
		people, err := s.participants.ListByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("load participants: %w", err)
		}
		byID := make(map[string]*domain.Participant, len(people))
		for _, p := range people {
			byID[p.ID] = p
		}
		for i := range eps {
			if p, ok := byID[eps[i].ParticipantID]; ok {
				eps[i].Participant = *p
			}
		}
		draft.Participants = eps
	}

	return draft, nil
}

func (s *DraftService) notifyPublished(ctx context.Context, event *domain.Event, draft *domain.Draft) {
	for i := range draft.Participants {
		p := draft.Participants[i].Participant
		s.notifier.NotifyParticipantInvited(ctx, &p, event.Name)
	}
	s.notifier.NotifyEventPublished(ctx, event.Name, len(draft.Participants))
}
