package dto

import (
	"time"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
	"github.com/epgroup-anab/auction-hero-forge/internal/wizard"
)

type EventResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Category             string `json:"category"`
	DefaultCurrency      string `json:"default_currency"`
	MultiCurrency        bool   `json:"multi_currency"`
	BriefText            string `json:"brief_text"`
	IncludeAuction       bool   `json:"include_auction"`
	IncludeQuestionnaire bool   `json:"include_questionnaire"`
	IncludeRFQ           bool   `json:"include_rfq"`
	SealResults          bool   `json:"seal_results"`
	Status               string `json:"status"`
	CreatedAt            string `json:"created_at"`
	UpdatedAt            string `json:"updated_at"`
}

// WizardResponse is the full session state a client renders: where the
// wizard stands plus the draft it is editing.
type WizardResponse struct {
	SessionID string          `json:"session_id"`
	View      wizard.StepView `json:"view"`
	Draft     *domain.Draft   `json:"draft"`
}

type InvitationResponse struct {
	EventID                 string `json:"event_id"`
	Status                  string `json:"status"`
	Approved                bool   `json:"approved"`
	AutoAccept              bool   `json:"auto_accept"`
	QuestionnairesCompleted int    `json:"questionnaires_completed"`
	LotsEntered             int    `json:"lots_entered"`
	InvitedAt               string `json:"invited_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                   e.ID,
		Name:                 e.Name,
		Category:             e.Category,
		DefaultCurrency:      e.DefaultCurrency,
		MultiCurrency:        e.MultiCurrency,
		BriefText:            e.BriefText,
		IncludeAuction:       e.IncludeAuction,
		IncludeQuestionnaire: e.IncludeQuestionnaire,
		IncludeRFQ:           e.IncludeRFQ,
		SealResults:          e.SealResults,
		Status:               string(e.Status),
		CreatedAt:            e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            e.UpdatedAt.Format(time.RFC3339),
	}
}

func ToWizardResponse(w *wizard.Wizard) WizardResponse {
	return WizardResponse{
		SessionID: w.ID,
		View:      w.View(),
		Draft:     w.Draft(),
	}
}

func ToInvitationResponse(ep *domain.EventParticipant) InvitationResponse {
	return InvitationResponse{
		EventID:                 ep.EventID,
		Status:                  string(ep.Status),
		Approved:                ep.Approved,
		AutoAccept:              ep.AutoAccept,
		QuestionnairesCompleted: ep.QuestionnairesCompleted,
		LotsEntered:             ep.LotsEntered,
		InvitedAt:               ep.InvitedAt.Format(time.RFC3339),
	}
}
