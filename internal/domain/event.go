package domain

import "time"

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
)

type Event struct {
	ID                   string      `json:"id"`
	UserID               string      `json:"user_id"`
	Name                 string      `json:"name"`
	Category             string      `json:"category"`
	DefaultCurrency      string      `json:"default_currency"`
	MultiCurrency        bool        `json:"multi_currency"`
	BriefText            string      `json:"brief_text"`
	IncludeAuction       bool        `json:"include_auction"`
	IncludeQuestionnaire bool        `json:"include_questionnaire"`
	IncludeRFQ           bool        `json:"include_rfq"`
	SealResults          bool        `json:"seal_results"`
	Status               EventStatus `json:"status"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

// EventBasics are the fields a host edits on the first wizard step.
type EventBasics struct {
	Name                 string `json:"name"`
	Category             string `json:"category"`
	DefaultCurrency      string `json:"default_currency"`
	MultiCurrency        bool   `json:"multi_currency"`
	BriefText            string `json:"brief_text"`
	IncludeAuction       bool   `json:"include_auction"`
	IncludeQuestionnaire bool   `json:"include_questionnaire"`
	IncludeRFQ           bool   `json:"include_rfq"`
	SealResults          bool   `json:"seal_results"`
}

const DefaultCurrency = "USD"

func NewEventBasics() EventBasics {
	return EventBasics{
		DefaultCurrency: DefaultCurrency,
		SealResults:     true,
	}
}
