package domain

// Draft is the full in-memory aggregate a wizard session works on. Child
// collections are only meaningful while the owning feature flag on Basics is
// set; the persistence layer never writes a collection whose flag is off.
type Draft struct {
	EventID        string             `json:"event_id,omitempty"`
	Basics         EventBasics        `json:"basics"`
	Auction        AuctionSettings    `json:"auction"`
	Questionnaires []Questionnaire    `json:"questionnaires"`
	Documents      []Document         `json:"documents"`
	Lots           []Lot              `json:"lots"`
	Participants   []EventParticipant `json:"participants"`
	AutoAccept     bool               `json:"auto_accept"`
}

// NewDraft returns the aggregate a create-mode wizard starts from.
func NewDraft() *Draft {
	return &Draft{
		Basics:  NewEventBasics(),
		Auction: DefaultAuctionSettings(),
	}
}

// IsNew reports whether the draft has never been persisted.
func (d *Draft) IsNew() bool {
	return d.EventID == ""
}
