package domain

import "time"

// Participant is a global supplier identity keyed by email; it is created
// lazily the first time the email is invited to any event.
type Participant struct {
	ID      string `json:"id,omitempty"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Company string `json:"company"`
}

type InvitationStatus string

const (
	InvitationStatusInvited     InvitationStatus = "invited"
	InvitationStatusRegistered  InvitationStatus = "registered"
	InvitationStatusAccepted    InvitationStatus = "accepted"
	InvitationStatusDeclined    InvitationStatus = "declined"
	InvitationStatusNotAccepted InvitationStatus = "not_accepted"
)

// EventParticipant links a Participant to one Event. ParticipantID is empty
// on rows built in the wizard until the first successful save.
type EventParticipant struct {
	EventID                 string           `json:"event_id,omitempty"`
	ParticipantID           string           `json:"participant_id,omitempty"`
	Participant             Participant      `json:"participant"`
	Status                  InvitationStatus `json:"status"`
	Approved                bool             `json:"approved"`
	AutoAccept              bool             `json:"auto_accept"`
	QuestionnairesCompleted int              `json:"questionnaires_completed"`
	LotsEntered             int              `json:"lots_entered"`
	InvitedAt               time.Time        `json:"invited_at"`
}
