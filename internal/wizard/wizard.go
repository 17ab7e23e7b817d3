package wizard

import (
	"fmt"
	"sync"
	"time"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
)

type StepID int

const (
	StepBasics StepID = iota
	StepAuction
	StepQuestionnaire
	StepDocuments
	StepTerms
	StepLots
	StepParticipants
	StepReview
)

type Step struct {
	ID        StepID `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Steps is the ordered walk of the event setup wizard. Completed is carried
// in the step descriptor but nothing gates navigation on it.
var Steps = []Step{
	{ID: StepBasics, Name: "Basic Setup"},
	{ID: StepAuction, Name: "Auction Configuration"},
	{ID: StepQuestionnaire, Name: "Questionnaire Setup"},
	{ID: StepDocuments, Name: "Document Management"},
	{ID: StepTerms, Name: "Terms & Conditions"},
	{ID: StepLots, Name: "Lots Management"},
	{ID: StepParticipants, Name: "Participants"},
	{ID: StepReview, Name: "Review & Launch"},
}

// StepView is what a client renders for the current step. A step whose
// feature flag is off stays reachable but shows a placeholder instead of
// its form.
type StepView struct {
	Step        Step   `json:"step"`
	Index       int    `json:"index"`
	Total       int    `json:"total"`
	Enabled     bool   `json:"enabled"`
	Placeholder string `json:"placeholder,omitempty"`
}

// Wizard holds one session's draft aggregate and step position. All methods
// are safe for concurrent use, though a session is normally driven by a
// single client at a time.
type Wizard struct {
	ID      string
	OwnerID string

	mu         sync.Mutex
	draft      *domain.Draft
	stepIndex  int
	lastActive time.Time
}

func newWizard(id, ownerID string, draft *domain.Draft) *Wizard {
	return &Wizard{
		ID:         id,
		OwnerID:    ownerID,
		draft:      draft,
		lastActive: time.Now(),
	}
}

func (w *Wizard) touch() { w.lastActive = time.Now() }

// Next advances one step; leaving a step incomplete is allowed.
func (w *Wizard) Next() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()
	if w.stepIndex < len(Steps)-1 {
		w.stepIndex++
	}
}

func (w *Wizard) Previous() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()
	if w.stepIndex > 0 {
		w.stepIndex--
	}
}

func (w *Wizard) StepIndex() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stepIndex
}

func (w *Wizard) View() StepView {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	step := Steps[w.stepIndex]
	view := StepView{
		Step:    step,
		Index:   w.stepIndex,
		Total:   len(Steps),
		Enabled: true,
	}

	b := w.draft.Basics
	switch step.ID {
	case StepAuction:
		if !b.IncludeAuction {
			view.Enabled = false
			view.Placeholder = `Enable "Online Auction" in the previous step to configure auction settings.`
		}
	case StepQuestionnaire:
		if !b.IncludeQuestionnaire {
			view.Enabled = false
			view.Placeholder = `Enable "Questionnaire" in step 1 to configure questionnaire settings.`
		}
	case StepLots:
		if !b.IncludeRFQ {
			view.Enabled = false
			view.Placeholder = `Enable "RFQ" in step 1 to configure lots.`
		}
	}

	return view
}

// Draft returns the aggregate for saving or rendering.
func (w *Wizard) Draft() *domain.Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()
	return w.draft
}

func (w *Wizard) SetBasics(b domain.EventBasics) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()
	w.draft.Basics = b
}

func (w *Wizard) SetAuction(a domain.AuctionSettings) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()
	w.draft.Auction = a
}

func (w *Wizard) SetQuestionnaires(qs []domain.Questionnaire) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()
	w.draft.Questionnaires = qs
}

// AddQuestionnaire appends a blank questionnaire with the next order index.
func (w *Wizard) AddQuestionnaire() domain.Questionnaire {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()
	q := domain.Questionnaire{OrderIndex: len(w.draft.Questionnaires) + 1}
	w.draft.Questionnaires = append(w.draft.Questionnaires, q)
	return q
}

func (w *Wizard) UpdateQuestionnaireAt(i int, q domain.Questionnaire) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()
	if i < 0 || i >= len(w.draft.Questionnaires) {
		return fmt.Errorf("%w: questionnaire index %d out of range", domain.ErrValidation, i)
	}
	w.draft.Questionnaires[i] = q
	return nil
}

func (w *Wizard) SetDocuments(docs []domain.Document) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()
	w.draft.Documents = docs
}

// AddDocuments appends file metadata entries, defaulting version and sharing
// the way new uploads do.
func (w *Wizard) AddDocuments(docs ...domain.Document) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()
	for _, d := range docs {
		if d.Version == "" {
			d.Version = domain.DefaultDocumentVersion
			d.SharedWithAll = true
		}
		w.draft.Documents = append(w.draft.Documents, d)
	}
}

// LotInput is what the lots form submits; values are derived here, once, at
// entry time.
type LotInput struct {
	Name               string  `json:"name"`
	Quantity           int     `json:"quantity"`
	UnitOfMeasure      string  `json:"unit_of_measure"`
	CurrentPrice       float64 `json:"current_price"`
	QualificationPrice float64 `json:"qualification_price"`
}

// Lot derives the stored lot from the form input. A missing quantity means
// one unit.
func (in LotInput) Lot() domain.Lot {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}
	return domain.Lot{
		Name:               in.Name,
		Quantity:           in.Quantity,
		UnitOfMeasure:      in.UnitOfMeasure,
		CurrentPrice:       in.CurrentPrice,
		QualificationPrice: in.QualificationPrice,
		CurrentValue:       domain.Round2(in.CurrentPrice * float64(in.Quantity)),
		QualificationValue: domain.Round2(in.QualificationPrice * float64(in.Quantity)),
	}
}

func (w *Wizard) AddLot(in LotInput) domain.Lot {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	lot := in.Lot()
	w.draft.Lots = append(w.draft.Lots, lot)
	return lot
}

func (w *Wizard) SetLots(lots []domain.Lot) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()
	w.draft.Lots = lots
}

func (w *Wizard) RemoveLotAt(i int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()
	if i < 0 || i >= len(w.draft.Lots) {
		return fmt.Errorf("%w: lot index %d out of range", domain.ErrValidation, i)
	}
	w.draft.Lots = append(w.draft.Lots[:i], w.draft.Lots[i+1:]...)
	return nil
}

// AddParticipant invites a supplier by email; an email already on the list
// is ignored. Approval starts from the event-level auto-accept flag.
func (w *Wizard) AddParticipant(p domain.Participant) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	for _, ep := range w.draft.Participants {
		if ep.Participant.Email == p.Email {
			return
		}
	}

	w.draft.Participants = append(w.draft.Participants, domain.EventParticipant{
		Participant: p,
		Status:      domain.InvitationStatusInvited,
		Approved:    w.draft.AutoAccept,
		AutoAccept:  w.draft.AutoAccept,
		InvitedAt:   time.Now().UTC(),
	})
}

func (w *Wizard) RemoveParticipantAt(i int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()
	if i < 0 || i >= len(w.draft.Participants) {
		return fmt.Errorf("%w: participant index %d out of range", domain.ErrValidation, i)
	}
	w.draft.Participants = append(w.draft.Participants[:i], w.draft.Participants[i+1:]...)
	return nil
}

func (w *Wizard) ToggleApprovalAt(i int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()
	if i < 0 || i >= len(w.draft.Participants) {
		return fmt.Errorf("%w: participant index %d out of range", domain.ErrValidation, i)
	}
	w.draft.Participants[i].Approved = !w.draft.Participants[i].Approved
	return nil
}

func (w *Wizard) SetAutoAccept(v bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()
	w.draft.AutoAccept = v
}
