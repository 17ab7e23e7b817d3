package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
)

func newTestWizard() *Wizard {
	return newWizard("s1", "u1", domain.NewDraft())
}

func TestWizard_Navigation_ClampsAtEnds(t *testing.T) {
	w := newTestWizard()

	w.Previous()
	assert.Equal(t, 0, w.StepIndex())

	for i := 0; i < len(Steps)+3; i++ {
		w.Next()
	}
	assert.Equal(t, len(Steps)-1, w.StepIndex())

	w.Previous()
	assert.Equal(t, len(Steps)-2, w.StepIndex())
}

func TestWizard_View_DisabledStepShowsPlaceholder(t *testing.T) {
	w := newTestWizard()

	w.Next() // auction step, flag off by default
	view := w.View()

	assert.Equal(t, StepAuction, view.Step.ID)
	assert.False(t, view.Enabled)
	assert.Contains(t, view.Placeholder, "Online Auction")
}

func TestWizard_View_EnabledAfterFlagToggle(t *testing.T) {
	w := newTestWizard()

	b := w.Draft().Basics
	b.IncludeAuction = true
	w.SetBasics(b)

	w.Next()
	view := w.View()

	assert.True(t, view.Enabled)
	assert.Empty(t, view.Placeholder)
}

func TestWizard_View_LotsPlaceholderWithoutRFQ(t *testing.T) {
	w := newTestWizard()

	for w.StepIndex() < int(StepLots) {
		w.Next()
	}
	view := w.View()

	assert.Equal(t, StepLots, view.Step.ID)
	assert.False(t, view.Enabled)
	assert.Contains(t, view.Placeholder, "RFQ")
}

func TestWizard_AddLot_DerivesValuesOnce(t *testing.T) {
	w := newTestWizard()

	lot := w.AddLot(LotInput{
		Name:               "Copper Tubing",
		Quantity:           20,
		UnitOfMeasure:      "meters",
		CurrentPrice:       100.00,
		QualificationPrice: 90.00,
	})

	assert.Equal(t, 2000.00, lot.CurrentValue)
	assert.Equal(t, 1800.00, lot.QualificationValue)

	// editing the stored lot's price later must not touch the value
	lots := w.Draft().Lots
	lots[0].CurrentPrice = 50.00
	w.SetLots(lots)
	assert.Equal(t, 2000.00, w.Draft().Lots[0].CurrentValue)
}

func TestWizard_AddLot_DefaultsQuantityToOne(t *testing.T) {
	w := newTestWizard()

	lot := w.AddLot(LotInput{Name: "Single", CurrentPrice: 19.99})

	assert.Equal(t, 1, lot.Quantity)
	assert.Equal(t, 19.99, lot.CurrentValue)
}

func TestWizard_RemoveLotAt_OutOfRange(t *testing.T) {
	w := newTestWizard()

	err := w.RemoveLotAt(0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWizard_AddQuestionnaire_OrderIndex(t *testing.T) {
	w := newTestWizard()

	q1 := w.AddQuestionnaire()
	q2 := w.AddQuestionnaire()

	assert.Equal(t, 1, q1.OrderIndex)
	assert.Equal(t, 2, q2.OrderIndex)
}

func TestWizard_AddDocuments_Defaults(t *testing.T) {
	w := newTestWizard()

	w.AddDocuments(domain.Document{Name: "terms.pdf"})

	docs := w.Draft().Documents
	require.Len(t, docs, 1)
	assert.Equal(t, domain.DefaultDocumentVersion, docs[0].Version)
	assert.True(t, docs[0].SharedWithAll)
}

func TestWizard_AddParticipant_DedupesByEmail(t *testing.T) {
	w := newTestWizard()

	w.AddParticipant(domain.Participant{Email: "dup@corp.com", Name: "First"})
	w.AddParticipant(domain.Participant{Email: "dup@corp.com", Name: "Second"})

	ps := w.Draft().Participants
	require.Len(t, ps, 1)
	assert.Equal(t, "First", ps[0].Participant.Name)
}

func TestWizard_AddParticipant_AutoAcceptApproves(t *testing.T) {
	w := newTestWizard()
	w.SetAutoAccept(true)

	w.AddParticipant(domain.Participant{Email: "sandpit1@marketdojo.com"})

	ps := w.Draft().Participants
	require.Len(t, ps, 1)
	assert.True(t, ps[0].Approved)
	assert.True(t, ps[0].AutoAccept)
	assert.Equal(t, domain.InvitationStatusInvited, ps[0].Status)
	assert.Zero(t, ps[0].QuestionnairesCompleted)
	assert.Zero(t, ps[0].LotsEntered)
}

func TestWizard_ToggleApprovalAt(t *testing.T) {
	w := newTestWizard()

	w.AddParticipant(domain.Participant{Email: "supplier@corp.com"})
	require.False(t, w.Draft().Participants[0].Approved)

	require.NoError(t, w.ToggleApprovalAt(0))
	assert.True(t, w.Draft().Participants[0].Approved)

	require.NoError(t, w.ToggleApprovalAt(0))
	assert.False(t, w.Draft().Participants[0].Approved)

	err := w.ToggleApprovalAt(5)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWizard_RemoveParticipantAt(t *testing.T) {
	w := newTestWizard()

	w.AddParticipant(domain.Participant{Email: "a@corp.com"})
	w.AddParticipant(domain.Participant{Email: "b@corp.com"})

	require.NoError(t, w.RemoveParticipantAt(0))

	ps := w.Draft().Participants
	require.Len(t, ps, 1)
	assert.Equal(t, "b@corp.com", ps[0].Participant.Email)
}

func TestWizard_UpdateQuestionnaireAt(t *testing.T) {
	w := newTestWizard()

	w.AddQuestionnaire()
	require.NoError(t, w.UpdateQuestionnaireAt(0, domain.Questionnaire{Name: "Compliance", OrderIndex: 1}))
	assert.Equal(t, "Compliance", w.Draft().Questionnaires[0].Name)

	err := w.UpdateQuestionnaireAt(2, domain.Questionnaire{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
