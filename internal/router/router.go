package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	StartWizard(c *ginext.Context)
	StartEditWizard(c *ginext.Context)
	GetWizard(c *ginext.Context)
	NextStep(c *ginext.Context)
	PreviousStep(c *ginext.Context)
	UpdateBasics(c *ginext.Context)
	UpdateAuction(c *ginext.Context)
	UpdateQuestionnaires(c *ginext.Context)
	AddQuestionnaire(c *ginext.Context)
	UpdateQuestionnaire(c *ginext.Context)
	UpdateDocuments(c *ginext.Context)
	AddDocuments(c *ginext.Context)
	UpdateLots(c *ginext.Context)
	AddLot(c *ginext.Context)
	RemoveLot(c *ginext.Context)
	AddParticipant(c *ginext.Context)
	RemoveParticipant(c *ginext.Context)
	ToggleApproval(c *ginext.Context)
	SetAutoAccept(c *ginext.Context)
	SaveDraft(c *ginext.Context)
	LaunchEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListInvitations(c *ginext.Context)
	AcceptInvitation(c *ginext.Context)
	DeclineInvitation(c *ginext.Context)
}

// InitRouter wires the HTTP surface. auth guards the API group only; the
// health probe stays open.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	api.Use(auth)
	{
		// Wizard sessions
		api.POST("/wizard", h.StartWizard)
		api.GET("/wizard/:id", h.GetWizard)
		api.POST("/wizard/:id/next", h.NextStep)
		api.POST("/wizard/:id/previous", h.PreviousStep)

		// Step forms
		api.PUT("/wizard/:id/basics", h.UpdateBasics)
		api.PUT("/wizard/:id/auction", h.UpdateAuction)
		api.PUT("/wizard/:id/questionnaires", h.UpdateQuestionnaires)
		api.POST("/wizard/:id/questionnaires", h.AddQuestionnaire)
		api.PUT("/wizard/:id/questionnaires/:index", h.UpdateQuestionnaire)
		api.PUT("/wizard/:id/documents", h.UpdateDocuments)
		api.POST("/wizard/:id/documents", h.AddDocuments)
		api.PUT("/wizard/:id/lots", h.UpdateLots)
		api.POST("/wizard/:id/lots", h.AddLot)
		api.DELETE("/wizard/:id/lots/:index", h.RemoveLot)
		api.POST("/wizard/:id/participants", h.AddParticipant)
		api.DELETE("/wizard/:id/participants/:index", h.RemoveParticipant)
		api.POST("/wizard/:id/participants/:index/approval", h.ToggleApproval)
		api.PUT("/wizard/:id/auto-accept", h.SetAutoAccept)

		// Persistence
		api.POST("/wizard/:id/save", h.SaveDraft)
		api.POST("/wizard/:id/launch", h.LaunchEvent)

		// Events
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/wizard", h.StartEditWizard)

		// Supplier invitations
		api.GET("/invitations", h.ListInvitations)
		api.POST("/invitations/:id/accept", h.AcceptInvitation)
		api.POST("/invitations/:id/decline", h.DeclineInvitation)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
