package dto

type BasicsRequest struct {
	Name                 string `json:"name"`
	Category             string `json:"category"`
	DefaultCurrency      string `json:"default_currency" binding:"required"`
	MultiCurrency        bool   `json:"multi_currency"`
	BriefText            string `json:"brief_text"`
	IncludeAuction       bool   `json:"include_auction"`
	IncludeQuestionnaire bool   `json:"include_questionnaire"`
	IncludeRFQ           bool   `json:"include_rfq"`
	SealResults          bool   `json:"seal_results"`
}

type AuctionRequest struct {
	StartDate          string  `json:"start_date"`
	StartTime          string  `json:"start_time" binding:"required"`
	BidDirection       string  `json:"bid_direction" binding:"required,oneof=forward reverse"`
	EventType          string  `json:"event_type" binding:"required"`
	MinimumDuration    int     `json:"minimum_duration" binding:"required,gt=0"`
	DynamicClosePeriod string  `json:"dynamic_close_period"`
	MinimumBidChange   float64 `json:"minimum_bid_change"`
	MaximumBidChange   float64 `json:"maximum_bid_change"`
	TiedBidOption      string  `json:"tied_bid_option"`
}

type QuestionnaireRequest struct {
	Name             string `json:"name"`
	Deadline         string `json:"deadline"`
	PreQualification bool   `json:"pre_qualification"`
	Scoring          bool   `json:"scoring"`
	Weighting        bool   `json:"weighting"`
	OrderIndex       int    `json:"order_index"`
}

type DocumentRequest struct {
	Name          string `json:"name" binding:"required"`
	FilePath      string `json:"file_path"`
	FileSize      int64  `json:"file_size"`
	MimeType      string `json:"mime_type"`
	Version       string `json:"version"`
	SharedWithAll bool   `json:"shared_with_all"`
}

type LotRequest struct {
	Name               string  `json:"name" binding:"required"`
	Quantity           int     `json:"quantity"`
	UnitOfMeasure      string  `json:"unit_of_measure"`
	CurrentPrice       float64 `json:"current_price"`
	QualificationPrice float64 `json:"qualification_price"`
}

type ParticipantRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Name    string `json:"name"`
	Company string `json:"company"`
}

type AutoAcceptRequest struct {
	AutoAccept *bool `json:"auto_accept" binding:"required"`
}

type QuestionnairesRequest struct {
	Questionnaires []QuestionnaireRequest `json:"questionnaires" binding:"required"`
}

type DocumentsRequest struct {
	Documents []DocumentRequest `json:"documents" binding:"required"`
}

type LotsRequest struct {
	Lots []LotRequest `json:"lots" binding:"required"`
}
