package domain

import "time"

type Questionnaire struct {
	ID               string     `json:"id,omitempty"`
	EventID          string     `json:"event_id,omitempty"`
	Name             string     `json:"name"`
	Deadline         *time.Time `json:"deadline"`
	PreQualification bool       `json:"pre_qualification"`
	Scoring          bool       `json:"scoring"`
	Weighting        bool       `json:"weighting"`
	OrderIndex       int        `json:"order_index"`
}
