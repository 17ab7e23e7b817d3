package domain

import "math"

// Lot values are computed once when the lot is entered and stored as-is;
// a later price edit does not update a previously stored value.
type Lot struct {
	ID                 string  `json:"id,omitempty"`
	EventID            string  `json:"event_id,omitempty"`
	Name               string  `json:"name"`
	Quantity           int     `json:"quantity"`
	UnitOfMeasure      string  `json:"unit_of_measure"`
	CurrentPrice       float64 `json:"current_price"`
	QualificationPrice float64 `json:"qualification_price"`
	CurrentValue       float64 `json:"current_value"`
	QualificationValue float64 `json:"qualification_value"`
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
