package domain

import "time"

type BidDirection string

const (
	BidDirectionForward BidDirection = "forward"
	BidDirectionReverse BidDirection = "reverse"
)

type AuctionSettings struct {
	EventID            string       `json:"event_id"`
	StartDate          *time.Time   `json:"start_date"`
	StartTime          string       `json:"start_time"`
	BidDirection       BidDirection `json:"bid_direction"`
	EventType          string       `json:"event_type"`
	MinimumDuration    int          `json:"minimum_duration"`
	DynamicClosePeriod string       `json:"dynamic_close_period"`
	MinimumBidChange   float64      `json:"minimum_bid_change"`
	MaximumBidChange   float64      `json:"maximum_bid_change"`
	TiedBidOption      string       `json:"tied_bid_option"`
}

// DefaultAuctionSettings returns the settings the auction step starts from.
func DefaultAuctionSettings() AuctionSettings {
	return AuctionSettings{
		StartTime:          "12:00",
		BidDirection:       BidDirectionReverse,
		EventType:          "ranked",
		MinimumDuration:    10,
		DynamicClosePeriod: "2_minutes",
		MinimumBidChange:   0.5,
		MaximumBidChange:   10,
		TiedBidOption:      "worst_position",
	}
}
