package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AuctionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAuctionRepo(db *dbpg.DB) *AuctionRepository {
	return &AuctionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AuctionRepository) Insert(ctx context.Context, eventID string, s *domain.AuctionSettings) error {
	query := `INSERT INTO auction_settings (event_id, start_date, start_time, bid_direction, event_type,
	                                        minimum_duration, dynamic_close_period, minimum_bid_change,
	                                        maximum_bid_change, tied_bid_option)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		eventID, s.StartDate, s.StartTime, s.BidDirection, s.EventType,
		s.MinimumDuration, s.DynamicClosePeriod, s.MinimumBidChange,
		s.MaximumBidChange, s.TiedBidOption,
	)
	if err != nil {
		return fmt.Errorf("insert auction settings: %w", err)
	}

	return nil
}

func (r *AuctionRepository) GetByEvent(ctx context.Context, eventID string) (*domain.AuctionSettings, error) {
	query := `SELECT event_id, start_date, start_time, bid_direction, event_type,
	                 minimum_duration, dynamic_close_period, minimum_bid_change,
	                 maximum_bid_change, tied_bid_option
	          FROM auction_settings
	          WHERE event_id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("get auction settings: %w", err)
	}

	var s domain.AuctionSettings
	if err = row.Scan(
		&s.EventID, &s.StartDate, &s.StartTime, &s.BidDirection, &s.EventType,
		&s.MinimumDuration, &s.DynamicClosePeriod, &s.MinimumBidChange,
		&s.MaximumBidChange, &s.TiedBidOption,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAuctionNotFound
		}
		return nil, fmt.Errorf("scan auction settings: %w", err)
	}

	return &s, nil
}

func (r *AuctionRepository) DeleteByEvent(ctx context.Context, eventID string) error {
	query := `DELETE FROM auction_settings WHERE event_id=$1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID); err != nil {
		return fmt.Errorf("delete auction settings: %w", err)
	}

	return nil
}
