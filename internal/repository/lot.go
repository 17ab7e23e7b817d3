package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type LotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLotRepo(db *dbpg.DB) *LotRepository {
	return &LotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Insert stores lot values as given; they were computed at entry time and are
// never re-derived from price and quantity here.
func (r *LotRepository) Insert(ctx context.Context, eventID string, lots []domain.Lot) error {
	query := `INSERT INTO lots (id, event_id, name, quantity, unit_of_measure, current_price,
	                            qualification_price, current_value, qualification_value)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for i := range lots {
		l := &lots[i]
		if l.ID == "" {
			l.ID = uuid.New().String()
		}
		l.EventID = eventID
		_, err := r.db.ExecWithRetry(
			ctx, r.strategy, query,
			l.ID, eventID, l.Name, l.Quantity, l.UnitOfMeasure, l.CurrentPrice,
			l.QualificationPrice, l.CurrentValue, l.QualificationValue,
		)
		if err != nil {
			return fmt.Errorf("insert lot: %w", err)
		}
	}

	return nil
}

func (r *LotRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.Lot, error) {
	query := `SELECT id, event_id, name, quantity, unit_of_measure, current_price,
	                 qualification_price, current_value, qualification_value
	          FROM lots
	          WHERE event_id=$1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()

	var res []domain.Lot
	for rows.Next() {
		var l domain.Lot
		if err = rows.Scan(
			&l.ID, &l.EventID, &l.Name, &l.Quantity, &l.UnitOfMeasure, &l.CurrentPrice,
			&l.QualificationPrice, &l.CurrentValue, &l.QualificationValue,
		); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		res = append(res, l)
	}

	return res, rows.Err()
}

func (r *LotRepository) DeleteByEvent(ctx context.Context, eventID string) error {
	query := `DELETE FROM lots WHERE event_id=$1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID); err != nil {
		return fmt.Errorf("delete lots: %w", err)
	}

	return nil
}
