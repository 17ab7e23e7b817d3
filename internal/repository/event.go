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

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Insert(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, user_id, name, category, default_currency, multi_currency, brief_text,
	                              include_auction, include_questionnaire, include_rfq, seal_results, status,
	                              created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.UserID, e.Name, e.Category, e.DefaultCurrency, e.MultiCurrency, e.BriefText,
		e.IncludeAuction, e.IncludeQuestionnaire, e.IncludeRFQ, e.SealResults, e.Status,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

// Update rewrites every editable column, filtered by id and owner so one user
// can never touch another user's event.
func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
	          SET name=$3, category=$4, default_currency=$5, multi_currency=$6, brief_text=$7,
	              include_auction=$8, include_questionnaire=$9, include_rfq=$10, seal_results=$11,
	              status=$12, updated_at=now()
	          WHERE id=$1 AND user_id=$2`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.UserID, e.Name, e.Category, e.DefaultCurrency, e.MultiCurrency, e.BriefText,
		e.IncludeAuction, e.IncludeQuestionnaire, e.IncludeRFQ, e.SealResults, e.Status,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) GetByIDAndOwner(ctx context.Context, id, userID string) (*domain.Event, error) {
	query := `SELECT id, user_id, name, category, default_currency, multi_currency, brief_text,
	                 include_auction, include_questionnaire, include_rfq, seal_results, status,
	                 created_at, updated_at
	          FROM events
	          WHERE id=$1 AND user_id=$2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.UserID, &e.Name, &e.Category, &e.DefaultCurrency, &e.MultiCurrency, &e.BriefText,
		&e.IncludeAuction, &e.IncludeQuestionnaire, &e.IncludeRFQ, &e.SealResults, &e.Status,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Event, error) {
	query := `SELECT id, user_id, name, category, default_currency, multi_currency, brief_text,
	                 include_auction, include_questionnaire, include_rfq, seal_results, status,
	                 created_at, updated_at
	          FROM events
	          WHERE user_id=$1
	          ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = rows.Scan(
			&e.ID, &e.UserID, &e.Name, &e.Category, &e.DefaultCurrency, &e.MultiCurrency, &e.BriefText,
			&e.IncludeAuction, &e.IncludeQuestionnaire, &e.IncludeRFQ, &e.SealResults, &e.Status,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}
