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

type QuestionnaireRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewQuestionnaireRepo(db *dbpg.DB) *QuestionnaireRepository {
	return &QuestionnaireRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *QuestionnaireRepository) Insert(ctx context.Context, eventID string, qs []domain.Questionnaire) error {
	query := `INSERT INTO questionnaires (id, event_id, name, deadline, pre_qualification, scoring, weighting, order_index)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i := range qs {
		q := &qs[i]
		if q.ID == "" {
			q.ID = uuid.New().String()
		}
		q.EventID = eventID
		_, err := r.db.ExecWithRetry(
			ctx, r.strategy, query,
			q.ID, eventID, q.Name, q.Deadline, q.PreQualification, q.Scoring, q.Weighting, q.OrderIndex,
		)
		if err != nil {
			return fmt.Errorf("insert questionnaire: %w", err)
		}
	}

	return nil
}

func (r *QuestionnaireRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.Questionnaire, error) {
	query := `SELECT id, event_id, name, deadline, pre_qualification, scoring, weighting, order_index
	          FROM questionnaires
	          WHERE event_id=$1
	          ORDER BY order_index ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list questionnaires: %w", err)
	}
	defer rows.Close()

	var res []domain.Questionnaire
	for rows.Next() {
		var q domain.Questionnaire
		if err = rows.Scan(&q.ID, &q.EventID, &q.Name, &q.Deadline, &q.PreQualification, &q.Scoring, &q.Weighting, &q.OrderIndex); err != nil {
			return nil, fmt.Errorf("scan questionnaire: %w", err)
		}
		res = append(res, q)
	}

	return res, rows.Err()
}

func (r *QuestionnaireRepository) DeleteByEvent(ctx context.Context, eventID string) error {
	query := `DELETE FROM questionnaires WHERE event_id=$1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID); err != nil {
		return fmt.Errorf("delete questionnaires: %w", err)
	}

	return nil
}
