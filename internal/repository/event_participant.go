package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventParticipantRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventParticipantRepo(db *dbpg.DB) *EventParticipantRepository {
	return &EventParticipantRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventParticipantRepository) Insert(ctx context.Context, eventID string, eps []domain.EventParticipant) error {
	query := `INSERT INTO event_participants (event_id, participant_id, status, approved, auto_accept,
	                                          questionnaires_completed, lots_entered, invited_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i := range eps {
		ep := &eps[i]
		ep.EventID = eventID
		_, err := r.db.ExecWithRetry(
			ctx, r.strategy, query,
			eventID, ep.ParticipantID, ep.Status, ep.Approved, ep.AutoAccept,
			ep.QuestionnairesCompleted, ep.LotsEntered, ep.InvitedAt,
		)
		if err != nil {
			return fmt.Errorf("insert event participant: %w", err)
		}
	}

	return nil
}

func (r *EventParticipantRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.EventParticipant, error) {
	query := `SELECT event_id, participant_id, status, approved, auto_accept,
	                 questionnaires_completed, lots_entered, invited_at
	          FROM event_participants
	          WHERE event_id=$1
	          ORDER BY invited_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event participants: %w", err)
	}
	defer rows.Close()

	var res []domain.EventParticipant
	for rows.Next() {
		var ep domain.EventParticipant
		if err = rows.Scan(
			&ep.EventID, &ep.ParticipantID, &ep.Status, &ep.Approved, &ep.AutoAccept,
			&ep.QuestionnairesCompleted, &ep.LotsEntered, &ep.InvitedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event participant: %w", err)
		}
		res = append(res, ep)
	}

	return res, rows.Err()
}

func (r *EventParticipantRepository) ListByParticipant(ctx context.Context, participantID string) ([]domain.EventParticipant, error) {
	query := `SELECT event_id, participant_id, status, approved, auto_accept,
	                 questionnaires_completed, lots_entered, invited_at
	          FROM event_participants
	          WHERE participant_id=$1
	          ORDER BY invited_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, participantID)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	defer rows.Close()

	var res []domain.EventParticipant
	for rows.Next() {
		var ep domain.EventParticipant
		if err = rows.Scan(
			&ep.EventID, &ep.ParticipantID, &ep.Status, &ep.Approved, &ep.AutoAccept,
			&ep.QuestionnairesCompleted, &ep.LotsEntered, &ep.InvitedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invitation: %w", err)
		}
		res = append(res, ep)
	}

	return res, rows.Err()
}

func (r *EventParticipantRepository) UpdateStatus(ctx context.Context, eventID, participantID string, status domain.InvitationStatus) error {
	query := `UPDATE event_participants
	          SET status=$3
	          WHERE event_id=$1 AND participant_id=$2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, participantID, status)
	if err != nil {
		return fmt.Errorf("update invitation status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("invitation rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrInvitationNotFound
	}

	return nil
}

func (r *EventParticipantRepository) DeleteByEvent(ctx context.Context, eventID string) error {
	query := `DELETE FROM event_participants WHERE event_id=$1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID); err != nil {
		return fmt.Errorf("delete event participants: %w", err)
	}

	return nil
}
