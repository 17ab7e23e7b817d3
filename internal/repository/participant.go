package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ParticipantRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewParticipantRepo(db *dbpg.DB) *ParticipantRepository {
	return &ParticipantRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ParticipantRepository) Insert(ctx context.Context, p *domain.Participant) error {
	query := `INSERT INTO participants (id, email, name, company)
	          VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, p.ID, p.Email, p.Name, p.Company)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert participant: %w", err)
	}

	return nil
}

func (r *ParticipantRepository) GetByEmail(ctx context.Context, email string) (*domain.Participant, error) {
	query := `SELECT id, email, name, company
	          FROM participants
	          WHERE email=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get participant: %w", err)
	}

	var p domain.Participant
	if err = row.Scan(&p.ID, &p.Email, &p.Name, &p.Company); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("scan participant: %w", err)
	}

	return &p, nil
}

func (r *ParticipantRepository) ListByEmails(ctx context.Context, emails []string) ([]*domain.Participant, error) {
	query := `SELECT id, email, name, company
	          FROM participants
	          WHERE email = ANY($1)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(emails))
	if err != nil {
		return nil, fmt.Errorf("list participants by email: %w", err)
	}
	defer rows.Close()

	return scanParticipants(rows)
}

func (r *ParticipantRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Participant, error) {
	query := `SELECT id, email, name, company
	          FROM participants
	          WHERE id = ANY($1)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list participants by id: %w", err)
	}
	defer rows.Close()

	return scanParticipants(rows)
}

func scanParticipants(rows *sql.Rows) ([]*domain.Participant, error) {
	var res []*domain.Participant
	for rows.Next() {
		var p domain.Participant
		if err := rows.Scan(&p.ID, &p.Email, &p.Name, &p.Company); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}
