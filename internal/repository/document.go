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

type DocumentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewDocumentRepo(db *dbpg.DB) *DocumentRepository {
	return &DocumentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *DocumentRepository) Insert(ctx context.Context, eventID string, docs []domain.Document) error {
	query := `INSERT INTO documents (id, event_id, name, file_path, file_size, mime_type, version, shared_with_all)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i := range docs {
		d := &docs[i]
		if d.ID == "" {
			d.ID = uuid.New().String()
		}
		d.EventID = eventID
		_, err := r.db.ExecWithRetry(
			ctx, r.strategy, query,
			d.ID, eventID, d.Name, d.FilePath, d.FileSize, d.MimeType, d.Version, d.SharedWithAll,
		)
		if err != nil {
			return fmt.Errorf("insert document: %w", err)
		}
	}

	return nil
}

func (r *DocumentRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.Document, error) {
	query := `SELECT id, event_id, name, file_path, file_size, mime_type, version, shared_with_all
	          FROM documents
	          WHERE event_id=$1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var res []domain.Document
	for rows.Next() {
		var d domain.Document
		if err = rows.Scan(&d.ID, &d.EventID, &d.Name, &d.FilePath, &d.FileSize, &d.MimeType, &d.Version, &d.SharedWithAll); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		res = append(res, d)
	}

	return res, rows.Err()
}

func (r *DocumentRepository) DeleteByEvent(ctx context.Context, eventID string) error {
	query := `DELETE FROM documents WHERE event_id=$1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID); err != nil {
		return fmt.Errorf("delete documents: %w", err)
	}

	return nil
}
