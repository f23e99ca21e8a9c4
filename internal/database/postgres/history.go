// Package postgres holds the Postgres repositories.
package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SmsAuto_Go/internal/domain"
	"github.com/osse101/SmsAuto_Go/internal/history"
)

type historyRepository struct {
	db *pgxpool.Pool
}

// NewHistoryRepository creates a new PostgreSQL history repository
func NewHistoryRepository(db *pgxpool.Pool) history.Repository {
	return &historyRepository{db: db}
}

// Insert stores an entry. An empty code is stored as NULL.
func (r *historyRepository) Insert(ctx context.Context, e domain.HistoryEntry) error {
	query := `
		INSERT INTO notification_history (source, source_app, sender, content, code, received_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
	`
	_, err := r.db.Exec(ctx, query, e.Source, e.SourceApp, e.Sender, e.Content, e.Code, e.ReceivedAt)
	return err
}

// Recent returns up to limit entries, newest first.
func (r *historyRepository) Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	query := `
		SELECT id, source, source_app, sender, content, COALESCE(code, ''), received_at
		FROM notification_history
		ORDER BY received_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.HistoryEntry, error) {
		var e domain.HistoryEntry
		err := row.Scan(&e.ID, &e.Source, &e.SourceApp, &e.Sender, &e.Content, &e.Code, &e.ReceivedAt)
		return e, err
	})
}

// DeleteOlderThan removes entries received before cutoff.
func (r *historyRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM notification_history WHERE received_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
