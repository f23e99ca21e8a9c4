package history

import (
	"context"
	"time"

	"github.com/osse101/SmsAuto_Go/internal/domain"
)

// Repository stores code events.
type Repository interface {
	// Insert stores one entry; ID is ignored.
	Insert(ctx context.Context, entry domain.HistoryEntry) error

	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// DeleteOlderThan removes entries received before cutoff.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
