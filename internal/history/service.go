// Package history keeps an optional trail of code events in Postgres.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/SmsAuto_Go/internal/domain"
	"github.com/osse101/SmsAuto_Go/internal/logger"
)

const day = 24 * time.Hour

// Service records code events and prunes old ones.
type Service struct {
	repo      Repository
	retention time.Duration
	now       func() time.Time
}

// NewService creates a Service that keeps entries for retention.
func NewService(repo Repository, retention time.Duration) *Service {
	return &Service{repo: repo, retention: retention, now: time.Now}
}

// Record stores ev as seen from source at at.
func (s *Service) Record(ctx context.Context, ev domain.CodeEvent, source string, at time.Time) error {
	entry := domain.HistoryEntry{
		Source:     source,
		SourceApp:  ev.SourceApp,
		Sender:     ev.Sender,
		Content:    ev.Content,
		Code:       ev.Code,
		ReceivedAt: at,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		logger.FromContext(ctx).Error(LogMsgFailedToRecordEntry, "error", err, "source", source)
		return fmt.Errorf("%s: %w", ErrMsgInsertEntry, err)
	}
	logger.FromContext(ctx).Debug(LogMsgEntryRecorded, "source", source, "has_code", ev.HasCode())
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	entries, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryRecent, err)
	}
	return entries, nil
}

// Cleanup removes entries older than the retention period.
func (s *Service) Cleanup(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteOlderThan(ctx, s.now().Add(-s.retention))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgCleanupEntry, err)
	}
	return n, nil
}

// RetentionFromDays converts a day count to a duration.
func RetentionFromDays(days int) time.Duration {
	return time.Duration(days) * day
}
