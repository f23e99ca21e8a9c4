package history

import (
	"context"
	"time"

	"github.com/osse101/SmsAuto_Go/internal/logger"
)

// CleanupJob prunes expired history; it runs on the worker pool.
type CleanupJob struct {
	service *Service
}

// NewCleanupJob creates a new cleanup job
func NewCleanupJob(service *Service) *CleanupJob {
	return &CleanupJob{service: service}
}

// Process executes the cleanup job
func (j *CleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCleanupJobStarting, "retention", j.service.retention)

	start := time.Now()
	count, err := j.service.Cleanup(ctx)
	duration := time.Since(start)

	if err != nil {
		log.Error(LogMsgCleanupJobFailed, "error", err, "duration", duration)
		return err
	}

	log.Info(LogMsgCleanupJobCompleted, "deleted_count", count, "duration", duration)
	return nil
}
