package sink

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/SmsAuto_Go/internal/domain"
)

// writeJob persists one record. The pool logs a failure; nobody waits for it.
type writeJob struct {
	store RecordStore
	rec   domain.CodeRecord
}

func (j *writeJob) Process(ctx context.Context) error {
	if err := j.store.Write(ctx, j.rec); err != nil {
		return fmt.Errorf("write record for %q: %w", j.rec.Sender, err)
	}
	return nil
}

type historyJob struct {
	recorder HistoryRecorder
	ev       domain.CodeEvent
	source   string
	at       time.Time
}

func (j *historyJob) Process(ctx context.Context) error {
	if err := j.recorder.Record(ctx, j.ev, j.source, j.at); err != nil {
		return fmt.Errorf("record history for %s: %w", j.ev.SourceApp, err)
	}
	return nil
}
