// Package record persists the most recent verification code as a single
// JSON file that other programs on the device poll.
package record

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/osse101/SmsAuto_Go/internal/domain"
	"github.com/osse101/SmsAuto_Go/internal/logger"
	"github.com/osse101/SmsAuto_Go/internal/metrics"
)

// ErrRecordNotFound is returned by Read when no record file exists.
var ErrRecordNotFound = errors.New("record not found")

// Store owns one record file. It holds no lock: every Write replaces the
// whole file with a rename, so concurrent writers race last-writer-wins and
// a reader only ever sees a complete record.
type Store struct {
	path string
}

// NewStore returns a store for the file at path.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Path returns the record file location.
func (s *Store) Path() string {
	return s.path
}

// FileName returns the base name shown in user messages.
func (s *Store) FileName() string {
	return filepath.Base(s.path)
}

// Encode renders rec exactly as it is stored: one JSON object, sender
// first, no HTML escaping and no trailing newline.
func Encode(rec domain.CodeRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Write replaces the record file with rec.
func (s *Store) Write(ctx context.Context, rec domain.CodeRecord) (err error) {
	defer func() { metrics.ObserveRecordWrite(err) }()

	data, err := Encode(rec)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgEncodeRecord, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCreateTemp, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", ErrMsgWriteTemp, err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", ErrMsgWriteTemp, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteTemp, err)
	}
	if err = os.Chmod(tmpName, FileMode); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteTemp, err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgReplaceRecord, err)
	}

	logger.FromContext(ctx).Debug(LogMsgRecordWritten, "path", s.path, "content", string(data))
	return nil
}

// Read loads the current record.
func (s *Store) Read(ctx context.Context) (domain.CodeRecord, error) {
	var rec domain.CodeRecord
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return rec, ErrRecordNotFound
	}
	if err != nil {
		return rec, fmt.Errorf("%s: %w", ErrMsgReadRecord, err)
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("%s: %w", ErrMsgDecodeRecord, err)
	}
	return rec, nil
}

// Delete removes the record file. Deleting a missing file is not an error
// and reports OutcomeNotFound, so repeated deletes never fail.
func (s *Store) Delete(ctx context.Context) DeleteOutcome {
	log := logger.FromContext(ctx)

	outcome := s.remove()
	switch outcome.Kind {
	case OutcomeFailed:
		log.Error(LogMsgRecordDeleteFailed, "path", s.path, "error", outcome.Err)
	default:
		log.Info(LogMsgRecordDeleted, "path", s.path, "outcome", outcome.Kind)
	}
	metrics.RecordDeletes.WithLabelValues(string(outcome.Kind)).Inc()
	return outcome
}

func (s *Store) remove() DeleteOutcome {
	name := s.FileName()
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return DeleteOutcome{Kind: OutcomeNotFound, FileName: name}
	}
	err := os.Remove(s.path)
	switch {
	case err == nil:
		return DeleteOutcome{Kind: OutcomeDeleted, FileName: name}
	case errors.Is(err, fs.ErrNotExist):
		return DeleteOutcome{Kind: OutcomeNotFound, FileName: name}
	default:
		return DeleteOutcome{Kind: OutcomeFailed, FileName: name, Err: err}
	}
}
