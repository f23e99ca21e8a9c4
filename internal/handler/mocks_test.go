package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/SmsAuto_Go/internal/domain"
	"github.com/osse101/SmsAuto_Go/internal/record"
)

type MockConnectionState struct {
	mock.Mock
}

func (m *MockConnectionState) Connected() bool {
	return m.Called().Bool(0)
}

func (m *MockConnectionState) Sources() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockReceiver struct {
	mock.Mock
}

func (m *MockReceiver) Receive(ctx context.Context, n domain.Notification) (domain.CodeEvent, bool) {
	args := m.Called(ctx, n)
	return args.Get(0).(domain.CodeEvent), args.Bool(1)
}

type MockRecordReader struct {
	mock.Mock
}

func (m *MockRecordReader) Read(ctx context.Context) (domain.CodeRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.CodeRecord), args.Error(1)
}

type MockRecordDeleter struct {
	mock.Mock
}

func (m *MockRecordDeleter) DeleteRecord(ctx context.Context) record.DeleteOutcome {
	return m.Called(ctx).Get(0).(record.DeleteOutcome)
}

type MockHistoryReader struct {
	mock.Mock
}

func (m *MockHistoryReader) Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryEntry), args.Error(1)
}

type staticLog string

func (s staticLog) Log() string { return string(s) }
