package history

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/SmsAuto_Go/internal/domain"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Insert(ctx context.Context, entry domain.HistoryEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockRepository) Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryEntry), args.Error(1)
}

func (m *MockRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
