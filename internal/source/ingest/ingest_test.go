package ingest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/SmsAuto_Go/internal/domain"
	"github.com/osse101/SmsAuto_Go/internal/source"
)

type MockListener struct {
	mock.Mock
}

func (m *MockListener) Receive(ctx context.Context, n domain.Notification) (domain.CodeEvent, bool) {
	args := m.Called(ctx, n)
	return args.Get(0).(domain.CodeEvent), args.Bool(1)
}

func (m *MockListener) OnListenerConnected(s string)    { m.Called(s) }
func (m *MockListener) OnListenerDisconnected(s string) { m.Called(s) }

func TestSource_ReceiveStampsSource(t *testing.T) {
	l := &MockListener{}
	l.On("Receive", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Source == source.NameIngest && n.PackageName == "com.bank.x"
	})).Return(domain.CodeEvent{Code: "483920"}, true)

	ev, ok := New(l).Receive(context.Background(), domain.Notification{Source: "spoofed", PackageName: "com.bank.x"})

	assert.True(t, ok)
	assert.Equal(t, "483920", ev.Code)
	l.AssertExpectations(t)
}

func TestSource_StartStopDriveConnection(t *testing.T) {
	l := &MockListener{}
	l.On("OnListenerConnected", source.NameIngest).Once()
	l.On("OnListenerDisconnected", source.NameIngest).Once()

	s := New(l)
	assert.Equal(t, source.NameIngest, s.Name())
	assert.NoError(t, s.Start(context.Background()))
	assert.NoError(t, s.Stop(context.Background()))
	l.AssertExpectations(t)
}
