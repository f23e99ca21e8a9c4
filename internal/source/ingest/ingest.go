// Package ingest is the HTTP push source. Notifications arrive through the
// API handler and are stamped with the ingest source name.
package ingest

import (
	"context"

	"github.com/osse101/SmsAuto_Go/internal/domain"
	"github.com/osse101/SmsAuto_Go/internal/source"
)

// Source is connected for as long as the HTTP server serves.
type Source struct {
	listener source.Listener
}

func New(listener source.Listener) *Source {
	return &Source{listener: listener}
}

func (s *Source) Name() string { return source.NameIngest }

// Receive forwards a posted notification to the listener.
func (s *Source) Receive(ctx context.Context, n domain.Notification) (domain.CodeEvent, bool) {
	n.Source = source.NameIngest
	return s.listener.Receive(ctx, n)
}

func (s *Source) Start(_ context.Context) error {
	s.listener.OnListenerConnected(source.NameIngest)
	return nil
}

func (s *Source) Stop(_ context.Context) error {
	s.listener.OnListenerDisconnected(source.NameIngest)
	return nil
}
