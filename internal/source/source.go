// Package source defines what a notification source needs from the
// watcher and how the daemon starts and stops it.
package source

import (
	"context"

	"github.com/osse101/SmsAuto_Go/internal/domain"
)

// Source names, used as the Notification.Source value and metric label.
const (
	NameIngest  = "ingest"
	NameTermux  = "termux"
	NameDiscord = "discord"
)

// Listener is the watcher side of a source.
type Listener interface {
	Receive(ctx context.Context, n domain.Notification) (domain.CodeEvent, bool)
	OnListenerConnected(source string)
	OnListenerDisconnected(source string)
}

// Source delivers notifications to a Listener between Start and Stop.
type Source interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}
