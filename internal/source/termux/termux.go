// Package termux polls termux-notification-list and forwards notifications
// that appeared since the previous poll.
package termux

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/osse101/SmsAuto_Go/internal/domain"
	"github.com/osse101/SmsAuto_Go/internal/logger"
	"github.com/osse101/SmsAuto_Go/internal/source"
	"github.com/osse101/SmsAuto_Go/internal/worker"
)

// Runner executes the list command and returns its stdout.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs the command with os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// entry is one element of the termux-notification-list JSON array.
type entry struct {
	ID          int    `json:"id"`
	Key         string `json:"key"`
	PackageName string `json:"packageName"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	When        string `json:"when"`
}

func (e entry) id() string {
	return e.Key + "|" + e.When
}

// Source polls on a fixed interval. The first successful poll only records
// what is already on screen; later polls emit what is new.
type Source struct {
	listener source.Listener
	command  []string
	run      Runner
	periodic *worker.Periodic

	mu        sync.Mutex
	seen      map[string]struct{}
	baselined bool
	connected bool
}

// New creates a poller for command (split on whitespace). A nil runner uses
// ExecRunner.
func New(listener source.Listener, command string, interval time.Duration, run Runner) *Source {
	if run == nil {
		run = ExecRunner
	}
	s := &Source{
		listener: listener,
		command:  strings.Fields(command),
		run:      run,
		seen:     make(map[string]struct{}),
	}
	s.periodic = worker.NewPeriodic(source.NameTermux, interval, s.Poll)
	return s
}

func (s *Source) Name() string { return source.NameTermux }

func (s *Source) Start(_ context.Context) error {
	if len(s.command) == 0 {
		return fmt.Errorf("%s: empty command", ErrMsgRunCommand)
	}
	s.periodic.Start()
	return nil
}

func (s *Source) Stop(ctx context.Context) error {
	err := s.periodic.Shutdown(ctx)
	s.setConnected(false)
	return err
}

// Poll runs the command once. Its success or failure drives the
// connection state.
func (s *Source) Poll(ctx context.Context) error {
	out, err := s.run(ctx, s.command[0], s.command[1:]...)
	if err != nil {
		s.setConnected(false)
		return fmt.Errorf("%s: %w", ErrMsgRunCommand, err)
	}

	var entries []entry
	if err := json.Unmarshal(out, &entries); err != nil {
		s.setConnected(false)
		return fmt.Errorf("%s: %w", ErrMsgParseOutput, err)
	}
	s.setConnected(true)

	for _, n := range s.fresh(entries) {
		s.listener.Receive(ctx, n)
	}
	return nil
}

// fresh swaps in the current on-screen set and returns what was not in the
// previous one.
func (s *Source) fresh(entries []entry) []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := make(map[string]struct{}, len(entries))
	var out []domain.Notification
	for _, e := range entries {
		id := e.id()
		current[id] = struct{}{}
		if !s.baselined {
			continue
		}
		if _, ok := s.seen[id]; ok {
			continue
		}
		out = append(out, domain.Notification{
			Key:         id,
			Source:      source.NameTermux,
			PackageName: e.PackageName,
			Title:       e.Title,
			Text:        e.Content,
			PostedAt:    parseWhen(e.When),
		})
	}

	if !s.baselined {
		logger.Info(LogMsgBaseline, "count", len(entries))
	}
	s.seen = current
	s.baselined = true
	return out
}

func (s *Source) setConnected(up bool) {
	s.mu.Lock()
	changed := s.connected != up
	s.connected = up
	s.mu.Unlock()

	if !changed {
		return
	}
	if up {
		s.listener.OnListenerConnected(source.NameTermux)
	} else {
		s.listener.OnListenerDisconnected(source.NameTermux)
	}
}

func parseWhen(when string) time.Time {
	t, err := time.ParseInLocation(whenLayout, when, time.Local)
	if err != nil {
		return time.Now()
	}
	return t
}
