// Package discord relays channel messages from a Discord bot gateway as
// notifications.
package discord

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SmsAuto_Go/internal/domain"
	"github.com/osse101/SmsAuto_Go/internal/logger"
	"github.com/osse101/SmsAuto_Go/internal/source"
)

// Source follows gateway Connect/Disconnect events for the connection state.
type Source struct {
	session  *discordgo.Session
	listener source.Listener
	channels map[string]struct{}

	mu     sync.RWMutex
	selfID string
}

// New creates a gateway source. An empty channel list relays every channel
// the bot can see.
func New(listener source.Listener, token string, channels []string) (*Source, error) {
	s, err := discordgo.New(tokenPrefix + token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateSession, err)
	}
	s.Identify.Intents = discordgo.IntentGuildMessages |
		discordgo.IntentDirectMessages |
		discordgo.IntentMessageContent

	return newSource(s, listener, channels), nil
}

func newSource(session *discordgo.Session, listener source.Listener, channels []string) *Source {
	src := &Source{
		session:  session,
		listener: listener,
		channels: make(map[string]struct{}, len(channels)),
	}
	for _, c := range channels {
		src.channels[c] = struct{}{}
	}
	return src
}

func (s *Source) Name() string { return source.NameDiscord }

// Start opens the gateway. discordgo reconnects on its own; each
// reconnect fires Connect again.
func (s *Source) Start(_ context.Context) error {
	s.session.AddHandler(s.onConnect)
	s.session.AddHandler(s.onDisconnect)
	s.session.AddHandler(s.onReady)
	s.session.AddHandler(s.onMessageCreate)

	if err := s.session.Open(); err != nil {
		logger.Error(LogMsgOpenFailed, "error", err)
		return fmt.Errorf("%s: %w", ErrMsgOpenSession, err)
	}
	return nil
}

func (s *Source) Stop(_ context.Context) error {
	err := s.session.Close()
	s.listener.OnListenerDisconnected(source.NameDiscord)
	return err
}

func (s *Source) onConnect(_ *discordgo.Session, _ *discordgo.Connect) {
	s.listener.OnListenerConnected(source.NameDiscord)
}

func (s *Source) onDisconnect(_ *discordgo.Session, _ *discordgo.Disconnect) {
	s.listener.OnListenerDisconnected(source.NameDiscord)
}

func (s *Source) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	if r.User == nil {
		return
	}
	s.mu.Lock()
	s.selfID = r.User.ID
	s.mu.Unlock()
	logger.Info(LogMsgReady, "user", r.User.Username, "guilds", len(r.Guilds))
}

func (s *Source) onMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	n, ok := s.notification(m.Message)
	if !ok {
		return
	}
	ctx := context.Background()
	logger.FromContext(ctx).Debug(LogMsgMessageRelay, "channel", m.ChannelID, "message_id", m.ID)
	s.listener.Receive(ctx, n)
}

// notification maps a message. The bot's own messages and messages outside
// the configured channels are not relayed.
func (s *Source) notification(m *discordgo.Message) (domain.Notification, bool) {
	if m == nil || m.Author == nil {
		return domain.Notification{}, false
	}

	s.mu.RLock()
	self := s.selfID
	s.mu.RUnlock()
	if m.Author.ID == self {
		logger.Debug(LogMsgIgnoredOwn, "message_id", m.ID)
		return domain.Notification{}, false
	}

	if len(s.channels) > 0 {
		if _, ok := s.channels[m.ChannelID]; !ok {
			return domain.Notification{}, false
		}
	}

	title := m.Author.GlobalName
	if title == "" {
		title = m.Author.Username
	}
	return domain.Notification{
		Key:         m.ID,
		Source:      source.NameDiscord,
		PackageName: PackageName,
		Title:       title,
		Text:        m.Content,
		PostedAt:    m.Timestamp,
	}, true
}
