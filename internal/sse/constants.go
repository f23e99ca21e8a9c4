package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// KeepaliveInterval is how often an idle stream gets a ping.
const KeepaliveInterval = 30 * time.Second

// Event types for SSE. log.appended and toast come from the sink.
const (
	EventTypeConnected    = "connected"
	EventTypeCodeFallback = "code.fallback"
	EventTypeKeepalive    = "keepalive"
)

// FilterQueryParam selects event types, comma separated.
const FilterQueryParam = "types"

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgBroadcastDropped   = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgStreamUnsupported  = "SSE not supported"
	LogMsgFallbackRegistered = "SSE subscriber registered on fallback bus"
)
