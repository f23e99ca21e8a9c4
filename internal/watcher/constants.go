package watcher

import "time"

// Deduper defaults
const (
	DefaultDedupeSize = 512
	DefaultDedupeTTL  = 10 * time.Minute
)

// Log messages
const (
	LogMsgNotificationReceived = "Notification received"
	LogMsgDuplicateDropped     = "Duplicate notification dropped"
	LogMsgListenerConnected    = "Notification listener connected"
	LogMsgListenerDisconnected = "Notification listener disconnected"
)
