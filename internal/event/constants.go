package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Delivery paths, used as metric labels
const (
	PathPrimary  = "primary"
	PathFallback = "fallback"
	PathDropped  = "dropped"
)

// Log message constants
const (
	LogMsgNoSubscriber         = "No subscriber registered, using fallback"
	LogMsgSubscriberFailed     = "Subscriber failed to handle event, using fallback"
	LogMsgSubscriberPanicked   = "Subscriber panicked while handling event, using fallback"
	LogMsgFallbackFailed       = "Fallback publish failed, event dropped"
	LogMsgEventDropped         = "Event dropped, no subscriber and no fallback"
	LogMsgSubscriberReplaced   = "Replacing registered subscriber"
	LogMsgEventDelivered       = "Event delivered"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
