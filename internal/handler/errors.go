package handler

// Generic HTTP error messages for client responses. They never carry
// internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgRecordNotFound        = "No verification code record"
	ErrMsgReadRecordFailed      = "Failed to read verification code record"
	ErrMsgHistoryFailed         = "Failed to load notification history"
	ErrMsgNotReady              = "no notification listener connected"
	ErrMsgDatabaseUnavailable   = "database connection failed"
)

// Health status values
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// History paging
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// Log messages
const (
	LogMsgNotificationIngested = "Notification ingested"
	LogMsgDuplicateIngest      = "Duplicate notification ignored"
	LogMsgReadRecordFailed     = "Failed to read record"
	LogMsgHistoryFailed        = "Failed to load history"
	LogMsgReadinessFailed      = "Readiness check failed"
	LogMsgEncodeFailed         = "Failed to encode JSON response"
	LogMsgWriteFailed          = "Failed to write response buffer"
)
