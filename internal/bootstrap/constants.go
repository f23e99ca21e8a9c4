package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept, counting the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting SmsAuto"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Wiring
// =============================================================================

const (
	// HistoryCleanupInterval is how often expired history is pruned.
	HistoryCleanupInterval = 24 * time.Hour

	historyCleanupWorker = "history-cleanup"
)

const (
	LogMsgHistoryEnabled    = "Notification history enabled"
	LogMsgSourceStarted     = "Notification source started"
	LogMsgSourceStartFailed = "Notification source failed to start"
	LogMsgNoSourcesEnabled  = "No notification source enabled"
	ErrMsgCreateDiscord     = "failed to create discord source"
	ErrMsgConnectDatabase   = "failed to connect to history database"
	ErrMsgMigrateDatabase   = "failed to migrate history database"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSourceStopFailed     = "Notification source stop failed"
	LogMsgWorkerShutdownFailed = "Worker shutdown failed"
	LogMsgWritePoolStopFailed  = "Write pool did not drain before deadline"
)
