package history

// Log messages - service
const (
	LogMsgEntryRecorded       = "Code event recorded to history"
	LogMsgFailedToRecordEntry = "Failed to record code event to history"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting history cleanup job"
	LogMsgCleanupJobFailed    = "History cleanup failed"
	LogMsgCleanupJobCompleted = "History cleanup completed"
)

// Error messages
const (
	ErrMsgInsertEntry  = "failed to insert history entry"
	ErrMsgQueryRecent  = "failed to query history"
	ErrMsgCleanupEntry = "failed to delete old history entries"
)
