package worker

// Pool defaults used when a caller passes a non-positive size.
const (
	DefaultWorkers   = 2
	DefaultQueueSize = 64
)

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	LogMsgWorkerJobFailed       = "Worker job failed"
	LogMsgWorkerJobPanicked     = "Worker job panicked"
	LogMsgWorkerQueueFull       = "Worker queue full, job dropped"
	LogMsgWorkerPoolStopped     = "Worker pool stopped, job rejected"
	LogMsgWorkerPoolDrained     = "Worker pool drained"
	LogMsgWorkerPoolStopTimeout = "Worker pool stop timed out, jobs may be lost"
)

// ============================================================================
// Log Messages - Periodic Worker
// ============================================================================

const (
	LogMsgPeriodicStarted     = "Periodic worker started"
	LogMsgPeriodicRunFailed   = "Periodic worker run failed"
	LogMsgPeriodicStopped     = "Periodic worker stopped"
	LogMsgPeriodicStopTimeout = "Periodic worker shutdown timeout, a run may still be in progress"
)
