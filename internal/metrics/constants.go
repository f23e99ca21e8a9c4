package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric exported by the daemon.
const Namespace = "sms_auto"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Pipeline metric names
const (
	MetricNameNotificationsReceived  = "notifications_received_total"
	MetricNameNotificationsDuplicate = "notifications_duplicate_total"
	MetricNameCodesExtracted         = "codes_extracted_total"
	MetricNameTransportDeliveries    = "transport_deliveries_total"
	MetricNameRecordWrites           = "record_writes_total"
	MetricNameRecordDeletes          = "record_deletes_total"
	MetricNameWorkerJobsDropped      = "worker_jobs_dropped_total"
	MetricNameWorkerQueueDepth       = "worker_queue_depth"
	MetricNameListenerConnected      = "listener_connected"
	MetricNameSSEClients             = "sse_clients"
	MetricNameLiveLogBytes           = "live_log_bytes"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

const (
	HelpTextNotificationsReceived  = "Notifications handed to the watcher, by source"
	HelpTextNotificationsDuplicate = "Notifications discarded as already seen, by source"
	HelpTextCodesExtracted         = "Notifications in which a 6-digit code was found, by source"
	HelpTextTransportDeliveries    = "Code events by delivery path (primary, fallback, dropped)"
	HelpTextRecordWrites           = "Record file writes by result"
	HelpTextRecordDeletes          = "Record deletions by outcome"
	HelpTextWorkerJobsDropped      = "Jobs dropped because the worker queue was full"
	HelpTextWorkerQueueDepth       = "Jobs waiting in the worker queue"
	HelpTextListenerConnected      = "1 while at least one notification source is connected"
	HelpTextSSEClients             = "Connected live event stream clients"
	HelpTextLiveLogBytes           = "Size of the in-memory live log"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelSource  = "source"
	LabelResult  = "result"
	LabelOutcome = "outcome"
)

// Label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// UnmatchedRoute labels requests that did not hit a registered route.
const UnmatchedRoute = "unmatched"

// HTTPLatencyBuckets spans 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
