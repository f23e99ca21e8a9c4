package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)

// Pipeline Metrics
var (
	NotificationsReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameNotificationsReceived,
			Help:      HelpTextNotificationsReceived,
		},
		[]string{LabelSource},
	)

	NotificationsDuplicate = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameNotificationsDuplicate,
			Help:      HelpTextNotificationsDuplicate,
		},
		[]string{LabelSource},
	)

	// CodesExtracted is labelled with the source, not the caller-supplied
	// package name, to keep the series set bounded.
	CodesExtracted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameCodesExtracted,
			Help:      HelpTextCodesExtracted,
		},
		[]string{LabelSource},
	)

	// TransportDeliveries is labelled with the delivery path rather than the
	// event type; there is only one event type on the primary path.
	TransportDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameTransportDeliveries,
			Help:      HelpTextTransportDeliveries,
		},
		[]string{LabelPath},
	)

	RecordWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameRecordWrites,
			Help:      HelpTextRecordWrites,
		},
		[]string{LabelResult},
	)

	RecordDeletes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameRecordDeletes,
			Help:      HelpTextRecordDeletes,
		},
		[]string{LabelOutcome},
	)

	WorkerJobsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameWorkerJobsDropped,
			Help:      HelpTextWorkerJobsDropped,
		},
	)

	WorkerQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameWorkerQueueDepth,
			Help:      HelpTextWorkerQueueDepth,
		},
	)

	ListenerConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameListenerConnected,
			Help:      HelpTextListenerConnected,
		},
	)

	SSEClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameSSEClients,
			Help:      HelpTextSSEClients,
		},
	)

	// LiveLogBytes tracks the live log, which is never trimmed.
	LiveLogBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameLiveLogBytes,
			Help:      HelpTextLiveLogBytes,
		},
	)
)

// SetListenerConnected mirrors the watcher's connection flag.
func SetListenerConnected(connected bool) {
	if connected {
		ListenerConnected.Set(1)
		return
	}
	ListenerConnected.Set(0)
}

// ObserveRecordWrite counts a record write by its error result.
func ObserveRecordWrite(err error) {
	if err != nil {
		RecordWrites.WithLabelValues(ResultFailure).Inc()
		return
	}
	RecordWrites.WithLabelValues(ResultSuccess).Inc()
}
