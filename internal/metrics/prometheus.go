package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the scoreboard service

var (
	// Sheet fetch metrics
	SheetFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportsday_sheet_fetches_total",
			Help: "Total number of sheet CSV fetches",
		},
		[]string{"status"},
	)

	SheetFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sportsday_sheet_fetch_duration_seconds",
			Help:    "Duration of sheet CSV fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Parser metrics
	RowsClassifiedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportsday_rows_classified_total",
			Help: "Total number of CSV rows by classification outcome",
		},
		[]string{"kind"},
	)

	// Poll metrics
	PollsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportsday_polls_total",
			Help: "Total number of poll cycles",
		},
		[]string{"status"},
	)

	PollDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sportsday_poll_duration_seconds",
			Help:    "Duration of poll cycles in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	PollDropsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sportsday_poll_drops_total",
			Help: "Total number of poll ticks dropped while a cycle was in flight",
		},
	)

	ConsecutivePollFailures = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sportsday_consecutive_poll_failures",
			Help: "Number of poll cycles failed in a row",
		},
	)

	// Reconcile metrics
	StateSwapsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sportsday_state_swaps_total",
			Help: "Total number of reconciled state swaps applied",
		},
	)

	StalenessGuardTrips = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportsday_staleness_guard_trips_total",
			Help: "Times an empty incoming bucket was rejected in favor of previous data",
		},
		[]string{"bucket"},
	)

	TrackedEventScores = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sportsday_tracked_event_scores",
			Help: "Number of class score entries in the current state",
		},
	)

	TrackedCheeringScores = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sportsday_tracked_cheering_scores",
			Help: "Number of cheering score entries in the current state",
		},
	)

	TrackedManualStatuses = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sportsday_tracked_manual_statuses",
			Help: "Number of manual status overrides in the current state",
		},
	)

	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportsday_http_requests_total",
			Help: "Total number of dashboard API requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sportsday_http_request_duration_seconds",
			Help:    "Duration of dashboard API requests in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"path"},
	)

	// WebSocket metrics
	WebsocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sportsday_websocket_clients",
			Help: "Number of connected dashboard WebSocket clients",
		},
	)

	WebsocketBroadcastsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sportsday_websocket_broadcasts_total",
			Help: "Total number of scoreboard payloads broadcast to clients",
		},
	)

	// Error metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportsday_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)

	// System metrics
	SystemUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sportsday_system_uptime_seconds",
			Help: "System uptime in seconds",
		},
	)

	LastSuccessfulPoll = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sportsday_last_successful_poll_timestamp",
			Help: "Timestamp of the last successfully applied poll",
		},
	)
)

// RecordFetch records a sheet fetch metric
func RecordFetch(status string, duration float64) {
	SheetFetchesTotal.WithLabelValues(status).Inc()
	SheetFetchDuration.Observe(duration)
}

// RecordRow records a row classification outcome
func RecordRow(kind string) {
	RowsClassifiedTotal.WithLabelValues(kind).Inc()
}

// RecordPoll records a poll cycle
func RecordPoll(status string, duration float64) {
	PollsTotal.WithLabelValues(status).Inc()
	PollDuration.Observe(duration)

	if status == "success" {
		LastSuccessfulPoll.SetToCurrentTime()
	}
}

// RecordPollDrop records a tick dropped by the in-flight guard
func RecordPollDrop() {
	PollDropsTotal.Inc()
}

// RecordStalenessGuard records a staleness guard trip for one bucket
func RecordStalenessGuard(bucket string) {
	StalenessGuardTrips.WithLabelValues(bucket).Inc()
}

// RecordStateSwap records an applied reconciled state swap
func RecordStateSwap() {
	StateSwapsTotal.Inc()
}

// RecordError records an error
func RecordError(component, errorType string) {
	ErrorsTotal.WithLabelValues(component, errorType).Inc()
}

// RecordHTTPRequest records a dashboard API request
func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(path).Observe(duration)
}

// RecordBroadcast records one WebSocket broadcast
func RecordBroadcast() {
	WebsocketBroadcastsTotal.Inc()
}

// UpdateScoreboardStats updates gauges describing the current state
func UpdateScoreboardStats(eventScores, cheeringScores, manualStatuses int) {
	TrackedEventScores.Set(float64(eventScores))
	TrackedCheeringScores.Set(float64(cheeringScores))
	TrackedManualStatuses.Set(float64(manualStatuses))
}

// UpdateWebsocketClients updates the connected client gauge
func UpdateWebsocketClients(n int) {
	WebsocketClients.Set(float64(n))
}

// UpdateConsecutiveFailures updates the consecutive poll failure gauge
func UpdateConsecutiveFailures(n int) {
	ConsecutivePollFailures.Set(float64(n))
}
