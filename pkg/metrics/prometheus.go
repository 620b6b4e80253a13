// Package metrics provides Prometheus metrics for the judgeboard dashboard.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// searchResultBuckets sizes the filtered-list histogram; hackathons rarely exceed a few hundred teams.
var searchResultBuckets = []float64{0, 1, 2, 5, 10, 25, 50, 100, 250} //nolint:gochecknoglobals // fixed bucket layout

// Manager manages all Prometheus metrics for the dashboard.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Dataset metrics
	datasetTeams        prometheus.Gauge
	datasetLoadDuration prometheus.Histogram
	datasetLoadErrors   prometheus.Counter

	// Dashboard usage metrics
	teamViews      *prometheus.CounterVec
	searches       prometheus.Counter
	searchResults  prometheus.Histogram
	renderErrors   *prometheus.CounterVec
	leaderboardHit prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "judgeboard",
		subsystem:        "dashboard",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) opts(name, help string) prometheus.Opts {
	return prometheus.Opts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) histOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
		Buckets:     buckets,
	}
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // flat list of collectors
	auto := promauto.With(m.registry)

	m.datasetTeams = auto.NewGauge(prometheus.GaugeOpts(m.opts("dataset_teams", "Number of team records in the loaded dataset")))
	m.datasetLoadDuration = auto.NewHistogram(m.histOpts("dataset_load_duration_milliseconds", "Time spent decoding and checking the dataset", m.histogramBuckets))
	m.datasetLoadErrors = auto.NewCounter(prometheus.CounterOpts(m.opts("dataset_load_errors_total", "Dataset loads that failed")))

	m.teamViews = auto.NewCounterVec(prometheus.CounterOpts(m.opts("team_views_total", "Team detail renders by section")), []string{"section"})
	m.searches = auto.NewCounter(prometheus.CounterOpts(m.opts("searches_total", "Requests carrying a non-empty search term")))
	m.searchResults = auto.NewHistogram(m.histOpts("search_results", "Size of the filtered team list per search", searchResultBuckets))
	m.renderErrors = auto.NewCounterVec(prometheus.CounterOpts(m.opts("render_errors_total", "Page or payload rendering failures")), []string{"view"})
	m.leaderboardHit = auto.NewCounter(prometheus.CounterOpts(m.opts("leaderboard_requests_total", "Leaderboard computations served")))

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts(m.opts("http_requests_total", "Total number of HTTP requests by endpoint and method")),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByType = auto.NewCounterVec(
		prometheus.CounterOpts(m.opts("errors_by_type_total", "Errors by type and severity")),
		[]string{"error_type", "severity"},
	)
	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts(m.opts("errors_by_endpoint_total", "Errors by endpoint")),
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts(m.opts("system_memory_bytes", "Heap bytes allocated")))
	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts(m.opts("system_goroutines", "Number of goroutines")))
	m.systemGCPauseTime = auto.NewHistogram(m.histOpts("system_gc_pause_milliseconds", "Average GC pause in milliseconds", m.histogramBuckets))
}

// RefreshInterval returns how often periodically sampled gauges should be updated.
func (m *Manager) RefreshInterval() time.Duration {
	return m.refreshInterval
}

// Manager-level recorders. Each is a no-op when metrics are disabled.

// UpdateDatasetTeams sets the loaded team count.
func (m *Manager) UpdateDatasetTeams(count int) {
	if m.enabled {
		m.datasetTeams.Set(float64(count))
	}
}

// RecordDatasetLoad observes a dataset load duration.
func (m *Manager) RecordDatasetLoad(durationMs float64) {
	if m.enabled {
		m.datasetLoadDuration.Observe(durationMs)
	}
}

// RecordDatasetLoadError counts a failed dataset load.
func (m *Manager) RecordDatasetLoadError() {
	if m.enabled {
		m.datasetLoadErrors.Inc()
	}
}

// RecordTeamView counts a rendered team detail section.
func (m *Manager) RecordTeamView(section string) {
	if m.enabled {
		m.teamViews.WithLabelValues(section).Inc()
	}
}

// RecordSearch counts a search and observes how many teams matched.
func (m *Manager) RecordSearch(results int) {
	if m.enabled {
		m.searches.Inc()
		m.searchResults.Observe(float64(results))
	}
}

// RecordRenderError counts a failed render of view.
func (m *Manager) RecordRenderError(view string) {
	if m.enabled {
		m.renderErrors.WithLabelValues(view).Inc()
	}
}

// RecordLeaderboard counts a leaderboard computation.
func (m *Manager) RecordLeaderboard() {
	if m.enabled {
		m.leaderboardHit.Inc()
	}
}

// RecordHTTPRequest counts a served request.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string) {
	if m.enabled {
		m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration observes request latency.
func (m *Manager) RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	if m.enabled {
		m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
	}
}

// RecordErrorByType counts an error by type and severity.
func (m *Manager) RecordErrorByType(errorType, severity string) {
	if m.enabled {
		m.errorRateByType.WithLabelValues(errorType, severity).Inc()
	}
}

// RecordErrorByEndpoint counts an error by endpoint.
func (m *Manager) RecordErrorByEndpoint(endpoint, method, errorType string) {
	if m.enabled {
		m.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// UpdateSystemMemoryUsage sets the heap allocation gauge.
func (m *Manager) UpdateSystemMemoryUsage(bytes uint64) {
	if m.enabled {
		m.systemMemoryUsage.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func (m *Manager) UpdateSystemGoroutineCount(count int) {
	if m.enabled {
		m.systemGoroutineCount.Set(float64(count))
	}
}

// RecordSystemGCPauseTime observes the average GC pause.
func (m *Manager) RecordSystemGCPauseTime(pauseMs float64) {
	if m.enabled {
		m.systemGCPauseTime.Observe(pauseMs)
	}
}

// Package-level helpers delegate to the global manager.

func UpdateDatasetTeams(count int)         { globalManager.UpdateDatasetTeams(count) }
func RecordDatasetLoad(durationMs float64) { globalManager.RecordDatasetLoad(durationMs) }
func RecordDatasetLoadError()              { globalManager.RecordDatasetLoadError() }
func RecordTeamView(section string)        { globalManager.RecordTeamView(section) }
func RecordSearch(results int)             { globalManager.RecordSearch(results) }
func RecordRenderError(view string)        { globalManager.RecordRenderError(view) }
func RecordLeaderboard()                   { globalManager.RecordLeaderboard() }

func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode)
}

func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequestDuration(endpoint, method, statusCode, durationMs)
}

func RecordErrorByType(errorType, severity string) {
	globalManager.RecordErrorByType(errorType, severity)
}

func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.RecordErrorByEndpoint(endpoint, method, errorType)
}

func UpdateSystemMemoryUsage(bytes uint64)    { globalManager.UpdateSystemMemoryUsage(bytes) }
func UpdateSystemGoroutineCount(count int)    { globalManager.UpdateSystemGoroutineCount(count) }
func RecordSystemGCPauseTime(pauseMs float64) { globalManager.RecordSystemGCPauseTime(pauseMs) }

// RefreshInterval returns the global manager's sampling interval.
func RefreshInterval() time.Duration { return globalManager.RefreshInterval() }

// GetRegistry returns the private registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
