// Package metrics exposes Prometheus metrics for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

// Config holds configuration for the registry.
type Config struct {
	// Namespace is the prefix for all metrics. Default: "backoffice"
	Namespace string

	// HistogramBuckets are the buckets for request duration.
	// Default: prometheus.DefBuckets
	HistogramBuckets []float64

	// IncludeRuntime registers the Go runtime and process collectors.
	IncludeRuntime bool
}

// Registry owns the Prometheus collectors of the service.
//
// Thread Safety: Safe for concurrent use by multiple goroutines.
type Registry struct {
	config   Config
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inFlight        prometheus.Gauge
	tableQueries    *prometheus.CounterVec
	viewSessions    prometheus.Gauge
}

// NewRegistry creates a registry with every collector registered.
func NewRegistry(config Config) *Registry {
	if config.Namespace == "" {
		config.Namespace = "backoffice"
	}
	if len(config.HistogramBuckets) == 0 {
		config.HistogramBuckets = prometheus.DefBuckets
	}

	r := &Registry{
		config:   config,
		registry: prometheus.NewRegistry(),
	}

	r.requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests served.",
		},
		[]string{"method", "route", "status"},
	)
	r.requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   config.HistogramBuckets,
		},
		[]string{"method", "route"},
	)
	r.inFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Requests currently being served.",
		},
	)
	r.tableQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: "table",
			Name:      "queries_total",
			Help:      "Table projections computed, by screen and mode.",
		},
		[]string{"screen", "mode"},
	)
	r.viewSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Subsystem: "table",
			Name:      "view_sessions_open",
			Help:      "View sessions created and not yet closed by this process.",
		},
	)

	r.registry.MustRegister(
		r.requestsTotal,
		r.requestDuration,
		r.inFlight,
		r.tableQueries,
		r.viewSessions,
	)
	if config.IncludeRuntime {
		r.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return r
}

// Middleware records request count, latency and in-flight requests.
// Routes are labelled by their gin pattern so path parameters do not explode cardinality.
func (r *Registry) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		r.inFlight.Inc()
		defer r.inFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		r.requestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		r.requestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler returns the scrape endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// GinHandler wraps Handler for gin routes.
func (r *Registry) GinHandler() gin.HandlerFunc {
	return gin.WrapH(r.Handler())
}

// RecordTableQuery counts a computed projection
func (r *Registry) RecordTableQuery(screen, mode string) {
	if r == nil {
		return
	}
	r.tableQueries.WithLabelValues(screen, mode).Inc()
}

// SessionOpened tracks a created view session
func (r *Registry) SessionOpened() {
	if r == nil {
		return
	}
	r.viewSessions.Inc()
}

// SessionClosed tracks a closed view session
func (r *Registry) SessionClosed() {
	if r == nil {
		return
	}
	r.viewSessions.Dec()
}

// Gather collects all metric families (for testing).
func (r *Registry) Gather() ([]*dto.MetricFamily, error) {
	return r.registry.Gather()
}
