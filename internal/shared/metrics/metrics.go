package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds every collector exported by this process.
	Registry = prometheus.NewRegistry()

	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests by route and status",
	}, []string{"method", "route", "status"})

	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"method", "route"})

	highlightSpansTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "evaluation_highlight_spans_total",
		Help: "Checked contents located in answer text",
	})

	highlightMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "evaluation_highlight_misses_total",
		Help: "Checked contents that could not be located in answer text",
	})

	upstreamErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_errors_total",
		Help: "Recruiting backend call failures by operation and kind",
	}, []string{"op", "kind"})

	staleResultsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "review_stale_results_total",
		Help: "Fetch results discarded because a newer selection superseded them",
	})

	rateLimitedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_rate_limited_total",
		Help: "Requests rejected by the rate limiter by group",
	}, []string{"group"})
)

func init() {
	Registry.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		highlightSpansTotal,
		highlightMissesTotal,
		upstreamErrorsTotal,
		staleResultsTotal,
		rateLimitedTotal,
		collectors.NewGoCollector(),
	)
}

// ObserveRequest records one served HTTP request.
func ObserveRequest(method, route string, status int, latency time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(float64(latency.Microseconds()) / 1000.0)
}

// AddHighlight records matched spans and missed contents for one annotated answer.
func AddHighlight(matched, missed int) {
	if matched > 0 {
		highlightSpansTotal.Add(float64(matched))
	}
	if missed > 0 {
		highlightMissesTotal.Add(float64(missed))
	}
}

// IncUpstreamError counts a failed backend call.
func IncUpstreamError(op, kind string) {
	upstreamErrorsTotal.WithLabelValues(op, kind).Inc()
}

// IncStaleResult counts a discarded superseded fetch.
func IncStaleResult() {
	staleResultsTotal.Inc()
}

// IncRateLimited counts a request rejected by the rate limiter.
func IncRateLimited(group string) {
	rateLimitedTotal.WithLabelValues(group).Inc()
}

// RegisterDB exports connection pool statistics for db. Registering the same
// name twice is ignored.
func RegisterDB(db *sql.DB, name string) {
	if db == nil {
		return
	}
	_ = Registry.Register(collectors.NewDBStatsCollector(db, name))
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
