// metrics/metrics.go
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	actionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_actions_total",
			Help: "Privileged actions by outcome.",
		},
		[]string{"action", "outcome"},
	)

	auditWriteFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "audit_write_failures_total",
		Help: "Audit entries that could not be written after a successful mutation.",
	})

	cleanupFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_cleanup_failures_total",
			Help: "Dependent-row cleanup failures during user deletion.",
		},
		[]string{"table"},
	)

	registerOnce sync.Once
)

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Init registers the collectors with the default registry. Safe to call more
// than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpInFlight, httpRequestsTotal, httpRequestDuration,
			actionsTotal, auditWriteFailures, cleanupFailures)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// Instrument records RPS, latency and in-flight requests per route template.
func Instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		httpInFlight.Inc()
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		httpRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpInFlight.Dec()
	}
}

func ObserveAction(action, outcome string) {
	actionsTotal.WithLabelValues(action, outcome).Inc()
}

func AuditWriteFailed() {
	auditWriteFailures.Inc()
}

func CleanupFailed(table string) {
	cleanupFailures.WithLabelValues(table).Inc()
}
