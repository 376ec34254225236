package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricPrefix = "portwave_"

// Metrics wraps the Prometheus registry behind the narrow surface the rest
// of the code depends on.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	aggregateOps       *prometheus.HistogramVec
	aggregateConflicts *prometheus.CounterVec
	aggregateRollbacks *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricPrefix + "http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    metricPrefix + "http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		aggregateOps: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    metricPrefix + "aggregate_operation_duration_seconds",
			Help:    "Aggregate write duration by operation and outcome.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op", "status"}),
		aggregateConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricPrefix + "aggregate_conflicts_total",
			Help: "Unique-code conflicts by aggregate operation.",
		}, []string{"op"}),
		aggregateRollbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricPrefix + "aggregate_rollbacks_total",
			Help: "Rolled-back aggregate transactions by operation.",
		}, []string{"op"}),
	}
	registry.MustRegister(
		m.httpRequests,
		m.httpLatency,
		m.aggregateOps,
		m.aggregateConflicts,
		m.aggregateRollbacks,
	)
	return m
}

// Handler exposes the registry for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(dur.Seconds())
}

func (m *Metrics) ObserveAggregateOperation(op, status string, dur time.Duration) {
	if m == nil {
		return
	}
	m.aggregateOps.WithLabelValues(op, status).Observe(dur.Seconds())
}

func (m *Metrics) IncAggregateConflict(op string) {
	if m == nil {
		return
	}
	m.aggregateConflicts.WithLabelValues(op).Inc()
}

func (m *Metrics) IncAggregateRollback(op string) {
	if m == nil {
		return
	}
	m.aggregateRollbacks.WithLabelValues(op).Inc()
}
