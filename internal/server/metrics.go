package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tartampluch/go-toolbox/internal/config"
)

// Metrics holds the server's collectors. Each instance owns its registry
// so several servers (and tests) never collide on registration.
type Metrics struct {
	Registry *prometheus.Registry

	Requests    *prometheus.CounterVec
	Latency     *prometheus.HistogramVec
	AgeResults  *prometheus.CounterVec
	FeedSyncs   *prometheus.CounterVec
	FeedEntries prometheus.Gauge
}

// NewMetrics registers the collectors plus the Go runtime and process
// collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: config.MetricRequests,
			Help: "HTTP requests served, by route, method and status.",
		}, []string{config.MetricLabelRoute, config.MetricLabelMethod, config.MetricLabelStatus}),
		Latency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    config.MetricLatency,
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{config.MetricLabelRoute}),
		AgeResults: f.NewCounterVec(prometheus.CounterOpts{
			Name: config.MetricAgeResults,
			Help: "Age computations by outcome.",
		}, []string{config.MetricLabelResult}),
		FeedSyncs: f.NewCounterVec(prometheus.CounterOpts{
			Name: config.MetricFeedSyncs,
			Help: "Anniversary feed synchronizations by outcome.",
		}, []string{config.MetricLabelResult}),
		FeedEntries: f.NewGauge(prometheus.GaugeOpts{
			Name: config.MetricFeedEntries,
			Help: "Dated entries in the last synchronized feed.",
		}),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// Middleware records count and latency per matched route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := wrap(w)

		next.ServeHTTP(rw, r)

		route := config.RouteUnmatched
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		m.Requests.WithLabelValues(route, r.Method, strconv.Itoa(rw.status)).Inc()
		m.Latency.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// RecordSync tracks the outcome of one feed synchronization.
func (m *Metrics) RecordSync(entries int, err error) {
	if err != nil {
		m.FeedSyncs.WithLabelValues(config.ResultError).Inc()
		return
	}
	m.FeedSyncs.WithLabelValues(config.ResultOK).Inc()
	m.FeedEntries.Set(float64(entries))
}
