package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes recorded for POST /track.
const (
	OutcomeAccepted     = "accepted"
	OutcomeUnauthorized = "unauthorized"
	OutcomeEmptyPayload = "empty_payload"
)

// Metrics holds the service collectors on a private registry so tests and
// multiple routers in one process never collide on registration.
type Metrics struct {
	reg          *prometheus.Registry
	requests     *prometheus.CounterVec
	payloadBytes prometheus.Histogram
}

// New creates and registers the collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		reg: reg,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "track_requests_total",
				Help: "Total number of POST /track requests by outcome.",
			},
			[]string{"outcome"},
		),
		// 64B, 512B, 4KB, 32KB, 256KB, 2MB
		payloadBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "track_payload_bytes",
			Help:    "Size of authorized POST /track request bodies in bytes.",
			Buckets: prometheus.ExponentialBuckets(64, 8, 6),
		}),
	}

	reg.MustRegister(
		m.requests,
		m.payloadBytes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Pre-create series so dashboards see zeros before the first request.
	for _, o := range []string{OutcomeAccepted, OutcomeUnauthorized, OutcomeEmptyPayload} {
		m.requests.WithLabelValues(o)
	}
	return m
}

// Track records the outcome of one POST /track request. Nil-safe.
func (m *Metrics) Track(outcome string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(outcome).Inc()
}

// PayloadSize records the size of an authorized request body. Nil-safe.
func (m *Metrics) PayloadSize(n int) {
	if m == nil {
		return
	}
	m.payloadBytes.Observe(float64(n))
}

// Requests exposes the counter vector for tests.
func (m *Metrics) Requests() *prometheus.CounterVec {
	return m.requests
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
