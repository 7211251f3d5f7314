package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resolution outcomes.
const (
	OutcomeCached     = "cached"
	OutcomeLocal      = "local"
	OutcomeBackend    = "backend"
	OutcomeIneligible = "ineligible"
	OutcomeError      = "error"
)

// Metrics owns a private registry so several instances can live side by side in tests.
// A nil *Metrics records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	resolutions     *prometheus.CounterVec
	resolveDuration *prometheus.HistogramVec
	backendRequests *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pickup_resolutions_total",
				Help: "Total number of resolve calls by outcome.",
			},
			[]string{"outcome"},
		),
		resolveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pickup_resolve_duration_seconds",
				Help:    "Histogram of resolve durations.",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"outcome"},
		),
		backendRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pickup_backend_requests_total",
				Help: "Total number of inventory backend requests by path and result.",
			},
			[]string{"path", "result"},
		),
	}
	m.registry.MustRegister(m.resolutions, m.resolveDuration, m.backendRequests)
	return m
}

// RecordResolution counts one resolve call and observes its duration.
func (m *Metrics) RecordResolution(outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(outcome).Inc()
	m.resolveDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordBackendRequest counts one backend call. result is "ok", "empty" or "error".
func (m *Metrics) RecordBackendRequest(path, result string) {
	if m == nil {
		return
	}
	m.backendRequests.WithLabelValues(path, result).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
