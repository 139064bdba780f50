package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ja-he/quickedit/internal/control/edit"
)

// Metrics provides Prometheus metrics about transition decisions and
// confirmations.
// A nil *Metrics records nothing.
type Metrics struct {
	transitions      *prometheus.CounterVec
	confirmations    *prometheus.CounterVec
	confirmationOpen prometheus.Gauge

	registry *prometheus.Registry
}

// NewMetrics creates a new metrics collector with its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "quickedit",
				Name:      "transitions_total",
				Help:      "Total number of transition requests by verdict",
			},
			[]string{"verdict"},
		),
		confirmations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "quickedit",
				Name:      "confirmations_total",
				Help:      "Total number of answered confirmations by choice",
			},
			[]string{"choice"},
		),
		confirmationOpen: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "quickedit",
				Name:      "confirmation_open",
				Help:      "Whether a confirmation is pending (1) or not (0)",
			},
		),
	}

	registry.MustRegister(
		m.transitions,
		m.confirmations,
		m.confirmationOpen,
	)

	return m
}

// RecordVerdict counts a transition request by its verdict.
func (m *Metrics) RecordVerdict(v edit.Verdict) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(v.String()).Inc()
}

// RecordConfirmationOpened marks a confirmation as pending.
func (m *Metrics) RecordConfirmationOpened() {
	if m == nil {
		return
	}
	m.confirmationOpen.Set(1)
}

// RecordConfirmationAnswered counts the answer and marks no confirmation as
// pending.
func (m *Metrics) RecordConfirmationAnswered(c edit.Choice) {
	if m == nil {
		return
	}
	m.confirmations.WithLabelValues(c.String()).Inc()
	m.confirmationOpen.Set(0)
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
