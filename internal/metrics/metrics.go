// Package metrics exposes Prometheus counters for the authentication flows.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	apiErrors "github.com/dtroode/auth-server/internal/api/errors"
)

// Outcome labels for flows that did not fail with an APIError.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Flow names shared by both transports.
const (
	FlowSignup        = "signup"
	FlowLogin         = "login"
	FlowLogout        = "logout"
	FlowRefresh       = "refresh"
	FlowResetRequest  = "reset_request"
	FlowResetComplete = "reset_complete"
	FlowConfirmEmail  = "confirm_email"
	FlowGoogle        = "google"
	FlowSession       = "session"
)

// Metrics holds the collectors for one registry.
type Metrics struct {
	flows    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
// It panics if registration fails.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		flows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_flow_total",
				Help: "Total number of authentication flows by outcome",
			},
			[]string{"flow", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "auth_flow_duration_seconds",
				Help:    "Authentication flow duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"flow"},
		),
	}

	reg.MustRegister(m.flows, m.duration)

	return m
}

// Observe records one finished flow.
func (m *Metrics) Observe(flow, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.flows.WithLabelValues(flow, outcome).Inc()
	m.duration.WithLabelValues(flow).Observe(elapsed.Seconds())
}

// Outcome maps a flow result to its label. APIErrors are labelled by their
// code, any other error as OutcomeError.
func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	if apiErr, ok := apiErrors.As(err); ok {
		return apiErr.Code
	}
	return OutcomeError
}
