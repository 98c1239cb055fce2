package middleware

import (
	"net/http"
	"time"

	"github.com/dtroode/auth-server/internal/metrics"
)

// Metrics counts auth flows by outcome.
type Metrics struct {
	metrics *metrics.Metrics
}

// NewMetrics creates a new Metrics middleware. A nil m disables counting.
func NewMetrics(m *metrics.Metrics) *Metrics {
	return &Metrics{metrics: m}
}

// Flow wraps next and records it under flow. The outcome is the code set
// with SetOutcome, OutcomeError for other 5xx answers and OutcomeSuccess
// otherwise.
func (m *Metrics) Flow(flow string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		r, holder := withOutcome(r)

		next.ServeHTTP(rec, r)

		outcome := metrics.OutcomeSuccess
		switch {
		case holder.code != "":
			outcome = holder.code
		case rec.code() >= http.StatusInternalServerError:
			outcome = metrics.OutcomeError
		}
		m.metrics.Observe(flow, outcome, time.Since(start))
	})
}
