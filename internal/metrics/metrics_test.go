package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiErrors "github.com/dtroode/auth-server/internal/api/errors"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, OutcomeSuccess},
		{"api error", apiErrors.NewErrBadRefreshToken(), apiErrors.CodeBadRefreshToken},
		{"wrapped api error", fmt.Errorf("login: %w", apiErrors.NewErrIncorrectCredentials()), apiErrors.CodeIncorrectCredentials},
		{"plain error", errors.New("boom"), OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Outcome(tt.err))
		})
	}
}

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Observe(FlowLogin, OutcomeSuccess, 10*time.Millisecond)
	m.Observe(FlowLogin, Outcome(nil), 20*time.Millisecond)
	m.Observe(FlowLogin, Outcome(apiErrors.NewErrEmailNotConfirmed()), time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.flows.WithLabelValues(FlowLogin, OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.flows.WithLabelValues(FlowLogin, apiErrors.CodeEmailNotConfirmed)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["auth_flow_total"])
	assert.True(t, names["auth_flow_duration_seconds"])
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.Observe(FlowLogout, OutcomeSuccess, time.Second) })
}

func TestNew_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
