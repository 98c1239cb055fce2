package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apiErrors "github.com/dtroode/auth-server/internal/api/errors"
	"github.com/dtroode/auth-server/internal/logger"
	"github.com/dtroode/auth-server/internal/metrics"
	"github.com/dtroode/auth-server/internal/mocks"
	"github.com/dtroode/auth-server/internal/model"
)

func TestLogging_Handle(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogging(logger.NewWithWriter(&buf, "info"))

	ok := lg.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	ok.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
	assert.Contains(t, buf.String(), "HTTP request completed")
	assert.Contains(t, buf.String(), "status=204")

	buf.Reset()
	failed := lg.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	failed.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/auth/login", nil))
	assert.Contains(t, buf.String(), "HTTP request failed")
}

func TestMetrics_Flow(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(metrics.New(reg))

	handlers := []http.Handler{
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{}"))
		}),
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			SetOutcome(r.Context(), apiErrors.CodeIncorrectCredentials)
			w.WriteHeader(http.StatusUnauthorized)
		}),
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}),
	}
	for _, h := range handlers {
		m.Flow(metrics.FlowLogin, h).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/auth/login", nil))
	}

	expected := `
# HELP auth_flow_total Total number of authentication flows by outcome
# TYPE auth_flow_total counter
auth_flow_total{flow="login",outcome="INCORRECT_CREDENTIALS"} 1
auth_flow_total{flow="login",outcome="error"} 1
auth_flow_total{flow="login",outcome="success"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "auth_flow_total"))
}

func TestSetOutcome_OutsideMetricsIsNoop(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.NotPanics(t, func() { SetOutcome(r.Context(), "X") })
}

func TestAuthenticate_Handle(t *testing.T) {
	uid := uuid.New()

	tests := []struct {
		name       string
		header     string
		token      string
		authErr    error
		wantStatus int
	}{
		{name: "valid", header: "Bearer acc", token: "acc", wantStatus: http.StatusOK},
		{name: "lowercase scheme", header: "bearer acc", token: "acc", wantStatus: http.StatusOK},
		{name: "missing", header: "", token: "", authErr: apiErrors.NewErrUnauthorized(), wantStatus: http.StatusUnauthorized},
		{name: "basic scheme", header: "Basic Zm9v", token: "", authErr: apiErrors.NewErrUnauthorized(), wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authn := mocks.NewAuthenticator(t)
			if tt.authErr != nil {
				authn.On("Authenticate", mock.Anything, tt.token).Return(model.AccessClaims{}, tt.authErr)
			} else {
				authn.On("Authenticate", mock.Anything, tt.token).Return(model.AccessClaims{UserID: uid}, nil)
			}

			m := NewAuthenticate(authn, func(w http.ResponseWriter, r *http.Request, err error) {
				w.WriteHeader(http.StatusUnauthorized)
			})
			h := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				claims, ok := ClaimsFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, uid, claims.UserID)
			}))

			req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
