package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apiErrors "github.com/dtroode/auth-server/internal/api/errors"
	"github.com/dtroode/auth-server/internal/api/http/handler"
	"github.com/dtroode/auth-server/internal/metrics"
	"github.com/dtroode/auth-server/internal/mocks"
	"github.com/dtroode/auth-server/internal/model"
	"github.com/dtroode/auth-server/internal/testutil"
)

func TestRouter_Routes(t *testing.T) {
	svc := mocks.NewAuthService(t)
	authn := mocks.NewAuthenticator(t)
	reg := prometheus.NewRegistry()
	uid := uuid.New()

	svc.On("Login", mock.Anything, "a@x.com", "p", false).Return(model.TokenPair{AccessToken: "acc", RefreshToken: "ref"}, nil)
	svc.On("ConfirmEmail", mock.Anything, "ct").Return(nil)
	authn.On("Authenticate", mock.Anything, "acc").Return(model.AccessClaims{UserID: uid, Role: "student"}, nil)
	authn.On("Authenticate", mock.Anything, "").Return(model.AccessClaims{}, apiErrors.NewErrUnauthorized())

	h := New(svc, authn, handler.CookieConfig{}, metrics.New(reg), reg, nil, testutil.MakeNoopLogger()).Register()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@x.com","password":"p"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/confirm-email/ct", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/login", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/session", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	req.Header.Set("Authorization", "Bearer acc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), uid.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `auth_flow_total{flow="login",outcome="success"} 1`)
	assert.Contains(t, rec.Body.String(), `auth_flow_total{flow="session",outcome="UNAUTHORIZED"} 1`)
}

func TestRouter_Healthz(t *testing.T) {
	tests := []struct {
		name       string
		check      HealthChecker
		wantStatus int
	}{
		{"no checker", nil, http.StatusOK},
		{"healthy", func(context.Context) error { return nil }, http.StatusOK},
		{"database down", func(context.Context) error { return errors.New("conn refused") }, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(nil, nil, handler.CookieConfig{}, nil, nil, tt.check, testutil.MakeNoopLogger()).Register()

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, tt.wantStatus, rec.Code)

			rec = httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}
