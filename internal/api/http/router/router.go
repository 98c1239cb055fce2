package router

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/auth-server/internal/api/http/handler"
	"github.com/dtroode/auth-server/internal/api/http/middleware"
	"github.com/dtroode/auth-server/internal/logger"
	"github.com/dtroode/auth-server/internal/metrics"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker func(ctx context.Context) error

// Router wires HTTP routes to the auth handlers.
type Router struct {
	authService   handler.AuthService
	authenticator middleware.Authenticator
	cookie        handler.CookieConfig
	metrics       *metrics.Metrics
	gatherer      prometheus.Gatherer
	health        HealthChecker
	logger        *logger.Logger
}

// New creates new HTTP Router instance. A nil gatherer disables /metrics and
// a nil health checker makes /healthz always answer ok.
func New(
	authService handler.AuthService,
	authenticator middleware.Authenticator,
	cookie handler.CookieConfig,
	metrics *metrics.Metrics,
	gatherer prometheus.Gatherer,
	health HealthChecker,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:   authService,
		authenticator: authenticator,
		cookie:        cookie,
		metrics:       metrics,
		gatherer:      gatherer,
		health:        health,
		logger:        logger,
	}
}

// Register builds the request handler.
func (r *Router) Register() http.Handler {
	errors := handler.NewErrorWriter(r.logger)
	auth := handler.NewAuth(r.authService, errors, r.cookie, r.logger)
	flows := middleware.NewMetrics(r.metrics)
	authenticate := middleware.NewAuthenticate(r.authenticator, errors.Write)

	mux := http.NewServeMux()
	route := func(pattern, flow string, h http.HandlerFunc) {
		mux.Handle(pattern, flows.Flow(flow, h))
	}

	route("POST /auth/signup", metrics.FlowSignup, auth.Signup)
	route("POST /auth/login", metrics.FlowLogin, auth.Login)
	route("POST /auth/logout", metrics.FlowLogout, auth.Logout)
	route("GET /auth/refresh", metrics.FlowRefresh, auth.Refresh)
	route("POST /auth/refresh", metrics.FlowRefresh, auth.Refresh)
	route("POST /auth/forgot-password", metrics.FlowResetRequest, auth.ForgotPassword)
	route("PATCH /auth/reset-password/{token}", metrics.FlowResetComplete, auth.ResetPassword)
	route("GET /auth/confirm-email/{token}", metrics.FlowConfirmEmail, auth.ConfirmEmail)
	route("POST /auth/google-auth", metrics.FlowGoogle, auth.GoogleAuth)
	mux.Handle("GET /auth/session", flows.Flow(metrics.FlowSession, authenticate.Handle(http.HandlerFunc(auth.Session))))

	if r.gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{}))
	}
	mux.HandleFunc("GET /healthz", r.handleHealth)

	return middleware.NewLogging(r.logger).Handle(mux)
}

func (r *Router) handleHealth(w http.ResponseWriter, req *http.Request) {
	if r.health != nil {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()

		if err := r.health(ctx); err != nil {
			r.logger.Warn("HTTP router: health check failed",
				"error", err.Error())
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
