package router

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/auth-server/internal/api/grpc/handler"
	"github.com/dtroode/auth-server/internal/api/grpc/middleware"
	"github.com/dtroode/auth-server/internal/api/grpc/proto"
	"github.com/dtroode/auth-server/internal/logger"
	"github.com/dtroode/auth-server/internal/metrics"
	"github.com/dtroode/auth-server/internal/model"
)

// Router represents a gRPC router for the auth service.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	authService    handler.AuthService
	authenticator  middleware.Authenticator
	contextManager model.ContextManager
	metrics        *metrics.Metrics
	logger         *logger.Logger
}

// New creates new gRPC Router instance. A nil metrics disables flow counting.
func New(
	authService handler.AuthService,
	authenticator middleware.Authenticator,
	contextManager model.ContextManager,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		authenticator:  authenticator,
		contextManager: contextManager,
		metrics:        metrics,
		logger:         logger,
	}
}

// authRequired selects the methods that need a bearer access token.
func authRequired(_ context.Context, c interceptors.CallMeta) bool {
	return c.FullMethod() == proto.Auth_GetSession_FullMethodName
}

// Register builds a gRPC server with logging, metrics and authentication
// interceptors, and registers the auth and health services on it.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	flows := middleware.NewMetrics(r.metrics)
	authenticate := middleware.NewAuthenticate(r.authenticator, r.contextManager, r.logger)

	opts = append(opts,
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			flows.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authRequired),
			),
		),
	)

	s := grpc.NewServer(opts...)
	r.registerAuthRoutes(s)
	r.registerHealth(s)

	return s
}

func (r *Router) registerAuthRoutes(server *grpc.Server) {
	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger)
	proto.RegisterAuthServer(server, authHandler)
}

func (r *Router) registerHealth(server *grpc.Server) {
	hs := health.NewServer()
	hs.SetServingStatus(proto.Auth_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, hs)
}
