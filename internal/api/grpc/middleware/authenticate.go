package middleware

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apiErrors "github.com/dtroode/auth-server/internal/api/errors"
	"github.com/dtroode/auth-server/internal/logger"
	"github.com/dtroode/auth-server/internal/model"
)

// Authenticator resolves access claims from a bearer token.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (model.AccessClaims, error)
}

// Authenticate validates bearer tokens and injects access claims into context.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authenticator: authenticator, contextManager: contextManager, logger: logger}
}

// AuthFunc reads the "authorization: Bearer" metadata, verifies the access
// token and returns a context carrying its claims.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	token, err := auth.AuthFromMD(ctx, "bearer")
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, apiErrors.CodeUnauthorized)
	}

	claims, err := m.authenticator.Authenticate(ctx, token)
	if err != nil {
		m.logger.Debug("Auth middleware: access token rejected",
			"error", err.Error())
		return nil, status.Error(codes.Unauthenticated, apiErrors.CodeUnauthorized)
	}

	return m.contextManager.SetClaimsToContext(ctx, claims), nil
}
