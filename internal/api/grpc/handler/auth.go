package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apiErrors "github.com/dtroode/auth-server/internal/api/errors"
	"github.com/dtroode/auth-server/internal/api/grpc/proto"
	"github.com/dtroode/auth-server/internal/logger"
	"github.com/dtroode/auth-server/internal/model"
)

// AuthService defines the session flows exposed over gRPC.
type AuthService interface {
	Signup(ctx context.Context, params model.SignupParams) (model.SignupResult, error)
	Login(ctx context.Context, email, password string, isFromGoogle bool) (model.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshAccessToken(ctx context.Context, refreshToken string) (model.TokenPair, error)
	SendResetPasswordEmail(ctx context.Context, email, language string) error
	UpdatePassword(ctx context.Context, resetToken, password, language string) error
	ConfirmEmail(ctx context.Context, confirmToken string) error
	GoogleLogin(ctx context.Context, idToken string) (model.TokenPair, error)
}

// Auth handles gRPC endpoints for authentication.
type Auth struct {
	proto.UnimplementedAuthServer
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Signup registers a user and sends the confirmation email.
func (h *Auth) Signup(ctx context.Context, req *proto.SignupRequest) (*proto.SignupResponse, error) {
	h.logger.Debug("Auth handler: processing signup request",
		"email", req.Email)

	if req.Email == "" || req.Password == "" {
		return nil, handleError(apiErrors.NewErrBadRequest("email and password are required"))
	}

	result, err := h.authService.Signup(ctx, model.SignupParams{
		Role:           req.Role,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Password:       req.Password,
		Language:       req.Language,
		NativeLanguage: req.NativeLanguage,
	})
	if err != nil {
		h.logger.Error("Auth handler: signup failed",
			"email", req.Email,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: signup completed",
		"user_id", result.UserID)

	return &proto.SignupResponse{
		UserId:    result.UserID.String(),
		UserEmail: result.UserEmail,
	}, nil
}

// Login verifies credentials and returns a token pair.
func (h *Auth) Login(ctx context.Context, req *proto.LoginRequest) (*proto.TokenPair, error) {
	h.logger.Debug("Auth handler: processing login request",
		"email", req.Email)

	pair, err := h.authService.Login(ctx, req.Email, req.Password, false)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: login completed",
		"email", req.Email)

	return toProtoPair(pair), nil
}

// Logout revokes a refresh token. An empty token is a no-op.
func (h *Auth) Logout(ctx context.Context, req *proto.LogoutRequest) (*proto.Empty, error) {
	h.logger.Debug("Auth handler: processing logout request")

	if req.RefreshToken == "" {
		return &proto.Empty{}, nil
	}

	if err := h.authService.Logout(ctx, req.RefreshToken); err != nil {
		h.logger.Error("Auth handler: logout failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: logout completed")

	return &proto.Empty{}, nil
}

// RefreshToken exchanges a stored refresh token for a new pair.
func (h *Auth) RefreshToken(ctx context.Context, req *proto.RefreshTokenRequest) (*proto.TokenPair, error) {
	h.logger.Debug("Auth handler: processing token refresh request")

	pair, err := h.authService.RefreshAccessToken(ctx, req.RefreshToken)
	if err != nil {
		h.logger.Error("Auth handler: token refresh failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: token refresh successful")

	return toProtoPair(pair), nil
}

// SendResetPasswordEmail issues a reset token and mails it.
func (h *Auth) SendResetPasswordEmail(ctx context.Context, req *proto.SendResetPasswordEmailRequest) (*proto.Empty, error) {
	h.logger.Debug("Auth handler: processing reset password request",
		"email", req.Email)

	if err := h.authService.SendResetPasswordEmail(ctx, req.Email, req.Language); err != nil {
		h.logger.Error("Auth handler: reset password request failed",
			"email", req.Email,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &proto.Empty{}, nil
}

// UpdatePassword consumes a reset token and sets a new password.
func (h *Auth) UpdatePassword(ctx context.Context, req *proto.UpdatePasswordRequest) (*proto.Empty, error) {
	h.logger.Debug("Auth handler: processing update password request")

	if req.Password == "" {
		return nil, handleError(apiErrors.NewErrBadRequest("password is required"))
	}

	if err := h.authService.UpdatePassword(ctx, req.ResetToken, req.Password, req.Language); err != nil {
		h.logger.Error("Auth handler: update password failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: password updated")

	return &proto.Empty{}, nil
}

// ConfirmEmail consumes a confirm token.
func (h *Auth) ConfirmEmail(ctx context.Context, req *proto.ConfirmEmailRequest) (*proto.Empty, error) {
	if err := h.authService.ConfirmEmail(ctx, req.ConfirmToken); err != nil {
		h.logger.Error("Auth handler: confirm email failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	return &proto.Empty{}, nil
}

// GoogleAuth logs a user in with a Google ID token.
func (h *Auth) GoogleAuth(ctx context.Context, req *proto.GoogleAuthRequest) (*proto.TokenPair, error) {
	h.logger.Debug("Auth handler: processing google auth request")

	pair, err := h.authService.GoogleLogin(ctx, req.Ticket)
	if err != nil {
		h.logger.Error("Auth handler: google auth failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	return toProtoPair(pair), nil
}

// GetSession returns the claims of the bearer access token.
func (h *Auth) GetSession(ctx context.Context, _ *proto.Empty) (*proto.Session, error) {
	claims, ok := h.contextManager.GetClaimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, apiErrors.CodeUnauthorized)
	}

	return &proto.Session{
		UserId:       claims.UserID.String(),
		Role:         claims.Role,
		IsFirstLogin: claims.IsFirstLogin,
		ExpiresAt:    claims.ExpiresAt.Unix(),
	}, nil
}

func toProtoPair(pair model.TokenPair) *proto.TokenPair {
	return &proto.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}
