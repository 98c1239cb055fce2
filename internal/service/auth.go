package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	apiErrors "github.com/dtroode/auth-server/internal/api/errors"
	"github.com/dtroode/auth-server/internal/logger"
	"github.com/dtroode/auth-server/internal/model"
)

// AuthConfig holds settings the orchestrator needs besides its collaborators.
type AuthConfig struct {
	GoogleClientID string
	ClientURL      string
}

// Auth sequences the signup, login, session and password flows.
type Auth struct {
	userStore   model.UserStore
	tokens      *TokenService
	codec       model.TokenCodec
	credentials *CredentialVerifier
	hasher      model.PasswordHasher
	mailer      model.EmailSender
	idVerifier  model.IDTokenVerifier
	cfg         AuthConfig
	now         func() time.Time
	logger      *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	tokenStore model.TokenStore,
	codec model.TokenCodec,
	hasher model.PasswordHasher,
	mailer model.EmailSender,
	idVerifier model.IDTokenVerifier,
	cfg AuthConfig,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:   userStore,
		tokens:      NewTokenService(codec, tokenStore, logger),
		codec:       codec,
		credentials: NewCredentialVerifier(hasher, logger),
		hasher:      hasher,
		mailer:      mailer,
		idVerifier:  idVerifier,
		cfg:         cfg,
		now:         time.Now,
		logger:      logger,
	}
}

// Signup creates the user, persists a confirm token and emails it.
func (a *Auth) Signup(ctx context.Context, params model.SignupParams) (model.SignupResult, error) {
	a.logger.Debug("Auth service: starting signup",
		"email", params.Email,
		"role", params.Role)

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return model.SignupResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.NewUser{
		Role:           params.Role,
		FirstName:      params.FirstName,
		LastName:       params.LastName,
		Email:          params.Email,
		PasswordHash:   hash,
		Language:       params.Language,
		NativeLanguage: params.NativeLanguage,
	})
	if err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			a.logger.Info("Auth service: user already exists",
				"email", params.Email)
			return model.SignupResult{}, apiErrors.NewErrAlreadyExists("email")
		}
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.SignupResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	confirmToken, err := a.tokens.IssueConfirm(ctx, user.ID, params.Role)
	if err != nil {
		a.logger.Error("Auth service: failed to issue confirm token",
			"user_id", user.ID,
			"error", err.Error())
		return model.SignupResult{}, err
	}

	err = a.mailer.Send(ctx, user.Email, model.EmailSubjectConfirmation, params.Language, map[string]any{
		"confirmToken": confirmToken,
		"email":        user.Email,
		"firstName":    user.FirstName,
		"link":         a.cfg.ClientURL + "/confirm-email/" + confirmToken,
	})
	if err != nil {
		a.logger.Error("Auth service: failed to send confirmation email",
			"user_id", user.ID,
			"error", err.Error())
		return model.SignupResult{}, fmt.Errorf("failed to send confirmation email: %w", err)
	}

	a.logger.Info("Auth service: signup completed",
		"user_id", user.ID)

	return model.SignupResult{UserID: user.ID, UserEmail: user.Email}, nil
}

// Login authenticates by password, or trusts an already verified identity
// provider login when isFromGoogle is set.
func (a *Auth) Login(ctx context.Context, email, password string, isFromGoogle bool) (model.TokenPair, error) {
	a.logger.Debug("Auth service: starting login",
		"email", email,
		"from_google", isFromGoogle)

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("Auth service: login for unknown user",
				"email", email)
			return model.TokenPair{}, apiErrors.NewErrUserNotFound(401)
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.TokenPair{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := a.credentials.Authorize(user, password, isFromGoogle); err != nil {
		a.logger.Info("Auth service: login rejected",
			"user_id", user.ID,
			"reason", err.Error())
		return model.TokenPair{}, err
	}

	if !isFromGoogle {
		a.upgradePasswordHash(ctx, user, password)
	}

	pair, err := a.tokens.Issue(ctx, user.ID, user.LastLoginAs, user.IsFirstLogin)
	if err != nil {
		a.logger.Error("Auth service: failed to issue tokens",
			"user_id", user.ID,
			"error", err.Error())
		return model.TokenPair{}, err
	}

	if user.IsFirstLogin {
		notFirst := false
		if err := a.userStore.Update(ctx, user.ID, model.UserUpdate{IsFirstLogin: &notFirst}); err != nil {
			a.logger.Error("Auth service: failed to clear first login flag",
				"user_id", user.ID,
				"error", err.Error())
			return model.TokenPair{}, fmt.Errorf("failed to update first login: %w", err)
		}
	}

	now := a.now()
	if err := a.userStore.Update(ctx, user.ID, model.UserUpdate{LastLogin: &now}); err != nil {
		a.logger.Error("Auth service: failed to update last login",
			"user_id", user.ID,
			"error", err.Error())
		return model.TokenPair{}, fmt.Errorf("failed to update last login: %w", err)
	}

	a.logger.Info("Auth service: login completed",
		"user_id", user.ID)

	return pair, nil
}

// hashUpgrader is implemented by hashers that can tell when a stored hash
// was produced by a weaker scheme or cost.
type hashUpgrader interface {
	NeedsUpgrade(hash string) bool
}

// upgradePasswordHash rehashes an accepted password with the current
// parameters. Failures are logged and do not fail the login.
func (a *Auth) upgradePasswordHash(ctx context.Context, user model.User, password string) {
	u, ok := a.hasher.(hashUpgrader)
	if !ok || !u.NeedsUpgrade(user.PasswordHash) {
		return
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Warn("Auth service: failed to rehash password",
			"user_id", user.ID,
			"error", err.Error())
		return
	}

	if err := a.userStore.Update(ctx, user.ID, model.UserUpdate{PasswordHash: &hash}); err != nil {
		a.logger.Warn("Auth service: failed to store upgraded password hash",
			"user_id", user.ID,
			"error", err.Error())
		return
	}

	a.logger.Info("Auth service: password hash upgraded",
		"user_id", user.ID)
}

// Logout revokes a refresh token. Unknown tokens are ignored.
func (a *Auth) Logout(ctx context.Context, refreshToken string) error {
	if err := a.tokens.Revoke(ctx, refreshToken); err != nil {
		a.logger.Error("Auth service: failed to revoke refresh token",
			"error", err.Error())
		return err
	}

	a.logger.Info("Auth service: logout completed")
	return nil
}

// RefreshAccessToken exchanges a live refresh token for a new pair. The
// presented token stays valid.
func (a *Auth) RefreshAccessToken(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	claims, err := a.tokens.CheckRefresh(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, model.ErrInvalidToken) {
			a.logger.Info("Auth service: bad refresh token",
				"reason", err.Error())
			return model.TokenPair{}, apiErrors.NewErrBadRefreshToken()
		}
		a.logger.Error("Auth service: failed to check refresh token",
			"error", err.Error())
		return model.TokenPair{}, err
	}

	user, err := a.userStore.GetByID(ctx, claims.UserID)
	if err != nil {
		a.logger.Error("Auth service: failed to get user by id",
			"user_id", claims.UserID,
			"error", err.Error())
		return model.TokenPair{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	pair, err := a.tokens.Issue(ctx, user.ID, user.LastLoginAs, user.IsFirstLogin)
	if err != nil {
		a.logger.Error("Auth service: failed to issue tokens",
			"user_id", user.ID,
			"error", err.Error())
		return model.TokenPair{}, err
	}

	a.logger.Info("Auth service: tokens refreshed",
		"user_id", user.ID)

	return pair, nil
}

// SendResetPasswordEmail persists a reset token and mails it. If sending
// fails the token stays stored until it expires.
func (a *Auth) SendResetPasswordEmail(ctx context.Context, email, language string) error {
	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("Auth service: reset requested for unknown user",
				"email", email)
			return apiErrors.NewErrUserNotFound(404)
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	resetToken, err := a.tokens.IssueReset(ctx, user)
	if err != nil {
		a.logger.Error("Auth service: failed to issue reset token",
			"user_id", user.ID,
			"error", err.Error())
		return err
	}

	err = a.mailer.Send(ctx, email, model.EmailSubjectResetPassword, language, map[string]any{
		"resetToken": resetToken,
		"email":      email,
		"firstName":  user.FirstName,
		"link":       a.cfg.ClientURL + "/reset-password/" + resetToken,
	})
	if err != nil {
		a.logger.Error("Auth service: failed to send reset email",
			"user_id", user.ID,
			"error", err.Error())
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	a.logger.Info("Auth service: reset email sent",
		"user_id", user.ID)

	return nil
}

// UpdatePassword consumes a reset token. The password is changed before
// the token is removed.
func (a *Auth) UpdatePassword(ctx context.Context, resetToken, password, language string) error {
	claims, err := a.tokens.CheckReset(ctx, resetToken)
	if err != nil {
		if errors.Is(err, model.ErrInvalidToken) {
			a.logger.Info("Auth service: bad reset token",
				"reason", err.Error())
			return apiErrors.NewErrBadResetToken()
		}
		a.logger.Error("Auth service: failed to check reset token",
			"error", err.Error())
		return err
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.userStore.Update(ctx, claims.UserID, model.UserUpdate{PasswordHash: &hash}); err != nil {
		a.logger.Error("Auth service: failed to update password",
			"user_id", claims.UserID,
			"error", err.Error())
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := a.tokens.RevokeAllForUser(ctx, claims.UserID, model.TokenKindReset); err != nil {
		a.logger.Error("Auth service: failed to remove reset tokens",
			"user_id", claims.UserID,
			"error", err.Error())
		return err
	}

	err = a.mailer.Send(ctx, claims.Email, model.EmailSubjectSuccessfulPasswordReset, language, map[string]any{
		"firstName": claims.FirstName,
	})
	if err != nil {
		a.logger.Error("Auth service: failed to send password changed email",
			"user_id", claims.UserID,
			"error", err.Error())
		return fmt.Errorf("failed to send password changed email: %w", err)
	}

	a.logger.Info("Auth service: password updated",
		"user_id", claims.UserID)

	return nil
}

// ConfirmEmail consumes a confirm token and marks the email confirmed.
func (a *Auth) ConfirmEmail(ctx context.Context, confirmToken string) error {
	claims, err := a.tokens.CheckConfirm(ctx, confirmToken)
	if err != nil {
		if errors.Is(err, model.ErrInvalidToken) {
			a.logger.Info("Auth service: bad confirm token",
				"reason", err.Error())
			return apiErrors.NewErrBadConfirmToken()
		}
		a.logger.Error("Auth service: failed to check confirm token",
			"error", err.Error())
		return err
	}

	confirmed := true
	if err := a.userStore.Update(ctx, claims.UserID, model.UserUpdate{IsEmailConfirmed: &confirmed}); err != nil {
		a.logger.Error("Auth service: failed to confirm email",
			"user_id", claims.UserID,
			"error", err.Error())
		return fmt.Errorf("failed to confirm email: %w", err)
	}

	if err := a.tokens.RevokeAllForUser(ctx, claims.UserID, model.TokenKindConfirm); err != nil {
		a.logger.Error("Auth service: failed to remove confirm tokens",
			"user_id", claims.UserID,
			"error", err.Error())
		return err
	}

	a.logger.Info("Auth service: email confirmed",
		"user_id", claims.UserID)

	return nil
}

// GetPayloadFromGoogleTicket verifies a Google ID token against the
// configured client id.
func (a *Auth) GetPayloadFromGoogleTicket(ctx context.Context, idToken string) (model.GooglePayload, error) {
	if a.cfg.GoogleClientID == "" {
		a.logger.Error("Auth service: google client id is not configured")
		return model.GooglePayload{}, apiErrors.NewErrBadIDToken(errors.New("google client id is not configured"))
	}

	payload, err := a.idVerifier.Verify(ctx, idToken, a.cfg.GoogleClientID)
	if err != nil {
		a.logger.Info("Auth service: bad id token",
			"reason", err.Error())
		return model.GooglePayload{}, apiErrors.NewErrBadIDToken(err)
	}
	return payload, nil
}

// GoogleLogin verifies the ticket and logs in the matching user. Only
// emails Google reports as verified are trusted.
func (a *Auth) GoogleLogin(ctx context.Context, idToken string) (model.TokenPair, error) {
	payload, err := a.GetPayloadFromGoogleTicket(ctx, idToken)
	if err != nil {
		return model.TokenPair{}, err
	}
	if !payload.EmailVerified {
		a.logger.Info("Auth service: google email not verified",
			"email", payload.Email)
		return model.TokenPair{}, apiErrors.NewErrBadIDToken(errors.New("email is not verified"))
	}
	return a.Login(ctx, payload.Email, "", true)
}

// Authenticate validates an access token.
func (a *Auth) Authenticate(_ context.Context, accessToken string) (model.AccessClaims, error) {
	claims, err := a.codec.VerifyAccess(accessToken)
	if err != nil {
		a.logger.Debug("Auth service: access token rejected",
			"reason", err.Error())
		return model.AccessClaims{}, apiErrors.NewErrUnauthorized()
	}
	return claims, nil
}
