package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/auth-server/internal/logger"
	"github.com/dtroode/auth-server/internal/model"
)

// TokenService issues tokens and enforces the store-backed validity rule:
// a refresh, reset or confirm token is accepted only when it verifies and
// a matching row exists in the store.
type TokenService struct {
	codec  model.TokenCodec
	store  model.TokenStore
	logger *logger.Logger
}

func NewTokenService(codec model.TokenCodec, store model.TokenStore, logger *logger.Logger) *TokenService {
	return &TokenService{codec: codec, store: store, logger: logger}
}

// Issue mints an access and refresh pair and persists the refresh token.
func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID, role string, isFirstLogin bool) (model.TokenPair, error) {
	pair, err := s.codec.GenerateAccessAndRefreshPair(userID, role, isFirstLogin)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := s.store.Save(ctx, userID, pair.RefreshToken, model.TokenKindRefresh); err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return pair, nil
}

// IssueReset mints and persists a password reset token.
func (s *TokenService) IssueReset(ctx context.Context, user model.User) (string, error) {
	token, err := s.codec.GenerateResetToken(user.ID, user.FirstName, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	if err := s.store.Save(ctx, user.ID, token, model.TokenKindReset); err != nil {
		return "", fmt.Errorf("failed to save reset token: %w", err)
	}

	return token, nil
}

// IssueConfirm mints and persists an email confirmation token.
func (s *TokenService) IssueConfirm(ctx context.Context, userID uuid.UUID, role string) (string, error) {
	token, err := s.codec.GenerateConfirmToken(userID, role)
	if err != nil {
		return "", fmt.Errorf("failed to generate confirm token: %w", err)
	}

	if err := s.store.Save(ctx, userID, token, model.TokenKindConfirm); err != nil {
		return "", fmt.Errorf("failed to save confirm token: %w", err)
	}

	return token, nil
}

// CheckRefresh returns the claims of a live refresh token.
func (s *TokenService) CheckRefresh(ctx context.Context, token string) (model.AccessClaims, error) {
	claims, err := s.codec.VerifyRefresh(token)
	if err != nil {
		return model.AccessClaims{}, err
	}
	if err := s.checkStored(ctx, token, model.TokenKindRefresh); err != nil {
		return model.AccessClaims{}, err
	}
	return claims, nil
}

// CheckReset returns the claims of a live reset token.
func (s *TokenService) CheckReset(ctx context.Context, token string) (model.ResetClaims, error) {
	claims, err := s.codec.VerifyReset(token)
	if err != nil {
		return model.ResetClaims{}, err
	}
	if err := s.checkStored(ctx, token, model.TokenKindReset); err != nil {
		return model.ResetClaims{}, err
	}
	return claims, nil
}

// CheckConfirm returns the claims of a live confirm token.
func (s *TokenService) CheckConfirm(ctx context.Context, token string) (model.ConfirmClaims, error) {
	claims, err := s.codec.VerifyConfirm(token)
	if err != nil {
		return model.ConfirmClaims{}, err
	}
	if err := s.checkStored(ctx, token, model.TokenKindConfirm); err != nil {
		return model.ConfirmClaims{}, err
	}
	return claims, nil
}

// Revoke removes a single stored token. Unknown tokens are not an error.
func (s *TokenService) Revoke(ctx context.Context, token string) error {
	if err := s.store.Remove(ctx, token); err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}

// RevokeAllForUser removes every stored token of kind owned by userID.
func (s *TokenService) RevokeAllForUser(ctx context.Context, userID uuid.UUID, kind model.TokenKind) error {
	if err := s.store.RemoveAllForUser(ctx, userID, kind); err != nil {
		return fmt.Errorf("failed to remove %s tokens: %w", kind, err)
	}
	return nil
}

// checkStored maps a missing row to model.ErrInvalidToken. Other store
// failures are returned as is.
func (s *TokenService) checkStored(ctx context.Context, token string, kind model.TokenKind) error {
	_, err := s.store.Find(ctx, token, kind)
	if errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("%w: %s not found in store", model.ErrInvalidToken, kind)
	}
	if err != nil {
		return fmt.Errorf("failed to find %s: %w", kind, err)
	}
	return nil
}
