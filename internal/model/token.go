package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenKind names a token variant. Stored kinds match the values persisted
// in the token store.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "ACCESS_TOKEN"
	TokenKindRefresh TokenKind = "REFRESH_TOKEN"
	TokenKindReset   TokenKind = "RESET_TOKEN"
	TokenKindConfirm TokenKind = "CONFIRM_TOKEN"
)

// String implements fmt.Stringer.
func (k TokenKind) String() string {
	return string(k)
}

// TokenCodec mints and verifies signed tokens. It never consults storage.
type TokenCodec interface {
	GenerateAccessAndRefreshPair(userID uuid.UUID, role string, isFirstLogin bool) (TokenPair, error)
	GenerateResetToken(userID uuid.UUID, firstName, email string) (string, error)
	GenerateConfirmToken(userID uuid.UUID, role string) (string, error)
	VerifyAccess(token string) (AccessClaims, error)
	VerifyRefresh(token string) (AccessClaims, error)
	VerifyReset(token string) (ResetClaims, error)
	VerifyConfirm(token string) (ConfirmClaims, error)
}

// TokenStore persists issued refresh, reset and confirm tokens. Presence of
// a row is what keeps a token valid.
type TokenStore interface {
	Save(ctx context.Context, userID uuid.UUID, token string, kind TokenKind) error
	Find(ctx context.Context, token string, kind TokenKind) (StoredToken, error)
	Remove(ctx context.Context, token string) error
	RemoveAllForUser(ctx context.Context, userID uuid.UUID, kind TokenKind) error
}

// StoredToken is a persisted token row.
type StoredToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      TokenKind
	Token     string
	CreatedAt time.Time
}

// TokenPair is returned by login and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AccessClaims is the payload of access and refresh tokens.
type AccessClaims struct {
	UserID       uuid.UUID
	Role         string
	IsFirstLogin bool
	IssuedAt     time.Time
	ExpiresAt    time.Time
}

// ResetClaims is the payload of a password reset token.
type ResetClaims struct {
	UserID    uuid.UUID
	FirstName string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ConfirmClaims is the payload of an email confirmation token.
type ConfirmClaims struct {
	UserID    uuid.UUID
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
