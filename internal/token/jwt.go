package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/auth-server/internal/model"
)

// Default lifetimes per token kind.
const (
	DefaultAccessTTL  = 15 * time.Minute
	DefaultRefreshTTL = 30 * 24 * time.Hour
	DefaultResetTTL   = 24 * time.Hour
	DefaultConfirmTTL = 24 * time.Hour
)

var _ model.TokenCodec = (*JWT)(nil)

// Claims is the wire payload shared by all token kinds. Unused fields are
// omitted per kind.
type Claims struct {
	jwt.RegisteredClaims
	UserID       uuid.UUID `json:"id"`
	TokenType    string    `json:"typ"`
	Role         string    `json:"role,omitempty"`
	IsFirstLogin bool      `json:"isFirstLogin,omitempty"`
	FirstName    string    `json:"firstName,omitempty"`
	Email        string    `json:"email,omitempty"`
}

// KindConfig holds the signing secret and lifetime of one token kind.
type KindConfig struct {
	Secret string
	TTL    time.Duration
}

// Config holds independent settings for every token kind.
type Config struct {
	Access  KindConfig
	Refresh KindConfig
	Reset   KindConfig
	Confirm KindConfig
}

// JWT implements model.TokenCodec with HMAC-SHA256 tokens, each kind signed
// with its own secret.
type JWT struct {
	cfg Config
	now func() time.Time
}

// Option configures JWT.
type Option func(*JWT)

// WithClock overrides the time source used for issuing and validating.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) {
		j.now = now
	}
}

// NewJWT creates a token codec. Zero TTLs fall back to the defaults.
func NewJWT(cfg Config, opts ...Option) *JWT {
	if cfg.Access.TTL == 0 {
		cfg.Access.TTL = DefaultAccessTTL
	}
	if cfg.Refresh.TTL == 0 {
		cfg.Refresh.TTL = DefaultRefreshTTL
	}
	if cfg.Reset.TTL == 0 {
		cfg.Reset.TTL = DefaultResetTTL
	}
	if cfg.Confirm.TTL == 0 {
		cfg.Confirm.TTL = DefaultConfirmTTL
	}

	j := &JWT{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// TTL returns the configured lifetime of kind.
func (j *JWT) TTL(kind model.TokenKind) time.Duration {
	return j.kindConfig(kind).TTL
}

// GenerateAccessAndRefreshPair creates a short-lived access token and a
// long-lived refresh token with the same payload.
func (j *JWT) GenerateAccessAndRefreshPair(userID uuid.UUID, role string, isFirstLogin bool) (model.TokenPair, error) {
	claims := Claims{UserID: userID, Role: role, IsFirstLogin: isFirstLogin}

	access, err := j.sign(model.TokenKindAccess, claims)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := j.sign(model.TokenKindRefresh, claims)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// GenerateResetToken creates a password reset token.
func (j *JWT) GenerateResetToken(userID uuid.UUID, firstName, email string) (string, error) {
	token, err := j.sign(model.TokenKindReset, Claims{UserID: userID, FirstName: firstName, Email: email})
	if err != nil {
		return "", fmt.Errorf("failed to sign reset token: %w", err)
	}
	return token, nil
}

// GenerateConfirmToken creates an email confirmation token.
func (j *JWT) GenerateConfirmToken(userID uuid.UUID, role string) (string, error) {
	token, err := j.sign(model.TokenKindConfirm, Claims{UserID: userID, Role: role})
	if err != nil {
		return "", fmt.Errorf("failed to sign confirm token: %w", err)
	}
	return token, nil
}

// VerifyAccess validates an access token.
func (j *JWT) VerifyAccess(tokenString string) (model.AccessClaims, error) {
	claims, err := j.parse(model.TokenKindAccess, tokenString)
	if err != nil {
		return model.AccessClaims{}, err
	}
	return toAccessClaims(claims), nil
}

// VerifyRefresh validates a refresh token. It does not check revocation.
func (j *JWT) VerifyRefresh(tokenString string) (model.AccessClaims, error) {
	claims, err := j.parse(model.TokenKindRefresh, tokenString)
	if err != nil {
		return model.AccessClaims{}, err
	}
	return toAccessClaims(claims), nil
}

// VerifyReset validates a password reset token.
func (j *JWT) VerifyReset(tokenString string) (model.ResetClaims, error) {
	claims, err := j.parse(model.TokenKindReset, tokenString)
	if err != nil {
		return model.ResetClaims{}, err
	}
	return model.ResetClaims{
		UserID:    claims.UserID,
		FirstName: claims.FirstName,
		Email:     claims.Email,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// VerifyConfirm validates an email confirmation token.
func (j *JWT) VerifyConfirm(tokenString string) (model.ConfirmClaims, error) {
	claims, err := j.parse(model.TokenKindConfirm, tokenString)
	if err != nil {
		return model.ConfirmClaims{}, err
	}
	return model.ConfirmClaims{
		UserID:    claims.UserID,
		Role:      claims.Role,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (j *JWT) sign(kind model.TokenKind, claims Claims) (string, error) {
	kc := j.kindConfig(kind)
	now := j.now()

	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(kc.TTL)),
	}
	claims.TokenType = kind.String()

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(kc.Secret))
}

func (j *JWT) parse(kind model.TokenKind, tokenString string) (*Claims, error) {
	kc := j.kindConfig(kind)
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(kc.Secret), nil
	},
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", model.ErrInvalidToken, kind, err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("%w: %s is invalid", model.ErrInvalidToken, kind)
	}
	if claims.TokenType != kind.String() {
		return nil, fmt.Errorf("%w: token type mismatch: %s", model.ErrInvalidToken, claims.TokenType)
	}
	if claims.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing subject", model.ErrInvalidToken)
	}

	return claims, nil
}

func (j *JWT) kindConfig(kind model.TokenKind) KindConfig {
	switch kind {
	case model.TokenKindRefresh:
		return j.cfg.Refresh
	case model.TokenKindReset:
		return j.cfg.Reset
	case model.TokenKindConfirm:
		return j.cfg.Confirm
	default:
		return j.cfg.Access
	}
}

func toAccessClaims(claims *Claims) model.AccessClaims {
	return model.AccessClaims{
		UserID:       claims.UserID,
		Role:         claims.Role,
		IsFirstLogin: claims.IsFirstLogin,
		IssuedAt:     claims.IssuedAt.Time,
		ExpiresAt:    claims.ExpiresAt.Time,
	}
}
