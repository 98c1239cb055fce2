package context

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"

	"github.com/dtroode/auth-server/internal/model"
)

// Metadata keys carrying authenticated access claims in gRPC context.
const (
	userIDKey       string = "user_id"
	roleKey         string = "user_role"
	isFirstLoginKey string = "is_first_login"
	expiresAtKey    string = "expires_at"
)

var _ model.ContextManager = (*Manager)(nil)

// Manager represents a gRPC context manager for access claims.
// It stores claims in incoming metadata so downstream handlers can read them.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetClaimsToContext writes claims into the incoming metadata of ctx,
// replacing any values a client may have sent under the same keys.
func (m *Manager) SetClaimsToContext(ctx context.Context, claims model.AccessClaims) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.MD{}
	} else {
		md = md.Copy()
	}

	md.Set(userIDKey, claims.UserID.String())
	md.Set(roleKey, claims.Role)
	md.Set(isFirstLoginKey, strconv.FormatBool(claims.IsFirstLogin))
	md.Set(expiresAtKey, strconv.FormatInt(claims.ExpiresAt.Unix(), 10))

	return metadata.NewIncomingContext(ctx, md)
}

// GetClaimsFromContext reads claims set by SetClaimsToContext.
// It reports false when the user ID is missing or malformed.
func (m *Manager) GetClaimsFromContext(ctx context.Context) (model.AccessClaims, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return model.AccessClaims{}, false
	}

	userID, err := uuid.Parse(first(md, userIDKey))
	if err != nil || userID == uuid.Nil {
		return model.AccessClaims{}, false
	}

	claims := model.AccessClaims{
		UserID: userID,
		Role:   first(md, roleKey),
	}
	claims.IsFirstLogin, _ = strconv.ParseBool(first(md, isFirstLoginKey))
	if exp, err := strconv.ParseInt(first(md, expiresAtKey), 10, 64); err == nil {
		claims.ExpiresAt = time.Unix(exp, 0)
	}

	return claims, true
}

func first(md metadata.MD, key string) string {
	values := md.Get(key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
