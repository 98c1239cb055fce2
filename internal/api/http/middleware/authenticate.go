package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dtroode/auth-server/internal/model"
)

// Authenticator resolves access claims from a bearer token.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (model.AccessClaims, error)
}

type claimsKey struct{}

// Authenticate guards handlers with a bearer access token.
type Authenticate struct {
	authenticator Authenticator
	onError       func(w http.ResponseWriter, r *http.Request, err error)
}

// NewAuthenticate creates a new Authenticate middleware. onError writes the
// failure response.
func NewAuthenticate(authenticator Authenticator, onError func(w http.ResponseWriter, r *http.Request, err error)) *Authenticate {
	return &Authenticate{authenticator: authenticator, onError: onError}
}

// Handle rejects requests without a valid "Authorization: Bearer" header and
// stores the claims of accepted ones in the request context.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)

		claims, err := m.authenticator.Authenticate(r.Context(), token)
		if err != nil {
			m.onError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
	})
}

// ClaimsFromContext returns claims stored by Authenticate.
func ClaimsFromContext(ctx context.Context) (model.AccessClaims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(model.AccessClaims)
	return claims, ok
}

func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
