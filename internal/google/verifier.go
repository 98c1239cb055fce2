package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"

	"github.com/dtroode/auth-server/internal/model"
)

var (
	ErrEmptyToken    = errors.New("id token is empty")
	ErrEmptyAudience = errors.New("audience is empty")
)

type validator interface {
	Validate(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

var _ model.IDTokenVerifier = (*Verifier)(nil)

// Verifier checks Google ID tokens against Google's published keys.
type Verifier struct {
	validator validator
}

// NewVerifier creates a Verifier that fetches signing keys with client.
// A nil client means http.DefaultClient.
func NewVerifier(ctx context.Context, client *http.Client) (*Verifier, error) {
	if client == nil {
		client = http.DefaultClient
	}

	v, err := idtoken.NewValidator(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create id token validator: %w", err)
	}

	return &Verifier{validator: v}, nil
}

// Verify validates signature, expiry, issuer and audience of idToken.
// An empty audience is rejected since idtoken skips the audience check for it.
func (v *Verifier) Verify(ctx context.Context, idToken, audience string) (model.GooglePayload, error) {
	if idToken == "" {
		return model.GooglePayload{}, ErrEmptyToken
	}
	if audience == "" {
		return model.GooglePayload{}, ErrEmptyAudience
	}

	p, err := v.validator.Validate(ctx, idToken, audience)
	if err != nil {
		return model.GooglePayload{}, fmt.Errorf("failed to validate id token: %w", err)
	}

	return model.GooglePayload{
		Subject:       p.Subject,
		Email:         claimString(p.Claims, "email"),
		EmailVerified: claimBool(p.Claims, "email_verified"),
		GivenName:     claimString(p.Claims, "given_name"),
		FamilyName:    claimString(p.Claims, "family_name"),
		Picture:       claimString(p.Claims, "picture"),
		Audience:      p.Audience,
		Issuer:        p.Issuer,
	}, nil
}

func claimString(claims map[string]interface{}, key string) string {
	s, _ := claims[key].(string)
	return s
}

func claimBool(claims map[string]interface{}, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
