package google

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	"github.com/dtroode/auth-server/internal/model"
)

type fakeValidator struct {
	payload  *idtoken.Payload
	err      error
	audience string
	called   bool
}

func (f *fakeValidator) Validate(_ context.Context, _ string, audience string) (*idtoken.Payload, error) {
	f.called = true
	f.audience = audience
	return f.payload, f.err
}

func TestVerifier_Verify(t *testing.T) {
	fv := &fakeValidator{payload: &idtoken.Payload{
		Issuer:   "https://accounts.google.com",
		Audience: "client-id",
		Subject:  "1234",
		Claims: map[string]interface{}{
			"email":          "a@x.com",
			"email_verified": true,
			"given_name":     "Ann",
			"family_name":    "Lee",
			"picture":        "https://example.com/a.png",
		},
	}}
	v := &Verifier{validator: fv}

	got, err := v.Verify(context.Background(), "ticket", "client-id")
	require.NoError(t, err)
	assert.Equal(t, "client-id", fv.audience)
	assert.Equal(t, model.GooglePayload{
		Subject:       "1234",
		Email:         "a@x.com",
		EmailVerified: true,
		GivenName:     "Ann",
		FamilyName:    "Lee",
		Picture:       "https://example.com/a.png",
		Audience:      "client-id",
		Issuer:        "https://accounts.google.com",
	}, got)
}

func TestVerifier_Verify_StringEmailVerified(t *testing.T) {
	v := &Verifier{validator: &fakeValidator{payload: &idtoken.Payload{
		Claims: map[string]interface{}{"email_verified": "true"},
	}}}

	got, err := v.Verify(context.Background(), "ticket", "aud")
	require.NoError(t, err)
	assert.True(t, got.EmailVerified)
	assert.Empty(t, got.Email)
}

func TestVerifier_Verify_Errors(t *testing.T) {
	v := &Verifier{validator: &fakeValidator{err: errors.New("idtoken: token expired")}}

	_, err := v.Verify(context.Background(), "", "aud")
	require.ErrorIs(t, err, ErrEmptyToken)

	_, err = v.Verify(context.Background(), "ticket", "aud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token expired")
}

func TestVerifier_Verify_EmptyAudience(t *testing.T) {
	fv := &fakeValidator{payload: &idtoken.Payload{Audience: "other-app", Claims: map[string]interface{}{"email": "a@x.com"}}}
	v := &Verifier{validator: fv}

	_, err := v.Verify(context.Background(), "ticket", "")
	require.ErrorIs(t, err, ErrEmptyAudience)
	assert.False(t, fv.called)
}
