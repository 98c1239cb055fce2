package model

import (
	"context"

	"github.com/google/uuid"
)

// SignupParams describes a signup request.
type SignupParams struct {
	Role           string
	FirstName      string
	LastName       string
	Email          string
	Password       string
	Language       string
	NativeLanguage string
}

// SignupResult is returned by a successful signup.
type SignupResult struct {
	UserID    uuid.UUID `json:"userId"`
	UserEmail string    `json:"userEmail"`
}

// PasswordHasher is the password primitive used by signup, login and reset.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(plain, hash string) (bool, error)
}

// IDTokenVerifier validates third-party identity tickets.
type IDTokenVerifier interface {
	Verify(ctx context.Context, idToken, audience string) (GooglePayload, error)
}

// GooglePayload is the subset of identity claims the service consumes.
type GooglePayload struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
	Audience      string `json:"aud"`
	Issuer        string `json:"iss"`
}
