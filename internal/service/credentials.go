package service

import (
	apiErrors "github.com/dtroode/auth-server/internal/api/errors"
	"github.com/dtroode/auth-server/internal/logger"
	"github.com/dtroode/auth-server/internal/model"
)

// CredentialVerifier decides whether a login attempt for a known user is
// authorized.
type CredentialVerifier struct {
	hasher model.PasswordHasher
	logger *logger.Logger
}

func NewCredentialVerifier(hasher model.PasswordHasher, logger *logger.Logger) *CredentialVerifier {
	return &CredentialVerifier{hasher: hasher, logger: logger}
}

// CheckPassword reports whether plain matches hash. A hash that cannot be
// parsed counts as a mismatch.
func (v *CredentialVerifier) CheckPassword(plain, hash string) bool {
	ok, err := v.hasher.Compare(plain, hash)
	if err != nil {
		v.logger.Warn("Credential verifier: failed to compare password",
			"error", err.Error())
		return false
	}
	return ok
}

// Authorize checks the password, or accepts a caller-asserted identity
// provider login, and then requires a confirmed email.
func (v *CredentialVerifier) Authorize(user model.User, plain string, isFromGoogle bool) error {
	if !v.CheckPassword(plain, user.PasswordHash) && !isFromGoogle {
		return apiErrors.NewErrIncorrectCredentials()
	}

	if !user.IsEmailConfirmed {
		return apiErrors.NewErrEmailNotConfirmed()
	}

	return nil
}
