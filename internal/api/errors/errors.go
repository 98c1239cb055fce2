// Package errors defines the typed failures returned to API callers.
//
// Every APIError carries a stable machine-readable code together with the
// HTTP status and gRPC code the transports answer with.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
)

// Stable error codes.
const (
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeIncorrectCredentials = "INCORRECT_CREDENTIALS"
	CodeEmailNotConfirmed    = "EMAIL_NOT_CONFIRMED"
	CodeBadRefreshToken      = "BAD_REFRESH_TOKEN"
	CodeBadResetToken        = "BAD_RESET_TOKEN"
	CodeBadConfirmToken      = "BAD_CONFIRM_TOKEN"
	CodeBadIDToken           = "BAD_ID_TOKEN"
	CodeAlreadyExists        = "ALREADY_EXISTS"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeBadRequest           = "BAD_REQUEST"
	CodeInternalServerError  = "INTERNAL_SERVER_ERROR"
)

// APIError is a failure with a stable code and transport statuses.
type APIError struct {
	Code       string
	Message    string
	HTTPStatus int
	GRPCCode   codes.Code
	Err        error
}

// Error implements error.
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches another APIError by code, so errors.Is works against the
// constructors' results.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// As extracts an APIError from err's chain.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// NewErrUserNotFound reports a missing account. Login answers 401, the
// password reset request answers 404.
func NewErrUserNotFound(status int) *APIError {
	grpcCode := codes.NotFound
	if status == http.StatusUnauthorized {
		grpcCode = codes.Unauthenticated
	}
	return &APIError{
		Code:       CodeUserNotFound,
		Message:    "user not found",
		HTTPStatus: status,
		GRPCCode:   grpcCode,
	}
}

func NewErrIncorrectCredentials() *APIError {
	return &APIError{
		Code:       CodeIncorrectCredentials,
		Message:    "incorrect credentials",
		HTTPStatus: http.StatusUnauthorized,
		GRPCCode:   codes.Unauthenticated,
	}
}

func NewErrEmailNotConfirmed() *APIError {
	return &APIError{
		Code:       CodeEmailNotConfirmed,
		Message:    "email is not confirmed",
		HTTPStatus: http.StatusUnauthorized,
		GRPCCode:   codes.Unauthenticated,
	}
}

func NewErrBadRefreshToken() *APIError {
	return &APIError{
		Code:       CodeBadRefreshToken,
		Message:    "bad refresh token",
		HTTPStatus: http.StatusBadRequest,
		GRPCCode:   codes.InvalidArgument,
	}
}

func NewErrBadResetToken() *APIError {
	return &APIError{
		Code:       CodeBadResetToken,
		Message:    "bad reset token",
		HTTPStatus: http.StatusBadRequest,
		GRPCCode:   codes.InvalidArgument,
	}
}

func NewErrBadConfirmToken() *APIError {
	return &APIError{
		Code:       CodeBadConfirmToken,
		Message:    "bad confirm token",
		HTTPStatus: http.StatusBadRequest,
		GRPCCode:   codes.InvalidArgument,
	}
}

func NewErrBadIDToken(err error) *APIError {
	return &APIError{
		Code:       CodeBadIDToken,
		Message:    "bad id token",
		HTTPStatus: http.StatusUnauthorized,
		GRPCCode:   codes.Unauthenticated,
		Err:        err,
	}
}

// NewErrAlreadyExists reports a unique field collision, e.g. a taken email.
func NewErrAlreadyExists(field string) *APIError {
	return &APIError{
		Code:       CodeAlreadyExists,
		Message:    fmt.Sprintf("%s is already taken", field),
		HTTPStatus: http.StatusConflict,
		GRPCCode:   codes.AlreadyExists,
	}
}

func NewErrUnauthorized() *APIError {
	return &APIError{
		Code:       CodeUnauthorized,
		Message:    "missing or invalid access token",
		HTTPStatus: http.StatusUnauthorized,
		GRPCCode:   codes.Unauthenticated,
	}
}

func NewErrBadRequest(message string) *APIError {
	return &APIError{
		Code:       CodeBadRequest,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		GRPCCode:   codes.InvalidArgument,
	}
}

// NewErrInternalServerError hides err from callers; it is kept for logging.
func NewErrInternalServerError(err error) *APIError {
	return &APIError{
		Code:       CodeInternalServerError,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		GRPCCode:   codes.Internal,
		Err:        err,
	}
}
