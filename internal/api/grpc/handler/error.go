package handler

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apiErrors "github.com/dtroode/auth-server/internal/api/errors"
)

// handleError converts err to a gRPC status whose message is the stable
// error code. Unknown errors become Internal.
func handleError(err error) error {
	if apiErr, ok := apiErrors.As(err); ok && apiErr.Code != apiErrors.CodeInternalServerError {
		return status.Error(apiErr.GRPCCode, apiErr.Code)
	}

	return status.Error(codes.Internal, apiErrors.CodeInternalServerError)
}
