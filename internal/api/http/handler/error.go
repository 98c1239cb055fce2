package handler

import (
	"encoding/json"
	"net/http"

	apiErrors "github.com/dtroode/auth-server/internal/api/errors"
	"github.com/dtroode/auth-server/internal/api/http/middleware"
	"github.com/dtroode/auth-server/internal/logger"
)

type errorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorWriter answers failed requests with the JSON error body.
type ErrorWriter struct {
	logger *logger.Logger
}

// NewErrorWriter creates a new ErrorWriter.
func NewErrorWriter(logger *logger.Logger) *ErrorWriter {
	return &ErrorWriter{logger: logger}
}

// Write maps err to its APIError and writes it. Unknown errors become 500
// INTERNAL_SERVER_ERROR and are logged.
func (e *ErrorWriter) Write(w http.ResponseWriter, r *http.Request, err error) {
	apiErr, ok := apiErrors.As(err)
	if !ok {
		apiErr = apiErrors.NewErrInternalServerError(err)
	}
	if apiErr.HTTPStatus >= http.StatusInternalServerError {
		e.logger.Error("HTTP handler: request failed",
			"path", r.URL.Path,
			"error", err.Error())
	}

	middleware.SetOutcome(r.Context(), apiErr.Code)
	writeJSON(w, apiErr.HTTPStatus, errorResponse{
		Status:  apiErr.HTTPStatus,
		Code:    apiErr.Code,
		Message: apiErr.Message,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
