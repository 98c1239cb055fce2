package middleware

import (
	"context"
	"net/http"
)

type outcomeKey struct{}

type outcomeHolder struct {
	code string
}

// SetOutcome records the stable error code of a failed request so the
// metrics middleware can label it. It is a no-op outside that middleware.
func SetOutcome(ctx context.Context, code string) {
	if h, ok := ctx.Value(outcomeKey{}).(*outcomeHolder); ok {
		h.code = code
	}
}

func withOutcome(r *http.Request) (*http.Request, *outcomeHolder) {
	h := &outcomeHolder{}
	return r.WithContext(context.WithValue(r.Context(), outcomeKey{}, h)), h
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

func (r *statusRecorder) code() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}
