package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/auth-server/internal/api/grpc/proto"
	"github.com/dtroode/auth-server/internal/metrics"
)

var flowByMethod = map[string]string{
	proto.Auth_Signup_FullMethodName:                 metrics.FlowSignup,
	proto.Auth_Login_FullMethodName:                  metrics.FlowLogin,
	proto.Auth_Logout_FullMethodName:                 metrics.FlowLogout,
	proto.Auth_RefreshToken_FullMethodName:           metrics.FlowRefresh,
	proto.Auth_SendResetPasswordEmail_FullMethodName: metrics.FlowResetRequest,
	proto.Auth_UpdatePassword_FullMethodName:         metrics.FlowResetComplete,
	proto.Auth_ConfirmEmail_FullMethodName:           metrics.FlowConfirmEmail,
	proto.Auth_GoogleAuth_FullMethodName:             metrics.FlowGoogle,
	proto.Auth_GetSession_FullMethodName:             metrics.FlowSession,
}

// Metrics is a unary interceptor counting auth flows by outcome.
type Metrics struct {
	metrics *metrics.Metrics
}

// NewMetrics creates a new Metrics middleware.
func NewMetrics(m *metrics.Metrics) *Metrics {
	return &Metrics{metrics: m}
}

// HandleGRPC records the flow of known auth methods. Other methods pass through.
func (m *Metrics) HandleGRPC(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	flow, ok := flowByMethod[info.FullMethod]
	if !ok {
		return handler(ctx, req)
	}

	start := time.Now()
	resp, err := handler(ctx, req)
	m.metrics.Observe(flow, outcome(err), time.Since(start))

	return resp, err
}

// outcome reads the stable error code handlers put into the status message.
func outcome(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	st, ok := status.FromError(err)
	if !ok || st.Code() == codes.Internal || st.Code() == codes.Unknown || st.Message() == "" {
		return metrics.OutcomeError
	}
	return st.Message()
}
