package model

import "context"

// ContextManager carries authenticated access claims through a request context.
type ContextManager interface {
	SetClaimsToContext(ctx context.Context, claims AccessClaims) context.Context
	GetClaimsFromContext(ctx context.Context) (AccessClaims, bool)
}
