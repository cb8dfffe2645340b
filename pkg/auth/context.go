package auth

import (
	"context"
)

type contextKey string

// ContextKeyIdentity is the context key for the wallet label a request acts as
const ContextKeyIdentity contextKey = "identity"

// WithIdentity adds the wallet identity to the context
func WithIdentity(ctx context.Context, identityID string) context.Context {
	return context.WithValue(ctx, ContextKeyIdentity, identityID)
}

// IdentityFromContext retrieves the wallet identity from the context
func IdentityFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ContextKeyIdentity).(string)
	return id, ok && id != ""
}
