// Package bearer carries the caller's bearer token through the context so
// outbound marketplace requests authenticate as the original caller rather
// than as the gateway itself.
package bearer

import (
	"context"

	"epicerie/internal/pkg/errs"
)

type contextKey struct{}

// WithToken returns a context carrying the bearer token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, contextKey{}, token)
}

// TokenFromContext extracts the bearer token placed by WithToken.
// Returns a validation error when no token is present, so a misconfigured
// call site fails before any request leaves the process.
func TokenFromContext(ctx context.Context) (string, error) {
	token, ok := ctx.Value(contextKey{}).(string)
	if !ok || token == "" {
		return "", errs.NewValueIsRequiredError("bearer token")
	}
	return token, nil
}
