package middleware

import "context"

type contextKey string

const ctxAuthUserID contextKey = "auth_user_id"

// AuthUserIDFromContext returns the external auth id attached by the Auth
// middleware, or empty when the request is unauthenticated.
func AuthUserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxAuthUserID).(string); ok {
		return v
	}
	return ""
}
