package ctxdata

import (
	"context"
)

type traceIDKey struct{}
type userIDKey struct{}
type sessionTokenKey struct{}

var (
	traceIDKeyInstance      = traceIDKey{}
	userIDKeyInstance       = userIDKey{}
	sessionTokenKeyInstance = sessionTokenKey{}
)

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKeyInstance, traceID)
}

func GetTraceID(ctx context.Context) (string, bool) {
	v := ctx.Value(traceIDKeyInstance)
	traceID, ok := v.(string)
	return traceID, ok
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKeyInstance, userID)
}

func GetUserID(ctx context.Context) (string, bool) {
	v := ctx.Value(userIDKeyInstance)
	userID, ok := v.(string)
	return userID, ok
}

// WithSessionToken stores the raw bearer token the request was authenticated with,
// so logout can drop exactly that session.
func WithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionTokenKeyInstance, token)
}

func GetSessionToken(ctx context.Context) (string, bool) {
	v := ctx.Value(sessionTokenKeyInstance)
	token, ok := v.(string)
	return token, ok
}
