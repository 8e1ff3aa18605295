package logger

import (
	"context"

	"multivendor-shop/internal/utils"

	"go.uber.org/zap"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// FromCtx returns the global logger enriched with request_id and, once the
// session middleware has run, the acting user.
func FromCtx(ctx context.Context) *zap.Logger {
	l := L()
	if reqID := RequestIDFrom(ctx); reqID != "" {
		l = l.With(zap.String("request_id", reqID))
	}
	if uid, ok := utils.GetUserIDFromContext(ctx); ok {
		l = l.With(
			zap.Int64("user_id", uid),
			zap.String("username", utils.GetUsernameFromContext(ctx)),
			zap.String("role", utils.GetUserRoleFromContext(ctx)),
		)
	}
	return l
}
