package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

type requestKey struct{}

// requestInfo is shared by the access-log middleware and the handlers it
// wraps so the final log line can name the caller.
type requestInfo struct {
	userID int64
}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the request logger, or slog.Default outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// WithUserID tags the request logger with the authenticated user and
// reports it to the enclosing access log.
func WithUserID(ctx context.Context, userID int64) context.Context {
	if info, ok := ctx.Value(requestKey{}).(*requestInfo); ok {
		info.userID = userID
	}
	return WithContext(ctx, FromContext(ctx).With("user_id", userID))
}
