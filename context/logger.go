package context

import (
	"context"
	"log/slog"
)

type contextkey string

const (
	loggerKey contextkey = "logger"
)

// ContextSetLogger binds a request-scoped logger to ctx.
func ContextSetLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// ContextGetLogger retrieves the request logger.
// Returns nil if none is set (e.g. outside an HTTP request).
func ContextGetLogger(ctx context.Context) *slog.Logger {
	val := ctx.Value(loggerKey)
	logger, ok := val.(*slog.Logger)
	if !ok {
		return nil
	}
	return logger
}
