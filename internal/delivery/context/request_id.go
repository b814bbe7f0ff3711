package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// contextKey keeps request-scoped values from colliding with other packages.
type contextKey string

const (
	keyRequestID contextKey = "request_id"
	keyLogger    contextKey = "logger"

	// HeaderXRequestID is the header the request id travels in, both ways.
	HeaderXRequestID = "X-Request-Id"
)

// SetRequestID stores the request id in echo.Context for response helpers.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// WithRequestID binds the request id to a context.Context so layers below
// the handlers can correlate their work with the request.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetRequestIDFromContext returns the request id bound to ctx, or "" when
// the call did not come through the HTTP middleware.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// WithLogger binds a request-scoped logger to ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger bound to ctx. Calls
// that did not pass through the HTTP middleware get the fallback, so log
// lines never silently disappear.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
