package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "comanda/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_PropagatesClientRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	m := NewRequestIDMiddleware(logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Process(func(c echo.Context) error {
		ctx := c.Request().Context()

		assert.Equal(t, "req-123", deliverycontext.GetRequestIDFromContext(ctx))

		// The scoped logger carries the request id on every line.
		scoped := deliverycontext.GetLoggerOrDefault(ctx, slog.New(slog.NewTextHandler(io.Discard, nil)))
		scoped.Info("inside handler")
		assert.Contains(t, buf.String(), "request_id=req-123")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_GeneratesRequestIDWhenAbsent(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewRequestIDMiddleware(logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := m.Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return nil
	})

	require.NoError(t, handler(c))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestGetLoggerOrDefault_FallsBackOutsideRequests(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	got := deliverycontext.GetLoggerOrDefault(context.Background(), fallback)

	assert.Same(t, fallback, got)
}
