package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// healthPaths are probed often. Only their first success and every failure
// are logged.
var healthPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestIDFromContext returns the request ID stored by RequestLog.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header, the echo context and the request context.
// Client errors and failed probes log at WARN, server errors at ERROR.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var seenHealthy sync.Map

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)
			c.SetRequest(c.Request().WithContext(
				context.WithValue(c.Request().Context(), requestIDKey{}, reqID),
			))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Request().URL.Path
			status := c.Response().Status

			_, health := healthPaths[path]
			if health && status < http.StatusBadRequest {
				if _, loaded := seenHealthy.LoadOrStore(path, struct{}{}); loaded {
					return nil
				}
			}

			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError && !health:
				level = slog.LevelError
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			log.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", c.Request().Method),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.String("request_id", reqID),
			)

			return nil
		}
	}
}
