package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"courierhub/internal/observability"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const CtxRequestIDKey = "request_id"

// RequestID honors an inbound X-Request-ID or generates one, and echoes it
// back on the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Request().Header.Get("X-Request-ID")
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Set(CtxRequestIDKey, reqID)
			c.Response().Header().Set("X-Request-ID", reqID)
			return next(c)
		}
	}
}

// RequestLogger emits one structured log line per request and feeds the
// prometheus request counters.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = c.Request().URL.Path
			}
			status := c.Response().Status
			statusLabel := strconv.Itoa(status)

			observability.HTTPRequestsTotal.WithLabelValues(c.Request().Method, route, statusLabel).Inc()
			observability.HTTPRequestDuration.WithLabelValues(c.Request().Method, route, statusLabel).Observe(time.Since(start).Seconds())

			args := []any{
				"method", c.Request().Method,
				"route", route,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", c.RealIP(),
			}
			if reqID, ok := c.Get(CtxRequestIDKey).(string); ok && reqID != "" {
				args = append(args, "request_id", reqID)
			}
			logger.Info("http_request", args...)

			return nil
		}
	}
}
