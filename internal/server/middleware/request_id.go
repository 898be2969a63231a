package middleware

import (
	"context"

	httpclient "github.com/carousell/ct-go/pkg/httpclient"
	"github.com/labstack/echo/v4"
)

const (
	XRequestID     = "x-request-id"
	XCorrelationID = "x-correlation-id"

	maxRequestIDLength = 128
)

// GetRequestID returns the id RequestID assigned to c, falling back to the
// incoming headers for requests that never went through the middleware.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(XRequestID).(string); ok && id != "" {
		return id
	}
	return incomingRequestID(c)
}

// incomingRequestID returns the caller supplied id, or "" when it is
// missing or unfit to be echoed back in headers and logs.
func incomingRequestID(c echo.Context) string {
	h := c.Request().Header
	for _, key := range []string{XRequestID, XCorrelationID} {
		if id := h.Get(key); validRequestID(id) {
			return id
		}
	}
	return ""
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}

// RequestIDConfig lets tests pin the generated ids.
type RequestIDConfig struct {
	Skipper   Skipper
	Generator func() string
}

// RequestID tags every request with the caller's x-request-id or
// x-correlation-id, or a fresh correlation id. The id is stored on the echo
// context, on the request context for log_context, in the x-request-id
// response header and in error bodies.
func RequestID() echo.MiddlewareFunc {
	return RequestIDWithConfig(RequestIDConfig{})
}

func RequestIDWithConfig(config RequestIDConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultSkipper
	}
	if config.Generator == nil {
		config.Generator = httpclient.GenerateCorrelationID
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			id := incomingRequestID(c)
			if id == "" {
				id = config.Generator()
			}

			ctx := c.Request().Context()
			//lint:ignore SA1029 log_context reads these plain string keys
			ctx = context.WithValue(ctx, XRequestID, id)
			//lint:ignore SA1029 log_context reads these plain string keys
			ctx = context.WithValue(ctx, XCorrelationID, id)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Set(XRequestID, id)
			c.Response().Header().Set(XRequestID, id)

			return next(c)
		}
	}
}
