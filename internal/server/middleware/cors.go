package middleware

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"
)

var AnyOrigin = regexp.MustCompile(`.*`)

const defaultAllowMethods = "OPTIONS, POST, PUT, DELETE, GET, PATCH, HEAD"

// CORS return echo middleware that handle cors with regexp pattern. Matching
// origins are echoed back with credentials allowed, so browsers accept
// cookies even though every origin is let through.
func CORS(pattern *regexp.Regexp) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			respHeader := c.Response().Header()
			respHeader.Add(echo.HeaderVary, echo.HeaderOrigin)
			origin := req.Header.Get(echo.HeaderOrigin)
			if origin == "" || !pattern.MatchString(origin) {
				return next(c)
			}
			respHeader.Set(echo.HeaderAccessControlAllowOrigin, origin)
			respHeader.Set(echo.HeaderAccessControlAllowCredentials, "true")
			respHeader.Set(echo.HeaderAccessControlExposeHeaders, XRequestID)
			if req.Method != http.MethodOptions {
				return next(c)
			}

			// `*` is not honoured for credentialed requests, so echo the
			// requested headers when there are any
			allowHeaders := req.Header.Get(echo.HeaderAccessControlRequestHeaders)
			if allowHeaders == "" {
				allowHeaders = "*, Authorization"
			}
			respHeader.Set(echo.HeaderAccessControlAllowHeaders, allowHeaders)
			respHeader.Set(echo.HeaderAccessControlAllowMethods, defaultAllowMethods)
			return c.NoContent(http.StatusNoContent)
		}
	}
}
