package middleware

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	e := echo.New()
	e.Use(CORS(AnyOrigin))
	e.POST("/api/lead", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	t.Run("reflects origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/lead", nil)
		req.Header.Set(echo.HeaderOrigin, "https://revelia.life")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://revelia.life", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/lead", nil)
		req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
		req.Header.Set(echo.HeaderAccessControlRequestHeaders, "content-type, x-request-id")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Equal(t, "content-type, x-request-id", rec.Header().Get(echo.HeaderAccessControlAllowHeaders))
		assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPost)
	})

	t.Run("no origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/lead", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})
}

func TestCORSPattern(t *testing.T) {
	e := echo.New()
	e.Use(CORS(regexp.MustCompile(`^https://(www\.)?revelia\.life$`)))
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderOrigin, "https://evil.example")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, echo.HeaderOrigin, rec.Header().Get(echo.HeaderVary))
}
