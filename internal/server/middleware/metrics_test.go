package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/nguyentranbao-ct/dream-api/internal/models"
)

func resetMetrics() {
	m := newHTTPMetrics(DefaultMetricsConfig)
	m.duration.Reset()
	m.failures.Reset()
}

func TestMetrics(t *testing.T) {
	resetMetrics()

	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(&recordLogger{})
	e.Use(Metrics())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.POST("/api/lead", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"ok": true})
	})
	e.POST("/api/quiz/submit", func(c echo.Context) error {
		return models.NewValidationError("user_email", "field required")
	})
	e.GET("/api/dream/history", func(c echo.Context) error {
		return fmt.Errorf("find dreams: %w", models.ErrStorageUnavailable)
	})

	send := func(method, path string, n int) {
		for i := 0; i < n; i++ {
			e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(method, path, nil))
		}
	}
	send(http.MethodPost, "/api/lead", 5)
	send(http.MethodPost, "/api/quiz/submit", 3)
	send(http.MethodGet, "/api/dream/history", 2)
	send(http.MethodGet, "/health", 4)
	send(http.MethodGet, "/wp-login.php", 7)
	send(http.MethodGet, "/.env", 1)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	for _, line := range []string{
		`dream_api_http_request_duration_seconds_count{code="200",method="POST",route="/api/lead"} 5`,
		`dream_api_http_request_duration_seconds_count{code="400",method="POST",route="/api/quiz/submit"} 3`,
		`dream_api_http_request_duration_seconds_count{code="503",method="GET",route="/api/dream/history"} 2`,
		`dream_api_http_request_duration_seconds_count{code="404",method="GET",route="/not-found"} 8`,
		`dream_api_http_failures_total{reason="validation",route="/api/quiz/submit"} 3`,
		`dream_api_http_failures_total{reason="storage_unavailable",route="/api/dream/history"} 2`,
		`dream_api_http_failures_total{reason="http",route="/not-found"} 8`,
	} {
		assert.Contains(t, body, line)
	}
	assert.NotContains(t, body, `route="/health"`)
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "dream_api_http_failures_total") {
			assert.NotContains(t, line, `route="/api/lead"`)
		}
	}
}
