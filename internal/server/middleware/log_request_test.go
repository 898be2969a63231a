package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestLogRequest(t *testing.T) {
	logger := &recordLogger{}
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(&recordLogger{})
	e.Use(RequestID())
	e.Use(LogRequest(LogRequestConfig{
		Logger: logger,
		Enabled: func(c echo.Context) bool {
			return c.Request().URL.Path != "/health"
		},
	}))
	e.POST("/api/lead", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"ok": true, "id": "1"})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/lead?ref=ad", strings.NewReader(`{"email":"a@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(XRequestID, "req-1")
	e.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, []string{"info"}, logger.levels())
	assert.Equal(t, http.StatusOK, logger.value("status"))
	assert.Equal(t, "req-1", logger.value("request_id"))
	assert.Equal(t, json.RawMessage(`{"email":"a@example.com"}`), logger.value("request_body"))
	assert.NotNil(t, logger.value("response_body"))
	assert.NotNil(t, logger.value("query"))

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Len(t, logger.levels(), 1)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, []string{"info", "warn"}, logger.levels())
}

func TestDumpBody(t *testing.T) {
	assert.Equal(t, json.RawMessage(`{"a":1}`), dumpBody([]byte(`{"a":1}`), 100))
	assert.Equal(t, "not json", dumpBody([]byte("not json"), 100))
	assert.Equal(t, `{"a"...`, dumpBody([]byte(`{"a":1}`), 4))
}
