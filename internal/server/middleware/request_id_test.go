package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentranbao-ct/dream-api/internal/models"
)

func newRequestIDEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(&recordLogger{})
	e.Use(RequestIDWithConfig(RequestIDConfig{
		Generator: func() string { return "generated-id" },
	}))
	e.POST("/api/lead", WrapHandler(func(c echo.Context, req models.LeadRequest) (*models.CreatedResponse, error) {
		return &models.CreatedResponse{OK: true, ID: GetRequestID(c)}, nil
	}))
	return e
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "request id reused", headers: map[string]string{XRequestID: "lead-42"}, want: "lead-42"},
		{name: "correlation id reused", headers: map[string]string{XCorrelationID: "corr-7"}, want: "corr-7"},
		{name: "request id preferred", headers: map[string]string{XRequestID: "a", XCorrelationID: "b"}, want: "a"},
		{name: "generated when missing", want: "generated-id"},
		{name: "spaces rejected", headers: map[string]string{XRequestID: "two words"}, want: "generated-id"},
		{name: "oversized rejected", headers: map[string]string{XRequestID: strings.Repeat("x", maxRequestIDLength+1)}, want: "generated-id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/lead", strings.NewReader(`{"email":"ana@example.com"}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			newRequestIDEcho().ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get(XRequestID))
			assert.JSONEq(t, `{"ok":true,"id":"`+tt.want+`"}`, rec.Body.String())
		})
	}
}

func TestRequestIDOnValidationError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/lead", strings.NewReader(`{"email":"nope"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(XRequestID, "lead-400")
	rec := httptest.NewRecorder()
	newRequestIDEcho().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "lead-400", rec.Header().Get(XRequestID))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "lead-400", body.RequestID)
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "email", body.Fields[0].Field)
}

func TestRequestIDReachesRequestContext(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/api/dream/history", func(c echo.Context) error {
		ctx := c.Request().Context()
		assert.Equal(t, "hist-1", ctx.Value(XRequestID))
		assert.Equal(t, "hist-1", ctx.Value(XCorrelationID))
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/dream/history", nil)
	req.Header.Set(XCorrelationID, "hist-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "hist-1", rec.Header().Get(XRequestID))
}
