package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentranbao-ct/dream-api/internal/models"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   ErrorResponse
		wantLogged bool
	}{
		{
			name:       "validation",
			err:        fmt.Errorf("bind: %w", models.NewValidationError("email", "value is not a valid email address")),
			wantStatus: http.StatusBadRequest,
			wantBody: ErrorResponse{
				Error:  "validation failed",
				Fields: []models.FieldError{{Field: "email", Reason: "value is not a valid email address"}},
			},
		},
		{
			name:       "storage unavailable",
			err:        fmt.Errorf("insert lead: %w", models.ErrStorageUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   ErrorResponse{Error: "storage unavailable"},
			wantLogged: true,
		},
		{
			name:       "storage write",
			err:        fmt.Errorf("insert lead: %w: %w", models.ErrStorageWrite, errors.New("duplicate key")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   ErrorResponse{Error: "storage write failed"},
			wantLogged: true,
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   ErrorResponse{Error: "method not allowed"},
		},
		{
			name:       "deadline",
			err:        fmt.Errorf("find dreams: %w", context.DeadlineExceeded),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   ErrorResponse{Error: "request timed out"},
			wantLogged: true,
		},
		{
			name:       "unknown error stays opaque",
			err:        errors.New("mongo: secret connection string"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   ErrorResponse{Error: "Internal Server Error"},
			wantLogged: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &recordLogger{}
			req := httptest.NewRequest(http.MethodPost, "/api/lead", nil)
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			ErrorHandler(logger)(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body)
			assert.NotContains(t, rec.Body.String(), "secret")
			if tt.wantLogged {
				assert.Equal(t, []string{"error"}, logger.levels())
			} else {
				assert.Empty(t, logger.levels())
			}
		})
	}
}

func TestErrorHandlerRouteNotFound(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(&recordLogger{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"no route matched"}`, rec.Body.String())
}

func TestErrorHandlerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/dream/history", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	ErrorHandler(&recordLogger{})(context.Canceled, c)
	assert.Equal(t, StatusClientClosedRequest, rec.Code)
}

func TestErrorHandlerHead(t *testing.T) {
	req := httptest.NewRequest(http.MethodHead, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	ErrorHandler(&recordLogger{})(models.ErrStorageUnavailable, c)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Empty(t, rec.Body.String())
}
