package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/nguyentranbao-ct/dream-api/internal/models"
)

var (
	DefaultSkipper = func(c echo.Context) bool {
		return false
	}
)

type Skipper func(c echo.Context) bool

type Logger interface {
	Infow(template string, args ...any)
	Warnw(template string, args ...any)
	Errorw(template string, args ...any)
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	OK        bool                `json:"ok"`
	Error     string              `json:"error"`
	Fields    []models.FieldError `json:"fields,omitempty"`
	RequestID string              `json:"request_id,omitempty"`
}
