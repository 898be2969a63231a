package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nguyentranbao-ct/dream-api/internal/models"
)

const StatusClientClosedRequest = 499

// ErrorHandler return custom http error handler. Validation problems are
// reported field by field; storage and internal failures stay opaque.
func ErrorHandler(log Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if err == nil || c.Response().Committed {
			return
		}

		f := classify(c, err)
		resp := f.body
		resp.RequestID = GetRequestID(c)
		if f.status >= http.StatusInternalServerError {
			log.Errorw("request failed",
				"status", f.status,
				"reason", f.reason,
				"uri", c.Request().RequestURI,
				"request_id", resp.RequestID,
				"error", err.Error(),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(f.status)
		} else {
			err = c.JSON(f.status, resp)
		}
		if err != nil {
			log.Errorw("could not response", "code", f.status, "response_body", resp)
		}
	}
}

// failure is how one handler error is answered and counted.
type failure struct {
	status int
	reason string
	body   ErrorResponse
}

func classify(c echo.Context, err error) failure {
	var (
		verr *models.ValidationError
		herr *echo.HTTPError
	)

	switch {
	case errors.As(err, &verr):
		return failure{http.StatusBadRequest, "validation", ErrorResponse{Error: "validation failed", Fields: verr.Fields}}
	case errors.Is(err, models.ErrStorageUnavailable):
		return failure{http.StatusServiceUnavailable, "storage_unavailable", ErrorResponse{Error: "storage unavailable"}}
	case errors.Is(err, models.ErrStorageWrite):
		return failure{http.StatusInternalServerError, "storage_write", ErrorResponse{Error: "storage write failed"}}
	case errors.As(err, &herr):
		message := fmt.Sprint(herr.Message)
		if herr.Code == http.StatusNotFound && isNotFoundHandler(c.Handler()) {
			message = "no route matched"
		}
		return failure{herr.Code, "http", ErrorResponse{Error: message}}
	case errors.Is(err, context.Canceled) && errors.Is(c.Request().Context().Err(), context.Canceled):
		return failure{StatusClientClosedRequest, "canceled", ErrorResponse{Error: "request canceled"}}
	case errors.Is(err, context.DeadlineExceeded):
		return failure{http.StatusServiceUnavailable, "timeout", ErrorResponse{Error: "request timed out"}}
	default:
		return failure{http.StatusInternalServerError, "internal", ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}}
	}
}
