package middleware

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"reflect"
	"strings"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"

	"github.com/nguyentranbao-ct/dream-api/internal/models"
	"github.com/nguyentranbao-ct/dream-api/internal/schema"
)

var fileHeaderType = reflect.TypeOf((*multipart.FileHeader)(nil))

// Bind collects the request payload into an untyped map and decodes it into
// dst with schema.Decode. The body is read as JSON or as form values
// (urlencoded or multipart); query parameters fill keys the body left out.
// Uploaded parts are attached to *multipart.FileHeader fields before
// validation, so a missing file is reported with the other fields.
// Every problem comes back as a *models.ValidationError.
func Bind(c echo.Context, dst any) error {
	raw, err := payload(c)
	if err != nil {
		return err
	}

	for key, values := range c.QueryParams() {
		if _, ok := raw[key]; ok || len(values) == 0 {
			continue
		}
		raw[key] = values[0]
	}

	bindFiles(c, dst)
	return schema.Decode(raw, dst)
}

func payload(c echo.Context) (map[string]any, error) {
	raw := make(map[string]any)
	req := c.Request()
	if req.Body == nil || req.Body == http.NoBody || req.Method == http.MethodGet {
		return raw, nil
	}

	ctype := req.Header.Get(echo.HeaderContentType)
	switch {
	case strings.HasPrefix(ctype, echo.MIMEApplicationJSON):
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, models.NewValidationError("body", "could not read request body")
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
		if len(bytes.TrimSpace(body)) == 0 {
			return raw, nil
		}
		if err := decodeObject(body, &raw); err != nil {
			return nil, models.NewValidationError("body", "must be a JSON object")
		}
		if raw == nil {
			raw = make(map[string]any)
		}
	case strings.HasPrefix(ctype, echo.MIMEApplicationForm), strings.HasPrefix(ctype, echo.MIMEMultipartForm):
		form, err := c.FormParams()
		if err != nil {
			return nil, models.NewValidationError("body", "invalid form data")
		}
		for key, values := range form {
			// browsers post untouched inputs as "", which means absent
			if len(values) > 0 && values[0] != "" {
				raw[key] = values[0]
			}
		}
	}

	return raw, nil
}

// decodeObject keeps numbers as json.Number so large integers survive the
// round trip through schema.Decode.
func decodeObject(body []byte, raw *map[string]any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(raw); err != nil {
		return err
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON object")
	}
	return nil
}

// bindFiles sets every *multipart.FileHeader field tagged `form:"name"` to
// the uploaded part of that name. Fields without an upload stay nil.
func bindFiles(c echo.Context, dst any) {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return
	}
	ptr := reflect.ValueOf(dst)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() || ptr.Elem().Kind() != reflect.Struct {
		return
	}

	indirect := ptr.Elem()
	for i := 0; i < indirect.NumField(); i++ {
		structField := indirect.Type().Field(i)
		if structField.Type != fileHeaderType || !indirect.Field(i).CanSet() {
			continue
		}
		name := strings.SplitN(structField.Tag.Get("form"), ",", 2)[0]
		if name == "" {
			continue
		}
		if fh, err := c.FormFile(name); err == nil {
			indirect.Field(i).Set(reflect.ValueOf(fh))
		}
	}
}
