package middleware

import (
	"bufio"
	"bytes"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

const defaultMaxBodyLog = 4 << 10

type (
	// LogRequestConfig store middleware configuration
	LogRequestConfig struct {
		Logger       Logger
		Enabled      func(c echo.Context) bool
		RequestID    func(c echo.Context) string
		RequestBody  func(c echo.Context) bool
		ResponseBody func(c echo.Context) bool
		QueryParams  func(c echo.Context) bool
		KeyAndValues func(c echo.Context) []any
		// MaxBodySize caps how many bytes of each dumped body are logged.
		MaxBodySize int
	}
	bodyDumpWriter struct {
		io.Writer
		http.ResponseWriter
	}
)

// LogRequest writes one log line per request. Only JSON bodies are dumped;
// uploads and form posts are logged without their payload.
func LogRequest(config LogRequestConfig) echo.MiddlewareFunc {
	enabled := func(echo.Context) bool { return true }
	if config.Logger == nil {
		panic("Logger is required to use LogRequest")
	}
	if config.Enabled == nil {
		config.Enabled = enabled
	}
	if config.RequestBody == nil {
		config.RequestBody = enabled
	}
	if config.ResponseBody == nil {
		config.ResponseBody = enabled
	}
	if config.QueryParams == nil {
		config.QueryParams = enabled
	}
	if config.RequestID == nil {
		config.RequestID = GetRequestID
	}
	if config.MaxBodySize <= 0 {
		config.MaxBodySize = defaultMaxBodyLog
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !config.Enabled(c) {
				return next(c)
			}

			start := time.Now()
			req := c.Request()
			res := c.Response()

			logReqBody := config.RequestBody(c) && isJSON(req.Header.Get(echo.HeaderContentType))
			logResBody := config.ResponseBody(c)

			var reqBody []byte
			if logReqBody && req.Body != nil {
				reqBody, _ = io.ReadAll(req.Body)
				req.Body = io.NopCloser(bytes.NewReader(reqBody))
			}
			var resBuf bytes.Buffer
			if logResBody {
				mw := io.MultiWriter(res.Writer, &resBuf)
				res.Writer = &bodyDumpWriter{Writer: mw, ResponseWriter: res.Writer}
			}

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			args := make([]any, 0, 24)
			args = append(args,
				"status", res.Status,
				"method", req.Method,
				"uri", req.RequestURI,
				"latency_ms", time.Since(start).Milliseconds(),
				"real_ip", c.RealIP(),
				"user_agent", req.UserAgent(),
				"request_id", config.RequestID(c),
			)
			if config.QueryParams(c) && len(c.QueryParams()) > 0 {
				args = append(args, "query", c.QueryParams())
			}
			if config.KeyAndValues != nil {
				args = append(args, config.KeyAndValues(c)...)
			}
			if len(reqBody) > 0 {
				args = append(args, "request_body", dumpBody(reqBody, config.MaxBodySize))
			}
			if logResBody && isJSON(res.Header().Get(echo.HeaderContentType)) {
				args = append(args, "response_body", dumpBody(resBuf.Bytes(), config.MaxBodySize))
			}

			switch {
			case res.Status >= http.StatusInternalServerError:
				if err != nil {
					args = append(args, "error", err.Error())
				}
				config.Logger.Errorw("", args...)
			case res.Status >= http.StatusBadRequest:
				config.Logger.Warnw("", args...)
			default:
				config.Logger.Infow("", args...)
			}

			return err
		}
	}
}

func isJSON(contentType string) bool {
	return strings.HasPrefix(contentType, echo.MIMEApplicationJSON)
}

// dumpBody keeps valid JSON structured in the log and truncates anything
// larger than limit to a plain string.
func dumpBody(body []byte, limit int) any {
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	if !json.Valid(body) {
		return string(body)
	}
	return json.RawMessage(body)
}

func (w *bodyDumpWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpWriter) Flush() {
	w.ResponseWriter.(http.Flusher).Flush()
}

func (w *bodyDumpWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.(http.Hijacker).Hijack()
}
