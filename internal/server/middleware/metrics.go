package middleware

import (
	"errors"
	"reflect"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const notFoundRoute = "/not-found"

// MetricsConfig responsible to configure middleware
type MetricsConfig struct {
	Skipper     Skipper
	Namespace   string
	Buckets     []float64
	MetricsPath string
}

// DefaultMetricsConfig measures every route except /health.
var DefaultMetricsConfig = MetricsConfig{
	Skipper: func(c echo.Context) bool {
		return c.Request().URL.Path == "/health"
	},
	Namespace: "dream_api",
	Buckets: []float64{
		0.001, // 1ms
		0.005,
		0.01, // 10ms
		0.025,
		0.05,
		0.1, // 100ms
		0.25,
		0.5,
		1.0, // 1s
		2.5,
		5.0,
		10.0, // REQUEST_TIMEOUT default
	},
	MetricsPath: "/metrics",
}

type httpMetrics struct {
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

func newHTTPMetrics(config MetricsConfig) httpMetrics {
	return httpMetrics{
		duration: register(prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time spent serving a route.",
			Buckets:   config.Buckets,
		}, []string{"code", "method", "route"})),
		failures: register(prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "http_failures_total",
			Help:      "Failed requests by route and failure class.",
		}, []string{"route", "reason"})),
	}
}

// register returns the collector already registered under the same name
// when there is one, so every echo instance shares the same series.
func register[C prometheus.Collector](c C) C {
	err := prometheus.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing
		}
	}
	panic(err)
}

func isNotFoundHandler(handler echo.HandlerFunc) bool {
	return reflect.ValueOf(handler).Pointer() == reflect.ValueOf(echo.NotFoundHandler).Pointer()
}

// Metrics returns an echo middleware with default config for instrumentation.
func Metrics() echo.MiddlewareFunc {
	return MetricsWithConfig(DefaultMetricsConfig)
}

// MetricsWithConfig records the latency of every request and counts failed
// requests by the same classes ErrorHandler answers with. It also serves
// the prometheus exposition on MetricsPath.
func MetricsWithConfig(config MetricsConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultSkipper
	}
	metrics := newHTTPMetrics(config)

	var promHandler echo.HandlerFunc
	if config.MetricsPath != "" {
		promHandler = echo.WrapHandler(promhttp.Handler())
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if promHandler != nil && req.URL.Path == config.MetricsPath {
				return promHandler(c)
			}
			if config.Skipper(c) {
				return next(c)
			}

			// unmatched paths share one series so scanners cannot blow up cardinality
			route := c.Path()
			if isNotFoundHandler(c.Handler()) {
				route = notFoundRoute
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				metrics.failures.WithLabelValues(route, classify(c, err).reason).Inc()
				c.Error(err)
			}

			code := strconv.Itoa(c.Response().Status)
			metrics.duration.WithLabelValues(code, req.Method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
