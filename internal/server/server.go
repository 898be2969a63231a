package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/carousell/ct-go/pkg/logger"
	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"github.com/nguyentranbao-ct/dream-api/internal/config"
	pkgmdw "github.com/nguyentranbao-ct/dream-api/internal/server/middleware"
)

func StartServer(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	conf *config.Config,
	handler Controller,
) {
	e := NewEcho(conf, handler)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := conf.Server.Addr()
			go func() {
				log.Infow(ctx, "starting HTTP server", "addr", addr)
				if err := e.Start(addr); !errors.Is(err, http.ErrServerClosed) {
					log.Errorw(ctx, "HTTP server stopped", "error", err)
					_ = sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

// NewEcho builds the HTTP server with its middleware chain and routes.
func NewEcho(conf *config.Config, handler Controller) *echo.Echo {
	httpLogger := logger.MustNamed("http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = pkgmdw.ErrorHandler(httpLogger)

	logConfig := pkgmdw.LogRequestConfig{
		Logger: httpLogger,
		Enabled: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return path != "/health" && path != "/metrics"
		},
	}

	e.Use(pkgmdw.Metrics())
	e.Use(pkgmdw.RequestID())
	e.Use(pkgmdw.LogRequest(logConfig))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Errorw(c.Request().Context(), "PANIC RECOVER", "error", err, "stack", string(stack))
			return err
		},
	}))
	e.Use(pkgmdw.CORS(pkgmdw.AnyOrigin))
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: conf.Server.RequestTimeout,
	}))

	e.GET("/", handler.Root)
	e.GET("/health", handler.Health)
	e.GET("/test", handler.Diagnostics)
	e.GET("/robots.txt", handler.Robots)
	e.GET("/sitemap.xml", handler.Sitemap)

	api := e.Group("/api")
	api.POST("/lead", pkgmdw.WrapHandler(handler.SubmitLead))
	api.POST("/dream/analyze", pkgmdw.WrapHandler(handler.AnalyzeDream))
	api.POST("/dream/audio", pkgmdw.WrapHandler(handler.AnalyzeDreamAudio))
	api.GET("/dream/history", pkgmdw.WrapHandler(handler.DreamHistory))
	api.POST("/quiz/submit", pkgmdw.WrapHandler(handler.SubmitQuiz))
	api.POST("/report/send", pkgmdw.WrapHandler(handler.SendReport))

	return e
}
