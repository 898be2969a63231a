package app

import (
	"github.com/carousell/ct-go/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/nguyentranbao-ct/dream-api/internal/config"
	"github.com/nguyentranbao-ct/dream-api/internal/repo/mongodb"
	"github.com/nguyentranbao-ct/dream-api/internal/server"
	"github.com/nguyentranbao-ct/dream-api/internal/usecase"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded",
		"addr", conf.Server.Addr(),
		"database_configured", conf.Database.Configured(),
		"audio_bucket", conf.Audio.Bucket,
	)
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newMongoDB,
			newAudioStore,
			mongodb.NewStore,

			server.NewHandler,

			usecase.NewLeadUsecase,
			usecase.NewDreamUsecase,
			usecase.NewQuizUsecase,
			usecase.NewReportUsecase,
			usecase.NewDiagnosticsUsecase,

			mongodb.NewLeadRepository,
			mongodb.NewDreamRepository,
			mongodb.NewQuizAnswerRepository,
			mongodb.NewReportRepository,
		),
		fx.Supply(conf),
		fx.Invoke(EnsureIndexes),
		fx.Invoke(funcs...),
	)
}
