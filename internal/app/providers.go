package app

import (
	"context"
	"errors"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"go.uber.org/fx"

	"github.com/nguyentranbao-ct/dream-api/internal/config"
	"github.com/nguyentranbao-ct/dream-api/internal/repo/audiostore"
	"github.com/nguyentranbao-ct/dream-api/internal/repo/mongodb"
)

const connectTimeout = 10 * time.Second

// newMongoDB never fails the process: without a reachable database the
// service still starts and storage-backed endpoints answer 503.
func newMongoDB(lc fx.Lifecycle, cfg *config.Config) *mongodb.DB {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := mongodb.Connect(ctx, cfg.AppName, cfg.Database.URL, cfg.Database.Name, cfg.Server.RequestTimeout)
	if errors.Is(err, mongodb.ErrNotConfigured) {
		log.Infow(ctx, "database not configured, running without storage")
		return nil
	}
	if err != nil {
		log.Errorw(ctx, "failed to create mongo client, running without storage", "error", err)
		return nil
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Ping(ctx); err != nil {
				log.Errorw(ctx, "mongo ping failed", "database", db.Name(), "error", err)
				return nil
			}
			log.Infow(ctx, "connected to mongo", "database", db.Name())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return db.Close(ctx)
		},
	})

	return db
}

func newAudioStore(cfg *config.Config) (audiostore.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return audiostore.New(ctx, cfg)
}

// EnsureIndexes creates the lookup indexes once the app starts. Failures are
// logged by the store and never block startup.
func EnsureIndexes(lc fx.Lifecycle, store *mongodb.Store) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			store.EnsureIndexes(ctx)
			return nil
		},
	})
}
