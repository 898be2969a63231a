package usecase

import (
	"context"
	"fmt"
	"slices"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/nguyentranbao-ct/dream-api/internal/config"
	"github.com/nguyentranbao-ct/dream-api/internal/models"
	"github.com/nguyentranbao-ct/dream-api/internal/repo/mongodb"
)

const (
	maxListedCollections = 10
	maxErrorLength       = 50
	diagnoseTimeout      = 3 * time.Second
)

type diagnosticsUsecase struct {
	store *mongodb.Store
	conf  *config.Config
}

func NewDiagnosticsUsecase(store *mongodb.Store, conf *config.Config) DiagnosticsUsecase {
	return &diagnosticsUsecase{
		store: store,
		conf:  conf,
	}
}

// Diagnose never fails: every problem found on the way ends up as a status
// string in the report.
func (uc *diagnosticsUsecase) Diagnose(ctx context.Context) (d *models.Diagnostics) {
	d = &models.Diagnostics{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      setOrNot(uc.conf.Database.URL != ""),
		DatabaseName:     setOrNot(uc.conf.Database.Name != ""),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
		AudioStorage:     "➖ Disabled",
	}
	if uc.conf.Audio.Bucket != "" {
		d.AudioStorage = "✅ Enabled"
	}

	defer func() {
		if r := recover(); r != nil {
			log.Errorw(ctx, "diagnostics panicked", "panic", r)
			d.Database = "❌ Error: " + truncate(fmt.Sprint(r))
		}
	}()

	db := uc.store.DB()
	if db == nil {
		if uc.conf.Database.Configured() {
			d.Database = "⚠️  Configured but not initialized"
		}
		return d
	}

	d.Database = "✅ Available"
	d.DatabaseInUse = db.Name()
	d.ConnectionStatus = "Connected"

	ctx, cancel := context.WithTimeout(ctx, diagnoseTimeout)
	defer cancel()

	if err := db.Ping(ctx); err != nil {
		d.ConnectionStatus = "Unreachable"
	}

	names, err := db.CollectionNames(ctx)
	if err != nil {
		d.Database = "⚠️  Connected but Error: " + truncate(err.Error())
		return d
	}
	slices.Sort(names)
	if len(names) > maxListedCollections {
		names = names[:maxListedCollections]
	}
	d.Collections = names
	d.Database = "✅ Connected & Working"

	return d
}

func setOrNot(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxErrorLength {
		return s
	}
	return string(runes[:maxErrorLength])
}
