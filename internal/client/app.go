package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-manifest-sync/internal/config"
	"github.com/MKhiriev/go-manifest-sync/internal/logger"
	"github.com/MKhiriev/go-manifest-sync/internal/service"
	"github.com/MKhiriev/go-manifest-sync/internal/workers"
)

type App struct {
	services *service.Services
	workers  *workers.Workers
	closer   io.Closer
	runOnce  bool

	logger *logger.Logger
}

// NewApp assembles the client. background lists extra workers run next to
// the sync job, such as the control API server. closer, if not nil, is
// closed when Run returns.
func NewApp(services *service.Services, cfg config.App, closer io.Closer, logger *logger.Logger, background ...workers.Worker) (*App, error) {
	if services == nil || services.SyncJob == nil {
		return nil, fmt.Errorf("init client app: %w", errNoSyncJob)
	}

	all := append([]workers.Worker{services.SyncJob}, background...)

	return &App{
		services: services,
		workers:  workers.NewWorkers(all...),
		closer:   closer,
		runOnce:  cfg.RunOnce,
		logger:   logger,
	}, nil
}

func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if a.closer == nil {
			return
		}
		if closeErr := a.closer.Close(); closeErr != nil {
			a.logger.Warn().Err(closeErr).Msg("error closing storages")
		}
	}()

	if a.runOnce {
		return a.RunOnce(ctx)
	}

	a.logger.Info().Msg("starting background sync")
	a.workers.Run(ctx)
	a.logger.Info().Msg("client stopped")

	return nil
}

// RunOnce syncs every configured source once. It fails if any source failed.
func (a *App) RunOnce(ctx context.Context) error {
	if err := a.services.SyncJob.SyncAll(ctx); err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	return nil
}
