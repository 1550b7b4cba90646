package service

import (
	"github.com/MKhiriev/go-manifest-sync/internal/adapter"
	"github.com/MKhiriev/go-manifest-sync/internal/config"
	"github.com/MKhiriev/go-manifest-sync/internal/logger"
	"github.com/MKhiriev/go-manifest-sync/internal/store"
	"github.com/MKhiriev/go-manifest-sync/models"
)

type Services struct {
	SyncService    ClientSyncService
	SyncJob        ClientSyncJob
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, fetcher adapter.ManifestFetcher, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	syncSvc := NewClientSyncService(storages, fetcher, cfg.Workers, logger)

	return &Services{
		SyncService:    syncSvc,
		SyncJob:        NewClientSyncJob(syncSvc, cfg.App.Sources, cfg.Workers.SyncInterval, logger),
		AppInfoService: appInfo,
	}, nil
}
