package http

import (
	"github.com/MKhiriev/go-manifest-sync/internal/logger"
	"github.com/MKhiriev/go-manifest-sync/internal/service"
)

// Handler serves the local control API on top of the sync driver and the
// build info service.
type Handler struct {
	syncer  service.ClientSyncService
	appInfo service.AppInfoService

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{logger: logger}
	if services != nil {
		h.syncer = services.SyncService
		h.appInfo = services.AppInfoService
	}

	logger.Info().Msg("control API handler created")
	return h
}
