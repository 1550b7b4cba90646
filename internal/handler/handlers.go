package handler

import (
	"github.com/MKhiriev/go-manifest-sync/internal/config"
	"github.com/MKhiriev/go-manifest-sync/internal/handler/http"
	"github.com/MKhiriev/go-manifest-sync/internal/logger"
	"github.com/MKhiriev/go-manifest-sync/internal/service"
)

// Handlers groups the transports exposing the control API. Only HTTP is
// served today.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the control API handlers. It fails when cfg leaves the
// API disabled, so callers only build a server when there is one to run.
func NewHandlers(services *service.Services, cfg config.Server, log *logger.Logger) (*Handlers, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	log.Info().Str("address", cfg.HTTPAddress).Msg("creating control API handlers")

	apiLog := &logger.Logger{Logger: log.With().Str("component", "control_api").Logger()}
	return &Handlers{HTTP: http.NewHandler(services, apiLog)}, nil
}
