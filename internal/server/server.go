package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/go-manifest-sync/internal/config"
	"github.com/MKhiriev/go-manifest-sync/internal/handler"
	"github.com/MKhiriev/go-manifest-sync/internal/logger"
)

type server struct {
	httpServer *httpServer
	address    string
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHandler
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoAddress
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress),
		address:    cfg.HTTPAddress,
		logger:     logger,
	}, nil
}

func (s *server) Run(ctx context.Context) {
	if err := s.RunServer(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) RunServer(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.address, err)
	}

	return s.serve(ctx, listener)
}

func (s *server) serve(ctx context.Context, listener net.Listener) error {
	served := make(chan error, 1)

	s.logger.Info().Str("address", listener.Addr().String()).Msg("Launching HTTP server")
	go func() {
		served <- s.httpServer.Serve(listener)
	}()

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-served; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
