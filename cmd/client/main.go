package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/go-manifest-sync/internal/adapter"
	"github.com/MKhiriev/go-manifest-sync/internal/client"
	"github.com/MKhiriev/go-manifest-sync/internal/config"
	"github.com/MKhiriev/go-manifest-sync/internal/handler"
	"github.com/MKhiriev/go-manifest-sync/internal/logger"
	"github.com/MKhiriev/go-manifest-sync/internal/server"
	"github.com/MKhiriev/go-manifest-sync/internal/service"
	"github.com/MKhiriev/go-manifest-sync/internal/store"
	"github.com/MKhiriev/go-manifest-sync/internal/workers"
	"github.com/MKhiriev/go-manifest-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const logDirName = ".logs"

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	if err := run(build); err != nil {
		fmt.Fprintf(os.Stderr, "manifest-sync: %v\n", err)
		os.Exit(1)
	}
}

func run(build models.AppBuildInfo) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log, logCloser := logger.NewFileLogger("manifest-sync", filepath.Join(cfg.Storage.Files.RootDir, logDirName))
	defer logCloser.Close()

	log.Info().Str("build", build.String()).Strs("sources", cfg.App.Sources).Msg("starting")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, serverAdapter, log)
	if err != nil {
		return fmt.Errorf("create storages: %w", err)
	}

	services, err := service.NewServices(storages, serverAdapter, *cfg, build, log)
	if err != nil {
		storages.Close()
		return fmt.Errorf("create services: %w", err)
	}

	var background []workers.Worker
	if cfg.Server.HTTPAddress != "" && !cfg.App.RunOnce {
		handlers, err := handler.NewHandlers(services, cfg.Server, log)
		if err != nil {
			storages.Close()
			return fmt.Errorf("create handlers: %w", err)
		}
		srv, err := server.NewServer(handlers, cfg.Server, log)
		if err != nil {
			storages.Close()
			return fmt.Errorf("create server: %w", err)
		}
		background = append(background, srv)
	}

	app, err := client.NewApp(services, cfg.App, storages, log, background...)
	if err != nil {
		storages.Close()
		return err
	}

	return app.Run(ctx)
}

func printBuildInfo(build models.AppBuildInfo) {
	view := build.View()

	fmt.Printf("Build version: %s\n", view.Version)
	fmt.Printf("Build date: %s\n", view.Date)
	fmt.Printf("Build commit: %s\n", view.Commit)
}
