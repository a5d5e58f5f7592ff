package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/rental-blocklist/internal/config"
	"github.com/MKhiriev/rental-blocklist/internal/handler"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/metrics"
	"github.com/MKhiriev/rental-blocklist/internal/server"
	"github.com/MKhiriev/rental-blocklist/internal/service"
	"github.com/MKhiriev/rental-blocklist/internal/store"
	"github.com/MKhiriev/rental-blocklist/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("blocklist-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.New("blocklist-server", os.Stdout, logger.ParseLevel(cfg.App.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()
	ctx = log.WithContext(ctx)

	if err = run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	storages, err := store.NewStorages(ctx, cfg.Storage, m, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, m, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	if err = services.AuthService.EnsureAdmin(ctx, cfg.App.AdminUsername, cfg.App.AdminPassword); err != nil {
		return fmt.Errorf("error creating admin account: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, registry, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.RunServer(ctx)
	})
	g.Go(func() error {
		return workers.NewWorkers(services, cfg.Workers, log).Run(ctx)
	})

	return g.Wait()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
