package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-crypter/internal/app"
	"github.com/MKhiriev/go-crypter/internal/cache"
	"github.com/MKhiriev/go-crypter/internal/client"
	"github.com/MKhiriev/go-crypter/internal/config"
	"github.com/MKhiriev/go-crypter/internal/logger"
	"github.com/MKhiriev/go-crypter/internal/pipeline"
	"github.com/MKhiriev/go-crypter/internal/service"
	"github.com/MKhiriev/go-crypter/internal/store"
	"github.com/MKhiriev/go-crypter/internal/workers"
	"github.com/MKhiriev/go-crypter/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, app.Message(app.Classify(err)))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, args, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrInvalidInput, err)
	}

	log := logger.NewCLILogger("crypter", cfg.Log.Level)

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("create storages")
		return err
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Warn().Err(err).Msg("close storages")
		}
	}()

	caches, err := cache.New(cache.OptionsFromConfig(cfg.Cache))
	if err != nil {
		log.Error().Err(err).Msg("create caches")
		return err
	}
	defer caches.Clear()

	runner := pipeline.NewPipeline(pipeline.OptionsFromConfig(cfg.Crypto), log)

	services, err := service.NewServices(storages, runner, caches, *cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("create services")
		return err
	}

	janitor := workers.NewCacheJanitor(caches.Raw, cfg.Workers.JanitorInterval, log)
	buildInfo := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))

	crypter, err := client.NewApp(services, workers.NewWorkers(janitor), client.NewTerminalPassword(os.Stderr), buildInfo, os.Stdout, log)
	if err != nil {
		log.Error().Err(err).Msg("init crypter app")
		return err
	}

	if err = crypter.Run(ctx, args); err != nil {
		log.Debug().Err(err).Msg("command failed")
		return err
	}
	return nil
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
