package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-travel-booking/internal/adapter"
	"github.com/MKhiriev/go-travel-booking/internal/config"
	"github.com/MKhiriev/go-travel-booking/internal/handler"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/server"
	"github.com/MKhiriev/go-travel-booking/internal/service"
	"github.com/MKhiriev/go-travel-booking/internal/store"
	"github.com/MKhiriev/go-travel-booking/internal/utils"
	"github.com/MKhiriev/go-travel-booking/internal/workers"
	"github.com/MKhiriev/go-travel-booking/models"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("travel-booking-server")

	// a missing .env is fine; the environment may already be populated
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("error loading .env file")
	}

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx, stop := server.NotifyContext(context.Background())
	defer stop()

	signingKey, err := utils.NewSigningKey(cfg.App.TokenSignKey, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error deriving token signing key")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	provider, err := adapter.NewHTTPTravelProvider(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating travel provider")
	}

	var publisher adapter.EventPublisher
	if len(cfg.Workers.KafkaBrokers) > 0 {
		publisher = adapter.NewKafkaEventPublisher(cfg.Workers, log)
	}
	ws := workers.NewWorkers(cfg.Workers, publisher, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, provider, ws.EventQueue(), signingKey, buildInfo, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	// the workers outlive the signal context: requests still finishing
	// during graceful shutdown may enqueue booking events
	workersCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	ws.Run(workersCtx)

	srv.RunServer(ctx)

	// RunServer also returns on listener failure; stop everything either way
	stop()
	stopWorkers()
	ws.Wait()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = models.NotAvailable
	}

	if buildDate == "" {
		buildDate = models.NotAvailable
	}

	if buildCommit == "" {
		buildCommit = models.NotAvailable
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
