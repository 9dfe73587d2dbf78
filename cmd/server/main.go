package main

import (
	"context"
	"fmt"

	"github.com/arnarb/leikir-api/internal/config"
	"github.com/arnarb/leikir-api/internal/handler"
	"github.com/arnarb/leikir-api/internal/logger"
	"github.com/arnarb/leikir-api/internal/server"
	"github.com/arnarb/leikir-api/internal/service"
	"github.com/arnarb/leikir-api/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("leikir-api")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Bool("migrate", cfg.Storage.DB.Migrate).
		Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if cfg.Storage.DB.Migrate {
		if err = db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}
		log.Info().Msg("migrations applied")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
