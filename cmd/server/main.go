package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-influo/internal/adapter"
	"github.com/MKhiriev/go-influo/internal/config"
	httpHandler "github.com/MKhiriev/go-influo/internal/handler/http"
	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/MKhiriev/go-influo/internal/oauth"
	"github.com/MKhiriev/go-influo/internal/server"
	"github.com/MKhiriev/go-influo/internal/service"
	"github.com/MKhiriev/go-influo/internal/store"
	"github.com/MKhiriev/go-influo/internal/validators"
	"github.com/MKhiriev/go-influo/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-influo-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	mailer, err := adapter.NewHTTPMailer(cfg.Mailer, cfg.OTP.TTL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}

	services := service.NewServices(storages, mailer, *cfg, log)
	google := oauth.NewGoogleProvider(cfg.OAuth, log)
	handler := httpHandler.NewHandler(services, validators.NewCredentialsValidator(), google, log)
	background := workers.NewWorkers(storages, cfg.Workers, log)

	srv, err := server.NewServer(handler, background, cfg.Server, log)
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
