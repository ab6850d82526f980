package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/freightpay/investigator/internal/config"
	"github.com/freightpay/investigator/internal/handler"
	"github.com/freightpay/investigator/internal/logger"
	"github.com/freightpay/investigator/internal/otm"
	"github.com/freightpay/investigator/internal/server"
	"github.com/freightpay/investigator/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	_ = godotenv.Load()

	log := logger.NewLogger("investigator-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	otmClient, err := otm.NewHTTPClient(cfg.OTM, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating OTM client")
	}

	services := service.NewServices(otmClient, cfg.OTM, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, cfg.App, log)
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
