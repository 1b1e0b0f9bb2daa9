package main

import (
	"fmt"

	"github.com/mkarneev/homestock/internal/adapter"
	"github.com/mkarneev/homestock/internal/client"
	"github.com/mkarneev/homestock/internal/config"
	"github.com/mkarneev/homestock/internal/logger"
	"github.com/mkarneev/homestock/internal/service"
	"github.com/mkarneev/homestock/internal/store"
	"github.com/mkarneev/homestock/internal/tui"
	"github.com/mkarneev/homestock/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("homestock-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	blobs := adapter.NewHTTPBlobAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.ServerURL,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, blobs)

	ui := tui.New(services, models.BuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	})

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
