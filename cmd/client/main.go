package main

import (
	"fmt"

	"github.com/notetaker/notetaker/internal/client"
	"github.com/notetaker/notetaker/internal/config"
	"github.com/notetaker/notetaker/internal/logger"
	"github.com/notetaker/notetaker/internal/service"
	"github.com/notetaker/notetaker/internal/store"
	"github.com/notetaker/notetaker/internal/tui"
	"github.com/notetaker/notetaker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("notetaker-client")

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	seedAccounts, seedNotes := service.DemoSeed()

	storages, err := store.NewStorages(cfg.Storage, seedAccounts, seedNotes, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewServices(storages, cfg.App, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
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
