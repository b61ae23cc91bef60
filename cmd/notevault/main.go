package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ameledin/go-note-vault/internal/adapter"
	"github.com/ameledin/go-note-vault/internal/client"
	"github.com/ameledin/go-note-vault/internal/config"
	"github.com/ameledin/go-note-vault/internal/logger"
	"github.com/ameledin/go-note-vault/internal/service"
	"github.com/ameledin/go-note-vault/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewFileLogger("notevault")

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	gateway := adapter.NewHTTPAIGateway(cfg.AI)

	services := service.NewServices(storages, gateway, *cfg, log)

	app := client.NewApp(services, log, os.Stdout)

	ctx := log.WithContext(context.Background())
	if err = app.Run(ctx, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
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
