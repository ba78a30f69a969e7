// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-settings-sync/internal/config"
	myHTTP "github.com/MKhiriev/go-settings-sync/internal/handler/http"
	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/server"
	"github.com/MKhiriev/go-settings-sync/internal/service"
	"github.com/MKhiriev/go-settings-sync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("settings-sync-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectSQLite(context.Background(), cfg.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to resource database")
	}
	defer db.Close()

	repository := store.NewResourceRepository(db, log)
	resources := service.NewResourceService(repository, log)
	handler := myHTTP.NewHandler(resources, cfg.AuthToken, log)

	srv, err := server.NewServer(handler, *cfg, log)
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
