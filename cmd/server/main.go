package main

import (
	"fmt"

	"github.com/MKhiriev/go-obs-kit/internal/config"
	"github.com/MKhiriev/go-obs-kit/internal/handler/http"
	"github.com/MKhiriev/go-obs-kit/internal/logger"
	"github.com/MKhiriev/go-obs-kit/internal/metrics"
	"github.com/MKhiriev/go-obs-kit/internal/server"
	"github.com/MKhiriev/go-obs-kit/internal/workers"
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
		logger.NewLogger("go-obs-server").Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	collector := metrics.NewCollector(cfg.Metrics.Capacity)
	log := logger.NewLoggerWithSink("go-obs-server", collector)

	log.Debug().Any("config", cfg).Msg("received configs")

	handlers := http.NewHandler(cfg.App, log)

	ws := workers.NewWorkers(
		workers.NewExportWorker(collector, cfg.Metrics, log),
	)
	ws.Run()

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log, ws.Stop)
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
