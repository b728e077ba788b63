package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/LaurentChen88/outil-sncf/internal/adapters/gbfs"
	"github.com/LaurentChen88/outil-sncf/internal/adapters/geocode"
	"github.com/LaurentChen88/outil-sncf/internal/adapters/prim"
	"github.com/LaurentChen88/outil-sncf/internal/api"
	"github.com/LaurentChen88/outil-sncf/internal/config"
	"github.com/LaurentChen88/outil-sncf/internal/platform/logging"
	"github.com/LaurentChen88/outil-sncf/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (Nominatim, PRIM, GBFS) behind ports and
// starts the HTTP server.
func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "optional TOML config file")
	flag.Parse()

	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLogger := logging.Setup(logging.Config{Console: true})
		bootLogger.Fatal().Err(err).Msg("configuration")
	}

	logger := logging.Setup(logging.Config{
		Level:    cfg.Logging.Level,
		Console:  true,
		FilePath: cfg.Logging.FilePath,
	})

	geocoder, err := geocode.NewNominatimGeocoder(
		cfg.Geocoder.BaseURL,
		cfg.Geocoder.UserAgent,
		cfg.Geocoder.CountryCodes,
		cfg.Geocoder.MinInterval,
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("geocoder")
	}

	primClient, err := prim.NewClient(cfg.Prim.BaseURL, cfg.Prim.APIKey)
	if err != nil {
		logger.Fatal().Err(err).Msg("prim client")
	}

	stationFeed := gbfs.NewFeed(cfg.Stations.InformationURL, cfg.Stations.StatusURL)

	router := api.NewRouter(logger, geocoder, primClient, primClient, stationFeed, ports.BikeDetails{
		Profile:      cfg.Bike.Profile,
		BikeType:     cfg.Bike.BikeType,
		AverageSpeed: cfg.Bike.AverageSpeed,
		EBike:        cfg.Bike.EBike,
	})

	// Timeouts are tuned for sequential upstream calls (two geocodes plus
	// one planner request on the slowest path).
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info().Str("addr", srv.Addr).Msg("server listening")
	logger.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}
