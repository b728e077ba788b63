package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/LaurentChen88/outil-sncf/internal/adapters/gbfs"
	"github.com/LaurentChen88/outil-sncf/internal/adapters/geocode"
	"github.com/LaurentChen88/outil-sncf/internal/adapters/prim"
	"github.com/LaurentChen88/outil-sncf/internal/config"
	"github.com/LaurentChen88/outil-sncf/internal/platform/logging"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:          "routectl",
	Short:        "Plan transit and bike itineraries in Île-de-France",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logs")
}

// deps bundles the adapters every subcommand composes from configuration.
type deps struct {
	cfg      config.Config
	geocoder *geocode.NominatimGeocoder
	prim     *prim.Client
	stations *gbfs.Feed
}

func buildDeps() (*deps, error) {
	_ = godotenv.Load()

	path := configPath
	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	logging.Setup(logging.Config{Level: level, Console: true, FilePath: cfg.Logging.FilePath})

	geocoder, err := geocode.NewNominatimGeocoder(
		cfg.Geocoder.BaseURL,
		cfg.Geocoder.UserAgent,
		cfg.Geocoder.CountryCodes,
		cfg.Geocoder.MinInterval,
	)
	if err != nil {
		return nil, err
	}

	primClient, err := prim.NewClient(cfg.Prim.BaseURL, cfg.Prim.APIKey)
	if err != nil {
		return nil, err
	}

	return &deps{
		cfg:      cfg,
		geocoder: geocoder,
		prim:     primClient,
		stations: gbfs.NewFeed(cfg.Stations.InformationURL, cfg.Stations.StatusURL),
	}, nil
}
