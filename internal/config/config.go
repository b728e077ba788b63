package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config carries everything both binaries need: external endpoints,
// credentials, pacing, and log sinks. Values come from an optional TOML
// file overridden by environment variables; the PRIM key must come from
// the environment or the file, never code.
type Config struct {
	Port string `toml:"port"`

	Geocoder GeocoderConfig `toml:"geocoder"`
	Prim     PrimConfig     `toml:"prim"`
	Stations StationsConfig `toml:"stations"`
	Bike     BikeConfig     `toml:"bike"`
	Logging  LoggingConfig  `toml:"logging"`
}

type GeocoderConfig struct {
	BaseURL      string `toml:"base_url"`
	UserAgent    string `toml:"user_agent"`
	CountryCodes string `toml:"country_codes"`
	// MinInterval paces successive calls to the geocoding endpoint.
	MinInterval    time.Duration `toml:"-"`
	MinIntervalStr string        `toml:"min_interval"`
}

type PrimConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
}

type StationsConfig struct {
	InformationURL string `toml:"information_url"`
	StatusURL      string `toml:"status_url"`
}

// BikeConfig holds the default rider profile sent to the route service
// when a request does not override it.
type BikeConfig struct {
	Profile      string `toml:"profile"`
	BikeType     string `toml:"bike_type"`
	AverageSpeed int    `toml:"average_speed"`
	EBike        bool   `toml:"e_bike"`
}

type LoggingConfig struct {
	Level    string `toml:"level"`
	FilePath string `toml:"file_path"`
}

// Load reads the optional TOML file at path (empty means skip), applies
// environment overrides, then validates.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config: decode %q: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if cfg.Geocoder.MinIntervalStr != "" {
		d, err := time.ParseDuration(cfg.Geocoder.MinIntervalStr)
		if err != nil {
			return Config{}, fmt.Errorf("load config: parse geocoder min_interval: %w", err)
		}
		cfg.Geocoder.MinInterval = d
	}

	if strings.TrimSpace(cfg.Prim.APIKey) == "" {
		return Config{}, errors.New("load config: PRIM_API_KEY is required")
	}

	return cfg, nil
}

func defaults() Config {
	return Config{
		Port: "8080",
		Geocoder: GeocoderConfig{
			BaseURL:      "https://nominatim.openstreetmap.org",
			UserAgent:    "outil-sncf/1.0",
			CountryCodes: "fr",
			MinInterval:  time.Second,
		},
		Prim: PrimConfig{
			BaseURL: "https://prim.iledefrance-mobilites.fr/marketplace",
		},
		Stations: StationsConfig{
			InformationURL: "https://velib-metropole-opendata.smovengo.cloud/opendata/Velib_Metropole/station_information.json",
			StatusURL:      "https://velib-metropole-opendata.smovengo.cloud/opendata/Velib_Metropole/station_status.json",
		},
		Bike: BikeConfig{
			Profile:      "MEDIAN",
			BikeType:     "TRADITIONAL",
			AverageSpeed: 16,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func applyEnv(cfg *Config) {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Geocoder.BaseURL = getEnv("GEOCODER_BASE_URL", cfg.Geocoder.BaseURL)
	cfg.Geocoder.UserAgent = getEnv("GEOCODER_USER_AGENT", cfg.Geocoder.UserAgent)
	cfg.Geocoder.CountryCodes = getEnv("GEOCODER_COUNTRY_CODES", cfg.Geocoder.CountryCodes)
	cfg.Geocoder.MinIntervalStr = getEnv("GEOCODER_MIN_INTERVAL", cfg.Geocoder.MinIntervalStr)
	cfg.Prim.BaseURL = getEnv("PRIM_BASE_URL", cfg.Prim.BaseURL)
	cfg.Prim.APIKey = getEnv("PRIM_API_KEY", cfg.Prim.APIKey)
	cfg.Stations.InformationURL = getEnv("STATION_INFORMATION_URL", cfg.Stations.InformationURL)
	cfg.Stations.StatusURL = getEnv("STATION_STATUS_URL", cfg.Stations.StatusURL)
	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.FilePath = getEnv("LOG_FILE", cfg.Logging.FilePath)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
