package api

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/LaurentChen88/outil-sncf/internal/api/handlers"
	"github.com/LaurentChen88/outil-sncf/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(
	logger zerolog.Logger,
	geocoder ports.Geocoder,
	planner ports.JourneyPlanner,
	bikeRouter ports.BikeRouter,
	stationFeed ports.StationFeed,
	bikeDefaults ports.BikeDetails,
) http.Handler {
	mux := http.NewServeMux()

	journeyHandler := &handlers.JourneyHandler{Geocoder: geocoder, Planner: planner}
	bikeHandler := &handlers.BikeRouteHandler{
		Geocoder: geocoder,
		Router:   bikeRouter,
		Defaults: bikeDefaults,
	}
	stationHandler := &handlers.StationHandler{Feed: stationFeed}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/journeys", journeyHandler.Plan)
	mux.HandleFunc("/bikeroutes", bikeHandler.Plan)
	mux.HandleFunc("/stations", stationHandler.List)

	return loggingMiddleware(logger, mux)
}
