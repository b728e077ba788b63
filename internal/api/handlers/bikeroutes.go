package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/LaurentChen88/outil-sncf/internal/api/dto"
	"github.com/LaurentChen88/outil-sncf/internal/domain"
	"github.com/LaurentChen88/outil-sncf/internal/ports"
	"github.com/LaurentChen88/outil-sncf/internal/services"
)

type BikeRouteHandler struct {
	Geocoder ports.Geocoder
	Router   ports.BikeRouter
	// Defaults fill in the rider profile when the request leaves it out.
	Defaults ports.BikeDetails
}

func (h *BikeRouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.BikeRouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.From == nil && strings.TrimSpace(req.FromAddress) == "" {
		writeError(w, r, http.StatusBadRequest, "from or from_address is required")
		return
	}
	if req.To == nil && strings.TrimSpace(req.ToAddress) == "" {
		writeError(w, r, http.StatusBadRequest, "to or to_address is required")
		return
	}

	svcReq := services.BikeTripRequest{
		FromAddress:  req.FromAddress,
		ToAddress:    req.ToAddress,
		Bike:         h.bikeDetails(req.Bike),
		WithGeometry: req.WithGeometry,
	}
	if req.From != nil {
		svcReq.From = &domain.Coordinate{Lon: req.From.Lon, Lat: req.From.Lat}
		svcReq.FromTitle = req.From.Title
	}
	if req.To != nil {
		svcReq.To = &domain.Coordinate{Lon: req.To.Lon, Lat: req.To.Lat}
		svcReq.ToTitle = req.To.Title
	}

	result, err := services.PlanBikeRoutes(r.Context(), svcReq, h.Geocoder, h.Router)
	if err != nil {
		if errors.Is(err, ports.ErrNoMatch) {
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("plan bike routes failed")
		writeError(w, r, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, dto.BikeRoutePlanResponse{
		From:        result.From.String(),
		To:          result.To.String(),
		Itineraries: presentItineraries(result.Itineraries),
	})
}

func (h *BikeRouteHandler) bikeDetails(req *dto.BikeDetailsRequest) ports.BikeDetails {
	details := h.Defaults

	if req == nil {
		return details
	}
	if req.Profile != "" {
		details.Profile = req.Profile
	}
	if req.BikeType != "" {
		details.BikeType = req.BikeType
	}
	if req.AverageSpeed > 0 {
		details.AverageSpeed = req.AverageSpeed
	}
	if req.EBike {
		details.EBike = true
	}

	return details
}
