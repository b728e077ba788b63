package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/LaurentChen88/outil-sncf/internal/api/dto"
	"github.com/LaurentChen88/outil-sncf/internal/ports"
	"github.com/LaurentChen88/outil-sncf/internal/services"
)

type JourneyHandler struct {
	Geocoder ports.Geocoder
	Planner  ports.JourneyPlanner
}

// Plan runs the transit pipeline for one pair of addresses and returns the
// normalized itineraries. A geocoding miss is the user's problem (422); an
// upstream failure is reported with its cause (502). No itineraries is a
// valid, empty response.
func (h *JourneyHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.JourneyRequest

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

	if strings.TrimSpace(req.FromAddress) == "" || strings.TrimSpace(req.ToAddress) == "" {
		writeError(w, r, http.StatusBadRequest, "from_address and to_address are required")
		return
	}

	result, err := services.PlanJourneys(r.Context(), services.JourneyRequest{
		FromAddress: req.FromAddress,
		ToAddress:   req.ToAddress,
	}, h.Geocoder, h.Planner)
	if err != nil {
		if errors.Is(err, ports.ErrNoMatch) {
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("plan journeys failed")
		writeError(w, r, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, dto.JourneyPlanResponse{
		From:        result.From.String(),
		To:          result.To.String(),
		Itineraries: presentItineraries(result.Itineraries),
	})
}
