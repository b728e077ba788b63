package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/LaurentChen88/outil-sncf/internal/api/dto"
	"github.com/LaurentChen88/outil-sncf/internal/ports"
	"github.com/LaurentChen88/outil-sncf/internal/services"
)

type StationHandler struct {
	Feed ports.StationFeed
}

// List returns the merged bike-share station dataset. An empty feed means
// there is nothing trustworthy to render, so the client gets a 503 warning
// rather than a partial table.
func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	records, err := services.StationBoard(r.Context(), h.Feed)
	if err != nil {
		if errors.Is(err, ports.ErrEmptyFeed) {
			writeError(w, r, http.StatusServiceUnavailable, err.Error())
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("station board failed")
		writeError(w, r, http.StatusBadGateway, err.Error())
		return
	}

	res := dto.ListStationsResponse{
		Stations: make([]dto.StationResponse, 0, len(records)),
	}
	for _, rec := range records {
		res.Stations = append(res.Stations, dto.StationResponse{
			StationID:  rec.StationID,
			Name:       rec.Name,
			Lon:        rec.Coord.Lon,
			Lat:        rec.Coord.Lat,
			Capacity:   rec.Capacity,
			Bikes:      rec.Bikes,
			Mechanical: rec.Mechanical,
			Electric:   rec.Electric,
			Docks:      rec.Docks,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
