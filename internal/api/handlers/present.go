package handlers

import (
	"github.com/LaurentChen88/outil-sncf/internal/api/dto"
	"github.com/LaurentChen88/outil-sncf/internal/domain"
	"github.com/LaurentChen88/outil-sncf/internal/services"
)

func presentItineraries(its []domain.Itinerary) []dto.ItineraryResponse {
	out := make([]dto.ItineraryResponse, 0, len(its))
	for _, it := range its {
		sections := make([]dto.SectionResponse, 0, len(it.Sections))
		for _, s := range it.Sections {
			sections = append(sections, presentSection(s))
		}

		out = append(out, dto.ItineraryResponse{
			Title:            it.Title,
			Summary:          it.Summary,
			Departure:        it.Departure,
			Arrival:          it.Arrival,
			DurationSeconds:  it.DurationSeconds,
			Duration:         it.Duration,
			CO2:              it.CO2,
			Fare:             it.Fare,
			Distance:         it.Distance,
			RecommendedRoads: it.RecommendedRoads,
			DiscouragedRoads: it.DiscouragedRoads,
			Sections:         sections,
		})
	}
	return out
}

func presentSection(s domain.Section) dto.SectionResponse {
	res := dto.SectionResponse{
		Kind:            string(s.Kind),
		RawType:         s.RawType,
		Label:           s.Label,
		DurationSeconds: s.DurationSeconds,
		Duration:        services.FormatDuration(s.DurationSeconds),
		From:            presentPlace(s.From),
		To:              presentPlace(s.To),
		HasGeometry:     s.HasGeometry,
		Direction:       s.Direction,
		VerticalGainM:   s.VerticalGainM,
		VerticalLossM:   s.VerticalLossM,
	}

	if s.HasGeometry {
		res.Geometry = make([][]float64, 0, len(s.Geometry))
		for _, c := range s.Geometry {
			res.Geometry = append(res.Geometry, []float64{c.Lon, c.Lat})
		}
	}

	return res
}

func presentPlace(p *domain.Place) *dto.PlaceResponse {
	if p == nil {
		return nil
	}

	res := &dto.PlaceResponse{Name: p.Name}
	if p.Coord != nil {
		lon, lat := p.Coord.Lon, p.Coord.Lat
		res.Lon = &lon
		res.Lat = &lat
	}
	return res
}
