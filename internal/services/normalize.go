package services

import (
	"fmt"
	"strconv"

	"github.com/LaurentChen88/outil-sncf/internal/domain"
	"github.com/LaurentChen88/outil-sncf/internal/ports"
)

// NormalizeTransitJourneys reshapes a raw planner response into
// display-ready itineraries. It is a pure function: planner order is
// preserved, missing optional fields resolve to documented defaults, and a
// response without journeys yields an empty slice rather than an error.
func NormalizeTransitJourneys(resp ports.JourneyResponse) []domain.Itinerary {
	out := make([]domain.Itinerary, 0, len(resp.Journeys))

	for i, j := range resp.Journeys {
		it := domain.Itinerary{
			Title:           fmt.Sprintf("Itinerary %d", i+1),
			Departure:       Unknown,
			Arrival:         Unknown,
			DurationSeconds: j.DurationSeconds,
			Duration:        FormatDuration(j.DurationSeconds),
			Fare:            FormatFare(fareMinor(j.Fare)),
			CO2:             FormatCO2(co2Value(j.CO2Emission)),
		}

		// Both clock fields stay unknown unless both endpoints parse.
		if dep, ok := formatTransitClock(j.DepartureDateTime); ok {
			if arr, ok := formatTransitClock(j.ArrivalDateTime); ok {
				it.Departure = dep
				it.Arrival = arr
			}
		}

		it.Sections = make([]domain.Section, 0, len(j.Sections))
		for _, s := range j.Sections {
			it.Sections = append(it.Sections, normalizeTransitSection(s))
		}

		it.Summary = fmt.Sprintf(
			"%s | Departure: %s | Arrival: %s | Duration: %s | CO2: %s | Fare: %s",
			it.Title, it.Departure, it.Arrival, it.Duration, it.CO2, it.Fare,
		)

		out = append(out, it)
	}

	return out
}

func normalizeTransitSection(s ports.Section) domain.Section {
	sec := domain.Section{
		RawType:         s.Type,
		DurationSeconds: s.DurationSeconds,
		Label:           "no information",
		From:            sectionPlace(s.From),
		To:              sectionPlace(s.To),
	}

	switch s.Type {
	case "street_network", "walking", "crow_fly":
		sec.Kind = domain.SectionWalk
	case "public_transport", "on_demand_transport":
		sec.Kind = domain.SectionTransit
	case "transfer", "waiting":
		sec.Kind = domain.SectionXfer
	default:
		// Unrecognized leg types are kept, labeled by their raw type.
		sec.Kind = domain.SectionOther
	}

	switch {
	case s.DisplayInfo != nil && s.DisplayInfo.Label != "":
		sec.Label = s.DisplayInfo.Label
	case s.Mode != "":
		sec.Label = s.Mode
	case sec.Kind == domain.SectionOther:
		sec.Label = s.Type
	}

	return sec
}

// sectionPlace extracts a named endpoint, preferring the stop point when
// present. Coordinates arrive as strings and are dropped if unparseable.
func sectionPlace(p *ports.SectionPlace) *domain.Place {
	if p == nil {
		return nil
	}

	place := &domain.Place{Name: p.Name}
	if p.StopPoint != nil {
		if p.StopPoint.Name != "" {
			place.Name = p.StopPoint.Name
		}
		if c := p.StopPoint.Coord; c != nil {
			lon, errLon := strconv.ParseFloat(c.Lon, 64)
			lat, errLat := strconv.ParseFloat(c.Lat, 64)
			if errLon == nil && errLat == nil {
				place.Coord = &domain.Coordinate{Lon: lon, Lat: lat}
			}
		}
	}

	return place
}

func fareMinor(f *ports.Fare) *float64 {
	if f == nil || f.Total == nil {
		return nil
	}
	return f.Total.Value
}

func co2Value(c *ports.CO2Emission) *float64 {
	if c == nil {
		return nil
	}
	return c.Value
}

// NormalizeBikeRoutes reshapes the bike route service's response into
// display-ready itineraries. Encoded section geometries are decoded here;
// sections without geometry are flagged, never omitted.
func NormalizeBikeRoutes(routes []ports.BikeRoute) []domain.Itinerary {
	out := make([]domain.Itinerary, 0, len(routes))

	for i, r := range routes {
		title := r.Title
		if title == "" {
			title = fmt.Sprintf("Route %d", i+1)
		}

		it := domain.Itinerary{
			Title:           title,
			Departure:       Unknown,
			Arrival:         Unknown,
			DurationSeconds: r.DurationSeconds,
			Duration:        FormatDuration(r.DurationSeconds),
		}

		if dep, ok := formatISOClock(r.EstimatedDeparture); ok {
			if arr, ok := formatISOClock(r.EstimatedArrival); ok {
				it.Departure = dep
				it.Arrival = arr
			}
		}

		var totalMeters int
		if r.Distances != nil {
			totalMeters = r.Distances.Total
			it.RecommendedRoads = FormatDistanceKm(r.Distances.RecommendedRoads)
			it.DiscouragedRoads = FormatDistanceKm(r.Distances.DiscouragedRoads)
		}
		it.Distance = FormatDistanceKm(totalMeters)

		it.Sections = make([]domain.Section, 0, len(r.Sections))
		for _, s := range r.Sections {
			it.Sections = append(it.Sections, normalizeBikeSection(s))
		}

		it.Summary = fmt.Sprintf(
			"%s | Departure: %s | Arrival: %s | Duration: %s | Distance: %s",
			it.Title, it.Departure, it.Arrival, it.Duration, it.Distance,
		)

		out = append(out, it)
	}

	return out
}

func normalizeBikeSection(s ports.BikeSection) domain.Section {
	sec := domain.Section{
		Kind:            domain.SectionBike,
		RawType:         "bike",
		Label:           "bike",
		DurationSeconds: s.DurationSeconds,
	}

	if s.Details != nil {
		sec.Direction = s.Details.Direction
		sec.VerticalGainM = s.Details.VerticalGain
		sec.VerticalLossM = s.Details.VerticalLoss
	}

	if len(s.Waypoints) > 0 {
		first := s.Waypoints[0]
		last := s.Waypoints[len(s.Waypoints)-1]
		sec.From = &domain.Place{Name: first.Title, Coord: &domain.Coordinate{Lon: first.Longitude, Lat: first.Latitude}}
		sec.To = &domain.Place{Name: last.Title, Coord: &domain.Coordinate{Lon: last.Longitude, Lat: last.Latitude}}
	}

	if s.Geometry != "" {
		coords, err := domain.DecodePolyline(s.Geometry)
		if err == nil {
			sec.Geometry = coords
			sec.HasGeometry = true
		}
	}

	return sec
}
