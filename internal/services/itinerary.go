package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/LaurentChen88/outil-sncf/internal/domain"
	"github.com/LaurentChen88/outil-sncf/internal/platform/obs"
	"github.com/LaurentChen88/outil-sncf/internal/ports"
)

// JourneyRequest is one user action on the transit surface: two free-text
// addresses to route between.
type JourneyRequest struct {
	FromAddress string
	ToAddress   string
}

// JourneyResult is self-contained: everything the presentation layer needs
// for one request, with no state shared across requests.
type JourneyResult struct {
	From        domain.Coordinate
	To          domain.Coordinate
	Itineraries []domain.Itinerary
}

// PlanJourneys runs the transit pipeline: geocode both addresses, fetch
// journeys, normalize. Geocoding failures abort before the planner is
// called; an empty planner response is a valid result with no itineraries.
func PlanJourneys(
	ctx context.Context,
	req JourneyRequest,
	geocoder ports.Geocoder,
	planner ports.JourneyPlanner,
) (_ *JourneyResult, err error) {
	defer obs.Time(ctx, "services.PlanJourneys")(&err)

	from, to, err := geocodeEndpoints(ctx, req.FromAddress, req.ToAddress, geocoder)
	if err != nil {
		return nil, fmt.Errorf("plan journeys: %w", err)
	}

	resp, err := planner.Journeys(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("plan journeys: fetch journeys: %w", err)
	}

	return &JourneyResult{
		From:        from,
		To:          to,
		Itineraries: NormalizeTransitJourneys(resp),
	}, nil
}

// BikeTripRequest is one user action on the bike surface. Endpoints are
// either explicit coordinates or free-text addresses to geocode.
type BikeTripRequest struct {
	FromAddress  string
	ToAddress    string
	From         *domain.Coordinate
	To           *domain.Coordinate
	FromTitle    string
	ToTitle      string
	Bike         ports.BikeDetails
	WithGeometry bool
}

type BikeTripResult struct {
	From        domain.Coordinate
	To          domain.Coordinate
	Itineraries []domain.Itinerary
}

// PlanBikeRoutes runs the bike pipeline against the route service.
func PlanBikeRoutes(
	ctx context.Context,
	req BikeTripRequest,
	geocoder ports.Geocoder,
	router ports.BikeRouter,
) (_ *BikeTripResult, err error) {
	defer obs.Time(ctx, "services.PlanBikeRoutes")(&err)

	from, err := resolveEndpoint(ctx, req.From, req.FromAddress, "departure", geocoder)
	if err != nil {
		return nil, fmt.Errorf("plan bike routes: %w", err)
	}

	to, err := resolveEndpoint(ctx, req.To, req.ToAddress, "arrival", geocoder)
	if err != nil {
		return nil, fmt.Errorf("plan bike routes: %w", err)
	}

	fromTitle := req.FromTitle
	if fromTitle == "" {
		fromTitle = req.FromAddress
	}
	toTitle := req.ToTitle
	if toTitle == "" {
		toTitle = req.ToAddress
	}

	routes, err := router.ComputeRoutes(ctx, ports.BikeRouteRequest{
		Waypoints: []ports.Waypoint{
			{Latitude: from.Lat, Longitude: from.Lon, Title: fromTitle},
			{Latitude: to.Lat, Longitude: to.Lon, Title: toTitle},
		},
		BikeDetails:  req.Bike,
		WithGeometry: req.WithGeometry,
	})
	if err != nil {
		return nil, fmt.Errorf("plan bike routes: compute routes: %w", err)
	}

	return &BikeTripResult{
		From:        from,
		To:          to,
		Itineraries: NormalizeBikeRoutes(routes),
	}, nil
}

// StationBoard fetches both station feeds and merges them. An empty feed
// skips the merge: the caller warns the user instead of rendering.
func StationBoard(ctx context.Context, feed ports.StationFeed) (_ []domain.StationRecord, err error) {
	defer obs.Time(ctx, "services.StationBoard")(&err)

	info, err := feed.StationInformation(ctx)
	if err != nil {
		return nil, fmt.Errorf("station board: fetch information feed: %w", err)
	}
	if len(info) == 0 {
		return nil, fmt.Errorf("station board: information feed: %w", ports.ErrEmptyFeed)
	}

	status, err := feed.StationStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("station board: fetch status feed: %w", err)
	}
	if len(status) == 0 {
		return nil, fmt.Errorf("station board: status feed: %w", ports.ErrEmptyFeed)
	}

	return MergeStations(info, status), nil
}

// geocodeEndpoints resolves both addresses sequentially. The geocoder's own
// pacing throttle spaces the two calls.
func geocodeEndpoints(
	ctx context.Context,
	fromAddress, toAddress string,
	geocoder ports.Geocoder,
) (domain.Coordinate, domain.Coordinate, error) {
	from, err := geocodeAddress(ctx, fromAddress, "departure", geocoder)
	if err != nil {
		return domain.Coordinate{}, domain.Coordinate{}, err
	}

	to, err := geocodeAddress(ctx, toAddress, "arrival", geocoder)
	if err != nil {
		return domain.Coordinate{}, domain.Coordinate{}, err
	}

	return from, to, nil
}

func geocodeAddress(
	ctx context.Context,
	address, role string,
	geocoder ports.Geocoder,
) (domain.Coordinate, error) {
	if strings.TrimSpace(address) == "" {
		return domain.Coordinate{}, fmt.Errorf("%s address must be non-empty", role)
	}

	coord, err := geocoder.Geocode(ctx, address)
	if err != nil {
		// ErrNoMatch stays in the chain so callers can tell "revise the
		// address" apart from transport failures.
		return domain.Coordinate{}, fmt.Errorf("geocode %s address %q: %w", role, address, err)
	}

	return coord, nil
}

func resolveEndpoint(
	ctx context.Context,
	coord *domain.Coordinate,
	address, role string,
	geocoder ports.Geocoder,
) (domain.Coordinate, error) {
	if coord != nil {
		return *coord, nil
	}
	return geocodeAddress(ctx, address, role, geocoder)
}
