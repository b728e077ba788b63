package ports

import "context"

// Waypoint is one stop of a bike route request, in the route service's
// latitude-first wire order.
type Waypoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Title     string  `json:"title"`
}

// BikeDetails selects the rider profile used for route computation.
type BikeDetails struct {
	Profile      string `json:"profile"`
	BikeType     string `json:"bikeType"`
	AverageSpeed int    `json:"averageSpeed"`
	EBike        bool   `json:"eBike"`
}

type BikeRouteRequest struct {
	Waypoints    []Waypoint
	BikeDetails  BikeDetails
	WithGeometry bool
}

// BikeRoute mirrors one element of the route service's response array.
type BikeRoute struct {
	Title              string         `json:"title"`
	DurationSeconds    int            `json:"duration"`
	EstimatedDeparture string         `json:"estimatedDatetimeOfDeparture"`
	EstimatedArrival   string         `json:"estimatedDatetimeOfArrival"`
	Distances          *BikeDistances `json:"distances"`
	Sections           []BikeSection  `json:"sections"`
}

type BikeDistances struct {
	Total            int `json:"total"`
	RecommendedRoads int `json:"recommendedRoads"`
	DiscouragedRoads int `json:"discouragedRoads"`
}

type BikeSection struct {
	DurationSeconds int                 `json:"duration"`
	Geometry        string              `json:"geometry"`
	Details         *BikeSectionDetails `json:"details"`
	Waypoints       []Waypoint          `json:"waypoints"`
}

type BikeSectionDetails struct {
	Direction    string `json:"direction"`
	VerticalGain int    `json:"verticalGain"`
	VerticalLoss int    `json:"verticalLoss"`
}

// Port: a boundary for computing bike routes between waypoints.
type BikeRouter interface {
	// Compute candidate bike routes in the service's native order.
	ComputeRoutes(ctx context.Context, req BikeRouteRequest) ([]BikeRoute, error)
}
