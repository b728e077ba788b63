package dto

type BikePoint struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Title string  `json:"title"`
}

type BikeDetailsRequest struct {
	Profile      string `json:"profile"`
	BikeType     string `json:"bike_type"`
	AverageSpeed int    `json:"average_speed"`
	EBike        bool   `json:"e_bike"`
}

// BikeRouteRequest accepts either explicit endpoint coordinates or
// free-text addresses to geocode; coordinates win when both are given.
type BikeRouteRequest struct {
	FromAddress  string              `json:"from_address"`
	ToAddress    string              `json:"to_address"`
	From         *BikePoint          `json:"from"`
	To           *BikePoint          `json:"to"`
	Bike         *BikeDetailsRequest `json:"bike"`
	WithGeometry bool                `json:"with_geometry"`
}

type BikeRoutePlanResponse struct {
	From        string              `json:"from"`
	To          string              `json:"to"`
	Itineraries []ItineraryResponse `json:"itineraries"`
}
