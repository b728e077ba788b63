package dto

type JourneyRequest struct {
	FromAddress string `json:"from_address"`
	ToAddress   string `json:"to_address"`
}

type PlaceResponse struct {
	Name string   `json:"name"`
	Lon  *float64 `json:"lon,omitempty"`
	Lat  *float64 `json:"lat,omitempty"`
}

type SectionResponse struct {
	Kind            string         `json:"kind"`
	RawType         string         `json:"raw_type"`
	Label           string         `json:"label"`
	DurationSeconds int            `json:"duration_seconds"`
	Duration        string         `json:"duration"`
	From            *PlaceResponse `json:"from,omitempty"`
	To              *PlaceResponse `json:"to,omitempty"`
	HasGeometry     bool           `json:"has_geometry"`
	// Geometry is a sequence of [lon, lat] pairs.
	Geometry [][]float64 `json:"geometry,omitempty"`
	// Bike-only detail fields.
	Direction     string `json:"direction,omitempty"`
	VerticalGainM int    `json:"vertical_gain_m,omitempty"`
	VerticalLossM int    `json:"vertical_loss_m,omitempty"`
}

type ItineraryResponse struct {
	Title            string            `json:"title"`
	Summary          string            `json:"summary"`
	Departure        string            `json:"departure"`
	Arrival          string            `json:"arrival"`
	DurationSeconds  int               `json:"duration_seconds"`
	Duration         string            `json:"duration"`
	CO2              string            `json:"co2,omitempty"`
	Fare             string            `json:"fare,omitempty"`
	Distance         string            `json:"distance,omitempty"`
	RecommendedRoads string            `json:"recommended_roads,omitempty"`
	DiscouragedRoads string            `json:"discouraged_roads,omitempty"`
	Sections         []SectionResponse `json:"sections"`
}

type JourneyPlanResponse struct {
	From        string              `json:"from"`
	To          string              `json:"to"`
	Itineraries []ItineraryResponse `json:"itineraries"`
}
