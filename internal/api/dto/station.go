package dto

type StationResponse struct {
	StationID  string  `json:"station_id"`
	Name       string  `json:"name"`
	Lon        float64 `json:"lon"`
	Lat        float64 `json:"lat"`
	Capacity   int     `json:"capacity"`
	Bikes      int     `json:"bikes"`
	Mechanical int     `json:"mechanical"`
	Electric   int     `json:"electric"`
	Docks      int     `json:"docks"`
}

type ListStationsResponse struct {
	Stations []StationResponse `json:"stations"`
}
