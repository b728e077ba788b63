package ports

import (
	"context"

	"github.com/LaurentChen88/outil-sncf/internal/domain"
)

// JourneyResponse mirrors the journey planner's wire format. Fields the
// planner may omit are pointers; normalization documents their defaults.
type JourneyResponse struct {
	Journeys []Journey `json:"journeys"`
}

type Journey struct {
	DepartureDateTime string       `json:"departure_date_time"`
	ArrivalDateTime   string       `json:"arrival_date_time"`
	DurationSeconds   int          `json:"duration"`
	CO2Emission       *CO2Emission `json:"co2_emission"`
	Fare              *Fare        `json:"fare"`
	Sections          []Section    `json:"sections"`
}

type CO2Emission struct {
	Value *float64 `json:"value"`
	Unit  string   `json:"unit"`
}

type Fare struct {
	Total *FareTotal `json:"total"`
}

// FareTotal carries the fare in minor currency units (cents).
type FareTotal struct {
	Value *float64 `json:"value"`
}

type Section struct {
	Type            string        `json:"type"`
	Mode            string        `json:"mode"`
	DurationSeconds int           `json:"duration"`
	DisplayInfo     *DisplayInfo  `json:"display_informations"`
	From            *SectionPlace `json:"from"`
	To              *SectionPlace `json:"to"`
}

type DisplayInfo struct {
	Label string `json:"label"`
}

type SectionPlace struct {
	Name      string     `json:"name"`
	StopPoint *StopPoint `json:"stop_point"`
}

type StopPoint struct {
	Name  string     `json:"name"`
	Coord *WireCoord `json:"coord"`
}

// WireCoord is a coordinate pair as the planner emits it: numeric values
// carried as strings.
type WireCoord struct {
	Lon string `json:"lon"`
	Lat string `json:"lat"`
}

// Port: a boundary for fetching candidate journeys between two coordinates.
type JourneyPlanner interface {
	// Fetch candidate journeys from the planner in its native order.
	Journeys(ctx context.Context, from, to domain.Coordinate) (JourneyResponse, error)
}
