package ports

import (
	"context"
	"errors"
)

// ErrEmptyFeed is returned when a station feed is reachable but carries no
// stations. The merge is skipped and callers surface a warning.
var ErrEmptyFeed = errors.New("station feed is empty")

// StationInfo is one entry of the static information feed.
type StationInfo struct {
	StationID string  `json:"station_id"`
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Capacity  int     `json:"capacity"`
}

// StationStatus is one entry of the live status feed. The per-type
// breakdown is a list of single-key maps keyed by bike type.
type StationStatus struct {
	StationID          string           `json:"station_id"`
	NumBikesAvailable  int              `json:"num_bikes_available"`
	NumDocksAvailable  int              `json:"num_docks_available"`
	BikesAvailableType []map[string]int `json:"num_bikes_available_types"`
}

// Port: a boundary for fetching the two bike-share station feeds.
type StationFeed interface {
	// Fetch the static station information feed.
	StationInformation(ctx context.Context) ([]StationInfo, error)
	// Fetch the live station status feed.
	StationStatus(ctx context.Context) ([]StationStatus, error)
}
