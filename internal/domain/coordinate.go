package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Immutable geographic coordinates (longitude, latitude), WGS84 degrees.
type Coordinate struct {
	Lon float64
	Lat float64
}

// String emits the wire form "<lon>;<lat>" expected by the journey planner.
// Longitude always comes first.
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lon, 'f', -1, 64) + ";" + strconv.FormatFloat(c.Lat, 'f', -1, 64)
}

// ParseCoordinate parses the wire form "<lon>;<lat>" back into a Coordinate.
// It fails unless the input has exactly two numeric parts.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(s, ";")
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("parse coordinate %q: want 2 parts separated by ';', got %d", s, len(parts))
	}

	lon, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("parse coordinate %q: longitude: %w", s, err)
	}

	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("parse coordinate %q: latitude: %w", s, err)
	}

	return Coordinate{Lon: lon, Lat: lat}, nil
}
