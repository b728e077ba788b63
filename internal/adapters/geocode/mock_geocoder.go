package geocode

import (
	"context"
	"fmt"

	"github.com/LaurentChen88/outil-sncf/internal/domain"
	"github.com/LaurentChen88/outil-sncf/internal/ports"
)

type MockEntry struct {
	Address string
	Lon     float64
	Lat     float64
}

// MockGeocoder resolves addresses from a fixed table. Addresses not in the
// table behave like a zero-result lookup.
type MockGeocoder struct {
	m map[string]domain.Coordinate
}

func NewMockGeocoder(entries []MockEntry) *MockGeocoder {
	m := make(map[string]domain.Coordinate, len(entries))
	for _, e := range entries {
		m[e.Address] = domain.Coordinate{Lon: e.Lon, Lat: e.Lat}
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinate, error) {
	c, ok := g.m[address]
	if !ok {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: %w", address, ports.ErrNoMatch)
	}

	return c, nil
}
