package ports

import (
	"context"
	"errors"

	"github.com/LaurentChen88/outil-sncf/internal/domain"
)

// ErrNoMatch is returned when the geocoding service finds no result for an
// address. Callers surface it as a warning and ask the user to revise the
// input; it is not a transport failure.
var ErrNoMatch = errors.New("no geocoding match")

// Port: a boundary for resolving free-text addresses to coordinates.
type Geocoder interface {
	// Resolve an address to its best-match coordinate. Returns ErrNoMatch
	// when the service has no result for the address.
	Geocode(ctx context.Context, address string) (domain.Coordinate, error)
}
