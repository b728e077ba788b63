package prim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/LaurentChen88/outil-sncf/internal/domain"
	"github.com/LaurentChen88/outil-sncf/internal/platform/obs"
	"github.com/LaurentChen88/outil-sncf/internal/ports"
)

// Journeys fetches candidate transit journeys between two coordinates.
// Coordinates go on the wire in the planner's "<lon>;<lat>" form.
func (c *Client) Journeys(ctx context.Context, from, to domain.Coordinate) (_ ports.JourneyResponse, err error) {
	defer obs.Time(ctx, "prim.Journeys")(&err)

	endpoint := c.baseURL + "/v2/navitia/journeys"

	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.JourneyResponse{}, fmt.Errorf("get journeys request: %w", err)
	}

	q := req.URL.Query()
	q.Set("from", from.String())
	q.Set("to", to.String())
	req.URL.RawQuery = q.Encode()

	resp, err := c.do(req)
	if err != nil {
		return ports.JourneyResponse{}, fmt.Errorf("journeys %s -> %s: %w", from, to, err)
	}
	defer resp.Body.Close()

	var decoded ports.JourneyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.JourneyResponse{}, fmt.Errorf("decode journeys response: %w", err)
	}

	return decoded, nil
}
