package prim

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/LaurentChen88/outil-sncf/internal/platform/obs"
	"github.com/LaurentChen88/outil-sncf/internal/ports"
)

type computedRoutesRequest struct {
	Waypoints      []ports.Waypoint  `json:"waypoints"`
	BikeDetails    ports.BikeDetails `json:"bikeDetails"`
	TransportModes []string          `json:"transportModes"`
}

// ComputeRoutes fetches candidate bike routes through the route service.
// Section geometry is only returned when the request asks for it.
func (c *Client) ComputeRoutes(ctx context.Context, req ports.BikeRouteRequest) (_ []ports.BikeRoute, err error) {
	defer obs.Time(ctx, "prim.ComputeRoutes")(&err)

	endpoint := c.baseURL + "/computedroutes"

	payload, err := json.Marshal(computedRoutesRequest{
		Waypoints:      req.Waypoints,
		BikeDetails:    req.BikeDetails,
		TransportModes: []string{"BIKE"},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal computed routes request: %w", err)
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("computed routes request: %w", err)
	}

	if req.WithGeometry {
		q := httpReq.URL.Query()
		q.Set("geometry", "true")
		httpReq.URL.RawQuery = q.Encode()
	}

	resp, err := c.do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("computed routes: %w", err)
	}
	defer resp.Body.Close()

	var routes []ports.BikeRoute
	if err := json.NewDecoder(resp.Body).Decode(&routes); err != nil {
		return nil, fmt.Errorf("decode computed routes response: %w", err)
	}

	return routes, nil
}
