package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/LaurentChen88/outil-sncf/internal/api/dto"
	"github.com/LaurentChen88/outil-sncf/internal/ports"
)

type stubBikeRouter struct {
	routes  []ports.BikeRoute
	lastReq ports.BikeRouteRequest
}

func (r *stubBikeRouter) ComputeRoutes(ctx context.Context, req ports.BikeRouteRequest) ([]ports.BikeRoute, error) {
	r.lastReq = req
	return r.routes, nil
}

func TestBikeRouteHandlerPlan(t *testing.T) {
	router := &stubBikeRouter{
		routes: []ports.BikeRoute{{DurationSeconds: 1620, Distances: &ports.BikeDistances{Total: 5450}}},
	}
	h := &BikeRouteHandler{
		Geocoder: newJourneyHandler(nil).Geocoder,
		Router:   router,
		Defaults: ports.BikeDetails{Profile: "MEDIAN", BikeType: "TRADITIONAL", AverageSpeed: 16},
	}

	body := `{"from":{"lat":48.872096,"lon":2.33261,"title":"Opéra"},"to":{"lat":48.84059,"lon":2.32134,"title":"Montparnasse"},"bike":{"profile":"FAST"}}`
	req := httptest.NewRequest(http.MethodPost, "/bikeroutes", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Plan(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	// Request override wins; other defaults stay.
	if router.lastReq.BikeDetails.Profile != "FAST" {
		t.Fatalf("profile = %q", router.lastReq.BikeDetails.Profile)
	}
	if router.lastReq.BikeDetails.AverageSpeed != 16 {
		t.Fatalf("average speed = %d", router.lastReq.BikeDetails.AverageSpeed)
	}

	var res dto.BikeRoutePlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Itineraries) != 1 || res.Itineraries[0].Distance != "5.5 km" {
		t.Fatalf("itineraries = %+v", res.Itineraries)
	}
}

func TestBikeRouteHandlerPlanMissingEndpoint(t *testing.T) {
	h := &BikeRouteHandler{
		Geocoder: newJourneyHandler(nil).Geocoder,
		Router:   &stubBikeRouter{},
	}

	req := httptest.NewRequest(http.MethodPost, "/bikeroutes",
		strings.NewReader(`{"from_address":"A"}`))
	rec := httptest.NewRecorder()

	h.Plan(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
