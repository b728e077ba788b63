package prim

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LaurentChen88/outil-sncf/internal/ports"
)

func TestComputeRoutes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/computedroutes" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Fatalf("method = %q", r.Method)
		}
		if r.URL.Query().Get("geometry") != "true" {
			t.Fatalf("geometry flag missing: %q", r.URL.RawQuery)
		}

		var body computedRoutesRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(body.Waypoints) != 2 || body.Waypoints[0].Title != "Opéra" {
			t.Fatalf("waypoints = %+v", body.Waypoints)
		}
		if body.BikeDetails.Profile != "MEDIAN" {
			t.Fatalf("bike details = %+v", body.BikeDetails)
		}
		if len(body.TransportModes) != 1 || body.TransportModes[0] != "BIKE" {
			t.Fatalf("transport modes = %v", body.TransportModes)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{
				"title": "Recommended route",
				"duration": 1620,
				"estimatedDatetimeOfDeparture": "2025-09-01T10:00:00",
				"estimatedDatetimeOfArrival": "2025-09-01T10:27:00",
				"distances": {"total": 5450, "recommendedRoads": 4200, "discouragedRoads": 250},
				"sections": [{"duration": 1620, "geometry": "_p~iF~ps|U"}]
			}
		]`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	routes, err := c.ComputeRoutes(context.Background(), ports.BikeRouteRequest{
		Waypoints: []ports.Waypoint{
			{Latitude: 48.872096, Longitude: 2.33261, Title: "Opéra"},
			{Latitude: 48.84059, Longitude: 2.32134, Title: "Montparnasse"},
		},
		BikeDetails:  ports.BikeDetails{Profile: "MEDIAN", BikeType: "TRADITIONAL", AverageSpeed: 16},
		WithGeometry: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(routes))
	}
	if routes[0].Distances == nil || routes[0].Distances.Total != 5450 {
		t.Fatalf("distances = %+v", routes[0].Distances)
	}
	if len(routes[0].Sections) != 1 || routes[0].Sections[0].Geometry == "" {
		t.Fatalf("sections = %+v", routes[0].Sections)
	}
}

func TestComputeRoutesNoGeometryFlag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("geometry") != "" {
			t.Fatalf("geometry flag should be absent: %q", r.URL.RawQuery)
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL, "test-key")

	routes, err := c.ComputeRoutes(context.Background(), ports.BikeRouteRequest{
		Waypoints: []ports.Waypoint{{Title: "A"}, {Title: "B"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routes) != 0 {
		t.Fatalf("expected no routes, got %d", len(routes))
	}
}
