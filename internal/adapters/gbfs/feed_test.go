package gbfs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStationInformation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": {
				"stations": [
					{"station_id": "213688169", "name": "Benjamin Godard - Victor Hugo", "lat": 48.865983, "lon": 2.275725, "capacity": 35}
				]
			}
		}`))
	}))
	defer srv.Close()

	feed := NewFeed(srv.URL, srv.URL)

	info, err := feed.StationInformation(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(info) != 1 {
		t.Fatalf("expected 1 station, got %d", len(info))
	}
	if info[0].StationID != "213688169" || info[0].Capacity != 35 {
		t.Fatalf("station = %+v", info[0])
	}
}

func TestStationStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": {
				"stations": [
					{
						"station_id": "213688169",
						"num_bikes_available": 8,
						"num_docks_available": 27,
						"num_bikes_available_types": [{"mechanical": 5}, {"ebike": 3}]
					}
				]
			}
		}`))
	}))
	defer srv.Close()

	feed := NewFeed(srv.URL, srv.URL)

	status, err := feed.StationStatus(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(status) != 1 {
		t.Fatalf("expected 1 station, got %d", len(status))
	}

	s := status[0]
	if s.NumBikesAvailable != 8 || s.NumDocksAvailable != 27 {
		t.Fatalf("status = %+v", s)
	}
	if len(s.BikesAvailableType) != 2 || s.BikesAvailableType[0]["mechanical"] != 5 {
		t.Fatalf("breakdown = %+v", s.BikesAvailableType)
	}
}

func TestFeedUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	feed := NewFeed(srv.URL, srv.URL)

	if _, err := feed.StationInformation(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
