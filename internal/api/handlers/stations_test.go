package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LaurentChen88/outil-sncf/internal/api/dto"
	"github.com/LaurentChen88/outil-sncf/internal/ports"
)

type stubFeed struct {
	info   []ports.StationInfo
	status []ports.StationStatus
}

func (f *stubFeed) StationInformation(ctx context.Context) ([]ports.StationInfo, error) {
	return f.info, nil
}

func (f *stubFeed) StationStatus(ctx context.Context) ([]ports.StationStatus, error) {
	return f.status, nil
}

func TestStationHandlerList(t *testing.T) {
	h := &StationHandler{Feed: &stubFeed{
		info: []ports.StationInfo{
			{StationID: "1", Name: "Bastille", Lon: 2.369, Lat: 48.853, Capacity: 30},
			{StationID: "2", Name: "Opéra"},
		},
		status: []ports.StationStatus{
			{
				StationID:          "1",
				NumBikesAvailable:  6,
				NumDocksAvailable:  24,
				BikesAvailableType: []map[string]int{{"mechanical": 4}, {"ebike": 2}},
			},
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/stations", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var res dto.ListStationsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(res.Stations) != 1 {
		t.Fatalf("expected 1 merged station, got %d", len(res.Stations))
	}
	s := res.Stations[0]
	if s.StationID != "1" || s.Bikes != 6 || s.Mechanical != 4 || s.Electric != 2 || s.Docks != 24 {
		t.Fatalf("station = %+v", s)
	}
}

func TestStationHandlerListEmptyFeed(t *testing.T) {
	h := &StationHandler{Feed: &stubFeed{
		info:   nil,
		status: []ports.StationStatus{{StationID: "1"}},
	}}

	req := httptest.NewRequest(http.MethodGet, "/stations", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
