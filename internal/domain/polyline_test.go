package domain

import (
	"math"
	"testing"
)

// Reference fixture from the standard polyline algorithm description. At
// 1e-5 precision it decodes to (38.5,-120.2), (40.7,-120.95),
// (43.252,-126.453); this codec additionally divides by 10, exactly once.
func TestDecodePolyline(t *testing.T) {
	coords, err := DecodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Coordinate{
		{Lat: 3.85, Lon: -12.02},
		{Lat: 4.07, Lon: -12.095},
		{Lat: 4.3252, Lon: -12.6453},
	}

	if len(coords) != len(want) {
		t.Fatalf("decoded %d coordinates, want %d", len(coords), len(want))
	}

	for i, w := range want {
		if math.Abs(coords[i].Lat-w.Lat) > 1e-9 || math.Abs(coords[i].Lon-w.Lon) > 1e-9 {
			t.Fatalf("coords[%d] = %+v, want %+v", i, coords[i], w)
		}
	}

	// The scale correction must have been applied: raw 1e-5 values would be
	// ten times larger.
	if math.Abs(coords[0].Lat-38.5) < 1e-9 {
		t.Fatal("scale correction was not applied")
	}
}

func TestDecodePolylineSinglePoint(t *testing.T) {
	coords, err := DecodePolyline("_p~iF~ps|U")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(coords) != 1 {
		t.Fatalf("decoded %d coordinates, want 1", len(coords))
	}
	if math.Abs(coords[0].Lat-3.85) > 1e-9 || math.Abs(coords[0].Lon-(-12.02)) > 1e-9 {
		t.Fatalf("coords[0] = %+v", coords[0])
	}
}

func TestDecodePolylineEmpty(t *testing.T) {
	coords, err := DecodePolyline("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(coords) != 0 {
		t.Fatalf("decoded %d coordinates from empty input", len(coords))
	}
}

func TestDecodePolylineTruncated(t *testing.T) {
	if _, err := DecodePolyline("_p~iF"); err == nil {
		t.Fatal("expected error for truncated input")
	}
}
