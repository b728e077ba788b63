package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LaurentChen88/outil-sncf/internal/ports"
)

func TestGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		if ua := r.Header.Get("User-Agent"); ua != "outil-sncf-test/1.0" {
			t.Fatalf("User-Agent = %q", ua)
		}

		q := r.URL.Query()
		if q.Get("q") != "10 rue de Rivoli, Paris" {
			t.Fatalf("q = %q", q.Get("q"))
		}
		if q.Get("format") != "json" || q.Get("limit") != "1" || q.Get("countrycodes") != "fr" {
			t.Fatalf("unexpected query: %v", q)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lon":"2.3589","lat":"48.8555","display_name":"10, Rue de Rivoli, Paris"}]`))
	}))
	defer srv.Close()

	g, err := NewNominatimGeocoder(srv.URL, "outil-sncf-test/1.0", "fr", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	coord, err := g.Geocode(context.Background(), "10 rue de Rivoli, Paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coord.Lon != 2.3589 || coord.Lat != 48.8555 {
		t.Fatalf("coord = %+v", coord)
	}
}

func TestGeocodeNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g, _ := NewNominatimGeocoder(srv.URL, "outil-sncf-test/1.0", "fr", 0)

	_, err := g.Geocode(context.Background(), "nowhere at all")
	if !errors.Is(err, ports.ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}

func TestGeocodeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	g, _ := NewNominatimGeocoder(srv.URL, "outil-sncf-test/1.0", "fr", 0)

	_, err := g.Geocode(context.Background(), "10 rue de Rivoli, Paris")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ports.ErrNoMatch) {
		t.Fatal("server errors must not look like a missing match")
	}
}

func TestGeocodePacing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lon":"2.0","lat":"48.0"}]`))
	}))
	defer srv.Close()

	const interval = 50 * time.Millisecond
	g, _ := NewNominatimGeocoder(srv.URL, "outil-sncf-test/1.0", "fr", interval)

	start := time.Now()
	if _, err := g.Geocode(context.Background(), "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.Geocode(context.Background(), "second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if elapsed := time.Since(start); elapsed < interval {
		t.Fatalf("second call was not paced: elapsed %v < %v", elapsed, interval)
	}
}

func TestGeocodePacingCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lon":"2.0","lat":"48.0"}]`))
	}))
	defer srv.Close()

	g, _ := NewNominatimGeocoder(srv.URL, "outil-sncf-test/1.0", "fr", time.Minute)

	if _, err := g.Geocode(context.Background(), "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := g.Geocode(ctx, "second")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context deadline, got %v", err)
	}
}
