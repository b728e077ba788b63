package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/LaurentChen88/outil-sncf/internal/domain"
	"github.com/LaurentChen88/outil-sncf/internal/platform/obs"
	"github.com/LaurentChen88/outil-sncf/internal/ports"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// NominatimGeocoder implements the Geocoder port against a Nominatim-style
// search endpoint. The service requires an identifying User-Agent on every
// request and asks clients to pace their calls, so a minimum interval is
// enforced between successive lookups. There is no caching and no retry:
// each call stands alone.
type NominatimGeocoder struct {
	session      *http.Client
	baseURL      string
	userAgent    string
	countryCodes string
	minInterval  time.Duration

	mu       sync.Mutex
	nextCall time.Time
}

func NewNominatimGeocoder(baseURL, userAgent, countryCodes string, minInterval time.Duration) (*NominatimGeocoder, error) {
	if strings.TrimSpace(userAgent) == "" {
		return nil, errors.New("nominatim user agent is empty")
	}

	return &NominatimGeocoder{
		session:      &http.Client{Timeout: 10 * time.Second},
		baseURL:      strings.TrimRight(baseURL, "/"),
		userAgent:    userAgent,
		countryCodes: countryCodes,
		minInterval:  minInterval,
	}, nil
}

type nominatimResult struct {
	Lon string `json:"lon"`
	Lat string `json:"lat"`
}

// Geocode resolves an address to its best match. Zero results yield
// ports.ErrNoMatch; transport failures are returned as-is for the caller
// to surface.
func (g *NominatimGeocoder) Geocode(ctx context.Context, address string) (_ domain.Coordinate, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	if err := g.pace(ctx); err != nil {
		return domain.Coordinate{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search", nil)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("countrycodes", g.countryCodes)
	req.URL.RawQuery = q.Encode()

	resp, err := g.session.Do(req)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return domain.Coordinate{}, fmt.Errorf("geocode %q: %w", address, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		})
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinate{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(results) == 0 {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: %w", address, ports.ErrNoMatch)
	}

	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: parse longitude: %w", address, err)
	}
	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: parse latitude: %w", address, err)
	}

	return domain.Coordinate{Lon: lon, Lat: lat}, nil
}

// pace blocks until the minimum interval since the previous call has
// elapsed, reserving the next slot before sleeping so interleaved callers
// space out correctly.
func (g *NominatimGeocoder) pace(ctx context.Context) error {
	if g.minInterval <= 0 {
		return nil
	}

	g.mu.Lock()
	now := time.Now()
	wait := g.nextCall.Sub(now)
	if wait < 0 {
		wait = 0
	}
	g.nextCall = now.Add(wait + g.minInterval)
	g.mu.Unlock()

	if wait == 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
