package gbfs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/LaurentChen88/outil-sncf/internal/platform/obs"
	"github.com/LaurentChen88/outil-sncf/internal/ports"
)

// Feed implements the StationFeed port over a GBFS-style pair of endpoints:
// static station information and live station status, each wrapped in
// {"data": {"stations": [...]}}.
type Feed struct {
	session        *http.Client
	informationURL string
	statusURL      string
}

func NewFeed(informationURL, statusURL string) *Feed {
	return &Feed{
		session:        &http.Client{Timeout: 10 * time.Second},
		informationURL: informationURL,
		statusURL:      statusURL,
	}
}

type informationEnvelope struct {
	Data struct {
		Stations []ports.StationInfo `json:"stations"`
	} `json:"data"`
}

type statusEnvelope struct {
	Data struct {
		Stations []ports.StationStatus `json:"stations"`
	} `json:"data"`
}

func (f *Feed) StationInformation(ctx context.Context) (_ []ports.StationInfo, err error) {
	defer obs.Time(ctx, "gbfs.StationInformation")(&err)

	var envelope informationEnvelope
	if err := f.fetch(ctx, f.informationURL, &envelope); err != nil {
		return nil, fmt.Errorf("station information: %w", err)
	}

	return envelope.Data.Stations, nil
}

func (f *Feed) StationStatus(ctx context.Context) (_ []ports.StationStatus, err error) {
	defer obs.Time(ctx, "gbfs.StationStatus")(&err)

	var envelope statusEnvelope
	if err := f.fetch(ctx, f.statusURL, &envelope); err != nil {
		return nil, fmt.Errorf("station status: %w", err)
	}

	return envelope.Data.Stations, nil
}

func (f *Feed) fetch(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.session.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Code %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode feed response: %w", err)
	}

	return nil
}
