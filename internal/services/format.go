package services

import (
	"fmt"
	"math"
	"time"
)

// Unknown is the display sentinel for values the planner did not provide.
const Unknown = "unknown"

const transitTimeLayout = "20060102T150405"

// FormatDuration renders a duration in seconds as "{h} h {mm} min" past the
// hour mark, "{m} min" below it. Minutes are always floor-divided.
func FormatDuration(seconds int) string {
	if seconds >= 3600 {
		return fmt.Sprintf("%d h %02d min", seconds/3600, (seconds%3600)/60)
	}
	return fmt.Sprintf("%d min", seconds/60)
}

// FormatFare renders a fare given in minor currency units. A missing fare
// counts as zero.
func FormatFare(minor *float64) string {
	v := 0.0
	if minor != nil {
		v = *minor
	}
	return fmt.Sprintf("%.2f €", v/100)
}

// FormatCO2 renders a CO2 estimate in grams, rounded to the nearest gram.
func FormatCO2(grams *float64) string {
	if grams == nil {
		return Unknown
	}
	return fmt.Sprintf("%d g", int(math.Round(*grams)))
}

// FormatDistanceKm renders a distance in meters as kilometers with one
// decimal place.
func FormatDistanceKm(meters int) string {
	return fmt.Sprintf("%.1f km", float64(meters)/1000)
}

// formatTransitClock turns the planner's compact timestamp into "HH:MM".
func formatTransitClock(raw string) (string, bool) {
	t, err := time.Parse(transitTimeLayout, raw)
	if err != nil {
		return "", false
	}
	return t.Format("15:04"), true
}

// formatISOClock turns an ISO-8601 timestamp into "HH:MM". The route
// service emits both zoned and naive forms.
func formatISOClock(raw string) (string, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("15:04"), true
		}
	}
	return "", false
}
