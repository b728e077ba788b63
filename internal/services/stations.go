package services

import (
	"sort"

	"github.com/LaurentChen88/outil-sncf/internal/domain"
	"github.com/LaurentChen88/outil-sncf/internal/ports"
)

// MergeStations joins the static information feed with the live status feed
// on station ID. The join is inner: a station missing from either feed does
// not appear in the result. Records come back sorted by station ID so the
// output is stable across calls.
func MergeStations(info []ports.StationInfo, status []ports.StationStatus) []domain.StationRecord {
	statusByID := make(map[string]ports.StationStatus, len(status))
	for _, s := range status {
		statusByID[s.StationID] = s
	}

	records := make([]domain.StationRecord, 0, len(info))
	for _, in := range info {
		st, ok := statusByID[in.StationID]
		if !ok {
			continue
		}

		mechanical, electric := bikeTypeCounts(st.BikesAvailableType)

		records = append(records, domain.StationRecord{
			StationID:  in.StationID,
			Name:       in.Name,
			Coord:      domain.Coordinate{Lon: in.Lon, Lat: in.Lat},
			Capacity:   in.Capacity,
			Bikes:      st.NumBikesAvailable,
			Mechanical: mechanical,
			Electric:   electric,
			Docks:      st.NumDocksAvailable,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].StationID < records[j].StationID
	})

	return records
}

// bikeTypeCounts flattens the feed's per-type breakdown, a list of
// single-key maps. A type absent from the list counts as zero.
func bikeTypeCounts(breakdown []map[string]int) (mechanical, electric int) {
	for _, entry := range breakdown {
		if v, ok := entry["mechanical"]; ok {
			mechanical += v
		}
		if v, ok := entry["ebike"]; ok {
			electric += v
		}
	}
	return mechanical, electric
}
