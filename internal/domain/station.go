package domain

// StationRecord is the merged view of one bike-share station, combining the
// static information feed with the live status feed. A record exists only
// when the station appears in both feeds.
type StationRecord struct {
	StationID  string
	Name       string
	Coord      Coordinate
	Capacity   int
	Bikes      int
	Mechanical int
	Electric   int
	Docks      int
}
