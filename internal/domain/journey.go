package domain

// SectionKind classifies one leg of an itinerary.
type SectionKind string

const (
	SectionWalk    SectionKind = "walk"
	SectionTransit SectionKind = "public_transport"
	SectionXfer    SectionKind = "transfer"
	SectionBike    SectionKind = "bike"
	// SectionOther covers leg types the planner may add in the future.
	// The raw type name is kept on the section for display.
	SectionOther SectionKind = "other"
)

// Place is a named endpoint of a section, with coordinates when the
// planner provided them.
type Place struct {
	Name  string
	Coord *Coordinate
}

// Section is one leg of an itinerary.
type Section struct {
	Kind            SectionKind
	RawType         string
	Label           string
	DurationSeconds int
	From            *Place
	To              *Place
	// Geometry is the decoded shape of the leg. HasGeometry distinguishes
	// "planner sent no shape" from an empty shape.
	Geometry    []Coordinate
	HasGeometry bool
	// Bike-only detail fields echoed from the route service.
	Direction     string
	VerticalGainM int
	VerticalLossM int
}

// Itinerary is one display-ready candidate route. All display strings are
// computed during normalization; the presentation layer renders them as-is.
type Itinerary struct {
	Title           string
	Departure       string
	Arrival         string
	DurationSeconds int
	Duration        string
	// Transit-only display fields.
	CO2  string
	Fare string
	// Bike-only display fields.
	Distance         string
	RecommendedRoads string
	DiscouragedRoads string
	Summary          string
	Sections         []Section
}
