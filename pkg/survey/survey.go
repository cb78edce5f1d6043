// Package survey defines the canonical raw-record types a conversion run
// consumes. Source files are dataset-specific; collaborators in
// internal/iosurvey map their columns onto these records before the core
// ever sees them.
package survey

// Event is one raw sampling activity row.
type Event struct {
	// LocalID is the source's local identifier for the sampling activity.
	// It becomes the eventID verbatim.
	LocalID string

	// Date in ISO 8601 (YYYY-MM-DD), Time as HH:MM(:SS)±hh:mm when known.
	Date string
	Time string

	// LocationID keys the site reference table for coordinate back-fill.
	LocationID string

	// Latitude and Longitude are nil when the GPS fix is missing.
	Latitude  *float64
	Longitude *float64

	// CoordinateUncertaintyM is the GPS positional uncertainty; replaced
	// with a coarser value when coordinates are imputed.
	CoordinateUncertaintyM *float64

	MinDepthM *float64
	MaxDepthM *float64

	Habitat string
}

// AggregateCatch is one species total for one event: how many individuals
// were caught and how many of those were retained (and therefore appear as
// individually tagged Specimen rows).
type AggregateCatch struct {
	EventID     string
	SpeciesCode string
	Total       int
	Retained    int
}

// Specimen is one individually tagged, retained and measured fish.
// UFN is the locally unique specimen identifier of the source program.
// Measurement columns are nil when not taken.
type Specimen struct {
	UFN         string
	EventID     string
	SpeciesCode string

	// LifeStageCode is the source's single-letter code (J, A, Y).
	LifeStageCode string

	ForkLengthMM     *float64
	StandardLengthMM *float64
	TotalLengthMM    *float64
	WeightG          *float64
}

// Bycatch is one non-target individual captured incidentally, identified
// to a species code and a life-stage code but not retained.
type Bycatch struct {
	EventID       string
	SpeciesCode   string
	LifeStageCode string
}
