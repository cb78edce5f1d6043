// Package ref defines the reference tables a conversion run joins against:
// site coordinates, the species-code vocabulary, life-stage recodes and the
// measurement-type dictionary.
//
// Reference data is loaded once per run (see internal/ioref) and passed
// explicitly to the linker; there are no package-level singletons.
package ref

// Site holds the reference coordinates of one sampling location, used to
// back-fill events whose GPS fix is missing.
type Site struct {
	LocationID string  `yaml:"location_id"`
	Latitude   float64 `yaml:"latitude"`
	Longitude  float64 `yaml:"longitude"`
}

// Sites maps a locationID to its reference coordinates.
type Sites map[string]Site

// SpeciesEntry is one species-code vocabulary entry.
type SpeciesEntry struct {
	Code string `yaml:"code"`

	// ScientificName is the full binomial the code expands to.
	ScientificName string `yaml:"scientific_name"`

	// Unknown marks codes used for unidentifiable individuals. Rows with
	// such codes are excluded from the occurrence set rather than failing
	// the run.
	Unknown bool `yaml:"unknown,omitempty"`
}

// Vocabulary holds the categorical recode tables. Any code missing from
// its table is a hard error; a silent pass-through would corrupt the
// taxonomy and terminology downstream.
type Vocabulary struct {
	Species    map[string]SpeciesEntry
	LifeStages map[string]string
}

// DefaultLifeStages is the source program's single-letter life-stage
// scheme expanded to controlled terms.
func DefaultLifeStages() map[string]string {
	return map[string]string{
		"J": "juvenile",
		"A": "adult",
		"Y": "young of year",
	}
}

// SpeciesName resolves a species code to its scientific name.
// The second return reports whether the code exists at all; the third
// whether it is an explicit unknown-species marker.
func (v *Vocabulary) SpeciesName(code string) (string, bool, bool) {
	entry, ok := v.Species[code]
	if !ok {
		return "", false, false
	}
	return entry.ScientificName, true, entry.Unknown
}

// LifeStage resolves a single-letter life-stage code to its controlled
// term. An empty code resolves to an empty term, not an error: not every
// record carries a life stage.
func (v *Vocabulary) LifeStage(code string) (string, bool) {
	if code == "" {
		return "", true
	}
	term, ok := v.LifeStages[code]
	return term, ok
}

// MeasurementType is the dictionary entry for one measurement type:
// its unit and the controlled-vocabulary URIs used by aggregators.
type MeasurementType struct {
	Name   string `yaml:"name"`
	Unit   string `yaml:"unit,omitempty"`
	UnitID string `yaml:"unit_id,omitempty"`
	TypeID string `yaml:"type_id,omitempty"`

	// Values maps categorical measurement values to vocabulary URIs.
	// Only categorical types (e.g. life stage) carry this map; numeric
	// types leave measurementValueID unset.
	Values map[string]string `yaml:"values,omitempty"`
}

// MeasurementTypes maps a measurement-type name to its dictionary entry.
type MeasurementTypes map[string]MeasurementType

// ValueID returns the controlled-vocabulary URI for a categorical value,
// or an empty string when the type has no vocabulary mapping for it.
func (mt MeasurementTypes) ValueID(typeName, value string) string {
	entry, ok := mt[typeName]
	if !ok {
		return ""
	}
	return entry.Values[value]
}
