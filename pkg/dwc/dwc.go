// Package dwc defines the Darwin Core record types produced by a
// conversion run and the fixed field order of their serialized form.
//
// Field order and exact header strings come from the Darwin Core
// vocabulary and must be reproduced exactly; downstream aggregators
// (OBIS, GBIF) match columns by these headers.
package dwc

import (
	"strconv"
)

// Fixed controlled values stamped on every occurrence.
const (
	BasisOfRecord    = "HumanObservation"
	OccurrenceStatus = "present"
	GeodeticDatum    = "EPSG:4326"
)

// Event is one sampling activity, e.g. one net deployment.
// Events are immutable after creation except for coordinate back-fill
// performed by the linker before the event leaves BuildEvents.
type Event struct {
	EventID                string
	EventDate              string
	EventTime              string
	DecimalLatitude        *float64
	DecimalLongitude       *float64
	CoordinateUncertaintyM *float64
	MinimumDepthM          *float64
	MaximumDepthM          *float64
	LocationID             string
	Habitat                string
	SamplingProtocol       string
	DatasetName            string
	InstitutionCode        string
	License                string
	BibliographicCitation  string
}

// Occurrence is one observed individual or observation unit tied to
// exactly one event.
type Occurrence struct {
	OccurrenceID             string
	EventID                  string
	ScientificName           string
	ScientificNameID         string
	ScientificNameAuthorship string
	TaxonRank                string
	LifeStage                string
	OccurrenceStatus         string
	BasisOfRecord            string
}

// MeasurementOrFact is one measured value tied to an occurrence and,
// transitively, an event. MeasurementValue is text because the set of
// measurement types mixes numeric and categorical values.
type MeasurementOrFact struct {
	MeasurementID      string
	OccurrenceID       string
	EventID            string
	MeasurementType    string
	MeasurementTypeID  string
	MeasurementValue   string
	MeasurementValueID string
	MeasurementUnit    string
	MeasurementUnitID  string
}

// NameMatch is one candidate answer of the taxonomic name-resolution
// service for a queried scientific name.
type NameMatch struct {
	// ScientificName is the accepted name as spelled by the authority.
	ScientificName string
	// Authorship is the name authorship string, e.g. "(Walbaum, 1792)".
	Authorship string
	// Rank is the taxonomic rank of the match, e.g. "Species".
	Rank string
	// ScientificNameID is the persistent authority identifier, e.g. an
	// LSID like "urn:lsid:marinespecies.org:taxname:254569".
	ScientificNameID string
}

// EventHeader is the exact serialized column order of the event table.
var EventHeader = []string{
	"eventID",
	"eventDate",
	"eventTime",
	"decimalLatitude",
	"decimalLongitude",
	"coordinateUncertaintyInMeters",
	"minimumDepthInMeters",
	"maximumDepthInMeters",
	"geodeticDatum",
	"locationID",
	"habitat",
	"samplingProtocol",
	"datasetName",
	"institutionCode",
	"license",
	"bibliographicCitation",
}

// OccurrenceHeader is the exact serialized column order of the
// occurrence table.
var OccurrenceHeader = []string{
	"occurrenceID",
	"eventID",
	"scientificName",
	"scientificNameID",
	"scientificNameAuthorship",
	"taxonRank",
	"lifeStage",
	"occurrenceStatus",
	"basisOfRecord",
}

// MeasurementHeader is the exact serialized column order of the
// measurementorfact table.
var MeasurementHeader = []string{
	"measurementID",
	"occurrenceID",
	"eventID",
	"measurementType",
	"measurementTypeID",
	"measurementValue",
	"measurementValueID",
	"measurementUnit",
	"measurementUnitID",
}

// Row returns the event fields in EventHeader order.
func (e Event) Row() []string {
	return []string{
		e.EventID,
		e.EventDate,
		e.EventTime,
		floatField(e.DecimalLatitude),
		floatField(e.DecimalLongitude),
		floatField(e.CoordinateUncertaintyM),
		floatField(e.MinimumDepthM),
		floatField(e.MaximumDepthM),
		GeodeticDatum,
		e.LocationID,
		e.Habitat,
		e.SamplingProtocol,
		e.DatasetName,
		e.InstitutionCode,
		e.License,
		e.BibliographicCitation,
	}
}

// Row returns the occurrence fields in OccurrenceHeader order.
func (o Occurrence) Row() []string {
	return []string{
		o.OccurrenceID,
		o.EventID,
		o.ScientificName,
		o.ScientificNameID,
		o.ScientificNameAuthorship,
		o.TaxonRank,
		o.LifeStage,
		o.OccurrenceStatus,
		o.BasisOfRecord,
	}
}

// Row returns the measurement fields in MeasurementHeader order.
func (m MeasurementOrFact) Row() []string {
	return []string{
		m.MeasurementID,
		m.OccurrenceID,
		m.EventID,
		m.MeasurementType,
		m.MeasurementTypeID,
		m.MeasurementValue,
		m.MeasurementValueID,
		m.MeasurementUnit,
		m.MeasurementUnitID,
	}
}

// floatField serializes an optional numeric field. Missing values become
// empty strings, never zeros.
func floatField(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
