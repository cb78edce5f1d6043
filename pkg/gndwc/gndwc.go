// Package gndwc defines the contracts of the Darwin Core conversion run.
//
// A run is a pure function of its inputs: raw survey tables plus reference
// data go in, three cross-referenced Darwin Core tables come out. All state
// lives for the duration of one run; nothing is shared between runs.
package gndwc

import (
	"context"

	"github.com/gnames/gndwc/pkg/dwc"
	"github.com/gnames/gndwc/pkg/ref"
	"github.com/gnames/gndwc/pkg/survey"
)

var (
	// Version is set by build flags.
	Version = "v0.1.0"
	// Build is a timestamp set by build flags.
	Build = "n/a"
)

// Linker builds the three related Darwin Core tables from raw survey
// records and rejects any structurally inconsistent result before
// serialization.
//
// The operations are meant to run in order: BuildEvents, BuildOccurrences,
// EnrichTaxonomy, BuildMeasurements, Reconcile. Reconcile is the gate: no
// table may be serialized unless it returned without error.
type Linker interface {
	// BuildEvents maps raw survey activities to candidate Darwin Core
	// events. Missing coordinates are back-filled from the site reference;
	// back-filled rows get a coarser positional uncertainty. Filtering of
	// events without occurrences is deferred to Reconcile.
	BuildEvents(
		rawEvents []survey.Event,
		sites ref.Sites,
	) ([]dwc.Event, error)

	// BuildOccurrences assembles occurrences from three sources: aggregate
	// catch counts (expanded to one synthetic row per unretained
	// individual), UFN-tagged specimens (one row each), and bycatch tallies
	// (one row each, with life-stage recoding). It also returns the
	// specimen rows annotated with their occurrenceID, which later feed
	// BuildMeasurements.
	BuildOccurrences(
		catch []survey.AggregateCatch,
		specimens []survey.Specimen,
		bycatch []survey.Bycatch,
		vocab *ref.Vocabulary,
	) ([]dwc.Occurrence, []MeasurementSource, error)

	// EnrichTaxonomy joins authorship, rank and a persistent taxon
	// identifier onto every occurrence via one batched resolver call per
	// run. Ambiguous matches are handled per the configured policy.
	EnrichTaxonomy(
		ctx context.Context,
		occurrences []dwc.Occurrence,
		resolver Resolver,
	) ([]dwc.Occurrence, error)

	// BuildMeasurements pivots the wide measurement columns of specimen
	// rows into long-format MeasurementOrFact rows. Missing values are
	// dropped, never emitted as empty rows.
	BuildMeasurements(
		sources []MeasurementSource,
		types ref.MeasurementTypes,
	) ([]dwc.MeasurementOrFact, error)

	// Reconcile drops events without occurrences, then verifies primary-key
	// uniqueness and referential integrity across the three tables. It
	// reports every offending key, not just the first.
	Reconcile(
		events []dwc.Event,
		occurrences []dwc.Occurrence,
		measurements []dwc.MeasurementOrFact,
	) ([]dwc.Event, []dwc.Occurrence, []dwc.MeasurementOrFact, error)

	// Warnings returns the structured warnings accumulated during the run,
	// such as ambiguous or unmatched scientific names.
	Warnings() []Warning
}

// Resolver is the external taxonomic name-resolution service. One batched
// lookup per run keeps a consistent snapshot of the authority data and
// bounds external load. A failed lookup aborts the whole run; partial
// enrichment is not an acceptable output state.
type Resolver interface {
	// Resolve returns 0..N candidate matches for every queried name.
	// The returned map is keyed by the query string.
	Resolve(ctx context.Context, names []string) (map[string][]dwc.NameMatch, error)
}

// MeasurementSource is a specimen row annotated with the identifiers of the
// occurrence and event it belongs to. It carries the wide measurement
// columns that BuildMeasurements pivots to long form.
type MeasurementSource struct {
	OccurrenceID string
	EventID      string

	ForkLengthMM     *float64
	StandardLengthMM *float64
	TotalLengthMM    *float64
	WeightG          *float64
	LifeStage        string
}

// Warning is a non-fatal condition recorded during a run. Warnings are
// attached to the run result, never thrown.
type Warning struct {
	// Kind is a short machine-readable tag, e.g. "ambiguous_match".
	Kind string
	// ScientificName is the name the warning refers to, when applicable.
	ScientificName string
	// Message is a human-readable description.
	Message string
}
