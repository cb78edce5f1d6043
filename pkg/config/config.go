// Package config provides configuration management for GNdwc.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Dataset: occurrence_prefix, dataset_name, institution_code, license,
//     citation, sampling_protocol
//   - Geo: imputed_uncertainty_m
//   - Resolver: base_url, batch_size, timeout_sec, match_policy
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Input/output file paths (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNDWC_ prefix with underscores for nesting:
//
//	GNDWC_DATASET_OCCURRENCE_PREFIX=hakai-jsp
//	GNDWC_RESOLVER_BASE_URL=https://www.marinespecies.org/rest
//	GNDWC_LOG_LEVEL=info
//	GNDWC_JOBS_NUMBER=4
package config

import (
	"runtime"
)

// Config represents the complete GNdwc configuration.
type Config struct {
	// Dataset contains the publishing metadata stamped on every run.
	Dataset DatasetConfig `mapstructure:"dataset" yaml:"dataset"`

	// Geo contains geolocation handling settings.
	Geo GeoConfig `mapstructure:"geo" yaml:"geo"`

	// Resolver contains taxonomic name-resolution service settings.
	Resolver ResolverConfig `mapstructure:"resolver" yaml:"resolver"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber bounds concurrent resolver batches. The conversion
	// pipeline itself is sequential.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatasetConfig contains dataset-level publishing metadata.
type DatasetConfig struct {
	// OccurrencePrefix scopes every occurrenceID to this dataset. It is
	// prepended both to UFN-based identifiers and to synthetic counters.
	OccurrencePrefix string `mapstructure:"occurrence_prefix" yaml:"occurrence_prefix"`

	// DatasetName is the datasetName value stamped on every event.
	DatasetName string `mapstructure:"dataset_name" yaml:"dataset_name"`

	// InstitutionCode is the institutionCode value stamped on every event.
	InstitutionCode string `mapstructure:"institution_code" yaml:"institution_code"`

	// License is the license URI stamped on every event.
	License string `mapstructure:"license" yaml:"license"`

	// Citation is the bibliographicCitation stamped on every event.
	Citation string `mapstructure:"citation" yaml:"citation"`

	// SamplingProtocol is the samplingProtocol reference stamped on every
	// event, usually a protocol DOI.
	SamplingProtocol string `mapstructure:"sampling_protocol" yaml:"sampling_protocol"`
}

// GeoConfig contains geolocation handling settings.
type GeoConfig struct {
	// ImputedUncertaintyM replaces the positional uncertainty of an event
	// whose coordinates were back-filled from the site reference table.
	// Site centroids are much coarser than GPS fixes; the default is one
	// nautical mile (1852 m).
	ImputedUncertaintyM float64 `mapstructure:"imputed_uncertainty_m" yaml:"imputed_uncertainty_m"`
}

// ResolverConfig contains settings for the external taxonomic
// name-resolution service (WoRMS by default).
type ResolverConfig struct {
	// BaseURL is the root of the resolution REST API.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// BatchSize is the number of names sent per request.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`

	// TimeoutSec is the per-request timeout in seconds.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`

	// MatchPolicy decides what happens when the service returns more than
	// one candidate for a name.
	// Valid values: "first" (keep first match, record a warning) or
	// "strict" (fail the run).
	MatchPolicy string `mapstructure:"match_policy" yaml:"match_policy"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Dataset: DatasetConfig{
			OccurrencePrefix: "gndwc",
			License:          "http://creativecommons.org/licenses/by/4.0/legalcode",
		},
		Geo: GeoConfig{
			ImputedUncertaintyM: 1852, // one nautical mile
		},
		Resolver: ResolverConfig{
			BaseURL:     "https://www.marinespecies.org/rest",
			BatchSize:   50,
			TimeoutSec:  30,
			MatchPolicy: "first",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
