package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatasetOccurrencePrefix sets the dataset-scoped occurrenceID prefix.
func OptDatasetOccurrencePrefix(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Occurrence Prefix", s) {
			c.Dataset.OccurrencePrefix = s
		}
	}
}

// OptDatasetDatasetName sets the datasetName stamped on every event.
func OptDatasetDatasetName(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dataset Name", s) {
			c.Dataset.DatasetName = s
		}
	}
}

// OptDatasetInstitutionCode sets the institutionCode stamped on every event.
func OptDatasetInstitutionCode(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Institution Code", s) {
			c.Dataset.InstitutionCode = s
		}
	}
}

// OptDatasetLicense sets the license URI stamped on every event.
func OptDatasetLicense(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("License", s) {
			c.Dataset.License = s
		}
	}
}

// OptDatasetCitation sets the bibliographicCitation stamped on every event.
func OptDatasetCitation(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Citation", s) {
			c.Dataset.Citation = s
		}
	}
}

// OptDatasetSamplingProtocol sets the samplingProtocol reference stamped on
// every event.
func OptDatasetSamplingProtocol(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Sampling Protocol", s) {
			c.Dataset.SamplingProtocol = s
		}
	}
}

// OptGeoImputedUncertaintyM sets the positional uncertainty assigned to
// events whose coordinates were back-filled from the site reference table.
func OptGeoImputedUncertaintyM(f float64) Option {
	return func(c *Config) {
		if isValidFloat("Imputed Uncertainty", f) {
			c.Geo.ImputedUncertaintyM = f
		}
	}
}

// OptResolverBaseURL sets the root URL of the name-resolution REST API.
func OptResolverBaseURL(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "/")
	return func(c *Config) {
		if isValidString("Resolver Base URL", s) {
			c.Resolver.BaseURL = s
		}
	}
}

// OptResolverBatchSize sets the number of names sent per resolver request.
func OptResolverBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Resolver Batch Size", i) {
			c.Resolver.BatchSize = i
		}
	}
}

// OptResolverTimeoutSec sets the per-request resolver timeout in seconds.
func OptResolverTimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("Resolver Timeout", i) {
			c.Resolver.TimeoutSec = i
		}
	}
}

// OptResolverMatchPolicy sets the ambiguity policy for multi-candidate
// resolver answers.
// Valid values: "first", "strict".
func OptResolverMatchPolicy(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Resolver.MatchPolicy", s) {
			c.Resolver.MatchPolicy = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent resolver batches.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
