package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, input/output paths).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int

	s = c.Dataset.OccurrencePrefix
	if s != "" {
		res = append(res, OptDatasetOccurrencePrefix(s))
	}
	s = c.Dataset.DatasetName
	if s != "" {
		res = append(res, OptDatasetDatasetName(s))
	}
	s = c.Dataset.InstitutionCode
	if s != "" {
		res = append(res, OptDatasetInstitutionCode(s))
	}
	s = c.Dataset.License
	if s != "" {
		res = append(res, OptDatasetLicense(s))
	}
	s = c.Dataset.Citation
	if s != "" {
		res = append(res, OptDatasetCitation(s))
	}
	s = c.Dataset.SamplingProtocol
	if s != "" {
		res = append(res, OptDatasetSamplingProtocol(s))
	}

	if c.Geo.ImputedUncertaintyM > 0 {
		res = append(res, OptGeoImputedUncertaintyM(c.Geo.ImputedUncertaintyM))
	}

	s = c.Resolver.BaseURL
	if s != "" {
		res = append(res, OptResolverBaseURL(s))
	}
	i = c.Resolver.BatchSize
	if i > 0 {
		res = append(res, OptResolverBatchSize(i))
	}
	i = c.Resolver.TimeoutSec
	if i > 0 {
		res = append(res, OptResolverTimeoutSec(i))
	}
	s = c.Resolver.MatchPolicy
	if s != "" {
		res = append(res, OptResolverMatchPolicy(s))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	i = c.JobsNumber
	if i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidFloat(name string, f float64) bool {
	res := f > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %v", name, f)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Resolver.MatchPolicy": {"first": s, "strict": s},
		"Log.Level":            {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":           {"json": s, "text": s},
		"Log.Destination":      {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
