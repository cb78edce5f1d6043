package ioref

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gndwc/pkg/errcode"
)

// SitesError creates an error for when the site reference table cannot
// be read or parsed.
func SitesError(path string, err error) error {
	msg := `Cannot load site reference table <em>%s</em>

<em>How to fix:</em>
  1. Check that the file exists and is valid YAML
  2. See the documented sites.yaml format`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.RefSitesError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot load sites: %w", err),
	}
}

// SitesFieldError creates an error for a site entry with a missing
// required field.
func SitesFieldError(path, field string) error {
	msg := `Site reference table <em>%s</em> has an entry without <em>%s</em>`
	vars := []any{path, field}

	return &gn.Error{
		Code: errcode.RefSitesError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("sites entry without %s", field),
	}
}

// SitesDuplicateError creates an error for a repeated location identifier.
func SitesDuplicateError(path, locationID string) error {
	msg := `Site reference table <em>%s</em> repeats location <em>%s</em>`
	vars := []any{path, locationID}

	return &gn.Error{
		Code: errcode.RefSitesError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("duplicate location %q in sites", locationID),
	}
}

// VocabularyError creates an error for when the species/life-stage
// vocabulary cannot be read or parsed.
func VocabularyError(path string, err error) error {
	msg := `Cannot load vocabulary <em>%s</em>

<em>How to fix:</em>
  1. Check that the file exists and is valid YAML
  2. See the documented vocabulary.yaml format`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.RefSpeciesVocabularyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot load vocabulary: %w", err),
	}
}

// VocabularyFieldError creates an error for a vocabulary entry with a
// missing required field.
func VocabularyFieldError(path, field string) error {
	msg := `Vocabulary <em>%s</em> has an entry without <em>%s</em>`
	vars := []any{path, field}

	return &gn.Error{
		Code: errcode.RefSpeciesVocabularyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("vocabulary entry without %s", field),
	}
}

// VocabularyDuplicateError creates an error for a repeated species code.
func VocabularyDuplicateError(path, code string) error {
	msg := `Vocabulary <em>%s</em> repeats species code <em>%s</em>`
	vars := []any{path, code}

	return &gn.Error{
		Code: errcode.RefSpeciesVocabularyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("duplicate species code %q in vocabulary", code),
	}
}

// MeasurementTypesError creates an error for when the measurement-type
// dictionary cannot be read or parsed.
func MeasurementTypesError(path string, err error) error {
	msg := `Cannot load measurement-type dictionary <em>%s</em>

<em>How to fix:</em>
  1. Check that the file exists and is valid YAML
  2. See the documented measurement_types.yaml format`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.RefMeasurementTypesError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot load measurement types: %w", err),
	}
}

// MeasurementTypesFieldError creates an error for a dictionary entry with
// a missing required field.
func MeasurementTypesFieldError(path, field string) error {
	msg := `Measurement-type dictionary <em>%s</em> has an entry without <em>%s</em>`
	vars := []any{path, field}

	return &gn.Error{
		Code: errcode.RefMeasurementTypesError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("measurement type entry without %s", field),
	}
}

// MeasurementTypesDuplicateError creates an error for a repeated
// measurement-type name.
func MeasurementTypesDuplicateError(path, name string) error {
	msg := `Measurement-type dictionary <em>%s</em> repeats type <em>%s</em>`
	vars := []any{path, name}

	return &gn.Error{
		Code: errcode.RefMeasurementTypesError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("duplicate measurement type %q", name),
	}
}
