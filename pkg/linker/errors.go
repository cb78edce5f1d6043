package linker

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gndwc/pkg/errcode"
)

// VocabularyMappingError creates an error for a raw categorical code that
// has no entry in its recode table. This fails the run immediately; a
// silent pass-through would corrupt taxonomy and terminology downstream.
func VocabularyMappingError(kind, code string) error {
	msg := `Unmapped %s code <em>%s</em>

<em>How to fix:</em>
  1. Add the code to the %s table in the reference data
  2. Or correct the raw survey records if the code is a typo`

	vars := []any{kind, code, kind}

	return &gn.Error{
		Code: errcode.VocabularyMappingError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unmapped %s code %q", kind, code),
	}
}

// MissingCoordinatesError creates an error for an event that has no GPS
// fix and whose location is absent from the site reference table, so no
// back-fill is possible.
func MissingCoordinatesError(eventID, locationID string) error {
	msg := `Cannot back-fill coordinates for event <em>%s</em>

<em>Location:</em> %s is not in the site reference table

<em>How to fix:</em>
  1. Add the location with its coordinates to the sites table
  2. Or supply the GPS fix in the raw event record`

	vars := []any{eventID, locationID}

	return &gn.Error{
		Code: errcode.RefSitesError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("event %s: location %q not in site reference",
			eventID, locationID),
	}
}

// AmbiguousMatchError creates an error for a name the resolver matched to
// more than one candidate while the match policy is 'strict'.
func AmbiguousMatchError(name string, count int) error {
	msg := `Ambiguous taxonomic match for <em>%s</em>: %d candidates

<em>How to fix:</em>
  1. Review the candidates on the resolution service
  2. Replace the name in the species vocabulary with an unambiguous one
  3. Or set resolver match_policy to 'first' to keep the first candidate`

	vars := []any{name, count}

	return &gn.Error{
		Code: errcode.AmbiguousMatchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("ambiguous match for %q: %d candidates",
			name, count),
	}
}

// DuplicateKeyError creates an error for primary keys that repeat within
// one table. The run aborts before serialization.
func DuplicateKeyError(table string, keys []string) error {
	msg := `Duplicate primary keys in the <em>%s</em> table

<em>Offending keys:</em> %s

A repeated key means an upstream identifier-assignment bug; the run is
aborted before any file is written.`

	vars := []any{table, strings.Join(keys, ", ")}

	return &gn.Error{
		Code: errcode.DuplicateKeyError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("%d duplicate keys in %s table: %s",
			len(keys), table, strings.Join(keys, ", ")),
	}
}

// ReferentialIntegrityError creates an error for foreign keys that do not
// resolve. Every offending key is reported, not just the first, to ease
// debugging; a dangling reference indicates an upstream mapping bug.
func ReferentialIntegrityError(table, field string, keys []string) error {
	msg := `Dangling <em>%s</em> references in the <em>%s</em> table

<em>Offending keys:</em> %s

A dangling reference means an upstream mapping bug; the run is aborted
before any file is written.`

	vars := []any{field, table, strings.Join(keys, ", ")}

	return &gn.Error{
		Code: errcode.ReferentialIntegrityError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("%d dangling %s references in %s table: %s",
			len(keys), field, table, strings.Join(keys, ", ")),
	}
}
