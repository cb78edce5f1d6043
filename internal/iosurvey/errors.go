package iosurvey

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gndwc/pkg/errcode"
)

// OpenError creates an error for a survey input file that cannot be
// opened.
func OpenError(path string, err error) error {
	msg := `Cannot open survey input <em>%s</em>

<em>How to fix:</em>
  1. Check the path passed on the command line
  2. Check file permissions`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.SurveyOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open survey input: %w", err),
	}
}

// ParseError creates an error for a malformed row in a survey input file.
func ParseError(path string, line int, err error) error {
	msg := `Cannot parse survey input <em>%s</em>, line <em>%d</em>

<em>Possible causes:</em>
  - Non-numeric text in a numeric column
  - Wrong number of fields in the row`

	vars := []any{path, line}

	return &gn.Error{
		Code: errcode.SurveyParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s line %d: %w", path, line, err),
	}
}

// MissingColumnError creates an error for a survey input file without a
// required column.
func MissingColumnError(path, column string) error {
	msg := `Survey input <em>%s</em> has no <em>%s</em> column

<em>How to fix:</em>
  1. Export the table with its canonical column names
  2. See the documented input format`

	vars := []any{path, column}

	return &gn.Error{
		Code: errcode.SurveyParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s: missing column %q", path, column),
	}
}

// DatabaseError creates an error for a failure reading the SQLite field
// database.
func DatabaseError(path string, err error) error {
	msg := `Cannot read survey database <em>%s</em>

<em>Possible causes:</em>
  - File is not a SQLite database
  - A raw table (events, aggregate_catch, specimens, bycatch) is missing
  - Table columns do not match the documented input format`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.SurveyDatabaseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read survey database: %w", err),
	}
}
