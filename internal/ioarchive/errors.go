package ioarchive

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gndwc/pkg/errcode"
)

// WriteError creates an error for a failure writing an output file.
func WriteError(path string, err error) error {
	msg := `Cannot write output file <em>%s</em>

<em>Possible causes:</em>
  - Output directory is not writable
  - Disk is full

No partial output is left behind.`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ArchiveWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write output: %w", err),
	}
}
