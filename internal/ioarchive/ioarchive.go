// Package ioarchive serializes the three validated Darwin Core tables as
// RFC 4180 CSV files with their canonical headers.
//
// Write must only be called after Reconcile succeeded: a written file
// implies all three tables passed constraint checking. All three files
// are staged with temporary names and renamed together, so an I/O
// failure mid-run leaves no output behind.
package ioarchive

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/gnames/gndwc/pkg/dwc"
)

// Output file names, fixed by Darwin Core Archive conventions.
const (
	EventFile       = "event.csv"
	OccurrenceFile  = "occurrence.csv"
	MeasurementFile = "measurementorfact.csv"
)

// Write serializes the three tables into dir, creating it if needed.
// On any failure every staged temp and every already-renamed final file
// is removed, so a failed run leaves the output directory exactly as it
// found it.
func Write(
	dir string,
	events []dwc.Event,
	occurrences []dwc.Occurrence,
	measurements []dwc.MeasurementOrFact,
) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return WriteError(dir, err)
	}

	tables := []struct {
		file   string
		header []string
		rows   func() [][]string
	}{
		{EventFile, dwc.EventHeader, func() [][]string {
			res := make([][]string, len(events))
			for i, e := range events {
				res[i] = e.Row()
			}
			return res
		}},
		{OccurrenceFile, dwc.OccurrenceHeader, func() [][]string {
			res := make([][]string, len(occurrences))
			for i, o := range occurrences {
				res[i] = o.Row()
			}
			return res
		}},
		{MeasurementFile, dwc.MeasurementHeader, func() [][]string {
			res := make([][]string, len(measurements))
			for i, m := range measurements {
				res[i] = m.Row()
			}
			return res
		}},
	}

	var staged, renamed []string
	cleanup := func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
		for _, final := range renamed {
			os.Remove(final)
		}
	}

	for _, t := range tables {
		tmp := filepath.Join(dir, t.file) + ".tmp"
		if err := writeTable(tmp, t.header, t.rows()); err != nil {
			cleanup()
			return err
		}
		staged = append(staged, tmp)
	}

	for i, t := range tables {
		final := filepath.Join(dir, t.file)
		if err := os.Rename(staged[i], final); err != nil {
			staged = staged[i:]
			cleanup()
			return WriteError(final, err)
		}
		renamed = append(renamed, final)
	}

	return nil
}

func writeTable(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return WriteError(path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return WriteError(path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return WriteError(path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return WriteError(path, err)
	}

	if err := f.Close(); err != nil {
		return WriteError(path, err)
	}
	return nil
}
