// Package iosurvey reads the raw survey tables of one conversion run.
//
// Two input shapes are supported: one CSV export per table, or a single
// SQLite field database holding all four tables. Either way the output is
// the same set of canonical survey records; the core never sees the
// dataset-specific files.
package iosurvey

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gnames/gndwc/pkg/survey"
)

// Paths names the four CSV exports of a run. Bycatch is optional; not
// every survey program records it.
type Paths struct {
	Events    string
	Catch     string
	Specimens string
	Bycatch   string
}

// Input bundles the parsed raw tables of one run.
type Input struct {
	Events    []survey.Event
	Catch     []survey.AggregateCatch
	Specimens []survey.Specimen
	Bycatch   []survey.Bycatch
}

// ReadCSV parses the four CSV exports into canonical survey records.
func ReadCSV(paths Paths) (*Input, error) {
	res := &Input{}
	var err error

	res.Events, err = readEventsCSV(paths.Events)
	if err != nil {
		return nil, err
	}

	res.Catch, err = readCatchCSV(paths.Catch)
	if err != nil {
		return nil, err
	}

	res.Specimens, err = readSpecimensCSV(paths.Specimens)
	if err != nil {
		return nil, err
	}

	if paths.Bycatch != "" {
		res.Bycatch, err = readBycatchCSV(paths.Bycatch)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}

// table reads one CSV file and hands every data row to fn together with a
// header-index lookup. Row order is preserved; it anchors the synthetic
// identifier sequence downstream.
func table(path string, required []string, fn func(row *row) error) error {
	f, err := os.Open(path)
	if err != nil {
		return OpenError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return ParseError(path, 1, err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[h] = i
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return MissingColumnError(path, col)
		}
	}

	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		line++
		if err != nil {
			return ParseError(path, line, err)
		}
		if err := fn(&row{path: path, line: line, idx: idx, rec: record}); err != nil {
			return err
		}
	}
}

// row is one CSV data row with typed field accessors.
type row struct {
	path string
	line int
	idx  map[string]int
	rec  []string
}

func (r *row) str(col string) string {
	i, ok := r.idx[col]
	if !ok || i >= len(r.rec) {
		return ""
	}
	return r.rec[i]
}

func (r *row) float(col string) (*float64, error) {
	s := r.str(col)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, ParseError(r.path, r.line,
			fmt.Errorf("column %s: %w", col, err))
	}
	return &f, nil
}

func (r *row) int(col string) (int, error) {
	s := r.str(col)
	if s == "" {
		return 0, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, ParseError(r.path, r.line,
			fmt.Errorf("column %s: %w", col, err))
	}
	return i, nil
}

func readEventsCSV(path string) ([]survey.Event, error) {
	var res []survey.Event
	required := []string{"event_id", "date", "location_id"}

	err := table(path, required, func(r *row) error {
		ev := survey.Event{
			LocalID:    r.str("event_id"),
			Date:       r.str("date"),
			Time:       r.str("time"),
			LocationID: r.str("location_id"),
			Habitat:    r.str("habitat"),
		}
		var err error
		if ev.Latitude, err = r.float("latitude"); err != nil {
			return err
		}
		if ev.Longitude, err = r.float("longitude"); err != nil {
			return err
		}
		if ev.CoordinateUncertaintyM, err = r.float("coordinate_uncertainty_m"); err != nil {
			return err
		}
		if ev.MinDepthM, err = r.float("min_depth_m"); err != nil {
			return err
		}
		if ev.MaxDepthM, err = r.float("max_depth_m"); err != nil {
			return err
		}
		res = append(res, ev)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func readCatchCSV(path string) ([]survey.AggregateCatch, error) {
	var res []survey.AggregateCatch
	required := []string{"event_id", "species_code", "total", "retained"}

	err := table(path, required, func(r *row) error {
		c := survey.AggregateCatch{
			EventID:     r.str("event_id"),
			SpeciesCode: r.str("species_code"),
		}
		var err error
		if c.Total, err = r.int("total"); err != nil {
			return err
		}
		if c.Retained, err = r.int("retained"); err != nil {
			return err
		}
		res = append(res, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func readSpecimensCSV(path string) ([]survey.Specimen, error) {
	var res []survey.Specimen
	required := []string{"ufn", "event_id", "species_code"}

	err := table(path, required, func(r *row) error {
		sp := survey.Specimen{
			UFN:           r.str("ufn"),
			EventID:       r.str("event_id"),
			SpeciesCode:   r.str("species_code"),
			LifeStageCode: r.str("life_stage"),
		}
		var err error
		if sp.ForkLengthMM, err = r.float("fork_length_mm"); err != nil {
			return err
		}
		if sp.StandardLengthMM, err = r.float("standard_length_mm"); err != nil {
			return err
		}
		if sp.TotalLengthMM, err = r.float("total_length_mm"); err != nil {
			return err
		}
		if sp.WeightG, err = r.float("weight_g"); err != nil {
			return err
		}
		res = append(res, sp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func readBycatchCSV(path string) ([]survey.Bycatch, error) {
	var res []survey.Bycatch
	required := []string{"event_id", "species_code"}

	err := table(path, required, func(r *row) error {
		res = append(res, survey.Bycatch{
			EventID:       r.str("event_id"),
			SpeciesCode:   r.str("species_code"),
			LifeStageCode: r.str("life_stage"),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
