package iosurvey

import (
	"database/sql"
	"os"

	"github.com/gnames/gndwc/pkg/survey"
	_ "modernc.org/sqlite" // SQLite driver
)

// ReadDB parses a SQLite field database holding the four raw tables
// (events, aggregate_catch, specimens, bycatch). Field data systems often
// hand over one database file instead of per-table CSV exports.
//
// Rows come back ordered by rowid, the insertion order of the field
// system, so synthetic identifiers stay reproducible across runs.
func ReadDB(path string) (*Input, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, OpenError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, DatabaseError(path, err)
	}
	defer db.Close()

	res := &Input{}

	if res.Events, err = readEventsDB(db, path); err != nil {
		return nil, err
	}
	if res.Catch, err = readCatchDB(db, path); err != nil {
		return nil, err
	}
	if res.Specimens, err = readSpecimensDB(db, path); err != nil {
		return nil, err
	}
	if res.Bycatch, err = readBycatchDB(db, path); err != nil {
		return nil, err
	}

	return res, nil
}

func readEventsDB(db *sql.DB, path string) ([]survey.Event, error) {
	q := `
SELECT
	event_id, date, time, location_id, latitude, longitude,
	coordinate_uncertainty_m, min_depth_m, max_depth_m, habitat
FROM events
ORDER BY rowid
`
	rows, err := db.Query(q)
	if err != nil {
		return nil, DatabaseError(path, err)
	}
	defer rows.Close()

	var res []survey.Event
	for rows.Next() {
		var ev survey.Event
		var t, habitat sql.NullString
		var lat, lon, uncert, minD, maxD sql.NullFloat64
		err = rows.Scan(
			&ev.LocalID, &ev.Date, &t, &ev.LocationID,
			&lat, &lon, &uncert, &minD, &maxD, &habitat,
		)
		if err != nil {
			return nil, DatabaseError(path, err)
		}
		ev.Time = t.String
		ev.Habitat = habitat.String
		ev.Latitude = nullFloat(lat)
		ev.Longitude = nullFloat(lon)
		ev.CoordinateUncertaintyM = nullFloat(uncert)
		ev.MinDepthM = nullFloat(minD)
		ev.MaxDepthM = nullFloat(maxD)
		res = append(res, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, DatabaseError(path, err)
	}
	return res, nil
}

func readCatchDB(db *sql.DB, path string) ([]survey.AggregateCatch, error) {
	q := `
SELECT event_id, species_code, total, retained
FROM aggregate_catch
ORDER BY rowid
`
	rows, err := db.Query(q)
	if err != nil {
		return nil, DatabaseError(path, err)
	}
	defer rows.Close()

	var res []survey.AggregateCatch
	for rows.Next() {
		var c survey.AggregateCatch
		err = rows.Scan(&c.EventID, &c.SpeciesCode, &c.Total, &c.Retained)
		if err != nil {
			return nil, DatabaseError(path, err)
		}
		res = append(res, c)
	}
	if err := rows.Err(); err != nil {
		return nil, DatabaseError(path, err)
	}
	return res, nil
}

func readSpecimensDB(db *sql.DB, path string) ([]survey.Specimen, error) {
	q := `
SELECT
	ufn, event_id, species_code, life_stage,
	fork_length_mm, standard_length_mm, total_length_mm, weight_g
FROM specimens
ORDER BY rowid
`
	rows, err := db.Query(q)
	if err != nil {
		return nil, DatabaseError(path, err)
	}
	defer rows.Close()

	var res []survey.Specimen
	for rows.Next() {
		var sp survey.Specimen
		var stage sql.NullString
		var fork, std, total, weight sql.NullFloat64
		err = rows.Scan(
			&sp.UFN, &sp.EventID, &sp.SpeciesCode, &stage,
			&fork, &std, &total, &weight,
		)
		if err != nil {
			return nil, DatabaseError(path, err)
		}
		sp.LifeStageCode = stage.String
		sp.ForkLengthMM = nullFloat(fork)
		sp.StandardLengthMM = nullFloat(std)
		sp.TotalLengthMM = nullFloat(total)
		sp.WeightG = nullFloat(weight)
		res = append(res, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, DatabaseError(path, err)
	}
	return res, nil
}

func readBycatchDB(db *sql.DB, path string) ([]survey.Bycatch, error) {
	// Bycatch is optional; not every survey program records it.
	var name string
	err := db.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'bycatch'`,
	).Scan(&name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, DatabaseError(path, err)
	}

	q := `
SELECT event_id, species_code, life_stage
FROM bycatch
ORDER BY rowid
`
	rows, err := db.Query(q)
	if err != nil {
		return nil, DatabaseError(path, err)
	}
	defer rows.Close()

	var res []survey.Bycatch
	for rows.Next() {
		var b survey.Bycatch
		var stage sql.NullString
		if err = rows.Scan(&b.EventID, &b.SpeciesCode, &stage); err != nil {
			return nil, DatabaseError(path, err)
		}
		b.LifeStageCode = stage.String
		res = append(res, b)
	}
	if err := rows.Err(); err != nil {
		return nil, DatabaseError(path, err)
	}
	return res, nil
}

func nullFloat(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}
