package iosurvey_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gndwc/internal/iosurvey"
	"github.com/gnames/gndwc/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func testPaths() iosurvey.Paths {
	return iosurvey.Paths{
		Events:    filepath.Join("testdata", "events.csv"),
		Catch:     filepath.Join("testdata", "catch.csv"),
		Specimens: filepath.Join("testdata", "specimens.csv"),
		Bycatch:   filepath.Join("testdata", "bycatch.csv"),
	}
}

func TestReadCSV(t *testing.T) {
	input, err := iosurvey.ReadCSV(testPaths())
	require.NoError(t, err)

	t.Run("reads events", func(t *testing.T) {
		require.Len(t, input.Events, 2)

		ev := input.Events[0]
		assert.Equal(t, "DE129", ev.LocalID)
		assert.Equal(t, "2019-05-21", ev.Date)
		assert.Equal(t, "14:30", ev.Time)
		assert.Equal(t, "D07", ev.LocationID)
		require.NotNil(t, ev.Latitude)
		assert.InDelta(t, 50.44, *ev.Latitude, 0.0001)
		assert.Equal(t, "nearshore pelagic", ev.Habitat)

		// empty numeric cells come back nil, never zero
		ev = input.Events[1]
		assert.Nil(t, ev.Latitude)
		assert.Nil(t, ev.Longitude)
		assert.Nil(t, ev.MaxDepthM)
		assert.Empty(t, ev.Time)
	})

	t.Run("reads catch", func(t *testing.T) {
		require.Len(t, input.Catch, 3)
		c := input.Catch[0]
		assert.Equal(t, "DE129", c.EventID)
		assert.Equal(t, "SO", c.SpeciesCode)
		assert.Equal(t, 5, c.Total)
		assert.Equal(t, 2, c.Retained)
	})

	t.Run("reads specimens", func(t *testing.T) {
		require.Len(t, input.Specimens, 2)
		sp := input.Specimens[0]
		assert.Equal(t, "U10332", sp.UFN)
		assert.Equal(t, "J", sp.LifeStageCode)
		require.NotNil(t, sp.ForkLengthMM)
		assert.InDelta(t, 112.0, *sp.ForkLengthMM, 0.001)
		assert.Nil(t, sp.StandardLengthMM)

		sp = input.Specimens[1]
		assert.Empty(t, sp.LifeStageCode)
		assert.Nil(t, sp.WeightG)
	})

	t.Run("reads bycatch", func(t *testing.T) {
		require.Len(t, input.Bycatch, 2)
		assert.Equal(t, "SH", input.Bycatch[0].SpeciesCode)
		assert.Equal(t, "Y", input.Bycatch[0].LifeStageCode)
	})
}

func TestReadCSVOptionalBycatch(t *testing.T) {
	paths := testPaths()
	paths.Bycatch = ""

	input, err := iosurvey.ReadCSV(paths)
	require.NoError(t, err)
	assert.Empty(t, input.Bycatch)
	assert.Len(t, input.Events, 2)
}

func TestReadCSVErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		paths := testPaths()
		paths.Events = filepath.Join("testdata", "no-such.csv")

		_, err := iosurvey.ReadCSV(paths)
		require.Error(t, err)

		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr)
		assert.Equal(t, errcode.SurveyOpenError, gnErr.Code)
	})

	t.Run("missing required column", func(t *testing.T) {
		paths := testPaths()
		// bycatch file lacks the catch columns
		paths.Catch = filepath.Join("testdata", "bycatch.csv")

		_, err := iosurvey.ReadCSV(paths)
		require.Error(t, err)

		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr)
		assert.Equal(t, errcode.SurveyParseError, gnErr.Code)
		assert.Contains(t, gnErr.Err.Error(), "total")
	})
}

func TestReadDB(t *testing.T) {
	path := makeTestDB(t, true)

	input, err := iosurvey.ReadDB(path)
	require.NoError(t, err)

	require.Len(t, input.Events, 2)
	ev := input.Events[0]
	assert.Equal(t, "DE129", ev.LocalID)
	require.NotNil(t, ev.Latitude)
	assert.InDelta(t, 50.44, *ev.Latitude, 0.0001)
	assert.Nil(t, input.Events[1].Latitude, "NULL columns come back nil")

	require.Len(t, input.Catch, 1)
	assert.Equal(t, 5, input.Catch[0].Total)

	require.Len(t, input.Specimens, 1)
	sp := input.Specimens[0]
	assert.Equal(t, "U10332", sp.UFN)
	require.NotNil(t, sp.ForkLengthMM)
	assert.InDelta(t, 112.0, *sp.ForkLengthMM, 0.001)
	assert.Nil(t, sp.WeightG)

	require.Len(t, input.Bycatch, 1)
	assert.Equal(t, "SH", input.Bycatch[0].SpeciesCode)
}

func TestReadDBWithoutBycatch(t *testing.T) {
	path := makeTestDB(t, false)

	input, err := iosurvey.ReadDB(path)
	require.NoError(t, err)
	assert.Empty(t, input.Bycatch)
	assert.Len(t, input.Events, 2)
}

func TestReadDBMissing(t *testing.T) {
	_, err := iosurvey.ReadDB(filepath.Join(t.TempDir(), "no-such.sqlite"))
	require.Error(t, err)

	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.SurveyOpenError, gnErr.Code)
}

func makeTestDB(t *testing.T, withBycatch bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "survey.sqlite")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	stmts := []string{
		`CREATE TABLE events (
			event_id TEXT, date TEXT, time TEXT, location_id TEXT,
			latitude REAL, longitude REAL, coordinate_uncertainty_m REAL,
			min_depth_m REAL, max_depth_m REAL, habitat TEXT
		)`,
		`INSERT INTO events VALUES
			('DE129', '2019-05-21', '14:30', 'D07',
			 50.44, -126.01, 30, 0, 9, 'nearshore pelagic'),
			('DE130', '2019-05-22', NULL, 'J02',
			 NULL, NULL, NULL, NULL, NULL, NULL)`,
		`CREATE TABLE aggregate_catch (
			event_id TEXT, species_code TEXT, total INTEGER, retained INTEGER
		)`,
		`INSERT INTO aggregate_catch VALUES ('DE129', 'SO', 5, 2)`,
		`CREATE TABLE specimens (
			ufn TEXT, event_id TEXT, species_code TEXT, life_stage TEXT,
			fork_length_mm REAL, standard_length_mm REAL,
			total_length_mm REAL, weight_g REAL
		)`,
		`INSERT INTO specimens VALUES
			('U10332', 'DE129', 'SO', 'J', 112, NULL, 118, NULL)`,
	}
	if withBycatch {
		stmts = append(stmts,
			`CREATE TABLE bycatch (
				event_id TEXT, species_code TEXT, life_stage TEXT
			)`,
			`INSERT INTO bycatch VALUES ('DE129', 'SH', 'Y')`,
		)
	}

	for _, stmt := range stmts {
		_, err = db.Exec(stmt)
		require.NoError(t, err)
	}
	return path
}
