package linker_test

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gndwc/pkg/errcode"
	"github.com/gnames/gndwc/pkg/gndwc"
	"github.com/gnames/gndwc/pkg/linker"
	"github.com/gnames/gndwc/pkg/ref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMeasurements(t *testing.T) {
	cfg := testConfig()

	t.Run("k non-missing cells produce exactly k rows", func(t *testing.T) {
		lnk := linker.New(cfg)
		sources := []gndwc.MeasurementSource{
			{
				OccurrenceID: "hakai-jsp:U10332",
				EventID:      "DE129",
				ForkLengthMM: ptr(112),
				LifeStage:    "juvenile",
				// standard length, total length, weight missing
			},
		}

		rows, err := lnk.BuildMeasurements(sources, testTypes())
		require.NoError(t, err)
		require.Len(t, rows, 2)

		fl := rows[0]
		assert.Equal(t, "fork length", fl.MeasurementType)
		assert.Equal(t, "112", fl.MeasurementValue)
		assert.Equal(t, "mm", fl.MeasurementUnit)
		assert.Equal(t, "hakai-jsp:U10332", fl.OccurrenceID)
		assert.Equal(t, "DE129", fl.EventID)
		assert.Empty(t, fl.MeasurementValueID,
			"numeric values carry no vocabulary URI")

		ls := rows[1]
		assert.Equal(t, "life stage", ls.MeasurementType)
		assert.Equal(t, "juvenile", ls.MeasurementValue)
		assert.Equal(t,
			"http://vocab.nerc.ac.uk/collection/S11/current/S1127/",
			ls.MeasurementValueID,
		)
		assert.Empty(t, ls.MeasurementUnit, "categorical values have no unit")
	})

	t.Run("all cells missing produce no rows", func(t *testing.T) {
		lnk := linker.New(cfg)
		sources := []gndwc.MeasurementSource{
			{OccurrenceID: "hakai-jsp:U1", EventID: "DE129"},
		}

		rows, err := lnk.BuildMeasurements(sources, testTypes())
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("measurementID is deterministic", func(t *testing.T) {
		sources := []gndwc.MeasurementSource{
			{
				OccurrenceID: "hakai-jsp:U1",
				EventID:      "DE129",
				WeightG:      ptr(17.4),
			},
		}

		rows1, err := linker.New(cfg).BuildMeasurements(sources, testTypes())
		require.NoError(t, err)
		rows2, err := linker.New(cfg).BuildMeasurements(sources, testTypes())
		require.NoError(t, err)

		require.Len(t, rows1, 1)
		assert.Equal(t, rows1[0].MeasurementID, rows2[0].MeasurementID)
		assert.Equal(t, "17.4", rows1[0].MeasurementValue)
	})

	t.Run("type missing from dictionary fails the run", func(t *testing.T) {
		lnk := linker.New(cfg)
		sources := []gndwc.MeasurementSource{
			{
				OccurrenceID: "hakai-jsp:U1",
				EventID:      "DE129",
				ForkLengthMM: ptr(100),
			},
		}
		types := ref.MeasurementTypes{} // empty dictionary

		_, err := lnk.BuildMeasurements(sources, types)
		require.Error(t, err)

		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr)
		assert.Equal(t, errcode.VocabularyMappingError, gnErr.Code)
		assert.Contains(t, gnErr.Err.Error(), "fork length")
	})
}
