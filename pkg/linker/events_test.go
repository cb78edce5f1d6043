package linker_test

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gndwc/pkg/errcode"
	"github.com/gnames/gndwc/pkg/linker"
	"github.com/gnames/gndwc/pkg/survey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEvents(t *testing.T) {
	cfg := testConfig()

	t.Run("maps fields and stamps dataset metadata", func(t *testing.T) {
		lnk := linker.New(cfg)
		raw := []survey.Event{
			{
				LocalID:                "DE129",
				Date:                   "2019-05-21",
				Time:                   "14:30",
				LocationID:             "D07",
				Latitude:               ptr(50.44),
				Longitude:              ptr(-126.01),
				CoordinateUncertaintyM: ptr(30),
				MinDepthM:              ptr(0),
				MaxDepthM:              ptr(9),
				Habitat:                "nearshore pelagic",
			},
		}

		events, err := lnk.BuildEvents(raw, testSites())
		require.NoError(t, err)
		require.Len(t, events, 1)

		ev := events[0]
		assert.Equal(t, "DE129", ev.EventID)
		assert.Equal(t, "2019-05-21", ev.EventDate)
		assert.Equal(t, "D07", ev.LocationID)
		require.NotNil(t, ev.DecimalLatitude)
		assert.InDelta(t, 50.44, *ev.DecimalLatitude, 0.0001)
		require.NotNil(t, ev.CoordinateUncertaintyM)
		assert.InDelta(t, 30.0, *ev.CoordinateUncertaintyM, 0.0001)
		assert.Equal(t, cfg.Dataset.License, ev.License)
	})

	t.Run("back-fills coordinates from site reference", func(t *testing.T) {
		lnk := linker.New(cfg)
		raw := []survey.Event{
			{
				LocalID:    "DE130",
				Date:       "2019-05-22",
				LocationID: "J02",
				// GPS fix missing; GPS uncertainty present but stale
				CoordinateUncertaintyM: ptr(10),
			},
		}

		events, err := lnk.BuildEvents(raw, testSites())
		require.NoError(t, err)
		require.Len(t, events, 1)

		ev := events[0]
		require.NotNil(t, ev.DecimalLatitude)
		assert.InDelta(t, 50.507, *ev.DecimalLatitude, 0.0001)
		assert.InDelta(t, -126.267, *ev.DecimalLongitude, 0.0001)
		// imputed coordinates get the coarser configured uncertainty
		require.NotNil(t, ev.CoordinateUncertaintyM)
		assert.InDelta(t, 1852.0, *ev.CoordinateUncertaintyM, 0.0001)
	})

	t.Run("fails on unknown site", func(t *testing.T) {
		lnk := linker.New(cfg)
		raw := []survey.Event{
			{LocalID: "DE131", Date: "2019-05-23", LocationID: "XX99"},
		}

		_, err := lnk.BuildEvents(raw, testSites())
		require.Error(t, err)

		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr)
		assert.Equal(t, errcode.RefSitesError, gnErr.Code)
		assert.Contains(t, gnErr.Err.Error(), "XX99")
	})
}
