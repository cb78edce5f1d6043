package linker_test

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gndwc/pkg/dwc"
	"github.com/gnames/gndwc/pkg/errcode"
	"github.com/gnames/gndwc/pkg/linker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile(t *testing.T) {
	cfg := testConfig()

	events := []dwc.Event{
		{EventID: "e1"},
		{EventID: "e2"},
	}
	occurrences := []dwc.Occurrence{
		{OccurrenceID: "o1", EventID: "e1"},
		{OccurrenceID: "o2", EventID: "e1"},
	}
	measurements := []dwc.MeasurementOrFact{
		{MeasurementID: "m1", OccurrenceID: "o1", EventID: "e1"},
	}

	t.Run("drops events without occurrences", func(t *testing.T) {
		lnk := linker.New(cfg)

		evs, occs, meas, err := lnk.Reconcile(events, occurrences, measurements)
		require.NoError(t, err)

		require.Len(t, evs, 1, "e2 has no occurrences")
		assert.Equal(t, "e1", evs[0].EventID)
		assert.Len(t, occs, 2)
		assert.Len(t, meas, 1)
	})

	t.Run("reports every dangling eventID", func(t *testing.T) {
		lnk := linker.New(cfg)
		occs := []dwc.Occurrence{
			{OccurrenceID: "o1", EventID: "e1"},
			{OccurrenceID: "o2", EventID: "ghost1"},
			{OccurrenceID: "o3", EventID: "ghost2"},
		}

		_, _, _, err := lnk.Reconcile(events, occs, nil)
		require.Error(t, err)

		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr)
		assert.Equal(t, errcode.ReferentialIntegrityError, gnErr.Code)
		assert.Contains(t, gnErr.Err.Error(), "ghost1")
		assert.Contains(t, gnErr.Err.Error(), "ghost2")
	})

	t.Run("reports dangling measurement references", func(t *testing.T) {
		lnk := linker.New(cfg)
		meas := []dwc.MeasurementOrFact{
			{MeasurementID: "m1", OccurrenceID: "nobody", EventID: "e1"},
		}

		_, _, _, err := lnk.Reconcile(events, occurrences, meas)
		require.Error(t, err)

		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr)
		assert.Equal(t, errcode.ReferentialIntegrityError, gnErr.Code)
		assert.Contains(t, gnErr.Err.Error(), "nobody")
	})

	t.Run("reports duplicate occurrence keys", func(t *testing.T) {
		lnk := linker.New(cfg)
		occs := []dwc.Occurrence{
			{OccurrenceID: "o1", EventID: "e1"},
			{OccurrenceID: "o1", EventID: "e1"},
			{OccurrenceID: "o2", EventID: "e1"},
			{OccurrenceID: "o2", EventID: "e1"},
		}

		_, _, _, err := lnk.Reconcile(events, occs, nil)
		require.Error(t, err)

		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr)
		assert.Equal(t, errcode.DuplicateKeyError, gnErr.Code)
		assert.Contains(t, gnErr.Err.Error(), "o1")
		assert.Contains(t, gnErr.Err.Error(), "o2")
	})

	t.Run("reports duplicate event keys", func(t *testing.T) {
		lnk := linker.New(cfg)
		evs := []dwc.Event{{EventID: "e1"}, {EventID: "e1"}}

		_, _, _, err := lnk.Reconcile(evs, occurrences, nil)
		require.Error(t, err)

		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr)
		assert.Equal(t, errcode.DuplicateKeyError, gnErr.Code)
	})

	t.Run("empty tables pass", func(t *testing.T) {
		lnk := linker.New(cfg)

		evs, occs, meas, err := lnk.Reconcile(nil, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, evs)
		assert.Empty(t, occs)
		assert.Empty(t, meas)
	})
}
