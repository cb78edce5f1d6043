package linker_test

import (
	"context"
	"testing"

	"github.com/gnames/gndwc/pkg/dwc"
	"github.com/gnames/gndwc/pkg/linker"
	"github.com/gnames/gndwc/pkg/survey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two conversions of the same input must produce identical tables,
// identifiers included.
func TestRunIdempotence(t *testing.T) {
	rawEvents := []survey.Event{
		{LocalID: "DE129", Date: "2019-05-21", LocationID: "D07"},
		{LocalID: "DE130", Date: "2019-05-22", LocationID: "J02",
			Latitude: ptr(50.51), Longitude: ptr(-126.27)},
	}
	catch := []survey.AggregateCatch{
		{EventID: "DE129", SpeciesCode: "SO", Total: 5, Retained: 1},
		{EventID: "DE130", SpeciesCode: "PI", Total: 2, Retained: 0},
	}
	specimens := []survey.Specimen{
		{UFN: "U10332", EventID: "DE129", SpeciesCode: "SO",
			LifeStageCode: "J", ForkLengthMM: ptr(112), WeightG: ptr(17.4)},
	}
	bycatch := []survey.Bycatch{
		{EventID: "DE130", SpeciesCode: "SH", LifeStageCode: "A"},
	}
	answers := map[string][]dwc.NameMatch{
		"Oncorhynchus nerka": {{
			Authorship:       "(Walbaum, 1792)",
			Rank:             "Species",
			ScientificNameID: "urn:lsid:marinespecies.org:taxname:254569",
		}},
		"Oncorhynchus gorbuscha": {{
			Authorship:       "(Walbaum, 1792)",
			Rank:             "Species",
			ScientificNameID: "urn:lsid:marinespecies.org:taxname:127186",
		}},
		"Clupea pallasii": {{
			Authorship:       "Valenciennes, 1847",
			Rank:             "Species",
			ScientificNameID: "urn:lsid:marinespecies.org:taxname:293568",
		}},
	}

	run := func() ([][]string, [][]string, [][]string) {
		lnk := linker.New(testConfig())

		events, err := lnk.BuildEvents(rawEvents, testSites())
		require.NoError(t, err)

		occs, sources, err := lnk.BuildOccurrences(
			catch, specimens, bycatch, testVocab(),
		)
		require.NoError(t, err)

		occs, err = lnk.EnrichTaxonomy(
			context.Background(), occs, &fakeResolver{answers: answers},
		)
		require.NoError(t, err)

		meas, err := lnk.BuildMeasurements(sources, testTypes())
		require.NoError(t, err)

		events, occs, meas, err = lnk.Reconcile(events, occs, meas)
		require.NoError(t, err)

		var evRows, occRows, measRows [][]string
		for _, e := range events {
			evRows = append(evRows, e.Row())
		}
		for _, o := range occs {
			occRows = append(occRows, o.Row())
		}
		for _, m := range meas {
			measRows = append(measRows, m.Row())
		}
		return evRows, occRows, measRows
	}

	ev1, occ1, meas1 := run()
	ev2, occ2, meas2 := run()

	assert.Equal(t, ev1, ev2)
	assert.Equal(t, occ1, occ2)
	assert.Equal(t, meas1, meas2)

	// 4 unretained sockeye + 2 pinks + 1 specimen + 1 bycatch
	assert.Len(t, occ1, 8)
	// fork length, weight, life stage for the single specimen
	assert.Len(t, meas1, 3)
	assert.Len(t, ev1, 2)
}
