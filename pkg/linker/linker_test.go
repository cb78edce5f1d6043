package linker_test

import (
	"context"

	"github.com/gnames/gndwc/pkg/config"
	"github.com/gnames/gndwc/pkg/dwc"
	"github.com/gnames/gndwc/pkg/ref"
)

func testConfig() *config.Config {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatasetOccurrencePrefix("hakai-jsp"),
	})
	return cfg
}

func testVocab() *ref.Vocabulary {
	return &ref.Vocabulary{
		Species: map[string]ref.SpeciesEntry{
			"SO": {Code: "SO", ScientificName: "Oncorhynchus nerka"},
			"PI": {Code: "PI", ScientificName: "Oncorhynchus gorbuscha"},
			"SH": {Code: "SH", ScientificName: "Clupea pallasii"},
			"UNKN": {
				Code:           "UNKN",
				ScientificName: "unknown",
				Unknown:        true,
			},
		},
		LifeStages: ref.DefaultLifeStages(),
	}
}

func testSites() ref.Sites {
	return ref.Sites{
		"D07": {LocationID: "D07", Latitude: 50.433, Longitude: -125.998},
		"J02": {LocationID: "J02", Latitude: 50.507, Longitude: -126.267},
	}
}

func testTypes() ref.MeasurementTypes {
	return ref.MeasurementTypes{
		"fork length": {
			Name:   "fork length",
			Unit:   "mm",
			UnitID: "http://vocab.nerc.ac.uk/collection/P06/current/UXMM/",
			TypeID: "http://vocab.nerc.ac.uk/collection/P01/current/OBSINDLX/",
		},
		"standard length": {
			Name:   "standard length",
			Unit:   "mm",
			UnitID: "http://vocab.nerc.ac.uk/collection/P06/current/UXMM/",
		},
		"total length": {
			Name:   "total length",
			Unit:   "mm",
			UnitID: "http://vocab.nerc.ac.uk/collection/P06/current/UXMM/",
		},
		"wet weight": {
			Name:   "wet weight",
			Unit:   "g",
			UnitID: "http://vocab.nerc.ac.uk/collection/P06/current/UGRM/",
		},
		"life stage": {
			Name: "life stage",
			Values: map[string]string{
				"juvenile": "http://vocab.nerc.ac.uk/collection/S11/current/S1127/",
				"adult":    "http://vocab.nerc.ac.uk/collection/S11/current/S1116/",
			},
		},
	}
}

// fakeResolver answers from a canned map and records the queried names.
type fakeResolver struct {
	answers map[string][]dwc.NameMatch
	err     error
	queried []string
	calls   int
}

func (f *fakeResolver) Resolve(
	_ context.Context,
	names []string,
) (map[string][]dwc.NameMatch, error) {
	f.calls++
	f.queried = append(f.queried, names...)
	if f.err != nil {
		return nil, f.err
	}
	res := make(map[string][]dwc.NameMatch, len(names))
	for _, n := range names {
		if mm, ok := f.answers[n]; ok {
			res[n] = mm
		}
	}
	return res, nil
}

func ptr(f float64) *float64 {
	return &f
}
