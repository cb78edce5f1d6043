package linker

import (
	"log/slog"

	"github.com/gnames/gndwc/pkg/dwc"
	"github.com/gnames/gndwc/pkg/gndwc"
	"github.com/gnames/gndwc/pkg/ref"
	"github.com/gnames/gndwc/pkg/survey"
)

// BuildOccurrences assembles the candidate occurrence set from the three
// raw sources, in this order: aggregate catch expansions, UFN-tagged
// specimens, bycatch tallies. The order is part of the contract: the
// synthetic counter follows input order, which keeps re-runs
// byte-identical.
//
// Specimen rows come back annotated with their occurrenceID as
// measurement sources for the later wide-to-long pivot.
func (l *linker) BuildOccurrences(
	catch []survey.AggregateCatch,
	specimens []survey.Specimen,
	bycatch []survey.Bycatch,
	vocab *ref.Vocabulary,
) ([]dwc.Occurrence, []gndwc.MeasurementSource, error) {
	var res []dwc.Occurrence

	occs, err := l.expandCatch(catch, vocab)
	if err != nil {
		return nil, nil, err
	}
	res = append(res, occs...)

	occs, sources, err := l.specimenOccurrences(specimens, vocab)
	if err != nil {
		return nil, nil, err
	}
	res = append(res, occs...)

	occs, err = l.bycatchOccurrences(bycatch, vocab)
	if err != nil {
		return nil, nil, err
	}
	res = append(res, occs...)

	return res, sources, nil
}

// expandCatch turns aggregate per-species counts into one synthetic
// occurrence per individual that was caught but not retained. Retained
// individuals are excluded here because they reappear as UFN-tagged
// specimen rows; counting them twice would inflate the dataset.
func (l *linker) expandCatch(
	catch []survey.AggregateCatch,
	vocab *ref.Vocabulary,
) ([]dwc.Occurrence, error) {
	var res []dwc.Occurrence

	for _, c := range catch {
		name, ok, unknown := vocab.SpeciesName(c.SpeciesCode)
		if !ok {
			return nil, VocabularyMappingError("species", c.SpeciesCode)
		}
		if unknown {
			slog.Debug("Skipping unidentified species in aggregate catch",
				"eventID", c.EventID, "code", c.SpeciesCode)
			continue
		}

		notRetained := c.Total - c.Retained
		if notRetained <= 0 {
			continue
		}

		for range notRetained {
			l.nextSynthetic++
			res = append(res, dwc.Occurrence{
				OccurrenceID: dwc.SyntheticOccurrenceID(
					l.cfg.Dataset.OccurrencePrefix, l.nextSynthetic),
				EventID:          c.EventID,
				ScientificName:   name,
				OccurrenceStatus: dwc.OccurrenceStatus,
				BasisOfRecord:    dwc.BasisOfRecord,
			})
		}
	}

	return res, nil
}

// specimenOccurrences maps UFN-tagged specimens 1:1 onto occurrences with
// deterministic prefix+UFN identifiers, and collects the annotated
// measurement sources.
func (l *linker) specimenOccurrences(
	specimens []survey.Specimen,
	vocab *ref.Vocabulary,
) ([]dwc.Occurrence, []gndwc.MeasurementSource, error) {
	res := make([]dwc.Occurrence, 0, len(specimens))
	sources := make([]gndwc.MeasurementSource, 0, len(specimens))

	for _, s := range specimens {
		name, ok, unknown := vocab.SpeciesName(s.SpeciesCode)
		if !ok {
			return nil, nil, VocabularyMappingError("species", s.SpeciesCode)
		}
		if unknown {
			slog.Debug("Skipping unidentified specimen",
				"eventID", s.EventID, "ufn", s.UFN, "code", s.SpeciesCode)
			continue
		}

		stage, ok := vocab.LifeStage(s.LifeStageCode)
		if !ok {
			return nil, nil, VocabularyMappingError("life stage", s.LifeStageCode)
		}

		id := dwc.OccurrenceIDFromUFN(l.cfg.Dataset.OccurrencePrefix, s.UFN)
		res = append(res, dwc.Occurrence{
			OccurrenceID:     id,
			EventID:          s.EventID,
			ScientificName:   name,
			LifeStage:        stage,
			OccurrenceStatus: dwc.OccurrenceStatus,
			BasisOfRecord:    dwc.BasisOfRecord,
		})
		sources = append(sources, gndwc.MeasurementSource{
			OccurrenceID:     id,
			EventID:          s.EventID,
			ForkLengthMM:     s.ForkLengthMM,
			StandardLengthMM: s.StandardLengthMM,
			TotalLengthMM:    s.TotalLengthMM,
			WeightG:          s.WeightG,
			LifeStage:        stage,
		})
	}

	return res, sources, nil
}

// bycatchOccurrences maps bycatch tallies 1:1 onto occurrences with
// synthetic identifiers and recoded life stages. Individuals explicitly
// marked as unidentifiable are excluded; unmapped codes remain a hard
// error.
func (l *linker) bycatchOccurrences(
	bycatch []survey.Bycatch,
	vocab *ref.Vocabulary,
) ([]dwc.Occurrence, error) {
	var res []dwc.Occurrence

	for _, b := range bycatch {
		name, ok, unknown := vocab.SpeciesName(b.SpeciesCode)
		if !ok {
			return nil, VocabularyMappingError("species", b.SpeciesCode)
		}
		if unknown {
			slog.Debug("Skipping unidentified bycatch",
				"eventID", b.EventID, "code", b.SpeciesCode)
			continue
		}

		stage, ok := vocab.LifeStage(b.LifeStageCode)
		if !ok {
			return nil, VocabularyMappingError("life stage", b.LifeStageCode)
		}

		l.nextSynthetic++
		res = append(res, dwc.Occurrence{
			OccurrenceID: dwc.SyntheticOccurrenceID(
				l.cfg.Dataset.OccurrencePrefix, l.nextSynthetic),
			EventID:          b.EventID,
			ScientificName:   name,
			LifeStage:        stage,
			OccurrenceStatus: dwc.OccurrenceStatus,
			BasisOfRecord:    dwc.BasisOfRecord,
		})
	}

	return res, nil
}
