package linker

import (
	"strconv"

	"github.com/gnames/gndwc/pkg/dwc"
	"github.com/gnames/gndwc/pkg/gndwc"
	"github.com/gnames/gndwc/pkg/ref"
)

// Measurement-type names as they appear in the dictionary and in the
// serialized measurementType column.
const (
	TypeForkLength     = "fork length"
	TypeStandardLength = "standard length"
	TypeTotalLength    = "total length"
	TypeWeight         = "wet weight"
	TypeLifeStage      = "life stage"
)

// BuildMeasurements pivots the fixed wide measurement columns of specimen
// rows to long form: one source row with K non-missing measurement cells
// produces exactly K rows. Missing values are dropped, never emitted as
// empty-value rows.
//
// measurementID derives deterministically from (eventID, measurementType,
// occurrenceID), so identical inputs always yield identical identifiers.
func (l *linker) BuildMeasurements(
	sources []gndwc.MeasurementSource,
	types ref.MeasurementTypes,
) ([]dwc.MeasurementOrFact, error) {
	var res []dwc.MeasurementOrFact

	for _, src := range sources {
		cells := []struct {
			typeName string
			value    string
		}{
			{TypeForkLength, numCell(src.ForkLengthMM)},
			{TypeStandardLength, numCell(src.StandardLengthMM)},
			{TypeTotalLength, numCell(src.TotalLengthMM)},
			{TypeWeight, numCell(src.WeightG)},
			{TypeLifeStage, src.LifeStage},
		}

		for _, cell := range cells {
			if cell.value == "" {
				continue
			}

			entry, ok := types[cell.typeName]
			if !ok {
				return nil, VocabularyMappingError(
					"measurement type", cell.typeName)
			}

			res = append(res, dwc.MeasurementOrFact{
				MeasurementID: dwc.MeasurementID(
					src.EventID, cell.typeName, src.OccurrenceID),
				OccurrenceID:      src.OccurrenceID,
				EventID:           src.EventID,
				MeasurementType:   cell.typeName,
				MeasurementTypeID: entry.TypeID,
				MeasurementValue:  cell.value,
				// Only categorical types with a vocabulary mapping get a
				// value identifier.
				MeasurementValueID: types.ValueID(cell.typeName, cell.value),
				MeasurementUnit:    entry.Unit,
				MeasurementUnitID:  entry.UnitID,
			})
		}
	}

	return res, nil
}

func numCell(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
