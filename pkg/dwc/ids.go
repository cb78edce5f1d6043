package dwc

import (
	"fmt"

	"github.com/gnames/gnuuid"
)

// OccurrenceIDFromUFN builds the occurrenceID of a retained, individually
// tagged specimen: the dataset prefix joined with the specimen's UFN.
// The same specimen always yields the same identifier.
func OccurrenceIDFromUFN(prefix, ufn string) string {
	return prefix + ":" + ufn
}

// SyntheticOccurrenceID builds the occurrenceID of an individual that was
// counted but not retained. The counter is run-scoped, monotonic and never
// reused; zero-padding keeps lexicographic and numeric order aligned.
func SyntheticOccurrenceID(prefix string, n int) string {
	return fmt.Sprintf("%s:sf%06d", prefix, n)
}

// MeasurementID derives the primary key of a measurement row from the
// triple that defines it. gnuuid produces a UUID v5, so identical inputs
// always produce the identical identifier and re-runs are idempotent.
func MeasurementID(eventID, measurementType, occurrenceID string) string {
	seed := eventID + "|" + measurementType + "|" + occurrenceID
	return gnuuid.New(seed).String()
}
