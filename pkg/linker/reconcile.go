package linker

import (
	"log/slog"

	"github.com/gnames/gndwc/pkg/dwc"
)

// Reconcile is the gate between assembly and serialization. It drops
// events that produced no occurrences (an event without observations is
// not publishable), then verifies primary-key uniqueness in all three
// tables and the resolution of every foreign key against the filtered
// key sets. Each failure reports every offending key.
func (l *linker) Reconcile(
	events []dwc.Event,
	occurrences []dwc.Occurrence,
	measurements []dwc.MeasurementOrFact,
) ([]dwc.Event, []dwc.Occurrence, []dwc.MeasurementOrFact, error) {
	occPerEvent := make(map[string]int)
	for _, o := range occurrences {
		occPerEvent[o.EventID]++
	}

	kept := make([]dwc.Event, 0, len(events))
	for _, e := range events {
		if occPerEvent[e.EventID] == 0 {
			slog.Debug("Dropping event without occurrences",
				"eventID", e.EventID)
			continue
		}
		kept = append(kept, e)
	}

	eventKeys := make(map[string]struct{}, len(kept))
	if dups := duplicates(kept, func(e dwc.Event) string {
		return e.EventID
	}, eventKeys); len(dups) > 0 {
		return nil, nil, nil, DuplicateKeyError("event", dups)
	}

	occKeys := make(map[string]struct{}, len(occurrences))
	if dups := duplicates(occurrences, func(o dwc.Occurrence) string {
		return o.OccurrenceID
	}, occKeys); len(dups) > 0 {
		return nil, nil, nil, DuplicateKeyError("occurrence", dups)
	}

	measKeys := make(map[string]struct{}, len(measurements))
	if dups := duplicates(measurements, func(m dwc.MeasurementOrFact) string {
		return m.MeasurementID
	}, measKeys); len(dups) > 0 {
		return nil, nil, nil, DuplicateKeyError("measurementorfact", dups)
	}

	var dangling []string
	for _, o := range occurrences {
		if _, ok := eventKeys[o.EventID]; !ok {
			dangling = append(dangling, o.EventID)
		}
	}
	if len(dangling) > 0 {
		return nil, nil, nil,
			ReferentialIntegrityError("occurrence", "eventID", dangling)
	}

	dangling = nil
	for _, m := range measurements {
		if _, ok := occKeys[m.OccurrenceID]; !ok {
			dangling = append(dangling, m.OccurrenceID)
		}
	}
	if len(dangling) > 0 {
		return nil, nil, nil,
			ReferentialIntegrityError("measurementorfact", "occurrenceID", dangling)
	}

	dangling = nil
	for _, m := range measurements {
		if _, ok := eventKeys[m.EventID]; !ok {
			dangling = append(dangling, m.EventID)
		}
	}
	if len(dangling) > 0 {
		return nil, nil, nil,
			ReferentialIntegrityError("measurementorfact", "eventID", dangling)
	}

	return kept, occurrences, measurements, nil
}

// duplicates fills keys with the key set of rows and returns, in input
// order, every key that occurred more than once.
func duplicates[T any](
	rows []T,
	key func(T) string,
	keys map[string]struct{},
) []string {
	var dups []string
	reported := make(map[string]struct{})
	for _, r := range rows {
		k := key(r)
		if _, ok := keys[k]; ok {
			if _, seen := reported[k]; !seen {
				reported[k] = struct{}{}
				dups = append(dups, k)
			}
			continue
		}
		keys[k] = struct{}{}
	}
	return dups
}
