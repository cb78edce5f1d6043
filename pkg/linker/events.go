package linker

import (
	"github.com/gnames/gndwc/pkg/dwc"
	"github.com/gnames/gndwc/pkg/ref"
	"github.com/gnames/gndwc/pkg/survey"
)

// BuildEvents maps raw sampling activities to candidate Darwin Core
// events. eventID comes verbatim from the source's local identifier.
// Events with a missing GPS fix get coordinates back-filled from the site
// reference table; imputed coordinates carry the coarser configured
// uncertainty instead of the GPS one.
//
// The returned set is the full candidate set; events that end up with
// zero occurrences are dropped later, in Reconcile.
func (l *linker) BuildEvents(
	rawEvents []survey.Event,
	sites ref.Sites,
) ([]dwc.Event, error) {
	res := make([]dwc.Event, 0, len(rawEvents))

	for _, r := range rawEvents {
		ev := dwc.Event{
			EventID:                r.LocalID,
			EventDate:              r.Date,
			EventTime:              r.Time,
			DecimalLatitude:        r.Latitude,
			DecimalLongitude:       r.Longitude,
			CoordinateUncertaintyM: r.CoordinateUncertaintyM,
			MinimumDepthM:          r.MinDepthM,
			MaximumDepthM:          r.MaxDepthM,
			LocationID:             r.LocationID,
			Habitat:                r.Habitat,
			SamplingProtocol:       l.cfg.Dataset.SamplingProtocol,
			DatasetName:            l.cfg.Dataset.DatasetName,
			InstitutionCode:        l.cfg.Dataset.InstitutionCode,
			License:                l.cfg.Dataset.License,
			BibliographicCitation:  l.cfg.Dataset.Citation,
		}

		if ev.DecimalLatitude == nil || ev.DecimalLongitude == nil {
			site, ok := sites[r.LocationID]
			if !ok {
				return nil, MissingCoordinatesError(r.LocalID, r.LocationID)
			}
			lat := site.Latitude
			lon := site.Longitude
			uncert := l.cfg.Geo.ImputedUncertaintyM
			ev.DecimalLatitude = &lat
			ev.DecimalLongitude = &lon
			// A site centroid is not a GPS fix.
			ev.CoordinateUncertaintyM = &uncert
		}

		res = append(res, ev)
	}

	return res, nil
}
