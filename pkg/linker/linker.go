// Package linker implements the Linker interface: it transforms one
// dataset's raw survey tables into the three validated, cross-referenced
// Darwin Core tables and rejects any structurally inconsistent result
// before serialization.
//
// The package is pure: it performs no I/O. The taxonomic resolver is
// passed in as a collaborator, reference tables arrive preloaded, and
// serialization happens elsewhere only after Reconcile succeeds.
package linker

import (
	"github.com/gnames/gndwc/pkg/config"
	"github.com/gnames/gndwc/pkg/gndwc"
)

// linker implements the gndwc.Linker interface.
type linker struct {
	cfg *config.Config

	// nextSynthetic numbers occurrences of individuals that were counted
	// but not retained. It is monotonic for the whole run and never
	// reused; with stable input ordering this makes re-runs reproduce
	// identical identifiers.
	nextSynthetic int

	warnings []gndwc.Warning
}

// New creates a new Linker. The linker owns run-scoped state (the
// synthetic-identifier counter and the warning list), so one linker
// serves exactly one conversion run.
func New(cfg *config.Config) gndwc.Linker {
	return &linker{cfg: cfg}
}

// Warnings returns the structured warnings accumulated so far.
func (l *linker) Warnings() []gndwc.Warning {
	return l.warnings
}

func (l *linker) warn(kind, name, msg string) {
	l.warnings = append(l.warnings, gndwc.Warning{
		Kind:           kind,
		ScientificName: name,
		Message:        msg,
	})
}
