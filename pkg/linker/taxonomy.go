package linker

import (
	"context"
	"fmt"
	"sort"

	"github.com/gnames/gndwc/pkg/dwc"
	"github.com/gnames/gndwc/pkg/gndwc"
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
)

// EnrichTaxonomy joins authorship, rank and a persistent authority
// identifier onto every occurrence. The resolver is called once per run
// with the sorted set of distinct names; sorting makes the request and
// therefore the run deterministic.
//
// Ambiguity policy: with 'first' (the default) the first candidate is
// kept and a structured warning recorded; with 'strict' an ambiguous name
// fails the run. Zero matches leave the enrichment fields empty and
// record a warning. A resolver failure aborts the run; partially
// enriched output is never acceptable.
func (l *linker) EnrichTaxonomy(
	ctx context.Context,
	occurrences []dwc.Occurrence,
	resolver gndwc.Resolver,
) ([]dwc.Occurrence, error) {
	names := distinctNames(occurrences)
	if len(names) == 0 {
		return occurrences, nil
	}

	candidates, err := resolver.Resolve(ctx, names)
	if err != nil {
		return nil, err
	}

	prsCfg := gnparser.NewConfig(gnparser.OptCode(nomcode.Zoological))
	prs := gnparser.New(prsCfg)

	// Deduplicate to exactly one match per name before the join, so a
	// one-to-many answer cannot multiply occurrence rows.
	matched := make(map[string]dwc.NameMatch, len(names))
	for _, name := range names {
		cands := candidates[name]
		switch {
		case len(cands) == 0:
			l.warn("unmatched_name", name,
				"resolver returned no match; enrichment fields left empty")
			continue
		case len(cands) > 1:
			if l.cfg.Resolver.MatchPolicy == "strict" {
				return nil, AmbiguousMatchError(name, len(cands))
			}
			l.warn("ambiguous_match", name, fmt.Sprintf(
				"resolver returned %d candidates; keeping the first",
				len(cands)))
		}

		m := cands[0]
		if m.Rank == "" {
			m.Rank = rankFromParser(prs, name)
		}
		matched[name] = m
	}

	res := make([]dwc.Occurrence, len(occurrences))
	for i, o := range occurrences {
		if m, ok := matched[o.ScientificName]; ok {
			o.ScientificNameID = m.ScientificNameID
			o.ScientificNameAuthorship = m.Authorship
			o.TaxonRank = m.Rank
		}
		res[i] = o
	}

	return res, nil
}

// distinctNames collects the set of scientific names present, sorted so
// the batched lookup is issued in a stable order.
func distinctNames(occurrences []dwc.Occurrence) []string {
	seen := make(map[string]struct{})
	var res []string
	for _, o := range occurrences {
		if o.ScientificName == "" {
			continue
		}
		if _, ok := seen[o.ScientificName]; ok {
			continue
		}
		seen[o.ScientificName] = struct{}{}
		res = append(res, o.ScientificName)
	}
	sort.Strings(res)
	return res
}

// rankFromParser infers the rank from gnparser cardinality when the
// resolver omits it: 1 uninomial is a genus here, 2 a species, 3 a
// subspecies. Unparseable names keep an empty rank.
func rankFromParser(prs gnparser.GNparser, name string) string {
	parsed := prs.ParseName(name)
	if !parsed.Parsed {
		return ""
	}
	switch parsed.Cardinality {
	case 1:
		return "Genus"
	case 2:
		return "Species"
	case 3:
		return "Subspecies"
	}
	return ""
}
