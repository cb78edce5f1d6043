/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>
*/
package cmd

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gndwc/internal/ioarchive"
	"github.com/gnames/gndwc/internal/ioref"
	"github.com/gnames/gndwc/internal/ioresolve"
	"github.com/gnames/gndwc/internal/iosurvey"
	"github.com/gnames/gndwc/pkg/config"
	"github.com/gnames/gndwc/pkg/linker"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// getBuildCmd returns the build command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getBuildCmd() *cobra.Command {
	var (
		eventsPath    string
		catchPath     string
		specimensPath string
		bycatchPath   string
		dbPath        string
		refsDir       string
		outDir        string
		prefix        string
		jobs          int
		matchPolicy   string
	)

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Convert raw survey tables to Darwin Core tables",
		Long: `Convert raw survey tables to the three related Darwin Core tables.

Input is either one CSV export per table (--events, --catch,
--specimens, optionally --bycatch) or a single SQLite field database
(--db). Reference tables are read from the --refs directory:

  sites.yaml              site coordinates for coordinate back-fill
  vocabulary.yaml         species and life-stage code mappings
  measurement_types.yaml  measurement-type dictionary

The output files event.csv, occurrence.csv and measurementorfact.csv
are written to --out only after all identifier and
referential-integrity checks pass.

Examples:
  # Convert CSV exports
  gndwc build --events events.csv --catch catch.csv \
    --specimens specimens.csv --bycatch bycatch.csv \
    --refs ./refs --out ./dwca

  # Convert a SQLite field database, strict name matching
  gndwc build --db survey.sqlite --refs ./refs --match-policy strict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if prefix != "" {
				cfg.Update([]config.Option{
					config.OptDatasetOccurrencePrefix(prefix),
				})
			}
			if jobs > 0 {
				cfg.Update([]config.Option{config.OptJobsNumber(jobs)})
			}
			if matchPolicy != "" {
				cfg.Update([]config.Option{
					config.OptResolverMatchPolicy(matchPolicy),
				})
			}

			err := runBuild(buildPaths{
				events:    eventsPath,
				catch:     catchPath,
				specimens: specimensPath,
				bycatch:   bycatchPath,
				db:        dbPath,
				refs:      refsDir,
				out:       outDir,
			})
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	buildCmd.Flags().StringVar(&eventsPath, "events", "",
		"CSV export of the seine events table")
	buildCmd.Flags().StringVar(&catchPath, "catch", "",
		"CSV export of the aggregate catch table")
	buildCmd.Flags().StringVar(&specimensPath, "specimens", "",
		"CSV export of the specimen measurements table")
	buildCmd.Flags().StringVar(&bycatchPath, "bycatch", "",
		"CSV export of the bycatch table (optional)")
	buildCmd.Flags().StringVar(&dbPath, "db", "",
		"SQLite field database holding all survey tables")
	buildCmd.Flags().StringVarP(&refsDir, "refs", "r", "",
		"directory with the reference YAML tables")
	buildCmd.Flags().StringVarP(&outDir, "out", "o", ".",
		"output directory for the Darwin Core tables")
	buildCmd.Flags().StringVarP(&prefix, "prefix", "p", "",
		"occurrenceID prefix scoping identifiers to this dataset")
	buildCmd.Flags().IntVarP(&jobs, "jobs", "j", 0,
		"number of concurrent name-resolution batches")
	buildCmd.Flags().StringVar(&matchPolicy, "match-policy", "",
		"resolver ambiguity policy: 'first' or 'strict'")

	buildCmd.MarkFlagRequired("refs")

	return buildCmd
}

// buildPaths bundles the input and output locations of one run.
type buildPaths struct {
	events, catch, specimens, bycatch string
	db                                string
	refs                              string
	out                               string
}

func runBuild(paths buildPaths) error {
	if paths.db == "" &&
		(paths.events == "" || paths.catch == "" || paths.specimens == "") {
		return errors.New(
			"either --db or all of --events, --catch, --specimens are required",
		)
	}
	if paths.db != "" && paths.events != "" {
		return errors.New("--db and --events are mutually exclusive")
	}

	start := time.Now()

	refs, err := ioref.Load(paths.refs)
	if err != nil {
		return err
	}

	var input *iosurvey.Input
	if paths.db != "" {
		input, err = iosurvey.ReadDB(paths.db)
	} else {
		input, err = iosurvey.ReadCSV(iosurvey.Paths{
			Events:    paths.events,
			Catch:     paths.catch,
			Specimens: paths.specimens,
			Bycatch:   paths.bycatch,
		})
	}
	if err != nil {
		return err
	}

	slog.Info("Survey tables loaded",
		"events", len(input.Events),
		"catch", len(input.Catch),
		"specimens", len(input.Specimens),
		"bycatch", len(input.Bycatch),
	)

	lnk := linker.New(cfg)

	events, err := lnk.BuildEvents(input.Events, refs.Sites)
	if err != nil {
		return err
	}

	occurrences, sources, err := lnk.BuildOccurrences(
		input.Catch, input.Specimens, input.Bycatch, refs.Vocabulary,
	)
	if err != nil {
		return err
	}

	resolver := ioresolve.New(cfg)
	occurrences, err = lnk.EnrichTaxonomy(
		context.Background(), occurrences, resolver,
	)
	if err != nil {
		return err
	}

	measurements, err := lnk.BuildMeasurements(sources, refs.MeasurementTypes)
	if err != nil {
		return err
	}

	events, occurrences, measurements, err = lnk.Reconcile(
		events, occurrences, measurements,
	)
	if err != nil {
		return err
	}

	for _, w := range lnk.Warnings() {
		slog.Warn(w.Message,
			"kind", w.Kind, "scientificName", w.ScientificName)
	}

	if err = ioarchive.Write(
		paths.out, events, occurrences, measurements,
	); err != nil {
		return err
	}

	gn.Info(
		"Wrote <em>%s</em> events, <em>%s</em> occurrences, "+
			"<em>%s</em> measurements to <em>%s</em> in %s.",
		humanize.Comma(int64(len(events))),
		humanize.Comma(int64(len(occurrences))),
		humanize.Comma(int64(len(measurements))),
		paths.out,
		gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return nil
}
