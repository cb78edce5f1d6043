package cmd

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gndwc/internal/ioarchive"
	"github.com/gnames/gndwc/pkg/config"
	"github.com/gnames/gndwc/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdExists(t *testing.T) {
	require.NotNil(t, rootCmd)
	assert.Equal(t, "gndwc", rootCmd.Use)
	assert.Contains(t, rootCmd.Version, "version:")
}

func TestGetBuildCmd(t *testing.T) {
	cmd := getBuildCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "build", cmd.Use)

	for _, flag := range []string{
		"events", "catch", "specimens", "bycatch",
		"db", "refs", "out", "prefix", "jobs", "match-policy",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), flag)
	}
}

// A run whose occurrences reference an event absent from the events
// table must fail in Reconcile and leave the output directory without
// any of the three files.
func TestRunBuildDanglingEventWritesNothing(t *testing.T) {
	// nothing in the fixture matches, the run proceeds on warnings
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
	))
	defer srv.Close()

	cfg = config.New()
	cfg.Update([]config.Option{
		config.OptResolverBaseURL(srv.URL),
		config.OptJobsNumber(1),
	})

	outDir := filepath.Join(t.TempDir(), "out")
	err := runBuild(buildPaths{
		events:    filepath.Join("testdata", "events.csv"),
		catch:     filepath.Join("testdata", "catch_dangling.csv"),
		specimens: filepath.Join("testdata", "specimens.csv"),
		refs:      filepath.Join("testdata", "refs"),
		out:       outDir,
	})
	require.Error(t, err)

	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.ReferentialIntegrityError, gnErr.Code)
	assert.Contains(t, gnErr.Err.Error(), "GHOST")

	for _, f := range []string{
		ioarchive.EventFile, ioarchive.OccurrenceFile, ioarchive.MeasurementFile,
	} {
		assert.NoFileExists(t, filepath.Join(outDir, f))
	}
	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr),
		"a failed run never creates the output directory")
}

func TestRunBuildValidation(t *testing.T) {
	t.Run("requires an input source", func(t *testing.T) {
		err := runBuild(buildPaths{refs: "refs", out: "out"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--db")
	})

	t.Run("rejects db together with csv input", func(t *testing.T) {
		err := runBuild(buildPaths{
			db:     "survey.sqlite",
			events: "events.csv",
			refs:   "refs",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mutually exclusive")
	})
}
