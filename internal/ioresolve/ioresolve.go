// Package ioresolve implements the Resolver interface against the WoRMS
// (World Register of Marine Species) REST API.
//
// The run's distinct names are split into bounded batches; batches run
// concurrently up to the configured jobs number, which bounds the load
// put on the service. There is no retry loop and no cache across runs: a
// failed request fails the run, and every run sees one consistent
// snapshot of the authority data.
package ioresolve

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gndwc/pkg/config"
	"github.com/gnames/gndwc/pkg/dwc"
	"github.com/gnames/gndwc/pkg/gndwc"
	"golang.org/x/sync/errgroup"
)

// aphiaRecord is one WoRMS taxon record as returned by
// AphiaRecordsByMatchNames.
type aphiaRecord struct {
	AphiaID        int    `json:"AphiaID"`
	ScientificName string `json:"scientificname"`
	Authority      string `json:"authority"`
	Rank           string `json:"rank"`
	Status         string `json:"status"`
	LSID           string `json:"lsid"`
}

// resolver implements the gndwc.Resolver interface.
type resolver struct {
	cfg    *config.Config
	client *http.Client
}

// New creates a WoRMS-backed Resolver.
func New(cfg *config.Config) gndwc.Resolver {
	return &resolver{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.Resolver.TimeoutSec) * time.Second,
		},
	}
}

// Resolve issues one batched lookup per run and returns 0..N candidate
// matches per queried name, keyed by the query string.
func (r *resolver) Resolve(
	ctx context.Context,
	names []string,
) (map[string][]dwc.NameMatch, error) {
	batches := chunkNames(names, r.cfg.Resolver.BatchSize)

	bar := pb.Full.Start(len(batches))
	bar.Set("prefix", "Resolving names ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	res := make(map[string][]dwc.NameMatch, len(names))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.JobsNumber)

	for _, batch := range batches {
		g.Go(func() error {
			matches, err := r.resolveBatch(ctx, batch)
			if err != nil {
				return err
			}
			mu.Lock()
			for name, mm := range matches {
				res[name] = mm
			}
			mu.Unlock()
			bar.Increment()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// resolveBatch queries AphiaRecordsByMatchNames for one batch. The answer
// is positional: the i-th inner array holds the candidates of the i-th
// queried name.
func (r *resolver) resolveBatch(
	ctx context.Context,
	batch []string,
) (map[string][]dwc.NameMatch, error) {
	vals := url.Values{}
	for _, name := range batch {
		vals.Add("scientificnames[]", name)
	}
	reqURL := fmt.Sprintf("%s/AphiaRecordsByMatchNames?%s",
		r.cfg.Resolver.BaseURL, vals.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, RequestError(reqURL, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, RequestError(reqURL, err)
	}
	defer resp.Body.Close()

	// WoRMS answers 204 when nothing in the batch matched.
	if resp.StatusCode == http.StatusNoContent {
		return map[string][]dwc.NameMatch{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, ResponseError(reqURL, resp.StatusCode)
	}

	var records [][]aphiaRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, DecodeError(reqURL, err)
	}
	if len(records) != len(batch) {
		return nil, DecodeError(reqURL, fmt.Errorf(
			"got %d answers for %d names", len(records), len(batch)))
	}

	res := make(map[string][]dwc.NameMatch, len(batch))
	for i, name := range batch {
		for _, rec := range records[i] {
			res[name] = append(res[name], dwc.NameMatch{
				ScientificName:   rec.ScientificName,
				Authorship:       rec.Authority,
				Rank:             rec.Rank,
				ScientificNameID: rec.LSID,
			})
		}
	}
	return res, nil
}

func chunkNames(names []string, size int) [][]string {
	if size < 1 {
		size = 1
	}
	var res [][]string
	for len(names) > size {
		res = append(res, names[:size])
		names = names[size:]
	}
	if len(names) > 0 {
		res = append(res, names)
	}
	return res
}
