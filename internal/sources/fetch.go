package sources

import (
	"context"
	"sync"
	"time"

	"github.com/ecuadata/atlas/pkg/constants"
	"github.com/ecuadata/atlas/pkg/logging"
	"github.com/ecuadata/atlas/pkg/sparql"
)

// FetchJob pairs a facet with the source that owns it.
type FetchJob struct {
	Source Source
	Facet  Facet
}

// FetchResult is one facet's outcome. A failed or timed-out facet carries a
// nil Bindings slice and its error; the sync degrades it to an empty
// contribution instead of aborting.
type FetchResult struct {
	Source   string
	Facet    Facet
	Bindings []sparql.Binding
	Err      error
}

// FetchAll runs every job concurrently through a bounded worker pool, each
// query under its own timeout, and waits for all of them. Results arrive in
// no particular order; callers index them by facet name.
func FetchAll(ctx context.Context, jobs []FetchJob, workers int, timeout time.Duration) []FetchResult {
	if workers <= 0 {
		workers = constants.FacetWorkers
	}
	if timeout <= 0 {
		timeout = constants.DefaultQueryTimeout
	}

	var wg sync.WaitGroup
	resultChan := make(chan FetchResult, len(jobs))
	sem := make(chan struct{}, workers)

	for _, job := range jobs {
		wg.Add(1)
		go func(j FetchJob) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			queryCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			start := time.Now()
			bindings, err := j.Source.Fetch(queryCtx, j.Facet)
			result := FetchResult{
				Source:   j.Source.Name(),
				Facet:    j.Facet,
				Bindings: bindings,
				Err:      err,
			}

			logger := logging.Ctx(ctx)
			if err != nil {
				logger.Warn().
					Str("source", j.Source.Name()).
					Str("facet", j.Facet.Name).
					Dur("elapsed", time.Since(start)).
					Err(err).
					Msg("Facet query failed, degrading to empty")
			} else {
				logger.Debug().
					Str("source", j.Source.Name()).
					Str("facet", j.Facet.Name).
					Int("rows", len(bindings)).
					Dur("elapsed", time.Since(start)).
					Msg("Facet query completed")
			}

			resultChan <- result
		}(job)
	}

	wg.Wait()
	close(resultChan)

	results := make([]FetchResult, 0, len(jobs))
	for result := range resultChan {
		results = append(results, result)
	}
	return results
}
