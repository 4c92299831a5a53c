package atlas

import (
	"context"
	"fmt"
	"time"

	"github.com/ecuadata/atlas/internal/merge"
	"github.com/ecuadata/atlas/internal/sources"
	"github.com/ecuadata/atlas/pkg/cache"
	"github.com/ecuadata/atlas/pkg/constants"
	"github.com/ecuadata/atlas/pkg/entities"
	"github.com/ecuadata/atlas/pkg/errors"
	"github.com/ecuadata/atlas/pkg/logging"
	"github.com/ecuadata/atlas/pkg/sparql"
)

// TypeResult summarizes one entity type's sync.
type TypeResult struct {
	Type     entities.Type `json:"type"`
	Created  int           `json:"created"`
	Updated  int           `json:"updated"`
	Errors   []string      `json:"errors,omitempty"`
	Degraded []string      `json:"degraded,omitempty"`
	Skipped  bool          `json:"skipped,omitempty"`
	Reason   string        `json:"reason,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Result aggregates a full run, in sync order.
type Result struct {
	Types    []*TypeResult `json:"types"`
	Started  time.Time     `json:"started"`
	Finished time.Time     `json:"finished"`
}

// ByType returns one type's result, or nil if the type was not in the run.
func (r *Result) ByType(t entities.Type) *TypeResult {
	for _, tr := range r.Types {
		if tr.Type == t {
			return tr
		}
	}
	return nil
}

// HasErrors reports whether any type in the run recorded errors.
func (r *Result) HasErrors() bool {
	for _, tr := range r.Types {
		if len(tr.Errors) > 0 {
			return true
		}
	}
	return false
}

// Sync implements Atlas. Types run sequentially in the fixed order, paced by
// the rate limiter so consecutive fetch bursts respect the remote endpoints.
// A type-level failure is recorded in that type's result and the run
// continues; Sync itself only fails when the context dies.
func (a *atlas) Sync(ctx context.Context, opts ...SyncOption) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	options := newSyncOptions(opts...)

	result := &Result{Started: time.Now()}
	logging.Ctx(ctx).Info().
		Int("types", len(options.types)).
		Bool("force", options.force).
		Msg("Starting sync run")

	for _, t := range options.types {
		if err := a.limiter.Wait(ctx); err != nil {
			return result, errors.WrapConfig("sync", err)
		}

		tr, err := a.syncType(ctx, t, options)
		if err != nil {
			// Type-level abort: record and continue with the next type.
			tr = &TypeResult{Type: t, Errors: []string{err.Error()}}
			logging.Ctx(ctx).Error().Err(err).Str("type", string(t)).Msg("Type sync aborted")
		}
		result.Types = append(result.Types, tr)

		if ctx.Err() != nil {
			result.Finished = time.Now()
			return result, errors.ErrCanceled
		}
	}

	result.Finished = time.Now()
	logging.Ctx(ctx).Info().
		Dur("elapsed", result.Finished.Sub(result.Started)).
		Bool("errors", result.HasErrors()).
		Msg("Sync run finished")
	return result, nil
}

// SyncType implements Atlas.
func (a *atlas) SyncType(ctx context.Context, t entities.Type, opts ...SyncOption) (*TypeResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := entities.ParseType(string(t)); err != nil {
		return nil, errors.WrapValidation("type", err)
	}
	return a.syncType(ctx, t, newSyncOptions(opts...))
}

// syncType is the per-type state machine: serialize, staleness check,
// fan-out, primary gate, merge, process, persist, mark complete.
func (a *atlas) syncType(ctx context.Context, t entities.Type, options *syncOptions) (*TypeResult, error) {
	ctx = logging.WithEntityType(ctx, string(t))
	start := time.Now()

	// A concurrent sync of the same type holds the lock: report skipped
	// instead of queueing a duplicate writer. The staleness check alone is
	// not a real guard against two concurrent fetchers.
	lock := a.typeLocks[t]
	if !lock.TryLock() {
		logging.Ctx(ctx).Warn().Msg("Sync already in progress, skipping")
		return &TypeResult{Type: t, Skipped: true, Reason: "already running"}, nil
	}
	defer lock.Unlock()

	if !options.force {
		due, reason, err := a.shouldSync(ctx, t)
		if err != nil {
			return nil, err
		}
		if !due {
			logging.Ctx(ctx).Debug().Str("reason", reason).Msg("Sync not due, skipping")
			return &TypeResult{Type: t, Skipped: true, Reason: reason}, nil
		}
	}

	result := &TypeResult{Type: t}

	// Fan out every facet for this type across all sources.
	var jobs []sources.FetchJob
	for _, src := range a.srcs {
		for _, f := range src.Facets(t) {
			jobs = append(jobs, sources.FetchJob{Source: src, Facet: f})
		}
	}
	fetched := sources.FetchAll(ctx, jobs, a.config.workers, a.config.queryTimeout)

	// Split results: the primary facet anchors the join, key-carrying
	// secondary facets become merge details, name-keyed facets become name
	// indexes. A failed facet degrades to an empty contribution.
	var primary []sparql.Binding
	var primaryKeyVar string
	var details []merge.Detail
	byName := make(map[string][]sparql.Binding)

	for _, fr := range fetched {
		if fr.Err != nil {
			result.Degraded = append(result.Degraded, fr.Facet.Name)
			continue
		}
		switch {
		case fr.Facet.Primary:
			primary = fr.Bindings
			primaryKeyVar = fr.Facet.KeyVar
		case fr.Facet.KeyVar != "":
			details = append(details, merge.Detail{
				Source:   fr.Source,
				Facet:    fr.Facet.Name,
				KeyVar:   fr.Facet.KeyVar,
				Bindings: fr.Bindings,
			})
		default:
			byName[fr.Facet.Name] = fr.Bindings
		}
	}

	// The primary gate: without primary rows there is nothing trustworthy
	// to write, so this type aborts and the store stays untouched.
	if len(primary) == 0 {
		return nil, errors.NewSyncError(string(t), nil, errors.ErrNoPrimaryData)
	}

	merged := merge.Join(primary, primaryKeyVar, details...)

	created, updated, procErrs, err := a.persist(ctx, t, merged, byName)
	if err != nil {
		return nil, err
	}
	result.Created = created
	result.Updated = updated
	for _, e := range procErrs {
		result.Errors = append(result.Errors, e.Error())
	}

	// Completion bookkeeping happens even with record-level errors; only a
	// type-level abort skips it.
	a.markSynced(ctx, t)

	result.Duration = time.Since(start)
	logging.Ctx(ctx).Info().
		Int("created", result.Created).
		Int("updated", result.Updated).
		Int("errors", len(result.Errors)).
		Int("degraded", len(result.Degraded)).
		Dur("elapsed", result.Duration).
		Msg("Type sync completed")

	return result, nil
}

// persist runs the processor for a type and upserts its output.
func (a *atlas) persist(ctx context.Context, t entities.Type, merged []merge.Merged, byName map[string][]sparql.Binding) (int, int, []error, error) {
	switch t {
	case entities.TypeProvinces:
		var info, flags *merge.NameIndex
		if rows, ok := byName[sources.FacetProvincesInfo]; ok {
			info = merge.NewNameIndex(a.norm, rows, "nombre")
		}
		if rows, ok := byName[sources.FacetProvincesFlags]; ok {
			flags = merge.NewNameIndex(a.norm, rows, "nombre")
		}
		records, procErrs := a.processor.Provinces(merged, info, flags)
		created, updated, err := a.store.UpsertProvinces(ctx, records)
		return created, updated, procErrs, err

	case entities.TypeParks:
		records, procErrs := a.processor.Parks(merged)
		created, updated, err := a.store.UpsertParks(ctx, records)
		return created, updated, procErrs, err

	case entities.TypeHeritage:
		var abstracts *merge.NameIndex
		if rows, ok := byName[sources.FacetHeritageAbstracts]; ok {
			abstracts = merge.NewNameIndex(a.norm, rows, "nombre")
		}
		records, procErrs := a.processor.Heritage(merged, abstracts)
		created, updated, err := a.store.UpsertHeritage(ctx, records)
		return created, updated, procErrs, err

	case entities.TypePlazas:
		records, procErrs := a.processor.Plazas(merged)
		created, updated, err := a.store.UpsertPlazas(ctx, records)
		return created, updated, procErrs, err
	}
	return 0, 0, nil, errors.NewValidationError("type", t, "unknown entity type")
}

// shouldSync decides whether a type's refresh is due. The empty-store check
// runs first regardless of bookkeeping: a store with zero rows is always
// due, even right after a recorded success, because nothing else can ever
// repopulate it. Only then do the timestamp checks apply. Re-entrant and
// side-effect-free.
func (a *atlas) shouldSync(ctx context.Context, t entities.Type) (bool, string, error) {
	count, err := a.store.Count(ctx, t)
	if err != nil {
		return false, "", err
	}
	if count == 0 {
		return true, "store empty", nil
	}

	var last time.Time
	if !cache.GetJSON(ctx, a.bookkeeping, lastSyncKey(t), &last) {
		return true, "no recorded sync", nil
	}
	if elapsed := time.Since(last); elapsed > a.config.syncInterval {
		return true, fmt.Sprintf("stale by %s", (elapsed - a.config.syncInterval).Round(time.Second)), nil
	}
	return false, "fresh", nil
}

// markSynced records the completion timestamp and invalidates the derived
// stats cache. Bookkeeping failures are logged, not propagated; the data
// write already succeeded.
func (a *atlas) markSynced(ctx context.Context, t entities.Type) {
	if err := cache.SetJSON(ctx, a.bookkeeping, lastSyncKey(t), time.Now(), constants.BookkeepingCacheTTL); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Failed to record sync completion")
	}
	if err := a.bookkeeping.Delete(ctx, constants.StatsCacheKey); err != nil {
		logging.Ctx(ctx).Debug().Err(err).Msg("Failed to invalidate stats cache")
	}
}

func lastSyncKey(t entities.Type) string {
	return constants.LastSyncKeyPrefix + string(t)
}
