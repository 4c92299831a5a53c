package atlas

import (
	"context"
	"time"

	"github.com/ecuadata/atlas/pkg/cache"
	"github.com/ecuadata/atlas/pkg/constants"
	"github.com/ecuadata/atlas/pkg/entities"
	"github.com/ecuadata/atlas/pkg/logging"
)

// TypeStats is one entity type's dashboard line.
type TypeStats struct {
	Type     entities.Type `json:"type"`
	Count    int64         `json:"count"`
	LastSync *time.Time    `json:"last_sync,omitempty"`
}

// Stats is the per-type dashboard summary, cached briefly because the
// presentation layer polls it far more often than it changes.
type Stats struct {
	Types       []TypeStats `json:"types"`
	GeneratedAt time.Time   `json:"generated_at"`
}

// Stats implements Atlas. Results are served from the bookkeeping cache
// when fresh; every completed type sync and cleanup pass invalidates them.
func (a *atlas) Stats(ctx context.Context) (*Stats, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var cached Stats
	if cache.GetJSON(ctx, a.bookkeeping, constants.StatsCacheKey, &cached) {
		return &cached, nil
	}

	stats := &Stats{GeneratedAt: time.Now()}
	for _, t := range entities.AllTypes() {
		count, err := a.store.Count(ctx, t)
		if err != nil {
			return nil, err
		}
		ts := TypeStats{Type: t, Count: count}

		var last time.Time
		if cache.GetJSON(ctx, a.bookkeeping, lastSyncKey(t), &last) {
			ts.LastSync = &last
		}
		stats.Types = append(stats.Types, ts)
	}

	if err := cache.SetJSON(ctx, a.bookkeeping, constants.StatsCacheKey, stats, constants.StatsCacheTTL); err != nil {
		logging.Ctx(ctx).Debug().Err(err).Msg("Failed to cache stats")
	}

	return stats, nil
}
