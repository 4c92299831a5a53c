package atlas

import (
	"context"

	"github.com/ecuadata/atlas/internal/store"
	"github.com/ecuadata/atlas/pkg/constants"
	"github.com/ecuadata/atlas/pkg/logging"
)

// Cleanup implements Atlas. It delegates to the store's transactional
// cleanup pass and invalidates the stats cache, since row counts change.
func (a *atlas) Cleanup(ctx context.Context) (*store.CleanupResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithOperation(ctx, "cleanup")

	result, err := a.store.Cleanup(ctx)
	if err != nil {
		return nil, err
	}

	if err := a.bookkeeping.Delete(ctx, constants.StatsCacheKey); err != nil {
		logging.Ctx(ctx).Debug().Err(err).Msg("Failed to invalidate stats cache")
	}

	return result, nil
}
