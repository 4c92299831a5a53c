package atlas

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecuadata/atlas/internal/sources"
	"github.com/ecuadata/atlas/pkg/entities"
	"github.com/ecuadata/atlas/pkg/sparql"
)

func TestStatsReflectsSyncedCounts(t *testing.T) {
	src := newFakeSource()
	eng := newTestEngine(t, src)
	ctx := context.Background()

	_, err := eng.Sync(ctx)
	require.NoError(t, err)

	stats, err := eng.Stats(ctx)
	require.NoError(t, err)
	require.Len(t, stats.Types, len(entities.AllTypes()))

	byType := make(map[entities.Type]TypeStats)
	for _, ts := range stats.Types {
		byType[ts.Type] = ts
	}

	assert.Equal(t, int64(2), byType[entities.TypeProvinces].Count)
	assert.Equal(t, int64(1), byType[entities.TypeParks].Count)
	require.NotNil(t, byType[entities.TypePlazas].LastSync)
}

func TestStatsServedFromCacheUntilInvalidated(t *testing.T) {
	src := newFakeSource()
	eng := newTestEngine(t, src)
	ctx := context.Background()

	first, err := eng.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, first.Types[0].Count)

	// A completed sync invalidates the cached snapshot.
	_, err = eng.Sync(ctx)
	require.NoError(t, err)

	second, err := eng.Stats(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.Types[0].Count, second.Types[0].Count)

	// Without invalidation the snapshot is reused verbatim.
	third, err := eng.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.GeneratedAt.Unix(), third.GeneratedAt.Unix())
}

func TestCleanupInvalidatesStats(t *testing.T) {
	src := newFakeSource()
	eng := newTestEngine(t, src)
	ctx := context.Background()

	_, err := eng.Sync(ctx)
	require.NoError(t, err)

	before, err := eng.Stats(ctx)
	require.NoError(t, err)

	// Introduce an out-of-bounds park through a forced refresh, then clean.
	src.rows[sources.FacetParksBase] = []sparql.Binding{
		{
			"parque":      {Type: "uri", Value: "http://www.wikidata.org/entity/Q1"},
			"parqueLabel": {Type: "literal", Value: "Yellowstone"},
			"coordenadas": {Type: "literal", Value: "Point(-110.5 44.6)"},
		},
	}
	_, err = eng.Sync(ctx, WithForce(), WithTypes(entities.TypeParks))
	require.NoError(t, err)

	result, err := eng.Cleanup(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.OutOfBounds[entities.TypeParks])

	after, err := eng.Stats(ctx)
	require.NoError(t, err)

	var beforeParks, afterParks int64
	for _, ts := range before.Types {
		if ts.Type == entities.TypeParks {
			beforeParks = ts.Count
		}
	}
	for _, ts := range after.Types {
		if ts.Type == entities.TypeParks {
			afterParks = ts.Count
		}
	}
	assert.Equal(t, int64(1), beforeParks)
	assert.Equal(t, int64(1), afterParks) // Yasuní survived, Yellowstone removed
}
