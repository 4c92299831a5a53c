package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecuadata/atlas/pkg/entities"
	"github.com/ecuadata/atlas/pkg/errors"
)

// newTestStore opens a throwaway SQLite database. A file under t.TempDir
// rather than :memory:, because the connection pool would give each pooled
// connection its own empty in-memory database.
func newTestStore(t *testing.T) Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "atlas_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func ptr[T any](v T) *T { return &v }

func TestUpsertSplitsCreatesAndUpdates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := []entities.Province{
		{SourceKey: "Q321863", Name: "Guayas", Capital: "Guayaquil"},
		{SourceKey: "Q475038", Name: "Pichincha", Capital: "Quito"},
	}
	created, updated, err := s.UpsertProvinces(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, 0, updated)

	// Refresh one row, add one new.
	second := []entities.Province{
		{SourceKey: "Q321863", Name: "Guayas", Capital: "Guayaquil", Population: ptr(int64(4387434))},
		{SourceKey: "Q220451", Name: "Azuay", Capital: "Cuenca"},
	}
	created, updated, err = s.UpsertProvinces(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, updated)

	count, err := s.Count(ctx, entities.TypeProvinces)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	got, err := s.FindProvinceByKey(ctx, "Q321863")
	require.NoError(t, err)
	require.NotNil(t, got.Population)
	assert.Equal(t, int64(4387434), *got.Population)
}

func TestUpsertIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rows := []entities.Plaza{
		{SourceKey: "Q1", Name: "Plaza Grande", City: "Quito"},
		{SourceKey: "Q2", Name: "Plaza San Francisco", City: "Quito"},
	}

	created, updated, err := s.UpsertPlazas(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, 0, updated)

	created, updated, err = s.UpsertPlazas(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Equal(t, 2, updated)

	count, err := s.Count(ctx, entities.TypePlazas)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestUpsertEmptyBatch(t *testing.T) {
	s := newTestStore(t)

	created, updated, err := s.UpsertParks(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Zero(t, updated)
}

func TestUpsertPreservesIdentity(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, _, err := s.UpsertHeritage(ctx, []entities.HeritageSite{
		{SourceKey: "Q503772", Name: "Iglesia de la Compañía", Category: entities.CategoryReligious},
	})
	require.NoError(t, err)

	before, err := s.FindHeritageByKey(ctx, "Q503772")
	require.NoError(t, err)

	_, _, err = s.UpsertHeritage(ctx, []entities.HeritageSite{
		{SourceKey: "Q503772", Name: "Iglesia de la Compañía de Jesús", Category: entities.CategoryReligious},
	})
	require.NoError(t, err)

	after, err := s.FindHeritageByKey(ctx, "Q503772")
	require.NoError(t, err)

	// The refresh rewrites fields but keeps the row identity.
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, "Iglesia de la Compañía de Jesús", after.Name)
}

func TestFindMissingReturnsNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.FindParkByKey(context.Background(), "Q404")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestCountUnknownType(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Count(context.Background(), entities.Type("volcanoes"))
	assert.Error(t, err)
}

func TestCleanup(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, _, err := s.UpsertProvinces(ctx, []entities.Province{
		{SourceKey: "Q321863", Name: "Guayas"},
		{SourceKey: "Q99999", Name: "Ciudad de México"}, // not an Ecuadorian province
		{SourceKey: "Q475038", Name: ""},                // nameless
	})
	require.NoError(t, err)

	_, _, err = s.UpsertParks(ctx, []entities.NaturalArea{
		{SourceKey: "Q310755", Name: "Yasuní", Latitude: ptr(-1.0), Longitude: ptr(-76.0)},
		{SourceKey: "Q1", Name: "Yellowstone", Latitude: ptr(44.6), Longitude: ptr(-110.5)},
		{SourceKey: "Q2", Name: "Sin Coordenadas"}, // NULL coordinates stay
	})
	require.NoError(t, err)

	result, err := s.Cleanup(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.EmptyNames[entities.TypeProvinces])
	assert.Equal(t, int64(1), result.ForeignProvinces)
	assert.Equal(t, int64(1), result.OutOfBounds[entities.TypeParks])
	assert.Equal(t, int64(3), result.Total())

	// Survivors: the valid province, the in-bounds park, the NULL-coord park.
	count, err := s.Count(ctx, entities.TypeProvinces)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = s.Count(ctx, entities.TypeParks)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCleanupEmptyStore(t *testing.T) {
	s := newTestStore(t)

	result, err := s.Cleanup(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Total())
}
