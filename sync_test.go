package atlas

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecuadata/atlas/internal/sources"
	"github.com/ecuadata/atlas/internal/store"
	"github.com/ecuadata/atlas/pkg/cache"
	"github.com/ecuadata/atlas/pkg/constants"
	"github.com/ecuadata/atlas/pkg/entities"
	"github.com/ecuadata/atlas/pkg/errors"
	"github.com/ecuadata/atlas/pkg/sparql"
)

// fakeSource serves canned binding rows per facet, optionally failing
// chosen facets, and counts fetches so tests can assert on skip behavior.
type fakeSource struct {
	name   string
	facets map[entities.Type][]sources.Facet
	rows   map[string][]sparql.Binding
	fail   map[string]error

	mu      sync.Mutex
	fetches map[string]int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Facets(t entities.Type) []sources.Facet {
	return f.facets[t]
}

func (f *fakeSource) Fetch(_ context.Context, facet sources.Facet) ([]sparql.Binding, error) {
	f.mu.Lock()
	if f.fetches == nil {
		f.fetches = make(map[string]int)
	}
	f.fetches[facet.Name]++
	f.mu.Unlock()

	if err, ok := f.fail[facet.Name]; ok {
		return nil, err
	}
	return f.rows[facet.Name], nil
}

func (f *fakeSource) fetchCount(facet string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches[facet]
}

func entityBinding(keyVar, qid, labelVar, label string) sparql.Binding {
	return sparql.Binding{
		keyVar:   {Type: "uri", Value: "http://www.wikidata.org/entity/" + qid},
		labelVar: {Type: "literal", Value: label},
	}
}

// newFakeSource covers every entity type with a minimal primary facet.
func newFakeSource() *fakeSource {
	return &fakeSource{
		name: "fake",
		facets: map[entities.Type][]sources.Facet{
			entities.TypeProvinces: {
				{Name: sources.FacetProvincesBase, Primary: true, KeyVar: "provincia"},
				{Name: sources.FacetProvinceCantons, KeyVar: "provincia"},
			},
			entities.TypeParks: {
				{Name: sources.FacetParksBase, Primary: true, KeyVar: "parque"},
			},
			entities.TypeHeritage: {
				{Name: sources.FacetHeritageBase, Primary: true, KeyVar: "sitio"},
			},
			entities.TypePlazas: {
				{Name: sources.FacetPlazasBase, Primary: true, KeyVar: "plaza"},
			},
		},
		rows: map[string][]sparql.Binding{
			sources.FacetProvincesBase: {
				entityBinding("provincia", "Q321863", "provinciaLabel", "Guayas"),
				entityBinding("provincia", "Q475038", "provinciaLabel", "Pichincha"),
			},
			sources.FacetProvinceCantons: {
				entityBinding("provincia", "Q321863", "cantonLabel", "Durán"),
			},
			sources.FacetParksBase: {
				entityBinding("parque", "Q310755", "parqueLabel", "Parque Nacional Yasuní"),
			},
			sources.FacetHeritageBase: {
				entityBinding("sitio", "Q2", "sitioLabel", "Centro Histórico de Quito"),
			},
			sources.FacetPlazasBase: {
				entityBinding("plaza", "Q3", "plazaLabel", "Plaza Grande"),
			},
		},
		fail: map[string]error{},
	}
}

func newTestEngine(t *testing.T, src sources.Source, opts ...Option) Atlas {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "atlas_test.db"))
	require.NoError(t, err)

	base := []Option{
		WithStore(s),
		WithSources(src),
		WithTypeDelay(0),
	}
	eng, err := New(append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = eng.Close() })
	return eng
}

func TestSyncFullRun(t *testing.T) {
	src := newFakeSource()
	eng := newTestEngine(t, src)

	result, err := eng.Sync(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Types, len(entities.AllTypes()))
	assert.False(t, result.HasErrors())

	provinces := result.ByType(entities.TypeProvinces)
	require.NotNil(t, provinces)
	assert.Equal(t, 2, provinces.Created)
	assert.Equal(t, 0, provinces.Updated)
	assert.False(t, provinces.Skipped)

	parks := result.ByType(entities.TypeParks)
	require.NotNil(t, parks)
	assert.Equal(t, 1, parks.Created)
}

func TestSyncSecondRunUpdatesNothingNew(t *testing.T) {
	src := newFakeSource()
	eng := newTestEngine(t, src)
	ctx := context.Background()

	_, err := eng.Sync(ctx)
	require.NoError(t, err)

	// The second forced run refreshes every row in place.
	result, err := eng.Sync(ctx, WithForce())
	require.NoError(t, err)

	provinces := result.ByType(entities.TypeProvinces)
	require.NotNil(t, provinces)
	assert.Equal(t, 0, provinces.Created)
	assert.Equal(t, 2, provinces.Updated)
}

func TestSyncSkipsFreshTypes(t *testing.T) {
	src := newFakeSource()
	eng := newTestEngine(t, src)
	ctx := context.Background()

	_, err := eng.Sync(ctx)
	require.NoError(t, err)
	firstFetches := src.fetchCount(sources.FacetProvincesBase)

	// Rows exist and the bookkeeping timestamp is recent, so nothing refetches.
	result, err := eng.Sync(ctx)
	require.NoError(t, err)

	for _, tr := range result.Types {
		assert.True(t, tr.Skipped, "type %s should be fresh", tr.Type)
		assert.Equal(t, "fresh", tr.Reason)
	}
	assert.Equal(t, firstFetches, src.fetchCount(sources.FacetProvincesBase))
}

func TestSyncEmptyStoreAlwaysDue(t *testing.T) {
	src := newFakeSource()
	bookkeeping := cache.NewMemory()
	eng := newTestEngine(t, src, WithBookkeepingCache(bookkeeping))
	ctx := context.Background()

	// A recorded recent sync normally suppresses the refresh, but the store
	// has zero rows, so the empty-store check wins.
	for _, et := range entities.AllTypes() {
		key := constants.LastSyncKeyPrefix + string(et)
		require.NoError(t, cache.SetJSON(ctx, bookkeeping, key, time.Now(), time.Hour))
	}

	result, err := eng.Sync(ctx)
	require.NoError(t, err)

	provinces := result.ByType(entities.TypeProvinces)
	require.NotNil(t, provinces)
	assert.False(t, provinces.Skipped)
	assert.Equal(t, 2, provinces.Created)
}

func TestSyncStaleTimestampTriggersRefresh(t *testing.T) {
	src := newFakeSource()
	bookkeeping := cache.NewMemory()
	eng := newTestEngine(t, src,
		WithBookkeepingCache(bookkeeping),
		WithSyncInterval(time.Hour))
	ctx := context.Background()

	_, err := eng.Sync(ctx)
	require.NoError(t, err)

	// Age the provinces timestamp past the interval.
	key := constants.LastSyncKeyPrefix + string(entities.TypeProvinces)
	require.NoError(t, cache.SetJSON(ctx, bookkeeping, key, time.Now().Add(-2*time.Hour), time.Hour))

	result, err := eng.SyncType(ctx, entities.TypeProvinces)
	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, 2, result.Updated)
}

func TestSyncTypeRestriction(t *testing.T) {
	src := newFakeSource()
	eng := newTestEngine(t, src)

	result, err := eng.Sync(context.Background(), WithTypes(entities.TypePlazas, entities.TypeParks))
	require.NoError(t, err)
	require.Len(t, result.Types, 2)

	// WithTypes keeps the fixed order, not the argument order.
	assert.Equal(t, entities.TypeParks, result.Types[0].Type)
	assert.Equal(t, entities.TypePlazas, result.Types[1].Type)
}

func TestSyncTypeRejectsUnknownType(t *testing.T) {
	src := newFakeSource()
	eng := newTestEngine(t, src)

	_, err := eng.SyncType(context.Background(), entities.Type("volcanoes"))
	assert.Error(t, err)
}

func TestSyncPrimaryFailureAbortsTypeOnly(t *testing.T) {
	src := newFakeSource()
	src.fail[sources.FacetParksBase] = fmt.Errorf("endpoint returned 503")
	eng := newTestEngine(t, src)

	result, err := eng.Sync(context.Background())
	require.NoError(t, err)

	parks := result.ByType(entities.TypeParks)
	require.NotNil(t, parks)
	require.Len(t, parks.Errors, 1)
	assert.Contains(t, parks.Errors[0], "no primary data")

	// The park failure must not disturb the neighboring types.
	assert.Equal(t, 2, result.ByType(entities.TypeProvinces).Created)
	assert.Equal(t, 1, result.ByType(entities.TypePlazas).Created)
}

func TestSyncSecondaryFailureDegrades(t *testing.T) {
	src := newFakeSource()
	src.fail[sources.FacetProvinceCantons] = fmt.Errorf("timeout")
	eng := newTestEngine(t, src)

	result, err := eng.SyncType(context.Background(), entities.TypeProvinces)
	require.NoError(t, err)

	assert.Empty(t, result.Errors)
	assert.Equal(t, []string{sources.FacetProvinceCantons}, result.Degraded)
	assert.Equal(t, 2, result.Created)
}

func TestSyncNoPrimaryLeavesStoreUntouched(t *testing.T) {
	src := newFakeSource()
	src.rows[sources.FacetHeritageBase] = nil
	eng := newTestEngine(t, src)

	result, err := eng.SyncType(context.Background(), entities.TypeHeritage)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsNoPrimaryData(err))

	stats, err := eng.Stats(context.Background())
	require.NoError(t, err)
	for _, ts := range stats.Types {
		if ts.Type == entities.TypeHeritage {
			assert.Zero(t, ts.Count)
			assert.Nil(t, ts.LastSync)
		}
	}
}

func TestSyncMergesSubdivisions(t *testing.T) {
	src := newFakeSource()
	eng := newTestEngine(t, src)
	ctx := context.Background()

	_, err := eng.Sync(ctx, WithTypes(entities.TypeProvinces))
	require.NoError(t, err)

	// Fetch back through a second engine sharing the same store to confirm
	// the canton landed on the right province.
	a := eng.(*atlas)
	guayas, err := a.store.FindProvinceByKey(ctx, "Q321863")
	require.NoError(t, err)
	subs, err := guayas.SubdivisionList()
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Durán", subs[0].Name)

	pichincha, err := a.store.FindProvinceByKey(ctx, "Q475038")
	require.NoError(t, err)
	subs, err = pichincha.SubdivisionList()
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestSyncConcurrentSameTypeSkips(t *testing.T) {
	src := newFakeSource()
	eng := newTestEngine(t, src)
	a := eng.(*atlas)

	// Hold the provinces lock as a concurrent sync would.
	a.typeLocks[entities.TypeProvinces].Lock()
	defer a.typeLocks[entities.TypeProvinces].Unlock()

	result, err := eng.SyncType(context.Background(), entities.TypeProvinces, WithForce())
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, "already running", result.Reason)
	assert.Zero(t, src.fetchCount(sources.FacetProvincesBase))
}

func TestSyncCanceledContext(t *testing.T) {
	src := newFakeSource()
	eng := newTestEngine(t, src)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eng.Sync(ctx)
	assert.Error(t, err)
}
