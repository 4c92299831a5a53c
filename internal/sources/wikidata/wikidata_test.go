package wikidata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecuadata/atlas/internal/sources"
	"github.com/ecuadata/atlas/pkg/entities"
	"github.com/ecuadata/atlas/pkg/sparql"
)

func TestFacetCatalog(t *testing.T) {
	w := New(sparql.New())

	tests := []struct {
		entityType entities.Type
		facets     int
		primary    string
		keyVar     string
	}{
		{entities.TypeProvinces, 2, sources.FacetProvincesBase, "provincia"},
		{entities.TypeParks, 1, sources.FacetParksBase, "parque"},
		{entities.TypeHeritage, 4, sources.FacetHeritageBase, "sitio"},
		{entities.TypePlazas, 1, sources.FacetPlazasBase, "plaza"},
	}

	for _, tt := range tests {
		t.Run(string(tt.entityType), func(t *testing.T) {
			facets := w.Facets(tt.entityType)
			require.Len(t, facets, tt.facets)

			primaries := 0
			for _, f := range facets {
				assert.NotEmpty(t, f.Name)
				assert.NotEmpty(t, f.CacheKey)
				assert.NotEmpty(t, f.Query)
				// Wikidata rows always carry the entity URI.
				assert.NotEmpty(t, f.KeyVar)
				if f.Primary {
					primaries++
					assert.Equal(t, tt.primary, f.Name)
					assert.Equal(t, tt.keyVar, f.KeyVar)
				}
			}
			assert.Equal(t, 1, primaries, "exactly one primary facet per type")
		})
	}

	assert.Empty(t, w.Facets(entities.Type("volcanoes")))
}

func TestProvinceQueryPinsKnownKeys(t *testing.T) {
	w := New(sparql.New())

	var base sources.Facet
	for _, f := range w.Facets(entities.TypeProvinces) {
		if f.Primary {
			base = f
		}
	}

	// The base query enumerates the fixed province set rather than
	// discovering provinces by class, so stray entities never enter.
	for _, key := range entities.KnownProvinceKeys() {
		assert.Contains(t, base.Query, "wd:"+key)
	}
}

func TestHeritageQueriesShareKeyVar(t *testing.T) {
	w := New(sparql.New())

	for _, f := range w.Facets(entities.TypeHeritage) {
		assert.Equal(t, "sitio", f.KeyVar, "facet %s", f.Name)
		assert.Contains(t, f.Query, "?sitio")
	}
}

func TestQueriesRequestSpanishLabels(t *testing.T) {
	w := New(sparql.New())

	for _, et := range entities.AllTypes() {
		for _, f := range w.Facets(et) {
			if strings.Contains(f.Query, "SERVICE wikibase:label") {
				assert.Contains(t, f.Query, `"es`, "facet %s should prefer Spanish labels", f.Name)
			}
		}
	}
}

func TestFetchHitsConfiguredEndpoint(t *testing.T) {
	var queried string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queried = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/sparql-results+json")
		_, _ = w.Write([]byte(`{"head":{"vars":[]},"results":{"bindings":[]}}`))
	}))
	defer server.Close()

	w := New(sparql.New(), WithEndpoint(server.URL))
	facets := w.Facets(entities.TypePlazas)
	require.Len(t, facets, 1)

	_, err := w.Fetch(context.Background(), facets[0])
	require.NoError(t, err)
	assert.Equal(t, facets[0].Query, queried)
}
