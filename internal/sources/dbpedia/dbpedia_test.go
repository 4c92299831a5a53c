package dbpedia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecuadata/atlas/internal/sources"
	"github.com/ecuadata/atlas/pkg/entities"
	"github.com/ecuadata/atlas/pkg/sparql"
)

func TestFacetCatalog(t *testing.T) {
	d := New(sparql.New())

	provinces := d.Facets(entities.TypeProvinces)
	require.Len(t, provinces, 2)
	assert.Equal(t, sources.FacetProvincesInfo, provinces[0].Name)
	assert.Equal(t, sources.FacetProvincesFlags, provinces[1].Name)

	heritage := d.Facets(entities.TypeHeritage)
	require.Len(t, heritage, 1)
	assert.Equal(t, sources.FacetHeritageAbstracts, heritage[0].Name)

	// DBpedia contributes nothing to parks or plazas.
	assert.Empty(t, d.Facets(entities.TypeParks))
	assert.Empty(t, d.Facets(entities.TypePlazas))
}

func TestFacetsAreSecondaryAndNameKeyed(t *testing.T) {
	d := New(sparql.New())

	for _, et := range entities.AllTypes() {
		for _, f := range d.Facets(et) {
			// No DBpedia facet anchors a join or carries a stable key;
			// its rows match primaries by normalized name only.
			assert.False(t, f.Primary, "facet %s", f.Name)
			assert.Empty(t, f.KeyVar, "facet %s", f.Name)
			assert.NotEmpty(t, f.Query, "facet %s", f.Name)
			assert.NotEmpty(t, f.CacheKey, "facet %s", f.Name)
		}
	}
}

func TestQueriesFilterSpanishText(t *testing.T) {
	d := New(sparql.New())

	info := d.Facets(entities.TypeProvinces)[0]
	assert.Contains(t, info.Query, `LANG(?abstract) = "es"`)

	abstracts := d.Facets(entities.TypeHeritage)[0]
	assert.Contains(t, abstracts.Query, `LANG(?abstract) = "es"`)
}
