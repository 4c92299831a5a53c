package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecuadata/atlas/internal/merge"
	"github.com/ecuadata/atlas/internal/sources"
	"github.com/ecuadata/atlas/pkg/normalize"
	"github.com/ecuadata/atlas/pkg/sparql"
)

func literal(v string) sparql.Value {
	return sparql.Value{Type: "literal", Value: v}
}

func provinceRecord(key, name string, extra map[string]string) merge.Merged {
	primary := sparql.Binding{
		"provincia":      {Type: "uri", Value: "http://www.wikidata.org/entity/" + key},
		"provinciaLabel": literal(name),
	}
	for k, v := range extra {
		primary[k] = literal(v)
	}
	return merge.Merged{Key: key, Primary: primary}
}

func TestProvinces(t *testing.T) {
	p := New(normalize.New())

	rec := provinceRecord("Q321863", "Guayas", map[string]string{
		"capitalLabel": "Guayaquil",
		"poblacion":    "4387434",
		"area":         "15430.4",
		"coordenadas":  "Point(-79.9 -2.2)",
		"imagen":       "http://commons.wikimedia.org/wiki/Special:FilePath/guayas.jpg",
		"wiki":         "https://es.wikipedia.org/wiki/Guayas",
	})
	rec.Enrichments = []merge.Enrichment{
		{
			Facet: sources.FacetProvinceCantons,
			Binding: sparql.Binding{
				"cantonLabel":   literal("Guayaquil"),
				"cabeceraLabel": literal("Guayaquil"),
				"poblacion":     literal("2650288"),
			},
		},
		{
			Facet: sources.FacetProvinceCantons,
			Binding: sparql.Binding{
				"cantonLabel": literal("Durán"),
			},
		},
		{
			// Optional bindings repeat rows; duplicates collapse by name.
			Facet: sources.FacetProvinceCantons,
			Binding: sparql.Binding{
				"cantonLabel": literal("Durán"),
				"poblacion":   literal("315724"),
			},
		},
	}

	provinces, errs := p.Provinces([]merge.Merged{rec}, nil, nil)
	require.Empty(t, errs)
	require.Len(t, provinces, 1)

	got := provinces[0]
	assert.Equal(t, "Q321863", got.SourceKey)
	assert.Equal(t, "Guayas", got.Name)
	assert.Equal(t, "Guayaquil", got.Capital)
	require.NotNil(t, got.Population)
	assert.Equal(t, int64(4387434), *got.Population)
	require.NotNil(t, got.Latitude)
	assert.InDelta(t, -2.2, *got.Latitude, 1e-9)
	require.NotNil(t, got.Longitude)
	assert.InDelta(t, -79.9, *got.Longitude, 1e-9)
	assert.False(t, got.SyncedAt.IsZero())

	subs, err := got.SubdivisionList()
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "Guayaquil", subs[0].Name)
	assert.Equal(t, "Durán", subs[1].Name)
	require.NotNil(t, subs[0].Population)
	assert.Equal(t, int64(2650288), *subs[0].Population)
}

func TestProvincesSecondaryEnrichment(t *testing.T) {
	p := New(normalize.New())
	norm := normalize.New()

	info := merge.NewNameIndex(norm, []sparql.Binding{
		{
			"nombre":   literal("Provincia de Pichincha"),
			"abstract": literal("Pichincha es una provincia del norte."),
			"web":      literal("https://pichincha.gob.ec"),
		},
	}, "nombre")
	flags := merge.NewNameIndex(norm, []sparql.Binding{
		{
			"nombre":     literal("Pichincha"),
			"banderaSVG": literal("http://commons.wikimedia.org/flag.svg"),
		},
	}, "nombre")

	rec := provinceRecord("Q475038", "Pichincha", nil)
	provinces, errs := p.Provinces([]merge.Merged{rec}, info, flags)
	require.Empty(t, errs)
	require.Len(t, provinces, 1)

	got := provinces[0]
	assert.Equal(t, "Pichincha es una provincia del norte.", got.Description)
	assert.Equal(t, "https://pichincha.gob.ec", got.WebsiteURL)
	assert.Equal(t, "http://commons.wikimedia.org/flag.svg", got.FlagURL)
}

func TestProvincesWikidataFlagWins(t *testing.T) {
	p := New(normalize.New())
	norm := normalize.New()

	flags := merge.NewNameIndex(norm, []sparql.Binding{
		{"nombre": literal("Azuay"), "banderaSVG": literal("http://dbpedia.org/azuay.svg")},
	}, "nombre")

	rec := provinceRecord("Q220451", "Azuay", map[string]string{
		"bandera": "http://commons.wikimedia.org/azuay_flag.jpg",
	})
	provinces, _ := p.Provinces([]merge.Merged{rec}, nil, flags)
	require.Len(t, provinces, 1)
	assert.Equal(t, "http://commons.wikimedia.org/azuay_flag.jpg", provinces[0].FlagURL)
}

func TestProvincesRejectsNonSVGFallbackFlag(t *testing.T) {
	p := New(normalize.New())
	norm := normalize.New()

	flags := merge.NewNameIndex(norm, []sparql.Binding{
		{"nombre": literal("Loja"), "banderaSVG": literal("Bandera de Loja.png")},
	}, "nombre")

	rec := provinceRecord("Q504260", "Loja", nil)
	provinces, _ := p.Provinces([]merge.Merged{rec}, nil, flags)
	require.Len(t, provinces, 1)
	assert.Empty(t, provinces[0].FlagURL)
}

func TestProvincesSkipsNameless(t *testing.T) {
	p := New(normalize.New())

	records := []merge.Merged{
		{Key: "Q1", Primary: sparql.Binding{"provincia": {Type: "uri", Value: "http://www.wikidata.org/entity/Q1"}}},
		provinceRecord("Q2", "Bolívar", nil),
	}

	provinces, errs := p.Provinces(records, nil, nil)
	require.Empty(t, errs)
	require.Len(t, provinces, 1)
	assert.Equal(t, "Q2", provinces[0].SourceKey)
}
