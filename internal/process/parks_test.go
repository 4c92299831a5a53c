package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecuadata/atlas/internal/merge"
	"github.com/ecuadata/atlas/pkg/normalize"
	"github.com/ecuadata/atlas/pkg/sparql"
)

func TestParks(t *testing.T) {
	p := New(normalize.New())

	rec := merge.Merged{
		Key: "Q310755",
		Primary: sparql.Binding{
			"parque":         {Type: "uri", Value: "http://www.wikidata.org/entity/Q310755"},
			"parqueLabel":    literal("Parque Nacional Yasuní"),
			"descripcion":    literal("parque nacional del Ecuador"),
			"area":           literal("10227.36"),
			"establecido":    literal("1979-07-26T00:00:00Z"),
			"coordenadas":    literal("Point(-76.0 -1.0)"),
			"provinciaLabel": literal("Orellana"),
		},
	}

	parks, errs := p.Parks([]merge.Merged{rec})
	require.Empty(t, errs)
	require.Len(t, parks, 1)

	got := parks[0]
	assert.Equal(t, "Q310755", got.SourceKey)
	assert.Equal(t, "Parque Nacional Yasuní", got.Name)
	assert.Equal(t, "Orellana", got.Province)
	require.NotNil(t, got.AreaKm2)
	assert.InDelta(t, 10227.36, *got.AreaKm2, 1e-9)
	require.NotNil(t, got.Established)
	assert.Equal(t, 1979, got.Established.Year())
	require.NotNil(t, got.Latitude)
	assert.InDelta(t, -1.0, *got.Latitude, 1e-9)
}

func TestParksOptionalFieldsAbsent(t *testing.T) {
	p := New(normalize.New())

	rec := merge.Merged{
		Key: "Q1",
		Primary: sparql.Binding{
			"parqueLabel": literal("Reserva Sin Datos"),
		},
	}

	parks, errs := p.Parks([]merge.Merged{rec})
	require.Empty(t, errs)
	require.Len(t, parks, 1)

	got := parks[0]
	assert.Nil(t, got.AreaKm2)
	assert.Nil(t, got.Established)
	assert.Nil(t, got.Latitude)
	assert.Nil(t, got.Longitude)
}

func TestPlazas(t *testing.T) {
	p := New(normalize.New())

	records := []merge.Merged{
		{
			Key: "Q2many",
			Primary: sparql.Binding{
				"plaza":       {Type: "uri", Value: "http://www.wikidata.org/entity/Q2many"},
				"plazaLabel":  literal("Plaza Grande"),
				"ciudadLabel": literal("Quito"),
				"coordenadas": literal("Point(-78.5123 -0.2202)"),
			},
		},
		{
			// No label: dropped, not errored.
			Key:     "Q3",
			Primary: sparql.Binding{"plaza": {Type: "uri", Value: "http://www.wikidata.org/entity/Q3"}},
		},
	}

	plazas, errs := p.Plazas(records)
	require.Empty(t, errs)
	require.Len(t, plazas, 1)

	got := plazas[0]
	assert.Equal(t, "Plaza Grande", got.Name)
	assert.Equal(t, "Quito", got.City)
	require.NotNil(t, got.Longitude)
	assert.InDelta(t, -78.5123, *got.Longitude, 1e-9)
}
