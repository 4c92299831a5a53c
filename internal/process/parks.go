package process

import (
	"github.com/ecuadata/atlas/internal/merge"
	"github.com/ecuadata/atlas/pkg/entities"
)

// Parks converts merged natural-area records.
func (p *Processor) Parks(records []merge.Merged) ([]entities.NaturalArea, []error) {
	out := make([]entities.NaturalArea, 0, len(records))

	now := p.now()
	for _, m := range records {
		if skipNameless(m, "parqueLabel") {
			continue
		}

		lat, lon := coords(m.Primary, "coordenadas")
		out = append(out, entities.NaturalArea{
			SourceKey:   m.Key,
			Name:        m.Primary.Get("parqueLabel"),
			Description: m.Primary.Get("descripcion"),
			AreaKm2:     optFloat(m.Primary, "area"),
			Established: optDate(m.Primary, "establecido"),
			Latitude:    lat,
			Longitude:   lon,
			Province:    m.Primary.Get("provinciaLabel"),
			ImageURL:    m.Primary.Get("imagen"),
			WebsiteURL:  m.Primary.Get("website"),
			SyncedAt:    now,
		})
	}

	return out, nil
}

// Plazas converts merged plaza records.
func (p *Processor) Plazas(records []merge.Merged) ([]entities.Plaza, []error) {
	out := make([]entities.Plaza, 0, len(records))

	now := p.now()
	for _, m := range records {
		if skipNameless(m, "plazaLabel") {
			continue
		}

		lat, lon := coords(m.Primary, "coordenadas")
		out = append(out, entities.Plaza{
			SourceKey:   m.Key,
			Name:        m.Primary.Get("plazaLabel"),
			City:        m.Primary.Get("ciudadLabel"),
			Description: m.Primary.Get("descripcion"),
			Latitude:    lat,
			Longitude:   lon,
			ImageURL:    m.Primary.Get("imagen"),
			SyncedAt:    now,
		})
	}

	return out, nil
}
