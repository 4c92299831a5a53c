package process

import (
	"strings"

	"github.com/ecuadata/atlas/internal/merge"
	"github.com/ecuadata/atlas/internal/sources"
	"github.com/ecuadata/atlas/pkg/entities"
	"github.com/ecuadata/atlas/pkg/errors"
	"github.com/ecuadata/atlas/pkg/extract"
)

// Provinces converts merged province records. The canton enrichment rows
// become nested subdivision records; the DBpedia info and flag indexes, when
// given, contribute the description, website, and a fallback flag by
// normalized-name lookup.
func (p *Processor) Provinces(records []merge.Merged, info, flags *merge.NameIndex) ([]entities.Province, []error) {
	out := make([]entities.Province, 0, len(records))
	var errs []error

	now := p.now()
	for _, m := range records {
		if skipNameless(m, "provinciaLabel") {
			continue
		}
		name := m.Primary.Get("provinciaLabel")

		lat, lon := coords(m.Primary, "coordenadas")
		province := entities.Province{
			SourceKey:    m.Key,
			Name:         name,
			Capital:      m.Primary.Get("capitalLabel"),
			Population:   optInt(m.Primary, "poblacion"),
			AreaKm2:      optFloat(m.Primary, "area"),
			Latitude:     lat,
			Longitude:    lon,
			ImageURL:     m.Primary.Get("imagen"),
			FlagURL:      m.Primary.Get("bandera"),
			WikipediaURL: m.Primary.Get("wiki"),
			SyncedAt:     now,
		}

		if info != nil {
			if row, ok := info.Lookup(name); ok {
				province.Description = row.Get("abstract")
				province.WebsiteURL = row.Get("web")
			}
		}

		// The Wikidata flag wins; the DBpedia SVG only fills a gap, and
		// only when it is a public SVG link.
		if province.FlagURL == "" && flags != nil {
			if row, ok := flags.Lookup(name); ok {
				svg := row.Get("banderaSVG")
				if strings.HasPrefix(svg, "http") && strings.HasSuffix(strings.ToLower(svg), ".svg") {
					province.FlagURL = svg
				}
			}
		}

		subs := cantonsFrom(m)
		if err := province.SetSubdivisions(subs); err != nil {
			errs = append(errs, errors.NewTransformError(string(entities.TypeProvinces), name, "subdivisions", err))
			continue
		}

		out = append(out, province)
	}

	return out, errs
}

// cantonsFrom builds the subdivision list from the canton enrichment rows,
// deduplicated by canton name since the subdivision query can return one row
// per optional binding combination.
func cantonsFrom(m merge.Merged) []entities.Subdivision {
	rows := m.EnrichmentsFrom(sources.FacetProvinceCantons)
	if len(rows) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(rows))
	subs := make([]entities.Subdivision, 0, len(rows))
	for _, row := range rows {
		name, ok := extract.Text(row.Get("cantonLabel"))
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		lat, lon := coords(row, "coordenadas")
		subs = append(subs, entities.Subdivision{
			Name:        name,
			Seat:        row.Get("cabeceraLabel"),
			Population:  optInt(row, "poblacion"),
			Latitude:    lat,
			Longitude:   lon,
			URL:         row.Get("wiki"),
			Description: row.Get("descripcion"),
		})
	}
	return subs
}
