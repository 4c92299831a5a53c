package process

import (
	"github.com/ecuadata/atlas/internal/merge"
	"github.com/ecuadata/atlas/internal/sources"
	"github.com/ecuadata/atlas/pkg/entities"
	"github.com/ecuadata/atlas/pkg/errors"
	"github.com/ecuadata/atlas/pkg/extract"
	"github.com/ecuadata/atlas/pkg/sparql"
)

// Heritage converts merged heritage-site records. The category comes from
// keyword matching on the raw type label; the enrichment block consistent
// with that category is flattened into the site's category-specific fields,
// while every matched block is retained verbatim under the nested
// enrichment column. The abstracts index, when given, fills the description
// from DBpedia by normalized-name lookup.
func (p *Processor) Heritage(records []merge.Merged, abstracts *merge.NameIndex) ([]entities.HeritageSite, []error) {
	out := make([]entities.HeritageSite, 0, len(records))
	var errs []error

	now := p.now()
	for _, m := range records {
		if skipNameless(m, "sitioLabel") {
			continue
		}
		name := m.Primary.Get("sitioLabel")

		lat, lon := coords(m.Primary, "coordenadas")
		site := entities.HeritageSite{
			SourceKey:      m.Key,
			Name:           name,
			Category:       DetermineCategory(m.Primary.Get("tipoLabel")),
			TypeLabel:      m.Primary.Get("tipoLabel"),
			Subtype:        m.Primary.Get("subtipoLabel"),
			Description:    m.Primary.Get("sitioDescription"),
			Latitude:       lat,
			Longitude:      lon,
			Province:       m.Primary.Get("provinciaLabel"),
			City:           m.Primary.Get("ciudadLabel"),
			Inception:      optDate(m.Primary, "fechaCreacion"),
			PeriodEnd:      optDate(m.Primary, "fechaFin"),
			Architect:      m.Primary.Get("arquitectoLabel"),
			Style:          m.Primary.Get("estiloLabel"),
			Material:       m.Primary.Get("materialLabel"),
			HeritageStatus: m.Primary.Get("patrimonioLabel"),
			ImageURL:       m.Primary.Get("imagen"),
			WebsiteURL:     m.Primary.Get("website"),
			WikipediaURL:   m.Primary.Get("wikipedia"),
			CommonsURL:     m.Primary.Get("commons"),
			SyncedAt:       now,
		}
		if site.Inception == nil {
			site.Inception = optDate(m.Primary, "fechaInicio")
		}

		if abstracts != nil {
			if row, ok := abstracts.Lookup(name); ok {
				if site.Description == "" {
					site.Description = row.Get("abstract")
				}
				if site.WebsiteURL == "" {
					site.WebsiteURL = row.Get("website")
				}
				if site.Style == "" {
					site.Style = row.Get("estilo")
				}
			}
		}

		blocks := make(map[string]map[string]any)
		if row, ok := m.FirstEnrichment(sources.FacetHeritageUNESCO); ok {
			blocks[entities.BlockUNESCO] = unescoBlock(row)
			if site.Category == entities.CategoryWorldHeritage {
				flattenUNESCO(&site, row)
			}
		}
		if row, ok := m.FirstEnrichment(sources.FacetHeritageArchaeological); ok {
			blocks[entities.BlockArchaeological] = archaeologicalBlock(row)
			if site.Category == entities.CategoryArchaeological {
				flattenArchaeological(&site, row)
			}
		}
		if row, ok := m.FirstEnrichment(sources.FacetHeritageReligious); ok {
			blocks[entities.BlockReligious] = religiousBlock(row)
			if site.Category == entities.CategoryReligious {
				flattenReligious(&site, row)
			}
		}

		if err := site.SetEnrichment(blocks); err != nil {
			errs = append(errs, errors.NewTransformError(string(entities.TypeHeritage), name, "enrichment", err))
			continue
		}

		out = append(out, site)
	}

	return out, errs
}

func flattenUNESCO(site *entities.HeritageSite, row sparql.Binding) {
	site.UNESCOReference = row.Get("numeroUNESCO")
	site.UNESCOInscribed = optDate(row, "fechaInscripcion")
	site.UNESCOCriteria = row.Get("criterios")
	site.UNESCOAreaKm2 = optFloat(row, "superficie")
	site.AnnualVisitors = optInt(row, "visitantesAnuales")
}

func flattenArchaeological(site *entities.HeritageSite, row sparql.Binding) {
	site.Culture = row.Get("culturaLabel")
	site.Period = row.Get("periodoLabel")
	site.Discovered = optDate(row, "fechaDescubrimiento")
	site.Discoverer = row.Get("descubridorLabel")
	site.ElevationM = optFloat(row, "elevacion")
	site.ConservationState = row.Get("estadoLabel")
}

func flattenReligious(site *entities.HeritageSite, row sparql.Binding) {
	site.Denomination = row.Get("religionLabel")
	site.Diocese = row.Get("diocesisLabel")
	site.Dedication = row.Get("dedicacionLabel")
	site.Capacity = optInt(row, "capacidad")
	site.Consecrated = optDate(row, "fechaConstruccion")
}

// The nested blocks mirror the flattened fields so the non-authoritative
// enrichments survive category resolution.

func unescoBlock(row sparql.Binding) map[string]any {
	block := map[string]any{
		"reference": row.Get("numeroUNESCO"),
		"criteria":  row.Get("criterios"),
	}
	if t, ok := extract.Date(row.Get("fechaInscripcion")); ok {
		block["inscribed"] = t.Format("2006-01-02")
	}
	if v, ok := extract.Float(row.Get("superficie")); ok {
		block["area_km2"] = v
	}
	if v, ok := extract.Int(row.Get("visitantesAnuales")); ok {
		block["annual_visitors"] = v
	}
	return block
}

func archaeologicalBlock(row sparql.Binding) map[string]any {
	block := map[string]any{
		"culture":            row.Get("culturaLabel"),
		"period":             row.Get("periodoLabel"),
		"discoverer":         row.Get("descubridorLabel"),
		"conservation_state": row.Get("estadoLabel"),
	}
	if t, ok := extract.Date(row.Get("fechaDescubrimiento")); ok {
		block["discovered"] = t.Format("2006-01-02")
	}
	if v, ok := extract.Float(row.Get("elevacion")); ok {
		block["elevation_m"] = v
	}
	return block
}

func religiousBlock(row sparql.Binding) map[string]any {
	block := map[string]any{
		"denomination": row.Get("religionLabel"),
		"diocese":      row.Get("diocesisLabel"),
		"dedication":   row.Get("dedicacionLabel"),
	}
	if v, ok := extract.Int(row.Get("capacidad")); ok {
		block["capacity"] = v
	}
	if t, ok := extract.Date(row.Get("fechaConstruccion")); ok {
		block["consecrated"] = t.Format("2006-01-02")
	}
	return block
}
