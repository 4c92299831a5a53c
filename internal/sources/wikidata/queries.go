package wikidata

// Query catalog. Every query requests labels with the "es,en" language
// preference so a human-readable name is present whenever the entity has any
// label at all. Results are ordered by label to keep runs comparable.

// queryProvincesBase fetches the 24 official provinces by identifier rather
// than by class membership, so historical or disputed divisions never enter
// the primary list.
const queryProvincesBase = `
PREFIX wd: <http://www.wikidata.org/entity/>
PREFIX wdt: <http://www.wikidata.org/prop/direct/>
PREFIX wikibase: <http://wikiba.se/ontology#>
PREFIX bd: <http://www.bigdata.com/rdf#>
PREFIX schema: <http://schema.org/>

SELECT DISTINCT ?provincia ?provinciaLabel ?capitalLabel ?poblacion ?area ?coordenadas ?imagen ?bandera ?wiki WHERE {
  VALUES ?provincia {
    wd:Q220451 wd:Q261165 wd:Q321729 wd:Q335471 wd:Q238492 wd:Q241140
    wd:Q466019 wd:Q335526 wd:Q335464 wd:Q321863 wd:Q504238 wd:Q504260
    wd:Q504666 wd:Q549522 wd:Q211900 wd:Q499475 wd:Q214814 wd:Q272586
    wd:Q475038 wd:Q504252 wd:Q1124125 wd:Q1123208 wd:Q499456 wd:Q744670
  }

  OPTIONAL { ?provincia wdt:P36 ?capital }
  OPTIONAL { ?provincia wdt:P1082 ?poblacion }
  OPTIONAL { ?provincia wdt:P2046 ?area }
  OPTIONAL { ?provincia wdt:P625 ?coordenadas }
  OPTIONAL { ?provincia wdt:P18 ?imagen }
  OPTIONAL { ?provincia wdt:P41 ?bandera }
  OPTIONAL {
    ?wiki schema:about ?provincia ;
          schema:isPartOf <https://es.wikipedia.org/> .
  }

  SERVICE wikibase:label {
    bd:serviceParam wikibase:language "es,en" .
  }
}
ORDER BY ?provinciaLabel
`

// queryProvinceCantons fetches cantons keyed by the province identifier they
// belong to, so the merger can attach them as subdivision enrichments.
const queryProvinceCantons = `
PREFIX wd: <http://www.wikidata.org/entity/>
PREFIX wdt: <http://www.wikidata.org/prop/direct/>
PREFIX wikibase: <http://wikiba.se/ontology#>
PREFIX bd: <http://www.bigdata.com/rdf#>
PREFIX schema: <http://schema.org/>

SELECT DISTINCT ?provincia ?canton ?cantonLabel ?cabeceraLabel ?poblacion ?coordenadas ?wiki ?descripcion WHERE {
  VALUES ?provincia {
    wd:Q220451 wd:Q261165 wd:Q321729 wd:Q335471 wd:Q238492 wd:Q241140
    wd:Q466019 wd:Q335526 wd:Q335464 wd:Q321863 wd:Q504238 wd:Q504260
    wd:Q504666 wd:Q549522 wd:Q211900 wd:Q499475 wd:Q214814 wd:Q272586
    wd:Q475038 wd:Q504252 wd:Q1124125 wd:Q1123208 wd:Q499456 wd:Q744670
  }

  ?canton wdt:P131 ?provincia .
  ?canton (wdt:P31/wdt:P279*) wd:Q56061 .

  OPTIONAL { ?canton wdt:P36 ?cabecera }
  OPTIONAL { ?canton wdt:P1082 ?poblacion }
  OPTIONAL { ?canton wdt:P625 ?coordenadas }
  OPTIONAL { ?canton schema:description ?descripcion . FILTER(LANG(?descripcion) = "es") }
  OPTIONAL {
    ?wiki schema:about ?canton ;
          schema:isPartOf <https://es.wikipedia.org/> .
  }

  SERVICE wikibase:label {
    bd:serviceParam wikibase:language "es,en" .
  }
}
ORDER BY ?provincia ?cantonLabel
`

// queryParksBase fetches protected natural areas: national parks plus the
// broader protected-area class, in Ecuador.
const queryParksBase = `
PREFIX wd: <http://www.wikidata.org/entity/>
PREFIX wdt: <http://www.wikidata.org/prop/direct/>
PREFIX wikibase: <http://wikiba.se/ontology#>
PREFIX bd: <http://www.bigdata.com/rdf#>
PREFIX schema: <http://schema.org/>

SELECT DISTINCT ?parque ?parqueLabel ?descripcion ?coordenadas ?imagen ?area ?establecido ?provinciaLabel ?website WHERE {
  ?parque wdt:P17 wd:Q736 .
  {
    ?parque (wdt:P31/wdt:P279*) wd:Q46169 .
  } UNION {
    ?parque (wdt:P31/wdt:P279*) wd:Q473972 .
  }

  OPTIONAL { ?parque wdt:P625 ?coordenadas }
  OPTIONAL { ?parque wdt:P18 ?imagen }
  OPTIONAL { ?parque wdt:P2046 ?area }
  OPTIONAL { ?parque wdt:P571 ?establecido }
  OPTIONAL { ?parque wdt:P131 ?provincia }
  OPTIONAL { ?parque wdt:P856 ?website }
  OPTIONAL { ?parque schema:description ?descripcion . FILTER(LANG(?descripcion) = "es") }

  SERVICE wikibase:label {
    bd:serviceParam wikibase:language "es,en" .
  }
}
ORDER BY ?parqueLabel
`

// queryHeritageBase fetches heritage sites across eleven classes. Each UNION
// branch binds a raw category hint; the processor resolves the final
// category from the type label by keyword priority, so overlapping class
// membership stays deterministic.
const queryHeritageBase = `
PREFIX wd: <http://www.wikidata.org/entity/>
PREFIX wdt: <http://www.wikidata.org/prop/direct/>
PREFIX wikibase: <http://wikiba.se/ontology#>
PREFIX bd: <http://www.bigdata.com/rdf#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX schema: <http://schema.org/>

SELECT DISTINCT ?sitio ?sitioLabel ?sitioDescription
       ?tipo ?tipoLabel ?subtipoLabel
       ?coordenadas ?imagen ?website
       ?fechaCreacion ?fechaInicio ?fechaFin
       ?arquitectoLabel ?estiloLabel ?materialLabel
       ?patrimonioLabel ?provinciaLabel ?ciudadLabel
       ?wikipedia ?commons
WHERE {
  ?sitio wdt:P17 wd:Q736 .

  {
    ?sitio wdt:P1435 wd:Q9259 .
  } UNION {
    ?sitio (wdt:P31/wdt:P279*) wd:Q839954 .
  } UNION {
    ?sitio (wdt:P31/wdt:P279*) wd:Q32815 .
  } UNION {
    ?sitio (wdt:P31/wdt:P279*) wd:Q16970 .
  } UNION {
    ?sitio (wdt:P31/wdt:P279*) wd:Q33506 .
  } UNION {
    ?sitio (wdt:P31/wdt:P279*) wd:Q4989906 .
  } UNION {
    ?sitio (wdt:P31/wdt:P279*) wd:Q1785071 .
  } UNION {
    ?sitio (wdt:P31/wdt:P279*) wd:Q16560 .
  } UNION {
    ?sitio (wdt:P31/wdt:P279*) wd:Q7075 .
  } UNION {
    ?sitio (wdt:P31/wdt:P279*) wd:Q24354 .
  } UNION {
    ?sitio (wdt:P31/wdt:P279*) wd:Q37654 .
  }

  ?sitio wdt:P31 ?tipo .
  OPTIONAL { ?sitio wdt:P279 ?subtipo }
  OPTIONAL { ?sitio wdt:P625 ?coordenadas }
  OPTIONAL { ?sitio wdt:P18 ?imagen }
  OPTIONAL { ?sitio wdt:P856 ?website }

  OPTIONAL { ?sitio wdt:P571 ?fechaCreacion }
  OPTIONAL { ?sitio wdt:P580 ?fechaInicio }
  OPTIONAL { ?sitio wdt:P582 ?fechaFin }

  OPTIONAL { ?sitio wdt:P84 ?arquitecto }
  OPTIONAL { ?sitio wdt:P149 ?estilo }
  OPTIONAL { ?sitio wdt:P186 ?material }
  OPTIONAL { ?sitio wdt:P1435 ?patrimonio }

  OPTIONAL { ?sitio wdt:P131 ?ciudad }
  OPTIONAL { ?ciudad wdt:P131 ?provincia }

  OPTIONAL {
    ?wikipedia schema:about ?sitio ;
               schema:isPartOf <https://es.wikipedia.org/> .
  }
  OPTIONAL {
    ?commons schema:about ?sitio ;
             schema:isPartOf <https://commons.wikimedia.org/> .
  }

  FILTER(EXISTS { ?sitio rdfs:label ?label . FILTER(LANG(?label) = "es") })

  SERVICE wikibase:label {
    bd:serviceParam wikibase:language "es,en" .
  }
}
ORDER BY ?sitioLabel
`

// queryHeritageUNESCO fetches inscription qualifiers from the heritage
// designation statement itself, which is where the inscription date and
// criteria live.
const queryHeritageUNESCO = `
PREFIX wd: <http://www.wikidata.org/entity/>
PREFIX wdt: <http://www.wikidata.org/prop/direct/>
PREFIX wikibase: <http://wikiba.se/ontology#>
PREFIX bd: <http://www.bigdata.com/rdf#>
PREFIX p: <http://www.wikidata.org/prop/>
PREFIX ps: <http://www.wikidata.org/prop/statement/>
PREFIX pq: <http://www.wikidata.org/prop/qualifier/>

SELECT DISTINCT ?sitio ?sitioLabel ?fechaInscripcion ?criterios ?numeroUNESCO ?superficie ?visitantesAnuales WHERE {
  ?sitio wdt:P17 wd:Q736 ;
         wdt:P1435 wd:Q9259 .

  OPTIONAL {
    ?sitio p:P1435 ?patrimonioStatement .
    ?patrimonioStatement ps:P1435 wd:Q9259 .
    OPTIONAL { ?patrimonioStatement pq:P585 ?fechaInscripcion }
    OPTIONAL { ?patrimonioStatement pq:P1013 ?criterios }
  }

  OPTIONAL { ?sitio wdt:P2046 ?superficie }
  OPTIONAL { ?sitio wdt:P3134 ?numeroUNESCO }
  OPTIONAL { ?sitio wdt:P1174 ?visitantesAnuales }

  SERVICE wikibase:label {
    bd:serviceParam wikibase:language "es,en" .
  }
}
ORDER BY ?sitioLabel
`

const queryHeritageArchaeological = `
PREFIX wd: <http://www.wikidata.org/entity/>
PREFIX wdt: <http://www.wikidata.org/prop/direct/>
PREFIX wikibase: <http://wikiba.se/ontology#>
PREFIX bd: <http://www.bigdata.com/rdf#>

SELECT DISTINCT ?sitio ?sitioLabel ?culturaLabel ?periodoLabel ?fechaDescubrimiento ?descubridorLabel ?elevacion ?estadoLabel WHERE {
  ?sitio wdt:P17 wd:Q736 .
  ?sitio (wdt:P31/wdt:P279*) wd:Q839954 .

  OPTIONAL { ?sitio wdt:P2596 ?cultura }
  OPTIONAL { ?sitio wdt:P2348 ?periodo }
  OPTIONAL { ?sitio wdt:P575 ?fechaDescubrimiento }
  OPTIONAL { ?sitio wdt:P61 ?descubridor }
  OPTIONAL { ?sitio wdt:P2044 ?elevacion }
  OPTIONAL { ?sitio wdt:P5816 ?estado }

  SERVICE wikibase:label {
    bd:serviceParam wikibase:language "es,en" .
  }
}
ORDER BY ?sitioLabel
`

const queryHeritageReligious = `
PREFIX wd: <http://www.wikidata.org/entity/>
PREFIX wdt: <http://www.wikidata.org/prop/direct/>
PREFIX wikibase: <http://wikiba.se/ontology#>
PREFIX bd: <http://www.bigdata.com/rdf#>

SELECT DISTINCT ?sitio ?sitioLabel ?religionLabel ?diocesisLabel ?dedicacionLabel ?capacidad ?fechaConstruccion WHERE {
  ?sitio wdt:P17 wd:Q736 .

  {
    ?sitio (wdt:P31/wdt:P279*) wd:Q16970 .
  } UNION {
    ?sitio (wdt:P31/wdt:P279*) wd:Q2977 .
  } UNION {
    ?sitio (wdt:P31/wdt:P279*) wd:Q44613 .
  } UNION {
    ?sitio (wdt:P31/wdt:P279*) wd:Q317557 .
  } UNION {
    ?sitio (wdt:P31/wdt:P279*) wd:Q56242215 .
  }

  OPTIONAL { ?sitio wdt:P140 ?religion }
  OPTIONAL { ?sitio wdt:P708 ?diocesis }
  OPTIONAL { ?sitio wdt:P825 ?dedicacion }
  OPTIONAL { ?sitio wdt:P1083 ?capacidad }
  OPTIONAL { ?sitio wdt:P571 ?fechaConstruccion }

  SERVICE wikibase:label {
    bd:serviceParam wikibase:language "es,en" .
  }
}
ORDER BY ?sitioLabel
`

// queryPlazasBase caps its result set; plazas are numerous and the display
// layer only needs a curated sample.
const queryPlazasBase = `
PREFIX wd: <http://www.wikidata.org/entity/>
PREFIX wdt: <http://www.wikidata.org/prop/direct/>
PREFIX wikibase: <http://wikiba.se/ontology#>
PREFIX bd: <http://www.bigdata.com/rdf#>
PREFIX schema: <http://schema.org/>

SELECT DISTINCT ?plaza ?plazaLabel ?ciudadLabel ?descripcion ?coordenadas ?imagen WHERE {
  ?plaza (wdt:P31/wdt:P279*) wd:Q174782 .
  ?plaza wdt:P17 wd:Q736 .

  OPTIONAL { ?plaza wdt:P131 ?ciudad }
  OPTIONAL { ?plaza wdt:P625 ?coordenadas }
  OPTIONAL { ?plaza wdt:P18 ?imagen }
  OPTIONAL { ?plaza schema:description ?descripcion . FILTER(LANG(?descripcion) = "es") }

  SERVICE wikibase:label {
    bd:serviceParam wikibase:language "es,en" .
  }
}
ORDER BY ?plazaLabel
LIMIT 100
`
