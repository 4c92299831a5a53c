package dbpedia

// Query catalog. DBpedia labels are language-filtered instead of going
// through a label service; Spanish is preferred for prose fields, English
// accepted for entity names since the English chapter has the best coverage
// of Ecuadorian administrative divisions.

// queryProvincesInfo fetches the Spanish abstract, population density, and
// official website per province. Joined to the primary list by normalized
// name.
const queryProvincesInfo = `
PREFIX dbo: <http://dbpedia.org/ontology/>
PREFIX dbr: <http://dbpedia.org/resource/>
PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX foaf: <http://xmlns.com/foaf/0.1/>

SELECT DISTINCT ?provincia ?nombre ?abstract ?densidad ?web WHERE {
  ?provincia rdf:type dbo:AdministrativeRegion ;
             dbo:country dbr:Ecuador ;
             rdfs:label ?nombre .
  FILTER(LANG(?nombre) = "en")
  FILTER(CONTAINS(LCASE(STR(?provincia)), "province"))

  OPTIONAL { ?provincia dbo:abstract ?abstract . FILTER(LANG(?abstract) = "es") }
  OPTIONAL { ?provincia dbo:populationDensity ?densidad }
  OPTIONAL { ?provincia foaf:homepage ?web }
}
ORDER BY ?nombre
`

// queryProvinceFlags samples one SVG depiction per province. The sample
// collapses the multiple depictions DBpedia often carries into a single
// deterministic pick.
const queryProvinceFlags = `
PREFIX dbo: <http://dbpedia.org/ontology/>
PREFIX dbr: <http://dbpedia.org/resource/>
PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX foaf: <http://xmlns.com/foaf/0.1/>

SELECT ?provincia ?nombre (SAMPLE(?svg) AS ?banderaSVG) WHERE {
  ?provincia rdf:type dbo:AdministrativeRegion ;
             dbo:country dbr:Ecuador ;
             rdfs:label ?nombre .
  FILTER(LANG(?nombre) = "en")
  FILTER(CONTAINS(LCASE(STR(?provincia)), "province"))

  OPTIONAL {
    ?provincia foaf:depiction ?svg .
    FILTER(CONTAINS(LCASE(STR(?svg)), ".svg"))
  }
}
GROUP BY ?provincia ?nombre
ORDER BY ?nombre
`

// queryHeritageAbstracts fetches Spanish abstracts and complementary detail
// for Ecuadorian heritage places. Joined by normalized name.
const queryHeritageAbstracts = `
PREFIX dbo: <http://dbpedia.org/ontology/>
PREFIX dbr: <http://dbpedia.org/resource/>
PREFIX dbp: <http://dbpedia.org/property/>
PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX foaf: <http://xmlns.com/foaf/0.1/>
PREFIX geo: <http://www.w3.org/2003/01/geo/wgs84_pos#>

SELECT DISTINCT ?sitio ?nombre ?abstract ?thumbnail ?website ?estilo ?arquitecto ?lat ?long ?visitantes WHERE {
  {
    ?sitio dbo:country dbr:Ecuador ;
           rdf:type dbo:HistoricPlace .
  } UNION {
    ?sitio dbo:country dbr:Ecuador ;
           rdf:type dbo:Museum .
  } UNION {
    ?sitio dbo:country dbr:Ecuador ;
           rdf:type dbo:ReligiousBuilding .
  } UNION {
    ?sitio dbo:country dbr:Ecuador ;
           rdf:type dbo:Monument .
  } UNION {
    ?sitio dbo:location ?location .
    ?location dbo:country dbr:Ecuador .
    ?sitio rdf:type dbo:WorldHeritageSite .
  }

  ?sitio rdfs:label ?nombre .
  FILTER(LANG(?nombre) = "es" || LANG(?nombre) = "en")

  OPTIONAL { ?sitio dbo:abstract ?abstract . FILTER(LANG(?abstract) = "es") }
  OPTIONAL { ?sitio dbo:thumbnail ?thumbnail }
  OPTIONAL { ?sitio foaf:homepage ?website }
  OPTIONAL { ?sitio dbp:architecturalStyle ?estilo }
  OPTIONAL { ?sitio dbp:architect ?arquitecto }
  OPTIONAL { ?sitio geo:lat ?lat }
  OPTIONAL { ?sitio geo:long ?long }
  OPTIONAL { ?sitio dbo:visitorsPerYear ?visitantes }
}
ORDER BY ?nombre
`
