package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Province is one of Ecuador's 24 administrative provinces, assembled from
// the primary source's base facet plus canton, flag, and info enrichments.
type Province struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SourceKey string    `gorm:"type:text;not null;uniqueIndex" json:"source_key"`

	Name        string   `gorm:"type:text;not null;index" json:"name"`
	Capital     string   `gorm:"type:text" json:"capital,omitempty"`
	Description string   `gorm:"type:text" json:"description,omitempty"`
	Population  *int64   `json:"population,omitempty"`
	AreaKm2     *float64 `json:"area_km2,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`

	ImageURL     string `gorm:"type:text" json:"image_url,omitempty"`
	FlagURL      string `gorm:"type:text" json:"flag_url,omitempty"`
	SealURL      string `gorm:"type:text" json:"seal_url,omitempty"`
	WikipediaURL string `gorm:"type:text" json:"wikipedia_url,omitempty"`
	WebsiteURL   string `gorm:"type:text" json:"website_url,omitempty"`

	Subdivisions datatypes.JSON `json:"subdivisions,omitempty"`

	SyncedAt  time.Time `gorm:"not null;index" json:"synced_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Province) TableName() string { return "provinces" }

func (p *Province) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Subdivision is one canton within a province. Subdivisions are embedded in
// the province row as JSON rather than joined, because the canton facet only
// supplies display attributes, never anything another table would reference.
type Subdivision struct {
	Name        string   `json:"name"`
	Seat        string   `json:"seat,omitempty"`
	Population  *int64   `json:"population,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	URL         string   `json:"url,omitempty"`
	Description string   `json:"description,omitempty"`
}

// SetSubdivisions replaces the embedded canton list.
func (p *Province) SetSubdivisions(subs []Subdivision) error {
	if len(subs) == 0 {
		p.Subdivisions = datatypes.JSON([]byte(`[]`))
		return nil
	}
	data, err := json.Marshal(subs)
	if err != nil {
		return err
	}
	p.Subdivisions = datatypes.JSON(data)
	return nil
}

// SubdivisionList decodes the embedded canton list. A missing or empty
// column decodes to an empty slice.
func (p *Province) SubdivisionList() ([]Subdivision, error) {
	if len(p.Subdivisions) == 0 {
		return nil, nil
	}
	var subs []Subdivision
	if err := json.Unmarshal(p.Subdivisions, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// knownProvinceKeys is the official province list. The sources occasionally
// return historical or disputed divisions under the same administrative
// class; anything outside this set is foreign noise and gets removed by the
// cleanup pass.
var knownProvinceKeys = map[string]struct{}{
	"Q220451":  {}, // Azuay
	"Q261165":  {}, // Bolívar
	"Q321729":  {}, // Cañar
	"Q335471":  {}, // Carchi
	"Q238492":  {}, // Chimborazo
	"Q241140":  {}, // Cotopaxi
	"Q466019":  {}, // El Oro
	"Q335526":  {}, // Esmeraldas
	"Q335464":  {}, // Galápagos
	"Q321863":  {}, // Guayas
	"Q504238":  {}, // Imbabura
	"Q504260":  {}, // Loja
	"Q504666":  {}, // Los Ríos
	"Q549522":  {}, // Manabí
	"Q211900":  {}, // Morona Santiago
	"Q499475":  {}, // Napo
	"Q214814":  {}, // Orellana
	"Q272586":  {}, // Pastaza
	"Q475038":  {}, // Pichincha
	"Q504252":  {}, // Santa Elena
	"Q1124125": {}, // Santo Domingo de los Tsáchilas
	"Q1123208": {}, // Sucumbíos
	"Q499456":  {}, // Tungurahua
	"Q744670":  {}, // Zamora Chinchipe
}

// IsKnownProvinceKey reports whether key belongs to the official set of 24
// province identifiers.
func IsKnownProvinceKey(key string) bool {
	_, ok := knownProvinceKeys[key]
	return ok
}

// KnownProvinceKeys returns the official province identifier set.
func KnownProvinceKeys() []string {
	keys := make([]string, 0, len(knownProvinceKeys))
	for k := range knownProvinceKeys {
		keys = append(keys, k)
	}
	return keys
}
