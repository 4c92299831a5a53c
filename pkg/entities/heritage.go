package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HeritageSite is a cultural heritage site: a UNESCO listing, archaeological
// site, church, museum, monument, and so on. Beyond the flat fields shared by
// every category, the fields of the site's authoritative enrichment block are
// flattened into category-specific columns, while every matched block is also
// retained verbatim under Enrichment.
type HeritageSite struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SourceKey string    `gorm:"type:text;not null;uniqueIndex" json:"source_key"`

	Name        string   `gorm:"type:text;not null;index" json:"name"`
	Category    Category `gorm:"type:text;not null;index" json:"category"`
	TypeLabel   string   `gorm:"type:text" json:"type_label,omitempty"`
	Subtype     string   `gorm:"type:text" json:"subtype,omitempty"`
	Description string   `gorm:"type:text" json:"description,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Province  string   `gorm:"type:text;index" json:"province,omitempty"`
	City      string   `gorm:"type:text" json:"city,omitempty"`

	Inception *time.Time `json:"inception,omitempty"`
	PeriodEnd *time.Time `json:"period_end,omitempty"`

	Architect      string `gorm:"type:text" json:"architect,omitempty"`
	Style          string `gorm:"type:text" json:"style,omitempty"`
	Material       string `gorm:"type:text" json:"material,omitempty"`
	HeritageStatus string `gorm:"type:text" json:"heritage_status,omitempty"`

	// UNESCO enrichment, flattened when Category is world_heritage.
	UNESCOReference string     `gorm:"column:unesco_reference;type:text" json:"unesco_reference,omitempty"`
	UNESCOInscribed *time.Time `gorm:"column:unesco_inscribed" json:"unesco_inscribed,omitempty"`
	UNESCOCriteria  string     `gorm:"column:unesco_criteria;type:text" json:"unesco_criteria,omitempty"`
	UNESCOAreaKm2   *float64   `gorm:"column:unesco_area_km2" json:"unesco_area_km2,omitempty"`
	AnnualVisitors  *int64     `json:"annual_visitors,omitempty"`

	// Archaeological enrichment, flattened when Category is archaeological.
	Culture           string     `gorm:"type:text" json:"culture,omitempty"`
	Period            string     `gorm:"type:text" json:"period,omitempty"`
	Discovered        *time.Time `json:"discovered,omitempty"`
	Discoverer        string     `gorm:"type:text" json:"discoverer,omitempty"`
	ElevationM        *float64   `json:"elevation_m,omitempty"`
	ConservationState string     `gorm:"type:text" json:"conservation_state,omitempty"`

	// Religious enrichment, flattened when Category is religious.
	Denomination string     `gorm:"type:text" json:"denomination,omitempty"`
	Diocese      string     `gorm:"type:text" json:"diocese,omitempty"`
	Dedication   string     `gorm:"type:text" json:"dedication,omitempty"`
	Capacity     *int64     `json:"capacity,omitempty"`
	Consecrated  *time.Time `json:"consecrated,omitempty"`

	// Enrichment keeps every matched block, keyed by block name, so the
	// non-authoritative blocks survive the flattening above.
	Enrichment datatypes.JSON `json:"enrichment,omitempty"`

	ImageURL     string `gorm:"type:text" json:"image_url,omitempty"`
	WebsiteURL   string `gorm:"type:text" json:"website_url,omitempty"`
	WikipediaURL string `gorm:"type:text" json:"wikipedia_url,omitempty"`
	CommonsURL   string `gorm:"type:text" json:"commons_url,omitempty"`

	SyncedAt  time.Time `gorm:"not null;index" json:"synced_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (HeritageSite) TableName() string { return "heritage_sites" }

func (s *HeritageSite) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// HasCoordinates reports whether the record carries a full coordinate pair.
func (s *HeritageSite) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// SetEnrichment replaces the stored enrichment blocks.
func (s *HeritageSite) SetEnrichment(blocks map[string]map[string]any) error {
	if len(blocks) == 0 {
		s.Enrichment = datatypes.JSON([]byte(`{}`))
		return nil
	}
	data, err := json.Marshal(blocks)
	if err != nil {
		return err
	}
	s.Enrichment = datatypes.JSON(data)
	return nil
}

// EnrichmentBlocks decodes the stored enrichment blocks. A missing or empty
// column decodes to an empty map.
func (s *HeritageSite) EnrichmentBlocks() (map[string]map[string]any, error) {
	if len(s.Enrichment) == 0 {
		return map[string]map[string]any{}, nil
	}
	var blocks map[string]map[string]any
	if err := json.Unmarshal(s.Enrichment, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}
