package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NaturalArea is a national park or protected natural area. The province is
// stored as a display name rather than a foreign key because the source only
// supplies an administrative label, never a relational identifier.
type NaturalArea struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SourceKey string    `gorm:"type:text;not null;uniqueIndex" json:"source_key"`

	Name        string     `gorm:"type:text;not null;index" json:"name"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	AreaKm2     *float64   `json:"area_km2,omitempty"`
	Established *time.Time `json:"established,omitempty"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	Province    string     `gorm:"type:text;index" json:"province,omitempty"`

	ImageURL   string `gorm:"type:text" json:"image_url,omitempty"`
	WebsiteURL string `gorm:"type:text" json:"website_url,omitempty"`

	SyncedAt  time.Time `gorm:"not null;index" json:"synced_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (NaturalArea) TableName() string { return "natural_areas" }

func (a *NaturalArea) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// HasCoordinates reports whether the record carries a full coordinate pair.
func (a *NaturalArea) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}
