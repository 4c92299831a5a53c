package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plaza is a public square, the smallest of the synced entity kinds.
type Plaza struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SourceKey string    `gorm:"type:text;not null;uniqueIndex" json:"source_key"`

	Name        string   `gorm:"type:text;not null;index" json:"name"`
	City        string   `gorm:"type:text" json:"city,omitempty"`
	Description string   `gorm:"type:text" json:"description,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`

	ImageURL string `gorm:"type:text" json:"image_url,omitempty"`

	SyncedAt  time.Time `gorm:"not null;index" json:"synced_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Plaza) TableName() string { return "plazas" }

func (p *Plaza) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// HasCoordinates reports whether the record carries a full coordinate pair.
func (p *Plaza) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}
