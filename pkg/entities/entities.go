// Package entities defines the canonical persisted shapes for the four
// entity kinds the sync engine maintains: provinces, natural areas
// (parks and reserves), heritage sites, and plazas. Every record is keyed
// by the stable identifier its source knowledge graph assigned (the
// Wikidata QID); display names are never used as upsert keys because they
// collide and get re-translated between runs.
package entities

import (
	"fmt"

	"github.com/ecuadata/atlas/pkg/errors"
)

// Type identifies one of the synced entity kinds. The values double as the
// CLI's --type argument and as the suffix of sync-bookkeeping cache keys.
type Type string

const (
	TypeProvinces Type = "provinces"
	TypeParks     Type = "parks"
	TypeHeritage  Type = "heritage"
	TypePlazas    Type = "plazas"
)

// AllTypes returns every entity type in sync order. Provinces come first so
// that the province names parks and sites denormalize against are fresh.
func AllTypes() []Type {
	return []Type{TypeProvinces, TypeParks, TypeHeritage, TypePlazas}
}

// ParseType converts a user-supplied type name into a Type.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeProvinces, TypeParks, TypeHeritage, TypePlazas:
		return Type(s), nil
	}
	return "", fmt.Errorf("%w: unknown entity type %q (want provinces, parks, heritage, or plazas)", errors.ErrInvalidInput, s)
}

// Category is the closed classification set for heritage sites. The record
// processor assigns exactly one per site by keyword priority.
type Category string

const (
	CategoryWorldHeritage  Category = "world_heritage"
	CategoryArchaeological Category = "archaeological"
	CategoryReligious      Category = "religious"
	CategoryMuseum         Category = "museum"
	CategoryFortification  Category = "fortification"
	CategoryPalace         Category = "palace"
	CategoryLibrary        Category = "library"
	CategoryTheater        Category = "theater"
	CategoryMarket         Category = "market"
	CategoryHistoricCenter Category = "historic_center"
	CategoryMonument       Category = "monument"
)

// AllCategories returns the closed category set.
func AllCategories() []Category {
	return []Category{
		CategoryWorldHeritage,
		CategoryArchaeological,
		CategoryReligious,
		CategoryMuseum,
		CategoryFortification,
		CategoryPalace,
		CategoryLibrary,
		CategoryTheater,
		CategoryMarket,
		CategoryHistoricCenter,
		CategoryMonument,
	}
}

// Enrichment block names as stored in HeritageSite.Enrichment. Each block
// holds the fields one secondary facet contributed.
const (
	BlockUNESCO         = "unesco"
	BlockArchaeological = "archaeological"
	BlockReligious      = "religious"
)
