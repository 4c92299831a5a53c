package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/ecuadata/atlas/pkg/constants"
	"github.com/ecuadata/atlas/pkg/entities"
	"github.com/ecuadata/atlas/pkg/errors"
	"github.com/ecuadata/atlas/pkg/logging"
)

// CleanupResult reports exactly what the cleanup pass removed.
type CleanupResult struct {
	// EmptyNames counts rows removed for having no display name, per type.
	EmptyNames map[entities.Type]int64 `json:"empty_names"`

	// ForeignProvinces counts provinces removed for carrying a source key
	// outside the official 24-identifier set.
	ForeignProvinces int64 `json:"foreign_provinces"`

	// OutOfBounds counts rows removed for coordinates outside the Ecuador
	// bounding box, per type. Provinces are exempt; their coordinates come
	// from the whitelisted identifiers.
	OutOfBounds map[entities.Type]int64 `json:"out_of_bounds"`
}

// Total sums every removal.
func (r *CleanupResult) Total() int64 {
	total := r.ForeignProvinces
	for _, n := range r.EmptyNames {
		total += n
	}
	for _, n := range r.OutOfBounds {
		total += n
	}
	return total
}

// Cleanup removes rows that fail the data-quality filters: empty names on
// any type, province source keys outside the official set, and coordinates
// outside the Ecuador bounding box for parks, heritage sites, and plazas.
// Each step runs inside one transaction so a crash never leaves the pass
// half-applied.
func (s *gormStore) Cleanup(ctx context.Context) (*CleanupResult, error) {
	result := &CleanupResult{
		EmptyNames:  make(map[entities.Type]int64),
		OutOfBounds: make(map[entities.Type]int64),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		models := map[entities.Type]any{
			entities.TypeProvinces: &entities.Province{},
			entities.TypeParks:     &entities.NaturalArea{},
			entities.TypeHeritage:  &entities.HeritageSite{},
			entities.TypePlazas:    &entities.Plaza{},
		}

		for _, t := range entities.AllTypes() {
			res := tx.Where("name = ''").Delete(models[t])
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				result.EmptyNames[t] = res.RowsAffected
			}
		}

		res := tx.Where("source_key NOT IN ?", entities.KnownProvinceKeys()).Delete(&entities.Province{})
		if res.Error != nil {
			return res.Error
		}
		result.ForeignProvinces = res.RowsAffected

		for _, t := range []entities.Type{entities.TypeParks, entities.TypeHeritage, entities.TypePlazas} {
			res := tx.Where(
				"(latitude IS NOT NULL AND (latitude < ? OR latitude > ?)) OR (longitude IS NOT NULL AND (longitude < ? OR longitude > ?))",
				constants.MinLatitude, constants.MaxLatitude,
				constants.MinLongitude, constants.MaxLongitude,
			).Delete(models[t])
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				result.OutOfBounds[t] = res.RowsAffected
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.WrapPersistence("cleanup", "all", err)
	}

	logging.Ctx(ctx).Info().
		Int64("removed", result.Total()).
		Int64("foreign_provinces", result.ForeignProvinces).
		Msg("Cleanup pass completed")

	return result, nil
}
