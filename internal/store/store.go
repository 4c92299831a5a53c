// Package store persists the canonical entities through GORM. Upserts are
// keyed by source key, batched, and wrapped in one transaction per entity
// type, so a mid-batch failure never leaves a half-applied refresh visible.
package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ecuadata/atlas/pkg/constants"
	"github.com/ecuadata/atlas/pkg/entities"
	"github.com/ecuadata/atlas/pkg/errors"
)

// Store is the record-store interface the sync engine consumes. Rows are
// created or refreshed only through the upsert methods; deletion happens
// only in the cleanup pass.
type Store interface {
	// Count returns the number of persisted rows for an entity type.
	Count(ctx context.Context, t entities.Type) (int64, error)

	// Upsert methods write one type's refreshed records: create when the
	// source key is absent, overwrite all fields when present. Counts are
	// split by that distinction.
	UpsertProvinces(ctx context.Context, rows []entities.Province) (created, updated int, err error)
	UpsertParks(ctx context.Context, rows []entities.NaturalArea) (created, updated int, err error)
	UpsertHeritage(ctx context.Context, rows []entities.HeritageSite) (created, updated int, err error)
	UpsertPlazas(ctx context.Context, rows []entities.Plaza) (created, updated int, err error)

	// Find methods look a record up by source key, returning ErrNotFound
	// when absent.
	FindProvinceByKey(ctx context.Context, key string) (*entities.Province, error)
	FindParkByKey(ctx context.Context, key string) (*entities.NaturalArea, error)
	FindHeritageByKey(ctx context.Context, key string) (*entities.HeritageSite, error)
	FindPlazaByKey(ctx context.Context, key string) (*entities.Plaza, error)

	// Cleanup removes foreign noise and out-of-bounds records, reporting
	// exact per-step counts.
	Cleanup(ctx context.Context) (*CleanupResult, error)

	// Close releases the underlying connection pool.
	Close() error
}

// gormStore implements Store on a GORM connection.
type gormStore struct {
	db *gorm.DB
}

// Count implements Store.
func (s *gormStore) Count(ctx context.Context, t entities.Type) (int64, error) {
	var count int64
	var err error
	switch t {
	case entities.TypeProvinces:
		err = s.db.WithContext(ctx).Model(&entities.Province{}).Count(&count).Error
	case entities.TypeParks:
		err = s.db.WithContext(ctx).Model(&entities.NaturalArea{}).Count(&count).Error
	case entities.TypeHeritage:
		err = s.db.WithContext(ctx).Model(&entities.HeritageSite{}).Count(&count).Error
	case entities.TypePlazas:
		err = s.db.WithContext(ctx).Model(&entities.Plaza{}).Count(&count).Error
	default:
		return 0, errors.NewValidationError("type", t, "unknown entity type")
	}
	if err != nil {
		return 0, errors.WrapPersistence("count", string(t), err)
	}
	return count, nil
}

// upsertRows writes one type's batch inside a single transaction. Existing
// keys are selected once up front to split the batch into creates and
// updates; updates go through a batched ON CONFLICT upsert on the source
// key so the refresh is one write per batch, not one per row.
func upsertRows[T any](ctx context.Context, db *gorm.DB, kind string, rows []T, keyOf func(*T) string, updateCols []string) (int, int, error) {
	if len(rows) == 0 {
		return 0, 0, nil
	}

	keys := make([]string, 0, len(rows))
	for i := range rows {
		keys = append(keys, keyOf(&rows[i]))
	}

	var created, updated int
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []string
		if err := tx.Model(new(T)).Where("source_key IN ?", keys).Pluck("source_key", &existing).Error; err != nil {
			return err
		}
		known := make(map[string]struct{}, len(existing))
		for _, k := range existing {
			known[k] = struct{}{}
		}

		var creates, updates []T
		for i := range rows {
			if _, ok := known[keyOf(&rows[i])]; ok {
				updates = append(updates, rows[i])
			} else {
				creates = append(creates, rows[i])
			}
		}

		if len(creates) > 0 {
			if err := tx.CreateInBatches(&creates, constants.BulkBatchSize).Error; err != nil {
				return err
			}
		}
		if len(updates) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "source_key"}},
				DoUpdates: clause.AssignmentColumns(updateCols),
			}).CreateInBatches(&updates, constants.BulkBatchSize).Error
			if err != nil {
				return err
			}
		}

		created = len(creates)
		updated = len(updates)
		return nil
	})
	if err != nil {
		return 0, 0, errors.WrapPersistence("upsert", kind, err)
	}
	return created, updated, nil
}

// UpsertProvinces implements Store.
func (s *gormStore) UpsertProvinces(ctx context.Context, rows []entities.Province) (int, int, error) {
	return upsertRows(ctx, s.db, string(entities.TypeProvinces), rows,
		func(p *entities.Province) string { return p.SourceKey },
		provinceUpdateCols)
}

// UpsertParks implements Store.
func (s *gormStore) UpsertParks(ctx context.Context, rows []entities.NaturalArea) (int, int, error) {
	return upsertRows(ctx, s.db, string(entities.TypeParks), rows,
		func(a *entities.NaturalArea) string { return a.SourceKey },
		parkUpdateCols)
}

// UpsertHeritage implements Store.
func (s *gormStore) UpsertHeritage(ctx context.Context, rows []entities.HeritageSite) (int, int, error) {
	return upsertRows(ctx, s.db, string(entities.TypeHeritage), rows,
		func(h *entities.HeritageSite) string { return h.SourceKey },
		heritageUpdateCols)
}

// UpsertPlazas implements Store.
func (s *gormStore) UpsertPlazas(ctx context.Context, rows []entities.Plaza) (int, int, error) {
	return upsertRows(ctx, s.db, string(entities.TypePlazas), rows,
		func(p *entities.Plaza) string { return p.SourceKey },
		plazaUpdateCols)
}

func findByKey[T any](ctx context.Context, db *gorm.DB, kind, key string) (*T, error) {
	var row T
	err := db.WithContext(ctx).Where("source_key = ?", key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(kind, key)
		}
		return nil, errors.WrapPersistence("find", kind, err)
	}
	return &row, nil
}

// FindProvinceByKey implements Store.
func (s *gormStore) FindProvinceByKey(ctx context.Context, key string) (*entities.Province, error) {
	return findByKey[entities.Province](ctx, s.db, "province", key)
}

// FindParkByKey implements Store.
func (s *gormStore) FindParkByKey(ctx context.Context, key string) (*entities.NaturalArea, error) {
	return findByKey[entities.NaturalArea](ctx, s.db, "natural area", key)
}

// FindHeritageByKey implements Store.
func (s *gormStore) FindHeritageByKey(ctx context.Context, key string) (*entities.HeritageSite, error) {
	return findByKey[entities.HeritageSite](ctx, s.db, "heritage site", key)
}

// FindPlazaByKey implements Store.
func (s *gormStore) FindPlazaByKey(ctx context.Context, key string) (*entities.Plaza, error) {
	return findByKey[entities.Plaza](ctx, s.db, "plaza", key)
}

// Close implements Store.
func (s *gormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Update column sets for the batched upserts. The primary key, source key,
// and created_at stay untouched; everything else is a full overwrite per the
// refresh semantics.
var (
	provinceUpdateCols = []string{
		"name", "capital", "description", "population", "area_km2",
		"latitude", "longitude", "image_url", "flag_url", "seal_url",
		"wikipedia_url", "website_url", "subdivisions", "synced_at", "updated_at",
	}
	parkUpdateCols = []string{
		"name", "description", "area_km2", "established", "latitude",
		"longitude", "province", "image_url", "website_url", "synced_at", "updated_at",
	}
	heritageUpdateCols = []string{
		"name", "category", "type_label", "subtype", "description",
		"latitude", "longitude", "province", "city", "inception", "period_end",
		"architect", "style", "material", "heritage_status",
		"unesco_reference", "unesco_inscribed", "unesco_criteria",
		"unesco_area_km2", "annual_visitors",
		"culture", "period", "discovered", "discoverer", "elevation_m",
		"conservation_state",
		"denomination", "diocese", "dedication", "capacity", "consecrated",
		"enrichment", "image_url", "website_url", "wikipedia_url", "commons_url",
		"synced_at", "updated_at",
	}
	plazaUpdateCols = []string{
		"name", "city", "description", "latitude", "longitude",
		"image_url", "synced_at", "updated_at",
	}
)
