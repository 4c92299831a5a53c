package store

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ecuadata/atlas/pkg/entities"
	"github.com/ecuadata/atlas/pkg/errors"
	"github.com/ecuadata/atlas/pkg/logging"
)

// Open connects to the record store and migrates the entity tables. The
// driver is picked from the DSN: postgres:// selects the Postgres driver,
// anything else is treated as a SQLite path (":memory:" works for tests).
func Open(dsn string) (Store, error) {
	if dsn == "" {
		return nil, errors.NewConfigError("store", "empty database DSN", nil)
	}

	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.WrapPersistence("open", "database", err)
	}

	if err := db.AutoMigrate(
		&entities.Province{},
		&entities.NaturalArea{},
		&entities.HeritageSite{},
		&entities.Plaza{},
	); err != nil {
		return nil, errors.WrapPersistence("migrate", "database", err)
	}

	logging.Debug().Str("dialect", db.Name()).Msg("Record store opened")
	return &gormStore{db: db}, nil
}

// NewWithDB wraps an existing GORM connection, for tests that share one
// in-memory database across helpers.
func NewWithDB(db *gorm.DB) Store {
	return &gormStore{db: db}
}
