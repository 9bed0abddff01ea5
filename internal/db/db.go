package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vietanh2810/youthopia-api/internal/config"
	"github.com/vietanh2810/youthopia-api/internal/repository/dao"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open connects to the configured store and migrates the ledger tables.
func Open(conf *config.StorageConfig) (*gorm.DB, error) {
	switch conf.Driver {
	case DriverSQLite:
		return OpenSQLite(conf.SQLite.Path)
	case DriverPostgres:
		return OpenPostgres(conf.Postgres)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", conf.Driver)
	}
}

func OpenSQLite(path string) (*gorm.DB, error) {
	return open(sqlite.Open(path))
}

func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	return open(postgres.Open(conf.DSN()))
}

func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	return open(postgres.Open(url))
}

func open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	if err = dao.InitTables(db); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	return db, nil
}
