package database

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ridloal/inventory-service/internal/platform/logger"
)

// ConnectGorm opens a gorm session for "postgres" or "sqlite" and returns the
// underlying pool as well, so callers can ping and close it.
func ConnectGorm(dialect, dsn string) (*gorm.DB, *sql.DB, error) {
	dialector, err := buildDialector(dialect, dsn)
	if err != nil {
		return nil, nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}

	if dialect == "sqlite" {
		// a single writer avoids SQLITE_BUSY and keeps ":memory:" on one connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxIdleConns)
		sqlDB.SetConnMaxLifetime(connMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Successfully connected to the database via gorm", zap.String("dialect", dialect))
	return db, sqlDB, nil
}

func buildDialector(dialect, dsn string) (gorm.Dialector, error) {
	switch dialect {
	case "postgres":
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported gorm dialect %q (supported: postgres, sqlite)", dialect)
	}
}
