package main

import (
	"fmt"

	"github.com/ridloal/inventory-service/internal/inventory/domain"
	"github.com/ridloal/inventory-service/internal/inventory/repository"
	"github.com/ridloal/inventory-service/internal/platform/config"
	"github.com/ridloal/inventory-service/internal/platform/database"
)

type stores struct {
	Inventory repository.InventoryRepository
	Recalls   repository.RecalledProductRepository
	Pinger    database.Pinger
	closeFn   func() error
}

func (s *stores) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// openStores builds both repositories on one connection for the configured driver.
func openStores(cfg config.DBConfig) (*stores, error) {
	switch cfg.Driver {
	case config.DriverPgx, config.DriverPostgres:
		db, err := database.Connect(cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return &stores{
			Inventory: repository.NewPostgresInventoryRepository(db),
			Recalls:   repository.NewPostgresRecalledProductRepository(db),
			Pinger:    db,
			closeFn:   db.Close,
		}, nil

	case config.DriverGormPostgres, config.DriverGormSQLite:
		dialect := "postgres"
		if cfg.Driver == config.DriverGormSQLite {
			dialect = "sqlite"
		}
		gdb, sqlDB, err := database.ConnectGorm(dialect, cfg.DSN)
		if err != nil {
			return nil, err
		}
		// SQLite files start empty; Postgres schemas are managed outside the service.
		if dialect == "sqlite" {
			if err := gdb.AutoMigrate(&domain.Product{}, &domain.RecalledProduct{}); err != nil {
				sqlDB.Close()
				return nil, fmt.Errorf("failed to create sqlite schema: %w", err)
			}
		}
		return &stores{
			Inventory: repository.NewGormInventoryRepository(gdb),
			Recalls:   repository.NewGormRecalledProductRepository(gdb),
			Pinger:    sqlDB,
			closeFn:   sqlDB.Close,
		}, nil

	case config.DriverMemory:
		return &stores{
			Inventory: repository.NewMemoryInventoryRepository(),
			Recalls:   repository.NewMemoryRecalledProductRepository(),
			Pinger:    database.NopPinger{},
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
