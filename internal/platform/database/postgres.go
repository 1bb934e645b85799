package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	_ "github.com/lib/pq"              // registers "postgres"
	"go.uber.org/zap"

	"github.com/ridloal/inventory-service/internal/platform/logger"
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 25
	connMaxLifetime = 5 * time.Minute
	pingTimeout     = 5 * time.Second
)

// Pinger is satisfied by *sql.DB and by NopPinger.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NopPinger reports healthy; used when the store lives in process memory.
type NopPinger struct{}

func (NopPinger) PingContext(context.Context) error { return nil }

// Connect opens a database/sql pool using either the pgx or the lib/pq driver.
func Connect(driverName, dsn string) (*sql.DB, error) {
	if driverName != "pgx" && driverName != "postgres" {
		return nil, fmt.Errorf("unsupported sql driver %q", driverName)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Successfully connected to the database", zap.String("driver", driverName))
	return db, nil
}
