package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridloal/inventory-service/internal/inventory/domain"
	"github.com/ridloal/inventory-service/internal/platform/config"
)

func TestOpenStores(t *testing.T) {
	t.Run("Memory", func(t *testing.T) {
		s, err := openStores(config.DBConfig{Driver: config.DriverMemory})
		require.NoError(t, err)
		defer s.Close()

		assert.NotNil(t, s.Inventory)
		assert.NotNil(t, s.Recalls)
		assert.NoError(t, s.Pinger.PingContext(context.Background()))
	})

	t.Run("SQLite file is usable from the start", func(t *testing.T) {
		dsn := filepath.Join(t.TempDir(), "inventory.db")
		s, err := openStores(config.DBConfig{Driver: config.DriverGormSQLite, DSN: dsn})
		require.NoError(t, err)
		defer s.Close()

		ctx := context.Background()
		saved, err := s.Inventory.Save(ctx, domain.Product{Name: "apple", Price: decimal.RequireFromString("1.5"), Quantity: 10})
		require.NoError(t, err)
		assert.NotZero(t, saved.ID)

		_, err = s.Recalls.Save(ctx, domain.RecalledProduct{Name: "gum"})
		require.NoError(t, err)

		all, err := s.Inventory.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
		assert.NoError(t, s.Pinger.PingContext(ctx))
	})

	t.Run("Unknown driver", func(t *testing.T) {
		_, err := openStores(config.DBConfig{Driver: "oracle"})
		assert.ErrorContains(t, err, "unknown store driver")
	})
}

func TestRootCmdRejectsUnknownDriver(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--store-driver", "oracle"})

	err := cmd.Execute()
	assert.ErrorContains(t, err, `unknown store driver "oracle"`)
}

func TestRootCmdRejectsUnknownDriverFromEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "oracle")

	cmd := newRootCmd()
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	assert.ErrorContains(t, err, `unknown store driver "oracle"`)
}

func TestRootCmdFlagsDefaultFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("STORE_DRIVER", "memory")

	cmd := newRootCmd()
	assert.Equal(t, ":9191", cmd.Flags().Lookup("port").DefValue)
	assert.Equal(t, "memory", cmd.Flags().Lookup("store-driver").DefValue)
}
