package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectRejectsUnknownDriver(t *testing.T) {
	db, err := Connect("mysql", "root@tcp(localhost)/x")
	assert.Nil(t, db)
	assert.ErrorContains(t, err, "unsupported sql driver")
}

func TestConnectGorm(t *testing.T) {
	t.Run("In-memory sqlite", func(t *testing.T) {
		db, sqlDB, err := ConnectGorm("sqlite", ":memory:")
		require.NoError(t, err)
		require.NotNil(t, db)
		defer sqlDB.Close()

		assert.NoError(t, sqlDB.PingContext(context.Background()))
		assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	})

	t.Run("Unsupported dialect", func(t *testing.T) {
		_, _, err := ConnectGorm("sqlserver", "sqlserver://sa@localhost")
		assert.ErrorContains(t, err, "unsupported gorm dialect")
	})
}

func TestNopPinger(t *testing.T) {
	var p Pinger = NopPinger{}
	assert.NoError(t, p.PingContext(context.Background()))
}
