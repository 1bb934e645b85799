package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ridloal/inventory-service/internal/inventory/domain"
	"github.com/ridloal/inventory-service/internal/platform/database"
)

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, sqlDB, err := database.ConnectGorm("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&domain.Product{}, &domain.RecalledProduct{}))
	return db
}

func TestGormInventoryRepository(t *testing.T) {
	ctx := context.TODO()
	repo := NewGormInventoryRepository(newSQLiteDB(t))

	apple, err := repo.Save(ctx, domain.Product{Name: "apple", Price: decimal.RequireFromString("1.50"), Quantity: 10})
	require.NoError(t, err)
	assert.NotZero(t, apple.ID)

	cookies, err := repo.Save(ctx, domain.Product{Name: "cookies", Price: decimal.RequireFromString("2.50"), Quantity: 10})
	require.NoError(t, err)

	t.Run("FindByID", func(t *testing.T) {
		found, err := repo.FindByID(ctx, apple.ID)
		require.NoError(t, err)
		assert.Equal(t, "apple", found.Name)
		assert.True(t, found.Price.Equal(decimal.RequireFromString("1.5")), "price was %s", found.Price)
		assert.Equal(t, 10, found.Quantity)

		_, err = repo.FindByID(ctx, 999)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("Save existing id updates in place", func(t *testing.T) {
		changed := *cookies
		changed.Name = "biscuits"
		changed.Quantity = 3

		saved, err := repo.Save(ctx, changed)
		require.NoError(t, err)
		assert.Equal(t, cookies.ID, saved.ID)

		found, err := repo.FindByID(ctx, cookies.ID)
		require.NoError(t, err)
		assert.Equal(t, "biscuits", found.Name)
		assert.Equal(t, 3, found.Quantity)
	})

	t.Run("Save unknown id inserts under a generated id", func(t *testing.T) {
		tea, err := repo.Save(ctx, domain.Product{ID: 50, Name: "tea", Price: decimal.RequireFromString("0.80"), Quantity: 2})
		require.NoError(t, err)
		assert.NotEqual(t, int64(50), tea.ID)
		assert.Greater(t, tea.ID, cookies.ID)

		_, err = repo.FindByID(ctx, 50)
		assert.ErrorIs(t, err, ErrProductNotFound)

		found, err := repo.FindByID(ctx, tea.ID)
		require.NoError(t, err)
		assert.Equal(t, "tea", found.Name)

		require.NoError(t, repo.DeleteByID(ctx, tea.ID))
	})

	t.Run("FindAll ordered by id", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, apple.ID, all[0].ID)
		assert.Equal(t, cookies.ID, all[1].ID)
	})

	t.Run("DeleteByID", func(t *testing.T) {
		require.NoError(t, repo.DeleteByID(ctx, apple.ID))
		_, err := repo.FindByID(ctx, apple.ID)
		assert.ErrorIs(t, err, ErrProductNotFound)

		assert.NoError(t, repo.DeleteByID(ctx, 999))
	})
}

func TestGormRecalledProductRepository(t *testing.T) {
	ctx := context.TODO()
	repo := NewGormRecalledProductRepository(newSQLiteDB(t))

	empty, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	gum, err := repo.Save(ctx, domain.RecalledProduct{Name: "gum"})
	require.NoError(t, err)
	_, err = repo.Save(ctx, domain.RecalledProduct{Name: "soda", Expired: true})
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, gum.ID, all[0].ID)
	assert.Equal(t, "gum", all[0].Name)
	assert.False(t, all[0].Expired)
	assert.Equal(t, "soda", all[1].Name)
	assert.True(t, all[1].Expired)

	t.Run("Save known id updates", func(t *testing.T) {
		expired := *gum
		expired.Expired = true
		saved, err := repo.Save(ctx, expired)
		require.NoError(t, err)
		assert.Equal(t, gum.ID, saved.ID)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.True(t, all[0].Expired)
	})

	t.Run("Save unknown id inserts", func(t *testing.T) {
		saved, err := repo.Save(ctx, domain.RecalledProduct{ID: 77, Name: "tea"})
		require.NoError(t, err)
		assert.NotEqual(t, int64(77), saved.ID)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, saved.ID, all[2].ID)
	})
}
