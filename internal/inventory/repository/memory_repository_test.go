package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridloal/inventory-service/internal/inventory/domain"
)

func TestMemoryInventoryRepository(t *testing.T) {
	ctx := context.TODO()
	repo := NewMemoryInventoryRepository()

	apple, err := repo.Save(ctx, domain.Product{Name: "apple", Price: decimal.RequireFromString("1.50"), Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), apple.ID)

	gum, err := repo.Save(ctx, domain.Product{Name: "gum", Price: decimal.RequireFromString("3.50"), Quantity: 11})
	require.NoError(t, err)
	assert.Equal(t, int64(2), gum.ID)

	t.Run("FindByID", func(t *testing.T) {
		found, err := repo.FindByID(ctx, apple.ID)
		require.NoError(t, err)
		assert.Equal(t, *apple, *found)

		_, err = repo.FindByID(ctx, 999)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("Save with known id updates", func(t *testing.T) {
		updated := *apple
		updated.Quantity = 42
		_, err := repo.Save(ctx, updated)
		require.NoError(t, err)

		found, _ := repo.FindByID(ctx, apple.ID)
		assert.Equal(t, 42, found.Quantity)
	})

	t.Run("Save with unknown id assigns a new one", func(t *testing.T) {
		tea, err := repo.Save(ctx, domain.Product{ID: 10, Name: "tea"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), tea.ID)

		_, err = repo.FindByID(ctx, 10)
		assert.ErrorIs(t, err, ErrProductNotFound)

		coffee, err := repo.Save(ctx, domain.Product{Name: "coffee"})
		require.NoError(t, err)
		assert.Equal(t, int64(4), coffee.ID)
	})

	t.Run("FindAll is ordered by id", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		ids := make([]int64, 0, len(all))
		for _, p := range all {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []int64{1, 2, 3, 4}, ids)
	})

	t.Run("DeleteByID", func(t *testing.T) {
		require.NoError(t, repo.DeleteByID(ctx, gum.ID))
		_, err := repo.FindByID(ctx, gum.ID)
		assert.ErrorIs(t, err, ErrProductNotFound)

		assert.NoError(t, repo.DeleteByID(ctx, 12345))
	})

	t.Run("Cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := repo.FindAll(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestMemoryRecalledProductRepository(t *testing.T) {
	ctx := context.TODO()
	repo := NewMemoryRecalledProductRepository()

	gum, err := repo.Save(ctx, domain.RecalledProduct{Name: "gum"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), gum.ID)

	_, err = repo.Save(ctx, domain.RecalledProduct{Name: "soda", Expired: true})
	require.NoError(t, err)

	expired := *gum
	expired.Expired = true
	_, err = repo.Save(ctx, expired)
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.RecalledProduct{
		{ID: 1, Name: "gum", Expired: true},
		{ID: 2, Name: "soda", Expired: true},
	}, all)

	ghost, err := repo.Save(ctx, domain.RecalledProduct{ID: 40, Name: "tea"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), ghost.ID)

	all[0].Name = "changed"
	again, _ := repo.FindAll(ctx)
	assert.Equal(t, "gum", again[0].Name)
}
