package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ridloal/inventory-service/internal/inventory/domain"
	"github.com/ridloal/inventory-service/internal/platform/logger"
)

type gormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) InventoryRepository {
	return &gormInventoryRepository{db: db}
}

func (r *gormInventoryRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	products := []domain.Product{}
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		logger.Error("FindAll products: gorm find failed", err)
		return nil, err
	}
	return products, nil
}

func (r *gormInventoryRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		logger.Error("FindByID product: gorm first failed", err)
		return nil, err
	}
	return &p, nil
}

// Save updates the row with product.ID when there is one. A zero or
// unknown id falls through to Create with a database-assigned key.
func (r *gormInventoryRepository) Save(ctx context.Context, product domain.Product) (*domain.Product, error) {
	db := r.db.WithContext(ctx)
	if product.ID != 0 {
		res := db.Model(&domain.Product{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
			"name":     product.Name,
			"price":    product.Price,
			"quantity": product.Quantity,
		})
		if res.Error != nil {
			logger.Error("Save product: gorm update failed", res.Error)
			return nil, classifyError("save product", res.Error)
		}
		if res.RowsAffected > 0 {
			return &product, nil
		}
		product.ID = 0
	}

	if err := db.Create(&product).Error; err != nil {
		logger.Error("Save product: gorm create failed", err)
		return nil, classifyError("save product", err)
	}
	return &product, nil
}

func (r *gormInventoryRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Product{}, id).Error; err != nil {
		logger.Error("DeleteByID product: gorm delete failed", err)
		return classifyError("delete product", err)
	}
	return nil
}

type gormRecalledProductRepository struct {
	db *gorm.DB
}

func NewGormRecalledProductRepository(db *gorm.DB) RecalledProductRepository {
	return &gormRecalledProductRepository{db: db}
}

func (r *gormRecalledProductRepository) FindAll(ctx context.Context) ([]domain.RecalledProduct, error) {
	recalls := []domain.RecalledProduct{}
	if err := r.db.WithContext(ctx).Order("id").Find(&recalls).Error; err != nil {
		logger.Error("FindAll recalled products: gorm find failed", err)
		return nil, err
	}
	return recalls, nil
}

func (r *gormRecalledProductRepository) Save(ctx context.Context, recall domain.RecalledProduct) (*domain.RecalledProduct, error) {
	db := r.db.WithContext(ctx)
	if recall.ID != 0 {
		res := db.Model(&domain.RecalledProduct{}).Where("id = ?", recall.ID).Updates(map[string]interface{}{
			"name":    recall.Name,
			"expired": recall.Expired,
		})
		if res.Error != nil {
			logger.Error("Save recalled product: gorm update failed", res.Error)
			return nil, classifyError("save recalled product", res.Error)
		}
		if res.RowsAffected > 0 {
			return &recall, nil
		}
		recall.ID = 0
	}

	if err := db.Create(&recall).Error; err != nil {
		logger.Error("Save recalled product: gorm create failed", err)
		return nil, classifyError("save recalled product", err)
	}
	return &recall, nil
}
