package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ridloal/inventory-service/internal/inventory/domain"
	"github.com/ridloal/inventory-service/internal/inventory/repository"
	"github.com/ridloal/inventory-service/internal/platform/logger"
)

var ErrProductNotFound = errors.New("product not found")

// ProductNotFoundError is returned by UpdateProduct for an unknown id.
// It matches ErrProductNotFound under errors.Is.
type ProductNotFoundError struct {
	ID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found with id: %d", e.ID)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}

type ProductService interface {
	Save(ctx context.Context, product domain.Product) (*domain.Product, error)
	// GetAllProducts lists the inventory minus recalled products.
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	// FindByID ignores recalls. ok is false when the id is unknown.
	FindByID(ctx context.Context, id int64) (product domain.Product, ok bool, err error)
	DeleteByID(ctx context.Context, id int64) error
	UpdateProduct(ctx context.Context, id int64, updated domain.Product) (*domain.Product, error)
}

type productServiceImpl struct {
	inventoryRepo repository.InventoryRepository
	recallRepo    repository.RecalledProductRepository
}

func NewProductService(inventoryRepo repository.InventoryRepository, recallRepo repository.RecalledProductRepository) ProductService {
	return &productServiceImpl{
		inventoryRepo: inventoryRepo,
		recallRepo:    recallRepo,
	}
}

func (s *productServiceImpl) Save(ctx context.Context, product domain.Product) (*domain.Product, error) {
	return s.inventoryRepo.Save(ctx, product)
}

// GetAllProducts reads the recall registry, then the inventory, and filters.
// The two reads are independent: a recall added in between is not seen
// until the next call.
func (s *productServiceImpl) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	recalls, err := s.recallRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	filter := domain.NewRecallFilter(domain.RecalledNames(recalls))

	products, err := s.inventoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	kept := filter.RemoveRecalledFrom(products)
	if hidden := len(products) - len(kept); hidden > 0 {
		logger.Debug("GetAllProducts: recalled products hidden", zap.Int("hidden", hidden))
	}
	return kept, nil
}

func (s *productServiceImpl) FindByID(ctx context.Context, id int64) (domain.Product, bool, error) {
	p, err := s.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domain.Product{}, false, nil
		}
		return domain.Product{}, false, err
	}
	return *p, true, nil
}

func (s *productServiceImpl) DeleteByID(ctx context.Context, id int64) error {
	return s.inventoryRepo.DeleteByID(ctx, id)
}

// UpdateProduct overwrites name, price and quantity of an existing product.
func (s *productServiceImpl) UpdateProduct(ctx context.Context, id int64, updated domain.Product) (*domain.Product, error) {
	existing, err := s.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, &ProductNotFoundError{ID: id}
		}
		return nil, err
	}

	existing.Name = updated.Name
	existing.Price = updated.Price
	existing.Quantity = updated.Quantity
	return s.inventoryRepo.Save(ctx, *existing)
}
