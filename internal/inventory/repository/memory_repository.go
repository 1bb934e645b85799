package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/ridloal/inventory-service/internal/inventory/domain"
)

// MemoryInventoryRepository keeps products in process memory. Used for
// STORE_DRIVER=memory and in acceptance tests.
type MemoryInventoryRepository struct {
	mu       sync.RWMutex
	products map[int64]domain.Product
	nextID   int64
}

func NewMemoryInventoryRepository() *MemoryInventoryRepository {
	return &MemoryInventoryRepository{
		products: make(map[int64]domain.Product),
		nextID:   1,
	}
}

func (r *MemoryInventoryRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *MemoryInventoryRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

func (r *MemoryInventoryRepository) Save(ctx context.Context, product domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		product.ID = r.nextID
		r.nextID++
	}
	r.products[product.ID] = product
	return &product, nil
}

func (r *MemoryInventoryRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, id)
	return nil
}

type MemoryRecalledProductRepository struct {
	mu      sync.RWMutex
	recalls []domain.RecalledProduct
	nextID  int64
}

func NewMemoryRecalledProductRepository() *MemoryRecalledProductRepository {
	return &MemoryRecalledProductRepository{nextID: 1}
}

func (r *MemoryRecalledProductRepository) FindAll(ctx context.Context) ([]domain.RecalledProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	recalls := make([]domain.RecalledProduct, len(r.recalls))
	copy(recalls, r.recalls)
	return recalls, nil
}

func (r *MemoryRecalledProductRepository) Save(ctx context.Context, recall domain.RecalledProduct) (*domain.RecalledProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if recall.ID != 0 {
		for i := range r.recalls {
			if r.recalls[i].ID == recall.ID {
				r.recalls[i] = recall
				return &recall, nil
			}
		}
	}
	recall.ID = r.nextID
	r.nextID++
	r.recalls = append(r.recalls, recall)
	return &recall, nil
}
