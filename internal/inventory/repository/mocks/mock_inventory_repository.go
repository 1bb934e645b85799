package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ridloal/inventory-service/internal/inventory/domain"
)

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryRepository) Save(ctx context.Context, product domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, product)
	if res := args.Get(0); res != nil {
		return res.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
