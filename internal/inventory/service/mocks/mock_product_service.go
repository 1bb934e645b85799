package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ridloal/inventory-service/internal/inventory/domain"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Save(ctx context.Context, product domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, product)
	if res := args.Get(0); res != nil {
		return res.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) FindByID(ctx context.Context, id int64) (domain.Product, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Bool(1), args.Error(2)
}

func (m *MockProductService) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, id int64, updated domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, id, updated)
	if res := args.Get(0); res != nil {
		return res.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}
