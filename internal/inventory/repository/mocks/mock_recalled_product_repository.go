package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ridloal/inventory-service/internal/inventory/domain"
)

type MockRecalledProductRepository struct {
	mock.Mock
}

func (m *MockRecalledProductRepository) FindAll(ctx context.Context) ([]domain.RecalledProduct, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]domain.RecalledProduct), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRecalledProductRepository) Save(ctx context.Context, recall domain.RecalledProduct) (*domain.RecalledProduct, error) {
	args := m.Called(ctx, recall)
	if res := args.Get(0); res != nil {
		return res.(*domain.RecalledProduct), args.Error(1)
	}
	return nil, args.Error(1)
}
