package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ridloal/inventory-service/internal/inventory/domain"
)

type MockRecallService struct {
	mock.Mock
}

func (m *MockRecallService) List(ctx context.Context) ([]domain.RecalledProduct, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]domain.RecalledProduct), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRecallService) Save(ctx context.Context, req domain.CreateRecallRequest) (*domain.RecalledProduct, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*domain.RecalledProduct), args.Error(1)
	}
	return nil, args.Error(1)
}
