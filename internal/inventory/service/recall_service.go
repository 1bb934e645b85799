package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/ridloal/inventory-service/internal/inventory/domain"
	"github.com/ridloal/inventory-service/internal/inventory/repository"
	"github.com/ridloal/inventory-service/internal/platform/logger"
)

var ErrInvalidRecall = errors.New("recalled product name must not be blank")

// RecallService maintains the recall registry that ProductService reads.
type RecallService interface {
	List(ctx context.Context) ([]domain.RecalledProduct, error)
	Save(ctx context.Context, req domain.CreateRecallRequest) (*domain.RecalledProduct, error)
}

type recallServiceImpl struct {
	repo repository.RecalledProductRepository
}

func NewRecallService(repo repository.RecalledProductRepository) RecallService {
	return &recallServiceImpl{repo: repo}
}

func (s *recallServiceImpl) List(ctx context.Context) ([]domain.RecalledProduct, error) {
	return s.repo.FindAll(ctx)
}

// Save stores the name verbatim. Blank names are rejected.
func (s *recallServiceImpl) Save(ctx context.Context, req domain.CreateRecallRequest) (*domain.RecalledProduct, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidRecall
	}

	saved, err := s.repo.Save(ctx, domain.RecalledProduct{Name: req.Name, Expired: req.Expired})
	if err != nil {
		return nil, err
	}
	logger.Info("Recall registered", zap.Int64("id", saved.ID), zap.String("name", saved.Name), zap.Bool("expired", saved.Expired))
	return saved, nil
}
